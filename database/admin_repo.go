package database

import (
	"gorm.io/gorm"

	"github.com/nakedifyai/backend/errs"
)

// AdminRepo verifies admin credentials against the verify_admin_credentials
// database function. Password hashing and comparison live on the database
// side; this client never sees stored hashes.
type AdminRepo struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *AdminRepo {
	return &AdminRepo{db}
}

// VerifyCredentials returns true only when the database function accepts the
// email/password pair.
func (r *AdminRepo) VerifyCredentials(email, password string) (bool, error) {
	var ok bool
	err := r.db.Raw("SELECT verify_admin_credentials(?, ?)", email, password).Scan(&ok).Error
	if err != nil {
		return false, errs.NewQueryError("verify", "admin credentials", err)
	}
	return ok, nil
}
