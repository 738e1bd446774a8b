package api

import (
	"context"
	"errors"
)

type keyType string

const (
	adminEmailKey keyType = "adminEmail"
)

// ctxWithAdminEmail adds the authenticated admin's email to the context
func ctxWithAdminEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, adminEmailKey, email)
}

// ctxGetAdminEmail retrieves the authenticated admin's email from the context
func ctxGetAdminEmail(ctx context.Context) (string, error) {
	ctxValue := ctx.Value(adminEmailKey)
	if ctxValue == nil {
		return "", errors.New("admin email not found in context")
	}
	email, ok := ctxValue.(string)
	if !ok {
		return "", errors.New("admin email is not of type `string`")
	}
	return email, nil
}
