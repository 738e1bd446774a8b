package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/nakedifyai/backend/database"
	"github.com/nakedifyai/backend/errs"
	"github.com/nakedifyai/backend/models"
	"github.com/nakedifyai/backend/seo"
)

type adminHandler struct {
	responder      Responder
	logger         zerolog.Logger
	toolRepo       *database.ToolRepo
	categoryRepo   *database.CategoryRepo
	submissionRepo *database.SubmissionRepo
	adminRepo      *database.AdminRepo
	jwtSecret      []byte
	fallbackEmail  string
	fallbackHash   string
}

func newAdminHandler(db database.Database, jwtSecret []byte, fallbackEmail, fallbackHash string) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		toolRepo:       db.ToolRepo(),
		categoryRepo:   db.CategoryRepo(),
		submissionRepo: db.SubmissionRepo(),
		adminRepo:      db.AdminRepo(),
		jwtSecret:      jwtSecret,
		fallbackEmail:  fallbackEmail,
		fallbackHash:   fallbackHash,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login checks credentials against the verify_admin_credentials database
// function, with an optional env-configured bcrypt fallback for when the
// database user table is empty (fresh installs). Success issues a session
// token.
func (h adminHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if req.Email == "" || req.Password == "" {
			h.responder.WriteError(w, errs.NewValidationError("email", "email and password are required"))
			return
		}

		ok, err := h.adminRepo.VerifyCredentials(req.Email, req.Password)
		if err != nil {
			h.logger.Error().Err(err).Msg("admin credential check against database failed")
		}

		if !ok && h.fallbackEmail != "" && req.Email == h.fallbackEmail {
			ok = bcrypt.CompareHashAndPassword([]byte(h.fallbackHash), []byte(req.Password)) == nil
		}

		if !ok {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		token, err := issueAdminToken(req.Email, h.jwtSecret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue session token"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"token":  token,
			"email":  req.Email,
			"status": "success",
		})
	}
}

// listTools lists tools of any publication status for the admin panel.
// The published-only default still applies when no status is given.
func (h adminHandler) listTools() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := publicToolFilter(r)
		if status := r.URL.Query().Get("status"); status != "" {
			if !models.ValidStatus(status) {
				h.responder.WriteError(w, errs.NewValidationError("status", "unknown publication status"))
				return
			}
			filter.Status = status
		}

		tools, err := h.toolRepo.List(filter)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ToolCollection{Tools: tools, Total: len(tools)})
	}
}

// createTool inserts a new tool. Missing slug and SEO title are derived from
// the name the same way the admin form does it.
func (h adminHandler) createTool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var tool models.Tool
		if err := json.NewDecoder(r.Body).Decode(&tool); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tool request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		h.applyToolDefaults(&tool)
		if err := h.validateTool(tool); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.toolRepo.Add(&tool); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, tool)
	}
}

// updateTool replaces an existing tool's fields.
func (h adminHandler) updateTool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toolID, err := uuid.Parse(chi.URLParam(r, "toolID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid toolID"))
			return
		}

		existing, err := h.toolRepo.FindByID(toolID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var tool models.Tool
		if err := json.NewDecoder(r.Body).Decode(&tool); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tool request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		tool.ID = existing.ID
		tool.CreatedAt = existing.CreatedAt
		tool.Views = existing.Views // the counter only moves through IncrementViews
		tool.UpdatedAt = time.Now()

		h.applyToolDefaults(&tool)
		if err := h.validateTool(tool); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.toolRepo.Update(&tool); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, tool)
	}
}

// deleteTool removes a tool by id.
func (h adminHandler) deleteTool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toolID, err := uuid.Parse(chi.URLParam(r, "toolID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid toolID"))
			return
		}

		if _, err := h.toolRepo.FindByID(toolID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.toolRepo.Delete(toolID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "tool deleted successfully",
		})
	}
}

func (h adminHandler) applyToolDefaults(tool *models.Tool) {
	if tool.Slug == "" {
		tool.Slug = seo.Slugify(tool.Name)
	}
	if tool.Pricing == "" {
		tool.Pricing = models.PricingFree
	}
	if tool.Status == "" {
		tool.Status = models.StatusDraft
	}
	if tool.SeoTitle == nil || *tool.SeoTitle == "" {
		title := seo.TitleTag(tool.Name)
		tool.SeoTitle = &title
	}
	if tool.SeoDescription == nil || *tool.SeoDescription == "" {
		description := seo.DescriptionTag(tool.Description)
		tool.SeoDescription = &description
	}
	tool.Tags = normalizeTags(tool.Tags)
}

func (h adminHandler) validateTool(tool models.Tool) error {
	if tool.Name == "" {
		return errs.NewValidationError("name", "name is required")
	}
	if tool.Slug == "" {
		return errs.NewValidationError("slug", "slug is required")
	}
	if tool.Description == "" {
		return errs.NewValidationError("description", "description is required")
	}
	if tool.URL == "" {
		return errs.NewValidationError("url", "url is required")
	}
	if !models.ValidPricing(tool.Pricing) {
		return errs.NewValidationError("pricing", "unknown pricing classification")
	}
	if !models.ValidStatus(tool.Status) {
		return errs.NewValidationError("status", "unknown publication status")
	}
	if tool.Category != "" {
		if _, err := h.categoryRepo.FindBySlug(tool.Category); err != nil {
			if errs.IsNotFound(err) {
				return errs.NewValidationError("category", "unknown category slug")
			}
			return err
		}
	}
	return nil
}

// listCategories lists every category for the admin panel, active or not.
func (h adminHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.ListAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, CategoryCollection{Categories: categories, Total: len(categories)})
	}
}

// createCategory inserts a new category, deriving the slug from the name
// when absent.
func (h adminHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category models.Category
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if category.Name == "" {
			h.responder.WriteError(w, errs.NewValidationError("name", "name is required"))
			return
		}
		if category.Slug == "" {
			category.Slug = seo.Slugify(category.Name)
		}

		if err := h.categoryRepo.Add(&category); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, category)
	}
}

// updateCategory replaces an existing category's fields.
func (h adminHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		var category models.Category
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if category.Name == "" {
			h.responder.WriteError(w, errs.NewValidationError("name", "name is required"))
			return
		}
		category.ID = categoryID
		category.UpdatedAt = time.Now()
		if category.Slug == "" {
			category.Slug = seo.Slugify(category.Name)
		}

		if err := h.categoryRepo.Update(&category); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// deleteCategory removes a category by id. Tools keep their category slug;
// the reference is soft.
func (h adminHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		if err := h.categoryRepo.Delete(categoryID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "category deleted successfully",
		})
	}
}

// SubmissionCollection represents a list of submissions plus its size
type SubmissionCollection struct {
	Submissions []models.ToolSubmission `json:"submissions"`
	Total       int                     `json:"total"`
}

// listSubmissions lists submissions in the moderation queue, optionally by
// status.
func (h adminHandler) listSubmissions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")

		submissions, err := h.submissionRepo.List(status)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, SubmissionCollection{Submissions: submissions, Total: len(submissions)})
	}
}

// approveSubmission promotes a pending submission into a draft tool and
// marks it approved. The tool stays a draft so an admin publishes it
// explicitly after review.
func (h adminHandler) approveSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissionID, err := uuid.Parse(chi.URLParam(r, "submissionID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid submissionID"))
			return
		}

		submission, err := h.submissionRepo.FindByID(submissionID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if submission.Status != models.SubmissionPending {
			h.responder.WriteError(w, errs.NewConflictError("submission has already been reviewed"))
			return
		}

		title := seo.TitleTag(submission.Name)
		description := seo.DescriptionTag(submission.Description)
		tool := models.Tool{
			Name:           submission.Name,
			Slug:           seo.Slugify(submission.Name),
			Description:    submission.Description,
			URL:            submission.URL,
			IsNsfw:         submission.IsNsfw,
			Pricing:        submission.Pricing,
			Features:       submission.Features,
			Tags:           normalizeTags(submission.Tags),
			Category:       submission.Category,
			ScreenshotURL:  submission.ScreenshotURL,
			FaviconURL:     submission.FaviconURL,
			Status:         models.StatusDraft,
			SeoTitle:       &title,
			SeoDescription: &description,
		}
		if tool.Pricing == "" {
			tool.Pricing = models.PricingFree
		}

		if err := h.toolRepo.Add(&tool); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.markReviewed(r, submission, models.SubmissionApproved)

		h.responder.WriteJSON(w, map[string]interface{}{
			"status":     "success",
			"submission": submission,
			"tool":       tool,
		})
	}
}

// rejectSubmission flags a pending submission as rejected.
func (h adminHandler) rejectSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissionID, err := uuid.Parse(chi.URLParam(r, "submissionID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid submissionID"))
			return
		}

		submission, err := h.submissionRepo.FindByID(submissionID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if submission.Status != models.SubmissionPending {
			h.responder.WriteError(w, errs.NewConflictError("submission has already been reviewed"))
			return
		}

		h.markReviewed(r, submission, models.SubmissionRejected)

		h.responder.WriteJSON(w, map[string]interface{}{
			"status":     "success",
			"submission": submission,
		})
	}
}

func (h adminHandler) markReviewed(r *http.Request, submission *models.ToolSubmission, status string) {
	now := time.Now()
	submission.Status = status
	submission.ReviewedAt = &now
	if email, err := ctxGetAdminEmail(r.Context()); err == nil {
		submission.ReviewedBy = &email
	}

	if err := h.submissionRepo.Update(submission); err != nil {
		// The promoted tool, if any, is already in place. Leave the queue
		// entry for a retry rather than failing the request.
		h.logger.Error().Err(err).Str("submissionID", submission.ID.String()).Msg("failed to mark submission reviewed")
	}
}
