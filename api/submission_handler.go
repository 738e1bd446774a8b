package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nakedifyai/backend/database"
	"github.com/nakedifyai/backend/errs"
	"github.com/nakedifyai/backend/models"
)

// normalizeTags lowercases a tag set before it is stored. Both the SQL
// array-overlap filter and the in-memory one compare against stored tags;
// keeping them lowercase is what lets the two layers agree on mixed-case
// input.
func normalizeTags(tags pq.StringArray) pq.StringArray {
	if len(tags) == 0 {
		return tags
	}
	normalized := make(pq.StringArray, 0, len(tags))
	for _, tag := range tags {
		normalized = append(normalized, strings.ToLower(tag))
	}
	return normalized
}

type submissionHandler struct {
	responder      Responder
	logger         zerolog.Logger
	submissionRepo *database.SubmissionRepo
	categoryRepo   *database.CategoryRepo
}

func newSubmissionHandler(submissionRepo *database.SubmissionRepo, categoryRepo *database.CategoryRepo) submissionHandler {
	logger := log.With().Str("handlerName", "submissionHandler").Logger()

	return submissionHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		submissionRepo: submissionRepo,
		categoryRepo:   categoryRepo,
	}
}

// createSubmission takes a public tool submission and parks it in the
// moderation queue. Category references are validated at this boundary, not
// tolerated at read time.
func (h submissionHandler) createSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var submission models.ToolSubmission
		if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode submission request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate(submission); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		submission.Status = models.SubmissionPending
		submission.SubmittedAt = time.Now()
		submission.ReviewedAt = nil
		submission.ReviewedBy = nil
		submission.Tags = normalizeTags(submission.Tags)

		if err := h.submissionRepo.Add(&submission); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, submission)
	}
}

func (h submissionHandler) validate(submission models.ToolSubmission) error {
	if submission.Name == "" {
		return errs.NewValidationError("name", "name is required")
	}
	if submission.Description == "" {
		return errs.NewValidationError("description", "description is required")
	}
	if submission.URL == "" {
		return errs.NewValidationError("url", "url is required")
	}
	parsed, err := url.Parse(submission.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return errs.NewValidationError("url", "url must be a valid http(s) address")
	}
	if submission.Pricing != "" && !models.ValidPricing(submission.Pricing) {
		return errs.NewValidationError("pricing", "unknown pricing classification")
	}
	if submission.Category == "" {
		return errs.NewValidationError("category", "category is required")
	}
	if _, err := h.categoryRepo.FindBySlug(submission.Category); err != nil {
		if errs.IsNotFound(err) {
			return errs.NewValidationError("category", "unknown category slug")
		}
		return err
	}
	return nil
}
