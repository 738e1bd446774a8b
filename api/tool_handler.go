package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nakedifyai/backend/database"
	"github.com/nakedifyai/backend/errs"
	"github.com/nakedifyai/backend/models"
	"github.com/nakedifyai/backend/seo"
)

type toolHandler struct {
	responder Responder
	logger    zerolog.Logger
	toolRepo  *database.ToolRepo
}

func newToolHandler(toolRepo *database.ToolRepo) toolHandler {
	logger := log.With().Str("handlerName", "toolHandler").Logger()

	return toolHandler{
		responder: NewResponder(logger),
		logger:    logger,
		toolRepo:  toolRepo,
	}
}

// ToolCollection represents a list of tools plus its size
type ToolCollection struct {
	Tools []models.Tool `json:"tools"`
	Total int           `json:"total"`
}

// ToolMeta carries the resolved meta-tag strings for a tool page.
type ToolMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ToolDetail is a tool detail page: the tool plus its meta tags.
type ToolDetail struct {
	Tool models.Tool `json:"tool"`
	Meta ToolMeta    `json:"meta"`
}

// publicToolFilter builds a ToolFilter from listing-page query parameters.
// Status is deliberately not read here: public callers always get the
// published default.
func publicToolFilter(r *http.Request) database.ToolFilter {
	q := r.URL.Query()

	filter := database.ToolFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}

	if nsfwParam := q.Get("nsfw"); nsfwParam != "" {
		if isNsfw, err := strconv.ParseBool(nsfwParam); err == nil {
			filter.IsNsfw = &isNsfw
		}
	}
	if tagsParam := q.Get("tags"); tagsParam != "" {
		for _, tag := range strings.Split(tagsParam, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	return filter
}

// getTools lists published tools matching the query-parameter filter,
// most viewed first.
func (h toolHandler) getTools() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tools, err := h.toolRepo.List(publicToolFilter(r))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ToolCollection{Tools: tools, Total: len(tools)})
	}
}

// getToolBySlug returns one published tool. The view counter bump is fired
// off in the background: the page render never waits on it and never sees
// its errors.
func (h toolHandler) getToolBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		tool, err := h.toolRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		go func(id uuid.UUID) {
			if err := h.toolRepo.IncrementViews(id); err != nil {
				h.logger.Error().Err(err).Str("toolID", id.String()).Msg("failed to increment views")
			}
		}(tool.ID)

		h.responder.WriteJSON(w, ToolDetail{
			Tool: *tool,
			Meta: ToolMeta{
				Title:       seo.MetaTitle(*tool),
				Description: seo.MetaDescription(*tool),
			},
		})
	}
}

// getAlternatives returns the published subset of a tool's alternatives.
func (h toolHandler) getAlternatives() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		tool, err := h.toolRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		ids := make([]uuid.UUID, 0, len(tool.AltTools))
		for _, raw := range tool.AltTools {
			id, err := uuid.Parse(raw)
			if err != nil {
				h.logger.Warn().Str("toolID", raw).Str("slug", slug).Msg("skipping malformed alternative tool id")
				continue
			}
			ids = append(ids, id)
		}

		alternatives, err := h.toolRepo.FindByIDs(ids)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ToolCollection{Tools: alternatives, Total: len(alternatives)})
	}
}

// getFeatured lists published featured tools.
func (h toolHandler) getFeatured() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 10
		if parsed, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && parsed > 0 {
			limit = parsed
		}

		tools, err := h.toolRepo.Featured(limit)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ToolCollection{Tools: tools, Total: len(tools)})
	}
}

// searchTools runs the search page's free-text query with optional filters.
func (h toolHandler) searchTools() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := database.SearchFilter{
			Category: q.Get("category"),
			Pricing:  q.Get("pricing"),
		}
		if nsfwParam := q.Get("nsfw"); nsfwParam != "" {
			if isNsfw, err := strconv.ParseBool(nsfwParam); err == nil {
				filter.IsNsfw = &isNsfw
			}
		}
		if tagsParam := q.Get("tags"); tagsParam != "" {
			for _, tag := range strings.Split(tagsParam, ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					filter.Tags = append(filter.Tags, tag)
				}
			}
		}

		tools, err := h.toolRepo.Search(q.Get("q"), filter)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ToolCollection{Tools: tools, Total: len(tools)})
	}
}
