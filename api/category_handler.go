package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nakedifyai/backend/database"
	"github.com/nakedifyai/backend/errs"
	"github.com/nakedifyai/backend/models"
)

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.CategoryRepo
	toolRepo     *database.ToolRepo
}

func newCategoryHandler(categoryRepo *database.CategoryRepo, toolRepo *database.ToolRepo) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
		toolRepo:     toolRepo,
	}
}

// CategoryCollection represents a list of categories plus its size
type CategoryCollection struct {
	Categories []models.Category `json:"categories"`
	Total      int               `json:"total"`
}

// CategoryListing is a category page: the category itself plus its tools.
type CategoryListing struct {
	Category models.Category `json:"category"`
	Tools    []models.Tool   `json:"tools"`
	Total    int             `json:"total"`
}

// getCategories lists the active categories in display order.
func (h categoryHandler) getCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.ListActive()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, CategoryCollection{Categories: categories, Total: len(categories)})
	}
}

// getCategoryTools returns one category page: the category and its published
// tools, most viewed first.
func (h categoryHandler) getCategoryTools() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		category, err := h.categoryRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		filter := database.ToolFilter{Category: slug}
		if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
			filter.Limit = limit
		}

		tools, err := h.toolRepo.List(filter)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, CategoryListing{
			Category: *category,
			Tools:    tools,
			Total:    len(tools),
		})
	}
}
