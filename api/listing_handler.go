package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/nakedifyai/backend/catalog"
	"github.com/nakedifyai/backend/database"
	"github.com/nakedifyai/backend/models"
)

// homeFetchLimit caps the base snapshot the home page is derived from.
const homeFetchLimit = 200

type listingHandler struct {
	responder    Responder
	logger       zerolog.Logger
	toolRepo     *database.ToolRepo
	categoryRepo *database.CategoryRepo
	tagRepo      *database.TagRepo
}

func newListingHandler(toolRepo *database.ToolRepo, categoryRepo *database.CategoryRepo, tagRepo *database.TagRepo) listingHandler {
	logger := log.With().Str("handlerName", "listingHandler").Logger()

	return listingHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		toolRepo:     toolRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

// HomeListing is everything the home page needs in one response: the derived
// tool views plus the filter vocabulary.
type HomeListing struct {
	Views      catalog.Views     `json:"views"`
	Categories []models.Category `json:"categories"`
	Tags       []string          `json:"tags"`
}

// filterStateFromQuery maps listing query parameters onto the in-memory
// filter state. Bad values degrade to their inactive defaults; a listing
// must never blank out because of a malformed parameter.
func filterStateFromQuery(r *http.Request) catalog.FilterState {
	q := r.URL.Query()

	state := catalog.FilterState{
		SearchQuery: q.Get("search"),
		Category:    q.Get("category"),
		Pricing:     q.Get("pricing"),
		Sort:        catalog.SortKey(q.Get("sort")),
	}
	if nsfwParam := q.Get("nsfw"); nsfwParam != "" {
		if showNSFW, err := strconv.ParseBool(nsfwParam); err == nil {
			state.ShowNSFW = showNSFW
		}
	}
	if tagsParam := q.Get("tags"); tagsParam != "" {
		for _, tag := range strings.Split(tagsParam, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				state.Tags = append(state.Tags, tag)
			}
		}
	}

	return state
}

// getHome assembles the home page: tools, categories, and tags are fetched
// concurrently, then the in-memory pipeline derives the named views. The
// three queries are independent; all must land before the page is ready.
func (h listingHandler) getHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			tools      []models.Tool
			categories []models.Category
			tagNames   []string
		)

		group, _ := errgroup.WithContext(r.Context())
		group.Go(func() error {
			var err error
			tools, err = h.toolRepo.List(database.ToolFilter{Limit: homeFetchLimit})
			return err
		})
		group.Go(func() error {
			var err error
			categories, err = h.categoryRepo.ListActive()
			return err
		})
		group.Go(func() error {
			var err error
			tagNames, err = h.tagRepo.Names()
			return err
		})

		if err := group.Wait(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		filtered := catalog.ApplyFilters(tools, filterStateFromQuery(r))

		h.responder.WriteJSON(w, HomeListing{
			Views:      catalog.PartitionViews(filtered),
			Categories: categories,
			Tags:       tagNames,
		})
	}
}
