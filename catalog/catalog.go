// Package catalog implements the in-memory filter/sort pipeline behind the
// listing pages. It operates on an already-fetched snapshot of tools, does no
// I/O, and never mutates its input: every call returns a fresh slice, so the
// same snapshot can feed any number of derived views.
package catalog

import (
	"sort"
	"strings"

	"github.com/nakedifyai/backend/models"
)

// SortKey selects the ordering ApplyFilters leaves the result in.
type SortKey string

const (
	SortViews  SortKey = "views"
	SortRating SortKey = "rating"
	SortNewest SortKey = "newest"
	SortName   SortKey = "name"
)

// FilterState is the live user-driven filter state of a listing page.
// Zero values mean "predicate not active": an empty SearchQuery matches
// everything, an empty Tags slice is a no-op rather than an exclusion, and
// an unrecognized Sort keeps the fetch order.
type FilterState struct {
	SearchQuery string
	Category    string
	Pricing     string
	Tags        []string
	ShowNSFW    bool
	Sort        SortKey
}

// derivedViewCap bounds every derived bucket on the home page.
const derivedViewCap = 12

// Views are the named sub-lists the home page renders from one filtered set.
type Views struct {
	All      []models.Tool `json:"all"`
	Trending []models.Tool `json:"trending"`
	New      []models.Tool `json:"new"`
	Top      []models.Tool `json:"top"`
	Free     []models.Tool `json:"free"`
}

// ApplyFilters recomputes the derived display list for one filter state.
// It is idempotent and side-effect free: tools is never reordered or
// shortened in place.
func ApplyFilters(tools []models.Tool, state FilterState) []models.Tool {
	filtered := make([]models.Tool, 0, len(tools))
	for _, tool := range tools {
		if matches(tool, state) {
			filtered = append(filtered, tool)
		}
	}
	sortTools(filtered, state.Sort)
	return filtered
}

func matches(tool models.Tool, state FilterState) bool {
	if !state.ShowNSFW && tool.IsNsfw {
		return false
	}
	if state.Category != "" && tool.Category != state.Category {
		return false
	}
	if state.Pricing != "" && tool.Pricing != state.Pricing {
		return false
	}
	if state.SearchQuery != "" && !matchesSearch(tool, state.SearchQuery) {
		return false
	}
	if len(state.Tags) > 0 && !overlaps(tool.Tags, state.Tags) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against the tool's
// name, description, and tags.
func matchesSearch(tool models.Tool, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(tool.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(tool.Description), q) {
		return true
	}
	for _, tag := range tool.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// overlaps reports whether the two tag sets share at least one element.
// Same semantics as the query layer's array-overlap filter: stored tags are
// lowercased on every write path, and EqualFold tolerates mixed-case
// selections on top of that.
func overlaps(toolTags []string, selected []string) bool {
	for _, want := range selected {
		for _, have := range toolTags {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

// sortTools orders the already-copied slice by the given key. An unknown key
// is not an error; the slice keeps its fetch order so a bad value coming off
// the wire can never blank a listing.
func sortTools(tools []models.Tool, key SortKey) {
	switch key {
	case SortViews:
		sort.SliceStable(tools, func(i, j int) bool {
			return tools[i].Views > tools[j].Views
		})
	case SortRating:
		sort.SliceStable(tools, func(i, j int) bool {
			return ratingOf(tools[i]) > ratingOf(tools[j])
		})
	case SortNewest:
		sort.SliceStable(tools, func(i, j int) bool {
			return tools[i].CreatedAt.After(tools[j].CreatedAt)
		})
	case SortName:
		sort.SliceStable(tools, func(i, j int) bool {
			return strings.ToLower(tools[i].Name) < strings.ToLower(tools[j].Name)
		})
	}
}

// ratingOf treats a missing rating as 0 for ordering purposes.
func ratingOf(tool models.Tool) float64 {
	if tool.Rating == nil {
		return 0
	}
	return *tool.Rating
}

// PartitionViews derives the named home-page buckets from one filtered set:
// the full set plus trending (views desc), new (creation date desc),
// top (rating >= 4.5), and free, each capped at 12. The input is copied
// before any reordering.
func PartitionViews(tools []models.Tool) Views {
	trending := append([]models.Tool(nil), tools...)
	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Views > trending[j].Views
	})

	newest := append([]models.Tool(nil), tools...)
	sort.SliceStable(newest, func(i, j int) bool {
		return newest[i].CreatedAt.After(newest[j].CreatedAt)
	})

	// Empty buckets serialize as [] like everywhere else, never null.
	top := []models.Tool{}
	for _, tool := range tools {
		if tool.Rating != nil && *tool.Rating >= 4.5 {
			top = append(top, tool)
		}
	}

	free := []models.Tool{}
	for _, tool := range tools {
		if tool.Pricing == models.PricingFree {
			free = append(free, tool)
		}
	}

	return Views{
		All:      tools,
		Trending: capAt(trending, derivedViewCap),
		New:      capAt(newest, derivedViewCap),
		Top:      capAt(top, derivedViewCap),
		Free:     capAt(free, derivedViewCap),
	}
}

func capAt(tools []models.Tool, n int) []models.Tool {
	if len(tools) > n {
		return tools[:n]
	}
	return tools
}
