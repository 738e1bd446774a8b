package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakedifyai/backend/models"
)

func ratingPtr(r float64) *float64 {
	return &r
}

func sampleTools() []models.Tool {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return []models.Tool{
		{
			Name:        "ChatBuddy",
			Description: "A friendly chat companion",
			Category:    "chatbot",
			Pricing:     models.PricingFree,
			Tags:        []string{"chat", "companion"},
			Views:       120,
			Rating:      ratingPtr(4.7),
			CreatedAt:   base,
		},
		{
			Name:        "Videomaker",
			Description: "Generates short clips",
			Category:    "video-generator",
			Pricing:     models.PricingPaid,
			Tags:        []string{"video"},
			IsNsfw:      true,
			Views:       300,
			Rating:      ratingPtr(4.2),
			CreatedAt:   base.AddDate(0, 0, 5),
		},
		{
			Name:        "Artisan",
			Description: "Image generation studio",
			Category:    "image-generator",
			Pricing:     models.PricingFreemium,
			Tags:        []string{"image", "art"},
			Views:       80,
			CreatedAt:   base.AddDate(0, 0, 2),
		},
	}
}

func names(tools []models.Tool) []string {
	out := make([]string, 0, len(tools))
	for _, tool := range tools {
		out = append(out, tool.Name)
	}
	return out
}

func TestApplyFiltersNSFWExcluded(t *testing.T) {
	tools := []models.Tool{
		{Name: "Alpha", Pricing: models.PricingFree, Views: 10, IsNsfw: false},
		{Name: "Beta", Pricing: models.PricingPaid, Views: 50, IsNsfw: true},
	}

	got := ApplyFilters(tools, FilterState{ShowNSFW: false})
	require.Len(t, got, 1)
	assert.Equal(t, "Alpha", got[0].Name)

	views := PartitionViews(got)
	require.Len(t, views.Free, 1)
	assert.Equal(t, "Alpha", views.Free[0].Name)
	require.Len(t, views.Trending, 1)
	assert.Equal(t, "Alpha", views.Trending[0].Name)
}

func TestApplyFiltersShowNSFWKeepsEverything(t *testing.T) {
	got := ApplyFilters(sampleTools(), FilterState{ShowNSFW: true})
	assert.Len(t, got, 3)
}

func TestApplyFiltersSearchMatchesNameDescriptionTags(t *testing.T) {
	tools := sampleTools()

	byName := ApplyFilters(tools, FilterState{ShowNSFW: true, SearchQuery: "chat"})
	assert.Equal(t, []string{"ChatBuddy"}, names(byName))

	byDescription := ApplyFilters(tools, FilterState{ShowNSFW: true, SearchQuery: "clips"})
	assert.Equal(t, []string{"Videomaker"}, names(byDescription))

	byTag := ApplyFilters(tools, FilterState{ShowNSFW: true, SearchQuery: "art"})
	assert.Equal(t, []string{"Artisan"}, names(byTag))

	caseInsensitive := ApplyFilters(tools, FilterState{ShowNSFW: true, SearchQuery: "CHATBUDDY"})
	assert.Equal(t, []string{"ChatBuddy"}, names(caseInsensitive))
}

func TestApplyFiltersEmptySearchMatchesAll(t *testing.T) {
	got := ApplyFilters(sampleTools(), FilterState{ShowNSFW: true, SearchQuery: ""})
	assert.Len(t, got, 3)
}

func TestApplyFiltersEmptyTagsIsNoOp(t *testing.T) {
	tools := sampleTools()
	withEmpty := ApplyFilters(tools, FilterState{ShowNSFW: true, Tags: []string{}})
	without := ApplyFilters(tools, FilterState{ShowNSFW: true})
	assert.Equal(t, names(without), names(withEmpty))
}

func TestApplyFiltersTagOverlap(t *testing.T) {
	// A record matches when it shares at least one tag with the selection.
	got := ApplyFilters(sampleTools(), FilterState{ShowNSFW: true, Tags: []string{"video", "companion"}})
	assert.ElementsMatch(t, []string{"ChatBuddy", "Videomaker"}, names(got))
}

func TestApplyFiltersCategoryAndPricing(t *testing.T) {
	tools := sampleTools()

	byCategory := ApplyFilters(tools, FilterState{ShowNSFW: true, Category: "image-generator"})
	assert.Equal(t, []string{"Artisan"}, names(byCategory))

	byPricing := ApplyFilters(tools, FilterState{ShowNSFW: true, Pricing: models.PricingPaid})
	assert.Equal(t, []string{"Videomaker"}, names(byPricing))
}

func TestApplyFiltersSortKeys(t *testing.T) {
	tools := sampleTools()

	byViews := ApplyFilters(tools, FilterState{ShowNSFW: true, Sort: SortViews})
	assert.Equal(t, []string{"Videomaker", "ChatBuddy", "Artisan"}, names(byViews))

	// Missing rating sorts as zero.
	byRating := ApplyFilters(tools, FilterState{ShowNSFW: true, Sort: SortRating})
	assert.Equal(t, []string{"ChatBuddy", "Videomaker", "Artisan"}, names(byRating))

	byNewest := ApplyFilters(tools, FilterState{ShowNSFW: true, Sort: SortNewest})
	assert.Equal(t, []string{"Videomaker", "Artisan", "ChatBuddy"}, names(byNewest))

	byName := ApplyFilters(tools, FilterState{ShowNSFW: true, Sort: SortName})
	assert.Equal(t, []string{"Artisan", "ChatBuddy", "Videomaker"}, names(byName))
}

func TestApplyFiltersUnknownSortKeepsFetchOrder(t *testing.T) {
	tools := sampleTools()
	got := ApplyFilters(tools, FilterState{ShowNSFW: true, Sort: SortKey("bogus")})
	assert.Equal(t, names(tools), names(got))
}

func TestApplyFiltersIsIdempotent(t *testing.T) {
	state := FilterState{ShowNSFW: true, SearchQuery: "a", Sort: SortViews}
	once := ApplyFilters(sampleTools(), state)
	twice := ApplyFilters(once, state)
	assert.Equal(t, once, twice)
}

func TestApplyFiltersNeverMutatesInput(t *testing.T) {
	tools := sampleTools()
	original := append([]models.Tool(nil), tools...)

	ApplyFilters(tools, FilterState{ShowNSFW: true, Sort: SortName})
	ApplyFilters(tools, FilterState{ShowNSFW: false, SearchQuery: "chat", Sort: SortRating})

	assert.Equal(t, original, tools)
}

func TestPartitionViewsBuckets(t *testing.T) {
	tools := sampleTools()
	views := PartitionViews(tools)

	assert.Len(t, views.All, 3)
	assert.Equal(t, []string{"Videomaker", "ChatBuddy", "Artisan"}, names(views.Trending))
	assert.Equal(t, []string{"Videomaker", "Artisan", "ChatBuddy"}, names(views.New))

	// Only ratings of 4.5 and above make the top bucket.
	assert.Equal(t, []string{"ChatBuddy"}, names(views.Top))
	assert.Equal(t, []string{"ChatBuddy"}, names(views.Free))
	for _, tool := range views.Free {
		assert.Equal(t, models.PricingFree, tool.Pricing)
	}
}

func TestPartitionViewsCapsBucketsAtTwelve(t *testing.T) {
	var tools []models.Tool
	for i := 0; i < 30; i++ {
		tools = append(tools, models.Tool{
			Name:      "Tool",
			Pricing:   models.PricingFree,
			Rating:    ratingPtr(5),
			Views:     int64(i),
			CreatedAt: time.Now().Add(time.Duration(i) * time.Hour),
		})
	}

	views := PartitionViews(tools)
	assert.Len(t, views.All, 30)
	assert.Len(t, views.Trending, 12)
	assert.Len(t, views.New, 12)
	assert.Len(t, views.Top, 12)
	assert.Len(t, views.Free, 12)
}

func TestPartitionViewsEmptyBucketsAreNotNil(t *testing.T) {
	tools := []models.Tool{
		{Name: "MidTool", Pricing: models.PricingPaid, Rating: ratingPtr(3.9), Views: 10},
	}

	views := PartitionViews(tools)
	require.NotNil(t, views.Top)
	assert.Empty(t, views.Top)
	require.NotNil(t, views.Free)
	assert.Empty(t, views.Free)
}

func TestPartitionViewsNeverMutatesInput(t *testing.T) {
	tools := sampleTools()
	original := append([]models.Tool(nil), tools...)

	PartitionViews(tools)

	assert.Equal(t, original, tools)
}
