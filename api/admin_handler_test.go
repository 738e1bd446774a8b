package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakedifyai/backend/models"
)

func TestApplyToolDefaults(t *testing.T) {
	var h adminHandler

	tool := models.Tool{
		Name:        "My AI Tool",
		Description: "Does things",
		Tags:        []string{"Chat", "AI"},
	}
	h.applyToolDefaults(&tool)

	assert.Equal(t, "my-ai-tool", tool.Slug)
	assert.Equal(t, models.PricingFree, tool.Pricing)
	assert.Equal(t, models.StatusDraft, tool.Status)

	require.NotNil(t, tool.SeoTitle)
	assert.Equal(t, "My AI Tool", *tool.SeoTitle)
	require.NotNil(t, tool.SeoDescription)
	assert.Equal(t, "Does things", *tool.SeoDescription)

	assert.Equal(t, []string{"chat", "ai"}, []string(tool.Tags))
}

func TestApplyToolDefaultsCapsSeoDescription(t *testing.T) {
	var h adminHandler

	tool := models.Tool{
		Name:        "My AI Tool",
		Description: strings.Repeat("d", 200),
	}
	h.applyToolDefaults(&tool)

	require.NotNil(t, tool.SeoDescription)
	assert.Equal(t, strings.Repeat("d", 157)+"...", *tool.SeoDescription)
}

func TestApplyToolDefaultsKeepsExplicitValues(t *testing.T) {
	var h adminHandler

	title := "Explicit title"
	description := "Explicit description"
	tool := models.Tool{
		Name:           "My AI Tool",
		Slug:           "custom-slug",
		Description:    "Does things",
		Pricing:        models.PricingPaid,
		Status:         models.StatusPublished,
		SeoTitle:       &title,
		SeoDescription: &description,
	}
	h.applyToolDefaults(&tool)

	assert.Equal(t, "custom-slug", tool.Slug)
	assert.Equal(t, models.PricingPaid, tool.Pricing)
	assert.Equal(t, models.StatusPublished, tool.Status)
	assert.Equal(t, title, *tool.SeoTitle)
	assert.Equal(t, description, *tool.SeoDescription)
}
