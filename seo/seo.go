// Package seo holds the string transforms used on tool write paths: slug
// generation and the title/description fallbacks used for meta tags.
package seo

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nakedifyai/backend/models"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a display name into a URL-safe slug: lowercased, runs of
// non-alphanumeric characters collapsed to a single "-", no leading or
// trailing dashes.
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// TitleTag caps a page title at 60 characters. Longer titles are cut at 57
// and ellipsized so search results never truncate mid-word worse than we do.
// Counts are in runes, not bytes; a cut must never split a multibyte name.
func TitleTag(title string) string {
	if utf8.RuneCountInString(title) <= 60 {
		return title
	}
	return string([]rune(title)[:57]) + "..."
}

// DescriptionTag caps a meta description at 160 characters, cut at 157 and
// ellipsized. Rune counts, same as TitleTag.
func DescriptionTag(description string) string {
	if utf8.RuneCountInString(description) <= 160 {
		return description
	}
	return string([]rune(description)[:157]) + "..."
}

// MetaTitle returns the tool's explicit SEO title, falling back to its name.
func MetaTitle(tool models.Tool) string {
	if tool.SeoTitle != nil && *tool.SeoTitle != "" {
		return *tool.SeoTitle
	}
	return TitleTag(tool.Name)
}

// MetaDescription returns the tool's explicit SEO description, falling back
// to its description.
func MetaDescription(tool models.Tool) string {
	if tool.SeoDescription != nil && *tool.SeoDescription != "" {
		return *tool.SeoDescription
	}
	return tool.Description
}
