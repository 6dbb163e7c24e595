package entity

import (
	"regexp"
	"strings"
	"time"
)

// Product is a catalog entry producers can be authorized to offer.
type Product struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	Unit      string     `json:"unit"`
	BoxSize   string     `json:"boxSize,omitempty"`
	Varieties []string   `json:"varieties,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// ProductSlug derives a product id from its name ("Cherry Tomatoes" -> "cherry-tomatoes").
func ProductSlug(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")

	return strings.Trim(slug, "-")
}
