package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Plant is a catalog product. Plants are never hard deleted; clearing
// IsActive hides them from every customer-facing read.
type Plant struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Slug              string          `json:"slug"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	CategoryID        *uuid.UUID      `json:"categoryId,omitempty"`
	ImageURLs         []string        `json:"imageUrls"`
	Stock             int             `json:"stock"`
	Featured          bool            `json:"featured"`
	Tags              []string        `json:"tags"`
	IsActive          bool            `json:"isActive"`
	CareLevel         string          `json:"careLevel,omitempty"`
	LightRequirement  string          `json:"lightRequirement,omitempty"`
	WateringFrequency string          `json:"wateringFrequency,omitempty"`
	Size              string          `json:"size,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// PlantFilter narrows catalog listings. Nil fields are not applied.
type PlantFilter struct {
	CategoryID      *uuid.UUID
	Featured        *bool
	IncludeInactive bool // admin listings only
}

// CatalogPlant is a plant as presented in the catalog, with photo URLs merged in.
type CatalogPlant struct {
	*Plant
	Photos []*Photo `json:"photos"`
}

// NormalizeTags lower-cases, trims, de-duplicates and sorts tags.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			out = append(out, tag)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// Slugify derives a URL slug from a display name.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// MergePhotoURLs appends photo URLs to the plant's image URLs, skipping duplicates.
func MergePhotoURLs(imageURLs []string, photos []*Photo) []string {
	merged := slices.Clone(imageURLs)
	if merged == nil {
		merged = []string{}
	}
	for _, photo := range photos {
		if !slices.Contains(merged, photo.URL) {
			merged = append(merged, photo.URL)
		}
	}

	return merged
}
