package entity

import "time"

// SiteContent is an editable block of marketing copy addressed by key,
// e.g. "home.hero" or "about".
type SiteContent struct {
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"updatedAt"`
}
