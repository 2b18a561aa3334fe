package entity

import (
	"time"

	"github.com/google/uuid"
)

// Photo is an uploaded image attached to a plant. The binary lives in blob
// storage under StorageKey; URL is the public path it is served from.
type Photo struct {
	ID          uuid.UUID `json:"id"`
	PlantID     uuid.UUID `json:"plantId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	StorageKey  string    `json:"-"`
	URL         string    `json:"url"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
}
