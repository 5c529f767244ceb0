package models

import (
	"time"
)

// House is a competing team in the inter-house competition.
// Rows are seeded/managed by admins; results reference them by ID.
type House struct {
	ID       string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	Slug     string `json:"slug" gorm:"index"`
	Color    string `json:"color"` // hex string for the UI, not validated server-side
	CrestURL string `json:"crest_url,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
