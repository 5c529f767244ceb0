package models

import (
	"time"
)

// Event is a single scored competition activity. An event is created
// atomically with exactly three results (1st/2nd/3rd) and never mutated;
// deleting an event removes its results with it.
type Event struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"index"`
	Date      time.Time `json:"date" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Relationship: one Event has exactly three Results
	Results []EventResult `json:"results,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// EventResult is one placed finish within an event. Points are derived
// from Position by the scoring package at validation time and stored
// denormalized so standings can sum them without re-deriving.
type EventResult struct {
	ID       string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EventID  string `json:"event_id" gorm:"not null;index"`
	HouseID  string `json:"house_id" gorm:"not null;index"`
	Position int    `json:"position" gorm:"not null"` // 1, 2 or 3
	Points   int    `json:"points" gorm:"not null"`

	// Headline is filled in asynchronously by the headline worker.
	// NULL means not generated yet (or given up after max attempts).
	Headline         *string `json:"headline,omitempty"`
	HeadlineAttempts int     `json:"-" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Relationship
	House House `json:"house,omitempty" gorm:"foreignKey:HouseID"`
}
