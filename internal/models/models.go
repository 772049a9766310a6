package models

import (
	"time"
)

// Category is the closed set of job categories the board accepts.
type Category string

const (
	CategoryMaid       Category = "Maid"
	CategoryLandscaper Category = "Landscaper"
)

// WorkArrangement is the closed set of accepted arrangements.
type WorkArrangement string

const (
	ArrangementAccommodation WorkArrangement = "accommodation"
	ArrangementPartTime      WorkArrangement = "part-time"
	ArrangementFullTime      WorkArrangement = "full-time"
)

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Location    string `json:"location,omitempty"`

	// Pay is a pointer so a missing figure stays distinguishable from an
	// explicit zero; the wage validator treats both the same way.
	Pay *float64 `json:"pay,omitempty"`

	// Type is a free-text employment label, unrelated to Category.
	Type string `json:"type,omitempty"`

	Category        Category        `gorm:"not null" json:"category"`
	WorkArrangement WorkArrangement `gorm:"not null" json:"workArrangement"`
	PostedBy        string          `json:"postedBy,omitempty"`
}
