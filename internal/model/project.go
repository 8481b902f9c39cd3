package model

import "time"

// ProjectCategory classifies a development for portfolio filtering.
type ProjectCategory string

const (
	CategoryFeatured          ProjectCategory = "Featured"
	CategoryUpcoming          ProjectCategory = "Upcoming"
	CategoryUnderConstruction ProjectCategory = "Under Construction"
	CategoryCompleted         ProjectCategory = "Completed"
	CategoryAffordableHousing ProjectCategory = "Affordable Housing"
)

// ProjectCategories returns every category in display order.
func ProjectCategories() []ProjectCategory {
	return []ProjectCategory{
		CategoryFeatured,
		CategoryUpcoming,
		CategoryUnderConstruction,
		CategoryCompleted,
		CategoryAffordableHousing,
	}
}

// Valid reports whether c is one of the known categories.
func (c ProjectCategory) Valid() bool {
	for _, known := range ProjectCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Project is a real estate development in the portfolio.
// Optional attributes are empty strings (or a nil Units) when unknown.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Category    ProjectCategory `json:"category"`
	Units       *int            `json:"units,omitempty"`
	SquareFeet  string          `json:"square_feet,omitempty"`
	Year        string          `json:"year,omitempty"`
	Status      string          `json:"status,omitempty"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
