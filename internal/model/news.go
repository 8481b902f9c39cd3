package model

import "time"

// NewsArticle is a company announcement. Date is a display value (e.g. "2024")
// and also the primary sort key for listings.
type NewsArticle struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Date         string    `json:"date"`
	ShortContent string    `json:"short_content,omitempty"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
