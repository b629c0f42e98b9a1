package models

import "time"

// TechUpdate represents a published tech news entry
type TechUpdate struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Category  string    `json:"category"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TechUpdateCategories is the fixed set of categories the site filters on.
// "All" is a client-side sentinel, not a stored value.
var TechUpdateCategories = []string{"AI", "Web3", "Tech News", "Innovation", "Platform News"}
