package dto

// TechUpdateListResponse carries the fetched tech updates plus the category
// list of the full fetched set, so clients can render filter chips without
// issuing another query.
type TechUpdateListResponse struct {
	Updates    interface{} `json:"updates"`
	Categories []string    `json:"categories"`
}

// OpportunityListResponse mirrors TechUpdateListResponse for listings.
type OpportunityListResponse struct {
	Opportunities interface{} `json:"opportunities"`
	Types         []string    `json:"types"`
}

// CreateTechUpdateRequest is the admin payload for a new tech update.
type CreateTechUpdateRequest struct {
	Title     string  `json:"title" binding:"required"`
	Content   string  `json:"content" binding:"required"`
	Excerpt   string  `json:"excerpt" binding:"required"`
	Category  string  `json:"category" binding:"required"`
	ImageURL  *string `json:"imageUrl"`
	Published bool    `json:"published"`
}

// CreateOpportunityRequest is the admin payload for a new opportunity.
type CreateOpportunityRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Company     string  `json:"company" binding:"required"`
	ApplyURL    *string `json:"applyUrl"`
	Active      bool    `json:"active"`
	ExpiresAt   *string `json:"expiresAt"`
}

// CreateServiceRequest is the admin payload for a new service. Icon must be
// a member of the closed icon set.
type CreateServiceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Icon        string   `json:"icon" binding:"required,serviceicon"`
	Features    []string `json:"features" binding:"required"`
	Active      bool     `json:"active"`
	OrderIndex  int      `json:"orderIndex"`
}
