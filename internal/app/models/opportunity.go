package models

import "time"

// Opportunity represents a job, internship, project or collaboration listing
type Opportunity struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Location    string     `json:"location"`
	Company     string     `json:"company"`
	ApplyURL    *string    `json:"applyUrl,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// OpportunityTypes is the fixed set of listing types.
var OpportunityTypes = []string{"Internship", "Job", "Project", "Collaboration"}
