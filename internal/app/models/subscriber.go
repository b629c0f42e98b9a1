package models

import "time"

// NewsletterSubscriber represents a newsletter signup.
// Email uniqueness is enforced by the store, not the application.
type NewsletterSubscriber struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Frequency string    `json:"frequency"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommunityMember represents a community signup.
type CommunityMember struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Frequency string    `json:"frequency"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}
