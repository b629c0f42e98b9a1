package dto

// SubscribeNewsletterRequest is the newsletter signup payload.
type SubscribeNewsletterRequest struct {
	Email     string `json:"email" binding:"required"`
	Frequency string `json:"frequency" binding:"required,oneof=daily weekly"`
}

// JoinCommunityRequest is the community signup payload.
type JoinCommunityRequest struct {
	Email string `json:"email" binding:"required"`
}

// SubscriptionResponse reports the subscription outcome. EmailSent is false
// when the welcome email could not be delivered; the subscription itself
// still stands (newsletter variant).
type SubscriptionResponse struct {
	Subscribed bool `json:"subscribed"`
	EmailSent  bool `json:"emailSent"`
}
