package services

// Services is the container for all application services
type Services struct {
	ContentService      *ContentService
	SubscriptionService *SubscriptionService
	ContactService      *ContactService
	StudentHubService   *StudentHubService
	AdminService        *AdminService
}
