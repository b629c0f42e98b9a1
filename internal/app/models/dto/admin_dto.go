package dto

// AdminLoginRequest is the admin credential payload.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse carries the issued access token.
type AdminLoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

// SendEmailRequest dispatches one templated email.
type SendEmailRequest struct {
	Type string            `json:"type" binding:"required"`
	To   string            `json:"to" binding:"required"`
	Data map[string]string `json:"data"`
}
