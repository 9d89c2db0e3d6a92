package dto

// TokenRequest exchanges the configured API key for an access token
type TokenRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}
