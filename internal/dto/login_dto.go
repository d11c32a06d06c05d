package dto

import "github.com/pidgeonhole/rookery-api/pkg/identity"

// LoginRequest carries the credentials forwarded to the identity provider.
type LoginRequest struct {
	UserID   string `json:"userid" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the issued access token, passed through from the provider.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// NewTokenResponse builds the response DTO from a provider token.
func NewTokenResponse(token identity.Token) TokenResponse {
	return TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresIn:   token.ExpiresIn,
	}
}
