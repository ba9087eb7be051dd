package dto

import "time"

// LoginRequest defines the credentials for username/password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token. The refresh token travels
// in an HTTP-only cookie, not in the body.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    string    `json:"userID"`
}

// ExchangeCodeRequest is the body for the Google sign-in code exchange.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
