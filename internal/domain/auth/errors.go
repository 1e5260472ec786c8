package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("Invalid username or password")
	ErrInvalidToken        = errors.New("Invalid token")
	ErrTokenExpired        = errors.New("Token expired")
	ErrRefreshTokenRevoked = errors.New("Refresh token revoked")
)
