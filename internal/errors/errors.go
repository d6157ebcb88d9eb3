package errors

import "errors"

// Credential errors.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoRefreshToken     = errors.New("no refresh token stored")
)

// Server/transport errors.
var (
	ErrAPIRequest  = errors.New("API request failed")
	ErrAPIResponse = errors.New("unexpected API response")
)
