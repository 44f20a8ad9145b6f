package api

// TokenRequest represents a credential exchange request
type TokenRequest struct {
	Identifier string `json:"identifier"` // username or email
	Secret     string `json:"secret"`     // account password
}

// TokenResponse represents the token pair issued on successful login
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`  // JWT access token
	RefreshToken string `json:"refreshToken"` // refresh token
}

// RegisterRequest represents a new account registration
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Secret   string `json:"secret"`
}

// RegisterResponse represents the server acknowledgement of a registration
type RegisterResponse struct {
	ID      ID     `json:"id"`
	Message string `json:"message,omitempty"`
}

// SuggestionsResponse carries alternative usernames when the requested
// one is taken
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// ErrorResponse represents the server's error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
