package dto

// SignupRequest payload for new accounts.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse echoes the identity the client uses for subsequent requests.
type LoginResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// MessageResponse is the fixed-shape body every mutation endpoint returns.
type MessageResponse struct {
	Message string `json:"message"`
}
