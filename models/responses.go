package models

// MessageResponse carries a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// CheckResponse is returned by the identifier existence check.
type CheckResponse struct {
	Message string `json:"message"`
	Exists  bool   `json:"exists"`
}

// RegisterResponse is returned after a successful registration.
// It carries the new user's id and identifier, never the password hash.
type RegisterResponse struct {
	Message    string `json:"message"`
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Message    string `json:"message"`
	Token      string `json:"token"`
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
}

// UserResponse describes the user a bearer token was issued to.
type UserResponse struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}
