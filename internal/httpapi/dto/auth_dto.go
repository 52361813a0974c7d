package dto

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	UniversityID *int64 `json:"university_id,omitempty"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserSummary: public view of a user after registration. The password hash
// is never exposed.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthUser: identity payload returned on login, mirroring the token claims
type AuthUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// LoginResponse: response payload after successful login
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    AuthUser `json:"user"`
}
