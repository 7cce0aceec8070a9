package models

// User mirrors the backend session user. It is held only for the lifetime of
// a request; the backend's HttpOnly cookie is the actual session.
type User struct {
	ID               int    `json:"id"`
	Username         string `json:"username"`
	FullName         string `json:"full_name,omitempty"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Role             string `json:"role"`
	TwoFactorEnabled int    `json:"two_factor_enabled,omitempty"`
}

type AuthResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterData struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}
