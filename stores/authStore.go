package stores

import (
	"log"

	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
)

// AuthStore is the session store for one inbound request. It keeps no token
// of its own: the backend's HttpOnly cookie, relayed through the bound
// caller, is the session.
type AuthStore struct {
	backend *api.Caller
}

func NewAuthStore(backend *api.Caller) *AuthStore {
	return &AuthStore{backend: backend}
}

// CurrentUser asks the backend who the session belongs to. Any failure,
// including 401, means "not logged in" and is never surfaced as an error.
func (s *AuthStore) CurrentUser() *models.User {
	var user models.User
	if err := s.backend.Get("/auth/users/me", &user); err != nil {
		return nil
	}
	return &user
}

func (s *AuthStore) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

// Login posts the credentials form-encoded, the encoding the backend's token
// endpoint expects. The email doubles as the username.
func (s *AuthStore) Login(email, password string) (*models.User, error) {
	var resp models.AuthResponse
	err := s.backend.PostForm("/auth/token", map[string]string{
		"username": email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Register creates the account then immediately logs in with the same
// credentials.
func (s *AuthStore) Register(data models.RegisterData) (*models.User, error) {
	payload := map[string]string{
		"username":  data.Email,
		"full_name": data.FullName,
		"email":     data.Email,
		"phone":     data.Phone,
		"password":  data.Password,
	}
	if err := s.backend.Post("/auth/register", payload, nil); err != nil {
		return nil, err
	}
	return s.Login(data.Email, data.Password)
}

// Logout clears the session whether or not the backend call succeeds; a
// network failure is logged and otherwise ignored.
func (s *AuthStore) Logout() {
	if err := s.backend.Post("/auth/logout", nil, nil); err != nil {
		log.Println("Logout failed:", err)
	}
}
