package response

import "sipm-be-svc/internal/models"

// LoginResponse represents the login result: the fabricated session user
// and its bearer token
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}
