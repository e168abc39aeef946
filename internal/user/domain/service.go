package domain

import (
	"context"
	"errors"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the register/login payload: identity, role and a fresh token.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Token string `json:"token"`
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

var (
	ErrDuplicateEmail     = errors.New("duplicate_email")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrInvalidUserID      = errors.New("invalid_user_id")
	ErrInvalidRole        = errors.New("invalid_role")
	ErrMissingFields      = errors.New("missing_required_fields")
)
