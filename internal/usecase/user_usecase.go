package usecase

import (
	"context"

	"eventer/internal/domain/entity"
)

// SignUpInput defines the data required to create a new account.
type SignUpInput struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// LoginInput defines the data required to authenticate.
type LoginInput struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// AuthOutput is the authentication response: a signed bearer token plus the
// identity claims it carries.
type AuthOutput struct {
	Token    string      `json:"token"`
	UserName string      `json:"userName"`
	Role     entity.Role `json:"role"`
}

// UserUsecase defines account registration and authentication.
type UserUsecase interface {
	// SignUp creates a validated user with a hashed password, then
	// authenticates it so the caller is logged in immediately.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetUsers returns every account. Password hashes never leave the core.
	GetUsers(ctx context.Context) ([]*entity.User, error)
}

// ProfileInput defines the data required to complete a profile.
type ProfileInput struct {
	FirstName string        `json:"firstName" validate:"required"`
	LastName  string        `json:"lastName" validate:"required"`
	Age       int           `json:"age" validate:"gte=0"`
	Location  LocationInput `json:"location"`
	Category  CategoryInput `json:"category"`
}

// ProfileUsecase defines profile completion. A user without a completed
// profile cannot join events.
type ProfileUsecase interface {
	// CompleteProfile creates the caller's profile with fresh location and
	// category rows. Fails with a conflict if the profile already exists.
	CompleteProfile(ctx context.Context, userName string, input *ProfileInput) (*entity.Profile, error)
}
