package entity

import (
	domainerrors "eventer/internal/domain/errors"
)

// User is an account that can authenticate against the service. The Profile
// pointer is nil until the user completes their profile.
type User struct {
	ID       int64    `json:"id"`                // Database identifier, zero while unpersisted.
	UserName string   `json:"userName"`          // Unique login name.
	Email    string   `json:"email"`             // Unique contact email.
	Role     Role     `json:"role"`              // Authorization level, one of User/Admin/Mod.
	Password string   `json:"-"`                 // Password hash; never serialized.
	Profile  *Profile `json:"profile,omitempty"` // Completed profile, nil if none exists yet.
}

// NewUser constructs a validated User. The password is expected to be hashed
// already; hashing lives behind the PasswordHasher service, not here.
func NewUser(userName, email string, role Role, hashedPassword string) (*User, error) {
	if userName == "" {
		return nil, domainerrors.NewValidationError("Username is required.")
	}
	if hashedPassword == "" {
		return nil, domainerrors.NewValidationError("Password is required.")
	}
	if !role.IsValid() {
		return nil, domainerrors.NewValidationError("Role must be one of User, Admin or Mod.")
	}

	return &User{
		UserName: userName,
		Email:    email,
		Role:     role,
		Password: hashedPassword,
	}, nil
}

// HasProfile reports whether the user has completed their profile.
func (u *User) HasProfile() bool {
	return u.Profile != nil
}
