package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserRecord is the shape returned by the user management endpoints.
type UserRecord struct {
	UID          string          `json:"uid"`
	Email        string          `json:"email"`
	DisplayName  string          `json:"display_name"`
	CustomClaims map[string]bool `json:"custom_claims"`
}

func (u *User) Record() UserRecord {
	return UserRecord{
		UID:          u.UID,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		CustomClaims: RoleClaims(u.Roles),
	}
}

// Profile is the current user as shown in the dashboard header.
type Profile struct {
	UserRecord
	Role        Role   `json:"role"`
	RoleDisplay string `json:"role_display"`
}

func (u *User) Profile() Profile {
	primary := PrimaryRole(u.Roles)
	return Profile{
		UserRecord:  u.Record(),
		Role:        primary,
		RoleDisplay: primary.DisplayName(),
	}
}

type CreateUserRequest struct {
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	DisplayName string          `json:"display_name"`
	Roles       map[string]bool `json:"roles"`
}

type UpdateUserRequest struct {
	UID         string          `json:"-"`
	DisplayName *string         `json:"display_name"`
	Roles       map[string]bool `json:"roles"`
}

type Claims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Roles []Role `json:"roles"`
	jwt.RegisteredClaims
}

func (c *Claims) HasAnyRole(allowed ...Role) bool {
	return HasAnyRole(c.Roles, allowed...)
}
