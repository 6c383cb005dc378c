package domain

import (
	"errors"
	"time"
)

// Role is the closed set of actor roles. Authorization always goes through
// Role.CanActAs rather than ad hoc string comparisons.
type Role string

const (
	RoleUser   Role = "user"
	RoleExpert Role = "expert"
	RoleAdmin  Role = "admin"
)

// ParseRole maps a raw string to a known Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleExpert, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// CanActAs reports whether the role satisfies any of the allowed roles.
// Admin implicitly satisfies expert-only checks.
func (r Role) CanActAs(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
		if a == RoleExpert && r == RoleAdmin {
			return true
		}
	}
	return false
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUserNotFound       = errors.New("user not found")
	ErrExpertNotFound     = errors.New("expert not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already in use")
)

// User models an authenticated actor. PasswordHash is write-only: it never
// reaches a client serialization.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Specialty    string    `json:"specialty,omitempty"`
	Region       string    `json:"region,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfilePatch carries a partial profile update. Nil fields are left
// untouched; role and password are deliberately not patchable here.
type ProfilePatch struct {
	Name      *string
	Username  *string
	Phone     *string
	Address   *string
	PhotoURL  *string
	Specialty *string
	Region    *string
}

// Empty reports whether the patch changes nothing.
func (p ProfilePatch) Empty() bool {
	return p.Name == nil && p.Username == nil && p.Phone == nil &&
		p.Address == nil && p.PhotoURL == nil && p.Specialty == nil && p.Region == nil
}
