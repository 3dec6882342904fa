package domain

import (
	"regexp"
	"time"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// roleNamePattern is the naming convention for role definitions: the ROLE_
// prefix followed by uppercase words.
var roleNamePattern = regexp.MustCompile(`^ROLE_[A-Z_]+$`)

// ValidRoleName reports whether name follows the role naming convention.
func ValidRoleName(name string) bool {
	return len(name) >= 5 && len(name) <= 20 && roleNamePattern.MatchString(name)
}

// Role is a named role definition. Names are unique case-insensitively.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"role_name"`
}

// User is a registered account: credentials plus the roles it holds.
type User struct {
	ID           int64         `json:"id"`
	Username     string        `json:"username"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	Roles        []Role        `json:"roles"`
	Destinations []Destination `json:"destinations,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RoleNames returns the names of the user's roles, in stored order.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
