package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used with errors.Is at the HTTP boundary. The typed errors
// below carry the human-readable detail and report Is() against these.
var (
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInvalidCallerContext = errors.New("missing or incomplete caller context")
	ErrNotFound             = errors.New("entity not found")
	ErrAccessDenied         = errors.New("access denied")
	ErrDuplicateValue       = errors.New("duplicate value")
	ErrRoleNotFound         = errors.New("role not found")
	ErrValidationFailed     = errors.New("validation failed")
)

// NotFoundError reports a missing entity, referenced by id or by username.
type NotFoundError struct {
	Entity string
	ID     int64
	Name   string
}

func NewNotFoundByID(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func NewNotFoundByName(entity, name string) *NotFoundError {
	return &NotFoundError{Entity: entity, Name: name}
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s not found with username %s", e.Entity, e.Name)
	}
	return fmt.Sprintf("%s not found with id %d", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// AccessDeniedError is returned by the authorization policy with the reason
// shown to the caller.
type AccessDeniedError struct {
	Reason string
}

func NewAccessDenied(reason string) *AccessDeniedError {
	return &AccessDeniedError{Reason: reason}
}

func (e *AccessDeniedError) Error() string { return e.Reason }

func (e *AccessDeniedError) Is(target error) bool { return target == ErrAccessDenied }

// DuplicateValueError reports a uniqueness violation on a user field.
type DuplicateValueError struct {
	Field   string
	Message string
}

func NewDuplicateUsername() *DuplicateValueError {
	return &DuplicateValueError{Field: "username", Message: "Username already taken"}
}

func NewDuplicateEmail() *DuplicateValueError {
	return &DuplicateValueError{Field: "email", Message: "Email already registered"}
}

func (e *DuplicateValueError) Error() string { return e.Message }

func (e *DuplicateValueError) Is(target error) bool { return target == ErrDuplicateValue }

// RoleNotFoundError reports a role-change request naming an unknown role.
type RoleNotFoundError struct {
	RoleName string
}

func (e *RoleNotFoundError) Error() string {
	return fmt.Sprintf("Role not found: %s", e.RoleName)
}

func (e *RoleNotFoundError) Is(target error) bool { return target == ErrRoleNotFound }
