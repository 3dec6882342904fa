// Package policy is the authorization decision core: a stateless mapping from
// (action, resource, caller) to allow or deny. Role requirements live in an
// explicit table rather than route configuration so the precedence between
// rules is visible and testable.
package policy

import (
	"github.com/dreamroute/travel-catalog/internal/core/domain"
)

// Action names an operation on a resource kind.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionList   Action = "list"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource names a resource kind subject to authorization.
type Resource string

const (
	ResourceUser        Resource = "user"
	ResourceDestination Resource = "destination"
	ResourceRole        Resource = "role"
)

// requirement is the minimum authentication level an action demands.
type requirement int

const (
	public requirement = iota
	// authenticated requires at least a base role (ROLE_USER or ROLE_ADMIN).
	authenticated
	adminOnly
)

type ruleKey struct {
	action   Action
	resource Resource
}

// roleRules is the role gate: the table of required authentication levels per
// (action, resource). Ownership is evaluated separately where it applies.
var roleRules = map[ruleKey]requirement{
	{ActionList, ResourceDestination}:   public,
	{ActionRead, ResourceDestination}:   public,
	{ActionCreate, ResourceDestination}: authenticated,
	{ActionUpdate, ResourceDestination}: authenticated,
	{ActionDelete, ResourceDestination}: authenticated,

	{ActionList, ResourceUser}:   adminOnly,
	{ActionRead, ResourceUser}:   authenticated,
	{ActionCreate, ResourceUser}: adminOnly,
	{ActionUpdate, ResourceUser}: authenticated,
	{ActionDelete, ResourceUser}: adminOnly,

	{ActionList, ResourceRole}:   adminOnly,
	{ActionRead, ResourceRole}:   adminOnly,
	{ActionCreate, ResourceRole}: adminOnly,
	{ActionUpdate, ResourceRole}: adminOnly,
	{ActionDelete, ResourceRole}: adminOnly,
}

// denialReasons carries the per-rule messages surfaced on a role-gate denial.
var denialReasons = map[ruleKey]string{
	{ActionDelete, ResourceUser}: "Only administrators can delete users",
	{ActionList, ResourceUser}:   "Only administrators can list users",
	{ActionCreate, ResourceUser}: "Only administrators can create users",
	{ActionList, ResourceRole}:   "Only administrators can manage roles",
	{ActionRead, ResourceRole}:   "Only administrators can manage roles",
	{ActionCreate, ResourceRole}: "Only administrators can manage roles",
}

const defaultDenialReason = "You are not authorized to perform this action"

// Authorize applies the role gate for (action, resource). Caller-context
// completeness is checked before any role inspection; a zero or incomplete
// caller fails with ErrInvalidCallerContext.
func Authorize(action Action, resource Resource, caller domain.Caller) error {
	req, ok := roleRules[ruleKey{action, resource}]
	if !ok {
		// Unknown combinations fail closed.
		req = adminOnly
	}
	if req == public {
		return nil
	}
	if !caller.Valid() {
		return domain.ErrInvalidCallerContext
	}

	switch req {
	case authenticated:
		if caller.HasRole(domain.RoleUser) || caller.IsAdmin() {
			return nil
		}
	case adminOnly:
		if caller.IsAdmin() {
			return nil
		}
	}
	return domain.NewAccessDenied(denialReason(action, resource))
}

func denialReason(action Action, resource Resource) string {
	if reason, ok := denialReasons[ruleKey{action, resource}]; ok {
		return reason
	}
	return defaultDenialReason
}

// AuthorizeDestinationChange is the ownership gate for destination update and
// delete: allowed iff the caller is the owner or holds the admin role.
func AuthorizeDestinationChange(caller domain.Caller, dest *domain.Destination) error {
	if !caller.Valid() {
		return domain.ErrInvalidCallerContext
	}
	if caller.IsAdmin() || caller.ID == dest.OwnerID {
		return nil
	}
	return domain.NewAccessDenied("You are not authorized to perform this action on this destination.")
}

// AuthorizeUserUpdate applies the ownership gate and the field-level rules of
// a user update:
//   - owner or admin may update at all
//   - only the owner may change the password; an admin updating another user
//     must not include one
//   - only an admin may include a role list, even a no-op one
func AuthorizeUserUpdate(caller domain.Caller, targetID int64, changesPassword bool, requestedRoles []string) error {
	if !caller.Valid() {
		return domain.ErrInvalidCallerContext
	}

	isAdmin := caller.IsAdmin()
	isOwner := caller.ID == targetID

	if !isAdmin && !isOwner {
		return domain.NewAccessDenied("You don't have permission to update this user")
	}
	if changesPassword && isAdmin && !isOwner {
		return domain.NewAccessDenied("Admins are not allowed to change passwords of other users")
	}
	if len(requestedRoles) > 0 && !isAdmin {
		return domain.NewAccessDenied("Users are not allowed to change their own roles")
	}
	return nil
}
