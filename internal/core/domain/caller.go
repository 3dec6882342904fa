package domain

// Caller is the resolved identity attached to an in-flight request after
// token verification. A zero Caller means the request is anonymous.
type Caller struct {
	ID       int64
	Username string
	Roles    []string
}

// Valid reports whether the caller context is complete enough for an
// authorization decision.
func (c Caller) Valid() bool {
	return c.ID > 0 && c.Username != "" && len(c.Roles) > 0
}

// IsAdmin reports whether the caller holds the administrative role.
func (c Caller) IsAdmin() bool {
	return c.HasRole(RoleAdmin)
}

// HasRole reports whether the caller holds the named role.
func (c Caller) HasRole(name string) bool {
	for _, r := range c.Roles {
		if r == name {
			return true
		}
	}
	return false
}
