package browse

// Role is the acting user's role, supplied by the caller rather than
// read from ambient state. It arrives already authenticated.
type Role string

const (
	RoleViewer  Role = "viewer"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// KnownRole reports whether r is one of the configured roles.
func KnownRole(r Role) bool {
	switch r {
	case RoleViewer, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// LockPolicy is the static role → locked-fields table enforced on
// draft edits. The lookup is total: unknown fields default to
// unlocked, unknown roles fail closed (everything locked).
type LockPolicy struct {
	lockAll map[Role]bool
	locked  map[Role]map[string]struct{}
}

// NewLockPolicy returns a policy with no locks.
func NewLockPolicy() *LockPolicy {
	return &LockPolicy{
		lockAll: make(map[Role]bool),
		locked:  make(map[Role]map[string]struct{}),
	}
}

// LockAll marks every field read-only for role.
func (p *LockPolicy) LockAll(role Role) *LockPolicy {
	p.lockAll[role] = true
	return p
}

// Lock marks the named fields read-only for role.
func (p *LockPolicy) Lock(role Role, fields ...string) *LockPolicy {
	set := p.locked[role]
	if set == nil {
		set = make(map[string]struct{}, len(fields))
		p.locked[role] = set
	}
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return p
}

// IsLocked reports whether role may not edit field.
func (p *LockPolicy) IsLocked(field string, role Role) bool {
	if p == nil {
		return false
	}
	if !KnownRole(role) {
		return true
	}
	if p.lockAll[role] {
		return true
	}
	_, locked := p.locked[role][field]
	return locked
}
