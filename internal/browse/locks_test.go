package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockPolicyBaselineRoles(t *testing.T) {
	policy := employeeLocks()

	for _, field := range employeeSchema().Names() {
		assert.True(t, policy.IsLocked(field, RoleViewer), "viewer must not edit %s", field)
		assert.False(t, policy.IsLocked(field, RoleAdmin), "admin edits everything, got lock on %s", field)
	}

	assert.True(t, policy.IsLocked("status", RoleManager))
	assert.True(t, policy.IsLocked("joinedAt", RoleManager))
	assert.False(t, policy.IsLocked("name", RoleManager))
	assert.False(t, policy.IsLocked("salary", RoleManager))
}

func TestLockPolicyIsTotal(t *testing.T) {
	policy := employeeLocks()

	// Unknown fields resolve, defaulting to unlocked for known roles.
	assert.False(t, policy.IsLocked("no-such-field", RoleAdmin))
	assert.False(t, policy.IsLocked("no-such-field", RoleManager))
	assert.True(t, policy.IsLocked("no-such-field", RoleViewer))

	// Unknown roles fail closed.
	assert.True(t, policy.IsLocked("name", Role("intern")))
}
