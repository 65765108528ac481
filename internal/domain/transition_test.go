package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ClosedRequiresAdmin(t *testing.T) {
	t.Parallel()

	for _, role := range []UserRole{UserRoleDeveloper, UserRoleTester} {
		for _, target := range []BugStatus{BugStatusOpen, BugStatusInProgress, BugStatusResolved, BugStatusClosed} {
			d := CanTransition(BugStatusClosed, target, role, true)
			assert.False(t, d.Allowed, "role %s target %s", role, target)
			assert.Equal(t, DenyInsufficientRole, d.Reason)
		}
	}

	// Admin may reopen a closed bug.
	d := CanTransition(BugStatusClosed, BugStatusOpen, UserRoleAdmin, false)
	assert.True(t, d.Allowed)
}

func TestCanTransition_CloseRequiresTesterOrAdmin(t *testing.T) {
	t.Parallel()

	d := CanTransition(BugStatusResolved, BugStatusClosed, UserRoleDeveloper, true)
	assert.False(t, d.Allowed)
	assert.Equal(t, DenyInsufficientRole, d.Reason)

	d = CanTransition(BugStatusResolved, BugStatusClosed, UserRoleTester, true)
	assert.True(t, d.Allowed)

	d = CanTransition(BugStatusResolved, BugStatusClosed, UserRoleAdmin, true)
	assert.True(t, d.Allowed)
}

func TestCanTransition_CloseRequiresValidatedFlag(t *testing.T) {
	t.Parallel()

	d := CanTransition(BugStatusOpen, BugStatusClosed, UserRoleTester, false)
	assert.False(t, d.Allowed)
	assert.Equal(t, DenyPreconditionNotMet, d.Reason)
	assert.Equal(t, "bug must be validated before closing", d.Message)

	d = CanTransition(BugStatusOpen, BugStatusClosed, UserRoleTester, true)
	assert.True(t, d.Allowed)
}

func TestCanTransition_OrdinaryMovesAllowedForAnyRole(t *testing.T) {
	t.Parallel()

	for _, role := range []UserRole{UserRoleAdmin, UserRoleDeveloper, UserRoleTester} {
		d := CanTransition(BugStatusOpen, BugStatusInProgress, role, false)
		assert.True(t, d.Allowed, "role %s", role)

		d = CanTransition(BugStatusInProgress, BugStatusResolved, role, false)
		assert.True(t, d.Allowed, "role %s", role)

		// Backward moves between non-closed states carry no restriction.
		d = CanTransition(BugStatusResolved, BugStatusOpen, role, false)
		assert.True(t, d.Allowed, "role %s", role)
	}
}

func TestCanTransition_UnrecognizedRoleDenied(t *testing.T) {
	t.Parallel()

	d := CanTransition(BugStatusOpen, BugStatusInProgress, UserRole("manager"), true)
	assert.False(t, d.Allowed)
	assert.Equal(t, DenyInsufficientRole, d.Reason)
}

func TestCanValidate(t *testing.T) {
	t.Parallel()

	assert.True(t, CanValidate(UserRoleTester))
	assert.True(t, CanValidate(UserRoleAdmin))
	assert.False(t, CanValidate(UserRoleDeveloper))
	assert.False(t, CanValidate(UserRole("manager")))
}
