package domain

// DenyReason classifies why a status transition was refused.
type DenyReason string

const (
	// DenyInsufficientRole means the acting role is not permitted to make
	// this transition regardless of the bug's state.
	DenyInsufficientRole DenyReason = "insufficient_role"
	// DenyPreconditionNotMet means the role is acceptable but the bug is
	// not in a state that allows the transition (e.g. closing an
	// unvalidated bug).
	DenyPreconditionNotMet DenyReason = "precondition_not_met"
)

// TransitionDecision is the outcome of a status transition check.
type TransitionDecision struct {
	Allowed bool
	Reason  DenyReason
	Message string
}

func allow() TransitionDecision {
	return TransitionDecision{Allowed: true}
}

func deny(reason DenyReason, message string) TransitionDecision {
	return TransitionDecision{Reason: reason, Message: message}
}

// CanTransition decides whether role may move a bug from current to
// target status, given the bug's validated flag. It is pure: no I/O, no
// clock, no store access.
//
// Rules:
//   - any transition out of Closed requires the admin role;
//   - a transition into Closed requires the tester or admin role, and the
//     bug must already be validated;
//   - every other transition is allowed for any recognized role.
func CanTransition(current, target BugStatus, role UserRole, validated bool) TransitionDecision {
	if !role.IsValid() {
		return deny(DenyInsufficientRole, "unrecognized role")
	}

	if current == BugStatusClosed && role != UserRoleAdmin {
		return deny(DenyInsufficientRole, "only admin can modify closed bugs")
	}

	if target == BugStatusClosed {
		if role != UserRoleTester && role != UserRoleAdmin {
			return deny(DenyInsufficientRole, "only testers can close bugs")
		}
		if !validated {
			return deny(DenyPreconditionNotMet, "bug must be validated before closing")
		}
	}

	return allow()
}

// CanValidate reports whether role may set a bug's validated flag.
// Validation is the precondition for closing and is restricted to the
// tester and admin roles.
func CanValidate(role UserRole) bool {
	return role == UserRoleTester || role == UserRoleAdmin
}
