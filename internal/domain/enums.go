package domain

// BugStatus represents the lifecycle state of a bug.
// The string values are the wire values stored in the collection DB.
type BugStatus string

const (
	BugStatusOpen       BugStatus = "Open"
	BugStatusInProgress BugStatus = "In Progress"
	BugStatusResolved   BugStatus = "Resolved"
	BugStatusClosed     BugStatus = "Closed"
)

func (s BugStatus) String() string { return string(s) }

func (s BugStatus) IsValid() bool {
	switch s {
	case BugStatusOpen, BugStatusInProgress, BugStatusResolved, BugStatusClosed:
		return true
	}
	return false
}

// BugPriority represents how urgently a bug should be worked on.
type BugPriority string

const (
	BugPriorityLow      BugPriority = "Low"
	BugPriorityMedium   BugPriority = "Medium"
	BugPriorityHigh     BugPriority = "High"
	BugPriorityCritical BugPriority = "Critical"
)

func (p BugPriority) String() string { return string(p) }

func (p BugPriority) IsValid() bool {
	switch p {
	case BugPriorityLow, BugPriorityMedium, BugPriorityHigh, BugPriorityCritical:
		return true
	}
	return false
}

// BugSeverity represents the impact of a bug.
type BugSeverity string

const (
	BugSeverityMinor   BugSeverity = "Minor"
	BugSeverityMajor   BugSeverity = "Major"
	BugSeverityBlocker BugSeverity = "Blocker"
)

func (s BugSeverity) String() string { return string(s) }

func (s BugSeverity) IsValid() bool {
	switch s {
	case BugSeverityMinor, BugSeverityMajor, BugSeverityBlocker:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
// Users are predefined in the collection DB with one of these roles.
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleDeveloper UserRole = "developer"
	UserRoleTester    UserRole = "tester"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleDeveloper, UserRoleTester:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// EntityKind is the type discriminator stored with every collection item.
// All entity kinds share one physical collection; list operations filter
// by this tag before decoding.
type EntityKind string

const (
	EntityKindBug      EntityKind = "bug"
	EntityKindComment  EntityKind = "comment"
	EntityKindProject  EntityKind = "project"
	EntityKindUser     EntityKind = "user"
	EntityKindActivity EntityKind = "activity_log"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindBug, EntityKindComment, EntityKindProject, EntityKindUser, EntityKindActivity:
		return true
	}
	return false
}

// ActivityAction is the action label recorded in an activity log entry.
type ActivityAction string

const (
	ActivityActionStatusChanged ActivityAction = "status_changed"
	ActivityActionBugAssigned   ActivityAction = "bug_assigned"
	ActivityActionBugValidated  ActivityAction = "bug_validated"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityActionStatusChanged, ActivityActionBugAssigned, ActivityActionBugValidated:
		return true
	}
	return false
}
