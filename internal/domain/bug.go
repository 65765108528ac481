package domain

import "time"

// Bug is a bug report. ID is empty until the record is first persisted,
// then equals the store-assigned item id and never changes. UpdatedAt is
// advanced by every successful field update.
type Bug struct {
	ID          string
	Title       string
	Description string
	ProjectID   string
	ReportedBy  string
	AssignedTo  string
	Status      BugStatus
	Priority    BugPriority
	Severity    BugSeverity
	Tags        []string
	Validated   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BugFilter narrows a bug listing. Zero values mean "no filter". The
// store cannot filter server-side, so filters are applied in memory
// after a full scan.
type BugFilter struct {
	ProjectID  string
	Status     BugStatus
	AssignedTo string
}

// Comment is a conversation entry attached to a bug. The store enforces
// no referential integrity: BugID must be checked for existence before a
// comment is created.
type Comment struct {
	ID        string
	BugID     string
	AuthorID  string
	Message   string
	CreatedAt time.Time
}

// Project groups bugs. Referenced by Bug.ProjectID; no cascading delete.
type Project struct {
	ID          string
	Name        string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
}

// User is a predefined account in the collection DB. The backend never
// creates or modifies users; they are read for validation and identity.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      UserRole
	CreatedAt time.Time
}

// ActivityEntry is an append-only audit record describing an action
// performed on a bug.
type ActivityEntry struct {
	ID          string
	BugID       string
	Action      ActivityAction
	PerformedBy string
	Timestamp   time.Time
}
