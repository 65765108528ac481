package bug

import (
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/adapter/collection"
	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

const entityName = "bug"

// encode maps a domain.Bug to its collection item fields. Bugs fit the
// physical schema, so every attribute is a native field; the entity kind
// rides in the discriminator field.
func encode(b domain.Bug) collection.Item {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return collection.Item{
		collection.DiscriminatorKey: domain.EntityKindBug.String(),
		"title":                     b.Title,
		"description":               b.Description,
		"status":                    b.Status.String(),
		"priority":                  b.Priority.String(),
		"severity":                  b.Severity.String(),
		"projectId":                 b.ProjectID,
		"reportedBy":                b.ReportedBy,
		"assignedTo":                b.AssignedTo,
		"tags":                      tags,
		"validated":                 b.Validated,
		"createdAt":                 b.CreatedAt.UTC().Format(time.RFC3339),
		"updatedAt":                 b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// decode maps a collection item back to a domain.Bug. Enumerated fields
// holding unknown values and mistyped timestamps are MalformedDataErrors;
// list scans downgrade those to skip-with-warning, single gets surface
// them.
func decode(item collection.Item) (domain.Bug, error) {
	id := collection.ItemID(item)

	status := domain.BugStatus(collection.String(item, "status"))
	if !status.IsValid() {
		return domain.Bug{}, &domain.MalformedDataError{Entity: entityName, Field: "status", ItemID: id}
	}
	priority := domain.BugPriority(collection.String(item, "priority"))
	if !priority.IsValid() {
		return domain.Bug{}, &domain.MalformedDataError{Entity: entityName, Field: "priority", ItemID: id}
	}
	severity := domain.BugSeverity(collection.String(item, "severity"))
	if !severity.IsValid() {
		return domain.Bug{}, &domain.MalformedDataError{Entity: entityName, Field: "severity", ItemID: id}
	}

	createdAt, err := collection.Time(item, "createdAt", entityName, id)
	if err != nil {
		return domain.Bug{}, err
	}
	updatedAt, err := collection.Time(item, "updatedAt", entityName, id)
	if err != nil {
		return domain.Bug{}, err
	}

	return domain.Bug{
		ID:          id,
		Title:       collection.String(item, "title"),
		Description: collection.String(item, "description"),
		ProjectID:   collection.String(item, "projectId"),
		ReportedBy:  collection.String(item, "reportedBy"),
		AssignedTo:  collection.String(item, "assignedTo"),
		Status:      status,
		Priority:    priority,
		Severity:    severity,
		Tags:        collection.Strings(item, "tags"),
		Validated:   collection.Bool(item, "validated"),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
