// Package bug implements the Bug repository over the collection DB.
// All entity kinds share one physical collection; this repository scans
// it and keeps only items tagged as bugs.
package bug

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/adapter/collection"
	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

// Repo provides bug persistence backed by the collection DB.
type Repo struct {
	store          collection.Store
	collectionName string
	log            *slog.Logger
}

// New creates a bug repository on the base collection.
func New(store collection.Store, logger *slog.Logger) *Repo {
	return &Repo{
		store: store,
		log:   logger.With("repo", "bug"),
	}
}

// Create persists a new bug and returns it with the store-assigned id.
func (r *Repo) Create(ctx context.Context, b domain.Bug) (domain.Bug, error) {
	item, err := r.store.Create(ctx, r.collectionName, encode(b))
	if err != nil {
		return domain.Bug{}, fmt.Errorf("create bug: %w", err)
	}
	return decode(item)
}

// GetByID returns the bug with the given id, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Bug, error) {
	item, err := r.store.GetByID(ctx, r.collectionName, id)
	if err != nil {
		return nil, fmt.Errorf("get bug: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("bug %s: %w", id, domain.ErrNotFound)
	}
	b, err := decode(item)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List scans the collection, keeps decodable items tagged as bugs,
// applies the filter, and returns results newest-first. Items that fail
// to decode are skipped with a warning so one corrupt record cannot
// block the listing.
func (r *Repo) List(ctx context.Context, filter domain.BugFilter) ([]domain.Bug, error) {
	items, err := r.store.GetAll(ctx, r.collectionName)
	if err != nil {
		return nil, fmt.Errorf("list bugs: %w", err)
	}

	bugs := make([]domain.Bug, 0, len(items))
	for _, item := range items {
		if collection.Kind(item) != domain.EntityKindBug {
			continue
		}
		b, err := decode(item)
		if err != nil {
			r.log.WarnContext(ctx, "skipping undecodable bug item",
				slog.String("item_id", collection.ItemID(item)),
				slog.String("error", err.Error()),
			)
			continue
		}
		if filter.ProjectID != "" && b.ProjectID != filter.ProjectID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.AssignedTo != "" && b.AssignedTo != filter.AssignedTo {
			continue
		}
		bugs = append(bugs, b)
	}

	slices.SortFunc(bugs, func(a, b domain.Bug) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return bugs, nil
}

// UpdateFields updates arbitrary bug fields. Timestamps and enumerations
// are serialized to their wire form before the remote call.
func (r *Repo) UpdateFields(ctx context.Context, id string, updates map[string]any) (domain.Bug, error) {
	if len(updates) == 0 {
		return domain.Bug{}, domain.NewValidationError("updates", "must not be empty")
	}

	item, err := r.store.Update(ctx, r.collectionName, id, collection.SerializeFields(updates))
	if err != nil {
		return domain.Bug{}, fmt.Errorf("update bug: %w", err)
	}
	return decode(item)
}

// UpdateStatus sets the bug status, advancing updatedAt in the same
// remote call so no half-updated state is ever visible.
func (r *Repo) UpdateStatus(ctx context.Context, id string, status domain.BugStatus, updatedAt time.Time) (domain.Bug, error) {
	return r.UpdateFields(ctx, id, map[string]any{
		"status":    status,
		"updatedAt": updatedAt,
	})
}

// UpdateAssignment sets the assignee, advancing updatedAt atomically.
func (r *Repo) UpdateAssignment(ctx context.Context, id, assignedTo string, updatedAt time.Time) (domain.Bug, error) {
	return r.UpdateFields(ctx, id, map[string]any{
		"assignedTo": assignedTo,
		"updatedAt":  updatedAt,
	})
}

// UpdateValidation sets the validated flag, advancing updatedAt
// atomically.
func (r *Repo) UpdateValidation(ctx context.Context, id string, validated bool, updatedAt time.Time) (domain.Bug, error) {
	return r.UpdateFields(ctx, id, map[string]any{
		"validated": validated,
		"updatedAt": updatedAt,
	})
}

// Touch advances only the updatedAt timestamp. Used as the secondary
// write when a child record is attached to the bug.
func (r *Repo) Touch(ctx context.Context, id string, updatedAt time.Time) error {
	_, err := r.UpdateFields(ctx, id, map[string]any{"updatedAt": updatedAt})
	return err
}
