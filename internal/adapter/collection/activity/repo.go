// Package activity implements the append-only activity log repository
// over the collection DB. Entries are audit records: listings are
// ordered newest first.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/adapter/collection"
	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

const entityName = "activity_log"

// Repo provides activity log persistence backed by the collection DB.
type Repo struct {
	store          collection.Store
	collectionName string
	log            *slog.Logger
}

// New creates an activity log repository on the base collection.
func New(store collection.Store, logger *slog.Logger) *Repo {
	return &Repo{
		store: store,
		log:   logger.With("repo", "activity"),
	}
}

// Create appends a new activity entry.
func (r *Repo) Create(ctx context.Context, e domain.ActivityEntry) (domain.ActivityEntry, error) {
	item, err := r.store.Create(ctx, r.collectionName, encode(e))
	if err != nil {
		return domain.ActivityEntry{}, fmt.Errorf("create activity entry: %w", err)
	}
	return decode(item)
}

// ListByBug returns the activity history of a bug, newest first.
// Undecodable items are skipped with a warning.
func (r *Repo) ListByBug(ctx context.Context, bugID string) ([]domain.ActivityEntry, error) {
	items, err := r.store.GetAll(ctx, r.collectionName)
	if err != nil {
		return nil, fmt.Errorf("list activity entries: %w", err)
	}

	entries := make([]domain.ActivityEntry, 0, len(items))
	for _, item := range items {
		if collection.Kind(item) != domain.EntityKindActivity {
			continue
		}
		e, err := decode(item)
		if err != nil {
			r.log.WarnContext(ctx, "skipping undecodable activity item",
				slog.String("item_id", collection.ItemID(item)),
				slog.String("error", err.Error()),
			)
			continue
		}
		if e.BugID != bugID {
			continue
		}
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b domain.ActivityEntry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return entries, nil
}

// encode maps a domain.ActivityEntry to its collection item fields.
func encode(e domain.ActivityEntry) collection.Item {
	return collection.Item{
		collection.DiscriminatorKey: domain.EntityKindActivity.String(),
		"bugId":                     e.BugID,
		"action":                    e.Action.String(),
		"performedBy":               e.PerformedBy,
		"timestamp":                 e.Timestamp.UTC().Format(time.RFC3339),
	}
}

// decode maps a collection item back to a domain.ActivityEntry.
func decode(item collection.Item) (domain.ActivityEntry, error) {
	id := collection.ItemID(item)

	ts, err := collection.Time(item, "timestamp", entityName, id)
	if err != nil {
		return domain.ActivityEntry{}, err
	}

	return domain.ActivityEntry{
		ID:          id,
		BugID:       collection.String(item, "bugId"),
		Action:      domain.ActivityAction(collection.String(item, "action")),
		PerformedBy: collection.String(item, "performedBy"),
		Timestamp:   ts,
	}, nil
}
