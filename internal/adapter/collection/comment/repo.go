// Package comment implements the Comment repository over the collection
// DB. Comments are conversation records: listings are ordered oldest
// first by creation time.
package comment

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/adapter/collection"
	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

const entityName = "comment"

// Repo provides comment persistence backed by the collection DB.
type Repo struct {
	store          collection.Store
	collectionName string
	log            *slog.Logger
}

// New creates a comment repository on the base collection.
func New(store collection.Store, logger *slog.Logger) *Repo {
	return &Repo{
		store: store,
		log:   logger.With("repo", "comment"),
	}
}

// Create persists a new comment and returns it with the store-assigned
// id. The caller is responsible for checking that the referenced bug
// exists; the store enforces no referential integrity.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	item, err := r.store.Create(ctx, r.collectionName, encode(c))
	if err != nil {
		return domain.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return decode(item)
}

// GetByID returns the comment with the given id, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	item, err := r.store.GetByID(ctx, r.collectionName, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}
	c, err := decode(item)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByBug returns all comments on a bug, oldest first. Undecodable
// items are skipped with a warning.
func (r *Repo) ListByBug(ctx context.Context, bugID string) ([]domain.Comment, error) {
	items, err := r.store.GetAll(ctx, r.collectionName)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments := make([]domain.Comment, 0, len(items))
	for _, item := range items {
		if collection.Kind(item) != domain.EntityKindComment {
			continue
		}
		c, err := decode(item)
		if err != nil {
			r.log.WarnContext(ctx, "skipping undecodable comment item",
				slog.String("item_id", collection.ItemID(item)),
				slog.String("error", err.Error()),
			)
			continue
		}
		if c.BugID != bugID {
			continue
		}
		comments = append(comments, c)
	}

	slices.SortFunc(comments, func(a, b domain.Comment) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return comments, nil
}

// Delete removes a comment. Used as the compensating action when the
// parent bug touch fails after a comment was created. Returns
// domain.ErrNotFound when the comment no longer exists.
func (r *Repo) Delete(ctx context.Context, id string) error {
	ok, err := r.store.Delete(ctx, r.collectionName, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if !ok {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// encode maps a domain.Comment to its collection item fields.
func encode(c domain.Comment) collection.Item {
	return collection.Item{
		collection.DiscriminatorKey: domain.EntityKindComment.String(),
		"bugId":                     c.BugID,
		"authorId":                  c.AuthorID,
		"message":                   c.Message,
		"createdAt":                 c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// decode maps a collection item back to a domain.Comment.
func decode(item collection.Item) (domain.Comment, error) {
	id := collection.ItemID(item)

	createdAt, err := collection.Time(item, "createdAt", entityName, id)
	if err != nil {
		return domain.Comment{}, err
	}

	return domain.Comment{
		ID:        id,
		BugID:     collection.String(item, "bugId"),
		AuthorID:  collection.String(item, "authorId"),
		Message:   collection.String(item, "message"),
		CreatedAt: createdAt,
	}, nil
}
