// Package project implements project persistence over the collection
// DB. The remote schema has no native fields for project attributes, so
// everything beyond the name and creation time travels as a JSON
// payload inside the description text field.
package project

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/bugtrackr-backend/internal/adapter/collection"
	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

const entityName = "project"

// payload is the JSON document stored in the item's description field.
type payload struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	CreatedBy   string `json:"createdBy"`
}

// Repo provides project persistence backed by the collection DB.
type Repo struct {
	store          collection.Store
	collectionName string
	log            *slog.Logger
}

// New creates a project repository on the base collection.
func New(store collection.Store, logger *slog.Logger) *Repo {
	return &Repo{
		store: store,
		log:   logger.With("repo", "project"),
	}
}

// Create persists a new project and returns it with the assigned ID.
func (r *Repo) Create(ctx context.Context, p domain.Project) (domain.Project, error) {
	item, err := encode(p)
	if err != nil {
		return domain.Project{}, fmt.Errorf("encode project: %w", err)
	}
	created, err := r.store.Create(ctx, r.collectionName, item)
	if err != nil {
		return domain.Project{}, fmt.Errorf("create project: %w", err)
	}
	return decode(created)
}

// GetByID returns the project with the given ID. A missing item or an
// item of a different kind yields domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.Project, error) {
	item, err := r.store.GetByID(ctx, r.collectionName, id)
	if err != nil {
		return domain.Project{}, fmt.Errorf("get project %s: %w", id, err)
	}
	if item == nil {
		return domain.Project{}, fmt.Errorf("get project %s: %w", id, domain.ErrNotFound)
	}
	return decode(item)
}

// List returns all projects, newest first. Items whose payload cannot
// be decoded are skipped with a warning.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	items, err := r.store.GetAll(ctx, r.collectionName)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := make([]domain.Project, 0, len(items))
	for _, item := range items {
		pl, ok := peekPayload(item)
		if !ok {
			continue
		}
		p, err := decodeWithPayload(item, pl)
		if err != nil {
			r.log.WarnContext(ctx, "skipping undecodable project item",
				slog.String("item_id", collection.ItemID(item)),
				slog.String("error", err.Error()),
			)
			continue
		}
		projects = append(projects, p)
	}

	slices.SortFunc(projects, func(a, b domain.Project) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return projects, nil
}

// encode maps a domain.Project to its collection item fields. The
// project attributes without native columns are packed into the
// description field as JSON.
func encode(p domain.Project) (collection.Item, error) {
	raw, err := json.Marshal(payload{
		Type:        entityName,
		Description: p.Description,
		CreatedBy:   p.CreatedBy,
	})
	if err != nil {
		return nil, err
	}
	return collection.Item{
		"name":                p.Name,
		collection.PayloadKey: string(raw),
		"created_at":          collection.FormatNativeTime(p.CreatedAt),
	}, nil
}

// peekPayload parses the item's description field as a JSON payload.
// It reports false when the field does not hold a project payload,
// which covers both foreign kinds and corrupt data.
func peekPayload(item collection.Item) (payload, bool) {
	raw := collection.String(item, collection.PayloadKey)
	if raw == "" {
		return payload{}, false
	}
	var pl payload
	if err := json.Unmarshal([]byte(raw), &pl); err != nil {
		return payload{}, false
	}
	if pl.Type != entityName {
		return payload{}, false
	}
	return pl, true
}

func decode(item collection.Item) (domain.Project, error) {
	pl, ok := peekPayload(item)
	if !ok {
		return domain.Project{}, &domain.MalformedDataError{
			Entity: entityName,
			Field:  collection.PayloadKey,
			ItemID: collection.ItemID(item),
		}
	}
	return decodeWithPayload(item, pl)
}

func decodeWithPayload(item collection.Item, pl payload) (domain.Project, error) {
	id := collection.ItemID(item)

	createdAt, err := collection.Time(item, "created_at", entityName, id)
	if err != nil {
		return domain.Project{}, err
	}

	return domain.Project{
		ID:          id,
		Name:        collection.String(item, "name"),
		Description: pl.Description,
		CreatedBy:   pl.CreatedBy,
		CreatedAt:   createdAt,
	}, nil
}
