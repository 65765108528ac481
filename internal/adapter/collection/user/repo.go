// Package user implements user lookups over the collection DB. Users
// are provisioned out of band, so the repository is read-only. Like
// projects, user attributes without native columns travel as a JSON
// payload inside the description field.
package user

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/bugtrackr-backend/internal/adapter/collection"
	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

const entityName = "user"

// payload is the JSON document stored in the item's description field.
type payload struct {
	Type  string `json:"type"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Repo provides user lookups backed by the collection DB.
type Repo struct {
	store          collection.Store
	collectionName string
	log            *slog.Logger
}

// New creates a user repository on the base collection.
func New(store collection.Store, logger *slog.Logger) *Repo {
	return &Repo{
		store: store,
		log:   logger.With("repo", "user"),
	}
}

// GetByID returns the user with the given ID. A missing item yields
// domain.ErrNotFound; an item that cannot be decoded as a user yields
// a MalformedDataError.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.User, error) {
	item, err := r.store.GetByID(ctx, r.collectionName, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user %s: %w", id, err)
	}
	if item == nil {
		return domain.User{}, fmt.Errorf("get user %s: %w", id, domain.ErrNotFound)
	}
	return decode(item)
}

// GetByEmail returns the user with the given email, matched
// case-insensitively. Missing users yield domain.ErrNotFound.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	users, err := r.list(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("get user by email: %w", domain.ErrNotFound)
}

// GetByRole returns all users holding the given role, sorted by name.
func (r *Repo) GetByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	users, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Role == role {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// List returns all users, sorted by name.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx)
}

func (r *Repo) list(ctx context.Context) ([]domain.User, error) {
	items, err := r.store.GetAll(ctx, r.collectionName)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, 0, len(items))
	for _, item := range items {
		pl, ok := peekPayload(item)
		if !ok {
			continue
		}
		u, err := decodeWithPayload(item, pl)
		if err != nil {
			r.log.WarnContext(ctx, "skipping undecodable user item",
				slog.String("item_id", collection.ItemID(item)),
				slog.String("error", err.Error()),
			)
			continue
		}
		users = append(users, u)
	}

	slices.SortFunc(users, func(a, b domain.User) int {
		return strings.Compare(a.Name, b.Name)
	})
	return users, nil
}

// peekPayload parses the item's description field as a JSON payload.
// It reports false when the field does not hold a user payload.
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

func decode(item collection.Item) (domain.User, error) {
	pl, ok := peekPayload(item)
	if !ok {
		return domain.User{}, &domain.MalformedDataError{
			Entity: entityName,
			Field:  collection.PayloadKey,
			ItemID: collection.ItemID(item),
		}
	}
	return decodeWithPayload(item, pl)
}

func decodeWithPayload(item collection.Item, pl payload) (domain.User, error) {
	id := collection.ItemID(item)

	role := domain.UserRole(pl.Role)
	if !role.IsValid() {
		return domain.User{}, &domain.MalformedDataError{
			Entity: entityName,
			Field:  "role",
			ItemID: id,
		}
	}

	createdAt, err := collection.Time(item, "created_at", entityName, id)
	if err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:        id,
		Name:      collection.String(item, "name"),
		Email:     pl.Email,
		Role:      role,
		CreatedAt: createdAt,
	}, nil
}
