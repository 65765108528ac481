// Package collection implements the adapter for the remote AppFlyte
// collection database: a schema-poor document store exposing only CRUD on
// loosely typed items with store-assigned ids. The Client normalizes the
// store's inconsistent response shapes and maps failures onto the domain
// error taxonomy; entity subpackages build typed repositories on top of
// the Store interface.
package collection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

// Item is the raw field map of a stored collection item.
type Item map[string]any

// Store is the minimal contract the entity repositories need from the
// collection database. Implemented by *Client; faked in tests.
type Store interface {
	// Create persists a new item and returns it including the
	// store-assigned id.
	Create(ctx context.Context, collectionName string, fields Item) (Item, error)
	// GetAll returns every raw item in the collection. An absent
	// collection yields an empty slice, not an error.
	GetAll(ctx context.Context, collectionName string) ([]Item, error)
	// GetByID returns the item, or nil (with a nil error) when the id
	// does not exist.
	GetByID(ctx context.Context, collectionName, itemID string) (Item, error)
	// Update replaces the given fields on an existing item and returns
	// the updated item. A missing item is domain.ErrNotFound.
	Update(ctx context.Context, collectionName, itemID string, updates Item) (Item, error)
	// Delete removes an item. Returns false (without error) when the
	// item does not exist.
	Delete(ctx context.Context, collectionName, itemID string) (bool, error)
}

const (
	// itemWrapperKey wraps the field map in create request bodies.
	itemWrapperKey = "collection_item"
	// autoIDKey is the store-assigned identifier key on returned items.
	autoIDKey = "__auto_id__"

	defaultTimeout = 30 * time.Second
)

// Client is an HTTP client for the collection database API. It performs
// no retries; retry policy belongs to callers, which can branch on the
// domain error taxonomy instead of matching message strings.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

var _ Store = (*Client)(nil)

// NewClient creates a collection DB client. baseURL is the full base URL
// of the tenant collection endpoint; apiKey is the static bearer
// credential sent on every call. A non-positive timeout falls back to 30s.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, domain.NewValidationError("base_url", "must not be empty")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, domain.NewValidationError("api_key", "must not be empty")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "collection"),
	}, nil
}

// Create persists fields as a new item.
// POST {base}/{collection} with body {"collection_item": {...}}.
func (c *Client) Create(ctx context.Context, collectionName string, fields Item) (Item, error) {
	const op = "collection.create"

	if len(fields) == 0 {
		return nil, domain.NewValidationError("fields", "must not be empty")
	}

	body := map[string]any{itemWrapperKey: fields}
	status, raw, err := c.do(ctx, http.MethodPost, c.url(collectionName), body)
	if err != nil {
		return nil, &domain.RemoteError{Op: op, Err: err}
	}
	if status < 200 || status >= 300 {
		return nil, &domain.RemoteError{Op: op, Status: status}
	}

	item, err := decodeItem(raw)
	if err != nil {
		return nil, &domain.RemoteError{Op: op, Err: err}
	}

	c.log.DebugContext(ctx, "item created",
		slog.String("collection", collectionLabel(collectionName)),
		slog.String("item_id", ItemID(item)),
	)
	return item, nil
}

// GetAll returns every item in the collection, flattening the three
// response shapes the API is known to produce: a plain list, an object
// with an "items" list, and an object keyed by internal collection
// definition ids whose values are lists of optionally payload-wrapped
// items.
func (c *Client) GetAll(ctx context.Context, collectionName string) ([]Item, error) {
	const op = "collection.getAll"

	status, raw, err := c.do(ctx, http.MethodGet, c.url(collectionName), nil)
	if err != nil {
		return nil, &domain.RemoteError{Op: op, Err: err}
	}
	if status == http.StatusNotFound {
		c.log.WarnContext(ctx, "collection not found, treating as empty",
			slog.String("collection", collectionLabel(collectionName)))
		return []Item{}, nil
	}
	if status < 200 || status >= 300 {
		return nil, &domain.RemoteError{Op: op, Status: status}
	}

	items := flattenItems(raw)
	c.log.DebugContext(ctx, "collection scanned",
		slog.String("collection", collectionLabel(collectionName)),
		slog.Int("items", len(items)),
	)
	return items, nil
}

// GetByID returns the item with the given id, or nil when it does not
// exist. Absence is a value, not an error.
func (c *Client) GetByID(ctx context.Context, collectionName, itemID string) (Item, error) {
	const op = "collection.getById"

	if strings.TrimSpace(itemID) == "" {
		return nil, domain.NewValidationError("item_id", "must not be empty")
	}

	status, raw, err := c.do(ctx, http.MethodGet, c.url(collectionName, itemID), nil)
	if err != nil {
		return nil, &domain.RemoteError{Op: op, Err: err}
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status < 200 || status >= 300 {
		return nil, &domain.RemoteError{Op: op, Status: status}
	}

	return decodeItem(raw)
}

// Update replaces fields on an existing item.
// PUT {base}/{collection}/{id} with the store's path/value update format:
// {"id": id, "fields": [{"path": "$.<name>", "value": <v>}, ...]}.
func (c *Client) Update(ctx context.Context, collectionName, itemID string, updates Item) (Item, error) {
	const op = "collection.update"

	if strings.TrimSpace(itemID) == "" {
		return nil, domain.NewValidationError("item_id", "must not be empty")
	}
	if len(updates) == 0 {
		return nil, domain.NewValidationError("updates", "must not be empty")
	}

	fields := make([]map[string]any, 0, len(updates))
	for key, value := range updates {
		fields = append(fields, map[string]any{
			"path":  "$." + key,
			"value": value,
		})
	}
	body := map[string]any{"id": itemID, "fields": fields}

	status, raw, err := c.do(ctx, http.MethodPut, c.url(collectionName, itemID), body)
	if err != nil {
		return nil, &domain.RemoteError{Op: op, Err: err}
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%s: item %s: %w", op, itemID, domain.ErrNotFound)
	}
	if status < 200 || status >= 300 {
		return nil, &domain.RemoteError{Op: op, Status: status}
	}

	item, err := decodeItem(raw)
	if err != nil {
		return nil, &domain.RemoteError{Op: op, Err: err}
	}

	c.log.DebugContext(ctx, "item updated",
		slog.String("collection", collectionLabel(collectionName)),
		slog.String("item_id", itemID),
		slog.Int("fields", len(fields)),
	)
	return item, nil
}

// Delete removes an item. A missing item yields false, not an error.
func (c *Client) Delete(ctx context.Context, collectionName, itemID string) (bool, error) {
	const op = "collection.delete"

	if strings.TrimSpace(itemID) == "" {
		return false, domain.NewValidationError("item_id", "must not be empty")
	}

	status, _, err := c.do(ctx, http.MethodDelete, c.url(collectionName, itemID), nil)
	if err != nil {
		return false, &domain.RemoteError{Op: op, Err: err}
	}
	if status == http.StatusNotFound {
		return false, nil
	}
	if status < 200 || status >= 300 {
		return false, &domain.RemoteError{Op: op, Status: status}
	}

	c.log.DebugContext(ctx, "item deleted",
		slog.String("collection", collectionLabel(collectionName)),
		slog.String("item_id", itemID),
	)
	return true, nil
}

// Ping checks that the store answers at all. Any HTTP response counts as
// reachable, including 404 for a not-yet-created collection; only
// transport failures and server errors report the store as down.
func (c *Client) Ping(ctx context.Context) error {
	const op = "collection.ping"

	status, _, err := c.do(ctx, http.MethodGet, c.url(""), nil)
	if err != nil {
		return &domain.RemoteError{Op: op, Err: err}
	}
	if status >= 500 {
		return &domain.RemoteError{Op: op, Status: status}
	}
	return nil
}

// url builds the request URL. An empty collection name addresses the
// base collection, which hosts all entity kinds multiplexed by the type
// discriminator.
func (c *Client) url(collectionName string, parts ...string) string {
	segments := make([]string, 0, len(parts)+2)
	segments = append(segments, c.baseURL)
	if collectionName != "" {
		segments = append(segments, collectionName)
	}
	segments = append(segments, parts...)
	return strings.Join(segments, "/")
}

// do issues a single HTTP request and decodes the JSON response body.
// It returns the status code and the decoded body (nil for empty bodies).
func (c *Client) do(ctx context.Context, method, url string, body any) (int, any, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	if len(raw) == 0 || resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil, nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// Error responses are not guaranteed to be JSON; callers decide
		// by status code first.
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp.StatusCode, nil, fmt.Errorf("decode response: %w", err)
		}
		return resp.StatusCode, nil, nil
	}

	return resp.StatusCode, decoded, nil
}

// decodeItem asserts that a decoded response body is a single item map.
func decodeItem(raw any) (Item, error) {
	if raw == nil {
		return Item{}, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response shape %T", raw)
	}
	return Item(m), nil
}

// flattenItems normalizes the read-all response into a flat item list.
func flattenItems(raw any) []Item {
	switch v := raw.(type) {
	case nil:
		return []Item{}
	case []any:
		items := make([]Item, 0, len(v))
		for _, el := range v {
			if m, ok := el.(map[string]any); ok {
				items = append(items, Item(m))
			}
		}
		return items
	case map[string]any:
		// Shape 2: {"items": [...]}.
		if list, ok := v["items"].([]any); ok {
			return flattenItems(list)
		}
		// Shape 3: values keyed by collection definition id, each a list
		// of items optionally wrapped in a {"payload": {...}} envelope.
		var items []Item
		for _, value := range v {
			list, ok := value.([]any)
			if !ok {
				continue
			}
			for _, el := range list {
				m, ok := el.(map[string]any)
				if !ok {
					continue
				}
				if payload, ok := m["payload"].(map[string]any); ok {
					items = append(items, Item(payload))
					continue
				}
				items = append(items, Item(m))
			}
		}
		if items != nil {
			return items
		}
		// A bare object is treated as a single-item collection.
		return []Item{Item(v)}
	default:
		return []Item{}
	}
}

// collectionLabel names a collection for logging.
func collectionLabel(name string) string {
	if name == "" {
		return "base"
	}
	return name
}
