package collection

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

// DiscriminatorKey is the field carrying the entity kind tag for items
// whose kind is stored natively (bugs, comments, activity entries).
const DiscriminatorKey = "type"

// PayloadKey is the free-text field that carries the JSON overflow
// payload for entity kinds whose attributes exceed the physical schema
// (projects, users).
const PayloadKey = "description"

// nativeCreatedAtFormat is how the store's native created_at field is
// written (the schema predates RFC 3339 timestamps).
const nativeCreatedAtFormat = "2006-01-02 15:04:05"

// ItemID extracts the item identifier, preferring an explicit "_id" over
// the store's auto-assigned key.
func ItemID(item Item) string {
	if id, ok := item["_id"].(string); ok && id != "" {
		return id
	}
	if id, ok := item[autoIDKey].(string); ok {
		return id
	}
	return ""
}

// Kind returns the native discriminator tag of an item, or "" when the
// item carries none.
func Kind(item Item) domain.EntityKind {
	tag, _ := item[DiscriminatorKey].(string)
	return domain.EntityKind(tag)
}

// String returns a string field, or "" when absent or differently typed.
func String(item Item, key string) string {
	s, _ := item[key].(string)
	return s
}

// Bool returns a bool field, or false when absent or differently typed.
func Bool(item Item, key string) bool {
	b, _ := item[key].(bool)
	return b
}

// Strings returns a string-list field, tolerating the []any shape JSON
// decoding produces.
func Strings(item Item, key string) []string {
	switch v := item[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, el := range v {
			if s, ok := el.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Time decodes a timestamp field. Three states are tolerated: absent
// (zero time), already a time.Time (passed through), and a text encoding
// (parsed). Any other runtime type is a MalformedDataError naming the
// entity, field, and item id.
func Time(item Item, key, entity, itemID string) (time.Time, error) {
	switch v := item[key].(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	case string:
		t, err := ParseTime(v)
		if err != nil {
			return time.Time{}, &domain.MalformedDataError{Entity: entity, Field: key, ItemID: itemID, Err: err}
		}
		return t, nil
	default:
		return time.Time{}, &domain.MalformedDataError{
			Entity: entity, Field: key, ItemID: itemID,
			Err: fmt.Errorf("unexpected type %T", v),
		}
	}
}

// ParseTime parses the two text encodings the store is known to hold:
// RFC 3339 (what this backend writes for lifecycle timestamps) and the
// store's native "2006-01-02 15:04:05" form.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	// The native format may also appear with a "T" separator.
	normalized := strings.Replace(s, "T", " ", 1)
	if t, err := time.Parse(nativeCreatedAtFormat, normalized); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q", s)
}

// FormatNativeTime renders a timestamp in the store's native created_at
// format.
func FormatNativeTime(t time.Time) string {
	return t.UTC().Format(nativeCreatedAtFormat)
}

// SerializeFields converts typed update values to their wire form:
// timestamps to RFC 3339, enum-like stringers to their string value.
// Primitive values pass through unchanged.
func SerializeFields(updates map[string]any) Item {
	out := make(Item, len(updates))
	for key, value := range updates {
		switch v := value.(type) {
		case time.Time:
			out[key] = v.UTC().Format(time.RFC3339)
		case fmt.Stringer:
			out[key] = v.String()
		default:
			out[key] = v
		}
	}
	return out
}
