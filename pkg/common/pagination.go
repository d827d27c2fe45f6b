package common

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// Pagination defaults shared by every list endpoint
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page represents one page of a listing. NextCursor is empty on the last page.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// HasMore reports whether another page can be requested
func (p Page[T]) HasMore() bool {
	return p.NextCursor != ""
}

// EffectiveLimit clamps a requested page size to (0, MaxPageSize]
func EffectiveLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

// EncodeKeyCursor encodes a backend "last evaluated key" as URL-safe base64 JSON.
//
// Attribute values are coerced to their string representation, so a decoded
// cursor gives back strings even for numeric or boolean attributes.
func EncodeKeyCursor(key map[string]any) (string, error) {
	if len(key) == 0 {
		return "", nil
	}

	flat := make(map[string]string, len(key))
	for name, value := range key {
		flat[name] = stringify(value)
	}

	data, err := json.Marshal(flat)
	if err != nil {
		return "", fmt.Errorf("failed to encode cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// DecodeKeyCursor decodes a cursor produced by EncodeKeyCursor. An empty cursor
// means "first page" and yields a nil map.
func DecodeKeyCursor(cursor string) (map[string]string, error) {
	if strings.TrimSpace(cursor) == "" {
		return nil, nil
	}

	data, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, pkgerrors.NewInvalidCursor(err)
	}

	var key map[string]string
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, pkgerrors.NewInvalidCursor(err)
	}
	return key, nil
}

// EncodePositionalCursor encodes a zero-based page counter as URL-safe base64 JSON
func EncodePositionalCursor(page int64) string {
	data, _ := json.Marshal(page)
	return base64.URLEncoding.EncodeToString(data)
}

// DecodePositionalCursor returns the page counter stored in cursor; blank means page 0
func DecodePositionalCursor(cursor string) (int64, error) {
	if strings.TrimSpace(cursor) == "" {
		return 0, nil
	}

	data, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, pkgerrors.NewInvalidCursor(err)
	}

	var page int64
	if err := json.Unmarshal(data, &page); err != nil {
		return 0, pkgerrors.NewInvalidCursor(err)
	}
	if page < 0 {
		return 0, pkgerrors.NewInvalidCursor(fmt.Errorf("negative page %d", page))
	}
	return page, nil
}

// NextCursor returns the cursor of the page after cursor, or ok=false when
// total fits within limit and there is nothing left to fetch.
func NextCursor(total, limit int64, cursor string) (next string, ok bool, err error) {
	if total <= limit {
		return "", false, nil
	}

	page, err := DecodePositionalCursor(cursor)
	if err != nil {
		return "", false, err
	}
	return EncodePositionalCursor(page + 1), true, nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
