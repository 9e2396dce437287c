package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MaxListLimit     = 200
	DefaultListLimit = 20
	CursorVersionV1  = "v1"
)

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id int64) string {
	cursorData := fmt.Sprintf("%s:%d-%d", CursorVersionV1, t.UnixMicro(), id)
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (time.Time, int64, error) {
	if cursor == "" {
		return time.Time{}, 0, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return time.Time{}, 0, fmt.Errorf("unsupported cursor version")
	}

	micros, rawID, ok := strings.Cut(payload, "-")
	if !ok {
		return time.Time{}, 0, fmt.Errorf("invalid cursor format: expected '<micros>-<id>'")
	}

	timestamp, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid timestamp: %w", err)
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return time.Time{}, 0, fmt.Errorf("invalid id %q", rawID)
	}

	return time.UnixMicro(timestamp), id, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// page fetches limit+1 rows to detect whether another page exists.
func page[T any](cursor *Cursor, limit int, first func(limit int32) ([]T, error), keyset func(t time.Time, id int64, limit int32) ([]T, error), key func(T) (time.Time, int64)) ([]T, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []T
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = first(int32(limit + 1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = keyset(lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		t, id := key(rows[limit-1])
		next = &Cursor{After: EncodeAfterCursor(t, id)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
