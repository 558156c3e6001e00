// Package store translates raw row maps from the query layer into the
// API-shaped records in models, applying entity decoding, type coercion,
// and preview building. One store per entity, mirroring the table layout.
package store

import (
	"strconv"
	"time"
)

// asInt coerces a scanned column value to int. The pgx driver reports
// integer columns as int64; COUNT aggregates may also arrive as int64.
func asInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int32:
		return int(n)
	case int:
		return n
	case []byte:
		i, _ := strconv.Atoi(string(n))
		return i
	case string:
		i, _ := strconv.Atoi(n)
		return i
	default:
		return 0
	}
}

// asString coerces a scanned column value to string, with "" for NULL.
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case time.Time:
		return s.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// asNullString returns nil for NULL columns, otherwise the string value.
// Used for the category name on posts, which is absent for uncategorized
// posts.
func asNullString(v any) *string {
	if v == nil {
		return nil
	}
	s := asString(v)
	return &s
}
