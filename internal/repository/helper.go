package repository

import (
	"fmt"
	"strings"
	"time"
)

// CreatedAtLayout is the text form used for timestamp columns. It is
// fixed-width: unlike RFC3339Nano it never trims trailing fractional
// zeros, so lexicographic ORDER BY on the stored text matches
// chronological order. Timestamps are always stored in UTC.
const CreatedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ParseTime parses a date or datetime string as stored by SQLite.
// Accepts "2006-01-02", RFC3339 (with or without fractional seconds),
// and the bare "2006-01-02 15:04:05" form produced by CURRENT_TIMESTAMP.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %q", str)
}

// escapeLike escapes LIKE metacharacters in a user-supplied term so the
// term matches literally. The query must carry ESCAPE '\'.
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}

// isUniqueViolation reports whether err is a SQLite unique-constraint
// violation. The modernc driver does not export a typed error for this,
// so the constraint message is matched directly.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
