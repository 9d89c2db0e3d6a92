package helpers

import "time"

// NullableString returns nil for an empty string, otherwise a pointer to it.
// Used when mapping optional text columns; pgx writes a nil pointer as NULL.
func NullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NullableInt64 returns nil for a zero value when valid is false,
// otherwise a pointer to the value.
func NullableInt64(i int64, valid bool) *int64 {
	if !valid {
		return nil
	}
	return &i
}

// NullableTime returns nil for a zero time, otherwise a pointer to it.
func NullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
