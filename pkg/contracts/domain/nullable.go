package domain

import (
	"strconv"
)

// NullInt64 is an integer cell that may be absent.
// The zero value is null.
type NullInt64 struct {
	Value int64 `json:"value"`
	Valid bool  `json:"valid"`
}

// Int64 returns a valid NullInt64 holding v
func Int64(v int64) NullInt64 {
	return NullInt64{Value: v, Valid: true}
}

// IsNull reports whether the value is absent
func (n NullInt64) IsNull() bool {
	return !n.Valid
}

// String renders the value for CSV output; null renders as an empty cell
func (n NullInt64) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatInt(n.Value, 10)
}

// NullString is a text cell that may be absent, e.g. education fields
// of a wage row with no matching education record.
type NullString struct {
	Value string `json:"value"`
	Valid bool   `json:"valid"`
}

// String returns a valid NullString holding s
func String(s string) NullString {
	return NullString{Value: s, Valid: true}
}

// IsNull reports whether the value is absent
func (n NullString) IsNull() bool {
	return !n.Valid
}

// String renders the value for CSV output; null renders as an empty cell
func (n NullString) String() string {
	if !n.Valid {
		return ""
	}
	return n.Value
}
