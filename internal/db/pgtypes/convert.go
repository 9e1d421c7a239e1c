// Package pgtypes converts between the pgtype values used by the generated
// queries and the plain Go values used by the rest of the middleware.
package pgtypes

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// TextFromPtr returns a NULL text for nil and a valid text otherwise
func TextFromPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// PtrFromText is the inverse of TextFromPtr
func PtrFromText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// TimestampFromPtr returns a NULL timestamp for nil and a valid timestamp otherwise.
// TIMESTAMP columns carry no zone, so the value is stored as its UTC wall clock.
func TimestampFromPtr(tm *time.Time) pgtype.Timestamp {
	if tm == nil {
		return pgtype.Timestamp{}
	}
	return pgtype.Timestamp{Time: tm.UTC(), Valid: true}
}

// PtrFromTimestamp is the inverse of TimestampFromPtr
func PtrFromTimestamp(ts pgtype.Timestamp) *time.Time {
	if !ts.Valid {
		return nil
	}
	tm := ts.Time
	return &tm
}

// TimeFromTimestamptz returns the zero time for a NULL timestamptz
func TimeFromTimestamptz(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time
}
