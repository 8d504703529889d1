package sqlite

import (
	"strings"
	"time"

	"github.com/cs1429/IronTrack/internal/domain"
)

// formatTime renders a timestamp for storage. Dates are stored as RFC 3339
// text so lexical order matches chronological order.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func strp(s string) *string {
	return &s
}

// placeholders returns "?,?,...,?" with n slots for IN clauses.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func nameTakenErr(err error) error {
	if isUniqueViolation(err) {
		return &domain.ValidationError{Field: "name", Message: "name already in use"}
	}
	return err
}
