package tables

import (
	"strconv"
	"time"

	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

// cell returns the value at position i, tolerating short rows.
func cell(row ports.Row, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// atoiOrZero parses a cell as an integer, treating anything unparseable
// (including blanks) as zero.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// The sheets record booleans as Yes/No.
func parseYesNo(s string) bool {
	return s == "Yes"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
