package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/talento/internal/models"
)

// ErrInvalidValue is returned for flag values that cannot be parsed
var ErrInvalidValue = errors.New("invalid value")

// DateLayout is the date format accepted by date flags
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD flag value in UTC
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q (expected YYYY-MM-DD)", ErrInvalidValue, value)
	}
	return t, nil
}

// ParseDatePtr is ParseDate for optional dates; empty means nil
func ParseDatePtr(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SplitList splits a comma separated flag value, dropping empty entries
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ResolveColumn accepts a column id or its title, case-insensitive, and
// returns the column id. Unknown names are returned unchanged so the board
// reports them as unknown columns.
func ResolveColumn(name string) string {
	name = strings.TrimSpace(name)
	for _, s := range models.PipelineStages {
		if strings.EqualFold(s.ID, name) || strings.EqualFold(s.Title, name) {
			return s.ID
		}
	}
	return name
}

// StageTitle returns the display title of a column id
func StageTitle(columnID string) string {
	for _, s := range models.PipelineStages {
		if s.ID == columnID {
			return s.Title
		}
	}
	return columnID
}
