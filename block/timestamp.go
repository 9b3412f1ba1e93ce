package block

import (
	"time"

	"github.com/gilesknap/notiondata"
)

// timeLayouts are the ISO 8601 spellings accepted on input. The API promises
// RFC 3339 but has been seen emitting timestamps without an offset; those
// are read as UTC.
// time.Parse tolerates fractional seconds whether or not the layout names
// them, so two layouts cover every combination.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// parseTime reads a raw timestamp value, truncating to second precision.
// The parsed time keeps its original offset so that serialization can
// preserve it.
func parseTime(path string, raw any) (time.Time, error) {
	s, ok := raw.(string)
	if !ok {
		return time.Time{}, &notiondata.ValidationError{
			Path:    path,
			Value:   raw,
			Message: "timestamp must be a string",
		}
	}
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.Truncate(time.Second), nil
		}
	}
	return time.Time{}, &notiondata.ValidationError{
		Path:    path,
		Value:   s,
		Message: "timestamp must be ISO 8601",
	}
}

// formatTime renders the canonical output form: second precision, "Z" for a
// zero offset, the numeric offset otherwise.
func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
