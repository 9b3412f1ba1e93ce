package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampCanonicalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already canonical", "2021-05-14T10:00:00Z", "2021-05-14T10:00:00Z"},
		{"fractional seconds dropped", "2021-05-14T10:00:00.000Z", "2021-05-14T10:00:00Z"},
		{"sub-second precision truncated", "2021-05-14T10:00:00.999Z", "2021-05-14T10:00:00Z"},
		{"zero numeric offset becomes Z", "2021-05-14T10:00:00+00:00", "2021-05-14T10:00:00Z"},
		{"non-zero offset preserved", "2021-05-14T10:00:00+05:30", "2021-05-14T10:00:00+05:30"},
		{"offset with fraction", "2021-05-14T10:00:00.123-08:00", "2021-05-14T10:00:00-08:00"},
		{"no offset read as UTC", "2021-05-14T10:00:00", "2021-05-14T10:00:00Z"},
		{"no offset with fraction", "2021-05-14T10:00:00.5", "2021-05-14T10:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parseTime("created_time", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, formatTime(parsed))
		})
	}
}

func TestParseTime_Invalid(t *testing.T) {
	for _, input := range []any{"14/05/2021", "yesterday", 1620986400, nil} {
		_, err := parseTime("created_time", input)
		require.Error(t, err, "input %v", input)
	}
}

// Two spellings of the same instant must normalize to the identical string.
func TestTimestampEquivalentSpellings(t *testing.T) {
	a, err := parseTime("t", "2021-05-14T10:00:00.000Z")
	require.NoError(t, err)
	b, err := parseTime("t", "2021-05-14T10:00:00Z")
	require.NoError(t, err)

	assert.Equal(t, formatTime(a), formatTime(b))
	assert.True(t, a.Equal(b))
}
