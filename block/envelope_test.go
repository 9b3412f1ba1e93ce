package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_RawOmitsAbsentFields(t *testing.T) {
	b, err := Parse(map[string]any{
		"type":      "paragraph",
		"paragraph": map[string]any{"rich_text": []any{}},
	})
	require.NoError(t, err)

	raw := b.Raw()
	for _, key := range []string{"object", "id", "parent", "created_time", "last_edited_time", "created_by", "last_edited_by", "request_id"} {
		_, present := raw[key]
		assert.False(t, present, "absent field %q must not be emitted", key)
	}
	// The flag fields carry schema defaults and always emit.
	assert.Equal(t, false, raw["has_children"])
	assert.Equal(t, false, raw["archived"])
	assert.Equal(t, false, raw["in_trash"])
}

// Explicit null and absent both normalize to the field's default.
func TestEnvelope_ExplicitNulls(t *testing.T) {
	b, err := Parse(map[string]any{
		"id":           nil,
		"parent":       nil,
		"created_time": nil,
		"archived":     nil,
		"type":         "paragraph",
		"paragraph":    map[string]any{"rich_text": []any{}},
	})
	require.NoError(t, err)

	assert.Empty(t, b.ID)
	assert.Nil(t, b.Parent)
	assert.Nil(t, b.CreatedTime)
	assert.False(t, b.Archived)

	_, present := b.Raw()["id"]
	assert.False(t, present, "a null input field is omitted on output")
}

func TestEnvelope_RequestIDValidated(t *testing.T) {
	_, err := Parse(map[string]any{
		"request_id": "not-a-uuid",
		"type":       "divider",
		"divider":    map[string]any{},
	})
	require.Error(t, err)
}
