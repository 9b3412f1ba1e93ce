package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalPayloads holds the smallest valid payload for every registered
// variant.
var minimalPayloads = map[Type]map[string]any{
	TypeBookmark:         {"url": "https://example.com", "caption": []any{}},
	TypeBreadcrumb:       {},
	TypeBulletedListItem: {"rich_text": []any{}},
	TypeCallout:          {"rich_text": []any{}},
	TypeChildDatabase:    {"title": "Tasks"},
	TypeChildPage:        {"title": "Notes"},
	TypeCode:             {"caption": []any{}, "rich_text": []any{}, "language": "go"},
	TypeColumn:           {},
	TypeColumnList:       {},
	TypeDivider:          {},
	TypeEmbed:            {"url": "https://example.com"},
	TypeEquation:         {"expression": "e = mc^2"},
	TypeFile: {
		"type":     "external",
		"external": map[string]any{"url": "https://example.com/f.pdf"},
	},
	TypeHeading1:         {"rich_text": []any{}},
	TypeHeading2:         {"rich_text": []any{}},
	TypeHeading3:         {"rich_text": []any{}},
	TypeImage:            {"file": externalFile("https://example.com/i.png")},
	TypeLinkPreview:      {"url": "https://example.com"},
	TypeNumberedListItem: {"rich_text": []any{}},
	TypeParagraph:        {"rich_text": []any{}},
	TypeQuote:            {"rich_text": []any{}},
	TypeSyncedBlock:      {"synced_from": nil},
	TypeTable: {
		"table_width":       2,
		"has_column_header": false,
		"has_row_header":    false,
	},
	TypeTableRow: {"cells": []any{}},
	TypeToDo:     {"rich_text": []any{}},
	TypeToggle:   {"rich_text": []any{}},
	TypeVideo:    {"file": externalFile("https://example.com/v.mp4")},
}

func externalFile(url string) map[string]any {
	return map[string]any{
		"type":     "external",
		"external": map[string]any{"url": url},
	}
}

// Every registry entry parses a minimal raw object carrying its tag, and the
// resolved type matches the tag.
func TestRegistryCoverage(t *testing.T) {
	require.Len(t, minimalPayloads, len(registry),
		"minimal fixtures must cover the registry exactly")

	for typ, payload := range minimalPayloads {
		t.Run(string(typ), func(t *testing.T) {
			raw := map[string]any{
				"type":      string(typ),
				string(typ): payload,
			}

			b, err := Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, typ, b.Type)
			require.NotNil(t, b.Payload)
		})
	}
}

// Every variant survives a full parse/serialize/parse cycle unchanged.
func TestRegistryRoundTrip(t *testing.T) {
	for typ, payload := range minimalPayloads {
		t.Run(string(typ), func(t *testing.T) {
			raw := map[string]any{
				"object":    "block",
				"id":        "c02fc1d3-db8b-45c5-a222-27595b15aea7",
				"type":      string(typ),
				string(typ): payload,
			}

			first, err := Parse(raw)
			require.NoError(t, err)

			again, err := Parse(first.Raw())
			require.NoError(t, err)
			assert.Equal(t, first, again)
		})
	}
}

func TestTypes(t *testing.T) {
	types := Types()
	assert.Len(t, types, len(registry))
	assert.Contains(t, types, TypeParagraph)
	assert.Contains(t, types, TypeSyncedBlock)
}
