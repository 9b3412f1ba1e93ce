package block

import (
	"sort"

	"github.com/gilesknap/notiondata"
)

// resolveType determines which variant a raw block mapping is.
//
// An explicit "type" field wins: its value must name a registry entry. When
// the tag is absent — the wire shape of every block nested in a children
// array — the variant is inferred from the single key that is not a common
// envelope field. Zero or multiple candidate keys make the block ambiguous.
func resolveType(path string, raw map[string]any) (Type, error) {
	if v, present := raw["type"]; present && v != nil {
		s, ok := v.(string)
		if !ok {
			return "", &notiondata.ValidationError{
				Path:    fieldPath(path, "type"),
				Value:   v,
				Message: "type tag must be a string",
			}
		}
		t := Type(s)
		if _, known := registry[t]; !known {
			return "", &notiondata.UnknownVariantError{Path: path, Type: s}
		}
		return t, nil
	}

	var candidates []string
	for key := range raw {
		if _, shared := envelopeKeys[key]; !shared {
			candidates = append(candidates, key)
		}
	}
	if len(candidates) != 1 {
		sort.Strings(candidates)
		return "", &notiondata.AmbiguousVariantError{Path: path, Keys: candidates}
	}

	t := Type(candidates[0])
	if _, known := registry[t]; !known {
		return "", &notiondata.UnknownVariantError{Path: path, Type: candidates[0]}
	}
	return t, nil
}
