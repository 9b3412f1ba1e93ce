package block

import (
	"strconv"

	"github.com/gilesknap/notiondata"
	"github.com/gilesknap/notiondata/enum"
	"github.com/gilesknap/notiondata/richtext"
)

// fieldPath joins a parent path and a field name, handling the empty root.
func fieldPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// optionalString reads a string field, reporting whether it was present.
// Explicit null counts as absent.
func optionalString(path string, m map[string]any, key string) (string, bool, error) {
	v, present := m[key]
	if !present || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, &notiondata.ValidationError{
			Path:    fieldPath(path, key),
			Value:   v,
			Message: key + " must be a string",
		}
	}
	return s, true, nil
}

func requiredString(path string, m map[string]any, key string) (string, error) {
	s, present, err := optionalString(path, m, key)
	if err != nil {
		return "", err
	}
	if !present {
		return "", &notiondata.ValidationError{
			Path:    fieldPath(path, key),
			Message: key + " is required",
		}
	}
	return s, nil
}

// boolField reads a boolean field, defaulting when absent or null.
func boolField(path string, m map[string]any, key string, def bool) (bool, error) {
	v, present := m[key]
	if !present || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, &notiondata.ValidationError{
			Path:    fieldPath(path, key),
			Value:   v,
			Message: key + " must be a boolean",
		}
	}
	return b, nil
}

func requiredBool(path string, m map[string]any, key string) (bool, error) {
	v, present := m[key]
	if !present || v == nil {
		return false, &notiondata.ValidationError{
			Path:    fieldPath(path, key),
			Message: key + " is required",
		}
	}
	b, ok := v.(bool)
	if !ok {
		return false, &notiondata.ValidationError{
			Path:    fieldPath(path, key),
			Value:   v,
			Message: key + " must be a boolean",
		}
	}
	return b, nil
}

// requiredInt reads an integral field. encoding/json decodes numbers as
// float64, so an integral float is accepted and anything fractional is not.
func requiredInt(path string, m map[string]any, key string) (int, error) {
	v, present := m[key]
	if !present || v == nil {
		return 0, &notiondata.ValidationError{
			Path:    fieldPath(path, key),
			Message: key + " is required",
		}
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		if n != float64(int64(n)) {
			return 0, &notiondata.ValidationError{
				Path:    fieldPath(path, key),
				Value:   v,
				Message: key + " must be an integer",
			}
		}
		return int(n), nil
	default:
		return 0, &notiondata.ValidationError{
			Path:    fieldPath(path, key),
			Value:   v,
			Message: key + " must be an integer",
		}
	}
}

// richTextField reads a required rich text field.
func richTextField(path string, m map[string]any, key string) (richtext.RichText, error) {
	v, present := m[key]
	if !present || v == nil {
		return nil, &notiondata.ValidationError{
			Path:    fieldPath(path, key),
			Message: key + " is required",
		}
	}
	return richtext.Parse(fieldPath(path, key), v)
}

func colorField(path string, m map[string]any) (enum.Color, error) {
	return enum.ParseColor(fieldPath(path, "color"), m["color"])
}

func parseLanguageField(path string, m map[string]any) (enum.Language, error) {
	return enum.ParseLanguage(fieldPath(path, "language"), m["language"])
}
