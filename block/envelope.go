package block

import (
	"time"

	"github.com/gilesknap/notiondata"
	"github.com/gilesknap/notiondata/identify"
	"github.com/gilesknap/notiondata/parent"
)

// envelopeKeys are the field names shared by every block variant, plus the
// explicit type tag. Any other key on an untyped block is a candidate
// payload key for variant inference.
var envelopeKeys = map[string]struct{}{
	"object":           {},
	"id":               {},
	"parent":           {},
	"created_time":     {},
	"last_edited_time": {},
	"created_by":       {},
	"last_edited_by":   {},
	"has_children":     {},
	"archived":         {},
	"in_trash":         {},
	"request_id":       {},
	"type":             {},
}

// Envelope holds the fields common to every block variant. All reference
// fields are optional; absent and explicit null both parse to the zero
// value. The three boolean flags carry schema defaults of false.
type Envelope struct {
	// Object is the object marker ("block") when the input carried one,
	// empty otherwise. A present marker with any other value is rejected.
	Object string

	// ID is the block's identifier, empty when absent. When present it is
	// a UUID, bare or hyphenated.
	ID string

	// Parent references the object that owns this block.
	Parent *parent.Parent

	// CreatedTime and LastEditedTime are second-precision timestamps,
	// retaining the offset they were read with.
	CreatedTime    *time.Time
	LastEditedTime *time.Time

	// CreatedBy and LastEditedBy reference the responsible users.
	CreatedBy    *identify.User
	LastEditedBy *identify.User

	// HasChildren is the API's advisory flag. It is carried through
	// verbatim and never consulted to decide whether a payload actually
	// holds a children array.
	HasChildren bool

	// Archived and InTrash are the block's lifecycle flags.
	Archived bool
	InTrash  bool

	// RequestID is the identifier of the API request that produced this
	// block, empty when absent.
	RequestID string
}

// parseEnvelope extracts and validates the shared fields from a raw block
// mapping. Payload keys and the type tag are left alone.
func parseEnvelope(path string, raw map[string]any) (Envelope, error) {
	var env Envelope

	obj, present, err := optionalString(path, raw, "object")
	if err != nil {
		return env, err
	}
	if present {
		if obj != "block" {
			return env, &notiondata.ValidationError{
				Path:    fieldPath(path, "object"),
				Value:   obj,
				Message: `object marker must be "block"`,
			}
		}
		env.Object = obj
	}

	id, present, err := optionalString(path, raw, "id")
	if err != nil {
		return env, err
	}
	if present {
		if err := identify.ValidateID(fieldPath(path, "id"), id); err != nil {
			return env, err
		}
		env.ID = id
	}

	if v, ok := raw["parent"]; ok && v != nil {
		p, err := parent.Parse(fieldPath(path, "parent"), v)
		if err != nil {
			return env, err
		}
		env.Parent = p
	}

	for _, f := range []struct {
		key string
		dst **time.Time
	}{
		{"created_time", &env.CreatedTime},
		{"last_edited_time", &env.LastEditedTime},
	} {
		v, ok := raw[f.key]
		if !ok || v == nil {
			continue
		}
		t, err := parseTime(fieldPath(path, f.key), v)
		if err != nil {
			return env, err
		}
		*f.dst = &t
	}

	for _, f := range []struct {
		key string
		dst **identify.User
	}{
		{"created_by", &env.CreatedBy},
		{"last_edited_by", &env.LastEditedBy},
	} {
		v, ok := raw[f.key]
		if !ok || v == nil {
			continue
		}
		u, err := identify.ParseUser(fieldPath(path, f.key), v)
		if err != nil {
			return env, err
		}
		*f.dst = u
	}

	for _, f := range []struct {
		key string
		dst *bool
	}{
		{"has_children", &env.HasChildren},
		{"archived", &env.Archived},
		{"in_trash", &env.InTrash},
	} {
		b, err := boolField(path, raw, f.key, false)
		if err != nil {
			return env, err
		}
		*f.dst = b
	}

	reqID, present, err := optionalString(path, raw, "request_id")
	if err != nil {
		return env, err
	}
	if present {
		if err := identify.ValidateID(fieldPath(path, "request_id"), reqID); err != nil {
			return env, err
		}
		env.RequestID = reqID
	}

	return env, nil
}

// rawMap re-emits the populated envelope fields. The boolean flags always
// emit; everything else only when present.
func (e *Envelope) rawMap() map[string]any {
	raw := map[string]any{
		"has_children": e.HasChildren,
		"archived":     e.Archived,
		"in_trash":     e.InTrash,
	}
	if e.Object != "" {
		raw["object"] = e.Object
	}
	if e.ID != "" {
		raw["id"] = e.ID
	}
	if e.Parent != nil {
		raw["parent"] = e.Parent.Raw()
	}
	if e.CreatedTime != nil {
		raw["created_time"] = formatTime(*e.CreatedTime)
	}
	if e.LastEditedTime != nil {
		raw["last_edited_time"] = formatTime(*e.LastEditedTime)
	}
	if e.CreatedBy != nil {
		raw["created_by"] = e.CreatedBy.Raw()
	}
	if e.LastEditedBy != nil {
		raw["last_edited_by"] = e.LastEditedBy.Raw()
	}
	if e.RequestID != "" {
		raw["request_id"] = e.RequestID
	}
	return raw
}
