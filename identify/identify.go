// Package identify provides identifier validation and the user reference
// shape shared by block envelopes (created_by, last_edited_by).
//
// Block and request identifiers are UUIDs: 32 hexadecimal characters, either
// bare or hyphenated in the standard 8-4-4-4-12 grouping. Both spellings are
// accepted on input and preserved on output.
package identify

import (
	"github.com/google/uuid"

	"github.com/gilesknap/notiondata"
)

// ValidateID checks that s is a well-formed identifier: 32 hex characters,
// optionally hyphenated per the 8-4-4-4-12 grouping. path names the field
// for error reporting.
func ValidateID(path, s string) error {
	// uuid.Parse is laxer than the wire format (it also takes urn: and
	// braced spellings), so pin the length first.
	if len(s) != 32 && len(s) != 36 {
		return invalidID(path, s)
	}
	if _, err := uuid.Parse(s); err != nil {
		return invalidID(path, s)
	}
	return nil
}

func invalidID(path, s string) error {
	return &notiondata.ValidationError{
		Path:    path,
		Value:   s,
		Message: "must be a UUID (32 hex characters, optionally hyphenated 8-4-4-4-12)",
	}
}

// User is a reference to a Notion user, as found in the created_by and
// last_edited_by envelope fields. Only the identity is modeled; resolving a
// user to a person or bot is the API's business, not this library's.
type User struct {
	// Object is the object marker ("user") when the input carried one,
	// empty otherwise.
	Object string

	// ID is the user's identifier.
	ID string
}

// ParseUser validates a raw user reference found at path.
func ParseUser(path string, raw any) (*User, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &notiondata.ValidationError{
			Path:    path,
			Value:   raw,
			Message: "user reference must be an object",
		}
	}
	u := &User{}
	if v, present := m["object"]; present && v != nil {
		s, ok := v.(string)
		if !ok || s != "user" {
			return nil, &notiondata.ValidationError{
				Path:    path + ".object",
				Value:   v,
				Message: `object marker must be "user"`,
			}
		}
		u.Object = s
	}
	v, present := m["id"]
	if !present || v == nil {
		return nil, &notiondata.ValidationError{
			Path:    path + ".id",
			Message: "user reference requires an id",
		}
	}
	s, ok := v.(string)
	if !ok {
		return nil, &notiondata.ValidationError{
			Path:    path + ".id",
			Value:   v,
			Message: "user id must be a string",
		}
	}
	if err := ValidateID(path+".id", s); err != nil {
		return nil, err
	}
	u.ID = s
	return u, nil
}

// Raw re-emits the reference in wire shape.
func (u *User) Raw() map[string]any {
	raw := map[string]any{"id": u.ID}
	if u.Object != "" {
		raw["object"] = u.Object
	}
	return raw
}
