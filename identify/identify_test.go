package identify

import (
	"errors"
	"testing"

	"github.com/gilesknap/notiondata"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"hyphenated", "c02fc1d3-db8b-45c5-a222-27595b15aea7", false},
		{"bare hex", "c02fc1d3db8b45c5a22227595b15aea7", false},
		{"uppercase hex", "C02FC1D3-DB8B-45C5-A222-27595B15AEA7", false},
		{"not a uuid", "not-a-uuid", true},
		{"too short", "c02fc1d3", true},
		{"urn spelling rejected", "urn:uuid:c02fc1d3-db8b-45c5-a222-27595b15aea7", true},
		{"braced spelling rejected", "{c02fc1d3-db8b-45c5-a222-27595b15aea7}", true},
		{"non-hex characters", "z02fc1d3-db8b-45c5-a222-27595b15aea7", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID("id", tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil {
				var verr *notiondata.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("error type = %T, want *ValidationError", err)
				}
				if verr.Path != "id" {
					t.Errorf("error path = %q, want %q", verr.Path, "id")
				}
			}
		})
	}
}

func TestParseUser(t *testing.T) {
	raw := map[string]any{
		"object": "user",
		"id":     "6794760a-1f15-45cd-9c65-0dfe42f5135a",
	}

	u, err := ParseUser("created_by", raw)
	if err != nil {
		t.Fatalf("ParseUser() error = %v", err)
	}
	if u.ID != "6794760a-1f15-45cd-9c65-0dfe42f5135a" {
		t.Errorf("ID = %q", u.ID)
	}
	if u.Object != "user" {
		t.Errorf("Object = %q, want %q", u.Object, "user")
	}
}

func TestParseUser_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		path string
	}{
		{"not an object", "someone", "created_by"},
		{"missing id", map[string]any{"object": "user"}, "created_by.id"},
		{"bad id", map[string]any{"id": "nope"}, "created_by.id"},
		{"wrong marker", map[string]any{"object": "page", "id": "6794760a-1f15-45cd-9c65-0dfe42f5135a"}, "created_by.object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUser("created_by", tt.raw)
			var verr *notiondata.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if verr.Path != tt.path {
				t.Errorf("error path = %q, want %q", verr.Path, tt.path)
			}
		})
	}
}

func TestUser_Raw(t *testing.T) {
	u := &User{Object: "user", ID: "6794760a-1f15-45cd-9c65-0dfe42f5135a"}
	raw := u.Raw()
	if raw["object"] != "user" || raw["id"] != u.ID {
		t.Errorf("Raw() = %v", raw)
	}

	// A reference parsed without a marker serializes without one.
	bare := &User{ID: u.ID}
	if _, present := bare.Raw()["object"]; present {
		t.Error("Raw() should omit an absent object marker")
	}
}
