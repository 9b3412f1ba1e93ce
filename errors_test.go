package notiondata

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  ValidationError
		want string
	}{
		{
			name: "path and value",
			err:  ValidationError{Path: "paragraph.color", Value: 7, Message: "color must be a string"},
			want: "notiondata: paragraph.color: color must be a string (got 7)",
		},
		{
			name: "no path",
			err:  ValidationError{Message: "invalid JSON: unexpected end of input"},
			want: "notiondata: invalid JSON: unexpected end of input",
		},
		{
			name: "no value",
			err:  ValidationError{Path: "id", Message: "id is required"},
			want: "notiondata: id: id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_As(t *testing.T) {
	var err error = &ValidationError{Path: "id", Message: "bad"}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("errors.As failed to match *ValidationError")
	}
	if verr.Path != "id" {
		t.Errorf("Path = %q, want %q", verr.Path, "id")
	}
}

func TestUnknownVariantError_Error(t *testing.T) {
	err := &UnknownVariantError{Type: "bogus_type"}
	if !strings.Contains(err.Error(), `"bogus_type"`) {
		t.Errorf("Error() = %q, want the offending tag quoted", err.Error())
	}

	err = &UnknownVariantError{Path: "paragraph.children[0]", Type: "bogus_type"}
	if !strings.Contains(err.Error(), "paragraph.children[0]") {
		t.Errorf("Error() = %q, want the path included", err.Error())
	}
}

func TestAmbiguousVariantError_Error(t *testing.T) {
	err := &AmbiguousVariantError{Keys: []string{"paragraph", "quote"}}
	got := err.Error()
	if !strings.Contains(got, "2 candidate") || !strings.Contains(got, "paragraph, quote") {
		t.Errorf("Error() = %q, want candidate count and keys", got)
	}

	empty := &AmbiguousVariantError{Path: "children[3]"}
	if !strings.Contains(empty.Error(), "no payload key") {
		t.Errorf("Error() = %q, want the zero-candidate wording", empty.Error())
	}
}
