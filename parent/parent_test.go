package parent

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gilesknap/notiondata"
)

const pageID = "48f8fee9-cd79-4180-bc2f-ec0398253067"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want Parent
	}{
		{
			name: "page parent",
			raw:  map[string]any{"type": "page_id", "page_id": pageID},
			want: Parent{Type: TypePage, PageID: pageID},
		},
		{
			name: "database parent",
			raw:  map[string]any{"type": "database_id", "database_id": pageID},
			want: Parent{Type: TypeDatabase, DatabaseID: pageID},
		},
		{
			name: "block parent",
			raw:  map[string]any{"type": "block_id", "block_id": pageID},
			want: Parent{Type: TypeBlock, BlockID: pageID},
		},
		{
			name: "workspace parent",
			raw:  map[string]any{"type": "workspace", "workspace": true},
			want: Parent{Type: TypeWorkspace},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse("parent", tt.raw)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", *got, tt.want)
			}
			if !reflect.DeepEqual(got.Raw(), tt.raw) {
				t.Errorf("Raw() = %v, want %v", got.Raw(), tt.raw)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		path string
	}{
		{"not an object", 3, "parent"},
		{"missing type", map[string]any{"page_id": pageID}, "parent.type"},
		{"unknown type", map[string]any{"type": "galaxy_id"}, "parent.type"},
		{"id missing", map[string]any{"type": "page_id"}, "parent.page_id"},
		{"id malformed", map[string]any{"type": "block_id", "block_id": "not-a-uuid"}, "parent.block_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("parent", tt.raw)
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
