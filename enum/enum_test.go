package enum

import (
	"errors"
	"testing"

	"github.com/gilesknap/notiondata"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    Color
		wantErr bool
	}{
		{"absent defaults", nil, ColorDefault, false},
		{"foreground", "blue", ColorBlue, false},
		{"background", "red_background", ColorRedBackground, false},
		{"default spelled out", "default", ColorDefault, false},
		{"unknown color", "ultraviolet", "", true},
		{"wrong type", 42, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor("callout.color", tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var verr *notiondata.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("error type = %T, want *ValidationError", err)
				}
				if verr.Path != "callout.color" {
					t.Errorf("error path = %q, want %q", verr.Path, "callout.color")
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseColor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColor_Valid(t *testing.T) {
	if !ColorGrayBackground.Valid() {
		t.Error("gray_background should be valid")
	}
	if Color("grey").Valid() {
		t.Error("grey is not in the enumeration")
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    Language
		wantErr bool
	}{
		{"common language", "go", LanguageGo, false},
		{"spaced spelling", "plain text", LanguagePlainText, false},
		{"symbolic spelling", "c#", LanguageCSharp, false},
		{"unknown language", "cobol-2026", "", true},
		{"absent has no default", nil, "", true},
		{"wrong type", true, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLanguage("code.language", tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLanguage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLanguage() = %q, want %q", got, tt.want)
			}
		})
	}
}
