package notiondata

import (
	"fmt"
	"strings"
)

// ValidationError indicates that a field's raw value does not match its
// expected shape, pattern, or type. It is never raised for fields with an
// explicit schema default (color, archived, and so on); those default
// silently when absent.
//
// ValidationError supports errors.As, so callers can recover the field path
// and offending value from any conversion failure:
//
//	var verr *notiondata.ValidationError
//	if errors.As(err, &verr) {
//	    fmt.Println(verr.Path, verr.Message)
//	}
type ValidationError struct {
	// Path locates the offending field within the block tree, using dot and
	// index notation (e.g. "paragraph.children[2].to_do.rich_text").
	// Empty for failures at the root of the raw value.
	Path string

	// Value is the raw value that failed validation, when one was present.
	Value any

	// Message describes the expected shape or pattern.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("notiondata: ")
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Value != nil {
		fmt.Fprintf(&b, " (got %v)", e.Value)
	}
	return b.String()
}

// UnknownVariantError indicates that a block carried an explicit type tag
// with no matching entry in the block registry.
type UnknownVariantError struct {
	// Path locates the block whose tag failed to resolve.
	Path string

	// Type is the unrecognized tag value.
	Type string
}

// Error implements the error interface.
func (e *UnknownVariantError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("notiondata: unknown block type %q", e.Type)
	}
	return fmt.Sprintf("notiondata: %s: unknown block type %q", e.Path, e.Type)
}

// AmbiguousVariantError indicates that a block without an explicit type tag
// could not have its type inferred: either no key beyond the common envelope
// fields was present, or more than one was.
type AmbiguousVariantError struct {
	// Path locates the block whose type could not be inferred.
	Path string

	// Keys holds the candidate payload keys that were found, in sorted
	// order. Empty when no candidate existed at all.
	Keys []string
}

// Error implements the error interface.
func (e *AmbiguousVariantError) Error() string {
	prefix := "notiondata: "
	if e.Path != "" {
		prefix += e.Path + ": "
	}
	if len(e.Keys) == 0 {
		return prefix + "untyped block has no payload key to infer its type from"
	}
	return fmt.Sprintf("%suntyped block has %d candidate payload keys: %s",
		prefix, len(e.Keys), strings.Join(e.Keys, ", "))
}
