// Package notiondata models the Notion API block tree as a closed set of
// tagged variants and converts between that typed model and the loosely
// structured JSON the API speaks on the wire.
//
// The Notion API represents page content as a tree of "block" objects. Every
// block shares a common envelope (object marker, id, parent reference,
// timestamps, authorship, flags) and carries exactly one variant-specific
// payload under a key whose name equals the block's type tag, e.g.
//
//	{
//	    "object": "block",
//	    "id": "c02fc1d3-db8b-45c5-a222-27595b15aea7",
//	    "type": "paragraph",
//	    "has_children": false,
//	    "paragraph": {
//	        "rich_text": [...],
//	        "color": "default"
//	    }
//	}
//
// # Packages
//
// The module is organized around the block union and the sub-schemas its
// payloads reference:
//
//   - block: the core. Variant resolution, the block registry, envelope
//     parsing, recursive children handling, and timestamp canonicalization.
//   - richtext: rich text span collections and the bare URL payload shape.
//   - file: the external/hosted file union.
//   - parent: the parent reference union (database, page, block, workspace).
//   - identify: identifier validation and user references.
//   - enum: the color and code-language enumerations.
//
// This root package defines the error taxonomy shared by all of them.
//
// # Variant Resolution
//
// Blocks returned at the top level of an API response always carry an
// explicit "type" field. Blocks nested inside a "children" array do not; for
// those the type is implied by which single non-envelope key holds the
// payload. See the block package for the two-path resolution rules.
//
// # Error Handling
//
// All conversion failures surface as one of three structured error types:
// ValidationError, UnknownVariantError, or AmbiguousVariantError. Each
// carries the path of the offending field within the tree, accumulated
// through any level of children nesting, so callers can pinpoint the exact
// location of a malformed node:
//
//	_, err := block.ParseJSON(data)
//	var verr *notiondata.ValidationError
//	if errors.As(err, &verr) {
//	    log.Printf("bad field %s: %s", verr.Path, verr.Message)
//	}
//
// All errors are synchronous and indicate non-retryable input-format
// problems, never transient failures.
//
// # Concurrency
//
// Parsing and serialization are pure functions over immutable input. There is
// no shared state anywhere in the module; any number of conversions may run
// concurrently without coordination.
package notiondata
