// Package block implements the block union at the heart of the module:
// resolving which of the registered variants a raw JSON object is, validating
// and constructing the typed block (including recursively nested children),
// and serializing it back to the wire shape the API expects.
//
// # Variant Resolution
//
// Resolution is two-path, because the API itself is inconsistent about type
// tags:
//
//   - Blocks listed at the top level of a response always carry an explicit
//     "type" field. Its value selects the registry entry directly; a value
//     with no entry fails with *notiondata.UnknownVariantError.
//   - Blocks nested in a "children" array never carry "type". For those the
//     variant is inferred from the single key that is not a common envelope
//     field; zero or more than one such key fails with
//     *notiondata.AmbiguousVariantError.
//
// Once resolved, the tag is fixed on the typed block and downstream parsing
// never re-derives it.
//
// # The Registry
//
// Every variant the API defines has one entry in a static table mapping its
// tag to a payload parser and serializer pair. Adding a variant means adding
// one entry and, if its payload is a new shape, one payload type; the
// resolver and envelope logic never change.
//
// # Children
//
// Several payloads own an ordered list of nested blocks. Parsing recurses
// through the resolver for each entry, preserving order; absent or empty
// children are never an error. Recursion is bounded by the input tree's
// depth, which for real documents is tens of levels at most.
//
// # Timestamps
//
// created_time and last_edited_time accept any ISO 8601 spelling on input
// (with or without fractional seconds or an explicit offset) and always
// serialize to second precision, with a literal "Z" for UTC and the numeric
// offset preserved otherwise.
//
// # Round-Tripping
//
// Serialization re-emits every populated field under the same keys it was
// read from. The exceptions: timestamps are canonicalized, fields that were
// null or absent on input are omitted, and the boolean envelope flags
// (has_children, archived, in_trash) and payload fields with schema defaults
// always emit, since the typed model has no absent state for them. Top-level
// blocks serialize with their "type" tag; children entries omit it, matching
// the wire shape they were read from.
package block
