// Package enum defines the closed string enumerations used by block
// payloads: annotation/block colors and code block languages.
//
// Both enumerations mirror the value sets the Notion API accepts verbatim.
// Color carries an explicit schema default ("default"), so an absent color
// never fails validation; Language has no default and is required wherever a
// payload declares it.
//
// Parsing helpers return *notiondata.ValidationError with the caller's field
// path on any value outside the enumeration:
//
//	color, err := enum.ParseColor("callout.color", raw["color"])
package enum
