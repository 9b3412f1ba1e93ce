package block

import (
	"github.com/gilesknap/notiondata"
)

// parseChildren reads the optional ordered children array of a payload
// mapping. Absent or null yields nil; a present empty array yields an empty
// non-nil slice so the distinction survives a round trip. Each entry is a
// full block in its own right and recurses through the resolver.
func parseChildren(path string, raw map[string]any) ([]*Block, error) {
	v, present := raw["children"]
	if !present || v == nil {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, &notiondata.ValidationError{
			Path:    fieldPath(path, "children"),
			Value:   v,
			Message: "children must be an array of blocks",
		}
	}
	childPath := fieldPath(path, "children")
	children := make([]*Block, 0, len(arr))
	for i, item := range arr {
		child, err := parseBlock(indexPath(childPath, i), item)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// rawChildren serializes nested blocks in order. Children omit the explicit
// type tag, matching the wire shape they are read from.
func rawChildren(children []*Block) []any {
	out := make([]any, 0, len(children))
	for _, child := range children {
		out = append(out, child.rawMap(false))
	}
	return out
}
