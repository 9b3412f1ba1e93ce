// Package parent models the parent reference union found on every block
// envelope: a block belongs to a database, a page, another block, or the
// workspace root, discriminated by the reference's type tag.
package parent

import (
	"github.com/gilesknap/notiondata"
	"github.com/gilesknap/notiondata/identify"
)

// Union discriminator values.
const (
	TypeDatabase  = "database_id"
	TypePage      = "page_id"
	TypeBlock     = "block_id"
	TypeWorkspace = "workspace"
)

// Parent is one member of the parent reference union. Exactly one of the
// identifier fields is set, matching Type; for workspace parents none is.
type Parent struct {
	// Type is the union tag.
	Type string

	// DatabaseID, PageID, and BlockID hold the owning object's identifier
	// for the corresponding Type.
	DatabaseID string
	PageID     string
	BlockID    string
}

// Parse validates a raw parent reference found at path.
func Parse(path string, raw any) (*Parent, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &notiondata.ValidationError{
			Path:    path,
			Value:   raw,
			Message: "parent reference must be an object",
		}
	}

	v, present := m["type"]
	if !present || v == nil {
		return nil, &notiondata.ValidationError{
			Path:    path + ".type",
			Message: "parent reference requires a type tag",
		}
	}
	tag, ok := v.(string)
	if !ok {
		return nil, &notiondata.ValidationError{
			Path:    path + ".type",
			Value:   v,
			Message: "parent type must be a string",
		}
	}

	p := &Parent{Type: tag}
	switch tag {
	case TypeDatabase:
		id, err := idField(path, m, TypeDatabase)
		if err != nil {
			return nil, err
		}
		p.DatabaseID = id
	case TypePage:
		id, err := idField(path, m, TypePage)
		if err != nil {
			return nil, err
		}
		p.PageID = id
	case TypeBlock:
		id, err := idField(path, m, TypeBlock)
		if err != nil {
			return nil, err
		}
		p.BlockID = id
	case TypeWorkspace:
		// The workspace reference carries {"workspace": true} and nothing
		// else worth modeling.
	default:
		return nil, &notiondata.ValidationError{
			Path:    path + ".type",
			Value:   tag,
			Message: "not a recognized parent reference type",
		}
	}
	return p, nil
}

func idField(path string, m map[string]any, key string) (string, error) {
	v, present := m[key]
	if !present || v == nil {
		return "", &notiondata.ValidationError{
			Path:    path + "." + key,
			Message: "parent reference requires the id matching its type tag",
		}
	}
	s, ok := v.(string)
	if !ok {
		return "", &notiondata.ValidationError{
			Path:    path + "." + key,
			Value:   v,
			Message: "parent id must be a string",
		}
	}
	if err := identify.ValidateID(path+"."+key, s); err != nil {
		return "", err
	}
	return s, nil
}

// Raw re-emits the reference in wire shape.
func (p *Parent) Raw() map[string]any {
	raw := map[string]any{"type": p.Type}
	switch p.Type {
	case TypeDatabase:
		raw[TypeDatabase] = p.DatabaseID
	case TypePage:
		raw[TypePage] = p.PageID
	case TypeBlock:
		raw[TypeBlock] = p.BlockID
	case TypeWorkspace:
		raw[TypeWorkspace] = true
	}
	return raw
}
