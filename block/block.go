package block

import (
	"encoding/json"
	"fmt"

	"github.com/gilesknap/notiondata"
)

// Block is one node of the content tree: the common envelope, the resolved
// variant tag, and the variant's typed payload. Blocks are immutable value
// data constructed per conversion; they hold no identity beyond their
// fields.
type Block struct {
	Envelope

	// Type is the resolved variant tag.
	Type Type

	// Payload is the variant-specific inner data. Its concrete type is
	// determined by Type; see the payload types in this package.
	Payload Payload
}

// Parse validates a raw block mapping and constructs the typed block,
// recursing into any nested children. The input is not modified.
func Parse(raw map[string]any) (*Block, error) {
	return parseBlock("", raw)
}

// ParseJSON parses a single JSON block object.
func ParseJSON(data []byte) (*Block, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &notiondata.ValidationError{
			Message: fmt.Sprintf("invalid JSON: %v", err),
		}
	}
	return Parse(raw)
}

// ParseList validates a list of raw block mappings, as returned by the API's
// list endpoints. Error paths are prefixed with the entry's index.
func ParseList(raws []any) ([]*Block, error) {
	blocks := make([]*Block, 0, len(raws))
	for i, raw := range raws {
		b, err := parseBlock(indexPath("", i), raw)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// ParseListJSON parses a JSON array of block objects.
func ParseListJSON(data []byte) ([]*Block, error) {
	var raws []any
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, &notiondata.ValidationError{
			Message: fmt.Sprintf("invalid JSON: %v", err),
		}
	}
	return ParseList(raws)
}

func parseBlock(path string, raw any) (*Block, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &notiondata.ValidationError{
			Path:    path,
			Value:   raw,
			Message: "block must be an object",
		}
	}

	typ, err := resolveType(path, m)
	if err != nil {
		return nil, err
	}

	env, err := parseEnvelope(path, m)
	if err != nil {
		return nil, err
	}

	payloadPath := fieldPath(path, string(typ))
	v, present := m[string(typ)]
	if !present || v == nil {
		if _, ok := optionalPayload[typ]; ok {
			v = map[string]any{}
		} else {
			return nil, &notiondata.ValidationError{
				Path:    payloadPath,
				Message: "block requires the payload matching its type tag",
			}
		}
	}
	pm, ok := v.(map[string]any)
	if !ok {
		return nil, &notiondata.ValidationError{
			Path:    payloadPath,
			Value:   v,
			Message: "payload must be an object",
		}
	}

	payload, err := registry[typ].parse(payloadPath, pm)
	if err != nil {
		return nil, err
	}
	return &Block{Envelope: env, Type: typ, Payload: payload}, nil
}

// Raw re-emits the block in wire shape, including its explicit type tag.
// Nested children serialize without one.
func (b *Block) Raw() map[string]any {
	return b.rawMap(true)
}

func (b *Block) rawMap(includeType bool) map[string]any {
	raw := b.Envelope.rawMap()
	if includeType {
		raw["type"] = string(b.Type)
	}
	raw[string(b.Type)] = registry[b.Type].serialize(b.Payload)
	return raw
}

// RawList serializes blocks in order, in the shape of an API list result's
// results array.
func RawList(blocks []*Block) []any {
	out := make([]any, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Raw())
	}
	return out
}

// MarshalJSON implements json.Marshaler in the block's wire shape.
func (b *Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Raw())
}

// UnmarshalJSON implements json.Unmarshaler via ParseJSON.
func (b *Block) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*b = *parsed
	return nil
}
