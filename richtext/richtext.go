// Package richtext models the rich text span collections that most block
// payloads carry, plus the bare URL payload shape used by embed and link
// preview blocks.
//
// A rich text value is an ordered list of spans. Spans of type "text" are
// fully typed (content, link, annotations, plain text rendering). Other span
// kinds the API may emit (mentions, inline equations) are preserved
// structurally so that serialization loses nothing, without this package
// having to understand their internals.
package richtext

import (
	"strconv"

	"github.com/gilesknap/notiondata"
	"github.com/gilesknap/notiondata/enum"
)

// RichText is an ordered collection of styled text spans.
type RichText []Span

// Span is one run of text with uniform styling.
type Span struct {
	// Type is the span kind as found on the wire ("text", "mention",
	// "equation"). Empty when the input omitted it, in which case the span
	// is treated as "text".
	Type string

	// Text is the typed payload for text spans.
	Text *Text

	// Annotations holds the styling flags, when present on input.
	Annotations *Annotations

	// PlainText is the unstyled rendering the API attaches to spans it
	// returns. Nil when absent (spans being sent to the API omit it).
	PlainText *string

	// Href is the resolved link target, when present.
	Href *string

	// raw preserves the original mapping for span kinds other than "text",
	// so they serialize back byte-for-byte.
	raw map[string]any
}

// Text is the payload of a "text" span.
type Text struct {
	// Content is the literal text.
	Content string

	// Link is an optional inline link target.
	Link *URL
}

// Annotations holds the styling flags of a span. Absent flags default to
// false and an absent color to the schema default.
type Annotations struct {
	Bold          bool
	Italic        bool
	Strikethrough bool
	Underline     bool
	Code          bool
	Color         enum.Color
}

// Parse validates a raw rich text value found at path. The value must be an
// array of span objects; an empty array is valid and yields an empty
// collection.
func Parse(path string, raw any) (RichText, error) {
	arr, ok := raw.([]any)
	if !ok {
		return nil, &notiondata.ValidationError{
			Path:    path,
			Value:   raw,
			Message: "rich text must be an array of spans",
		}
	}
	rt := make(RichText, 0, len(arr))
	for i, item := range arr {
		span, err := parseSpan(indexPath(path, i), item)
		if err != nil {
			return nil, err
		}
		rt = append(rt, span)
	}
	return rt, nil
}

func parseSpan(path string, raw any) (Span, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return Span{}, &notiondata.ValidationError{
			Path:    path,
			Value:   raw,
			Message: "rich text span must be an object",
		}
	}

	var span Span
	kind := "text"
	if v, present := m["type"]; present && v != nil {
		s, ok := v.(string)
		if !ok {
			return Span{}, &notiondata.ValidationError{
				Path:    path + ".type",
				Value:   v,
				Message: "span type must be a string",
			}
		}
		span.Type = s
		kind = s
	}

	if kind != "text" {
		// Mention and equation spans pass through structurally.
		span.raw = m
		return span, nil
	}

	v, present := m["text"]
	if !present || v == nil {
		return Span{}, &notiondata.ValidationError{
			Path:    path + ".text",
			Message: "text span requires a text payload",
		}
	}
	text, err := parseText(path+".text", v)
	if err != nil {
		return Span{}, err
	}
	span.Text = text

	if v, present := m["annotations"]; present && v != nil {
		ann, err := parseAnnotations(path+".annotations", v)
		if err != nil {
			return Span{}, err
		}
		span.Annotations = ann
	}
	if v, present := m["plain_text"]; present && v != nil {
		s, ok := v.(string)
		if !ok {
			return Span{}, &notiondata.ValidationError{
				Path:    path + ".plain_text",
				Value:   v,
				Message: "plain_text must be a string",
			}
		}
		span.PlainText = &s
	}
	if v, present := m["href"]; present && v != nil {
		s, ok := v.(string)
		if !ok {
			return Span{}, &notiondata.ValidationError{
				Path:    path + ".href",
				Value:   v,
				Message: "href must be a string",
			}
		}
		span.Href = &s
	}
	return span, nil
}

func parseText(path string, raw any) (*Text, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &notiondata.ValidationError{
			Path:    path,
			Value:   raw,
			Message: "text payload must be an object",
		}
	}
	v, present := m["content"]
	if !present || v == nil {
		return nil, &notiondata.ValidationError{
			Path:    path + ".content",
			Message: "text payload requires content",
		}
	}
	content, ok := v.(string)
	if !ok {
		return nil, &notiondata.ValidationError{
			Path:    path + ".content",
			Value:   v,
			Message: "content must be a string",
		}
	}
	text := &Text{Content: content}
	if v, present := m["link"]; present && v != nil {
		link, err := ParseURL(path+".link", v)
		if err != nil {
			return nil, err
		}
		text.Link = &link
	}
	return text, nil
}

func parseAnnotations(path string, raw any) (*Annotations, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &notiondata.ValidationError{
			Path:    path,
			Value:   raw,
			Message: "annotations must be an object",
		}
	}
	ann := &Annotations{Color: enum.ColorDefault}
	flags := map[string]*bool{
		"bold":          &ann.Bold,
		"italic":        &ann.Italic,
		"strikethrough": &ann.Strikethrough,
		"underline":     &ann.Underline,
		"code":          &ann.Code,
	}
	for name, dst := range flags {
		v, present := m[name]
		if !present || v == nil {
			continue
		}
		b, ok := v.(bool)
		if !ok {
			return nil, &notiondata.ValidationError{
				Path:    path + "." + name,
				Value:   v,
				Message: name + " must be a boolean",
			}
		}
		*dst = b
	}
	color, err := enum.ParseColor(path+".color", m["color"])
	if err != nil {
		return nil, err
	}
	ann.Color = color
	return ann, nil
}

// Raw re-emits the collection in wire shape, preserving span order.
func (rt RichText) Raw() []any {
	out := make([]any, 0, len(rt))
	for _, span := range rt {
		out = append(out, span.rawMap())
	}
	return out
}

func (s Span) rawMap() map[string]any {
	if s.raw != nil {
		return s.raw
	}
	m := map[string]any{}
	if s.Type != "" {
		m["type"] = s.Type
	}
	if s.Text != nil {
		text := map[string]any{"content": s.Text.Content}
		if s.Text.Link != nil {
			text["link"] = s.Text.Link.Raw()
		}
		m["text"] = text
	}
	if s.Annotations != nil {
		m["annotations"] = map[string]any{
			"bold":          s.Annotations.Bold,
			"italic":        s.Annotations.Italic,
			"strikethrough": s.Annotations.Strikethrough,
			"underline":     s.Annotations.Underline,
			"code":          s.Annotations.Code,
			"color":         string(s.Annotations.Color),
		}
	}
	if s.PlainText != nil {
		m["plain_text"] = *s.PlainText
	}
	if s.Href != nil {
		m["href"] = *s.Href
	}
	return m
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
