package richtext

import (
	"github.com/gilesknap/notiondata"
)

// URL is the bare {"url": ...} payload shape. Embed and link preview blocks
// use it as their whole payload; text spans use it for inline links.
type URL struct {
	URL string
}

// ParseURL validates a raw URL payload found at path.
func ParseURL(path string, raw any) (URL, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return URL{}, &notiondata.ValidationError{
			Path:    path,
			Value:   raw,
			Message: "url payload must be an object",
		}
	}
	v, present := m["url"]
	if !present || v == nil {
		return URL{}, &notiondata.ValidationError{
			Path:    path + ".url",
			Message: "url payload requires a url",
		}
	}
	s, ok := v.(string)
	if !ok {
		return URL{}, &notiondata.ValidationError{
			Path:    path + ".url",
			Value:   v,
			Message: "url must be a string",
		}
	}
	return URL{URL: s}, nil
}

// Raw re-emits the payload in wire shape.
func (u URL) Raw() map[string]any {
	return map[string]any{"url": u.URL}
}
