// Package file models the file object union used by file, image, and video
// blocks: either a link to an externally hosted file or a file uploaded to
// Notion, discriminated by the object's own type tag.
package file

import (
	"github.com/gilesknap/notiondata"
	"github.com/gilesknap/notiondata/richtext"
)

// Union discriminator values.
const (
	TypeExternal = "external"
	TypeHosted   = "file"
)

// File is one member of the file union.
type File struct {
	// Type is the union tag: "external" or "file".
	Type string

	// External is the payload when Type is "external".
	External *External

	// Hosted is the payload when Type is "file".
	Hosted *Hosted

	// Name is the optional display name.
	Name *string

	// Caption is the optional rich text caption. Nil when absent; an empty
	// collection when the input carried an empty array.
	Caption richtext.RichText
}

// External is a link to a file hosted outside Notion.
type External struct {
	URL string
}

// Hosted is a file uploaded to Notion. ExpiryTime is the moment the signed
// URL stops working; it is carried verbatim, not canonicalized, since it is
// payload data rather than envelope metadata.
type Hosted struct {
	URL        string
	ExpiryTime *string
}

// Parse validates a raw file union value found at path.
func Parse(path string, raw any) (*File, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &notiondata.ValidationError{
			Path:    path,
			Value:   raw,
			Message: "file must be an object",
		}
	}

	v, present := m["type"]
	if !present || v == nil {
		return nil, &notiondata.ValidationError{
			Path:    path + ".type",
			Message: "file requires a type tag",
		}
	}
	tag, ok := v.(string)
	if !ok {
		return nil, &notiondata.ValidationError{
			Path:    path + ".type",
			Value:   v,
			Message: "file type must be a string",
		}
	}

	f := &File{Type: tag}
	switch tag {
	case TypeExternal:
		inner, err := innerObject(path, m, TypeExternal)
		if err != nil {
			return nil, err
		}
		url, err := urlField(path+".external", inner)
		if err != nil {
			return nil, err
		}
		f.External = &External{URL: url}
	case TypeHosted:
		inner, err := innerObject(path, m, TypeHosted)
		if err != nil {
			return nil, err
		}
		url, err := urlField(path+".file", inner)
		if err != nil {
			return nil, err
		}
		hosted := &Hosted{URL: url}
		if v, present := inner["expiry_time"]; present && v != nil {
			s, ok := v.(string)
			if !ok {
				return nil, &notiondata.ValidationError{
					Path:    path + ".file.expiry_time",
					Value:   v,
					Message: "expiry_time must be a string",
				}
			}
			hosted.ExpiryTime = &s
		}
		f.Hosted = hosted
	default:
		return nil, &notiondata.ValidationError{
			Path:    path + ".type",
			Value:   tag,
			Message: `file type must be "external" or "file"`,
		}
	}

	if v, present := m["name"]; present && v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, &notiondata.ValidationError{
				Path:    path + ".name",
				Value:   v,
				Message: "name must be a string",
			}
		}
		f.Name = &s
	}
	if v, present := m["caption"]; present && v != nil {
		caption, err := richtext.Parse(path+".caption", v)
		if err != nil {
			return nil, err
		}
		f.Caption = caption
	}
	return f, nil
}

func innerObject(path string, m map[string]any, key string) (map[string]any, error) {
	v, present := m[key]
	if !present || v == nil {
		return nil, &notiondata.ValidationError{
			Path:    path + "." + key,
			Message: "file union requires the payload matching its type tag",
		}
	}
	inner, ok := v.(map[string]any)
	if !ok {
		return nil, &notiondata.ValidationError{
			Path:    path + "." + key,
			Value:   v,
			Message: "file payload must be an object",
		}
	}
	return inner, nil
}

func urlField(path string, m map[string]any) (string, error) {
	v, present := m["url"]
	if !present || v == nil {
		return "", &notiondata.ValidationError{
			Path:    path + ".url",
			Message: "file payload requires a url",
		}
	}
	s, ok := v.(string)
	if !ok {
		return "", &notiondata.ValidationError{
			Path:    path + ".url",
			Value:   v,
			Message: "url must be a string",
		}
	}
	return s, nil
}

// Raw re-emits the union in wire shape.
func (f *File) Raw() map[string]any {
	raw := map[string]any{"type": f.Type}
	if f.External != nil {
		raw[TypeExternal] = map[string]any{"url": f.External.URL}
	}
	if f.Hosted != nil {
		inner := map[string]any{"url": f.Hosted.URL}
		if f.Hosted.ExpiryTime != nil {
			inner["expiry_time"] = *f.Hosted.ExpiryTime
		}
		raw[TypeHosted] = inner
	}
	if f.Name != nil {
		raw["name"] = *f.Name
	}
	if f.Caption != nil {
		raw["caption"] = f.Caption.Raw()
	}
	return raw
}
