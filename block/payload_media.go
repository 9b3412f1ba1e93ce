package block

import (
	"github.com/gilesknap/notiondata"
	"github.com/gilesknap/notiondata/file"
	"github.com/gilesknap/notiondata/richtext"
)

// Codecs for the payload shapes built on the file and URL sub-schemas.

func parseBookmarkPayload(path string, raw map[string]any) (Payload, error) {
	url, err := requiredString(path, raw, "url")
	if err != nil {
		return nil, err
	}
	caption, err := richTextField(path, raw, "caption")
	if err != nil {
		return nil, err
	}
	return &BookmarkPayload{URL: url, Caption: caption}, nil
}

func serializeBookmarkPayload(p Payload) map[string]any {
	bp := p.(*BookmarkPayload)
	return map[string]any{
		"url":     bp.URL,
		"caption": bp.Caption.Raw(),
	}
}

func parseURLPayload(path string, raw map[string]any) (Payload, error) {
	u, err := richtext.ParseURL(path, raw)
	if err != nil {
		return nil, err
	}
	return &URLPayload{URL: u.URL}, nil
}

func serializeURLPayload(p Payload) map[string]any {
	return richtext.URL{URL: p.(*URLPayload).URL}.Raw()
}

// Image and video payloads wrap the file union under a "file" key; the file
// block's payload is the union itself.

func parseMediaPayload(path string, raw map[string]any) (Payload, error) {
	v, present := raw["file"]
	if !present || v == nil {
		return nil, &notiondata.ValidationError{
			Path:    fieldPath(path, "file"),
			Message: "file is required",
		}
	}
	f, err := file.Parse(fieldPath(path, "file"), v)
	if err != nil {
		return nil, err
	}
	return &MediaPayload{File: f}, nil
}

func serializeMediaPayload(p Payload) map[string]any {
	return map[string]any{"file": p.(*MediaPayload).File.Raw()}
}

func parseFilePayload(path string, raw map[string]any) (Payload, error) {
	f, err := file.Parse(path, raw)
	if err != nil {
		return nil, err
	}
	return &FilePayload{File: f}, nil
}

func serializeFilePayload(p Payload) map[string]any {
	return p.(*FilePayload).File.Raw()
}
