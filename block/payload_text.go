package block

// Codecs for the text-bearing payload shapes.

func parseTextPayload(path string, raw map[string]any) (Payload, error) {
	rt, err := richTextField(path, raw, "rich_text")
	if err != nil {
		return nil, err
	}
	color, err := colorField(path, raw)
	if err != nil {
		return nil, err
	}
	children, err := parseChildren(path, raw)
	if err != nil {
		return nil, err
	}
	return &TextPayload{RichText: rt, Color: color, Children: children}, nil
}

func serializeTextPayload(p Payload) map[string]any {
	tp := p.(*TextPayload)
	raw := map[string]any{
		"rich_text": tp.RichText.Raw(),
		"color":     string(tp.Color),
	}
	if tp.Children != nil {
		raw["children"] = rawChildren(tp.Children)
	}
	return raw
}

func parseHeadingPayload(path string, raw map[string]any) (Payload, error) {
	rt, err := richTextField(path, raw, "rich_text")
	if err != nil {
		return nil, err
	}
	color, err := colorField(path, raw)
	if err != nil {
		return nil, err
	}
	toggleable, err := boolField(path, raw, "is_toggleable", false)
	if err != nil {
		return nil, err
	}
	return &HeadingPayload{RichText: rt, Color: color, IsToggleable: toggleable}, nil
}

func serializeHeadingPayload(p Payload) map[string]any {
	hp := p.(*HeadingPayload)
	return map[string]any{
		"rich_text":     hp.RichText.Raw(),
		"color":         string(hp.Color),
		"is_toggleable": hp.IsToggleable,
	}
}

func parseToDoPayload(path string, raw map[string]any) (Payload, error) {
	rt, err := richTextField(path, raw, "rich_text")
	if err != nil {
		return nil, err
	}
	checked, err := boolField(path, raw, "checked", false)
	if err != nil {
		return nil, err
	}
	color, err := colorField(path, raw)
	if err != nil {
		return nil, err
	}
	children, err := parseChildren(path, raw)
	if err != nil {
		return nil, err
	}
	return &ToDoPayload{RichText: rt, Checked: checked, Color: color, Children: children}, nil
}

func serializeToDoPayload(p Payload) map[string]any {
	tp := p.(*ToDoPayload)
	raw := map[string]any{
		"rich_text": tp.RichText.Raw(),
		"checked":   tp.Checked,
		"color":     string(tp.Color),
	}
	if tp.Children != nil {
		raw["children"] = rawChildren(tp.Children)
	}
	return raw
}

func parseCalloutPayload(path string, raw map[string]any) (Payload, error) {
	rt, err := richTextField(path, raw, "rich_text")
	if err != nil {
		return nil, err
	}
	icon, present, err := optionalString(path, raw, "icon")
	if err != nil {
		return nil, err
	}
	color, err := colorField(path, raw)
	if err != nil {
		return nil, err
	}
	cp := &CalloutPayload{RichText: rt, Color: color}
	if present {
		cp.Icon = &icon
	}
	return cp, nil
}

func serializeCalloutPayload(p Payload) map[string]any {
	cp := p.(*CalloutPayload)
	raw := map[string]any{
		"rich_text": cp.RichText.Raw(),
		"color":     string(cp.Color),
	}
	if cp.Icon != nil {
		raw["icon"] = *cp.Icon
	}
	return raw
}

func parseCodePayload(path string, raw map[string]any) (Payload, error) {
	caption, err := richTextField(path, raw, "caption")
	if err != nil {
		return nil, err
	}
	rt, err := richTextField(path, raw, "rich_text")
	if err != nil {
		return nil, err
	}
	lang, err := parseLanguageField(path, raw)
	if err != nil {
		return nil, err
	}
	return &CodePayload{Caption: caption, RichText: rt, Language: lang}, nil
}

func serializeCodePayload(p Payload) map[string]any {
	cp := p.(*CodePayload)
	return map[string]any{
		"caption":   cp.Caption.Raw(),
		"rich_text": cp.RichText.Raw(),
		"language":  string(cp.Language),
	}
}
