package enum

import (
	"github.com/gilesknap/notiondata"
)

// Color is a text or background color accepted by block payloads.
type Color string

// Foreground colors.
const (
	ColorDefault Color = "default"
	ColorBlue    Color = "blue"
	ColorBrown   Color = "brown"
	ColorGray    Color = "gray"
	ColorGreen   Color = "green"
	ColorOrange  Color = "orange"
	ColorPink    Color = "pink"
	ColorPurple  Color = "purple"
	ColorRed     Color = "red"
	ColorYellow  Color = "yellow"
)

// Background colors.
const (
	ColorBlueBackground   Color = "blue_background"
	ColorBrownBackground  Color = "brown_background"
	ColorGrayBackground   Color = "gray_background"
	ColorGreenBackground  Color = "green_background"
	ColorOrangeBackground Color = "orange_background"
	ColorPinkBackground   Color = "pink_background"
	ColorPurpleBackground Color = "purple_background"
	ColorRedBackground    Color = "red_background"
	ColorYellowBackground Color = "yellow_background"
)

var colors = map[Color]struct{}{
	ColorDefault: {},
	ColorBlue:    {}, ColorBrown: {}, ColorGray: {}, ColorGreen: {},
	ColorOrange: {}, ColorPink: {}, ColorPurple: {}, ColorRed: {},
	ColorYellow: {},
	ColorBlueBackground: {}, ColorBrownBackground: {}, ColorGrayBackground: {},
	ColorGreenBackground: {}, ColorOrangeBackground: {}, ColorPinkBackground: {},
	ColorPurpleBackground: {}, ColorRedBackground: {}, ColorYellowBackground: {},
}

// Valid reports whether c is one of the colors the API accepts.
func (c Color) Valid() bool {
	_, ok := colors[c]
	return ok
}

// ParseColor validates a raw color value found at path. An absent or null
// value yields ColorDefault, the schema default; anything else must be a
// string within the enumeration.
func ParseColor(path string, raw any) (Color, error) {
	if raw == nil {
		return ColorDefault, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &notiondata.ValidationError{
			Path:    path,
			Value:   raw,
			Message: "color must be a string",
		}
	}
	c := Color(s)
	if !c.Valid() {
		return "", &notiondata.ValidationError{
			Path:    path,
			Value:   s,
			Message: "not a recognized color",
		}
	}
	return c, nil
}
