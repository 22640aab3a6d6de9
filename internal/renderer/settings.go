package renderer

// Settings control the map canvas and styling. The same struct is read from
// the JSON document's render_settings and from the YAML config's render block.
type Settings struct {
	Width             float64    `json:"width" yaml:"width" validate:"gt=0"`
	Height            float64    `json:"height" yaml:"height" validate:"gt=0"`
	Padding           float64    `json:"padding" yaml:"padding" validate:"gte=0"`
	LineWidth         float64    `json:"line_width" yaml:"line_width" validate:"gte=0"`
	StopRadius        float64    `json:"stop_radius" yaml:"stop_radius" validate:"gte=0"`
	BusLabelFontSize  int        `json:"bus_label_font_size" yaml:"bus_label_font_size" validate:"gte=0"`
	BusLabelOffset    [2]float64 `json:"bus_label_offset" yaml:"bus_label_offset"`
	StopLabelFontSize int        `json:"stop_label_font_size" yaml:"stop_label_font_size" validate:"gte=0"`
	StopLabelOffset   [2]float64 `json:"stop_label_offset" yaml:"stop_label_offset"`
	UnderlayerColor   Color      `json:"underlayer_color" yaml:"underlayer_color"`
	UnderlayerWidth   float64    `json:"underlayer_width" yaml:"underlayer_width" validate:"gte=0"`
	ColorPalette      []Color    `json:"color_palette" yaml:"color_palette" validate:"min=1"`
}

// DefaultSettings is a usable style for maps rendered without explicit settings.
func DefaultSettings() Settings {
	return Settings{
		Width:             1200,
		Height:            1200,
		Padding:           50,
		LineWidth:         14,
		StopRadius:        5,
		BusLabelFontSize:  20,
		BusLabelOffset:    [2]float64{7, 15},
		StopLabelFontSize: 20,
		StopLabelOffset:   [2]float64{7, -3},
		UnderlayerColor:   RGBA(255, 255, 255, 0.85),
		UnderlayerWidth:   3,
		ColorPalette: []Color{
			NamedColor("green"),
			RGB(255, 160, 0),
			NamedColor("red"),
		},
	}
}

func (s Settings) paletteColor(i int) Color {
	if len(s.ColorPalette) == 0 {
		return NoneColor
	}
	return s.ColorPalette[i%len(s.ColorPalette)]
}
