package renderer

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

type colorKind int

const (
	colorNone colorKind = iota
	colorNamed
	colorRGB
	colorRGBA
)

// Color is an SVG paint: a name such as "white", rgb(...) or rgba(...).
// The zero value renders as "none".
type Color struct {
	kind    colorKind
	name    string
	r, g, b uint8
	opacity float64
}

var NoneColor = Color{}

func NamedColor(name string) Color {
	if name == "" || name == "none" {
		return NoneColor
	}
	return Color{kind: colorNamed, name: name}
}

func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

func RGBA(r, g, b uint8, opacity float64) Color {
	return Color{kind: colorRGBA, r: r, g: g, b: b, opacity: opacity}
}

func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return c.name
	case colorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	case colorRGBA:
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.r, c.g, c.b, formatNumber(c.opacity))
	default:
		return "none"
	}
}

// UnmarshalJSON accepts a color name, [r, g, b] or [r, g, b, opacity].
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = NamedColor(name)
		return nil
	}
	var components []float64
	if err := json.Unmarshal(data, &components); err != nil {
		return fmt.Errorf("color must be a string or an array: %w", err)
	}
	return c.fromComponents(components)
}

func (c Color) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case colorRGB:
		return json.Marshal([]float64{float64(c.r), float64(c.g), float64(c.b)})
	case colorRGBA:
		return json.Marshal([]float64{float64(c.r), float64(c.g), float64(c.b), c.opacity})
	default:
		return json.Marshal(c.String())
	}
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*c = NamedColor(value.Value)
		return nil
	case yaml.SequenceNode:
		var components []float64
		if err := value.Decode(&components); err != nil {
			return fmt.Errorf("color components: %w", err)
		}
		return c.fromComponents(components)
	default:
		return fmt.Errorf("line %d: color must be a string or a sequence", value.Line)
	}
}

func (c *Color) fromComponents(components []float64) error {
	for _, v := range components[:min(3, len(components))] {
		if v < 0 || v > 255 {
			return fmt.Errorf("color component %v out of range", v)
		}
	}
	switch len(components) {
	case 3:
		*c = RGB(uint8(components[0]), uint8(components[1]), uint8(components[2]))
	case 4:
		*c = RGBA(uint8(components[0]), uint8(components[1]), uint8(components[2]), components[3])
	default:
		return fmt.Errorf("color needs 3 or 4 components, got %d", len(components))
	}
	return nil
}

// formatNumber prints a float the way a default C++ ostream or %g with six
// significant digits would.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
