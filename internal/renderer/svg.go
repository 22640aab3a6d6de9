package renderer

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Point is a position on the SVG canvas.
type Point struct {
	X float64
	Y float64
}

type pathProps struct {
	fill        *Color
	stroke      *Color
	strokeWidth *float64
	lineCap     string
	lineJoin    string
}

func (p pathProps) writeAttrs(sb *strings.Builder) {
	if p.fill != nil {
		sb.WriteString(` fill="` + p.fill.String() + `"`)
	}
	if p.stroke != nil {
		sb.WriteString(` stroke="` + p.stroke.String() + `"`)
	}
	if p.strokeWidth != nil {
		sb.WriteString(` stroke-width="` + formatNumber(*p.strokeWidth) + `"`)
	}
	if p.lineCap != "" {
		sb.WriteString(` stroke-linecap="` + p.lineCap + `"`)
	}
	if p.lineJoin != "" {
		sb.WriteString(` stroke-linejoin="` + p.lineJoin + `"`)
	}
}

// roundStroke returns props for a stroked path with round caps and joins.
func roundStroke(fill, stroke Color, width float64) pathProps {
	return pathProps{fill: &fill, stroke: &stroke, strokeWidth: &width, lineCap: "round", lineJoin: "round"}
}

func fillOnly(fill Color) pathProps {
	return pathProps{fill: &fill}
}

type element interface {
	render(sb *strings.Builder)
}

type circle struct {
	center Point
	radius float64
	props  pathProps
}

func (c circle) render(sb *strings.Builder) {
	sb.WriteString(`<circle cx="` + formatNumber(c.center.X) + `" cy="` + formatNumber(c.center.Y) + `" r="` + formatNumber(c.radius) + `"`)
	c.props.writeAttrs(sb)
	sb.WriteString("/>")
}

type polyline struct {
	points []Point
	props  pathProps
}

func (p polyline) render(sb *strings.Builder) {
	sb.WriteString(`<polyline points="`)
	for i, pt := range p.points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatNumber(pt.X) + "," + formatNumber(pt.Y))
	}
	sb.WriteString(`"`)
	p.props.writeAttrs(sb)
	sb.WriteString(" />")
}

type text struct {
	position   Point
	offset     Point
	fontSize   int
	fontFamily string
	fontWeight string
	data       string
	props      pathProps
}

var textEscaper = strings.NewReplacer(
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	"&", "&amp;",
)

func (t text) render(sb *strings.Builder) {
	sb.WriteString(`<text x="` + formatNumber(t.position.X) + `" y="` + formatNumber(t.position.Y) +
		`" dx="` + formatNumber(t.offset.X) + `" dy="` + formatNumber(t.offset.Y) +
		`" font-size="` + strconv.Itoa(t.fontSize) + `"`)
	if t.fontFamily != "" {
		sb.WriteString(` font-family="` + t.fontFamily + `"`)
	}
	if t.fontWeight != "" {
		sb.WriteString(` font-weight="` + t.fontWeight + `"`)
	}
	t.props.writeAttrs(sb)
	sb.WriteString(">" + textEscaper.Replace(t.data) + "</text>")
}

type document struct {
	elements []element
}

func (d *document) add(e element) {
	d.elements = append(d.elements, e)
}

func (d *document) writeTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	sb.WriteString("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n")
	for _, e := range d.elements {
		sb.WriteString("  ")
		e.render(&sb)
		sb.WriteByte('\n')
	}
	sb.WriteString("</svg>")
	if _, err := bw.WriteString(sb.String()); err != nil {
		return err
	}
	return bw.Flush()
}
