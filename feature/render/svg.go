package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"floorplan/feature/floor/models"
)

// SVG renders a floor as a standalone SVG document of the given pixel size.
// Walls are drawn first so elements sit on top of them.
func SVG(f models.Floor, width, height int) []byte {
	sc := layout(f, width, height)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		sc.Width, sc.Height, sc.Width, sc.Height)
	b.WriteString("\n")
	fmt.Fprintf(&b, `  <rect width="100%%" height="100%%" fill="%s" />`+"\n", backgroundColor)

	for _, s := range sc.Walls {
		b.WriteString("  ")
		b.WriteString(svgWall(s))
		b.WriteString("\n")
	}
	for _, bx := range sc.Boxes {
		b.WriteString("  ")
		b.WriteString(svgBox(bx))
		b.WriteString("\n")
	}

	b.WriteString("</svg>\n")
	return []byte(b.String())
}

func svgWall(s segment) string {
	attrs := fmt.Sprintf(`id="%s" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round"`,
		html.EscapeString(s.ID), formatFloat(s.X1), formatFloat(s.Y1), formatFloat(s.X2), formatFloat(s.Y2),
		html.EscapeString(s.Color), formatFloat(s.Thickness))
	if d := s.dash(); d != nil {
		attrs += fmt.Sprintf(` stroke-dasharray="%s %s"`, formatFloat(d[0]), formatFloat(d[1]))
	}
	return "<line " + attrs + " />"
}

func svgBox(bx box) string {
	cx, cy := bx.center()

	var b strings.Builder
	fmt.Fprintf(&b, `<g id="%s"`, html.EscapeString(bx.ID))
	if bx.Rotation != 0 {
		fmt.Fprintf(&b, ` transform="rotate(%s %s %s)"`, formatFloat(bx.Rotation), formatFloat(cx), formatFloat(cy))
	}
	b.WriteString(">")

	if bx.Round {
		fmt.Fprintf(&b, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s" stroke="%s" />`,
			formatFloat(cx), formatFloat(cy), formatFloat(bx.W/2), formatFloat(bx.H/2), bx.Fill, outlineColor)
	} else {
		fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" rx="4" fill="%s" stroke="%s" />`,
			formatFloat(bx.X), formatFloat(bx.Y), formatFloat(bx.W), formatFloat(bx.H), bx.Fill, outlineColor)
	}
	if bx.Label != "" {
		fmt.Fprintf(&b, `<text x="%s" y="%s" font-family="sans-serif" font-size="12" text-anchor="middle" dominant-baseline="central">%s</text>`,
			formatFloat(cx), formatFloat(cy), html.EscapeString(bx.Label))
	}
	b.WriteString("</g>")
	return b.String()
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
