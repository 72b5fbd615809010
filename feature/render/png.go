package render

import (
	"bytes"
	"fmt"
	"sync"

	"floorplan/feature/floor/models"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var labelFont = sync.OnceValues(func() (*truetype.Font, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return f, nil
})

// labelFace returns a fresh face per render; truetype faces hold glyph
// caches and are not safe for concurrent use.
func labelFace() (font.Face, error) {
	f, err := labelFont()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: 12, DPI: 72, Hinting: font.HintingFull}), nil
}

// PNG renders a floor as a PNG image of the given pixel size.
func PNG(f models.Floor, width, height int) ([]byte, error) {
	sc := layout(f, width, height)

	dc := gg.NewContext(sc.Width, sc.Height)
	dc.SetHexColor(backgroundColor)
	dc.Clear()

	face, err := labelFace()
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	for _, s := range sc.Walls {
		drawWall(dc, s)
	}
	for _, bx := range sc.Boxes {
		drawBox(dc, bx)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawWall(dc *gg.Context, s segment) {
	dc.SetHexColor(s.Color)
	dc.SetLineWidth(max(s.Thickness, 1))
	dc.SetLineCapRound()
	if d := s.dash(); d != nil {
		dc.SetDash(d...)
	} else {
		dc.SetDash()
	}
	dc.DrawLine(s.X1, s.Y1, s.X2, s.Y2)
	dc.Stroke()
	dc.SetDash()
}

func drawBox(dc *gg.Context, bx box) {
	cx, cy := bx.center()

	dc.Push()
	defer dc.Pop()
	if bx.Rotation != 0 {
		dc.RotateAbout(gg.Radians(bx.Rotation), cx, cy)
	}

	if bx.Round {
		dc.DrawEllipse(cx, cy, bx.W/2, bx.H/2)
	} else {
		dc.DrawRoundedRectangle(bx.X, bx.Y, bx.W, bx.H, 4)
	}
	dc.SetHexColor(bx.Fill)
	dc.FillPreserve()
	dc.SetHexColor(outlineColor)
	dc.SetLineWidth(1)
	dc.Stroke()

	if bx.Label != "" {
		dc.DrawStringAnchored(bx.Label, cx, cy, 0.5, 0.5)
	}
}
