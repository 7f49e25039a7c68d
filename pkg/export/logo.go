package export

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"git.sr.ht/~sbinet/gg"
	"github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"
)

// The logo is a hexagon outline around a solid core, drawn on a 100x100 grid.
const (
	logoGrid   = 100
	logoStroke = 4
	logoCoreR  = 10
	logoPath   = "M50 5 L90 25 L90 75 L50 95 L10 75 L10 25 Z"

	// MinLogoSize is the smallest PNG edge length LogoPNG accepts.
	MinLogoSize = 32
)

var (
	colorOutline = color.RGBA{0x81, 0x8c, 0xf8, 0xff} // indigo
	colorCore    = color.RGBA{0x22, 0xd3, 0xee, 0xff} // cyan
)

// hexagon vertices matching logoPath.
var logoVertices = [][2]float64{
	{50, 5}, {90, 25}, {90, 75}, {50, 95}, {10, 75}, {10, 25},
}

// LogoSVG writes the logo as a standalone SVG document of the given pixel size.
func LogoSVG(w io.Writer, size int) {
	if size <= 0 {
		size = logoGrid
	}
	canvas := svg.New(w)
	canvas.Startview(size, size, 0, 0, logoGrid, logoGrid)
	canvas.Title("ADPF")
	canvas.Path(logoPath, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d;stroke-linejoin:round", css(colorOutline), logoStroke))
	canvas.Circle(logoGrid/2, logoGrid/2, logoCoreR, fmt.Sprintf("fill:%s", css(colorCore)))
	canvas.End()
}

// inlineLogoSVG returns the logo without the XML prolog and generator
// comment so it can be embedded in an HTML document.
func inlineLogoSVG(size int) string {
	var buf bytes.Buffer
	LogoSVG(&buf, size)
	out := buf.String()
	if i := strings.Index(out, "<svg"); i >= 0 {
		out = out[i:]
	}
	return strings.TrimSpace(out)
}

// LogoPNG renders the logo with an "ADPF" caption to a size x size PNG.
func LogoPNG(path string, size int) error {
	if size < MinLogoSize {
		return fmt.Errorf("logo size %d below minimum %d", size, MinLogoSize)
	}

	dc := gg.NewContext(size, size)

	const captionH = 20.0
	area := float64(size) - captionH
	scale := area / logoGrid
	offX := (float64(size) - area) / 2

	dc.SetColor(colorOutline)
	dc.SetLineWidth(math.Max(1, logoStroke*scale))
	dc.SetLineJoin(gg.LineJoinRound)
	for i, v := range logoVertices {
		x, y := offX+v[0]*scale, v[1]*scale
		if i == 0 {
			dc.MoveTo(x, y)
			continue
		}
		dc.LineTo(x, y)
	}
	dc.ClosePath()
	dc.Stroke()

	dc.SetColor(colorCore)
	dc.DrawCircle(offX+logoGrid/2*scale, logoGrid/2*scale, logoCoreR*scale)
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(colorOutline)
	dc.DrawStringAnchored("ADPF", float64(size)/2, float64(size)-captionH/2, 0.5, 0.5)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
