package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Box is an annotation rectangle in COCO [x, y, width, height] pixel form.
type Box struct {
	X, Y, W, H float64
	TrackID    int
}

// Rect rounds the box to the pixel rectangle it covers.
func (b Box) Rect() image.Rectangle {
	return image.Rect(
		int(math.Round(b.X)),
		int(math.Round(b.Y)),
		int(math.Round(b.X+b.W)),
		int(math.Round(b.Y+b.H)),
	)
}

// InBounds reports whether the whole box lies inside bounds.
func (b Box) InBounds(bounds image.Rectangle) bool {
	r := b.Rect()
	return b.W > 0 && b.H > 0 && r.In(bounds)
}

// TrackColor returns a stable colour for a track id. Consecutive ids are
// spread around the hue circle by the golden angle so neighbours differ.
func TrackColor(trackID int) color.RGBA {
	hue := math.Mod(float64(trackID)*137.508, 360)
	if hue < 0 {
		hue += 360
	}
	r, g, b := colorful.Hsv(hue, 0.85, 0.95).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// DrawBoxes returns a copy of img with each box outlined in its track colour
// and labelled with its track id. Parts of boxes outside the frame are clipped.
func DrawBoxes(img image.Image, boxes []Box, thickness int) *image.RGBA {
	if thickness < 1 {
		thickness = 1
	}
	canvas := clone.AsRGBA(img)
	bounds := canvas.Bounds()

	labelColor := color.RGBA{255, 255, 255, 255}
	for _, b := range boxes {
		c := TrackColor(b.TrackID)
		r := b.Rect()
		if r.Empty() {
			continue
		}

		for t := 0; t < thickness; t++ {
			inner := r.Inset(t)
			if inner.Empty() {
				break
			}
			drawRectOutline(canvas, inner, c)
		}

		if r.Overlaps(bounds) {
			drawLabel(canvas, r.Min.X+1, r.Min.Y-labelHeight-1, strconv.Itoa(b.TrackID), labelColor, c)
		}
	}
	return canvas
}

// SaveOverlay writes img to path; the format follows the extension.
func SaveOverlay(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save overlay: %w", err)
	}
	return nil
}

func drawRectOutline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	bounds := img.Bounds()
	set := func(x, y int) {
		if (image.Point{x, y}).In(bounds) {
			img.SetRGBA(x, y, c)
		}
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		set(x, r.Min.Y)
		set(x, r.Max.Y-1)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		set(r.Min.X, y)
		set(r.Max.X-1, y)
	}
}

const (
	charWidth   = 4
	labelHeight = 7
)

// glyphs is a 3x5 pixel font covering the characters used in labels.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	'-': {"000", "000", "111", "000", "000"},
}

// drawLabel draws text on a filled background at (x, y), clipped to the image.
// Labels that would start above the frame are moved to its top edge.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	bounds := img.Bounds()
	if y < bounds.Min.Y+1 {
		y = bounds.Min.Y + 1
	}
	labelWidth := len(text) * charWidth

	for dy := -1; dy < labelHeight-1; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			px, py := x+dx, y+dy
			if (image.Point{px, py}).In(bounds) {
				img.SetRGBA(px, py, bg)
			}
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				px, py := cx+col, y+row
				if (image.Point{px, py}).In(bounds) {
					img.SetRGBA(px, py, fg)
				}
			}
		}
		cx += charWidth
	}
}
