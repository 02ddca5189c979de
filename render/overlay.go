package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/camfeed/go-smoothtrack/tracker"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Overlay draws smoothed detections onto a standard library RGBA image.
// It needs no OpenCV, making it suitable for headless services that
// produce annotated stills, eg: snapshot endpoints or batch replay
// tools.  Boxes are colored by tracking key the same way DetectionBoxes
// colors them.
func Overlay(dst *image.RGBA, dets []tracker.Detection, lineThickness int) {

	for _, det := range dets {

		clr := KeyColor(det.Key)

		rect := image.Rect(
			int(det.Box.X),
			int(det.Box.Y),
			int(det.Box.X+det.Box.Width),
			int(det.Box.Y+det.Box.Height),
		)

		drawBorder(dst, rect, clr, lineThickness)

		text := fmt.Sprintf("%s %.0f%%", det.Label, det.Confidence*100)
		drawLabel(dst, text, image.Pt(rect.Min.X, rect.Min.Y-4), clr)
	}
}

// drawBorder draws the four edges of rect with the given thickness,
// clipped to the image bounds
func drawBorder(dst *image.RGBA, rect image.Rectangle, clr color.RGBA,
	thickness int) {

	if thickness < 1 {
		thickness = 1
	}

	// top, bottom, left, right edge strips
	fillRect(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+thickness), clr)
	fillRect(dst, image.Rect(rect.Min.X, rect.Max.Y-thickness, rect.Max.X, rect.Max.Y), clr)
	fillRect(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+thickness, rect.Max.Y), clr)
	fillRect(dst, image.Rect(rect.Max.X-thickness, rect.Min.Y, rect.Max.X, rect.Max.Y), clr)
}

// fillRect fills the given rectangle clipped to the image bounds
func fillRect(dst *image.RGBA, r image.Rectangle, clr color.RGBA) {

	r = r.Intersect(dst.Bounds())

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetRGBA(x, y, clr)
		}
	}
}

// drawLabel renders text with the fixed width basic font, with the dot
// at the given baseline point
func drawLabel(dst *image.RGBA, text string, pt image.Point, clr color.RGBA) {

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(clr),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(pt.X, pt.Y),
	}

	d.DrawString(text)
}
