package tracker

import (
	"math"
)

// Rect represents an axis aligned bounding box in pixel coordinates
// using a top-left origin
type Rect struct {
	// X is the left edge of the box
	X float32
	// Y is the top edge of the box
	Y float32
	// Width of the box
	Width float32
	// Height of the box
	Height float32
}

// NewRect creates a new Rect with given coordinates
func NewRect(x, y, width, height float32) Rect {
	return Rect{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// CenterX returns the x coordinate of the box center
func (r Rect) CenterX() float32 {
	return r.X + r.Width/2
}

// CenterY returns the y coordinate of the box center
func (r Rect) CenterY() float32 {
	return r.Y + r.Height/2
}

// CenterDistance returns the Euclidean distance between the centers of
// this box and the other box
func (r Rect) CenterDistance(other Rect) float32 {
	dx := float64(r.CenterX() - other.CenterX())
	dy := float64(r.CenterY() - other.CenterY())
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// Area returns the area of the box
func (r Rect) Area() float32 {
	return r.Width * r.Height
}

// CalcIoU calculates the Intersection over Union (IoU) with another
// rectangle
func (r Rect) CalcIoU(other Rect) float32 {

	iw := float32(math.Min(float64(r.X+r.Width), float64(other.X+other.Width)) -
		math.Max(float64(r.X), float64(other.X)))

	if iw <= 0 {
		return 0
	}

	ih := float32(math.Min(float64(r.Y+r.Height), float64(other.Y+other.Height)) -
		math.Max(float64(r.Y), float64(other.Y)))

	if ih <= 0 {
		return 0
	}

	union := r.Area() + other.Area() - iw*ih

	if union <= 0 {
		return 0
	}

	return iw * ih / union
}

// Scaled maps a box in normalized [0,1] coordinate space into a pixel
// space of the given dimensions.  Detectors that emit normalized boxes
// can be converted with this before smoothing so that BucketSize and
// MatchDistance are in pixels.
func (r Rect) Scaled(width, height float32) Rect {
	return Rect{
		X:      r.X * width,
		Y:      r.Y * height,
		Width:  r.Width * width,
		Height: r.Height * height,
	}
}
