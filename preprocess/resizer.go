package preprocess

import (
	"image"
	"image/color"

	"github.com/camfeed/go-smoothtrack/tracker"
	"gocv.io/x/gocv"
)

// Resizer handles scaling video frames down to a detector's input size
// and mapping detection boxes back into source frame coordinates
type Resizer struct {
	// srcWidth is the width of the source image
	srcWidth int
	// srcHeight is the height of the source image
	srcHeight int
	// destWidth is the width to scale to
	destWidth int
	// destHeight is the height to scale to
	destHeight int
	// tempMat is a Mat used during the resize process
	tempMat gocv.Mat
	// letterbox parameters used in scaling
	xPad  int
	yPad  int
	scale float32
	// resize dimensions
	resizeW int
	resizeH int
}

// NewResizer returns a resizer that scales between the source frame
// dimensions and the detector input dimensions
func NewResizer(srcWidth, srcHeight, destWidth, destHeight int) *Resizer {
	r := &Resizer{
		srcWidth:   srcWidth,
		srcHeight:  srcHeight,
		destWidth:  destWidth,
		destHeight: destHeight,
		tempMat:    gocv.NewMat(),
	}

	// precalculate scaling dimensions
	r.preCalc()

	return r
}

// Close frees memory allocated during resize process
func (r *Resizer) Close() error {
	return r.tempMat.Close()
}

// preCalc the scaling factors for source and destination Mats
func (r *Resizer) preCalc() {

	r.resizeW = r.destWidth
	r.resizeH = r.destHeight

	scaleW := float32(r.destWidth) / float32(r.srcWidth)
	scaleH := float32(r.destHeight) / float32(r.srcHeight)
	r.scale = scaleH

	if scaleW < scaleH {
		r.scale = scaleW
		r.resizeH = int(float32(r.srcHeight) * r.scale)
	} else {
		r.resizeW = int(float32(r.srcWidth) * r.scale)
	}

	r.yPad = (r.destHeight - r.resizeH) / 2 // padding height / 2
	r.xPad = (r.destWidth - r.resizeW) / 2  // padding width / 2
}

// LetterBoxResize resizes the source frame to the detector input
// dimensions whilst maintaining image aspect.  Color is that used for
// letter box padding.
func (r *Resizer) LetterBoxResize(src gocv.Mat, dest *gocv.Mat, padColor color.RGBA) {

	gocv.Resize(src, &r.tempMat, image.Pt(r.resizeW, r.resizeH),
		0, 0, gocv.InterpolationArea)

	gocv.CopyMakeBorder(r.tempMat, dest,
		r.yPad, r.destHeight-r.resizeH-r.yPad,
		r.xPad, r.destWidth-r.resizeW-r.xPad,
		gocv.BorderConstant, padColor)
}

// TranslateBox maps a box from detector input coordinates back into
// source frame pixel coordinates, undoing the letterbox padding and
// scale.  Boxes from the detector should be translated before they are
// passed to the tracker so that smoothing distances are in frame
// pixels.
func (r *Resizer) TranslateBox(box tracker.Rect) tracker.Rect {
	return tracker.Rect{
		X:      (box.X - float32(r.xPad)) / r.scale,
		Y:      (box.Y - float32(r.yPad)) / r.scale,
		Width:  box.Width / r.scale,
		Height: box.Height / r.scale,
	}
}

// ScaleFactor returns the scale factor between source and detector
// input dimensions
func (r *Resizer) ScaleFactor() float32 {
	return r.scale
}

// XPad returns the left side letterbox padding in pixels
func (r *Resizer) XPad() int {
	return r.xPad
}

// YPad returns the top side letterbox padding in pixels
func (r *Resizer) YPad() int {
	return r.yPad
}
