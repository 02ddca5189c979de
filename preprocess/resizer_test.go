package preprocess

import (
	"image/color"
	"math"
	"testing"

	"github.com/camfeed/go-smoothtrack/tracker"
	"gocv.io/x/gocv"
)

var (
	black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

func TestLetterBoxResize(t *testing.T) {

	tests := []struct {
		srcWidth      int
		srcHeight     int
		resizeWidth   int
		resizeHeight  int
		expectedXPad  int
		expectedYPad  int
		expectedScale float32
	}{
		{1280, 720, 640, 640, 0, 140, 0.50},
		{800, 1000, 640, 640, 64, 0, 0.64},
		{800, 800, 640, 640, 0, 0, 0.8},
	}

	for _, tc := range tests {
		img := gocv.NewMatWithSize(tc.srcHeight, tc.srcWidth, gocv.MatTypeCV8UC1)

		resizedImg := gocv.NewMat()

		resizer := NewResizer(tc.srcWidth, tc.srcHeight, tc.resizeWidth, tc.resizeHeight)

		resizer.LetterBoxResize(img, &resizedImg, black)

		if resizer.XPad() != tc.expectedXPad || resizer.YPad() != tc.expectedYPad {
			t.Errorf("src (%d, %d): expected XPad=%d, YPad=%d, got xPad=%d, yPad=%d",
				tc.srcWidth, tc.srcHeight, tc.expectedXPad, tc.expectedYPad,
				resizer.XPad(), resizer.YPad())
		}

		if resizer.ScaleFactor() != tc.expectedScale {
			t.Errorf("src (%d, %d): expected scale %f, got %f",
				tc.srcWidth, tc.srcHeight, tc.expectedScale, resizer.ScaleFactor())
		}

		if resizedImg.Cols() != tc.resizeWidth || resizedImg.Rows() != tc.resizeHeight {
			t.Errorf("src (%d, %d): expected output %dx%d, got %dx%d",
				tc.srcWidth, tc.srcHeight, tc.resizeWidth, tc.resizeHeight,
				resizedImg.Cols(), resizedImg.Rows())
		}

		img.Close()
		resizedImg.Close()
		resizer.Close()
	}
}

func TestTranslateBox(t *testing.T) {

	// 1280x720 frame letterboxed into 640x640: scale 0.5, yPad 140
	resizer := NewResizer(1280, 720, 640, 640)
	defer resizer.Close()

	// box at detector coordinates maps back into the frame
	box := resizer.TranslateBox(tracker.NewRect(100, 240, 50, 60))

	expected := tracker.NewRect(200, 200, 100, 120)

	if !rectNear(box, expected, 1e-4) {
		t.Errorf("expected %+v, got %+v", expected, box)
	}

	// detector space origin of the image content maps to frame origin
	origin := resizer.TranslateBox(tracker.NewRect(0, 140, 640, 360))

	if !rectNear(origin, tracker.NewRect(0, 0, 1280, 720), 1e-4) {
		t.Errorf("expected full frame box, got %+v", origin)
	}
}

func rectNear(a, b tracker.Rect, tol float64) bool {
	return math.Abs(float64(a.X-b.X)) <= tol &&
		math.Abs(float64(a.Y-b.Y)) <= tol &&
		math.Abs(float64(a.Width-b.Width)) <= tol &&
		math.Abs(float64(a.Height-b.Height)) <= tol
}
