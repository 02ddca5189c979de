package tracker

import (
	"testing"
)

func TestRectCenter(t *testing.T) {

	tests := []struct {
		box    Rect
		cx, cy float32
	}{
		{NewRect(100, 100, 40, 40), 120, 120},
		{NewRect(0, 0, 0, 0), 0, 0},
		{NewRect(-50, -50, 100, 100), 0, 0},
		{NewRect(10, 20, 5, 15), 12.5, 27.5},
	}

	for _, tc := range tests {
		if !almostEqual(tc.box.CenterX(), tc.cx, tolerance) ||
			!almostEqual(tc.box.CenterY(), tc.cy, tolerance) {
			t.Errorf("box %+v: expected center (%v, %v), got (%v, %v)",
				tc.box, tc.cx, tc.cy, tc.box.CenterX(), tc.box.CenterY())
		}
	}
}

func TestRectCenterDistance(t *testing.T) {

	tests := []struct {
		a, b     Rect
		expected float32
	}{
		// 3-4-5 triangle between centers
		{NewRect(0, 0, 0, 0), NewRect(3, 4, 0, 0), 5},
		{NewRect(90, 90, 40, 40), NewRect(100, 100, 40, 40), 14.142136},
		{NewRect(10, 10, 20, 20), NewRect(10, 10, 20, 20), 0},
	}

	for _, tc := range tests {
		got := tc.a.CenterDistance(tc.b)

		if !almostEqual(got, tc.expected, 1e-3) {
			t.Errorf("distance %+v to %+v: expected %v, got %v",
				tc.a, tc.b, tc.expected, got)
		}

		// distance is symmetric
		if !almostEqual(tc.b.CenterDistance(tc.a), got, tolerance) {
			t.Errorf("distance %+v to %+v is not symmetric", tc.a, tc.b)
		}
	}
}

func TestRectCalcIoU(t *testing.T) {

	tests := []struct {
		a, b     Rect
		expected float32
	}{
		// identical boxes
		{NewRect(0, 0, 10, 10), NewRect(0, 0, 10, 10), 1.0},
		// disjoint boxes
		{NewRect(0, 0, 10, 10), NewRect(20, 20, 10, 10), 0.0},
		// touching edges only
		{NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), 0.0},
		// half overlap: intersection 50, union 150
		{NewRect(0, 0, 10, 10), NewRect(5, 0, 10, 10), 1.0 / 3.0},
		// contained box: intersection 25, union 100
		{NewRect(0, 0, 10, 10), NewRect(2, 2, 5, 5), 0.25},
	}

	for _, tc := range tests {
		got := tc.a.CalcIoU(tc.b)

		if !almostEqual(got, tc.expected, 1e-4) {
			t.Errorf("IoU %+v with %+v: expected %v, got %v",
				tc.a, tc.b, tc.expected, got)
		}

		if !almostEqual(tc.b.CalcIoU(tc.a), got, tolerance) {
			t.Errorf("IoU %+v with %+v is not symmetric", tc.a, tc.b)
		}
	}
}

func TestRectScaled(t *testing.T) {

	// normalized box into a 640x480 frame
	got := NewRect(0.25, 0.5, 0.5, 0.25).Scaled(640, 480)
	expected := NewRect(160, 240, 320, 120)

	if !rectAlmostEqual(got, expected, tolerance) {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}
