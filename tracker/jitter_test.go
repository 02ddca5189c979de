package tracker

import (
	"math"
	"testing"
)

func TestJitterMeter(t *testing.T) {

	m := NewJitterMeter()

	// three frames of an object moving 3 then 4 pixels along x
	positions := []float32{0, 3, 7}

	for _, x := range positions {
		m.Observe("apple_0_0", NewRect(x, 0, 10, 10))
		m.Advance()
	}

	r := m.Report()

	if r.Samples != 2 {
		t.Fatalf("expected 2 samples, got %d", r.Samples)
	}

	if math.Abs(r.Mean-3.5) > 1e-6 {
		t.Errorf("expected mean displacement 3.5, got %v", r.Mean)
	}

	if math.Abs(r.Max-4.0) > 1e-6 {
		t.Errorf("expected max displacement 4, got %v", r.Max)
	}

	// sample stddev of {3, 4}
	if math.Abs(r.StdDev-math.Sqrt(0.5)) > 1e-6 {
		t.Errorf("expected stddev %v, got %v", math.Sqrt(0.5), r.StdDev)
	}
}

func TestJitterMeterDropsStaleKeys(t *testing.T) {

	m := NewJitterMeter()

	m.Observe("apple_0_0", NewRect(0, 0, 10, 10))
	m.Advance()

	// frame without the key, its history is discarded
	m.Advance()

	m.Observe("apple_0_0", NewRect(100, 0, 10, 10))
	m.Advance()

	if r := m.Report(); r.Samples != 0 {
		t.Errorf("expected no samples across the gap, got %d", r.Samples)
	}
}

func TestJitterMeterEmptyReport(t *testing.T) {

	m := NewJitterMeter()
	r := m.Report()

	if r.Samples != 0 || r.Mean != 0 || r.StdDev != 0 || r.Max != 0 {
		t.Errorf("expected zero report, got %+v", r)
	}
}

func TestJitterMeterReset(t *testing.T) {

	m := NewJitterMeter()

	m.Observe("apple_0_0", NewRect(0, 0, 10, 10))
	m.Advance()
	m.Observe("apple_0_0", NewRect(5, 0, 10, 10))
	m.Advance()

	m.Reset()

	if r := m.Report(); r.Samples != 0 {
		t.Errorf("expected no samples after reset, got %d", r.Samples)
	}
}
