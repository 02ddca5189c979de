package tracker

import (
	"gonum.org/v1/gonum/stat"
)

// JitterMeter records frame to frame center displacement per tracking
// key so the effect of smoothing on box jitter can be measured.  Feed
// one meter the raw detections and another the smoothed detections and
// compare the reports.
type JitterMeter struct {
	// last holds each key's box from the previous completed frame
	last map[string]Rect
	// current accumulates boxes observed during the frame in progress
	current map[string]Rect
	// displacements are center distances between successive observations
	// of the same key
	displacements []float64
}

// NewJitterMeter returns a new displacement recorder
func NewJitterMeter() *JitterMeter {
	return &JitterMeter{
		last:    make(map[string]Rect),
		current: make(map[string]Rect),
	}
}

// Observe records one detection box for the current frame under the
// given tracking key.  If the key was present in the previous frame the
// center displacement between the two boxes is sampled.
func (m *JitterMeter) Observe(key string, box Rect) {

	if prev, ok := m.last[key]; ok {
		m.displacements = append(m.displacements,
			float64(box.CenterDistance(prev)))
	}

	m.current[key] = box
}

// Advance marks the end of a frame.  Keys not observed during the frame
// are dropped, matching the one frame lifetime of tracker State.
func (m *JitterMeter) Advance() {
	m.last = m.current
	m.current = make(map[string]Rect)
}

// Reset clears all recorded samples and frame state
func (m *JitterMeter) Reset() {
	m.last = make(map[string]Rect)
	m.current = make(map[string]Rect)
	m.displacements = nil
}

// JitterReport summarises recorded center displacements in pixels
type JitterReport struct {
	// Samples is the number of frame to frame displacements recorded
	Samples int
	// Mean displacement
	Mean float64
	// StdDev of displacement
	StdDev float64
	// Max displacement
	Max float64
}

// Report returns displacement statistics over all samples recorded so
// far
func (m *JitterMeter) Report() JitterReport {

	r := JitterReport{
		Samples: len(m.displacements),
	}

	if r.Samples == 0 {
		return r
	}

	r.Mean = stat.Mean(m.displacements, nil)

	if r.Samples > 1 {
		r.StdDev = stat.StdDev(m.displacements, nil)
	}

	for _, d := range m.displacements {
		if d > r.Max {
			r.Max = d
		}
	}

	return r
}
