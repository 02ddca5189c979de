package tracker

import (
	"math"
	"strconv"
)

// Config holds the tuning parameters for the Smoother
type Config struct {
	// ConfidenceThreshold drops detections whose confidence is at or
	// below this value
	ConfidenceThreshold float32
	// BucketSize is the spatial quantization granularity in pixels used
	// to build tracking keys.  It only affects how stored state is keyed,
	// not how boxes are matched
	BucketSize float32
	// MatchDistance is the maximum Euclidean center distance to a
	// previous box for it to be considered the same object
	MatchDistance float32
	// SmoothingFactor is the EMA weight in [0,1] pulling a new box
	// toward its matched previous box.  0 disables smoothing, values
	// near 1 smooth heavily at the cost of lag
	SmoothingFactor float32
}

// DefaultConfig returns Smoother settings suited to detections in a
// display sized pixel space, eg: boxes from a 30 FPS camera feed
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: 0.5,
		BucketSize:          50,
		MatchDistance:       100,
		SmoothingFactor:     0.7,
	}
}

// Smoother associates each frame's detections with the previous frame
// and exponentially smooths bounding box coordinates across frames to
// reduce jitter.
//
// Update is a pure function of its inputs.  Per frame state is threaded
// through the (previous State, next State) pair owned by the caller, so
// a Smoother instance itself is safe for concurrent use as long as each
// state chain is advanced by one goroutine at a time.
type Smoother struct {
	cfg Config
}

// NewSmoother initializes and returns a new Smoother
func NewSmoother(cfg Config) *Smoother {
	return &Smoother{
		cfg: cfg,
	}
}

// TrackingKey derives the identity key for a detection by bucketing the
// box center with the given bucket size and concatenating with the
// label, eg: "banana_150_300"
func TrackingKey(label string, box Rect, bucketSize float32) string {

	bx := int(math.Floor(float64(box.CenterX()/bucketSize)) * float64(bucketSize))
	by := int(math.Floor(float64(box.CenterY()/bucketSize)) * float64(bucketSize))

	return label + "_" + strconv.Itoa(bx) + "_" + strconv.Itoa(by)
}

// Update runs one frame of tracking.  It filters raw detections by the
// confidence threshold, matches each survivor against the nearest same
// label box from the previous frame and smooths matched boxes toward
// their previous position.  It returns the smoothed detections in input
// order along with the state to pass into the next call.
//
// prev is the State returned by the prior invocation, the zero value on
// the first call.  No entry survives an unmatched frame, so tracking is
// lossy across occlusions longer than one frame interval.
func (s *Smoother) Update(raw []Detection, prev State) ([]Detection, State) {

	out := make([]Detection, 0, len(raw))
	next := State{}

	for _, det := range raw {

		if det.Confidence <= s.cfg.ConfidenceThreshold {
			continue
		}

		// key is derived from the raw box center so an object keeps the
		// same key while smoothing lags behind its movement
		key := TrackingKey(det.Label, det.Box, s.cfg.BucketSize)

		if prevBox, ok := s.nearest(det, prev); ok {
			det.Box = smoothRect(prevBox, det.Box, s.cfg.SmoothingFactor)
		}

		det.Key = key
		next.set(key, det.Label, det.Box)
		out = append(out, det)
	}

	return out, next
}

// nearest scans the previous frame's entries in stored order for the
// closest same label box within the match distance.  The earliest
// stored entry wins an exact distance tie.
func (s *Smoother) nearest(det Detection, prev State) (Rect, bool) {

	best := s.cfg.MatchDistance
	var bestBox Rect
	found := false

	for _, e := range prev.entries {

		if e.Label != det.Label {
			continue
		}

		d := det.Box.CenterDistance(e.Box)

		if d < best {
			best = d
			bestBox = e.Box
			found = true
		}
	}

	return bestBox, found
}

// smoothRect returns the componentwise convex combination
// prev*f + raw*(1-f)
func smoothRect(prev, raw Rect, f float32) Rect {
	return Rect{
		X:      prev.X*f + raw.X*(1-f),
		Y:      prev.Y*f + raw.Y*(1-f),
		Width:  prev.Width*f + raw.Width*(1-f),
		Height: prev.Height*f + raw.Height*(1-f),
	}
}
