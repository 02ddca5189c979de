package tracker

import "sync"

// Point represents the x,y coordinates of the center of a smoothed
// bounding box
type Point struct {
	X, Y int
}

// Track represents a track history
type Track struct {
	points []Point
}

// Trail keeps a history of smoothed box center points per tracking key,
// used for drawing a trail behind each tracked object
type Trail struct {
	// size is the maximum number of most recent points to keep in history
	size int
	// history of center points per tracking key
	history map[string]*Track
	sync.Mutex
}

// NewTrail returns a new trail history instance.  Size specifies the
// maximum length of trail to maintain per tracking key
func NewTrail(size int) *Trail {
	return &Trail{
		size:    size,
		history: make(map[string]*Track),
	}
}

// Reset clears all history
func (t *Trail) Reset() {
	t.Lock()
	defer t.Unlock()

	t.history = make(map[string]*Track)
}

// Add records the center point of a smoothed detection.  Detections
// without a tracking key, ie: raw input that has not been through
// Smoother.Update, are ignored
func (t *Trail) Add(det Detection) {
	t.Lock()
	defer t.Unlock()

	if det.Key == "" {
		return
	}

	// init map if no history exists yet for tracking key
	if _, exists := t.history[det.Key]; !exists {
		t.history[det.Key] = &Track{}
	}

	track := t.history[det.Key]

	track.points = append(track.points, Point{
		X: int(det.Box.CenterX()),
		Y: int(det.Box.CenterY()),
	})

	// check if history is exceeded and drop oldest point
	if len(track.points) > t.size {
		track.points = track.points[1:]
	}
}

// GetPoints gets the point history for a specific tracking key
func (t *Trail) GetPoints(key string) []Point {
	t.Lock()
	defer t.Unlock()

	if _, exists := t.history[key]; exists {
		return t.history[key].points
	}

	// no history yet
	return nil
}
