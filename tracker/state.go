package tracker

// Entry associates a tracking key with the last smoothed bounding box
// stored for that key
type Entry struct {
	// Key is the tracking key, combining label and coarse spatial bucket
	Key string
	// Label is the class label component of the key
	Label string
	// Box is the last smoothed bounding box recorded for the key
	Box Rect
}

// State holds the smoothed boxes retained from the previous frame.  It
// lives exactly one frame interval and is fully replaced by each
// Smoother.Update call.
//
// Entries are kept as an ordered slice rather than a map so that the
// nearest match search always visits candidates in insertion order,
// making tie breaks between equidistant previous boxes deterministic.
type State struct {
	entries []Entry
}

// NewState creates a State pre-populated with the given entries, in
// order.  Mainly useful for seeding a tracker from externally persisted
// boxes, the zero value State is the normal starting point.
func NewState(entries ...Entry) State {
	s := State{}
	for _, e := range entries {
		s.set(e.Key, e.Label, e.Box)
	}
	return s
}

// set records key -> box.  A colliding key overwrites the earlier box
// in place, keeping its original position in the scan order.
func (s *State) set(key, label string, box Rect) {

	for i := range s.entries {
		if s.entries[i].Key == key {
			s.entries[i].Box = box
			return
		}
	}

	s.entries = append(s.entries, Entry{
		Key:   key,
		Label: label,
		Box:   box,
	})
}

// Len returns the number of entries held
func (s State) Len() int {
	return len(s.entries)
}

// Get returns the box stored for the given tracking key
func (s State) Get(key string) (Rect, bool) {
	for _, e := range s.entries {
		if e.Key == key {
			return e.Box, true
		}
	}
	return Rect{}, false
}

// Entries returns a copy of the stored entries in scan order
func (s State) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
