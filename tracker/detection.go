package tracker

// Detection represents one recognized object instance for a single
// video frame
type Detection struct {
	// Label is the class label of the object detected
	Label string
	// Confidence is the detection score in the range [0,1]
	Confidence float32
	// Box is the bounding box of the detected object
	Box Rect
	// ID is a unique ID the caller can assign to match input detections
	// with smoothed output detections
	ID int64
	// Key is the tracking key assigned by the Smoother on output.  It is
	// empty on raw input detections
	Key string
}

// NewDetection is a constructor function for the Detection struct
func NewDetection(label string, confidence float32, box Rect, id int64) Detection {
	return Detection{
		Label:      label,
		Confidence: confidence,
		Box:        box,
		ID:         id,
	}
}

// LabelCandidate is one of the class labels a detector proposes for a
// single bounding box along with its confidence
type LabelCandidate struct {
	Label      string
	Confidence float32
}

// TopCandidate reduces a multi label observation down to the single
// highest confidence label.  The first candidate wins an exact
// confidence tie.  Returns false when the candidate list is empty.
func TopCandidate(candidates []LabelCandidate) (LabelCandidate, bool) {

	if len(candidates) == 0 {
		return LabelCandidate{}, false
	}

	best := candidates[0]

	for _, c := range candidates[1:] {
		if c.Confidence > best.Confidence {
			best = c
		}
	}

	return best, true
}
