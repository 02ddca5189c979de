package tracker

import (
	"sort"
)

// NMS performs class aware Non-Maximum Suppression on raw detector
// output.  Detections are considered highest confidence first and any
// lower confidence detection of the same label overlapping a kept box
// by more than iouThreshold is suppressed.  Results are returned in
// descending confidence order.
//
// Detectors that already deduplicate their output internally do not
// need this step before smoothing.
func NMS(dets []Detection, iouThreshold float32) []Detection {

	if len(dets) == 0 {
		return nil
	}

	// sort indices by confidence descending, stable so equal scores keep
	// input order
	order := make([]int, len(dets))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return dets[order[a]].Confidence > dets[order[b]].Confidence
	})

	suppressed := make([]bool, len(dets))
	out := make([]Detection, 0, len(dets))

	for i, oi := range order {

		if suppressed[oi] {
			continue
		}

		keep := dets[oi]
		out = append(out, keep)

		for _, oj := range order[i+1:] {

			if suppressed[oj] || dets[oj].Label != keep.Label {
				continue
			}

			if keep.Box.CalcIoU(dets[oj].Box) > iouThreshold {
				suppressed[oj] = true
			}
		}
	}

	return out
}
