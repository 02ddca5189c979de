package tracker

import (
	"testing"
)

func TestTopCandidate(t *testing.T) {

	tests := []struct {
		name       string
		candidates []LabelCandidate
		expected   LabelCandidate
		ok         bool
	}{
		{
			name:       "empty",
			candidates: nil,
			ok:         false,
		},
		{
			name: "single",
			candidates: []LabelCandidate{
				{Label: "croissant", Confidence: 0.8},
			},
			expected: LabelCandidate{Label: "croissant", Confidence: 0.8},
			ok:       true,
		},
		{
			name: "highest wins",
			candidates: []LabelCandidate{
				{Label: "bagel", Confidence: 0.3},
				{Label: "donut", Confidence: 0.9},
				{Label: "muffin", Confidence: 0.6},
			},
			expected: LabelCandidate{Label: "donut", Confidence: 0.9},
			ok:       true,
		},
		{
			name: "first wins tie",
			candidates: []LabelCandidate{
				{Label: "bagel", Confidence: 0.7},
				{Label: "donut", Confidence: 0.7},
			},
			expected: LabelCandidate{Label: "bagel", Confidence: 0.7},
			ok:       true,
		},
	}

	for _, tc := range tests {
		got, ok := TopCandidate(tc.candidates)

		if ok != tc.ok {
			t.Errorf("%s: expected ok=%v, got %v", tc.name, tc.ok, ok)
			continue
		}

		if ok && got != tc.expected {
			t.Errorf("%s: expected %+v, got %+v", tc.name, tc.expected, got)
		}
	}
}
