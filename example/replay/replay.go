/*
Example replaying recorded detections through the smoother without any
camera or model, useful for tuning smoother settings offline.

Input is a JSON lines file with one raw detection per line:

	{"frame": 0, "label": "apple", "confidence": 0.82, "x": 100, "y": 100, "w": 40, "h": 40}

The tool reports jitter statistics for the raw and smoothed box streams
and optionally renders the final frame's smoothed detections to a PNG.

Usage:

	go run replay.go -i detections.jsonl -o final.png
*/
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/camfeed/go-smoothtrack/render"
	"github.com/camfeed/go-smoothtrack/tracker"
)

// record is one raw detection in the replay file
type record struct {
	Frame      int     `json:"frame"`
	Label      string  `json:"label"`
	Confidence float32 `json:"confidence"`
	X          float32 `json:"x"`
	Y          float32 `json:"y"`
	W          float32 `json:"w"`
	H          float32 `json:"h"`
}

// loadFrames reads the JSON lines file and groups detections by frame
// number, in file order
func loadFrames(file string) ([][]tracker.Detection, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, err
	}

	defer f.Close()

	var frames [][]tracker.Detection
	byFrame := make(map[int]int)

	var id int64

	scanner := bufio.NewScanner(f)

	for scanner.Scan() {

		line := scanner.Bytes()

		if len(line) == 0 {
			continue
		}

		var rec record

		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, err
		}

		idx, exists := byFrame[rec.Frame]

		if !exists {
			idx = len(frames)
			byFrame[rec.Frame] = idx
			frames = append(frames, nil)
		}

		id++

		frames[idx] = append(frames[idx], tracker.NewDetection(
			rec.Label, rec.Confidence,
			tracker.NewRect(rec.X, rec.Y, rec.W, rec.H),
			id,
		))
	}

	return frames, scanner.Err()
}

func main() {

	inFile := flag.String("i", "detections.jsonl", "JSON lines file of raw detections")
	outFile := flag.String("o", "", "Optional PNG to render the final frame to")
	width := flag.Int("width", 1280, "Frame width in pixels for rendering")
	height := flag.Int("height", 720, "Frame height in pixels for rendering")
	factor := flag.Float64("f", 0.7, "Smoothing factor")
	flag.Parse()

	frames, err := loadFrames(*inFile)

	if err != nil {
		log.Fatalf("Error loading detections: %v", err)
	}

	log.Printf("Loaded %d frames of detections", len(frames))

	cfg := tracker.DefaultConfig()
	cfg.SmoothingFactor = float32(*factor)

	sm := tracker.NewSmoother(cfg)

	rawMeter := tracker.NewJitterMeter()
	smoothMeter := tracker.NewJitterMeter()

	var state tracker.State
	var smoothed []tracker.Detection

	for _, frame := range frames {

		// measure the raw stream under the same keys the smoother assigns
		for _, det := range frame {
			if det.Confidence > cfg.ConfidenceThreshold {
				key := tracker.TrackingKey(det.Label, det.Box, cfg.BucketSize)
				rawMeter.Observe(key, det.Box)
			}
		}
		rawMeter.Advance()

		smoothed, state = sm.Update(frame, state)

		for _, det := range smoothed {
			smoothMeter.Observe(det.Key, det.Box)
		}
		smoothMeter.Advance()
	}

	rawReport := rawMeter.Report()
	smoothReport := smoothMeter.Report()

	log.Printf("Raw boxes:      samples=%d mean=%.2fpx stddev=%.2fpx max=%.2fpx",
		rawReport.Samples, rawReport.Mean, rawReport.StdDev, rawReport.Max)
	log.Printf("Smoothed boxes: samples=%d mean=%.2fpx stddev=%.2fpx max=%.2fpx",
		smoothReport.Samples, smoothReport.Mean, smoothReport.StdDev, smoothReport.Max)

	if *outFile == "" {
		return
	}

	// render the final frame's smoothed detections
	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	render.Overlay(img, smoothed, 2)

	f, err := os.Create(*outFile)

	if err != nil {
		log.Fatalf("Error creating output file: %v", err)
	}

	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Error encoding PNG: %v", err)
	}

	log.Printf("Wrote final frame render to %s", *outFile)
}
