/*
Example demonstrating real time object detection with box smoothing.

Reads frames from a video file or camera, runs a YOLO style ONNX model
through the OpenCV DNN backend, smooths the resulting boxes with the
tracker and serves the annotated feed as an MJPEG stream over HTTP.

Usage:

	go run stream.go -c config.yaml

Then open http://localhost:8080/stream in a browser.
*/
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"net/http"
	"path/filepath"
	"time"

	smoothtrack "github.com/camfeed/go-smoothtrack"
	"github.com/camfeed/go-smoothtrack/preprocess"
	"github.com/camfeed/go-smoothtrack/render"
	"github.com/camfeed/go-smoothtrack/tracker"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"gocv.io/x/gocv"
)

// Demo wires the capture, detect, smooth and render pipeline together
type Demo struct {
	// net is the DNN detection model
	net gocv.Net
	// labels are the class names the model was trained on
	labels []string
	// inputSize is the square model input dimension, eg: 640
	inputSize int
	// scoreThreshold filters raw DNN output before NMS
	scoreThreshold float32
	// nmsThreshold is the IoU limit used during NMS
	nmsThreshold float32
	// resizer maps between frame and model input coordinates
	resizer *preprocess.Resizer
	// smoother reduces box jitter between frames
	smoother *tracker.Smoother
	// trail keeps center point history for drawing
	trail *tracker.Trail
	// font used for box labels
	font render.Font
	// source is the video file path or camera device ID
	source string
	// frameInterval paces playback of file sources
	frameInterval time.Duration
}

// NewDemo creates the demo pipeline from viper settings
func NewDemo() (*Demo, error) {

	d := &Demo{
		inputSize:      viper.GetInt("model.input_size"),
		scoreThreshold: float32(viper.GetFloat64("model.score_threshold")),
		nmsThreshold:   float32(viper.GetFloat64("model.nms_threshold")),
		source:         viper.GetString("video.source"),
		trail:          tracker.NewTrail(viper.GetInt("render.trail_length")),
		font:           render.DefaultFont(),
	}

	fps := viper.GetInt("video.fps")
	if fps <= 0 {
		fps = 30
	}
	d.frameInterval = time.Duration(float64(time.Second) / float64(fps))

	// load in model class names
	var err error
	d.labels, err = smoothtrack.LoadLabels(viper.GetString("model.labels"))

	if err != nil {
		return nil, fmt.Errorf("error loading model labels: %w", err)
	}

	// load the detection model
	d.net = gocv.ReadNet(viper.GetString("model.weights"), "")

	if d.net.Empty() {
		return nil, fmt.Errorf("error reading model file %s",
			viper.GetString("model.weights"))
	}

	// smoother settings, falling back to defaults for unset keys
	cfg := tracker.DefaultConfig()

	if viper.IsSet("smoother.confidence_threshold") {
		cfg.ConfidenceThreshold = float32(viper.GetFloat64("smoother.confidence_threshold"))
	}
	if viper.IsSet("smoother.bucket_size") {
		cfg.BucketSize = float32(viper.GetFloat64("smoother.bucket_size"))
	}
	if viper.IsSet("smoother.match_distance") {
		cfg.MatchDistance = float32(viper.GetFloat64("smoother.match_distance"))
	}
	if viper.IsSet("smoother.smoothing_factor") {
		cfg.SmoothingFactor = float32(viper.GetFloat64("smoother.smoothing_factor"))
	}

	d.smoother = tracker.NewSmoother(cfg)

	log.Printf("Smoother settings: %+v", cfg)

	return d, nil
}

// Close frees resources held by the pipeline
func (d *Demo) Close() {
	d.net.Close()

	if d.resizer != nil {
		d.resizer.Close()
	}
}

// Stream is the HTTP handler streaming annotated video frames to the
// browser.  The smoother state is local to the connection so each
// client gets its own tracking chain.
func (d *Demo) Stream(c *gin.Context) {

	log.Printf("New client connection established")

	video, err := gocv.VideoCaptureFile(d.source)

	if err != nil {
		log.Printf("Error opening video source %s: %v", d.source, err)
		c.Status(http.StatusInternalServerError)
		return
	}

	defer video.Close()

	c.Header("Content-Type", "multipart/x-mixed-replace; boundary=frame")

	img := gocv.NewMat()
	defer img.Close()

	// smoothed box state threaded through the frame loop
	var state tracker.State

	d.trail.Reset()

	// used for calculating FPS
	frameCount := 0
	startTime := time.Now()
	fps := float64(0)

	ticker := time.NewTicker(d.frameInterval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-c.Request.Context().Done():
			log.Printf("Client disconnected")
			break loop

		case <-ticker.C:

			if ok := video.Read(&img); !ok {
				// loop file sources back to the first frame
				video.Set(gocv.VideoCapturePosFrames, 0)
				continue
			}

			if img.Empty() {
				continue
			}

			var smoothed []tracker.Detection
			smoothed, state = d.processFrame(&img, state)

			render.DetectionBoxes(&img, smoothed, d.font, 2)
			render.Trail(&img, smoothed, d.trail, render.DefaultTrailStyle())

			gocv.PutText(&img, fmt.Sprintf("FPS: %.2f, Objects: %d", fps, len(smoothed)),
				image.Pt(4, 14), gocv.FontHersheyDuplex, 0.5, render.Yellow, 1)

			buf, err := gocv.IMEncode(".jpg", img)

			if err != nil {
				log.Printf("Error encoding frame: %v", err)
				continue
			}

			// write the image to the response writer
			c.Writer.Write([]byte("--frame\r\n"))
			c.Writer.Write([]byte("Content-Type: image/jpeg\r\n\r\n"))
			c.Writer.Write(buf.GetBytes())
			c.Writer.Write([]byte("\r\n"))
			c.Writer.Flush()

			buf.Close()

			// calculate FPS
			frameCount++
			elapsed := time.Since(startTime).Seconds()

			if elapsed >= 1.0 {
				fps = float64(frameCount) / elapsed
				frameCount = 0
				startTime = time.Now()
			}
		}
	}
}

// processFrame runs detection and smoothing on a single frame, feeding
// trail history as a side effect
func (d *Demo) processFrame(img *gocv.Mat, state tracker.State) ([]tracker.Detection, tracker.State) {

	raw := d.detect(img)

	smoothed, next := d.smoother.Update(raw, state)

	for _, det := range smoothed {
		d.trail.Add(det)
	}

	return smoothed, next
}

// detect runs DNN inference on the frame and decodes the output into
// raw detections in frame pixel coordinates
func (d *Demo) detect(img *gocv.Mat) []tracker.Detection {

	if d.resizer == nil {
		d.resizer = preprocess.NewResizer(img.Cols(), img.Rows(),
			d.inputSize, d.inputSize)
	}

	input := gocv.NewMat()
	defer input.Close()

	d.resizer.LetterBoxResize(*img, &input, render.Black)

	blob := gocv.BlobFromImage(input, 1.0/255.0,
		image.Pt(d.inputSize, d.inputSize),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	d.net.SetInput(blob, "")

	output := d.net.Forward("")
	defer output.Close()

	dets := d.decodeOutput(&output)

	// the model emits many overlapping proposals per object
	dets = tracker.NMS(dets, d.nmsThreshold)

	// map boxes from model input space back into frame pixels
	for i := range dets {
		dets[i].Box = d.resizer.TranslateBox(dets[i].Box)
	}

	return dets
}

// decodeOutput parses YOLOv8 style output of shape [1, 4+classes, anchors]
// where each anchor column holds cx, cy, w, h followed by per class
// scores
func (d *Demo) decodeOutput(output *gocv.Mat) []tracker.Detection {

	var dets []tracker.Detection

	dims := output.Size()

	if len(dims) != 3 {
		log.Printf("Unexpected model output shape %v", dims)
		return nil
	}

	rows := dims[1]
	anchors := dims[2]

	classes := rows - 4
	if classes > len(d.labels) {
		classes = len(d.labels)
	}

	var id int64

	for a := 0; a < anchors; a++ {

		// reduce the per class scores to the top label
		candidates := make([]tracker.LabelCandidate, 0, classes)

		for c := 0; c < classes; c++ {
			candidates = append(candidates, tracker.LabelCandidate{
				Label:      d.labels[c],
				Confidence: output.GetFloatAt3(0, 4+c, a),
			})
		}

		top, ok := tracker.TopCandidate(candidates)

		if !ok || top.Confidence < d.scoreThreshold {
			continue
		}

		cx := output.GetFloatAt3(0, 0, a)
		cy := output.GetFloatAt3(0, 1, a)
		w := output.GetFloatAt3(0, 2, a)
		h := output.GetFloatAt3(0, 3, a)

		id++

		dets = append(dets, tracker.NewDetection(
			top.Label, top.Confidence,
			tracker.NewRect(cx-w/2, cy-h/2, w, h),
			id,
		))
	}

	return dets
}

func main() {

	configFile := flag.String("c", "config.yaml", "Path to YAML configuration file")
	flag.Parse()

	viper.SetConfigFile(*configFile)
	viper.SetConfigType(filepath.Ext(*configFile)[1:])

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}

	demo, err := NewDemo()

	if err != nil {
		log.Fatalf("Error creating demo: %v", err)
	}

	defer demo.Close()

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.GET("/stream", demo.Stream)

	addr := ":" + viper.GetString("http.port")
	log.Printf("Open browser and view video at http://localhost%s/stream", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("Error starting HTTP server: %v", err)
	}
}
