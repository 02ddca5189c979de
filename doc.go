/*
go-smoothtrack reduces bounding box jitter in real time object detection
pipelines.  It associates each video frame's detections with those of
the previous frame using spatial bucketing and nearest neighbour
matching, then exponentially smooths bounding box coordinates across
frames so overlays don't shake on screen.

The core lives in the tracker package and is a plain synchronous
function with no I/O, callable from whatever capture loop or inference
callback the host application uses.  The render package draws smoothed
results onto gocv Mats or standard library images, and the preprocess
package maps boxes between detector input space and source frame
coordinates.

See example code and usage in the example subdirectory.
*/
package smoothtrack
