// Package face defines the detection record produced by the face detector.
//
// A Detection carries one face's bounding box, its five facial landmarks and
// the detector's confidence score. The layout mirrors the 15-column rows that
// OpenCV's FaceDetectorYN emits:
//
//	x, y, w, h,
//	right-eye x, y, left-eye x, y, nose-tip x, y,
//	right-mouth-corner x, y, left-mouth-corner x, y,
//	score
//
// # Coordinate System
//
// All values are in pixels of the image that was passed to the detector, with
// the origin at the top-left corner. Values may be fractional. When they are
// converted to integer pixel positions for drawing they are truncated toward
// zero (see Trunc), never rounded.
//
// # Lifecycle
//
// Detections are produced fresh for every inference call and have no identity
// across calls. The order returned by the detector is preserved.
package face
