// Package detector adapts a pretrained YuNet face detector for use by the demo.
//
// The network, its score thresholding and non-maximum suppression all live in
// OpenCV (FaceDetectorYN, reached through gocv). This package only configures
// the detector, feeds it an image and converts its output rows into
// face.Detection values.
//
// # Backends and Targets
//
// The compute backend and compute target are two independent enumerations.
// Not every pair is meaningful, so New rejects incompatible pairs before
// touching OpenCV:
//
//	backend            cpu  opencl  opencl_fp16  myriad
//	default             x     x         x
//	halide              x     x
//	inference_engine    x     x         x          x
//	opencv              x     x         x
//
// # Input Size
//
// YuNet runs at a fixed input resolution. The caller must call SetInputSize
// with the image's width and height before Detect; Detect refuses an image of
// any other size.
//
// # Build Constraints
//
// The OpenCV-backed implementation requires cgo. Without cgo, New returns
// ErrUnavailable.
package detector
