// Package render draws face detections over an image.
//
// Visualize copies the input image and draws, for each detection in order:
//
//  1. The bounding box outline, 2 pixels wide.
//  2. A dot of radius 2 on each of the five landmarks, one colour per
//     landmark role.
//  3. The confidence score with four decimals, anchored at the box's
//     top-left corner shifted 15 pixels down.
//
// An optional frame rate label is drawn at (0, 15) before any detection.
// Text anchors are baseline-left, as in OpenCV's putText.
//
// # Coordinates
//
// Detection coordinates are truncated toward zero before drawing. The far
// corner of a box is computed from the truncated corner and the truncated
// size.
//
// # Canvas
//
// Drawing goes through the Canvas interface. NewCanvas rasterises onto an
// owned RGBA copy with fogleman/gg; tests substitute a recording canvas to
// check the exact primitives that were requested.
//
// # Diagnostics
//
// With Options.Verbose set, one line per detection is written to
// Options.Out in a fixed format that golden-output tests rely on.
package render
