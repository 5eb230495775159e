// Package imaging loads dataset frames and renders annotation overlays.
//
// It backs the consistency check: frames are decoded through a FrameCache,
// their dimensions are compared with the annotation records, and DrawBoxes
// paints the annotation boxes onto a copy of the frame for visual review.
//
// # Coordinate System
//
// Boxes use the COCO convention [x, y, width, height] with (0,0) at the
// top-left corner, X increasing rightward and Y increasing downward. Box.Rect
// rounds to the covered pixel rectangle, Min inclusive and Max exclusive.
//
// # Thread Safety
//
// FrameCache is safe for concurrent use. DrawBoxes never mutates its input;
// it draws on a copy made with bild's clone package.
//
// # Colours
//
// Each track id gets a stable colour from TrackColor, chosen in HSV space with
// go-colorful so that neighbouring ids are easy to tell apart. Labels are
// drawn with a built-in 3x5 pixel font covering digits and '-'.
package imaging
