package check

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/ironsheep/drone2coco/internal/coco"
	"github.com/ironsheep/drone2coco/internal/imaging"
)

// ErrImageNotFound is returned when the document has no image with the requested id.
var ErrImageNotFound = errors.New("image id not found")

// Options tunes a Checker.
type Options struct {
	// OverlayPath is where the annotated frame is saved. Empty disables it.
	OverlayPath string

	// Thickness of drawn box outlines in pixels. Defaults to 2.
	Thickness int
}

// Report is the outcome of one check.
type Report struct {
	ImageID   int
	FramePath string
	Frame     *imaging.FrameInfo

	// Declared dimensions from the image record.
	Width  int
	Height int

	// DimensionsMatch is false when the decoded frame size differs from the record.
	DimensionsMatch bool

	// Annotations on the checked image.
	Annotations int
	OutOfBounds int
	InvalidBoxes int

	// OrphanAnnotations reference an image_id with no image record.
	OrphanAnnotations int

	OverlayPath string
}

// OK reports whether the check found no problem.
func (r *Report) OK() bool {
	return r.DimensionsMatch && r.OutOfBounds == 0 && r.InvalidBoxes == 0 && r.OrphanAnnotations == 0
}

// Checker inspects converted splits against their frames.
type Checker struct {
	cache *imaging.FrameCache
	opts  Options
}

// New creates a Checker with its own frame cache.
func New(opts Options) *Checker {
	if opts.Thickness <= 0 {
		opts.Thickness = 2
	}
	return &Checker{
		cache: imaging.NewFrameCache(),
		opts:  opts,
	}
}

// Check inspects the image with id imageID in annotationsFile, loading its
// frame from imagesDir.
func (c *Checker) Check(imagesDir, annotationsFile string, imageID int) (*Report, error) {
	doc, err := coco.ReadDocument(annotationsFile)
	if err != nil {
		return nil, err
	}

	var record *coco.Image
	known := make(map[int]bool, len(doc.Images))
	for i := range doc.Images {
		known[doc.Images[i].ID] = true
		if doc.Images[i].ID == imageID && record == nil {
			record = &doc.Images[i]
		}
	}
	if record == nil {
		return nil, fmt.Errorf("%s: %w: %d", annotationsFile, ErrImageNotFound, imageID)
	}

	report := &Report{
		ImageID:   imageID,
		FramePath: filepath.Join(imagesDir, record.FileName),
		Width:     record.Width,
		Height:    record.Height,
	}

	info, err := imaging.LoadFrameInfo(c.cache, report.FramePath)
	if err != nil {
		return nil, err
	}
	report.Frame = info
	report.DimensionsMatch = info.Width == record.Width && info.Height == record.Height

	frameBounds := image.Rect(0, 0, record.Width, record.Height)
	var boxes []imaging.Box
	for _, a := range doc.Annotations {
		if !known[a.ImageID] {
			report.OrphanAnnotations++
		}
		if a.ImageID != imageID {
			continue
		}
		report.Annotations++

		box, err := decodeBox(a)
		if err != nil {
			report.InvalidBoxes++
			continue
		}
		if !box.InBounds(frameBounds) {
			report.OutOfBounds++
		}
		boxes = append(boxes, box)
	}

	if c.opts.OverlayPath != "" {
		frame, err := c.cache.Load(report.FramePath)
		if err != nil {
			return nil, err
		}
		overlay := imaging.DrawBoxes(frame, boxes, c.opts.Thickness)
		if err := imaging.SaveOverlay(overlay, c.opts.OverlayPath); err != nil {
			return nil, err
		}
		report.OverlayPath = c.opts.OverlayPath
	}

	return report, nil
}

// Check is a convenience wrapper running a one-off Checker.
func Check(imagesDir, annotationsFile string, imageID int, opts Options) (*Report, error) {
	return New(opts).Check(imagesDir, annotationsFile, imageID)
}

func decodeBox(a coco.Annotation) (imaging.Box, error) {
	var xywh []float64
	if err := json.Unmarshal(a.BBox, &xywh); err != nil {
		return imaging.Box{}, fmt.Errorf("failed to decode bbox: %w", err)
	}
	if len(xywh) != 4 {
		return imaging.Box{}, fmt.Errorf("bbox has %d values, want 4", len(xywh))
	}

	var track float64
	if err := json.Unmarshal(a.TrackID, &track); err != nil {
		return imaging.Box{}, fmt.Errorf("failed to decode track_id: %w", err)
	}

	return imaging.Box{X: xywh[0], Y: xywh[1], W: xywh[2], H: xywh[3], TrackID: int(track)}, nil
}
