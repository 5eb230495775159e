package remap

import (
	"encoding/json"
	"strings"

	"github.com/ironsheep/drone2coco/internal/coco"
)

// FrameExt is the extension given to every output file_name.
const FrameExt = ".jpg"

// Options tunes a Remapper. The zero value reproduces the reference behaviour.
type Options struct {
	// PerVideoFirstFrame tracks the first-frame id per video instead of with a
	// single running value.
	PerVideoFirstFrame bool

	// SeqNames overrides DefaultSeqNames.
	SeqNames []string
}

// Stats summarises one transformation for logging.
type Stats struct {
	Images      int
	Annotations int
	Videos      int

	// MaxObjectsPerImage is the largest number of annotations sharing an
	// output image_id, or 0 when there are none.
	MaxObjectsPerImage int
}

// Remapper converts drone exports to COCO-style tracking documents.
type Remapper struct {
	opts Options
}

// New creates a Remapper.
func New(opts Options) *Remapper {
	if len(opts.SeqNames) == 0 {
		opts.SeqNames = DefaultSeqNames
	}
	return &Remapper{opts: opts}
}

// Remap reads the export at sourcePath and atomically writes the converted
// document to destPath. Annotations are converted only when
// includeAnnotations is set; otherwise the output carries an empty list.
func (r *Remapper) Remap(sourcePath, destPath string, includeAnnotations bool) (Stats, error) {
	src, err := coco.ReadSource(sourcePath, includeAnnotations)
	if err != nil {
		return Stats{}, err
	}

	doc, stats, err := r.Transform(src, includeAnnotations)
	if err != nil {
		return Stats{}, err
	}

	if err := coco.WriteFile(destPath, doc); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// Transform converts a decoded export. It does no I/O.
func (r *Remapper) Transform(src *coco.SourceDocument, includeAnnotations bool) (*coco.Document, Stats, error) {
	ranges := VideoRanges(src.Images)

	doc := coco.NewDocument()
	doc.Images = r.remapImages(src.Images, ranges)
	doc.Categories = append(doc.Categories, src.Categories...)

	stats := Stats{
		Images: len(doc.Images),
		Videos: len(ranges),
	}

	if includeAnnotations {
		if !src.HasAnnotations {
			return nil, Stats{}, &coco.MalformedInputError{Key: "annotations", Index: -1}
		}
		anns, err := r.remapAnnotations(src.Annotations)
		if err != nil {
			return nil, Stats{}, err
		}
		doc.Annotations = anns
		stats.Annotations = len(anns)
		stats.MaxObjectsPerImage = maxObjectsPerImage(anns)
	}

	return doc, stats, nil
}

func (r *Remapper) remapImages(images []coco.SourceImage, ranges map[int]VideoRange) []coco.Image {
	out := make([]coco.Image, 0, len(images))

	// firstFrame is shared by all videos unless PerVideoFirstFrame is set.
	firstFrame := 0
	for id, img := range images {
		vr := ranges[img.VideoID]

		if r.opts.PerVideoFirstFrame {
			firstFrame = vr.MinIndex
		} else if img.ID == vr.Min {
			firstFrame = id
		}

		out = append(out, coco.Image{
			FileName:          frameFileName(img.FileName),
			Height:            img.Height,
			Width:             img.Width,
			ID:                id,
			FrameID:           id - firstFrame,
			SeqLength:         vr.SeqLength(),
			FirstFrameImageID: firstFrame,
		})
	}
	return out
}

func (r *Remapper) remapAnnotations(anns []coco.SourceAnnotation) ([]coco.Annotation, error) {
	out := make([]coco.Annotation, 0, len(anns))

	imageID := 0
	for i, a := range anns {
		// A new run of source ids starts a new frame.
		if i > 0 && a.ID != anns[i-1].ID {
			imageID++
		}

		seq, err := SeqLabel(r.opts.SeqNames, a.VideoID, i)
		if err != nil {
			return nil, err
		}

		out = append(out, coco.Annotation{
			ID:           a.ID,
			BBox:         a.BBox,
			ImageID:      imageID,
			Segmentation: []json.RawMessage{},
			Ignore:       0,
			Visibility:   1.0,
			Area:         a.Area,
			IsCrowd:      0,
			Seq:          seq,
			CategoryID:   a.CategoryID,
			TrackID:      a.TrackID,
		})
	}
	return out, nil
}

// frameFileName keeps everything before the first dot and appends FrameExt.
func frameFileName(name string) string {
	stem, _, _ := strings.Cut(name, ".")
	return stem + FrameExt
}

func maxObjectsPerImage(anns []coco.Annotation) int {
	counts := make(map[int]int)
	best := 0
	for _, a := range anns {
		counts[a.ImageID]++
		if counts[a.ImageID] > best {
			best = counts[a.ImageID]
		}
	}
	return best
}
