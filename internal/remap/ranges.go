package remap

import "github.com/ironsheep/drone2coco/internal/coco"

// VideoRange is the span of original image ids belonging to one video.
type VideoRange struct {
	Min int
	Max int

	// MinIndex is the source position of the image holding Min. Since output
	// ids follow source order it is also that image's output id.
	MinIndex int
}

// SeqLength is the number of ids spanned, which exceeds the image count when
// the export skips ids.
func (r VideoRange) SeqLength() int {
	return r.Max - r.Min + 1
}

// VideoRanges scans all images once and returns the id span of each video.
func VideoRanges(images []coco.SourceImage) map[int]VideoRange {
	ranges := make(map[int]VideoRange)
	for i, img := range images {
		r, ok := ranges[img.VideoID]
		if !ok {
			ranges[img.VideoID] = VideoRange{Min: img.ID, Max: img.ID, MinIndex: i}
			continue
		}
		if img.ID < r.Min {
			r.Min = img.ID
			r.MinIndex = i
		}
		if img.ID > r.Max {
			r.Max = img.ID
		}
		ranges[img.VideoID] = r
	}
	return ranges
}
