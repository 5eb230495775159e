package remap

import (
	"log"

	"github.com/ironsheep/drone2coco/internal/config"
)

// RunSplit converts <dataRoot>/annotations/<sourceFile> into
// <dataRoot>/annotations/<split>.json. The test split is written without
// annotations.
func RunSplit(cfg *config.Config, sourceFile, split string, verbose bool) (Stats, error) {
	r := New(Options{PerVideoFirstFrame: cfg.PerVideoFirstFrame})

	src := cfg.SourcePath(sourceFile)
	dst := cfg.SplitPath(split)
	includeAnnotations := split != config.SplitTest

	if verbose {
		log.Printf("Converting %s -> %s (annotations: %v, per-video first frame: %v)",
			src, dst, includeAnnotations, cfg.PerVideoFirstFrame)
	}

	stats, err := r.Remap(src, dst, includeAnnotations)
	if err != nil {
		return Stats{}, err
	}

	if includeAnnotations {
		log.Printf("max objs per image: %d", stats.MaxObjectsPerImage)
	}
	log.Printf("images: %d, annotations: %d, videos: %d", stats.Images, stats.Annotations, stats.Videos)
	log.Printf("Annotation path: %s", dst)
	return stats, nil
}
