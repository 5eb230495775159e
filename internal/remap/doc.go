// Package remap turns a drone dataset export into a COCO-style tracking document.
//
// The transformation runs in two passes over the images. The first pass
// collects the minimum and maximum original id of every video; the second
// assigns sequential ids in source order and derives frame_id, seq_length and
// first_frame_image_id from those ranges. Annotations are then relabelled with
// a sequence name and a frame counter derived from runs of equal source ids.
//
// # First-frame tracking
//
// By default the first-frame id is a single running value that is replaced
// whenever an image holds its video's minimum original id. Exports that list
// videos one after another get correct frame ids; exports that interleave
// videos see the value of one video leak into another. Options.PerVideoFirstFrame
// keeps one first-frame id per video instead.
//
// # Usage
//
//	r := remap.New(remap.Options{})
//	stats, err := r.Remap("annotations/instances_train.json", "annotations/train.json", true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Printf("max objs per image: %d", stats.MaxObjectsPerImage)
package remap
