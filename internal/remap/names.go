package remap

import (
	"fmt"

	"github.com/ironsheep/drone2coco/internal/coco"
)

// DefaultSeqNames maps a video_id to the MOT17-style sequence name fragment.
var DefaultSeqNames = []string{
	"TRAIN", "TEST", "ALL",
	"01", "02", "03", "04", "05", "06", "07", "08", "09", "10",
	"11", "12", "13", "14", "15", "16", "17", "18", "19", "20",
}

// SeqLabel formats the sequence label for videoID using names.
// index is the annotation position and only feeds the error.
func SeqLabel(names []string, videoID, index int) (string, error) {
	if videoID < 0 || videoID >= len(names) {
		return "", &coco.IndexOutOfRangeError{Index: index, VideoID: videoID, Len: len(names)}
	}
	return fmt.Sprintf("MOT17-%s-ALL", names[videoID]), nil
}
