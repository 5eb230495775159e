package coco

import (
	"encoding/json"
	"os"
)

// SourceImage is one frame record of the drone export.
type SourceImage struct {
	ID       int
	VideoID  int
	FileName string
	Height   int
	Width    int
}

// SourceAnnotation is one box record of the drone export.
//
// Note that ID groups boxes of the same frame in the export; it is not a
// per-box identifier.
type SourceAnnotation struct {
	ID         int
	VideoID    int
	BBox       json.RawMessage
	Area       json.RawMessage
	CategoryID json.RawMessage
	TrackID    json.RawMessage
}

// SourceDocument is the decoded drone export.
type SourceDocument struct {
	Images      []SourceImage
	Annotations []SourceAnnotation
	Categories  []json.RawMessage

	// HasAnnotations is false when the export carries no annotations key
	// or annotations were not requested.
	HasAnnotations bool
}

type sourceWire struct {
	Images      *[]imageWire       `json:"images"`
	Annotations *[]json.RawMessage `json:"annotations"`
	Categories  *[]json.RawMessage `json:"categories"`
}

type imageWire struct {
	ID       *int    `json:"id"`
	VideoID  *int    `json:"video_id"`
	FileName *string `json:"file_name"`
	Height   *int    `json:"height"`
	Width    *int    `json:"width"`
}

type annotationWire struct {
	ID         *int            `json:"id"`
	VideoID    *int            `json:"video_id"`
	BBox       json.RawMessage `json:"bbox"`
	Area       json.RawMessage `json:"area"`
	CategoryID json.RawMessage `json:"category_id"`
	TrackID    json.RawMessage `json:"track_id"`
}

// ReadSource loads and validates the drone export at path.
//
// When withAnnotations is false the annotations key is neither required nor
// inspected, so a test split export without boxes decodes cleanly.
func ReadSource(path string, withAnnotations bool) (*SourceDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return ParseSource(data, path, withAnnotations)
}

// ParseSource decodes a drone export held in memory. path is only used in
// error messages.
func ParseSource(data []byte, path string, withAnnotations bool) (*SourceDocument, error) {
	var wire sourceWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, &MalformedInputError{Path: path, Index: -1, Err: err}
	}

	if wire.Images == nil {
		return nil, &MalformedInputError{Path: path, Key: "images", Index: -1}
	}
	if wire.Categories == nil {
		return nil, &MalformedInputError{Path: path, Key: "categories", Index: -1}
	}

	doc := &SourceDocument{
		Images:     make([]SourceImage, 0, len(*wire.Images)),
		Categories: *wire.Categories,
	}

	for i, w := range *wire.Images {
		img, field := w.convert()
		if field != "" {
			return nil, &MalformedInputError{Path: path, Key: "images", Index: i, Field: field}
		}
		doc.Images = append(doc.Images, img)
	}

	if !withAnnotations {
		return doc, nil
	}
	if wire.Annotations == nil {
		return nil, &MalformedInputError{Path: path, Key: "annotations", Index: -1}
	}

	doc.HasAnnotations = true
	doc.Annotations = make([]SourceAnnotation, 0, len(*wire.Annotations))
	for i, raw := range *wire.Annotations {
		var w annotationWire
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, &MalformedInputError{Path: path, Key: "annotations", Index: i, Err: err}
		}
		ann, field := w.convert()
		if field != "" {
			return nil, &MalformedInputError{Path: path, Key: "annotations", Index: i, Field: field}
		}
		doc.Annotations = append(doc.Annotations, ann)
	}

	return doc, nil
}

// convert returns the first missing field name, or "" and the populated record.
func (w imageWire) convert() (SourceImage, string) {
	switch {
	case w.ID == nil:
		return SourceImage{}, "id"
	case w.VideoID == nil:
		return SourceImage{}, "video_id"
	case w.FileName == nil:
		return SourceImage{}, "file_name"
	case w.Height == nil:
		return SourceImage{}, "height"
	case w.Width == nil:
		return SourceImage{}, "width"
	}
	return SourceImage{
		ID:       *w.ID,
		VideoID:  *w.VideoID,
		FileName: *w.FileName,
		Height:   *w.Height,
		Width:    *w.Width,
	}, ""
}

func (w annotationWire) convert() (SourceAnnotation, string) {
	switch {
	case w.ID == nil:
		return SourceAnnotation{}, "id"
	case w.VideoID == nil:
		return SourceAnnotation{}, "video_id"
	case len(w.BBox) == 0:
		return SourceAnnotation{}, "bbox"
	case len(w.Area) == 0:
		return SourceAnnotation{}, "area"
	case len(w.CategoryID) == 0:
		return SourceAnnotation{}, "category_id"
	case len(w.TrackID) == 0:
		return SourceAnnotation{}, "track_id"
	}
	return SourceAnnotation{
		ID:         *w.ID,
		VideoID:    *w.VideoID,
		BBox:       w.BBox,
		Area:       w.Area,
		CategoryID: w.CategoryID,
		TrackID:    w.TrackID,
	}, ""
}
