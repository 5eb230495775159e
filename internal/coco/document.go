package coco

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DocumentType is the constant value of the top-level "type" key.
const DocumentType = "instances"

// Fraction is a float that always encodes with a decimal point, so 1 is
// written as 1.0 like the tracker's reference files.
type Fraction float64

// MarshalJSON implements json.Marshaler.
func (f Fraction) MarshalJSON() ([]byte, error) {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return []byte(s), nil
}

// FrameRange is the fraction of each sequence covered by the document.
type FrameRange struct {
	Start Fraction `json:"start"`
	End   Fraction `json:"end"`
}

// FullRange covers every frame of every sequence.
var FullRange = FrameRange{Start: 0.0, End: 1.0}

// Image is one remapped frame record.
type Image struct {
	FileName          string `json:"file_name"`
	Height            int    `json:"height"`
	Width             int    `json:"width"`
	ID                int    `json:"id"`
	FrameID           int    `json:"frame_id"`
	SeqLength         int    `json:"seq_length"`
	FirstFrameImageID int    `json:"first_frame_image_id"`
}

// Annotation is one remapped box record.
type Annotation struct {
	ID           int               `json:"id"`
	BBox         json.RawMessage   `json:"bbox"`
	ImageID      int               `json:"image_id"`
	Segmentation []json.RawMessage `json:"segmentation"`
	Ignore       int               `json:"ignore"`
	Visibility   Fraction          `json:"visibility"`
	Area         json.RawMessage   `json:"area"`
	IsCrowd      int               `json:"iscrowd"`
	Seq          string            `json:"seq"`
	CategoryID   json.RawMessage   `json:"category_id"`
	TrackID      json.RawMessage   `json:"track_id"`
}

// Document is the COCO-style tracking document. Field order is output key order.
type Document struct {
	Type        string            `json:"type"`
	Images      []Image           `json:"images"`
	Categories  []json.RawMessage `json:"categories"`
	Annotations []Annotation      `json:"annotations"`
	Sequences   []string          `json:"sequences"`
	FrameRange  FrameRange        `json:"frame_range"`
}

// NewDocument returns an empty document whose arrays encode as [] rather than null.
func NewDocument() *Document {
	return &Document{
		Type:        DocumentType,
		Images:      []Image{},
		Categories:  []json.RawMessage{},
		Annotations: []Annotation{},
		Sequences:   []string{},
		FrameRange:  FullRange,
	}
}

// Encode renders doc as indented JSON followed by a newline.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile atomically replaces path with the encoded document.
//
// If any step fails the temporary file is removed and an existing file at
// path is left as it was.
func WriteFile(path string, doc *Document) (err error) {
	data, err := Encode(doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return &IOError{Op: "write", Path: tmpName, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &IOError{Op: "sync", Path: tmpName, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: tmpName, Err: err}
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return &IOError{Op: "chmod", Path: tmpName, Err: err}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

// ReadDocument decodes a COCO-style document previously written by WriteFile.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedInputError{Path: path, Index: -1, Err: err}
	}
	return &doc, nil
}
