// Package coco defines the annotation documents read and written by drone2coco.
//
// Two shapes live here:
//   - SourceDocument: the drone dataset export, with images grouped by video_id
//     and annotations keyed by the source annotation id.
//   - Document: the COCO-style tracking document consumed by the tracker
//     training pipeline, with per-sequence frame indexing.
//
// # Decoding
//
// ParseSource validates presence rather than just syntax. A missing top-level
// key or a record without one of its required fields yields a
// *MalformedInputError naming the key, the record index, and the field.
// Fields that are only carried through (bbox, area, category_id, track_id and
// whole category descriptors) are kept as raw JSON so their exact encoding
// survives the round trip.
//
// # Encoding
//
// Document fields are declared in output order, so encoding/json writes keys
// in a stable order. WriteFile indents with four spaces and replaces the
// destination atomically: the document is written to a temporary file in the
// same directory and renamed into place only after a successful sync.
//
// # Errors
//
// All failures are reported through three types that callers can match with
// errors.As: *MalformedInputError, *IndexOutOfRangeError and *IOError.
package coco
