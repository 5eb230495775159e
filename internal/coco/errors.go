package coco

import "fmt"

// MalformedInputError reports a source document that is not valid JSON, lacks a
// required top-level key, or holds a record without a required field.
type MalformedInputError struct {
	// Path is the file being decoded, empty when decoding from memory.
	Path string

	// Key is the top-level key involved: "images", "annotations" or "categories".
	Key string

	// Index is the record position within Key, or -1 for document level problems.
	Index int

	// Field is the missing record field, empty for document level problems.
	Field string

	// Err is the underlying decode error, if any.
	Err error
}

func (e *MalformedInputError) Error() string {
	where := e.Path
	if where == "" {
		where = "<memory>"
	}
	switch {
	case e.Err != nil:
		return fmt.Sprintf("malformed input %s: %v", where, e.Err)
	case e.Index < 0:
		return fmt.Sprintf("malformed input %s: missing top-level key %q", where, e.Key)
	default:
		return fmt.Sprintf("malformed input %s: %s[%d] missing field %q", where, e.Key, e.Index, e.Field)
	}
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// IndexOutOfRangeError reports a video_id that has no entry in the sequence name table.
type IndexOutOfRangeError struct {
	// Index is the annotation position in the source document.
	Index int

	// VideoID is the offending value.
	VideoID int

	// Len is the size of the name table.
	Len int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("annotations[%d]: video_id %d outside sequence name table [0,%d)", e.Index, e.VideoID, e.Len)
}

// IOError reports a source that cannot be read or a destination that cannot be written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
