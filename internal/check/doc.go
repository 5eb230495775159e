// Package check runs a post-conversion sanity pass over a converted split.
//
// Given the split's image directory, the converted annotation file and an
// image id, Check decodes the document, loads the frame named by that image
// record, compares its decoded size with the record, validates the boxes
// annotated on it and saves a picture with the boxes drawn on the frame.
// Document-wide, it also counts annotations that point at a missing image id.
//
// The converter never consumes the Report; the command only logs it.
package check
