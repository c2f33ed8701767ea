// Package notebook decodes notebook documents into a read-only cell model.
//
// Decoding is tolerant: only bytes that are not JSON, or JSON whose root is
// not an object, are rejected. Missing or wrongly typed keys decode to empty
// values so that rendering can degrade instead of failing.
//
// Multi-line text fields (cell source, stream text, MIME payloads) may be
// stored either as one string or as an array of fragments. Both forms are
// concatenated in order without a separator.
package notebook
