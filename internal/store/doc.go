// Package store handles the on-disk representation of skill data: the JSON
// document types, the encode/decode codec, an atomic file store, and JSON
// Schema validation of data files for diagnostics.
package store
