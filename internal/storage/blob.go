// Package storage holds uploaded answer sheets on disk so the OCR and
// PDF extractors can work from real file paths.
package storage

import "io"

type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	Path(key string) (string, error) // absolute on-disk path for extractors
	Remove(key string) error
}
