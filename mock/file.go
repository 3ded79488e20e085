package mock

import (
	"sync/atomic"

	"github.com/fwojciec/chromemarks"
)

var _ chromemarks.FileReader = (*FileReader)(nil)

// FileReader is a mock implementation of chromemarks.FileReader.
// It counts calls so tests can assert how often the disk would be hit.
type FileReader struct {
	ReadFileFn func(name string) ([]byte, error)

	reads atomic.Int64
}

func (r *FileReader) ReadFile(name string) ([]byte, error) {
	r.reads.Add(1)
	return r.ReadFileFn(name)
}

// Reads returns the number of ReadFile calls so far.
func (r *FileReader) Reads() int {
	return int(r.reads.Load())
}
