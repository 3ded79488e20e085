package fs

import (
	"os"

	"github.com/fwojciec/chromemarks"
)

// Ensure FileReader implements chromemarks.FileReader at compile time.
var _ chromemarks.FileReader = (*FileReader)(nil)

// FileReader reads files from the local filesystem.
type FileReader struct{}

// NewFileReader creates a new FileReader.
func NewFileReader() *FileReader {
	return &FileReader{}
}

// ReadFile returns the contents of the named file.
func (r *FileReader) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}
