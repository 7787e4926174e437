package util

import (
	"io"
	"os"
	"regexp"

	gzip "github.com/klauspost/pgzip"
)

var gz = regexp.MustCompile(`\.gz$`)

// ReadCloser closes the decompressor before the underlying file
type ReadCloser struct {
	io.Reader
	file *os.File
	gr   *gzip.Reader
}

// Close closes the decompressor, if any, then the file
func (rc *ReadCloser) Close() error {
	if rc.gr != nil {
		if err := rc.gr.Close(); err != nil {
			rc.file.Close()
			return err
		}
	}
	return rc.file.Close()
}

// Open opens path for reading, decompressing on the fly when the name ends in .gz
func Open(path string) (*ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !gz.MatchString(path) {
		return &ReadCloser{Reader: file, file: file}, nil
	}
	gr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &ReadCloser{Reader: gr, file: file, gr: gr}, nil
}

