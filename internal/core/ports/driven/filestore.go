package driven

import "io"

// FileStore gives services access to input and output files.
type FileStore interface {
	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)

	// WriteFile replaces path with data. Implementations must not leave a
	// partially written file behind on failure.
	WriteFile(path string, data []byte) error
}
