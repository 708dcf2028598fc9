package ports

import "os"

// DescriptorOpener creates the descriptors the execution units hand to children.
type DescriptorOpener interface {
	// Pipe returns the read and write ends of a new anonymous pipe.
	Pipe() (r *os.File, w *os.File, err error)
	// OpenAppend opens path write-only in append mode, creating it owner read-write.
	OpenAppend(path string) (*os.File, error)
}
