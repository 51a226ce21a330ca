package reference

import (
	"os"
	"path/filepath"
)

// Sink receives the files of a built reference. Paths are slash-separated and
// relative to the sink's root.
type Sink interface {
	WriteFile(path string, data []byte) error
}

// DirSink writes files below a root directory, creating subdirectories as
// needed.
type DirSink struct {
	Root string
}

func (d DirSink) WriteFile(path string, data []byte) (err error) {
	full := filepath.Join(d.Root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	f, err := os.Create(full)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}

// MemorySink keeps files in memory, in write order.
type MemorySink struct {
	Paths []string
	Files map[string]string
}

func NewMemorySink() *MemorySink {
	return &MemorySink{Files: map[string]string{}}
}

func (m *MemorySink) WriteFile(path string, data []byte) error {
	if _, has := m.Files[path]; !has {
		m.Paths = append(m.Paths, path)
	}
	m.Files[path] = string(data)
	return nil
}
