package export

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"time"
)

var (
	ErrArchiveFinalized = errors.New("export: archive already finalized")
	ErrDuplicateEntry   = errors.New("export: duplicate archive entry")
)

// Archive accumulates named blobs into an in-memory zip.
type Archive struct {
	buf       bytes.Buffer
	zw        *zip.Writer
	names     map[string]struct{}
	order     []string
	modified  time.Time
	finalized bool
}

// NewArchive creates an empty archive. Entries are stamped with modified.
func NewArchive(modified time.Time) *Archive {
	a := &Archive{names: make(map[string]struct{}), modified: modified}
	a.zw = zip.NewWriter(&a.buf)
	return a
}

// Add stores data under name.
func (a *Archive) Add(name string, data []byte) error {
	if a.finalized {
		return ErrArchiveFinalized
	}
	if _, dup := a.names[name]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateEntry, name)
	}
	hdr := &zip.FileHeader{Name: name, Method: zip.Deflate, Modified: a.modified}
	w, err := a.zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("archive: create %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("archive: write %s: %w", name, err)
	}
	a.names[name] = struct{}{}
	a.order = append(a.order, name)
	return nil
}

// Names returns entry names in insertion order.
func (a *Archive) Names() []string {
	return append([]string(nil), a.order...)
}

// Finalize closes the archive and returns its bytes.
func (a *Archive) Finalize() ([]byte, error) {
	if a.finalized {
		return nil, ErrArchiveFinalized
	}
	if err := a.zw.Close(); err != nil {
		return nil, fmt.Errorf("archive: close: %w", err)
	}
	a.finalized = true
	return a.buf.Bytes(), nil
}
