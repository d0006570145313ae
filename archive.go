package brandkit

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"

	"github.com/nclosa/go-brandkit/internal/fileutil"
)

// ArchiveWriter is the narrow capability the export pipeline needs from
// an archive implementation: create named binary entries in a
// folder-structured container, then serialize the container to one
// blob. Writers are single-use; Finalize ends the writer's life.
type ArchiveWriter interface {
	Add(name string, data []byte) error
	Finalize() ([]byte, error)
}

// Delivery is the capability to offer a finished archive blob to the
// user as a named file. Implementations must release any temporary
// handle they allocate on every exit path, success or failure.
type Delivery interface {
	Deliver(name string, blob []byte) error
}

// Compile-time interface implementation checks.
var (
	_ ArchiveWriter = (*ZipWriter)(nil)
	_ Delivery      = (*FileDelivery)(nil)
)

// DefaultCompressionLevel is the flate level used when none is configured.
const DefaultCompressionLevel = flate.DefaultCompression

// errWriterFinalized guards against reuse after Finalize.
var errWriterFinalized = errors.New("zip writer already finalized")

// ZipWriter implements ArchiveWriter on an in-memory ZIP container.
// Entries use fixed metadata (no modification times, no platform
// attributes) so the same layout always serializes to the same bytes.
type ZipWriter struct {
	buf       bytes.Buffer
	zw        *zip.Writer
	finalized bool
}

// NewZipWriter creates a ZipWriter compressing with the given flate
// level. Levels follow compress/flate: -1 default, 0 store, 9 best.
func NewZipWriter(level int) *ZipWriter {
	w := &ZipWriter{}
	w.zw = zip.NewWriter(&w.buf)
	w.zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})
	return w
}

// Add creates one named entry with the given content.
func (w *ZipWriter) Add(name string, data []byte) error {
	if w.finalized {
		return errWriterFinalized
	}

	// Fixed header: zero Modified keeps output byte-stable across runs.
	entry, err := w.zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: zip.Deflate,
	})
	if err != nil {
		return fmt.Errorf("creating entry %s: %w", name, err)
	}
	if _, err := entry.Write(data); err != nil {
		return fmt.Errorf("writing entry %s: %w", name, err)
	}
	return nil
}

// Finalize closes the container and returns the complete ZIP blob.
func (w *ZipWriter) Finalize() ([]byte, error) {
	if w.finalized {
		return nil, errWriterFinalized
	}
	w.finalized = true

	if err := w.zw.Close(); err != nil {
		return nil, fmt.Errorf("closing zip: %w", err)
	}
	return w.buf.Bytes(), nil
}

// FileDelivery implements Delivery by writing the blob into a
// directory. The write goes through a temp file plus rename, and the
// temp file is removed on every failure path, so a failed delivery
// never leaves a partial archive behind.
type FileDelivery struct {
	Dir string // empty = current directory
}

// Deliver writes blob to Dir/name atomically.
func (d *FileDelivery) Deliver(name string, blob []byte) error {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return fileutil.WriteFileAtomic(filepath.Join(dir, name), blob, 0o644)
}
