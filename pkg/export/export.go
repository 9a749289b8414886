// Package export writes generated parts to disk, one file per part.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/philipparndt/gochibi/pkg/chibi"
	"github.com/philipparndt/gochibi/pkg/mesh"
	"github.com/philipparndt/gochibi/pkg/obj"
	"github.com/philipparndt/gochibi/pkg/stl"
	"go.uber.org/zap"
)

// Exporter writes part collections as STL or OBJ files
type Exporter struct {
	log      *zap.Logger
	asciiSTL bool
}

// Option configures an Exporter
type Option func(*Exporter)

// WithLogger sets the logger used for per-part diagnostics
func WithLogger(log *zap.Logger) Option {
	return func(e *Exporter) {
		if log != nil {
			e.log = log
		}
	}
}

// WithASCIISTL writes ASCII instead of binary STL
func WithASCIISTL() Option {
	return func(e *Exporter) {
		e.asciiSTL = true
	}
}

// New creates an exporter; without WithLogger it logs nothing
func New(opts ...Option) *Exporter {
	e := &Exporter{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExportParts writes every non-empty part to <dir>/<name>.<ext> and returns
// the paths written, in part name order.
//
// Empty parts are skipped. A part that fails to write is logged, its partial
// file removed, and the batch continues without it. An unsupported format
// or an unusable directory fails the whole call before any file is written.
// When ctx is cancelled the remaining parts are abandoned and the files
// written so far are returned along with ctx.Err().
func (e *Exporter) ExportParts(ctx context.Context, parts chibi.PartCollection, dir string, format string) ([]string, error) {
	f, err := ParseFormat(format)
	if err != nil {
		e.log.Warn("Nothing exported", zap.String("format", format), zap.Error(err))
		return nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := make([]string, 0, len(parts))
	for _, name := range parts.Names() {
		if err := ctx.Err(); err != nil {
			e.log.Warn("Export cancelled",
				zap.Int("written", len(written)),
				zap.Int("total", len(parts)),
				zap.Error(err))
			return written, err
		}

		m := parts[name].Mesh
		if m.IsEmpty() {
			e.log.Debug("Skipping empty part", zap.String("part", name))
			continue
		}

		path := filepath.Join(dir, name+"."+f.Extension())
		if err := e.writeFile(path, name, m, f); err != nil {
			e.log.Error("Failed to export part",
				zap.String("part", name),
				zap.String("path", path),
				zap.Error(err))
			continue
		}

		e.log.Debug("Exported part",
			zap.String("part", name),
			zap.String("path", path),
			zap.Int("triangles", m.FaceCount()))
		written = append(written, path)
	}

	e.log.Info("Export finished",
		zap.String("dir", dir),
		zap.String("format", string(f)),
		zap.Int("files", len(written)))
	return written, nil
}

func (e *Exporter) writeFile(path, name string, m *mesh.Mesh, f Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return e.encode(file, name, m, f)
}

func (e *Exporter) encode(w io.Writer, name string, m *mesh.Mesh, f Format) error {
	switch f {
	case FormatOBJ:
		return obj.Write(w, name, m)
	case FormatSTL:
		if e.asciiSTL {
			return stl.WriteASCII(w, name, m)
		}
		return stl.WriteBinary(w, name, m)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
