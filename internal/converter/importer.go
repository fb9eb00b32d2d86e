// Package converter turns OBJ text into an engine mesh container.
package converter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/ddm-converter/pkg/encoding"
	"github.com/Faultbox/ddm-converter/pkg/formats"
	"github.com/Faultbox/ddm-converter/pkg/mesh"
)

// Import errors.
var (
	ErrFileNotFound      = errors.New("file not found")
	ErrAttributesMissing = errors.New("face before position, uv and normal were recorded")
	ErrIndexOutOfRange   = errors.New("attribute reference out of range")
	ErrNotDone           = errors.New("import did not complete")
)

// State is the progress of an import.
type State int

// Import states, in order.
const (
	StateInit State = iota
	StateReadingAttributes
	StateReadingFaces
	StateFinalizing
	StateDone
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateReadingAttributes:
		return "ReadingAttributes"
	case StateReadingFaces:
		return "ReadingFaces"
	case StateFinalizing:
		return "Finalizing"
	case StateDone:
		return "Done"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Options controls OBJ parsing.
type Options struct {
	GroupMarker  string // Two-byte line tag that starts a new sub-mesh
	MaxLineBytes int
}

// DefaultOptions returns the default import settings.
func DefaultOptions() Options {
	return Options{
		GroupMarker:  formats.DefaultGroupMarker,
		MaxLineBytes: 1 << 20,
	}
}

// Result is the outcome of an import. On failure it holds whatever was built
// before the error and State tells how far the import got.
type Result struct {
	Mesh  *mesh.Container
	Stats Stats
	State State
}

// Done reports whether the import completed and the mesh can be exported.
func (r *Result) Done() bool {
	return r != nil && r.State == StateDone
}

// Importer converts OBJ input. It keeps no per-import state, so one
// Importer can be reused for any number of files.
type Importer struct {
	opts Options
	log  *zap.Logger
}

// NewImporter creates an importer. A nil logger disables logging.
func NewImporter(opts Options, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.GroupMarker == "" {
		opts.GroupMarker = formats.DefaultGroupMarker
	}
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = DefaultOptions().MaxLineBytes
	}
	return &Importer{opts: opts, log: log}
}

// MeshName derives the mesh name from an input path: the base name without
// its extension.
func MeshName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ImportFile opens and imports the OBJ file at path.
func (im *Importer) ImportFile(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		im.log.Error("cannot open OBJ file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	defer file.Close()

	return im.Import(file, MeshName(path))
}

// Import reads OBJ text from r and builds a mesh called name.
func (im *Importer) Import(r io.Reader, name string) (*Result, error) {
	ctx := newImportContext(name, im.opts.GroupMarker, im.log)

	scanner := bufio.NewScanner(encoding.NewUTF8Reader(r))
	scanner.Buffer(make([]byte, 0, min(64*1024, im.opts.MaxLineBytes)), im.opts.MaxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.processLine(scanner.Text()); err != nil {
			im.log.Warn("import aborted",
				zap.String("mesh", name),
				zap.Int("line", lineNo),
				zap.Stringer("state", ctx.state),
				zap.Error(err))
			return ctx.result(), fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return ctx.result(), fmt.Errorf("reading %s: %w", name, err)
	}

	ctx.finalize()
	res := ctx.result()

	im.log.Info("OBJ imported",
		zap.String("mesh", name),
		zap.Int("vertices", len(res.Mesh.Vertices)),
		zap.Int("triangles", len(res.Mesh.Triangles)),
		zap.Int("subMeshes", len(res.Mesh.SubMeshes)))
	if res.Stats.DegenerateTangents > 0 {
		im.log.Warn("triangles with degenerate UVs have non-finite tangents",
			zap.String("mesh", name),
			zap.Int("count", res.Stats.DegenerateTangents))
	}
	return res, nil
}

// Export writes a completed import to dir as <name>.ddm and returns the path.
func Export(res *Result, dir string, opts formats.DDMOptions) (string, error) {
	if !res.Done() {
		return "", ErrNotDone
	}
	path := filepath.Join(dir, res.Mesh.Name+formats.DDMExtension)
	if err := formats.SaveDDM(path, res.Mesh, opts); err != nil {
		return "", fmt.Errorf("exporting %s: %w", res.Mesh.Name, err)
	}
	return path, nil
}
