package converter

import (
	"go.uber.org/zap"

	"github.com/Faultbox/ddm-converter/pkg/formats"
	"github.com/Faultbox/ddm-converter/pkg/mesh"
)

// importContext owns every buffer of a single import.
type importContext struct {
	marker string
	state  State
	log    *zap.Logger

	attrs    AttributeTables
	mesh     *mesh.Container
	index    *DedupIndex
	segments *Segmenter
	stats    Stats
}

func newImportContext(name, marker string, log *zap.Logger) *importContext {
	c := &importContext{
		marker:   marker,
		state:    StateInit,
		log:      log,
		mesh:     &mesh.Container{Name: name},
		segments: NewSegmenter(),
	}
	c.index = NewDedupIndex(&c.attrs, c.mesh)
	return c
}

func (c *importContext) processLine(line string) error {
	kind, payload := formats.ClassifyLine(line, c.marker)

	switch kind {
	case formats.OBJLinePosition:
		c.attrs.AppendPosition(formats.ParseOBJVec3(payload))
		c.readingAttributes()
	case formats.OBJLineNormal:
		c.attrs.AppendNormal(formats.ParseOBJVec3(payload))
		c.readingAttributes()
	case formats.OBJLineUV:
		c.attrs.AppendUV(formats.ParseOBJVec2(payload))
		c.readingAttributes()
	case formats.OBJLineFace:
		if !c.attrs.Ready() {
			return ErrAttributesMissing
		}
		c.state = StateReadingFaces
		return c.addFace(formats.ParseOBJFace(payload))
	case formats.OBJLineGroup:
		c.segments.Mark(len(c.mesh.Triangles))
	default:
		c.stats.IgnoredLines++
	}
	return nil
}

// readingAttributes moves out of Init. Attributes interleaved with faces
// leave the state alone.
func (c *importContext) readingAttributes() {
	if c.state == StateInit {
		c.state = StateReadingAttributes
	}
}

func (c *importContext) addFace(refs []string) error {
	n, err := Triangulate(refs, c.index.Resolve, c.emit)
	if err != nil {
		return err
	}
	if n == 0 {
		c.stats.SkippedFaces++
		c.log.Debug("face skipped", zap.Int("refs", len(refs)))
	}
	return nil
}

// emit appends a triangle and immediately computes its tangent.
func (c *importContext) emit(tri mesh.Triangle) {
	c.mesh.Triangles = append(c.mesh.Triangles, tri)
	if t := c.mesh.ApplyTangent(tri); !t.IsFinite() {
		c.stats.DegenerateTangents++
		c.log.Debug("degenerate tangent",
			zap.Int("triangle", len(c.mesh.Triangles)-1),
			zap.Uint32s("vertices", []uint32{tri.X, tri.Y, tri.Z}))
	}
}

func (c *importContext) finalize() {
	c.state = StateFinalizing
	c.segments.Close(len(c.mesh.Triangles))
	c.mesh.SubMeshes = c.segments.SubMeshes()
	c.mesh.ComputeBounds()
	c.state = StateDone
}

// result snapshots the context. Stats are filled from the live buffers.
func (c *importContext) result() *Result {
	s := c.stats
	s.Positions = c.attrs.Len(AttributePosition)
	s.Normals = c.attrs.Len(AttributeNormal)
	s.UVs = c.attrs.Len(AttributeUV)
	s.UniqueVertices = c.index.Unique()
	s.ReReferenced = c.index.ReReferenced()
	s.Indices = c.mesh.IndexCount()
	s.Triangles = len(c.mesh.Triangles)
	s.Offsets = c.segments.Offsets()
	s.Bounds = c.mesh.Bounds

	return &Result{Mesh: c.mesh, Stats: s, State: c.state}
}
