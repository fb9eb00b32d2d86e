// Package formats provides readers and writers for mesh interchange formats.
// DDM mesh container writer. DDM is a line-oriented tagged text format read
// by the engine's mesh loader.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/multierr"

	"github.com/Faultbox/ddm-converter/pkg/math"
	"github.com/Faultbox/ddm-converter/pkg/mesh"
)

// DDMExtension is the file extension of exported meshes.
const DDMExtension = ".ddm"

// DDM format errors.
var (
	ErrDDMIndexOutOfRange = errors.New("triangle index exceeds vertex count")
	ErrDDMBadSubMeshes    = errors.New("sub-mesh ranges do not partition the triangle list")
)

// DDMMaterial is the single material block written per file.
type DDMMaterial struct {
	Name     string    `yaml:"name"`
	Diffuse  math.Vec3 `yaml:"diffuse,flow"`
	Specular math.Vec3 `yaml:"specular,flow"`
}

// DDMOptions controls how a container is serialized.
type DDMOptions struct {
	Precision int // Decimal places for every float.
	Material  DDMMaterial
}

// DefaultDDMOptions returns the settings the engine loader expects.
func DefaultDDMOptions() DDMOptions {
	return DDMOptions{
		Precision: 3,
		Material: DDMMaterial{
			Name:     "default",
			Diffuse:  math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
			Specular: math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		},
	}
}

// ValidateDDM checks that c can be exported: every triangle index points into
// the vertex buffer and the sub-mesh ranges cover the triangle list exactly.
func ValidateDDM(c *mesh.Container) error {
	vertexCount := uint32(len(c.Vertices))
	for i, tri := range c.Triangles {
		if tri.Max() >= vertexCount {
			return fmt.Errorf("%w: triangle %d %v, %d vertices", ErrDDMIndexOutOfRange, i, tri, vertexCount)
		}
	}

	if len(c.SubMeshes) == 0 {
		return fmt.Errorf("%w: no sub-meshes", ErrDDMBadSubMeshes)
	}
	var next uint32
	for i, sm := range c.SubMeshes {
		if sm.Start != next || sm.End < sm.Start {
			return fmt.Errorf("%w: sub-mesh %d is [%d, %d), expected start %d", ErrDDMBadSubMeshes, i, sm.Start, sm.End, next)
		}
		next = sm.End
	}
	if int(next) != len(c.Triangles) {
		return fmt.Errorf("%w: ranges end at %d, %d triangles", ErrDDMBadSubMeshes, next, len(c.Triangles))
	}
	return nil
}

// WriteDDM serializes c to w. Each <ebo> block holds the triangles of its own
// sub-mesh range.
func WriteDDM(w io.Writer, c *mesh.Container, opts DDMOptions) error {
	if err := ValidateDDM(c); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	f := func(v float32) string {
		return strconv.FormatFloat(float64(v), 'f', opts.Precision, 32)
	}
	vec3 := func(v math.Vec3) string {
		return f(v.X) + " " + f(v.Y) + " " + f(v.Z)
	}

	fmt.Fprintf(bw, "<name>\n%s\n</name>\n", c.Name)

	fmt.Fprintln(bw, "<buffer>")
	fmt.Fprintf(bw, "v %d\n", len(c.Vertices))
	fmt.Fprintf(bw, "e %d\n", len(c.SubMeshes))
	fmt.Fprintln(bw, "m 1")
	fmt.Fprintln(bw, "</buffer>")

	fmt.Fprintln(bw, "<material>")
	fmt.Fprintf(bw, "n %s\n", opts.Material.Name)
	fmt.Fprintf(bw, "d %s\n", vec3(opts.Material.Diffuse))
	fmt.Fprintf(bw, "s %s\n", vec3(opts.Material.Specular))
	fmt.Fprintln(bw, "</material>")

	// No skinning: joints and weights are placeholders.
	var weights math.Vec4
	weightLine := fmt.Sprintf("b %s %s %s %s\n", f(weights.X), f(weights.Y), f(weights.Z), f(weights.W))

	fmt.Fprintln(bw, "<vertex>")
	for i := range c.Vertices {
		v := &c.Vertices[i]
		fmt.Fprintf(bw, "v %s\n", vec3(v.Position))
		fmt.Fprintf(bw, "n %s\n", vec3(v.Normal))
		fmt.Fprintf(bw, "t %s\n", vec3(v.Tangent))
		fmt.Fprintf(bw, "u %s %s\n", f(v.UV.X), f(v.UV.Y))
		fmt.Fprintln(bw, "j 0 0 0 0")
		bw.WriteString(weightLine)
	}
	fmt.Fprintln(bw, "</vertex>")

	for i := range c.SubMeshes {
		tris := c.SubMeshTriangles(i)
		fmt.Fprintln(bw, "<ebo>")
		fmt.Fprintf(bw, "s %d\n", len(tris)*3)
		fmt.Fprintln(bw, "m 0")
		for _, tri := range tris {
			fmt.Fprintf(bw, "- %d %d %d\n", tri.X, tri.Y, tri.Z)
		}
		fmt.Fprintln(bw, "</ebo>")
	}

	return bw.Flush()
}

// SaveDDM writes c to path. The file is rendered in memory first so a
// container that fails validation never creates the file.
func SaveDDM(path string, c *mesh.Container, opts DDMOptions) (err error) {
	var buf bytes.Buffer
	if err := WriteDDM(&buf, c, opts); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	if _, err := buf.WriteTo(file); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
