// Package formats provides readers and writers for mesh interchange formats.
// OBJ (Wavefront) line lexer for the subset the converter understands.
package formats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/ddm-converter/pkg/math"
)

// OBJ format errors.
var (
	ErrEmptyOBJRef = errors.New("empty OBJ vertex reference")
)

// DefaultGroupMarker starts a new sub-mesh. It matches "usemtl" lines.
const DefaultGroupMarker = "us"

// OBJLineKind classifies one line of an OBJ file.
type OBJLineKind int

// Line kinds recognized by ClassifyLine.
const (
	OBJLineIgnored OBJLineKind = iota
	OBJLinePosition
	OBJLineNormal
	OBJLineUV
	OBJLineFace
	OBJLineGroup
)

// String returns a human-readable line kind.
func (k OBJLineKind) String() string {
	switch k {
	case OBJLineIgnored:
		return "ignored"
	case OBJLinePosition:
		return "position"
	case OBJLineNormal:
		return "normal"
	case OBJLineUV:
		return "uv"
	case OBJLineFace:
		return "face"
	case OBJLineGroup:
		return "group"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// ClassifyLine looks at the first two bytes of line and returns its kind and
// the payload that follows the tag. Lines shorter than two bytes and unknown
// tags are OBJLineIgnored. A trailing carriage return is dropped.
func ClassifyLine(line, marker string) (OBJLineKind, string) {
	line = strings.TrimSuffix(line, "\r")
	if len(line) < 2 {
		return OBJLineIgnored, ""
	}

	tag, payload := line[:2], line[2:]
	switch tag {
	case "v ":
		return OBJLinePosition, payload
	case "vn":
		return OBJLineNormal, payload
	case "vt":
		return OBJLineUV, payload
	case "f ":
		return OBJLineFace, payload
	}
	if tag == marker {
		return OBJLineGroup, payload
	}
	return OBJLineIgnored, ""
}

// ParseOBJVec3 reads three whitespace-separated floats.
// Conversion is permissive: see parseFloatPrefix.
func ParseOBJVec3(payload string) math.Vec3 {
	var f [3]float32
	parseFloats(payload, f[:])
	return math.Vec3{X: f[0], Y: f[1], Z: f[2]}
}

// ParseOBJVec2 reads two whitespace-separated floats.
func ParseOBJVec2(payload string) math.Vec2 {
	var f [2]float32
	parseFloats(payload, f[:])
	return math.Vec2{X: f[0], Y: f[1]}
}

// ParseOBJFace splits a face payload into its vertex references.
// References are returned verbatim so they can be used as dedup keys.
func ParseOBJFace(payload string) []string {
	return strings.Fields(payload)
}

// ParseOBJRef splits a "pos/uv/normal" reference into its three one-based
// indices. Missing or non-numeric components parse as 0, which no attribute
// table accepts.
func ParseOBJRef(ref string) (math.Vec3u, error) {
	if ref == "" {
		return math.Vec3u{}, ErrEmptyOBJRef
	}

	var idx [3]uint32
	parts := strings.SplitN(ref, "/", 3)
	for i, p := range parts {
		idx[i] = parseUintPrefix(p)
	}
	return math.Vec3u{X: idx[0], Y: idx[1], Z: idx[2]}, nil
}

// parseFloats fills out from the leading fields of payload. Fields past
// len(out) are ignored and missing ones stay 0.
func parseFloats(payload string, out []float32) {
	fields := strings.Fields(payload)
	for i := 0; i < len(out) && i < len(fields); i++ {
		out[i] = parseFloatPrefix(fields[i])
	}
}

// parseFloatPrefix converts the longest numeric prefix of s, like strtod.
// Returns 0 if no prefix is a number.
func parseFloatPrefix(s string) float32 {
	end := floatPrefixLen(s)
	if end == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(s[:end], 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return float32(f)
}

// floatPrefixLen returns the length of the longest decimal float at the start
// of s: optional sign, digits with an optional fraction, then an exponent
// only if it has at least one digit.
func floatPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseUintPrefix converts the leading decimal digits of s.
// Values past uint32 saturate.
func parseUintPrefix(s string) uint32 {
	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.ParseUint(s[:end], 10, 32)
	if err != nil {
		return ^uint32(0)
	}
	return uint32(n)
}
