package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/log"
	"github.com/df07/go-raytracer/pkg/material"
)

var logger = log.New("loaders")

// OBJData contains the geometry read from a Wavefront OBJ file
type OBJData struct {
	Vertices    []core.Vec3 // Vertex positions (v)
	Normals     []core.Vec3 // Vertex normals (vn), empty if not present
	Faces       [][]int     // Polygon faces as zero-based vertex indices
	FaceNormals [][]int     // Zero-based normal index per face corner, nil entries when a face has none
	Ignored     int         // Lines with statements the loader does not interpret
}

// LoadOBJ loads an OBJ file from disk
func LoadOBJ(filename string) (*OBJData, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	logger.Debugf("loaded %s: %d vertices, %d faces in %v",
		filename, len(data.Vertices), len(data.Faces), time.Since(startTime))

	return data, nil
}

// ParseOBJ reads vertices, normals and polygon faces. Statements other than
// v, vn and f (texture coordinates, groups, materials, smoothing) are
// counted in Ignored and otherwise skipped.
func ParseOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "v":
			v, err := parseVec3(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNumber, err)
			}
			data.Vertices = append(data.Vertices, v)
		case "vn":
			n, err := parseVec3(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNumber, err)
			}
			if n.NearZero() {
				return nil, fmt.Errorf("line %d: normal: zero length", lineNumber)
			}
			data.Normals = append(data.Normals, n)
		case "f":
			face, normals, err := data.parseFace(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: face: %w", lineNumber, err)
			}
			data.Faces = append(data.Faces, face)
			data.FaceNormals = append(data.FaceNormals, normals)
		default:
			data.Ignored++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return data, nil
}

func parseVec3(parts []string) (core.Vec3, error) {
	if len(parts) < 3 {
		return core.Vec3{}, fmt.Errorf("need 3 coordinates, got %d", len(parts))
	}
	var xyz [3]float64
	for i := range xyz {
		value, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid coordinate %q", parts[i])
		}
		xyz[i] = value
	}
	return core.NewVec3(xyz[0], xyz[1], xyz[2]), nil
}

// parseFace reads corners of the form v, v/vt, v//vn or v/vt/vn
func (d *OBJData) parseFace(corners []string) ([]int, []int, error) {
	if len(corners) < 3 {
		return nil, nil, fmt.Errorf("need at least 3 vertices, got %d", len(corners))
	}

	face := make([]int, len(corners))
	normals := make([]int, len(corners))
	withNormals := 0
	for i, corner := range corners {
		fields := strings.Split(corner, "/")

		vertex, err := resolveIndex(fields[0], len(d.Vertices))
		if err != nil {
			return nil, nil, err
		}
		face[i] = vertex

		if len(fields) == 3 && fields[2] != "" {
			normal, err := resolveIndex(fields[2], len(d.Normals))
			if err != nil {
				return nil, nil, err
			}
			normals[i] = normal
			withNormals++
		}
	}

	switch withNormals {
	case 0:
		return face, nil, nil
	case len(corners):
		return face, normals, nil
	default:
		return nil, nil, fmt.Errorf("only %d of %d corners have normals", withNormals, len(corners))
	}
}

// resolveIndex converts a one-based (or negative, relative) OBJ index into a
// zero-based index into a list of count elements read so far
func resolveIndex(field string, count int) (int, error) {
	index, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", field)
	}
	switch {
	case index > 0 && index <= count:
		return index - 1, nil
	case index < 0 && -index <= count:
		return count + index, nil
	default:
		return 0, fmt.Errorf("index %d out of range for %d elements", index, count)
	}
}

// Mesh builds a triangle mesh from the parsed data. When every face carries
// normals the mesh is smooth shaded with one normal per vertex, taken from
// the corners that reference it; otherwise it is flat shaded.
func (d *OBJData) Mesh(mat material.Material) (*geometry.TriangleMesh, error) {
	var options *geometry.TriangleMeshOptions
	if normals, ok := d.vertexNormals(); ok {
		options = &geometry.TriangleMeshOptions{Normals: normals}
	}
	mesh, err := geometry.NewTriangleMesh(d.Vertices, d.Faces, mat, options)
	if err != nil {
		return nil, fmt.Errorf("loaders: %w", err)
	}
	return mesh, nil
}

func (d *OBJData) vertexNormals() ([]core.Vec3, bool) {
	if len(d.Normals) == 0 || len(d.Faces) == 0 {
		return nil, false
	}
	normals := make([]core.Vec3, len(d.Vertices))
	for f, face := range d.Faces {
		if d.FaceNormals[f] == nil {
			return nil, false
		}
		for i, vertex := range face {
			normals[vertex] = d.Normals[d.FaceNormals[f][i]].Normalize()
		}
	}
	return normals, true
}
