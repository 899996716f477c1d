package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/spincube/pkg/math3d"
)

// LoadOBJ loads the geometry of a Wavefront OBJ file. Polygons are kept as
// faces; normals, texture coordinates and materials are ignored.
func LoadOBJ(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	m, err := ReadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	m.Name = filepath.Base(path)
	return m, nil
}

// ReadOBJ parses OBJ "v" and "f" statements from r.
func ReadOBJ(r io.Reader) (*Model, error) {
	var (
		vertices []math3d.Vec3
		faces    [][]int
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", line)
			}
			var xyz [3]float64
			for i := range 3 {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				xyz[i] = v
			}
			vertices = append(vertices, math3d.V3(xyz[0], xyz[1], xyz[2]))

		case "f":
			face := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idx, err := objIndex(ref, len(vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				face = append(face, idx)
			}
			faces = append(faces, face)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return NewModel(vertices, faces)
}

// objIndex converts a face vertex reference ("7", "7/2", "7//3", "-1") into
// a zero-based index. Negative references count back from the latest vertex.
func objIndex(ref string, count int) (int, error) {
	if i := strings.IndexByte(ref, '/'); i >= 0 {
		ref = ref[:i]
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q: %w", ref, err)
	}
	switch {
	case n > 0:
		return n - 1, nil
	case n < 0:
		return count + n, nil
	default:
		return 0, fmt.Errorf("%w: face index 0 is not valid in OBJ", ErrInvalidGeometry)
	}
}
