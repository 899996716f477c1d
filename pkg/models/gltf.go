package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/spincube/pkg/math3d"
)

// LoadGLB loads every triangle primitive of a glTF or GLB file into a single
// Model, one face per triangle.
func LoadGLB(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	var (
		vertices []math3d.Vec3
		faces    [][]int
	)
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			vertices, faces, err = appendPrimitive(doc, prim, vertices, faces)
			if err != nil {
				return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
			}
		}
	}

	model, err := NewModel(vertices, faces)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	model.Name = filepath.Base(path)
	return model, nil
}

// appendPrimitive extracts positions and triangle indices from prim.
func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, vertices []math3d.Vec3, faces [][]int) ([]math3d.Vec3, [][]int, error) {
	if prim.Mode != gltf.PrimitiveTriangles {
		// Lines, points, strips and fans carry no polygon faces.
		return vertices, faces, nil
	}

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return vertices, faces, nil
	}

	posAcc, err := accessor(doc, posIdx)
	if err != nil {
		return nil, nil, fmt.Errorf("read positions: %w", err)
	}
	positions, err := modeler.ReadPosition(doc, posAcc, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("read positions: %w", err)
	}

	base := len(vertices)
	for _, p := range positions {
		vertices = append(vertices, math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])))
	}

	if prim.Indices == nil {
		// No indices, triangles are sequential.
		for i := 0; i+2 < len(positions); i += 3 {
			faces = append(faces, []int{base + i, base + i + 1, base + i + 2})
		}
		return vertices, faces, nil
	}

	idxAcc, err := accessor(doc, *prim.Indices)
	if err != nil {
		return nil, nil, fmt.Errorf("read indices: %w", err)
	}
	indices, err := modeler.ReadIndices(doc, idxAcc, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("read indices: %w", err)
	}
	for i := 0; i+2 < len(indices); i += 3 {
		faces = append(faces, []int{
			base + int(indices[i]),
			base + int(indices[i+1]),
			base + int(indices[i+2]),
		})
	}
	return vertices, faces, nil
}

// accessor returns doc.Accessors[idx], rejecting references past the end.
func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("%w: accessor %d out of range", ErrInvalidGeometry, idx)
	}
	return doc.Accessors[idx], nil
}
