// Package models provides polyhedral wireframe models for spincube.
package models

import (
	"errors"
	"fmt"
	"iter"

	"github.com/taigrr/spincube/pkg/math3d"
)

var (
	// ErrInvalidGeometry reports a face with fewer than 3 indices or an index
	// outside the vertex range.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrEmptyGeometry reports a computation that needs at least one vertex.
	ErrEmptyGeometry = errors.New("empty geometry")
)

// Model holds vertices and polygon faces. A face is a boundary walk of
// vertex indices; its first and last vertices are implicitly connected.
//
// Vertices are fixed at construction. The wireframe edge set is rebuilt
// whenever faces are assigned and is read-only afterwards.
type Model struct {
	Name string

	vertices []math3d.Vec3
	faces    [][]int
	edges    []Edge
}

// NewModel validates the faces against the vertices and builds the edge set.
// The inputs are copied.
func NewModel(vertices []math3d.Vec3, faces [][]int) (*Model, error) {
	m := &Model{
		vertices: append([]math3d.Vec3(nil), vertices...),
	}
	if err := m.SetFaces(faces); err != nil {
		return nil, err
	}
	return m, nil
}

// SetFaces replaces the faces and rebuilds the edge set. On error the model
// is left unchanged.
func (m *Model) SetFaces(faces [][]int) error {
	if err := validateFaces(faces, len(m.vertices)); err != nil {
		return err
	}

	owned := make([][]int, len(faces))
	for i, f := range faces {
		owned[i] = append([]int(nil), f...)
	}
	m.faces = owned
	m.edges = dedupEdges(m.AllEdges(), len(owned)*4)
	return nil
}

func validateFaces(faces [][]int, vertexCount int) error {
	for i, f := range faces {
		if len(f) < 3 {
			return fmt.Errorf("%w: face %d has %d vertices, need at least 3", ErrInvalidGeometry, i, len(f))
		}
		for _, idx := range f {
			if idx < 0 || idx >= vertexCount {
				return fmt.Errorf("%w: face %d references vertex %d, have %d vertices", ErrInvalidGeometry, i, idx, vertexCount)
			}
		}
	}
	return nil
}

// AllEdges yields every edge walked from the faces before deduplication.
// For a face [i0 ... in-1] it yields (i0,i1) ... (in-2,in-1) followed by the
// closing edge (i0,in-1).
func (m *Model) AllEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, f := range m.faces {
			for i := 0; i < len(f)-1; i++ {
				if !yield(Edge{f[i], f[i+1]}) {
					return
				}
			}
			if !yield(Edge{f[0], f[len(f)-1]}) {
				return
			}
		}
	}
}

// dedupEdges keeps the first occurrence of every undirected edge.
func dedupEdges(all iter.Seq[Edge], hint int) []Edge {
	seen := make(map[[2]int]struct{}, hint)
	edges := make([]Edge, 0, hint)
	for e := range all {
		k := e.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		edges = append(edges, e)
	}
	return edges
}

// Edges returns the deduplicated wireframe edges in first-seen order.
// The slice must not be modified.
func (m *Model) Edges() []Edge {
	return m.edges
}

// Vertices returns the vertex positions. The slice must not be modified.
func (m *Model) Vertices() []math3d.Vec3 {
	return m.vertices
}

// Faces returns the face index lists. The slices must not be modified.
func (m *Model) Faces() [][]int {
	return m.faces
}

// VertexCount returns the number of vertices.
func (m *Model) VertexCount() int {
	return len(m.vertices)
}

// FaceCount returns the number of faces.
func (m *Model) FaceCount() int {
	return len(m.faces)
}

// EdgeCount returns the number of distinct wireframe edges.
func (m *Model) EdgeCount() int {
	return len(m.edges)
}

// Centroid returns the mean of the model's vertices.
func (m *Model) Centroid() (math3d.Vec3, error) {
	return Centroid(m.vertices)
}

// Centroid returns the per-axis arithmetic mean of the given points.
func Centroid(vertices []math3d.Vec3) (math3d.Vec3, error) {
	if len(vertices) == 0 {
		return math3d.Vec3{}, fmt.Errorf("centroid: %w", ErrEmptyGeometry)
	}

	var sum math3d.Vec3
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	return sum.Div(float64(len(vertices))), nil
}
