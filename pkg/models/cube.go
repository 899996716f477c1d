package models

import "github.com/taigrr/spincube/pkg/math3d"

// Cube returns the reference cube: 8 vertices at (±1, ±1, ±1) and the four
// side faces. Top and bottom are left out; the sides already cover all 12
// edges of the wireframe.
func Cube() *Model {
	vertices := []math3d.Vec3{
		{X: -1, Y: +1, Z: +1}, // 0
		{X: +1, Y: +1, Z: +1}, // 1
		{X: +1, Y: -1, Z: +1}, // 2
		{X: -1, Y: -1, Z: +1}, // 3

		{X: -1, Y: +1, Z: -1}, // 4
		{X: +1, Y: +1, Z: -1}, // 5
		{X: +1, Y: -1, Z: -1}, // 6
		{X: -1, Y: -1, Z: -1}, // 7
	}
	faces := [][]int{
		{0, 1, 2, 3}, // front
		{4, 5, 6, 7}, // back
		{0, 4, 7, 3}, // left
		{1, 5, 6, 2}, // right
	}

	m, err := NewModel(vertices, faces)
	if err != nil {
		// The literal above is always valid.
		panic(err)
	}
	m.Name = "cube"
	return m
}
