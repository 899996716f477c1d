package models

import "fmt"

// Edge is an unordered pair of vertex indices. A and B keep the order in
// which the edge was emitted; equality and Key ignore it.
type Edge struct {
	A, B int
}

// Key returns the canonical (min, max) form of the edge, suitable as a map
// key. Edge{a, b}.Key() == Edge{b, a}.Key() for all a, b.
func (e Edge) Key() [2]int {
	if e.A <= e.B {
		return [2]int{e.A, e.B}
	}
	return [2]int{e.B, e.A}
}

// Equal reports whether e and o connect the same two vertices.
func (e Edge) Equal(o Edge) bool {
	return e.Key() == o.Key()
}

// Reversed returns the edge with its endpoints swapped.
func (e Edge) Reversed() Edge {
	return Edge{e.B, e.A}
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.A, e.B)
}
