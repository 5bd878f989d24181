// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geomgraph

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/golang/geo/r2"
)

// Quadrant is one of the four quadrants of the plane around an origin,
// numbered counter-clockwise starting from the positive X axis.
type Quadrant int8

const (
	// NE contains directions with dx >= 0 and dy >= 0.
	NE Quadrant = iota
	// NW contains directions with dx < 0 and dy >= 0.
	NW
	// SW contains directions with dx < 0 and dy < 0.
	SW
	// SE contains directions with dx >= 0 and dy < 0.
	SE
)

// QuadrantOf returns the quadrant of the direction (dx, dy), which may not be
// the zero vector.
func QuadrantOf(dx, dy float64) Quadrant {
	if dx == 0 && dy == 0 {
		panic(errors.AssertionFailedf("cannot compute the quadrant of the zero vector"))
	}
	if dx >= 0 {
		if dy >= 0 {
			return NE
		}
		return SE
	}
	if dy >= 0 {
		return NW
	}
	return SW
}

// EdgeEnd is a ray leaving a node of the graph along one of its edges. It
// starts at the node and points towards the next distinct point of the edge.
// The edge end refers to its edge by EdgeID; it does not own it.
type EdgeEnd struct {
	edge     EdgeID
	label    Label
	p0, p1   r2.Point
	dx, dy   float64
	quadrant Quadrant
}

// NewEdgeEnd returns the edge end of edge leaving p0 towards p1. The two
// points must differ.
func NewEdgeEnd(edge EdgeID, p0, p1 r2.Point, label Label) EdgeEnd {
	d := p1.Sub(p0)
	return EdgeEnd{
		edge:     edge,
		label:    label,
		p0:       p0,
		p1:       p1,
		dx:       d.X,
		dy:       d.Y,
		quadrant: QuadrantOf(d.X, d.Y),
	}
}

// Edge returns the id of the edge this edge end was derived from.
func (e EdgeEnd) Edge() EdgeID {
	return e.edge
}

// Label returns the label of the edge end.
func (e EdgeEnd) Label() Label {
	return e.label
}

// Coordinate returns the origin of the edge end, i.e. the node it leaves.
func (e EdgeEnd) Coordinate() r2.Point {
	return e.p0
}

// DirectedCoordinate returns the point the edge end points towards.
func (e EdgeEnd) DirectedCoordinate() r2.Point {
	return e.p1
}

// Quadrant returns the quadrant of the direction of the edge end.
func (e EdgeEnd) Quadrant() Quadrant {
	return e.quadrant
}

// CompareDirection orders edge ends leaving the same node counter-clockwise
// by angle, starting from the positive X axis. Edge ends pointing in the same
// direction compare equal; such edge ends are coincident.
func (e EdgeEnd) CompareDirection(other EdgeEnd) int {
	if e.dx == other.dx && e.dy == other.dy {
		return 0
	}
	if e.quadrant > other.quadrant {
		return 1
	}
	if e.quadrant < other.quadrant {
		return -1
	}
	// Both directions lie in the same quadrant, so the orientation of e.p1
	// relative to other decides.
	return orientationIndex(other.p0, other.p1, e.p1)
}

// orientationIndex returns 1 if q lies to the left of the directed line
// p1->p2, -1 if it lies to the right, and 0 if the three points are
// collinear.
func orientationIndex(p1, p2, q r2.Point) int {
	cross := p2.Sub(p1).Cross(q.Sub(p1))
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	}
	return 0
}

// SafeFormat implements redact.SafeFormatter.
func (e EdgeEnd) SafeFormat(s redact.SafePrinter, _ rune) {
	s.Printf("(%v %v) -> (%v %v) %s",
		redact.SafeFloat(e.p0.X), redact.SafeFloat(e.p0.Y),
		redact.SafeFloat(e.p1.X), redact.SafeFloat(e.p1.Y),
		e.label,
	)
}

func (e EdgeEnd) String() string {
	return redact.StringWithoutMarkers(e)
}
