// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package geomgraph contains the planar topology graph used to relate two
// geometries. Edges and nodes of the graph carry a Label describing their
// topological location with respect to each of the (at most two) input
// geometries. Edges are split at their intersections into EdgeEnds, and the
// EdgeEnds leaving a node in the same direction are grouped into an
// EdgeEndBundle whose merged Label feeds the DE-9IM matrix.
//
// Graph assembly (creating edges and nodes from geometries) and noding
// (computing segment intersections) happen outside of this package; it only
// consumes their results.
package geomgraph

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r2"
)

var (
	// ErrInvalidCoordinate marks errors for coordinates which are NaN or
	// infinite.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrInvalidIntersection marks errors for intersections which cannot be
	// placed on an edge.
	ErrInvalidIntersection = errors.New("invalid edge intersection")
)

func checkCoordinate(p r2.Point) error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return errors.Mark(errors.Newf("coordinate (%f %f) is not finite", p.X, p.Y), ErrInvalidCoordinate)
	}
	return nil
}

// compareCoordinates orders coordinates by X, then by Y.
func compareCoordinates(a, b r2.Point) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}
