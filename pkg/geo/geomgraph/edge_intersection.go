// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geomgraph

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r2"
	"github.com/google/btree"
)

// EdgeIntersection is a point at which an edge intersects another edge. The
// point is addressed by the index of the segment it lies on and its fraction
// of the way along that segment. If the intersection is a collinear overlap,
// the point is the start of the overlap.
type EdgeIntersection struct {
	coord        r2.Point
	segmentIndex int
	fraction     float64
}

// MakeEdgeIntersection returns the EdgeIntersection at coord, which lies
// fraction of the way along segment segmentIndex. The fraction must be in
// [0, 1); in particular it may not be NaN, so that EdgeIntersections are
// totally ordered. The end of a segment is the start of the next one.
func MakeEdgeIntersection(
	coord r2.Point, segmentIndex int, fraction float64,
) (EdgeIntersection, error) {
	if err := checkCoordinate(coord); err != nil {
		return EdgeIntersection{}, err
	}
	if segmentIndex < 0 {
		return EdgeIntersection{}, errors.Mark(
			errors.Newf("negative segment index %d", segmentIndex), ErrInvalidIntersection,
		)
	}
	if math.IsNaN(fraction) || fraction < 0 || fraction >= 1 {
		return EdgeIntersection{}, errors.Mark(
			errors.Newf("fraction %f is not in [0, 1)", fraction), ErrInvalidIntersection,
		)
	}
	return EdgeIntersection{coord: coord, segmentIndex: segmentIndex, fraction: fraction}, nil
}

// Coordinate returns the intersection point.
func (ei EdgeIntersection) Coordinate() r2.Point {
	return ei.coord
}

// SegmentIndex returns the index of the segment containing the intersection.
func (ei EdgeIntersection) SegmentIndex() int {
	return ei.segmentIndex
}

// Fraction returns how far along its segment the intersection lies.
func (ei EdgeIntersection) Fraction() float64 {
	return ei.fraction
}

// Compare orders intersections by segment index, then by fraction. The
// coordinate does not take part in the comparison.
func (ei EdgeIntersection) Compare(other EdgeIntersection) int {
	switch {
	case ei.segmentIndex < other.segmentIndex:
		return -1
	case ei.segmentIndex > other.segmentIndex:
		return 1
	case ei.fraction < other.fraction:
		return -1
	case ei.fraction > other.fraction:
		return 1
	}
	return 0
}

// Less returns whether ei is ordered before other.
func (ei EdgeIntersection) Less(other EdgeIntersection) bool {
	return ei.Compare(other) < 0
}

// EdgeIntersectionList is the ordered set of intersections of an edge.
// Intersections with the same segment index and fraction are stored once.
type EdgeIntersectionList struct {
	tree *btree.BTreeG[EdgeIntersection]
}

func makeEdgeIntersectionList() EdgeIntersectionList {
	return EdgeIntersectionList{tree: btree.NewG(8, EdgeIntersection.Less)}
}

// add inserts ei unless an equal intersection is already present. It returns
// the stored intersection and whether ei was inserted.
func (l EdgeIntersectionList) add(ei EdgeIntersection) (EdgeIntersection, bool) {
	if existing, ok := l.tree.Get(ei); ok {
		return existing, false
	}
	l.tree.ReplaceOrInsert(ei)
	return ei, true
}

// Len returns the number of intersections.
func (l EdgeIntersectionList) Len() int {
	return l.tree.Len()
}

// Ascend calls fn on every intersection in order until fn returns false.
func (l EdgeIntersectionList) Ascend(fn func(EdgeIntersection) bool) {
	l.tree.Ascend(btree.ItemIteratorG[EdgeIntersection](fn))
}

// All returns the intersections in order.
func (l EdgeIntersectionList) All() []EdgeIntersection {
	all := make([]EdgeIntersection, 0, l.tree.Len())
	l.Ascend(func(ei EdgeIntersection) bool {
		all = append(all, ei)
		return true
	})
	return all
}

// IsIntersection returns whether p is the coordinate of one of the
// intersections.
func (l EdgeIntersectionList) IsIntersection(p r2.Point) bool {
	found := false
	l.Ascend(func(ei EdgeIntersection) bool {
		found = ei.coord == p
		return !found
	})
	return found
}
