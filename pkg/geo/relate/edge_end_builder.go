// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package relate

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geotopo/pkg/geo/geomgraph"
	"github.com/golang/geo/r2"
)

// EdgeEndBuilder derives the edge ends of edges from their intersection
// lists. Every intersection point of an edge yields up to two edge ends: one
// pointing back along the edge and one pointing forward.
type EdgeEndBuilder struct{}

// ComputeEndsForEdges returns the edge ends of every edge, edge by edge and in
// intersection order within an edge. The endpoints of each edge are added to
// its intersection list first.
func (b EdgeEndBuilder) ComputeEndsForEdges(edges []*geomgraph.Edge) []geomgraph.EdgeEnd {
	var ends []geomgraph.EdgeEnd
	for _, e := range edges {
		ends = b.ComputeEndsForEdge(e, ends)
	}
	return ends
}

// ComputeEndsForEdge appends the edge ends of e to ends.
func (b EdgeEndBuilder) ComputeEndsForEdge(
	e *geomgraph.Edge, ends []geomgraph.EdgeEnd,
) []geomgraph.EdgeEnd {
	e.AddEdgeIntersectionListEndpoints()

	eis := e.Intersections().All()
	for i, eiCurr := range eis {
		var eiPrev, eiNext *geomgraph.EdgeIntersection
		if i > 0 {
			eiPrev = &eis[i-1]
		}
		if i+1 < len(eis) {
			eiNext = &eis[i+1]
		}
		ends = b.appendEdgeEndForPrev(e, ends, eiCurr, eiPrev)
		ends = b.appendEdgeEndForNext(e, ends, eiCurr, eiNext)
	}
	return ends
}

// appendEdgeEndForPrev appends the edge end leaving eiCurr towards the start
// of the edge. The edge end points opposite to the edge, so its label is
// flipped.
func (EdgeEndBuilder) appendEdgeEndForPrev(
	e *geomgraph.Edge,
	ends []geomgraph.EdgeEnd,
	eiCurr geomgraph.EdgeIntersection,
	eiPrev *geomgraph.EdgeIntersection,
) []geomgraph.EdgeEnd {
	iPrev := eiCurr.SegmentIndex()
	if eiCurr.Fraction() == 0 {
		// The start of the edge has nothing before it.
		if iPrev == 0 {
			return ends
		}
		iPrev--
	}

	coordPrev := e.Coord(iPrev)
	// A previous intersection past the previous vertex is closer.
	if eiPrev != nil && eiPrev.SegmentIndex() >= iPrev {
		coordPrev = eiPrev.Coordinate()
	}

	label := e.Label()
	label.Flip()
	return append(ends, geomgraph.NewEdgeEnd(e.ID(), eiCurr.Coordinate(), coordPrev, label))
}

// appendEdgeEndForNext appends the edge end leaving eiCurr towards the end of
// the edge.
func (EdgeEndBuilder) appendEdgeEndForNext(
	e *geomgraph.Edge,
	ends []geomgraph.EdgeEnd,
	eiCurr geomgraph.EdgeIntersection,
	eiNext *geomgraph.EdgeIntersection,
) []geomgraph.EdgeEnd {
	iNext := eiCurr.SegmentIndex() + 1
	if iNext >= e.NumPoints() && eiNext == nil {
		return ends
	}

	var coordNext r2.Point
	switch {
	case eiNext != nil && eiNext.SegmentIndex() == eiCurr.SegmentIndex():
		// The next intersection is closer than the next vertex if it lies on
		// the same segment.
		coordNext = eiNext.Coordinate()
	case iNext < e.NumPoints():
		coordNext = e.Coord(iNext)
	default:
		panic(errors.AssertionFailedf(
			"intersection (%f %f) at segment %d is past the end of edge %s",
			eiCurr.Coordinate().X, eiCurr.Coordinate().Y, eiCurr.SegmentIndex(), e))
	}

	return append(ends, geomgraph.NewEdgeEnd(e.ID(), eiCurr.Coordinate(), coordNext, e.Label()))
}
