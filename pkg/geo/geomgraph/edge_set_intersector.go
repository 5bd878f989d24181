// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geomgraph

// SegmentIntersector computes the intersection of two segments and records
// it on both edges (see Edge.AddIntersection). It also clears the isolated
// flag of edges found to touch an edge of the other geometry.
type SegmentIntersector interface {
	AddIntersections(e0 *Edge, segmentIndex0 int, e1 *Edge, segmentIndex1 int)
}

// EdgeSetIntersector is a strategy for finding the pairs of segments which
// may intersect, e.g. by brute force or by sweeping monotone chains. Each
// candidate pair is passed to a SegmentIntersector.
type EdgeSetIntersector interface {
	// ComputeIntersections finds the intersections among edges. If
	// testAllSegments is false, segments of an edge are not tested against
	// other segments of the same edge.
	ComputeIntersections(edges []*Edge, si SegmentIntersector, testAllSegments bool)
	// ComputeIntersectionsBetween finds the intersections between edges of
	// edges0 and edges of edges1.
	ComputeIntersectionsBetween(edges0, edges1 []*Edge, si SegmentIntersector)
}
