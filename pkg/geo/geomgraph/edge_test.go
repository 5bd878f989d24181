// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geomgraph

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geotopo/pkg/geo/de9im"
	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func pt(x, y float64) r2.Point {
	return r2.Point{X: x, Y: y}
}

func TestMakeEdgeIntersection(t *testing.T) {
	testCases := []struct {
		desc     string
		coord    r2.Point
		seg      int
		fraction float64
		errMark  error
	}{
		{desc: "start", coord: pt(0, 0)},
		{desc: "inside segment", coord: pt(1, 1), seg: 3, fraction: 0.999},
		{desc: "end of segment", coord: pt(1, 1), seg: 3, fraction: 1, errMark: ErrInvalidIntersection},
		{desc: "negative segment", coord: pt(0, 0), seg: -1, errMark: ErrInvalidIntersection},
		{desc: "negative fraction", coord: pt(0, 0), fraction: -0.1, errMark: ErrInvalidIntersection},
		{desc: "fraction past one", coord: pt(0, 0), fraction: 1.5, errMark: ErrInvalidIntersection},
		{desc: "NaN fraction", coord: pt(0, 0), fraction: math.NaN(), errMark: ErrInvalidIntersection},
		{desc: "NaN coordinate", coord: pt(math.NaN(), 0), errMark: ErrInvalidCoordinate},
		{desc: "infinite coordinate", coord: pt(0, math.Inf(-1)), errMark: ErrInvalidCoordinate},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ei, err := MakeEdgeIntersection(tc.coord, tc.seg, tc.fraction)
			if tc.errMark != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.errMark), "unexpected error %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.coord, ei.Coordinate())
			require.Equal(t, tc.seg, ei.SegmentIndex())
			require.Equal(t, tc.fraction, ei.Fraction())
		})
	}
}

func TestEdgeIntersectionListOrdering(t *testing.T) {
	l := makeEdgeIntersectionList()
	mustAdd := func(coord r2.Point, seg int, fraction float64) bool {
		ei, err := MakeEdgeIntersection(coord, seg, fraction)
		require.NoError(t, err)
		_, added := l.add(ei)
		return added
	}
	require.True(t, mustAdd(pt(3, 0), 1, 0.5))
	require.True(t, mustAdd(pt(1, 0), 0, 0.5))
	require.True(t, mustAdd(pt(2, 0), 1, 0))
	require.True(t, mustAdd(pt(2.5, 0), 1, 0.25))
	// Duplicates are collapsed, keeping the first coordinate recorded.
	require.False(t, mustAdd(pt(1, 0), 0, 0.5))
	require.False(t, mustAdd(pt(9, 9), 1, 0))

	require.Equal(t, 4, l.Len())
	var got []r2.Point
	for _, ei := range l.All() {
		got = append(got, ei.Coordinate())
	}
	require.Equal(t, []r2.Point{pt(1, 0), pt(2, 0), pt(2.5, 0), pt(3, 0)}, got)

	require.True(t, l.IsIntersection(pt(2.5, 0)))
	require.False(t, l.IsIntersection(pt(9, 9)))

	// Ascend stops when asked to.
	count := 0
	l.Ascend(func(EdgeIntersection) bool {
		count++
		return count < 2
	})
	require.Equal(t, 2, count)
}

func TestNewEdge(t *testing.T) {
	label := NewLineLabel(interior)
	testCases := []struct {
		desc   string
		coords []r2.Point
		errMsg string
	}{
		{desc: "segment", coords: []r2.Point{pt(0, 0), pt(1, 1)}},
		{desc: "empty", errMsg: "edge must have at least 2 coordinates, got 0"},
		{desc: "single point", coords: []r2.Point{pt(0, 0)}, errMsg: "edge must have at least 2 coordinates, got 1"},
		{
			desc:   "repeated point",
			coords: []r2.Point{pt(0, 0), pt(1, 1), pt(1, 1)},
			errMsg: "repeated coordinate (1.000000 1.000000) at index 2",
		},
		{
			desc:   "NaN",
			coords: []r2.Point{pt(0, 0), pt(math.NaN(), 1)},
			errMsg: "is not finite",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			e, err := NewEdge(tc.coords, label)
			if tc.errMsg != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.errMsg)
				require.True(t, errors.Is(err, ErrInvalidCoordinate))
				return
			}
			require.NoError(t, err)
			require.Equal(t, NoEdge, e.ID())
			require.Equal(t, tc.coords, e.Coords())
			require.Equal(t, 0, e.Intersections().Len())
			require.False(t, e.IsIsolated())
		})
	}
}

func TestNewEdgeCopiesCoordinates(t *testing.T) {
	coords := []r2.Point{pt(0, 0), pt(1, 0)}
	e, err := NewEdge(coords, NewLineLabel(interior))
	require.NoError(t, err)
	coords[0] = pt(5, 5)
	require.Equal(t, pt(0, 0), e.Coord(0))
}

func TestNewEdgeFromGeom(t *testing.T) {
	ls := geom.NewLineStringFlat(geom.XYZ, []float64{0, 0, 7, 1, 0, 7, 1, 1, 7})
	e, err := NewEdgeFromLineString(ls, NewLineLabelForGeometry(0, interior))
	require.NoError(t, err)
	require.Equal(t, []r2.Point{pt(0, 0), pt(1, 0), pt(1, 1)}, e.Coords())
	require.False(t, e.IsClosed())
	require.Equal(t, r2.RectFromPoints(pt(0, 0), pt(1, 1)), e.Bound())

	ring := geom.NewLinearRingFlat(geom.XY, []float64{0, 0, 1, 0, 1, 1, 0, 0})
	e, err = NewEdgeFromLinearRing(ring, NewAreaLabelForGeometry(1, de9im.Boundary, de9im.Interior, de9im.Exterior))
	require.NoError(t, err)
	require.True(t, e.IsClosed())
	require.Equal(t, 4, e.NumPoints())

	open := geom.NewLinearRingFlat(geom.XY, []float64{0, 0, 1, 0, 1, 1})
	_, err = NewEdgeFromLinearRing(open, NewAreaLabelForGeometry(1, de9im.Boundary, de9im.Interior, de9im.Exterior))
	require.True(t, errors.Is(err, ErrInvalidCoordinate))

	_, err = NewEdgeFromLineString(geom.NewLineStringFlat(geom.XY, []float64{0, 0}), NewLineLabel(interior))
	require.True(t, errors.Is(err, ErrInvalidCoordinate))
}

func TestEdgeAddIntersection(t *testing.T) {
	e, err := NewEdge([]r2.Point{pt(0, 0), pt(2, 0), pt(2, 2)}, NewLineLabel(interior))
	require.NoError(t, err)

	ei, err := e.AddIntersection(pt(1, 0), 0, 0.5)
	require.NoError(t, err)
	require.Equal(t, 0, ei.SegmentIndex())

	// A point at the end of a segment is addressed as the start of the next.
	ei, err = e.AddIntersection(pt(2, 0), 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, ei.SegmentIndex())
	require.Equal(t, 0.0, ei.Fraction())

	_, err = e.AddIntersection(pt(2, 0), 1, 0)
	require.NoError(t, err)
	require.Equal(t, 2, e.Intersections().Len())

	_, err = e.AddIntersection(pt(2, 2), 2, 0)
	require.NoError(t, err)
	require.Equal(t, 3, e.Intersections().Len())

	_, err = e.AddIntersection(pt(2, 3), 2, 0.5)
	require.True(t, errors.Is(err, ErrInvalidIntersection))
	_, err = e.AddIntersection(pt(2, 3), 3, 0)
	require.True(t, errors.Is(err, ErrInvalidIntersection))
	_, err = e.AddIntersection(pt(1, 0), 0, math.NaN())
	require.True(t, errors.Is(err, ErrInvalidIntersection))
	require.Equal(t, 3, e.Intersections().Len())
}

func TestEdgeAddIntersectionAtVertex(t *testing.T) {
	testCases := []struct {
		desc     string
		coord    r2.Point
		seg      int
		fraction float64
		expected EdgeIntersection
	}{
		{
			desc:     "on the start vertex with a nonzero fraction",
			coord:    pt(1, 0),
			seg:      1,
			fraction: 1e-9,
			expected: EdgeIntersection{coord: pt(1, 0), segmentIndex: 1},
		},
		{
			desc:     "on the end vertex with a fraction below one",
			coord:    pt(1, 0),
			seg:      0,
			fraction: 0.9999999999,
			expected: EdgeIntersection{coord: pt(1, 0), segmentIndex: 1},
		},
		{
			desc:     "fraction one off the vertex",
			coord:    pt(0.9999999999, 0),
			seg:      0,
			fraction: 1,
			expected: EdgeIntersection{coord: pt(1, 0), segmentIndex: 1},
		},
		{
			desc:     "fraction one on the last segment",
			coord:    pt(1, 1),
			seg:      1,
			fraction: 1,
			expected: EdgeIntersection{coord: pt(1, 1), segmentIndex: 2},
		},
		{
			desc:     "interior point",
			coord:    pt(1, 0.5),
			seg:      1,
			fraction: 0.5,
			expected: EdgeIntersection{coord: pt(1, 0.5), segmentIndex: 1, fraction: 0.5},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			e, err := NewEdge([]r2.Point{pt(0, 0), pt(1, 0), pt(1, 1)}, NewLineLabel(interior))
			require.NoError(t, err)
			ei, err := e.AddIntersection(tc.coord, tc.seg, tc.fraction)
			require.NoError(t, err)
			require.Equal(t, tc.expected, ei)
			require.Equal(t, []EdgeIntersection{tc.expected}, e.Intersections().All())
		})
	}

	// Every address of the shared vertex collapses into one intersection.
	e, err := NewEdge([]r2.Point{pt(0, 0), pt(1, 0), pt(1, 1)}, NewLineLabel(interior))
	require.NoError(t, err)
	for _, tc := range testCases[:3] {
		_, err := e.AddIntersection(tc.coord, tc.seg, tc.fraction)
		require.NoError(t, err)
	}
	require.Equal(t, 1, e.Intersections().Len())

	_, err = e.AddIntersection(pt(1, 0), 0, 1.5)
	require.True(t, errors.Is(err, ErrInvalidIntersection))
	_, err = e.AddIntersection(pt(math.NaN(), 0), 0, 1)
	require.True(t, errors.Is(err, ErrInvalidCoordinate))
}

func TestEdgeAddEdgeIntersectionListEndpoints(t *testing.T) {
	e, err := NewEdge([]r2.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(2, 1)}, NewLineLabel(interior))
	require.NoError(t, err)
	_, err = e.AddIntersection(pt(1, 0.5), 1, 0.5)
	require.NoError(t, err)

	e.AddEdgeIntersectionListEndpoints()
	e.AddEdgeIntersectionListEndpoints()
	all := e.Intersections().All()
	require.Len(t, all, 3)
	require.Equal(t, pt(0, 0), all[0].Coordinate())
	require.Equal(t, 0, all[0].SegmentIndex())
	require.Equal(t, pt(1, 0.5), all[1].Coordinate())
	require.Equal(t, pt(2, 1), all[2].Coordinate())
	require.Equal(t, 3, all[2].SegmentIndex())
	require.Equal(t, 0.0, all[2].Fraction())
}

func TestEdgeSplitEdges(t *testing.T) {
	label := NewAreaLabelForGeometry(0, de9im.Boundary, de9im.Interior, de9im.Exterior)
	e, err := NewEdge([]r2.Point{pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2)}, label)
	require.NoError(t, err)
	_, err = e.AddIntersection(pt(1, 0), 0, 0.5)
	require.NoError(t, err)
	_, err = e.AddIntersection(pt(2, 2), 1, 1)
	require.NoError(t, err)

	split := e.SplitEdges()
	require.Len(t, split, 3)
	require.Equal(t, []r2.Point{pt(0, 0), pt(1, 0)}, split[0].Coords())
	require.Equal(t, []r2.Point{pt(1, 0), pt(2, 0), pt(2, 2)}, split[1].Coords())
	require.Equal(t, []r2.Point{pt(2, 2), pt(0, 2)}, split[2].Coords())
	for _, s := range split {
		require.Equal(t, label, s.Label())
		require.Equal(t, NoEdge, s.ID())
	}

	unsplit, err := NewEdge([]r2.Point{pt(0, 0), pt(2, 0), pt(2, 2)}, label)
	require.NoError(t, err)
	split = unsplit.SplitEdges()
	require.Len(t, split, 1)
	require.Equal(t, unsplit.Coords(), split[0].Coords())
}

func TestEdgeUpdateIntersectionMatrix(t *testing.T) {
	testCases := []struct {
		desc     string
		label    Label
		expected string
	}{
		{
			desc:     "line inside area",
			label:    MakeLabel(NewLineLocation(interior), NewAreaLocation(interior, interior, interior)),
			expected: "1FFFFFFFF",
		},
		{
			desc:     "area boundary outside the other",
			label:    MakeLabel(NewAreaLocation(boundary, interior, exterior), NewAreaLocation(exterior, exterior, exterior)),
			expected: "FF2FF1FF2",
		},
		{
			desc:     "unknown locations contribute nothing",
			label:    NewLineLabelForGeometry(0, interior),
			expected: "FFFFFFFFF",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			e, err := NewEdge([]r2.Point{pt(0, 0), pt(1, 0)}, tc.label)
			require.NoError(t, err)
			var im de9im.IntersectionMatrix
			e.UpdateIntersectionMatrix(&im)
			require.Equal(t, tc.expected, im.String())
		})
	}
}

func TestEdgeString(t *testing.T) {
	e, err := NewEdge([]r2.Point{pt(0, 0), pt(1.5, 2)}, NewLineLabelForGeometry(1, boundary))
	require.NoError(t, err)
	require.Equal(t, "edge -1 [0 0, 1.5 2] A:_ B:b", e.String())
}

func TestGraph(t *testing.T) {
	g := NewGraph()
	e0, err := NewEdge([]r2.Point{pt(0, 0), pt(1, 0)}, NewLineLabel(interior))
	require.NoError(t, err)
	e1, err := NewEdge([]r2.Point{pt(1, 0), pt(1, 1)}, NewLineLabel(interior))
	require.NoError(t, err)

	require.Equal(t, EdgeID(0), g.AddEdge(e0))
	require.Equal(t, EdgeID(1), g.AddEdge(e1))
	require.Same(t, e1, g.Edge(1))
	require.Equal(t, 2, g.NumEdges())
	require.Equal(t, []*Edge{e0, e1}, g.Edges())
	require.Panics(t, func() { g.AddEdge(e0) })

	n := g.AddNode(pt(1, 0))
	require.Same(t, n, g.AddNode(pt(1, 0)))
	require.Equal(t, 1, g.Nodes().Len())
}

type recordingSegmentIntersector struct {
	pairs [][4]int
}

func (r *recordingSegmentIntersector) AddIntersections(e0 *Edge, seg0 int, e1 *Edge, seg1 int) {
	r.pairs = append(r.pairs, [4]int{int(e0.ID()), seg0, int(e1.ID()), seg1})
}

type allPairsIntersector struct{}

func (allPairsIntersector) ComputeIntersections(edges []*Edge, si SegmentIntersector, testAllSegments bool) {
	for i, e0 := range edges {
		for _, e1 := range edges[i:] {
			if e0 == e1 && !testAllSegments {
				continue
			}
			for s0 := 0; s0 < e0.NumPoints()-1; s0++ {
				for s1 := 0; s1 < e1.NumPoints()-1; s1++ {
					si.AddIntersections(e0, s0, e1, s1)
				}
			}
		}
	}
}

func (allPairsIntersector) ComputeIntersectionsBetween(edges0, edges1 []*Edge, si SegmentIntersector) {
	for _, e0 := range edges0 {
		for _, e1 := range edges1 {
			for s0 := 0; s0 < e0.NumPoints()-1; s0++ {
				for s1 := 0; s1 < e1.NumPoints()-1; s1++ {
					si.AddIntersections(e0, s0, e1, s1)
				}
			}
		}
	}
}

func TestGraphComputeIntersections(t *testing.T) {
	g := NewGraph()
	for _, coords := range [][]r2.Point{
		{pt(0, 0), pt(1, 0), pt(1, 1)},
		{pt(0, 1), pt(1, 0)},
	} {
		e, err := NewEdge(coords, NewLineLabel(interior))
		require.NoError(t, err)
		g.AddEdge(e)
	}

	var si recordingSegmentIntersector
	g.ComputeIntersections(allPairsIntersector{}, &si, false /* testAllSegments */)
	require.Equal(t, [][4]int{{0, 0, 1, 0}, {0, 1, 1, 0}}, si.pairs)

	si = recordingSegmentIntersector{}
	g.ComputeIntersections(allPairsIntersector{}, &si, true /* testAllSegments */)
	require.Len(t, si.pairs, 4+2+1)
}

func TestGraphComputeIntersectionsWith(t *testing.T) {
	newGraph := func(lines ...[]r2.Point) *Graph {
		g := NewGraph()
		for _, coords := range lines {
			e, err := NewEdge(coords, NewLineLabel(interior))
			require.NoError(t, err)
			g.AddEdge(e)
		}
		return g
	}
	a := newGraph(
		[]r2.Point{pt(0, 0), pt(1, 0), pt(1, 1)},
		[]r2.Point{pt(5, 5), pt(6, 6)},
	)
	b := newGraph([]r2.Point{pt(0, 1), pt(1, 0)})

	var si recordingSegmentIntersector
	a.ComputeIntersectionsWith(b, allPairsIntersector{}, &si)
	// Pairs within a are never tested.
	require.Equal(t, [][4]int{{0, 0, 0, 0}, {0, 1, 0, 0}, {1, 0, 0, 0}}, si.pairs)

	si = recordingSegmentIntersector{}
	a.ComputeIntersectionsWith(NewGraph(), allPairsIntersector{}, &si)
	require.Empty(t, si.pairs)
}
