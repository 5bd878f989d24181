// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geomgraph

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geotopo/pkg/geo/de9im"
	"github.com/cockroachdb/redact"
	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"
)

// EdgeID identifies an edge in the edge arena of a Graph.
type EdgeID int

// NoEdge is the EdgeID of an edge which has not been added to a Graph.
const NoEdge EdgeID = -1

// Edge is a polyline of the topology graph. Its label describes the location
// of the edge relative to both geometries, and its intersection list records
// every point at which other edges cross or touch it.
type Edge struct {
	id            EdgeID
	coords        []r2.Point
	label         Label
	intersections EdgeIntersectionList
	isolated      bool
}

// NewEdge returns an edge through coords. At least two coordinates are
// required, all of them must be finite, and consecutive coordinates must
// differ.
func NewEdge(coords []r2.Point, label Label) (*Edge, error) {
	if len(coords) < 2 {
		return nil, errors.Mark(
			errors.Newf("edge must have at least 2 coordinates, got %d", len(coords)),
			ErrInvalidCoordinate,
		)
	}
	for i, c := range coords {
		if err := checkCoordinate(c); err != nil {
			return nil, err
		}
		if i > 0 && c == coords[i-1] {
			return nil, errors.Mark(
				errors.Newf("repeated coordinate (%f %f) at index %d", c.X, c.Y, i),
				ErrInvalidCoordinate,
			)
		}
	}
	return newEdge(append([]r2.Point(nil), coords...), label), nil
}

func newEdge(coords []r2.Point, label Label) *Edge {
	return &Edge{
		id:            NoEdge,
		coords:        coords,
		label:         label,
		intersections: makeEdgeIntersectionList(),
	}
}

// NewEdgeFromLineString returns an edge through the coordinates of ls. Only
// the X and Y ordinates are used.
func NewEdgeFromLineString(ls *geom.LineString, label Label) (*Edge, error) {
	coords, err := coordsFromFlat(ls.NumCoords(), ls.Coord)
	if err != nil {
		return nil, errors.Wrap(err, "error converting LineString to edge")
	}
	return NewEdge(coords, label)
}

// NewEdgeFromLinearRing returns a closed edge through the coordinates of
// ring.
func NewEdgeFromLinearRing(ring *geom.LinearRing, label Label) (*Edge, error) {
	coords, err := coordsFromFlat(ring.NumCoords(), ring.Coord)
	if err != nil {
		return nil, errors.Wrap(err, "error converting LinearRing to edge")
	}
	if len(coords) > 0 && coords[0] != coords[len(coords)-1] {
		return nil, errors.Mark(errors.New("LinearRing is not closed"), ErrInvalidCoordinate)
	}
	return NewEdge(coords, label)
}

func coordsFromFlat(n int, coord func(int) geom.Coord) ([]r2.Point, error) {
	coords := make([]r2.Point, n)
	for i := range coords {
		c := coord(i)
		if len(c) < 2 {
			return nil, errors.AssertionFailedf("coordinate %d has %d ordinates", i, len(c))
		}
		coords[i] = r2.Point{X: c.X(), Y: c.Y()}
	}
	return coords, nil
}

// ID returns the arena index of the edge, or NoEdge.
func (e *Edge) ID() EdgeID {
	return e.id
}

// Coords returns the coordinates of the edge. The returned slice must not be
// modified.
func (e *Edge) Coords() []r2.Point {
	return e.coords
}

// Coord returns the i-th coordinate.
func (e *Edge) Coord(i int) r2.Point {
	return e.coords[i]
}

// NumPoints returns the number of coordinates.
func (e *Edge) NumPoints() int {
	return len(e.coords)
}

// IsClosed returns whether the edge starts and ends at the same coordinate.
func (e *Edge) IsClosed() bool {
	return e.coords[0] == e.coords[len(e.coords)-1]
}

// Bound returns the bounding rectangle of the edge.
func (e *Edge) Bound() r2.Rect {
	return r2.RectFromPoints(e.coords...)
}

// Label returns a copy of the label of the edge.
func (e *Edge) Label() Label {
	return e.label
}

// SetLabel replaces the label of the edge.
func (e *Edge) SetLabel(l Label) {
	e.label = l
}

// IsIsolated returns whether the edge touches no edge of the other geometry.
// The labels of isolated edges contribute to the intersection matrix
// directly, since no node bundles carry them.
func (e *Edge) IsIsolated() bool {
	return e.isolated
}

// SetIsolated marks the edge as isolated (or not).
func (e *Edge) SetIsolated(isolated bool) {
	e.isolated = isolated
}

// Intersections returns the intersection list of the edge.
func (e *Edge) Intersections() EdgeIntersectionList {
	return e.intersections
}

// AddIntersection records that the edge is intersected at coord, which lies
// fraction of the way along segment segmentIndex, with fraction in [0, 1].
// Every point is stored under a single address: a point on the start vertex
// of its segment is stored with fraction 0, and a point on the end vertex
// (including fraction 1) is stored as the start of the next segment, at that
// vertex.
//
// The end point of the edge is addressed as (NumPoints()-1, 0).
func (e *Edge) AddIntersection(
	coord r2.Point, segmentIndex int, fraction float64,
) (EdgeIntersection, error) {
	if err := checkCoordinate(coord); err != nil {
		return EdgeIntersection{}, err
	}
	maxSegmentIndex := len(e.coords) - 1
	if segmentIndex > maxSegmentIndex || (segmentIndex == maxSegmentIndex && fraction != 0) {
		return EdgeIntersection{}, errors.Mark(
			errors.Newf("segment %d at %f is past the end of an edge with %d points",
				segmentIndex, fraction, len(e.coords)),
			ErrInvalidIntersection,
		)
	}
	if segmentIndex >= 0 && fraction >= 0 && fraction <= 1 {
		switch {
		case fraction == 1 || (segmentIndex < maxSegmentIndex && coord == e.coords[segmentIndex+1]):
			segmentIndex++
			coord, fraction = e.coords[segmentIndex], 0
		case coord == e.coords[segmentIndex]:
			fraction = 0
		}
	}
	ei, err := MakeEdgeIntersection(coord, segmentIndex, fraction)
	if err != nil {
		return EdgeIntersection{}, err
	}
	ei, _ = e.intersections.add(ei)
	return ei, nil
}

// AddEdgeIntersectionListEndpoints adds the start and end points of the edge
// to its intersection list, so that every edge is bounded by at least two
// intersections. It is idempotent.
func (e *Edge) AddEdgeIntersectionListEndpoints() {
	last := len(e.coords) - 1
	e.intersections.add(EdgeIntersection{coord: e.coords[0], segmentIndex: 0, fraction: 0})
	e.intersections.add(EdgeIntersection{coord: e.coords[last], segmentIndex: last, fraction: 0})
}

// SplitEdges splits the edge at each of its intersections. An edge with k
// intersections strictly inside it yields k+1 edges, each carrying a copy of
// the label of e.
func (e *Edge) SplitEdges() []*Edge {
	e.AddEdgeIntersectionListEndpoints()
	all := e.intersections.All()
	split := make([]*Edge, 0, len(all)-1)
	for i := 1; i < len(all); i++ {
		split = append(split, e.splitEdge(all[i-1], all[i]))
	}
	return split
}

func (e *Edge) splitEdge(ei0, ei1 EdgeIntersection) *Edge {
	// The last point is the intersection itself unless it coincides with the
	// vertex starting its segment.
	lastSegStart := e.coords[ei1.segmentIndex]
	useIntPt1 := ei1.fraction > 0 || ei1.coord != lastSegStart

	coords := make([]r2.Point, 0, ei1.segmentIndex-ei0.segmentIndex+2)
	coords = append(coords, ei0.coord)
	coords = append(coords, e.coords[ei0.segmentIndex+1:ei1.segmentIndex+1]...)
	if useIntPt1 {
		coords = append(coords, ei1.coord)
	}
	return newEdge(coords, e.label)
}

// UpdateIntersectionMatrix folds the label of the edge into im.
func (e *Edge) UpdateIntersectionMatrix(im *de9im.IntersectionMatrix) {
	UpdateIntersectionMatrix(e.label, im)
}

// UpdateIntersectionMatrix folds the label of an edge (or of a bundle of edge
// ends) into im: the edge itself is one-dimensional, and the areas on either
// side of an area edge are two-dimensional.
func UpdateIntersectionMatrix(label Label, im *de9im.IntersectionMatrix) {
	im.SetAtLeastIfValid(label.Location(0, On), label.Location(1, On), de9im.One)
	if label.IsArea() {
		im.SetAtLeastIfValid(label.Location(0, Left), label.Location(1, Left), de9im.Two)
		im.SetAtLeastIfValid(label.Location(0, Right), label.Location(1, Right), de9im.Two)
	}
}

// SafeFormat implements redact.SafeFormatter.
func (e *Edge) SafeFormat(s redact.SafePrinter, _ rune) {
	s.Printf("edge %d [", redact.SafeInt(e.id))
	for i, c := range e.coords {
		if i > 0 {
			s.SafeString(", ")
		}
		s.Printf("%v %v", redact.SafeFloat(c.X), redact.SafeFloat(c.Y))
	}
	s.Printf("] %s", e.label)
}

func (e *Edge) String() string {
	return redact.StringWithoutMarkers(e)
}
