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
	"github.com/google/btree"
)

// EdgeEndBundle is the set of coincident edge ends leaving a node in the same
// direction. Once all edge ends are inserted, ComputeLabel merges their labels
// into the label of the bundle.
type EdgeEndBundle struct {
	coord    r2.Point
	ends     []EdgeEnd
	label    Label
	labelled bool
}

// NewEdgeEndBundle returns an empty bundle at coord.
func NewEdgeEndBundle(coord r2.Point) *EdgeEndBundle {
	return &EdgeEndBundle{coord: coord}
}

// Coordinate returns the coordinate of the node the bundle leaves.
func (b *EdgeEndBundle) Coordinate() r2.Point {
	return b.coord
}

// EdgeEnds returns the edge ends in insertion order.
func (b *EdgeEndBundle) EdgeEnds() []EdgeEnd {
	return b.ends
}

// Insert adds e to the bundle. Duplicates are kept: every edge end counts
// when the label is computed.
func (b *EdgeEndBundle) Insert(e EdgeEnd) {
	b.ends = append(b.ends, e)
}

// Label returns the label computed by ComputeLabel. It must not be called
// before ComputeLabel.
func (b *EdgeEndBundle) Label() Label {
	if !b.labelled {
		panic(errors.AssertionFailedf("label of edge end bundle at %v requested before it was computed", b.coord))
	}
	return b.label
}

// IsLabelled returns whether ComputeLabel has run.
func (b *EdgeEndBundle) IsLabelled() bool {
	return b.labelled
}

// ComputeLabel merges the labels of the edge ends of the bundle. The bundle
// label is area-like if any edge end label is.
//
// For each geometry, the On location is Interior if any edge end is in the
// interior, unless some edge ends are on the boundary, in which case rule
// decides between Boundary and Interior from their count. For area-like
// bundles, each side takes the location reported for that side by the last
// area-like edge end which reports Interior or Exterior.
func (b *EdgeEndBundle) ComputeLabel(rule BoundaryNodeRule) {
	isArea := false
	for _, e := range b.ends {
		if e.label.IsArea() {
			isArea = true
			break
		}
	}
	if isArea {
		b.label = NewAreaLabel(de9im.Unknown, de9im.Unknown, de9im.Unknown)
	} else {
		b.label = NewLineLabel(de9im.Unknown)
	}
	for geomIndex := 0; geomIndex < numGeometries; geomIndex++ {
		b.computeLabelOn(geomIndex, rule)
		if isArea {
			b.computeLabelSide(geomIndex, Left)
			b.computeLabelSide(geomIndex, Right)
		}
	}
	b.labelled = true
}

func (b *EdgeEndBundle) computeLabelOn(geomIndex int, rule BoundaryNodeRule) {
	boundaryCount := 0
	foundInterior := false
	for _, e := range b.ends {
		if loc, ok := e.label.OnLocation(geomIndex).Get(); ok {
			switch loc {
			case de9im.Boundary:
				boundaryCount++
			case de9im.Interior:
				foundInterior = true
			}
		}
	}

	loc := de9im.Unknown
	if foundInterior {
		loc = de9im.Known(de9im.Interior)
	}
	// Boundary edge ends take precedence over interior ones.
	if boundaryCount > 0 {
		loc = de9im.Known(DetermineBoundary(rule, boundaryCount))
	}
	b.label.SetOnLocation(geomIndex, loc)
}

func (b *EdgeEndBundle) computeLabelSide(geomIndex int, side Position) {
	loc := de9im.Unknown
	for _, e := range b.ends {
		if !e.label.IsArea() {
			continue
		}
		if l := e.label.Location(geomIndex, side); l.Is(de9im.Interior) || l.Is(de9im.Exterior) {
			loc = l
		}
	}
	if l, ok := loc.Get(); ok {
		b.label.SetLocation(geomIndex, side, l)
	}
}

// UpdateIntersectionMatrix folds the label of the bundle into im. It must not
// be called before ComputeLabel.
func (b *EdgeEndBundle) UpdateIntersectionMatrix(im *de9im.IntersectionMatrix) {
	UpdateIntersectionMatrix(b.Label(), im)
}

// SafeFormat implements redact.SafeFormatter.
func (b *EdgeEndBundle) SafeFormat(s redact.SafePrinter, _ rune) {
	s.Printf("bundle at (%v %v) with %d edge ends",
		redact.SafeFloat(b.coord.X), redact.SafeFloat(b.coord.Y), redact.SafeInt(len(b.ends)))
	if b.labelled {
		s.Printf(": %s", b.label)
	}
}

func (b *EdgeEndBundle) String() string {
	return redact.StringWithoutMarkers(b)
}

// EdgeEndBundleStar is the set of bundles leaving one node, ordered
// counter-clockwise by direction.
type EdgeEndBundleStar struct {
	coord   r2.Point
	bundles *btree.BTreeG[*EdgeEndBundle]
}

func newEdgeEndBundleStar(coord r2.Point) *EdgeEndBundleStar {
	return &EdgeEndBundleStar{
		coord: coord,
		bundles: btree.NewG(4, func(a, b *EdgeEndBundle) bool {
			return a.ends[0].CompareDirection(b.ends[0]) < 0
		}),
	}
}

// Insert adds e to the bundle of edge ends coincident with it, creating the
// bundle if needed.
func (s *EdgeEndBundleStar) Insert(e EdgeEnd) {
	probe := &EdgeEndBundle{ends: []EdgeEnd{e}}
	if b, ok := s.bundles.Get(probe); ok {
		b.Insert(e)
		return
	}
	b := NewEdgeEndBundle(s.coord)
	b.Insert(e)
	s.bundles.ReplaceOrInsert(b)
}

// Len returns the number of bundles.
func (s *EdgeEndBundleStar) Len() int {
	return s.bundles.Len()
}

// Bundles returns the bundles in counter-clockwise order.
func (s *EdgeEndBundleStar) Bundles() []*EdgeEndBundle {
	bundles := make([]*EdgeEndBundle, 0, s.bundles.Len())
	s.bundles.Ascend(func(b *EdgeEndBundle) bool {
		bundles = append(bundles, b)
		return true
	})
	return bundles
}

// ComputeLabels computes the label of every bundle.
func (s *EdgeEndBundleStar) ComputeLabels(rule BoundaryNodeRule) {
	s.bundles.Ascend(func(b *EdgeEndBundle) bool {
		b.ComputeLabel(rule)
		return true
	})
}

// UpdateIntersectionMatrix folds the label of every bundle into im.
func (s *EdgeEndBundleStar) UpdateIntersectionMatrix(im *de9im.IntersectionMatrix) {
	s.bundles.Ascend(func(b *EdgeEndBundle) bool {
		b.UpdateIntersectionMatrix(im)
		return true
	})
}
