// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geomgraph

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geotopo/pkg/geo/de9im"
	"github.com/cockroachdb/redact"
)

// numGeometries is the number of geometries a Label relates a component to.
const numGeometries = 2

// Label is the topological relationship of a graph component (node, edge or
// edge end) to each of the two geometries being related. Index 0 is the first
// geometry, index 1 the second.
//
// A Label is a value; copying it copies both of its TopologyLocations.
type Label struct {
	locs [numGeometries]TopologyLocation
}

// MakeLabel returns a Label with the given TopologyLocation for each geometry.
func MakeLabel(a, b TopologyLocation) Label {
	return Label{locs: [numGeometries]TopologyLocation{a, b}}
}

// NewLineLabel returns a line-like Label with the same On location for both
// geometries.
func NewLineLabel(on de9im.MaybeLocation) Label {
	return MakeLabel(NewLineLocation(on), NewLineLocation(on))
}

// NewLineLabelForGeometry returns a line-like Label which only has a location
// for geometry geomIndex.
func NewLineLabelForGeometry(geomIndex int, on de9im.MaybeLocation) Label {
	var l Label
	l.locs[checkGeomIndex(geomIndex)] = NewLineLocation(on)
	return l
}

// NewAreaLabel returns an area-like Label with the same locations for both
// geometries.
func NewAreaLabel(on, left, right de9im.MaybeLocation) Label {
	return MakeLabel(NewAreaLocation(on, left, right), NewAreaLocation(on, left, right))
}

// NewAreaLabelForGeometry returns an area-like Label which only has locations
// for geometry geomIndex.
func NewAreaLabelForGeometry(geomIndex int, on, left, right de9im.Location) Label {
	l := NewAreaLabel(de9im.Unknown, de9im.Unknown, de9im.Unknown)
	l.locs[checkGeomIndex(geomIndex)].SetLocations(on, left, right)
	return l
}

func checkGeomIndex(geomIndex int) int {
	if geomIndex < 0 || geomIndex >= numGeometries {
		panic(errors.AssertionFailedf("geometry index %d out of range", geomIndex))
	}
	return geomIndex
}

// Flip swaps Left and Right for both geometries.
func (l *Label) Flip() {
	l.locs[0].Flip()
	l.locs[1].Flip()
}

// TopologyLocation returns the location of geometry geomIndex.
func (l Label) TopologyLocation(geomIndex int) TopologyLocation {
	return l.locs[checkGeomIndex(geomIndex)]
}

// Location returns the location at pos relative to geometry geomIndex.
func (l Label) Location(geomIndex int, pos Position) de9im.MaybeLocation {
	return l.locs[checkGeomIndex(geomIndex)].Get(pos)
}

// OnLocation returns the On location relative to geometry geomIndex.
func (l Label) OnLocation(geomIndex int) de9im.MaybeLocation {
	return l.Location(geomIndex, On)
}

// SetLocation sets the location at pos relative to geometry geomIndex.
func (l *Label) SetLocation(geomIndex int, pos Position, loc de9im.Location) {
	l.locs[checkGeomIndex(geomIndex)].Set(pos, de9im.Known(loc))
}

// SetOnLocation sets (or clears) the On location relative to geometry
// geomIndex.
func (l *Label) SetOnLocation(geomIndex int, loc de9im.MaybeLocation) {
	l.locs[checkGeomIndex(geomIndex)].Set(On, loc)
}

// SetAllLocations sets every location of geometry geomIndex to loc.
func (l *Label) SetAllLocations(geomIndex int, loc de9im.Location) {
	l.locs[checkGeomIndex(geomIndex)].SetAllLocations(loc)
}

// SetAllLocationsIfEmpty sets every unknown location of geometry geomIndex
// to loc.
func (l *Label) SetAllLocationsIfEmpty(geomIndex int, loc de9im.Location) {
	l.locs[checkGeomIndex(geomIndex)].SetAllLocationsIfEmpty(loc)
}

// GeometryCount returns the number of geometries with at least one known
// location.
func (l Label) GeometryCount() int {
	n := 0
	for _, tl := range l.locs {
		if !tl.IsEmpty() {
			n++
		}
	}
	return n
}

// IsEmpty returns true if every location of geometry geomIndex is unknown.
func (l Label) IsEmpty(geomIndex int) bool {
	return l.locs[checkGeomIndex(geomIndex)].IsEmpty()
}

// IsAnyEmpty returns true if any location of geometry geomIndex is unknown.
func (l Label) IsAnyEmpty(geomIndex int) bool {
	return l.locs[checkGeomIndex(geomIndex)].IsAnyEmpty()
}

// IsArea returns true if the label is area-like for either geometry.
func (l Label) IsArea() bool {
	return l.locs[0].IsArea() || l.locs[1].IsArea()
}

// IsGeometryArea returns true if the label is area-like for geometry
// geomIndex.
func (l Label) IsGeometryArea(geomIndex int) bool {
	return l.locs[checkGeomIndex(geomIndex)].IsArea()
}

// IsLine returns true if the label is line-like for geometry geomIndex.
func (l Label) IsLine(geomIndex int) bool {
	return l.locs[checkGeomIndex(geomIndex)].IsLine()
}

// SafeFormat implements redact.SafeFormatter.
func (l Label) SafeFormat(s redact.SafePrinter, _ rune) {
	s.Printf("A:%s B:%s", l.locs[0], l.locs[1])
}

func (l Label) String() string {
	return redact.StringWithoutMarkers(l)
}
