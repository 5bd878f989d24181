// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package de9im contains the Dimensionally Extended 9-Intersection Model
// primitives: the topological Location of a point relative to a geometry, the
// Dimensions of an intersection, and the 3x3 IntersectionMatrix that relates
// two geometries.
package de9im

import "github.com/cockroachdb/redact"

// Location is the topological location of a point relative to a geometry. Its
// value doubles as the row (or column) index into an IntersectionMatrix.
type Location int8

const (
	// Interior is the location of points in the interior of a geometry.
	Interior Location = iota
	// Boundary is the location of points on the boundary of a geometry.
	Boundary
	// Exterior is the location of points outside of a geometry.
	Exterior
)

// numLocations is the number of rows and columns of an IntersectionMatrix.
const numLocations = 3

// Symbol returns the single character symbol for the location: 'i', 'b' or
// 'e'.
func (l Location) Symbol() rune {
	switch l {
	case Interior:
		return 'i'
	case Boundary:
		return 'b'
	case Exterior:
		return 'e'
	}
	return '?'
}

// SafeFormat implements redact.SafeFormatter.
func (l Location) SafeFormat(s redact.SafePrinter, _ rune) {
	switch l {
	case Interior:
		s.SafeString("Interior")
	case Boundary:
		s.SafeString("Boundary")
	case Exterior:
		s.SafeString("Exterior")
	default:
		s.Printf("Location(%d)", redact.SafeInt(l))
	}
}

func (l Location) String() string {
	return redact.StringWithoutMarkers(l)
}

// MaybeLocation is a Location which may not have been determined yet. The zero
// value is the unknown location, which is distinct from Exterior.
type MaybeLocation struct {
	loc   Location
	known bool
}

// Unknown is the MaybeLocation holding no location.
var Unknown = MaybeLocation{}

// Known returns a MaybeLocation holding l.
func Known(l Location) MaybeLocation {
	return MaybeLocation{loc: l, known: true}
}

// Get returns the location and whether it is known.
func (m MaybeLocation) Get() (Location, bool) {
	return m.loc, m.known
}

// IsKnown returns whether the location has been determined.
func (m MaybeLocation) IsKnown() bool {
	return m.known
}

// Is returns true if the location is known and equal to l.
func (m MaybeLocation) Is(l Location) bool {
	return m.known && m.loc == l
}

// Symbol returns the symbol of the location, or '_' if it is unknown.
func (m MaybeLocation) Symbol() rune {
	if !m.known {
		return '_'
	}
	return m.loc.Symbol()
}

// SafeFormat implements redact.SafeFormatter.
func (m MaybeLocation) SafeFormat(s redact.SafePrinter, _ rune) {
	s.SafeRune(redact.SafeRune(m.Symbol()))
}

func (m MaybeLocation) String() string {
	return redact.StringWithoutMarkers(m)
}
