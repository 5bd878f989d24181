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

// TopologyLocation is the location of a graph component relative to one
// geometry. A line-like TopologyLocation (used for nodes and for edges of
// points and lines) only has an On location. An area-like TopologyLocation
// (used for edges of polygon rings) also has Left and Right locations.
//
// Whether a TopologyLocation is line-like or area-like is fixed when it is
// constructed. The zero value is a line-like location with an unknown On
// location.
type TopologyLocation struct {
	area            bool
	on, left, right de9im.MaybeLocation
}

// NewLineLocation returns a line-like TopologyLocation.
func NewLineLocation(on de9im.MaybeLocation) TopologyLocation {
	return TopologyLocation{on: on}
}

// NewAreaLocation returns an area-like TopologyLocation.
func NewAreaLocation(on, left, right de9im.MaybeLocation) TopologyLocation {
	return TopologyLocation{area: true, on: on, left: left, right: right}
}

// Get returns the location at pos. The Left and Right locations of a
// line-like TopologyLocation are always unknown.
func (tl TopologyLocation) Get(pos Position) de9im.MaybeLocation {
	switch pos {
	case On:
		return tl.on
	case Left:
		if tl.area {
			return tl.left
		}
	case Right:
		if tl.area {
			return tl.right
		}
	}
	return de9im.Unknown
}

// Set sets the location at pos. Only area-like locations have a Left and a
// Right.
func (tl *TopologyLocation) Set(pos Position, loc de9im.MaybeLocation) {
	switch pos {
	case On:
		tl.on = loc
		return
	case Left:
		if tl.area {
			tl.left = loc
			return
		}
	case Right:
		if tl.area {
			tl.right = loc
			return
		}
	}
	panic(errors.AssertionFailedf("cannot set %s of line-like location %s", pos, tl))
}

// SetLocations sets all three locations of an area-like TopologyLocation.
func (tl *TopologyLocation) SetLocations(on, left, right de9im.Location) {
	if !tl.area {
		panic(errors.AssertionFailedf("cannot set sides of line-like location %s", tl))
	}
	tl.on, tl.left, tl.right = de9im.Known(on), de9im.Known(left), de9im.Known(right)
}

// SetAllLocations sets every location to loc.
func (tl *TopologyLocation) SetAllLocations(loc de9im.Location) {
	tl.on = de9im.Known(loc)
	if tl.area {
		tl.left, tl.right = de9im.Known(loc), de9im.Known(loc)
	}
}

// SetAllLocationsIfEmpty sets every unknown location to loc.
func (tl *TopologyLocation) SetAllLocationsIfEmpty(loc de9im.Location) {
	fill := func(m *de9im.MaybeLocation) {
		if !m.IsKnown() {
			*m = de9im.Known(loc)
		}
	}
	fill(&tl.on)
	if tl.area {
		fill(&tl.left)
		fill(&tl.right)
	}
}

// Flip swaps the Left and Right locations. It is a no-op for line-like
// locations.
func (tl *TopologyLocation) Flip() {
	if tl.area {
		tl.left, tl.right = tl.right, tl.left
	}
}

// IsEmpty returns true if every location is unknown.
func (tl TopologyLocation) IsEmpty() bool {
	if tl.area {
		return !tl.on.IsKnown() && !tl.left.IsKnown() && !tl.right.IsKnown()
	}
	return !tl.on.IsKnown()
}

// IsAnyEmpty returns true if any location is unknown.
func (tl TopologyLocation) IsAnyEmpty() bool {
	if tl.area {
		return !tl.on.IsKnown() || !tl.left.IsKnown() || !tl.right.IsKnown()
	}
	return !tl.on.IsKnown()
}

// IsArea returns true for area-like locations.
func (tl TopologyLocation) IsArea() bool {
	return tl.area
}

// IsLine returns true for line-like locations.
func (tl TopologyLocation) IsLine() bool {
	return !tl.area
}

// SafeFormat implements redact.SafeFormatter. Line-like locations print their
// On symbol; area-like locations print Left, On and Right, e.g. "ibe".
func (tl TopologyLocation) SafeFormat(s redact.SafePrinter, _ rune) {
	if tl.area {
		s.SafeRune(redact.SafeRune(tl.left.Symbol()))
		s.SafeRune(redact.SafeRune(tl.on.Symbol()))
		s.SafeRune(redact.SafeRune(tl.right.Symbol()))
		return
	}
	s.SafeRune(redact.SafeRune(tl.on.Symbol()))
}

func (tl TopologyLocation) String() string {
	return redact.StringWithoutMarkers(tl)
}
