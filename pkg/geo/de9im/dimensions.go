// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package de9im

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Dimensions is the dimension of the intersection of two point sets. The
// values are totally ordered, Empty < Zero < One < Two, so the builtin max
// is the merge of two observations.
type Dimensions int8

const (
	// Empty is the dimension of an empty intersection. It is rendered as 'F'.
	Empty Dimensions = iota
	// Zero is the dimension of a set of points.
	Zero
	// One is the dimension of a set of curves.
	One
	// Two is the dimension of a set of surfaces.
	Two
)

// Char returns the DE-9IM character for the dimension.
func (d Dimensions) Char() byte {
	switch d {
	case Empty:
		return 'F'
	case Zero:
		return '0'
	case One:
		return '1'
	case Two:
		return '2'
	}
	panic(errors.AssertionFailedf("unknown dimensions: %d", d))
}

// DimensionsFromChar parses a DE-9IM dimension character.
func DimensionsFromChar(c byte) (Dimensions, error) {
	switch c {
	case 'F':
		return Empty, nil
	case '0':
		return Zero, nil
	case '1':
		return One, nil
	case '2':
		return Two, nil
	}
	return Empty, errors.Mark(
		errors.Newf("unrecognized dimension character: %c", c),
		ErrMalformedPattern,
	)
}

// SafeFormat implements redact.SafeFormatter.
func (d Dimensions) SafeFormat(s redact.SafePrinter, _ rune) {
	s.SafeRune(redact.SafeRune(d.Char()))
}

func (d Dimensions) String() string {
	return redact.StringWithoutMarkers(d)
}
