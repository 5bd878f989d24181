// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package de9im

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// ErrMalformedPattern marks errors returned when a DE-9IM relation or pattern
// string cannot be parsed.
var ErrMalformedPattern = errors.New("malformed DE-9IM pattern")

// matrixStringLen is the length of the textual form of an IntersectionMatrix.
const matrixStringLen = numLocations * numLocations

// IntersectionMatrix is a DE-9IM matrix. Cell (a, b) holds the dimension of the
// intersection of the a-part (Interior, Boundary or Exterior) of the first
// geometry with the b-part of the second.
//
// The zero value is the matrix with every cell Empty ("FFFFFFFFF").
type IntersectionMatrix [numLocations][numLocations]Dimensions

// ParseIntersectionMatrix parses the 9 character, row-major textual form of a
// matrix, e.g. "212101212".
func ParseIntersectionMatrix(s string) (IntersectionMatrix, error) {
	var im IntersectionMatrix
	if err := im.SetAtLeastFromString(s); err != nil {
		return IntersectionMatrix{}, err
	}
	return im, nil
}

// Get returns the dimension of cell (a, b).
func (im IntersectionMatrix) Get(a, b Location) Dimensions {
	return im[a][b]
}

// Set overwrites cell (a, b) with d.
func (im *IntersectionMatrix) Set(a, b Location, d Dimensions) {
	im[a][b] = d
}

// SetAtLeast raises cell (a, b) to d. A cell is never lowered, so the result
// of any sequence of SetAtLeast calls on a cell is the maximum dimension
// passed, regardless of order.
func (im *IntersectionMatrix) SetAtLeast(a, b Location, d Dimensions) {
	if im[a][b] < d {
		im[a][b] = d
	}
}

// SetAtLeastIfValid is SetAtLeast for locations that may be unknown. It is a
// no-op unless both locations are known.
func (im *IntersectionMatrix) SetAtLeastIfValid(a, b MaybeLocation, d Dimensions) {
	la, ok := a.Get()
	if !ok {
		return
	}
	lb, ok := b.Get()
	if !ok {
		return
	}
	im.SetAtLeast(la, lb, d)
}

// SetAtLeastFromString raises every cell to at least the dimension at the
// same row-major position in s. Nothing is modified if s is malformed.
func (im *IntersectionMatrix) SetAtLeastFromString(s string) error {
	if len(s) != matrixStringLen {
		return errors.Mark(
			errors.Newf("relation %q should be of length %d", s, matrixStringLen),
			ErrMalformedPattern,
		)
	}
	var parsed IntersectionMatrix
	for i := 0; i < matrixStringLen; i++ {
		d, err := DimensionsFromChar(s[i])
		if err != nil {
			return errors.Wrapf(err, "parsing relation %q", s)
		}
		parsed[i/numLocations][i%numLocations] = d
	}
	for a := range im {
		for b := range im[a] {
			im[a][b] = max(im[a][b], parsed[a][b])
		}
	}
	return nil
}

// Transpose returns the matrix relating the second geometry to the first.
func (im IntersectionMatrix) Transpose() IntersectionMatrix {
	var t IntersectionMatrix
	for a := range im {
		for b := range im[a] {
			t[b][a] = im[a][b]
		}
	}
	return t
}

// Matches returns whether the matrix satisfies a DE-9IM pattern. Pattern
// characters are matched case-insensitively: 'T' matches any non-empty
// dimension, 'F' only Empty, '*' anything, and '0', '1', '2' that exact
// dimension.
func (im IntersectionMatrix) Matches(pattern string) (bool, error) {
	if len(pattern) != matrixStringLen {
		return false, errors.Mark(
			errors.Newf("pattern %q should be of length %d", pattern, matrixStringLen),
			ErrMalformedPattern,
		)
	}
	matches := true
	for i := 0; i < matrixStringLen; i++ {
		ok, err := dimensionsMatchPatternChar(im[i/numLocations][i%numLocations], pattern[i])
		if err != nil {
			return false, err
		}
		// Keep scanning so that an unrecognized character later in the pattern
		// is still reported.
		matches = matches && ok
	}
	return matches, nil
}

func dimensionsMatchPatternChar(d Dimensions, p byte) (bool, error) {
	switch p {
	case '*':
		return true, nil
	case 'T', 't':
		return d != Empty, nil
	case 'F', 'f':
		return d == Empty, nil
	case '0', '1', '2':
		return d.Char() == p, nil
	}
	return false, errors.Mark(
		errors.Newf("unrecognized pattern character: %c", p),
		ErrMalformedPattern,
	)
}

// SafeFormat implements redact.SafeFormatter. The matrix is printed in its
// 9 character row-major form.
func (im IntersectionMatrix) SafeFormat(s redact.SafePrinter, _ rune) {
	var buf [matrixStringLen]byte
	for i := range buf {
		buf[i] = im[i/numLocations][i%numLocations].Char()
	}
	s.SafeString(redact.SafeString(buf[:]))
}

func (im IntersectionMatrix) String() string {
	return redact.StringWithoutMarkers(im)
}
