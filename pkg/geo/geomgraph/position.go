// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geomgraph

import "github.com/cockroachdb/redact"

// Position is a side of a directed graph component.
type Position int8

const (
	// On is the position of the component itself.
	On Position = iota
	// Left is the position to the left of the component, looking along its
	// direction.
	Left
	// Right is the position to the right of the component.
	Right
)

// Opposite returns Right for Left and Left for Right. On is its own opposite.
func (p Position) Opposite() Position {
	switch p {
	case Left:
		return Right
	case Right:
		return Left
	}
	return p
}

// SafeFormat implements redact.SafeFormatter.
func (p Position) SafeFormat(s redact.SafePrinter, _ rune) {
	switch p {
	case On:
		s.SafeString("On")
	case Left:
		s.SafeString("Left")
	case Right:
		s.SafeString("Right")
	default:
		s.Printf("Position(%d)", redact.SafeInt(p))
	}
}

func (p Position) String() string {
	return redact.StringWithoutMarkers(p)
}
