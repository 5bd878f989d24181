// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geomgraph

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geotopo/pkg/geo/de9im"
)

// BoundaryNodeRule decides whether a node touched by a number of boundary
// edge ends of a geometry lies in the boundary of that geometry.
//
// Only the OGC SFS mod-2 rule is provided. Other rules (e.g. treating every
// line endpoint as boundary) can be plugged in by implementing this interface.
type BoundaryNodeRule interface {
	IsInBoundary(boundaryCount int) bool
}

// Mod2BoundaryNodeRule puts a node in the boundary iff an odd number of
// boundary edge ends touch it.
type Mod2BoundaryNodeRule struct{}

var _ BoundaryNodeRule = Mod2BoundaryNodeRule{}

// IsInBoundary implements BoundaryNodeRule.
func (Mod2BoundaryNodeRule) IsInBoundary(boundaryCount int) bool {
	return boundaryCount%2 == 1
}

// DetermineBoundary returns Boundary if rule places a node touched by
// boundaryCount boundary edge ends in the boundary, and Interior otherwise.
func DetermineBoundary(rule BoundaryNodeRule, boundaryCount int) de9im.Location {
	if boundaryCount < 0 {
		panic(errors.AssertionFailedf("negative boundary count %d", boundaryCount))
	}
	if rule.IsInBoundary(boundaryCount) {
		return de9im.Boundary
	}
	return de9im.Interior
}
