// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geomgraph

import (
	"github.com/cockroachdb/geotopo/pkg/geo/de9im"
	"github.com/cockroachdb/redact"
	"github.com/golang/geo/r2"
	"github.com/google/btree"
)

// Node is a point of the graph at which edges meet or end. Its label is
// line-like: a node is either in the interior, on the boundary or outside of
// each geometry.
type Node struct {
	coord r2.Point
	label Label
	star  *EdgeEndBundleStar
}

func newNode(coord r2.Point) *Node {
	return &Node{coord: coord, star: newEdgeEndBundleStar(coord)}
}

// Coordinate returns the location of the node.
func (n *Node) Coordinate() r2.Point {
	return n.coord
}

// Label returns the label of the node.
func (n *Node) Label() Label {
	return n.label
}

// SetLabel replaces the label of the node.
func (n *Node) SetLabel(l Label) {
	n.label = l
}

// SetOnLocation sets the location of the node relative to geometry
// geomIndex.
func (n *Node) SetOnLocation(geomIndex int, loc de9im.Location) {
	n.label.SetOnLocation(geomIndex, de9im.Known(loc))
}

// Star returns the bundles of edge ends leaving the node.
func (n *Node) Star() *EdgeEndBundleStar {
	return n.star
}

// IsIsolated returns whether the node belongs to only one of the geometries.
func (n *Node) IsIsolated() bool {
	return n.label.GeometryCount() == 1
}

// UpdateIntersectionMatrix folds the label of the node into im. A node is a
// single point, so it contributes a zero-dimensional intersection.
func (n *Node) UpdateIntersectionMatrix(im *de9im.IntersectionMatrix) {
	im.SetAtLeastIfValid(n.label.OnLocation(0), n.label.OnLocation(1), de9im.Zero)
}

// SafeFormat implements redact.SafeFormatter.
func (n *Node) SafeFormat(s redact.SafePrinter, _ rune) {
	s.Printf("node (%v %v) %s", redact.SafeFloat(n.coord.X), redact.SafeFloat(n.coord.Y), n.label)
}

func (n *Node) String() string {
	return redact.StringWithoutMarkers(n)
}

// NodeMap holds the nodes of a graph ordered by coordinate (X, then Y).
type NodeMap struct {
	nodes *btree.BTreeG[*Node]
}

func makeNodeMap() NodeMap {
	return NodeMap{nodes: btree.NewG(8, func(a, b *Node) bool {
		return compareCoordinates(a.coord, b.coord) < 0
	})}
}

// AddNode returns the node at coord, creating it if needed.
func (m NodeMap) AddNode(coord r2.Point) *Node {
	if n, ok := m.Find(coord); ok {
		return n
	}
	n := newNode(coord)
	m.nodes.ReplaceOrInsert(n)
	return n
}

// Find returns the node at coord, if any.
func (m NodeMap) Find(coord r2.Point) (*Node, bool) {
	return m.nodes.Get(&Node{coord: coord})
}

// AddEdgeEnd inserts e into the star of the node it leaves, creating the node
// if needed.
func (m NodeMap) AddEdgeEnd(e EdgeEnd) *Node {
	n := m.AddNode(e.Coordinate())
	n.star.Insert(e)
	return n
}

// Len returns the number of nodes.
func (m NodeMap) Len() int {
	return m.nodes.Len()
}

// Nodes returns the nodes ordered by coordinate.
func (m NodeMap) Nodes() []*Node {
	nodes := make([]*Node, 0, m.nodes.Len())
	m.nodes.Ascend(func(n *Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}
