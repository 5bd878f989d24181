// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geomgraph

import (
	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r2"
)

// Graph is the planar topology graph of the geometries being related. The
// graph owns its edges; everything else (edge ends, bundles) refers to an
// edge by its EdgeID.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	edges []*Edge
	nodes NodeMap
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: makeNodeMap()}
}

// AddEdge adds e to the graph and returns its id. An edge can only belong to
// one graph.
func (g *Graph) AddEdge(e *Edge) EdgeID {
	if e.id != NoEdge {
		panic(errors.AssertionFailedf("edge already added to a graph as %d", e.id))
	}
	e.id = EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	return e.id
}

// Edge returns the edge with the given id.
func (g *Graph) Edge(id EdgeID) *Edge {
	return g.edges[id]
}

// Edges returns every edge of the graph, indexed by EdgeID.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// Nodes returns the node map of the graph.
func (g *Graph) Nodes() NodeMap {
	return g.nodes
}

// AddNode returns the node at coord, creating it if needed.
func (g *Graph) AddNode(coord r2.Point) *Node {
	return g.nodes.AddNode(coord)
}

// ComputeIntersections runs esi over every edge of the graph, letting si
// record the intersections it finds on the edges.
func (g *Graph) ComputeIntersections(
	esi EdgeSetIntersector, si SegmentIntersector, testAllSegments bool,
) {
	esi.ComputeIntersections(g.edges, si, testAllSegments)
}

// ComputeIntersectionsWith runs esi over the pairs made of an edge of g and
// an edge of other. Edges of the same graph are not tested against each
// other.
func (g *Graph) ComputeIntersectionsWith(
	other *Graph, esi EdgeSetIntersector, si SegmentIntersector,
) {
	esi.ComputeIntersectionsBetween(g.edges, other.edges, si)
}
