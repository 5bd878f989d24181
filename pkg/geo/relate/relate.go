// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package relate computes the DE-9IM intersection matrix of two geometries
// from their labelled topology graph.
//
// The graph (edges with their labels, labelled nodes) is assembled by the
// caller. The Computer derives the edge ends of every edge, bundles them at
// their nodes, labels the bundles and folds the labels of nodes, bundles and
// isolated edges into the matrix.
package relate

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geotopo/pkg/geo/de9im"
	"github.com/cockroachdb/geotopo/pkg/geo/geomgraph"
	"github.com/sirupsen/logrus"
)

// Config configures a Computer.
type Config struct {
	// BoundaryNodeRule decides whether nodes touched by boundary edge ends are
	// in the boundary. Defaults to geomgraph.Mod2BoundaryNodeRule.
	BoundaryNodeRule geomgraph.BoundaryNodeRule
	// Intersector, if set, is run over the edges of the graph before edge ends
	// are derived. SegmentIntersector must then be set too.
	Intersector        geomgraph.EdgeSetIntersector
	SegmentIntersector geomgraph.SegmentIntersector
	// Logger receives debug logging of the computation. Defaults to a logger
	// which discards everything.
	Logger logrus.FieldLogger
}

func (cfg *Config) validate() error {
	if cfg.Intersector != nil && cfg.SegmentIntersector == nil {
		return errors.New("an edge set intersector requires a segment intersector")
	}
	if cfg.Intersector == nil && cfg.SegmentIntersector != nil {
		return errors.New("a segment intersector requires an edge set intersector")
	}
	return nil
}

func (cfg *Config) setDefaults() {
	if cfg.BoundaryNodeRule == nil {
		cfg.BoundaryNodeRule = geomgraph.Mod2BoundaryNodeRule{}
	}
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.Logger = l
	}
}

// Computer computes the intersection matrix of a graph. A Computer is used
// for a single computation.
type Computer struct {
	cfg   Config
	graph *geomgraph.Graph
	im    de9im.IntersectionMatrix
	done  bool
}

// NewComputer returns a Computer for g.
func NewComputer(g *geomgraph.Graph, cfg Config) (*Computer, error) {
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid relate config")
	}
	cfg.setDefaults()
	return &Computer{cfg: cfg, graph: g}, nil
}

// IntersectionMatrix returns the matrix being computed. Callers which know
// about intersections that the graph does not describe (for example, of area
// interiors with each other) can raise its cells before or after Compute.
func (c *Computer) IntersectionMatrix() *de9im.IntersectionMatrix {
	return &c.im
}

// Compute computes the intersection matrix. It may only be called once.
func (c *Computer) Compute() (de9im.IntersectionMatrix, error) {
	if c.done {
		return de9im.IntersectionMatrix{}, errors.AssertionFailedf("intersection matrix already computed")
	}
	c.done = true
	log := c.cfg.Logger

	// The exteriors of two bounded geometries always overlap in an area.
	c.im.Set(de9im.Exterior, de9im.Exterior, de9im.Two)

	edges := c.graph.Edges()
	if c.cfg.Intersector != nil {
		c.graph.ComputeIntersections(c.cfg.Intersector, c.cfg.SegmentIntersector, true /* testAllSegments */)
		log.WithField("edges", len(edges)).Debug("computed edge intersections")
	}

	ends := EdgeEndBuilder{}.ComputeEndsForEdges(edges)
	log.WithFields(logrus.Fields{
		"edges":     len(edges),
		"edge_ends": len(ends),
	}).Debug("computed edge ends")

	nodes := c.graph.Nodes()
	for _, e := range ends {
		nodes.AddEdgeEnd(e)
	}

	debug := debugEnabled(log)
	bundles := 0
	for _, n := range nodes.Nodes() {
		star := n.Star()
		star.ComputeLabels(c.cfg.BoundaryNodeRule)
		bundles += star.Len()

		n.UpdateIntersectionMatrix(&c.im)
		star.UpdateIntersectionMatrix(&c.im)
		if !debug {
			continue
		}
		nodeLog := log.WithField("node", n.Coordinate().String())
		for _, b := range star.Bundles() {
			nodeLog.WithField("label", b.Label().String()).Debug("labelled edge end bundle")
		}
	}
	log.WithFields(logrus.Fields{
		"nodes":   nodes.Len(),
		"bundles": bundles,
	}).Debug("labelled nodes")

	isolated := 0
	for _, e := range edges {
		if e.IsIsolated() {
			e.UpdateIntersectionMatrix(&c.im)
			isolated++
		}
	}
	log.WithFields(logrus.Fields{
		"isolated_edges": isolated,
		"matrix":         c.im.String(),
	}).Debug("computed intersection matrix")

	return c.im, nil
}

// debugEnabled reports whether l keeps debug entries. Loggers other than the
// logrus ones are assumed to.
func debugEnabled(l logrus.FieldLogger) bool {
	switch l := l.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	}
	return true
}
