// Package graph implements the render-graph data model: passes, resources,
// edges and the directed graph that owns them, plus the reachability and
// ordering primitives (BFS, topological sort) the compiler builds on.
package graph
