// Package dag provides the directed acyclic graph the bridge uses to
// validate translated asset dependencies: cycle detection, topological
// ordering, and execution levels over internal asset keys.
package dag

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/dagbridge/pkg/asset"
)

// Node is one asset in the graph, identified by its internal key string
// and carrying the user-facing asset key.
type Node struct {
	// ID is the internal key string (stable, identifier-safe).
	ID string
	// Key is the hierarchical asset key shown to users.
	Key asset.Key
}

// Graph is a dependency graph over translated assets.
type Graph struct {
	nodes   map[string]*Node
	edges   map[string][]string // upstream -> downstreams
	parents map[string][]string // downstream -> upstreams
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:   make(map[string]*Node),
		edges:   make(map[string][]string),
		parents: make(map[string][]string),
	}
}

// AddNode registers an asset. Re-adding an existing ID updates its key.
func (g *Graph) AddNode(id string, key asset.Key) {
	if node, exists := g.nodes[id]; exists {
		node.Key = key
		return
	}
	g.nodes[id] = &Node{ID: id, Key: key}
	g.edges[id] = []string{}
	g.parents[id] = []string{}
}

// AddEdge records that downstream depends on upstream. Both nodes must
// already exist, and self-edges are rejected.
func (g *Graph) AddEdge(upstreamID, downstreamID string) error {
	if _, exists := g.nodes[upstreamID]; !exists {
		return fmt.Errorf("upstream node %q does not exist", upstreamID)
	}
	if _, exists := g.nodes[downstreamID]; !exists {
		return fmt.Errorf("downstream node %q does not exist", downstreamID)
	}
	if upstreamID == downstreamID {
		return fmt.Errorf("self-dependency detected: %s", upstreamID)
	}

	if !contains(g.edges[upstreamID], downstreamID) {
		g.edges[upstreamID] = append(g.edges[upstreamID], downstreamID)
	}
	if !contains(g.parents[downstreamID], upstreamID) {
		g.parents[downstreamID] = append(g.parents[downstreamID], upstreamID)
	}
	return nil
}

// Node returns a node by internal key.
func (g *Graph) Node(id string) (*Node, bool) {
	node, exists := g.nodes[id]
	return node, exists
}

// Parents returns the upstream dependencies of a node.
func (g *Graph) Parents(id string) []string {
	return g.parents[id]
}

// Children returns the downstream dependents of a node.
func (g *Graph) Children(id string) []string {
	return g.edges[id]
}

// NodeCount returns the number of assets in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of dependency edges.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, downstreams := range g.edges {
		count += len(downstreams)
	}
	return count
}

// Roots returns assets with no upstream dependencies, sorted.
func (g *Graph) Roots() []string {
	var roots []string
	for id := range g.nodes {
		if len(g.parents[id]) == 0 {
			roots = append(roots, id)
		}
	}
	sort.Strings(roots)
	return roots
}

// HasCycle reports whether the graph contains a dependency cycle, along
// with the cycle path for error reporting.
func (g *Graph) HasCycle() (bool, []string) {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)
	path := make(map[string]string)

	var cyclePath []string

	var dfs func(id string) bool
	dfs = func(id string) bool {
		visited[id] = true
		recStack[id] = true

		for _, downstreamID := range g.edges[id] {
			if !visited[downstreamID] {
				path[downstreamID] = id
				if dfs(downstreamID) {
					return true
				}
			} else if recStack[downstreamID] {
				// Found a cycle; reconstruct the path back to the entry.
				cyclePath = []string{downstreamID}
				for curr := id; curr != downstreamID; curr = path[curr] {
					cyclePath = append([]string{curr}, cyclePath...)
				}
				cyclePath = append([]string{downstreamID}, cyclePath...)
				return true
			}
		}

		recStack[id] = false
		return false
	}

	// Deterministic traversal order keeps cycle reports stable.
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if !visited[id] {
			if dfs(id) {
				return true, cyclePath
			}
		}
	}
	return false, nil
}

// TopologicalSort returns assets with dependencies before dependents.
// Fails if the graph contains a cycle.
func (g *Graph) TopologicalSort() ([]*Node, error) {
	if hasCycle, cyclePath := g.HasCycle(); hasCycle {
		return nil, fmt.Errorf("dependency cycle detected: %v", cyclePath)
	}

	visited := make(map[string]bool)
	var result []*Node

	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true

		for _, upstreamID := range g.parents[id] {
			visit(upstreamID)
		}
		result = append(result, g.nodes[id])
	}

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		visit(id)
	}
	return result, nil
}

// ExecutionLevels groups assets by dependency depth. Level 0 holds assets
// with no upstreams; assets at level N wait on level N-1.
func (g *Graph) ExecutionLevels() ([][]string, error) {
	if hasCycle, cyclePath := g.HasCycle(); hasCycle {
		return nil, fmt.Errorf("dependency cycle detected: %v", cyclePath)
	}

	assigned := make(map[string]int)

	var levelOf func(id string) int
	levelOf = func(id string) int {
		if level, ok := assigned[id]; ok {
			return level
		}

		maxParent := -1
		for _, upstreamID := range g.parents[id] {
			if l := levelOf(upstreamID); l > maxParent {
				maxParent = l
			}
		}

		level := maxParent + 1
		assigned[id] = level
		return level
	}

	maxLevel := 0
	for id := range g.nodes {
		if level := levelOf(id); level > maxLevel {
			maxLevel = level
		}
	}

	levels := make([][]string, maxLevel+1)
	for id, level := range assigned {
		levels[level] = append(levels[level], id)
	}
	for i := range levels {
		sort.Strings(levels[i])
	}
	return levels, nil
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
