package trace

import "slices"

// findCycles runs a white/gray/black depth-first search over the
// specification dependency adjacency and returns every cycle found. A
// cycle is the path slice from the revisited node's first occurrence
// through the current node, closed with the revisited node again, e.g.
// [SPEC-1 SPEC-2 SPEC-1].
//
// Top-level nodes are visited in index input order and dependencies in
// declaration order, so the report order is deterministic for a given
// input order. Edges pointing at unknown specifications are walked as
// leaf nodes: their non-existence is a dangling-dependency finding, not
// part of the cycle search.
func findCycles(idx *Index) [][]string {
	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	var cycles [][]string

	var dfs func(specID string, path []string)
	dfs = func(specID string, path []string) {
		if onStack[specID] {
			start := slices.Index(path, specID)
			cycle := append(slices.Clone(path[start:]), specID)
			cycles = append(cycles, cycle)
			return
		}
		if visited[specID] {
			return
		}

		visited[specID] = true
		onStack[specID] = true

		if spec, ok := idx.Specification(specID); ok {
			next := append(slices.Clone(path), specID)
			for _, depID := range spec.Dependencies {
				dfs(depID, next)
			}
		}

		onStack[specID] = false
	}

	for _, specID := range idx.SpecificationIDs() {
		if !visited[specID] {
			dfs(specID, nil)
		}
	}

	return cycles
}
