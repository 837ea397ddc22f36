package core

import "sort"

// ConnectedComponents groups vertices reachable from one another.
// Seeds are visited in Vertices() order and each component is returned
// sorted, so the result is deterministic. Isolated vertices form
// singleton components.
//
// Time:   O(V·log V + E).
// Memory: O(V) for visited flags and output.
func (g *Graph) ConnectedComponents() [][]string {
	seen := make(map[string]bool, len(g.vertices))
	var comps [][]string

	for _, seed := range g.Vertices() {
		if seen[seed] {
			continue
		}
		// BFS to collect component
		queue := []string{seed}
		seen[seed] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for v, eids := range g.adjacency[u] {
				if len(eids) == 0 || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		sort.Strings(queue)
		comps = append(comps, queue)
	}
	return comps
}
