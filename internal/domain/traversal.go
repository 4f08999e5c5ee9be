package domain

import (
	m "dartshake.dev/pkg/dartshake/internal/model"
)

// traverse computes the transitive closure of the edge relation starting at
// the entry set, using an explicit worklist and a visited set keyed by
// canonical path. The revisit guard makes arbitrary cycles safe and bounds the
// work at one expansion per file; the resulting set is independent of
// traversal order.
func traverse(entries []m.Path, edges func(m.Path) []m.Path) map[m.Path]struct{} {
	visited := make(map[m.Path]struct{}, len(entries))
	stack := append([]m.Path(nil), entries...)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[current]; seen {
			continue
		}

		visited[current] = struct{}{}

		for _, target := range edges(current) {
			if _, seen := visited[target]; !seen {
				stack = append(stack, target)
			}
		}
	}

	return visited
}
