package planner

// Cycle is an ordered task ID path that returns to its own start, e.g.
// [a b c a]. Any task on it can never be scheduled.
type Cycle []string

// frame is one level of the explicit DFS stack: a task and the index of
// the next dependency edge to follow from it.
type frame struct {
	id   string
	next int
}

// DetectCycles runs a depth-first search from every unvisited task and
// reports each dependency cycle it finds. Traversal follows insertion
// order for tasks and declared order for edges, so identical input always
// yields identical cycle reports.
//
// The recursion is expressed with an explicit stack to stay safe on large
// graphs. When an edge reaches a task already on the stack, the path slice
// from that task's first occurrence is emitted, closed by repeating it,
// and the current traversal is abandoned; the visited, stack-membership
// and path state deliberately carry over between roots, matching the
// behavior of the recursive formulation.
func DetectCycles(g *Graph) []Cycle {
	var cycles []Cycle
	visited := make(map[string]bool, g.Len())
	onStack := make(map[string]bool)
	var path []string

	for _, root := range g.ids {
		if visited[root] {
			continue
		}

		visited[root] = true
		onStack[root] = true
		path = append(path, root)
		stack := []frame{{id: root}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := g.deps[top.id]

			if top.next >= len(deps) {
				// All edges explored: pop.
				onStack[top.id] = false
				path = path[:len(path)-1]
				stack = stack[:len(stack)-1]
				continue
			}

			dep := deps[top.next]
			top.next++

			if !visited[dep] {
				visited[dep] = true
				onStack[dep] = true
				path = append(path, dep)
				stack = append(stack, frame{id: dep})
				continue
			}

			if onStack[dep] {
				start := 0
				for i, id := range path {
					if id == dep {
						start = i
						break
					}
				}
				cycle := make(Cycle, 0, len(path)-start+1)
				cycle = append(cycle, path[start:]...)
				cycle = append(cycle, dep)
				cycles = append(cycles, cycle)
				break
			}
		}
	}

	return cycles
}
