package planner

import "github.com/danielcooke/planscan/internal/domain"

// Graph maps each task ID to the IDs it depends on. It preserves the
// insertion order of tasks and the declared order of dependencies so that
// every traversal over it is deterministic. Built once per analysis and
// never mutated afterwards.
type Graph struct {
	ids  []string
	deps map[string][]string
}

// BuildGraph constructs the dependency graph for a task set. Duplicate
// dependency declarations collapse to their first occurrence. Dependency
// IDs that do not exist as tasks are kept verbatim; resolving them is the
// sorter's problem, not the builder's.
func BuildGraph(set *domain.TaskSet) *Graph {
	g := &Graph{
		ids:  set.IDs(),
		deps: make(map[string][]string, set.Len()),
	}
	for _, t := range set.Tasks() {
		seen := make(map[string]bool, len(t.Dependencies))
		deps := make([]string, 0, len(t.Dependencies))
		for _, d := range t.Dependencies {
			if seen[d] {
				continue
			}
			seen[d] = true
			deps = append(deps, d)
		}
		g.deps[t.ID] = deps
	}
	return g
}

// Len returns the number of tasks in the graph.
func (g *Graph) Len() int {
	return len(g.ids)
}

// IDs returns the task IDs in insertion order.
func (g *Graph) IDs() []string {
	ids := make([]string, len(g.ids))
	copy(ids, g.ids)
	return ids
}

// Deps returns the collapsed dependency list for a task ID.
func (g *Graph) Deps(id string) []string {
	return g.deps[id]
}
