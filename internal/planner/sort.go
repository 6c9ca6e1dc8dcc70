package planner

import "fmt"

// CyclicGraphError means no valid execution order exists: the graph either
// contains a dependency cycle or references task IDs that no task resolves.
// Both cases are surfaced identically; Cycles may be empty in the dangling
// reference case.
type CyclicGraphError struct {
	Cycles []Cycle
}

func (e *CyclicGraphError) Error() string {
	if len(e.Cycles) > 0 {
		return fmt.Sprintf("cannot establish a valid order: %d circular dependency chain(s)", len(e.Cycles))
	}
	return "cannot establish a valid order: circular or unresolved dependencies"
}

// TopoSort produces one valid linear execution order using Kahn's
// algorithm, or a *CyclicGraphError when none exists. Cycle detection runs
// first; a clean report is the precondition for sorting at all.
//
// A dependency on an ID that is not a task key is never satisfied by any
// dequeue, so the task carrying it stays unscheduled. The sort still
// terminates, and the short result is reported as a *CyclicGraphError just
// like a true cycle.
func TopoSort(g *Graph) ([]string, error) {
	if cycles := DetectCycles(g); len(cycles) > 0 {
		return nil, &CyclicGraphError{Cycles: cycles}
	}

	inDegree := make(map[string]int, g.Len())
	for _, id := range g.ids {
		inDegree[id] = len(g.deps[id])
	}

	var queue []string
	for _, id := range g.ids {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]string, 0, g.Len())
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		for _, other := range g.ids {
			if !dependsOn(g.deps[other], id) {
				continue
			}
			inDegree[other]--
			if inDegree[other] == 0 {
				queue = append(queue, other)
			}
		}
	}

	if len(order) != g.Len() {
		return nil, &CyclicGraphError{Cycles: DetectCycles(g)}
	}
	return order, nil
}

func dependsOn(deps []string, id string) bool {
	for _, d := range deps {
		if d == id {
			return true
		}
	}
	return false
}
