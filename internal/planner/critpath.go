package planner

import "github.com/danielcooke/planscan/internal/domain"

// CriticalPath returns the longest cumulative-duration chain through the
// graph and its total time. This is critical-path-method propagation: each
// task's earliest start is the latest finish among its dependencies, and
// the chain ending at the maximum earliest finish lower-bounds the whole
// plan's makespan. An empty order yields an empty path and zero time.
func CriticalPath(g *Graph, tasks map[string]domain.Task, order []string) ([]string, int) {
	earliest := make(map[string]int, len(order))
	for _, id := range order {
		start := 0
		for _, dep := range tasks[id].Dependencies {
			if es, ok := earliest[dep]; ok {
				if end := es + tasks[dep].EstimatedTime; end > start {
					start = end
				}
			}
		}
		earliest[id] = start
	}

	if len(earliest) == 0 {
		return nil, 0
	}

	// End of the critical path: first task with the maximum finish time,
	// in insertion order.
	var last string
	total := -1
	for _, id := range g.ids {
		if end := earliest[id] + tasks[id].EstimatedTime; end > total {
			total = end
			last = id
		}
	}

	// Walk backwards: a dependency lies on the path when its finish time
	// exactly meets the current task's start. First match in declared
	// dependency order breaks ties.
	path := []string{last}
	cur := last
	curTime := earliest[cur]
	for curTime > 0 {
		found := false
		for _, dep := range tasks[cur].Dependencies {
			if earliest[dep]+tasks[dep].EstimatedTime == curTime {
				path = append(path, dep)
				cur = dep
				curTime = earliest[dep]
				found = true
				break
			}
		}
		if !found {
			break
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, total
}
