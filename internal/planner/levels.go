package planner

// Levelize partitions the topological order into execution levels: each
// level holds every not-yet-completed task whose dependencies are all
// completed, so all members of one level can start in parallel. Tasks with
// no dependencies land in the very first level.
//
// A pass that qualifies no task (only possible when cycle detection was
// skipped upstream) simply stops the partitioning; it is not an error.
func Levelize(g *Graph, order []string) [][]string {
	var levels [][]string
	completed := make(map[string]bool, len(order))

	for len(completed) < len(order) {
		var level []string
		for _, id := range order {
			if completed[id] {
				continue
			}
			if depsSatisfied(g.deps[id], completed) {
				level = append(level, id)
			}
		}
		if len(level) == 0 {
			break
		}
		for _, id := range level {
			completed[id] = true
		}
		levels = append(levels, level)
	}

	return levels
}

func depsSatisfied(deps []string, completed map[string]bool) bool {
	for _, d := range deps {
		if !completed[d] {
			return false
		}
	}
	return true
}
