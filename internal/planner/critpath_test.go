package planner

import (
	"math/rand"
	"testing"

	"github.com/danielcooke/planscan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func criticalPathOf(tasks ...domain.Task) ([]string, int) {
	set := domain.NewTaskSet(tasks)
	g := BuildGraph(set)
	order, err := TopoSort(g)
	if err != nil {
		panic(err)
	}
	return CriticalPath(g, set.ByID(), order)
}

func TestCriticalPath_LinearUnitDurations(t *testing.T) {
	path, total := criticalPathOf(
		task("T1", 1),
		task("T2", 1, "T1"),
		task("T3", 1, "T2"),
		task("T4", 1, "T3"),
	)
	assert.Equal(t, []string{"T1", "T2", "T3", "T4"}, path)
	assert.Equal(t, 4, total)
}

func TestCriticalPath_PicksLongestChain(t *testing.T) {
	// T3 is the slow branch: 2 + 5 + 2 = 9 beats 2 + 1 + 2.
	path, total := criticalPathOf(
		task("T1", 2),
		task("T2", 1, "T1"),
		task("T3", 5, "T1"),
		task("T4", 2, "T2", "T3"),
	)
	assert.Equal(t, []string{"T1", "T3", "T4"}, path)
	assert.Equal(t, 9, total)
}

func TestCriticalPath_Empty(t *testing.T) {
	path, total := criticalPathOf()
	assert.Empty(t, path)
	assert.Equal(t, 0, total)
}

func TestCriticalPath_TieBreakFirstDeclaredDependency(t *testing.T) {
	// Both branches finish at time 1; reconstruction takes the first
	// dependency in declared order.
	path, total := criticalPathOf(
		task("T1", 1),
		task("T2", 1),
		task("T3", 1, "T1", "T2"),
	)
	assert.Equal(t, []string{"T1", "T3"}, path)
	assert.Equal(t, 2, total)
}

// TestCriticalPath_TotalTimeDominatesAllFinishes checks the makespan
// property on random DAGs: the total equals the maximum earliest finish
// and is never below any individual task's finish time.
func TestCriticalPath_TotalTimeDominatesAllFinishes(t *testing.T) {
	rng := rand.New(rand.NewSource(23))

	for trial := 0; trial < 100; trial++ {
		tasks := randomDAG(rng)
		set := domain.NewTaskSet(tasks)
		g := BuildGraph(set)
		order, err := TopoSort(g)
		require.NoError(t, err, "trial %d", trial)

		path, total := CriticalPath(g, set.ByID(), order)

		earliest := make(map[string]int, len(order))
		maxFinish := 0
		for _, id := range order {
			start := 0
			for _, dep := range set.ByID()[id].Dependencies {
				if end := earliest[dep] + set.ByID()[dep].EstimatedTime; end > start {
					start = end
				}
			}
			earliest[id] = start
			if finish := start + set.ByID()[id].EstimatedTime; finish > maxFinish {
				maxFinish = finish
			}
		}

		assert.Equal(t, maxFinish, total, "trial %d", trial)
		for _, id := range order {
			assert.GreaterOrEqual(t, total, earliest[id]+set.ByID()[id].EstimatedTime, "trial %d", trial)
		}

		// The reconstructed chain must be a real dependency chain whose
		// durations sum to the total.
		sum := 0
		for _, id := range path {
			sum += set.ByID()[id].EstimatedTime
		}
		assert.Equal(t, total, sum, "trial %d: path durations sum to the makespan", trial)
		for i := 1; i < len(path); i++ {
			assert.Contains(t, set.ByID()[path[i]].Dependencies, path[i-1],
				"trial %d: consecutive path entries must be dependency edges", trial)
		}
	}
}
