package planner

import (
	"math/rand"
	"testing"

	"github.com/danielcooke/planscan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopoSort_Linear(t *testing.T) {
	g := graphOf(
		task("T1", 1),
		task("T2", 1, "T1"),
		task("T3", 1, "T2"),
		task("T4", 1, "T3"),
	)

	order, err := TopoSort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"T1", "T2", "T3", "T4"}, order)
}

func TestTopoSort_Empty(t *testing.T) {
	order, err := TopoSort(graphOf())
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopoSort_SingleTask(t *testing.T) {
	order, err := TopoSort(graphOf(task("T1", 1)))
	require.NoError(t, err)
	assert.Equal(t, []string{"T1"}, order)
}

func TestTopoSort_FailsOnCycle(t *testing.T) {
	g := graphOf(
		task("T1", 1, "T2"),
		task("T2", 1, "T1"),
	)

	order, err := TopoSort(g)
	assert.Nil(t, order)

	var cycErr *CyclicGraphError
	require.ErrorAs(t, err, &cycErr)
	assert.NotEmpty(t, cycErr.Cycles)
}

func TestTopoSort_DanglingReferenceFailsLikeCycle(t *testing.T) {
	// T2 depends on an ID no task resolves: it can never be scheduled,
	// and the short sort result surfaces as the same error as a cycle.
	g := graphOf(
		task("T1", 1),
		task("T2", 1, "T99"),
	)

	order, err := TopoSort(g)
	assert.Nil(t, order)

	var cycErr *CyclicGraphError
	require.ErrorAs(t, err, &cycErr)
	assert.Empty(t, cycErr.Cycles, "no true cycle exists, only the unresolved reference")
}

// TestTopoSort_PrerequisiteBeforeDependent property-tests the ordering
// invariant on randomly generated layered DAGs: every dependency appears
// earlier in the output than the task declaring it.
func TestTopoSort_PrerequisiteBeforeDependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		tasks := randomDAG(rng)
		g := BuildGraph(domain.NewTaskSet(tasks))

		order, err := TopoSort(g)
		require.NoError(t, err, "trial %d", trial)
		require.Len(t, order, len(tasks), "trial %d", trial)

		pos := make(map[string]int, len(order))
		for i, id := range order {
			pos[id] = i
		}
		for _, tk := range tasks {
			for _, dep := range tk.Dependencies {
				assert.Less(t, pos[dep], pos[tk.ID],
					"trial %d: %s must come before %s", trial, dep, tk.ID)
			}
		}
	}
}

// randomDAG builds an acyclic task set by only allowing edges to earlier
// tasks. Durations vary from 1 to 5.
func randomDAG(rng *rand.Rand) []domain.Task {
	n := rng.Intn(12) + 1
	tasks := make([]domain.Task, 0, n)
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := "T" + string(rune('A'+i))
		var deps []string
		for _, candidate := range ids {
			if rng.Intn(3) == 0 {
				deps = append(deps, candidate)
			}
		}
		tasks = append(tasks, task(id, rng.Intn(5)+1, deps...))
		ids = append(ids, id)
	}
	return tasks
}
