package domain

// Task is the atomic unit of work extracted from an instruction document.
// Identity is the ID alone: two tasks with the same ID are the same task
// regardless of their other fields.
type Task struct {
	ID            string
	Name          string
	Dependencies  []string
	EstimatedTime int
	Priority      int
}

// NewTask creates a task with the default estimate of one time unit.
func NewTask(id, name string, deps []string) Task {
	return Task{
		ID:            id,
		Name:          name,
		Dependencies:  deps,
		EstimatedTime: 1,
		Priority:      1,
	}
}

// TaskSet holds tasks keyed by ID while preserving first-insertion order.
// Inserting a duplicate ID replaces the stored task but keeps its original
// position (last write wins).
type TaskSet struct {
	byID  map[string]Task
	order []string
}

// NewTaskSet builds a TaskSet from a slice of tasks.
func NewTaskSet(tasks []Task) *TaskSet {
	s := &TaskSet{byID: make(map[string]Task, len(tasks))}
	for _, t := range tasks {
		s.Add(t)
	}
	return s
}

// Add inserts or replaces a task by ID.
func (s *TaskSet) Add(t Task) {
	if _, ok := s.byID[t.ID]; !ok {
		s.order = append(s.order, t.ID)
	}
	s.byID[t.ID] = t
}

// Get returns the task with the given ID.
func (s *TaskSet) Get(id string) (Task, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// Len returns the number of distinct tasks.
func (s *TaskSet) Len() int {
	return len(s.order)
}

// IDs returns task IDs in insertion order.
func (s *TaskSet) IDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// Tasks returns the tasks in insertion order.
func (s *TaskSet) Tasks() []Task {
	out := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// ByID returns the underlying ID-to-task mapping. The map is shared, not
// copied; callers must treat it as read-only.
func (s *TaskSet) ByID() map[string]Task {
	return s.byID
}
