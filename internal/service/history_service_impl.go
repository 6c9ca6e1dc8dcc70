package service

import (
	"context"
	"fmt"

	"github.com/danielcooke/planscan/internal/domain"
	"github.com/danielcooke/planscan/internal/repository"
)

// HistoryServiceImpl implements HistoryService over the run repository.
type HistoryServiceImpl struct {
	runs repository.RunRepo
}

// NewHistoryService creates a HistoryService.
func NewHistoryService(runs repository.RunRepo) *HistoryServiceImpl {
	return &HistoryServiceImpl{runs: runs}
}

func (s *HistoryServiceImpl) ListRuns(ctx context.Context, limit int) ([]*domain.AnalysisRun, error) {
	return s.runs.ListRecent(ctx, limit)
}

// GetRun resolves an exact run ID or a unique ID prefix.
func (s *HistoryServiceImpl) GetRun(ctx context.Context, id string) (*domain.AnalysisRun, error) {
	if run, err := s.runs.GetByID(ctx, id); err == nil {
		return run, nil
	}

	runs, err := s.runs.ListRecent(ctx, 1000)
	if err != nil {
		return nil, err
	}

	var matches []*domain.AnalysisRun
	for _, run := range runs {
		if len(id) > 0 && len(run.ID) >= len(id) && run.ID[:len(id)] == id {
			matches = append(matches, run)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("analysis run not found: %q", id)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("run ID prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}

func (s *HistoryServiceImpl) ClearRuns(ctx context.Context) error {
	return s.runs.DeleteAll(ctx)
}
