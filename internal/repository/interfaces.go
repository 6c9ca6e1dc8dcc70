package repository

import (
	"context"

	"github.com/danielcooke/planscan/internal/domain"
)

// RunRepo stores completed analysis runs.
type RunRepo interface {
	Create(ctx context.Context, run *domain.AnalysisRun) error
	GetByID(ctx context.Context, id string) (*domain.AnalysisRun, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisRun, error)
	DeleteAll(ctx context.Context) error
}
