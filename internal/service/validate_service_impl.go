package service

import (
	"context"
	"fmt"
	"os"

	"github.com/danielcooke/planscan/internal/pseudocode"
)

// ValidationServiceImpl implements ValidationService.
type ValidationServiceImpl struct{}

// NewValidationService creates a ValidationService.
func NewValidationService() *ValidationServiceImpl {
	return &ValidationServiceImpl{}
}

func (s *ValidationServiceImpl) ValidateFile(ctx context.Context, path string) (*ValidateResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pseudocode file: %w", err)
	}

	return &ValidateResult{
		SourcePath: path,
		Issues:     pseudocode.Validate(string(content)),
	}, nil
}
