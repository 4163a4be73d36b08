package interfaces

import (
	"context"

	"github.com/baysgaia/cashmax/pkg/domain/model"
)

// ProjectRepository holds the single tracked project and its phase catalog
type ProjectRepository interface {
	// Get retrieves the project
	Get(ctx context.Context) (*model.Project, error)

	// Save replaces the project
	Save(ctx context.Context, project *model.Project) error

	// ListPhases retrieves all defined phases in order
	ListPhases(ctx context.Context) ([]*model.Phase, error)

	// SavePhases replaces the phase catalog
	SavePhases(ctx context.Context, phases []*model.Phase) error
}
