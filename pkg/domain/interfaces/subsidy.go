package interfaces

import (
	"context"

	"github.com/baysgaia/cashmax/pkg/domain/model"
)

type SubsidyRepository interface {
	// Create stores a new subsidy
	Create(ctx context.Context, subsidy *model.Subsidy) (*model.Subsidy, error)

	// Get retrieves a subsidy by ID
	Get(ctx context.Context, id string) (*model.Subsidy, error)

	// List retrieves all subsidies
	List(ctx context.Context) ([]*model.Subsidy, error)

	// Update replaces an existing subsidy
	Update(ctx context.Context, subsidy *model.Subsidy) (*model.Subsidy, error)
}
