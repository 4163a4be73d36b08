package interfaces

import (
	"context"

	"github.com/baysgaia/cashmax/pkg/domain/model"
)

type RiskRepository interface {
	// Create stores a new risk
	Create(ctx context.Context, risk *model.Risk) (*model.Risk, error)

	// Get retrieves a risk by ID
	Get(ctx context.Context, id string) (*model.Risk, error)

	// List retrieves all risks
	List(ctx context.Context) ([]*model.Risk, error)

	// Update replaces an existing risk
	Update(ctx context.Context, risk *model.Risk) (*model.Risk, error)

	// ListCheckpoints retrieves all compliance checkpoints
	ListCheckpoints(ctx context.Context) ([]*model.ComplianceCheckpoint, error)

	// PutCheckpoint stores a compliance checkpoint
	PutCheckpoint(ctx context.Context, cp *model.ComplianceCheckpoint) error

	// ListPolicies retrieves all governance policies
	ListPolicies(ctx context.Context) ([]*model.GovernancePolicy, error)

	// PutPolicy stores a governance policy
	PutPolicy(ctx context.Context, policy *model.GovernancePolicy) error
}
