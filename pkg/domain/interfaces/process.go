package interfaces

import (
	"context"

	"github.com/baysgaia/cashmax/pkg/domain/model"
)

type ProcessRepository interface {
	// Create stores a new business process
	Create(ctx context.Context, process *model.BusinessProcess) (*model.BusinessProcess, error)

	// Get retrieves a business process by ID
	Get(ctx context.Context, id string) (*model.BusinessProcess, error)

	// List retrieves all business processes
	List(ctx context.Context) ([]*model.BusinessProcess, error)

	// Update replaces an existing business process
	Update(ctx context.Context, process *model.BusinessProcess) (*model.BusinessProcess, error)

	// ListTemplates retrieves the workflow template catalog
	ListTemplates(ctx context.Context) ([]*model.WorkflowTemplate, error)

	// GetTemplate retrieves a workflow template by ID
	GetTemplate(ctx context.Context, id string) (*model.WorkflowTemplate, error)

	// PutTemplate stores a workflow template
	PutTemplate(ctx context.Context, tmpl *model.WorkflowTemplate) error
}
