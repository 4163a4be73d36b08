package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/baysgaia/cashmax/pkg/domain/model"
)

type projectRepository struct {
	mu      sync.RWMutex
	project *model.Project
	phases  []*model.Phase
}

func newProjectRepository() *projectRepository {
	return &projectRepository{}
}

func copyProject(p *model.Project) *model.Project {
	copied := *p
	copied.Objectives = make([]model.Objective, len(p.Objectives))
	copy(copied.Objectives, p.Objectives)
	copied.Milestones = make([]model.Milestone, len(p.Milestones))
	copy(copied.Milestones, p.Milestones)
	copied.Budget.Categories = make([]model.BudgetCategory, len(p.Budget.Categories))
	copy(copied.Budget.Categories, p.Budget.Categories)
	return &copied
}

func (r *projectRepository) Get(ctx context.Context) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.project == nil {
		return nil, goerr.Wrap(ErrNotFound, "project not initialized")
	}

	return copyProject(r.project), nil
}

func (r *projectRepository) Save(ctx context.Context, project *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.project = copyProject(project)
	return nil
}

func (r *projectRepository) ListPhases(ctx context.Context) ([]*model.Phase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	phases := make([]*model.Phase, 0, len(r.phases))
	for _, p := range r.phases {
		copied := *p
		phases = append(phases, &copied)
	}

	return phases, nil
}

func (r *projectRepository) SavePhases(ctx context.Context, phases []*model.Phase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.phases = make([]*model.Phase, 0, len(phases))
	for _, p := range phases {
		copied := *p
		r.phases = append(r.phases, &copied)
	}

	return nil
}
