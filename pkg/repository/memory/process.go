package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/baysgaia/cashmax/pkg/domain/model"
)

type processRepository struct {
	mu        sync.RWMutex
	processes map[string]*model.BusinessProcess
	templates map[string]*model.WorkflowTemplate
	order     []string
	tmplOrder []string
}

func newProcessRepository() *processRepository {
	return &processRepository{
		processes: make(map[string]*model.BusinessProcess),
		templates: make(map[string]*model.WorkflowTemplate),
	}
}

func copyProcess(p *model.BusinessProcess) *model.BusinessProcess {
	copied := *p
	copied.Steps = make([]model.ProcessStep, len(p.Steps))
	copy(copied.Steps, p.Steps)
	for i := range copied.Steps {
		deps := make([]string, len(p.Steps[i].Dependencies))
		copy(deps, p.Steps[i].Dependencies)
		copied.Steps[i].Dependencies = deps
	}
	return &copied
}

func (r *processRepository) Create(ctx context.Context, process *model.BusinessProcess) (*model.BusinessProcess, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.processes[process.ID]; exists {
		return nil, goerr.New("process already exists", goerr.V("id", process.ID))
	}

	created := copyProcess(process)
	created.SyncStatus()
	r.processes[created.ID] = created
	r.order = append(r.order, created.ID)

	return copyProcess(created), nil
}

func (r *processRepository) Get(ctx context.Context, id string) (*model.BusinessProcess, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	process, exists := r.processes[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "process not found", goerr.V("id", id))
	}

	return copyProcess(process), nil
}

func (r *processRepository) List(ctx context.Context) ([]*model.BusinessProcess, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	processes := make([]*model.BusinessProcess, 0, len(r.processes))
	for _, id := range r.order {
		processes = append(processes, copyProcess(r.processes[id]))
	}

	return processes, nil
}

func (r *processRepository) Update(ctx context.Context, process *model.BusinessProcess) (*model.BusinessProcess, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.processes[process.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "process not found", goerr.V("id", process.ID))
	}

	updated := copyProcess(process)
	updated.SyncStatus()
	r.processes[updated.ID] = updated

	return copyProcess(updated), nil
}

func (r *processRepository) ListTemplates(ctx context.Context) ([]*model.WorkflowTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	templates := make([]*model.WorkflowTemplate, 0, len(r.templates))
	for _, id := range r.tmplOrder {
		copied := *r.templates[id]
		templates = append(templates, &copied)
	}

	return templates, nil
}

func (r *processRepository) GetTemplate(ctx context.Context, id string) (*model.WorkflowTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tmpl, exists := r.templates[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "workflow template not found", goerr.V("id", id))
	}

	copied := *tmpl
	return &copied, nil
}

func (r *processRepository) PutTemplate(ctx context.Context, tmpl *model.WorkflowTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[tmpl.ID]; !exists {
		r.tmplOrder = append(r.tmplOrder, tmpl.ID)
	}
	copied := *tmpl
	r.templates[tmpl.ID] = &copied

	return nil
}
