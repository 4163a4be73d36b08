package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/baysgaia/cashmax/pkg/domain/model"
)

type subsidyRepository struct {
	mu        sync.RWMutex
	subsidies map[string]*model.Subsidy
	order     []string
}

func newSubsidyRepository() *subsidyRepository {
	return &subsidyRepository{
		subsidies: make(map[string]*model.Subsidy),
	}
}

func copySubsidy(s *model.Subsidy) *model.Subsidy {
	copied := *s
	copied.Documents = make([]model.SubsidyDocument, len(s.Documents))
	copy(copied.Documents, s.Documents)
	copied.Timeline = make([]model.SubsidyEvent, len(s.Timeline))
	copy(copied.Timeline, s.Timeline)
	copied.Requirements = make([]string, len(s.Requirements))
	copy(copied.Requirements, s.Requirements)
	return &copied
}

func (r *subsidyRepository) Create(ctx context.Context, subsidy *model.Subsidy) (*model.Subsidy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.subsidies[subsidy.ID]; exists {
		return nil, goerr.New("subsidy already exists", goerr.V("id", subsidy.ID))
	}

	created := copySubsidy(subsidy)
	r.subsidies[created.ID] = created
	r.order = append(r.order, created.ID)

	return copySubsidy(created), nil
}

func (r *subsidyRepository) Get(ctx context.Context, id string) (*model.Subsidy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subsidy, exists := r.subsidies[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "subsidy not found", goerr.V("id", id))
	}

	return copySubsidy(subsidy), nil
}

func (r *subsidyRepository) List(ctx context.Context) ([]*model.Subsidy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subsidies := make([]*model.Subsidy, 0, len(r.subsidies))
	for _, id := range r.order {
		subsidies = append(subsidies, copySubsidy(r.subsidies[id]))
	}

	return subsidies, nil
}

func (r *subsidyRepository) Update(ctx context.Context, subsidy *model.Subsidy) (*model.Subsidy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.subsidies[subsidy.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "subsidy not found", goerr.V("id", subsidy.ID))
	}

	updated := copySubsidy(subsidy)
	r.subsidies[updated.ID] = updated

	return copySubsidy(updated), nil
}
