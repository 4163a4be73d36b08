package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/baysgaia/cashmax/pkg/domain/model"
)

type riskRepository struct {
	mu          sync.RWMutex
	risks       map[string]*model.Risk
	checkpoints map[string]*model.ComplianceCheckpoint
	policies    map[string]*model.GovernancePolicy
	order       []string
	cpOrder     []string
	polOrder    []string
}

func newRiskRepository() *riskRepository {
	return &riskRepository{
		risks:       make(map[string]*model.Risk),
		checkpoints: make(map[string]*model.ComplianceCheckpoint),
		policies:    make(map[string]*model.GovernancePolicy),
	}
}

func copyRisk(r *model.Risk) *model.Risk {
	copied := *r
	copied.MitigationActions = make([]model.MitigationAction, len(r.MitigationActions))
	copy(copied.MitigationActions, r.MitigationActions)
	copied.KRI = make([]model.KeyRiskIndicator, len(r.KRI))
	copy(copied.KRI, r.KRI)
	return &copied
}

func (r *riskRepository) Create(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.risks[risk.ID]; exists {
		return nil, goerr.New("risk already exists", goerr.V("id", risk.ID))
	}

	created := copyRisk(risk)
	created.RiskScore = created.Score()
	r.risks[created.ID] = created
	r.order = append(r.order, created.ID)

	return copyRisk(created), nil
}

func (r *riskRepository) Get(ctx context.Context, id string) (*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risk, exists := r.risks[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	return copyRisk(risk), nil
}

func (r *riskRepository) List(ctx context.Context) ([]*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risks := make([]*model.Risk, 0, len(r.risks))
	for _, id := range r.order {
		risks = append(risks, copyRisk(r.risks[id]))
	}

	return risks, nil
}

func (r *riskRepository) Update(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.risks[risk.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", risk.ID))
	}

	updated := copyRisk(risk)
	updated.RiskScore = updated.Score()
	r.risks[updated.ID] = updated

	return copyRisk(updated), nil
}

func (r *riskRepository) ListCheckpoints(ctx context.Context) ([]*model.ComplianceCheckpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cps := make([]*model.ComplianceCheckpoint, 0, len(r.checkpoints))
	for _, id := range r.cpOrder {
		copied := *r.checkpoints[id]
		cps = append(cps, &copied)
	}

	return cps, nil
}

func (r *riskRepository) PutCheckpoint(ctx context.Context, cp *model.ComplianceCheckpoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.checkpoints[cp.ID]; !exists {
		r.cpOrder = append(r.cpOrder, cp.ID)
	}
	copied := *cp
	r.checkpoints[cp.ID] = &copied

	return nil
}

func copyPolicy(p *model.GovernancePolicy) *model.GovernancePolicy {
	copied := *p
	copied.Documents = make([]model.PolicyDocument, len(p.Documents))
	copy(copied.Documents, p.Documents)
	return &copied
}

func (r *riskRepository) ListPolicies(ctx context.Context) ([]*model.GovernancePolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	policies := make([]*model.GovernancePolicy, 0, len(r.policies))
	for _, id := range r.polOrder {
		policies = append(policies, copyPolicy(r.policies[id]))
	}

	return policies, nil
}

func (r *riskRepository) PutPolicy(ctx context.Context, policy *model.GovernancePolicy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.policies[policy.ID]; !exists {
		r.polOrder = append(r.polOrder, policy.ID)
	}
	r.policies[policy.ID] = copyPolicy(policy)

	return nil
}
