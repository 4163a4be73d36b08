package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/domain/types"
)

type mitigationActionDocument struct {
	ID            string    `firestore:"id"`
	RiskID        string    `firestore:"risk_id"`
	Action        string    `firestore:"action"`
	DueDate       time.Time `firestore:"due_date"`
	Status        string    `firestore:"status"`
	Owner         string    `firestore:"owner"`
	Cost          float64   `firestore:"cost"`
	Effectiveness string    `firestore:"effectiveness"`
}

type kriDocument struct {
	ID           string    `firestore:"id"`
	RiskID       string    `firestore:"risk_id"`
	Metric       string    `firestore:"metric"`
	Threshold    float64   `firestore:"threshold"`
	CurrentValue float64   `firestore:"current_value"`
	Trend        string    `firestore:"trend"`
	LastUpdated  time.Time `firestore:"last_updated"`
}

type riskDocument struct {
	ID                string                     `firestore:"id"`
	Category          string                     `firestore:"category"`
	Name              string                     `firestore:"name"`
	Description       string                     `firestore:"description"`
	Impact            int                        `firestore:"impact"`
	Probability       int                        `firestore:"probability"`
	RiskScore         int                        `firestore:"risk_score"`
	Status            string                     `firestore:"status"`
	Owner             string                     `firestore:"owner"`
	MitigationActions []mitigationActionDocument `firestore:"mitigation_actions"`
	KRI               []kriDocument              `firestore:"kri"`
	LastAssessment    time.Time                  `firestore:"last_assessment"`
	NextReview        time.Time                  `firestore:"next_review"`
}

type checkpointDocument struct {
	ID               string     `firestore:"id"`
	Name             string     `firestore:"name"`
	Category         string     `firestore:"category"`
	Frequency        string     `firestore:"frequency"`
	LastChecked      *time.Time `firestore:"last_checked"`
	NextCheck        time.Time  `firestore:"next_check"`
	Status           string     `firestore:"status"`
	Evidence         []string   `firestore:"evidence"`
	ResponsibleParty string     `firestore:"responsible_party"`
}

func toRiskDocument(r *model.Risk) *riskDocument {
	doc := &riskDocument{
		ID:             r.ID,
		Category:       string(r.Category),
		Name:           r.Name,
		Description:    r.Description,
		Impact:         int(r.Impact),
		Probability:    int(r.Probability),
		RiskScore:      r.Score(),
		Status:         string(r.Status),
		Owner:          r.Owner,
		LastAssessment: r.LastAssessment,
		NextReview:     r.NextReview,
	}
	for _, a := range r.MitigationActions {
		doc.MitigationActions = append(doc.MitigationActions, mitigationActionDocument{
			ID:            a.ID,
			RiskID:        a.RiskID,
			Action:        a.Action,
			DueDate:       a.DueDate,
			Status:        string(a.Status),
			Owner:         a.Owner,
			Cost:          a.Cost,
			Effectiveness: string(a.Effectiveness),
		})
	}
	for _, k := range r.KRI {
		doc.KRI = append(doc.KRI, kriDocument{
			ID:           k.ID,
			RiskID:       k.RiskID,
			Metric:       k.Metric,
			Threshold:    k.Threshold,
			CurrentValue: k.CurrentValue,
			Trend:        string(k.Trend),
			LastUpdated:  k.LastUpdated,
		})
	}
	return doc
}

func (d *riskDocument) toModel() *model.Risk {
	risk := &model.Risk{
		ID:             d.ID,
		Category:       types.RiskCategory(d.Category),
		Name:           d.Name,
		Description:    d.Description,
		Impact:         types.Level(d.Impact),
		Probability:    types.Level(d.Probability),
		RiskScore:      d.RiskScore,
		Status:         types.RiskStatus(d.Status),
		Owner:          d.Owner,
		LastAssessment: d.LastAssessment,
		NextReview:     d.NextReview,
	}
	risk.MitigationActions = make([]model.MitigationAction, 0, len(d.MitigationActions))
	for _, a := range d.MitigationActions {
		risk.MitigationActions = append(risk.MitigationActions, model.MitigationAction{
			ID:            a.ID,
			RiskID:        a.RiskID,
			Action:        a.Action,
			DueDate:       a.DueDate,
			Status:        types.MitigationStatus(a.Status),
			Owner:         a.Owner,
			Cost:          a.Cost,
			Effectiveness: types.Effectiveness(a.Effectiveness),
		})
	}
	risk.KRI = make([]model.KeyRiskIndicator, 0, len(d.KRI))
	for _, k := range d.KRI {
		risk.KRI = append(risk.KRI, model.KeyRiskIndicator{
			ID:           k.ID,
			RiskID:       k.RiskID,
			Metric:       k.Metric,
			Threshold:    k.Threshold,
			CurrentValue: k.CurrentValue,
			Trend:        types.KRITrend(k.Trend),
			LastUpdated:  k.LastUpdated,
		})
	}
	return risk
}

type policyDocumentDocument struct {
	ID         string    `firestore:"id"`
	PolicyID   string    `firestore:"policy_id"`
	Name       string    `firestore:"name"`
	Version    string    `firestore:"version"`
	URL        string    `firestore:"url"`
	UploadedAt time.Time `firestore:"uploaded_at"`
}

type policyDocument struct {
	ID            string                   `firestore:"id"`
	Name          string                   `firestore:"name"`
	Category      string                   `firestore:"category"`
	Description   string                   `firestore:"description"`
	EffectiveDate time.Time                `firestore:"effective_date"`
	LastReviewed  time.Time                `firestore:"last_reviewed"`
	NextReview    time.Time                `firestore:"next_review"`
	Owner         string                   `firestore:"owner"`
	Status        string                   `firestore:"status"`
	Documents     []policyDocumentDocument `firestore:"documents"`
}

type riskRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRiskRepository(client *firestore.Client) *riskRepository {
	return &riskRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *riskRepository) risksCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_risks"
	}
	return "risks"
}

func (r *riskRepository) policiesCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_governance_policies"
	}
	return "governance_policies"
}

func (r *riskRepository) checkpointsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_compliance_checkpoints"
	}
	return "compliance_checkpoints"
}

func (r *riskRepository) Create(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	doc := toRiskDocument(risk)

	docRef := r.client.Collection(r.risksCollection()).Doc(doc.ID)
	if _, err := docRef.Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.New("risk already exists", goerr.V("id", doc.ID))
		}
		return nil, goerr.Wrap(err, "failed to create risk", goerr.V("id", doc.ID))
	}

	return doc.toModel(), nil
}

func (r *riskRepository) Get(ctx context.Context, id string) (*model.Risk, error) {
	docRef := r.client.Collection(r.risksCollection()).Doc(id)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get risk", goerr.V("id", id))
	}

	var riskDoc riskDocument
	if err := doc.DataTo(&riskDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal risk", goerr.V("id", id))
	}

	return riskDoc.toModel(), nil
}

func (r *riskRepository) List(ctx context.Context) ([]*model.Risk, error) {
	iter := r.client.Collection(r.risksCollection()).OrderBy("id", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var risks []*model.Risk
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate risks")
		}

		var riskDoc riskDocument
		if err := doc.DataTo(&riskDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal risk")
		}

		risks = append(risks, riskDoc.toModel())
	}

	return risks, nil
}

func (r *riskRepository) Update(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	docRef := r.client.Collection(r.risksCollection()).Doc(risk.ID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", risk.ID))
		}
		return nil, goerr.Wrap(err, "failed to get risk", goerr.V("id", risk.ID))
	}

	doc := toRiskDocument(risk)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update risk", goerr.V("id", risk.ID))
	}

	return doc.toModel(), nil
}

func (r *riskRepository) ListCheckpoints(ctx context.Context) ([]*model.ComplianceCheckpoint, error) {
	iter := r.client.Collection(r.checkpointsCollection()).OrderBy("id", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var cps []*model.ComplianceCheckpoint
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate compliance checkpoints")
		}

		var cpDoc checkpointDocument
		if err := doc.DataTo(&cpDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal compliance checkpoint")
		}

		cps = append(cps, &model.ComplianceCheckpoint{
			ID:               cpDoc.ID,
			Name:             cpDoc.Name,
			Category:         cpDoc.Category,
			Frequency:        cpDoc.Frequency,
			LastChecked:      cpDoc.LastChecked,
			NextCheck:        cpDoc.NextCheck,
			Status:           types.ComplianceStatus(cpDoc.Status),
			Evidence:         cpDoc.Evidence,
			ResponsibleParty: cpDoc.ResponsibleParty,
		})
	}

	return cps, nil
}

func (r *riskRepository) PutCheckpoint(ctx context.Context, cp *model.ComplianceCheckpoint) error {
	doc := &checkpointDocument{
		ID:               cp.ID,
		Name:             cp.Name,
		Category:         cp.Category,
		Frequency:        cp.Frequency,
		LastChecked:      cp.LastChecked,
		NextCheck:        cp.NextCheck,
		Status:           string(cp.Status),
		Evidence:         cp.Evidence,
		ResponsibleParty: cp.ResponsibleParty,
	}

	docRef := r.client.Collection(r.checkpointsCollection()).Doc(cp.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put compliance checkpoint", goerr.V("id", cp.ID))
	}

	return nil
}

func (r *riskRepository) ListPolicies(ctx context.Context) ([]*model.GovernancePolicy, error) {
	iter := r.client.Collection(r.policiesCollection()).OrderBy("id", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var policies []*model.GovernancePolicy
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate governance policies")
		}

		var polDoc policyDocument
		if err := doc.DataTo(&polDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal governance policy")
		}

		policy := &model.GovernancePolicy{
			ID:            polDoc.ID,
			Name:          polDoc.Name,
			Category:      polDoc.Category,
			Description:   polDoc.Description,
			EffectiveDate: polDoc.EffectiveDate,
			LastReviewed:  polDoc.LastReviewed,
			NextReview:    polDoc.NextReview,
			Owner:         polDoc.Owner,
			Status:        types.PolicyStatus(polDoc.Status),
		}
		policy.Documents = make([]model.PolicyDocument, 0, len(polDoc.Documents))
		for _, d := range polDoc.Documents {
			policy.Documents = append(policy.Documents, model.PolicyDocument{
				ID:         d.ID,
				PolicyID:   d.PolicyID,
				Name:       d.Name,
				Version:    d.Version,
				URL:        d.URL,
				UploadedAt: d.UploadedAt,
			})
		}
		policies = append(policies, policy)
	}

	return policies, nil
}

func (r *riskRepository) PutPolicy(ctx context.Context, policy *model.GovernancePolicy) error {
	doc := &policyDocument{
		ID:            policy.ID,
		Name:          policy.Name,
		Category:      policy.Category,
		Description:   policy.Description,
		EffectiveDate: policy.EffectiveDate,
		LastReviewed:  policy.LastReviewed,
		NextReview:    policy.NextReview,
		Owner:         policy.Owner,
		Status:        string(policy.Status),
	}
	for _, d := range policy.Documents {
		doc.Documents = append(doc.Documents, policyDocumentDocument{
			ID:         d.ID,
			PolicyID:   d.PolicyID,
			Name:       d.Name,
			Version:    d.Version,
			URL:        d.URL,
			UploadedAt: d.UploadedAt,
		})
	}

	docRef := r.client.Collection(r.policiesCollection()).Doc(policy.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put governance policy", goerr.V("id", policy.ID))
	}

	return nil
}
