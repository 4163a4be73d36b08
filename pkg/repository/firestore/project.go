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

type phaseDocument struct {
	ID                 string   `firestore:"id"`
	Number             int      `firestore:"number"`
	Name               string   `firestore:"name"`
	Description        string   `firestore:"description"`
	Duration           string   `firestore:"duration"`
	Status             string   `firestore:"status"`
	CompletionCriteria []string `firestore:"completion_criteria"`
}

type objectiveDocument struct {
	ID           string    `firestore:"id"`
	Name         string    `firestore:"name"`
	Description  string    `firestore:"description"`
	TargetValue  float64   `firestore:"target_value"`
	CurrentValue float64   `firestore:"current_value"`
	Unit         string    `firestore:"unit"`
	Deadline     time.Time `firestore:"deadline"`
	Status       string    `firestore:"status"`
}

type milestoneDocument struct {
	ID           string    `firestore:"id"`
	PhaseID      string    `firestore:"phase_id"`
	Name         string    `firestore:"name"`
	Description  string    `firestore:"description"`
	DueDate      time.Time `firestore:"due_date"`
	Status       string    `firestore:"status"`
	Deliverables []string  `firestore:"deliverables"`
	Dependencies []string  `firestore:"dependencies"`
}

type budgetCategoryDocument struct {
	Name   string  `firestore:"name"`
	Budget float64 `firestore:"budget"`
	Spent  float64 `firestore:"spent"`
}

type budgetDocument struct {
	Total      float64                  `firestore:"total"`
	Allocated  float64                  `firestore:"allocated"`
	Spent      float64                  `firestore:"spent"`
	Categories []budgetCategoryDocument `firestore:"categories"`
}

type projectDocument struct {
	ID          string              `firestore:"id"`
	Name        string              `firestore:"name"`
	Phase       phaseDocument       `firestore:"phase"`
	StartDate   time.Time           `firestore:"start_date"`
	EndDate     time.Time           `firestore:"end_date"`
	Status      string              `firestore:"status"`
	Objectives  []objectiveDocument `firestore:"objectives"`
	Milestones  []milestoneDocument `firestore:"milestones"`
	Budget      budgetDocument      `firestore:"budget"`
	Progress    int                 `firestore:"progress"`
	LastUpdated time.Time           `firestore:"last_updated"`
}

func toPhaseDocument(p *model.Phase) phaseDocument {
	return phaseDocument{
		ID:                 p.ID,
		Number:             p.Number,
		Name:               p.Name,
		Description:        p.Description,
		Duration:           p.Duration,
		Status:             string(p.Status),
		CompletionCriteria: p.CompletionCriteria,
	}
}

func (d *phaseDocument) toModel() model.Phase {
	return model.Phase{
		ID:                 d.ID,
		Number:             d.Number,
		Name:               d.Name,
		Description:        d.Description,
		Duration:           d.Duration,
		Status:             types.PhaseStatus(d.Status),
		CompletionCriteria: d.CompletionCriteria,
	}
}

func toProjectDocument(p *model.Project) *projectDocument {
	doc := &projectDocument{
		ID:          p.ID,
		Name:        p.Name,
		Phase:       toPhaseDocument(&p.Phase),
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      string(p.Status),
		Progress:    p.Progress,
		LastUpdated: p.LastUpdated,
		Budget: budgetDocument{
			Total:     p.Budget.Total,
			Allocated: p.Budget.Allocated,
			Spent:     p.Budget.Spent,
		},
	}
	for _, o := range p.Objectives {
		doc.Objectives = append(doc.Objectives, objectiveDocument{
			ID:           o.ID,
			Name:         o.Name,
			Description:  o.Description,
			TargetValue:  o.TargetValue,
			CurrentValue: o.CurrentValue,
			Unit:         o.Unit,
			Deadline:     o.Deadline,
			Status:       string(o.Status),
		})
	}
	for _, m := range p.Milestones {
		doc.Milestones = append(doc.Milestones, milestoneDocument{
			ID:           m.ID,
			PhaseID:      m.PhaseID,
			Name:         m.Name,
			Description:  m.Description,
			DueDate:      m.DueDate,
			Status:       string(m.Status),
			Deliverables: m.Deliverables,
			Dependencies: m.Dependencies,
		})
	}
	for _, c := range p.Budget.Categories {
		doc.Budget.Categories = append(doc.Budget.Categories, budgetCategoryDocument{
			Name:   c.Name,
			Budget: c.Budget,
			Spent:  c.Spent,
		})
	}
	return doc
}

func (d *projectDocument) toModel() *model.Project {
	project := &model.Project{
		ID:          d.ID,
		Name:        d.Name,
		Phase:       d.Phase.toModel(),
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Status:      types.ProjectStatus(d.Status),
		Progress:    d.Progress,
		LastUpdated: d.LastUpdated,
		Budget: model.Budget{
			Total:     d.Budget.Total,
			Allocated: d.Budget.Allocated,
			Spent:     d.Budget.Spent,
		},
	}
	project.Objectives = make([]model.Objective, 0, len(d.Objectives))
	for _, o := range d.Objectives {
		project.Objectives = append(project.Objectives, model.Objective{
			ID:           o.ID,
			Name:         o.Name,
			Description:  o.Description,
			TargetValue:  o.TargetValue,
			CurrentValue: o.CurrentValue,
			Unit:         o.Unit,
			Deadline:     o.Deadline,
			Status:       types.ObjectiveStatus(o.Status),
		})
	}
	project.Milestones = make([]model.Milestone, 0, len(d.Milestones))
	for _, m := range d.Milestones {
		project.Milestones = append(project.Milestones, model.Milestone{
			ID:           m.ID,
			PhaseID:      m.PhaseID,
			Name:         m.Name,
			Description:  m.Description,
			DueDate:      m.DueDate,
			Status:       types.MilestoneStatus(m.Status),
			Deliverables: m.Deliverables,
			Dependencies: m.Dependencies,
		})
	}
	project.Budget.Categories = make([]model.BudgetCategory, 0, len(d.Budget.Categories))
	for _, c := range d.Budget.Categories {
		project.Budget.Categories = append(project.Budget.Categories, model.BudgetCategory{
			Name:   c.Name,
			Budget: c.Budget,
			Spent:  c.Spent,
		})
	}
	return project
}

type projectRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newProjectRepository(client *firestore.Client) *projectRepository {
	return &projectRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *projectRepository) projectsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_projects"
	}
	return "projects"
}

func (r *projectRepository) phasesCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_phases"
	}
	return "phases"
}

// projectDoc is the fixed document ID; the dashboard tracks one project
func (r *projectRepository) projectDoc() string {
	return "current"
}

func (r *projectRepository) Get(ctx context.Context) (*model.Project, error) {
	docRef := r.client.Collection(r.projectsCollection()).Doc(r.projectDoc())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "project not initialized")
		}
		return nil, goerr.Wrap(err, "failed to get project")
	}

	var projectDoc projectDocument
	if err := doc.DataTo(&projectDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal project")
	}

	return projectDoc.toModel(), nil
}

func (r *projectRepository) Save(ctx context.Context, project *model.Project) error {
	docRef := r.client.Collection(r.projectsCollection()).Doc(r.projectDoc())
	if _, err := docRef.Set(ctx, toProjectDocument(project)); err != nil {
		return goerr.Wrap(err, "failed to save project", goerr.V("id", project.ID))
	}

	return nil
}

func (r *projectRepository) ListPhases(ctx context.Context) ([]*model.Phase, error) {
	iter := r.client.Collection(r.phasesCollection()).OrderBy("number", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var phases []*model.Phase
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate phases")
		}

		var phaseDoc phaseDocument
		if err := doc.DataTo(&phaseDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal phase")
		}

		phase := phaseDoc.toModel()
		phases = append(phases, &phase)
	}

	return phases, nil
}

func (r *projectRepository) SavePhases(ctx context.Context, phases []*model.Phase) error {
	for _, p := range phases {
		docRef := r.client.Collection(r.phasesCollection()).Doc(p.ID)
		doc := toPhaseDocument(p)
		if _, err := docRef.Set(ctx, &doc); err != nil {
			return goerr.Wrap(err, "failed to save phase", goerr.V("id", p.ID))
		}
	}

	return nil
}
