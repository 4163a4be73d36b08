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

type processStepDocument struct {
	ID            string   `firestore:"id"`
	ProcessID     string   `firestore:"process_id"`
	Name          string   `firestore:"name"`
	Description   string   `firestore:"description"`
	IsAutomated   bool     `firestore:"is_automated"`
	ExecutionTime float64  `firestore:"execution_time"`
	Dependencies  []string `firestore:"dependencies"`
}

type processMetricsDocument struct {
	AverageExecutionTime float64    `firestore:"average_execution_time"`
	ErrorRate            float64    `firestore:"error_rate"`
	CompletionRate       float64    `firestore:"completion_rate"`
	CostSavings          float64    `firestore:"cost_savings"`
	LastExecuted         *time.Time `firestore:"last_executed"`
}

type processDocument struct {
	ID              string                 `firestore:"id"`
	Name            string                 `firestore:"name"`
	Type            string                 `firestore:"type"`
	Status          string                 `firestore:"status"`
	AutomationLevel int                    `firestore:"automation_level"`
	Steps           []processStepDocument  `firestore:"steps"`
	Metrics         processMetricsDocument `firestore:"metrics"`
}

type workflowTemplateDocument struct {
	ID               string  `firestore:"id"`
	Name             string  `firestore:"name"`
	Category         string  `firestore:"category"`
	Description      string  `firestore:"description"`
	EstimatedSavings float64 `firestore:"estimated_savings"`
}

func toProcessDocument(p *model.BusinessProcess) *processDocument {
	doc := &processDocument{
		ID:              p.ID,
		Name:            p.Name,
		Type:            string(p.Type),
		Status:          string(types.ProcessStatusFromLevel(p.AutomationLevel)),
		AutomationLevel: p.AutomationLevel,
		Metrics: processMetricsDocument{
			AverageExecutionTime: p.Metrics.AverageExecutionTime,
			ErrorRate:            p.Metrics.ErrorRate,
			CompletionRate:       p.Metrics.CompletionRate,
			CostSavings:          p.Metrics.CostSavings,
			LastExecuted:         p.Metrics.LastExecuted,
		},
	}
	for _, s := range p.Steps {
		doc.Steps = append(doc.Steps, processStepDocument{
			ID:            s.ID,
			ProcessID:     s.ProcessID,
			Name:          s.Name,
			Description:   s.Description,
			IsAutomated:   s.IsAutomated,
			ExecutionTime: s.ExecutionTime,
			Dependencies:  s.Dependencies,
		})
	}
	return doc
}

func (d *processDocument) toModel() *model.BusinessProcess {
	process := &model.BusinessProcess{
		ID:              d.ID,
		Name:            d.Name,
		Type:            types.ProcessType(d.Type),
		Status:          types.ProcessStatus(d.Status),
		AutomationLevel: d.AutomationLevel,
		Metrics: model.ProcessMetrics{
			AverageExecutionTime: d.Metrics.AverageExecutionTime,
			ErrorRate:            d.Metrics.ErrorRate,
			CompletionRate:       d.Metrics.CompletionRate,
			CostSavings:          d.Metrics.CostSavings,
			LastExecuted:         d.Metrics.LastExecuted,
		},
	}
	process.Steps = make([]model.ProcessStep, 0, len(d.Steps))
	for _, s := range d.Steps {
		process.Steps = append(process.Steps, model.ProcessStep{
			ID:            s.ID,
			ProcessID:     s.ProcessID,
			Name:          s.Name,
			Description:   s.Description,
			IsAutomated:   s.IsAutomated,
			ExecutionTime: s.ExecutionTime,
			Dependencies:  s.Dependencies,
		})
	}
	return process
}

type processRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newProcessRepository(client *firestore.Client) *processRepository {
	return &processRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *processRepository) processesCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_processes"
	}
	return "processes"
}

func (r *processRepository) templatesCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_workflow_templates"
	}
	return "workflow_templates"
}

func (r *processRepository) Create(ctx context.Context, process *model.BusinessProcess) (*model.BusinessProcess, error) {
	doc := toProcessDocument(process)

	docRef := r.client.Collection(r.processesCollection()).Doc(doc.ID)
	if _, err := docRef.Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.New("process already exists", goerr.V("id", doc.ID))
		}
		return nil, goerr.Wrap(err, "failed to create process", goerr.V("id", doc.ID))
	}

	return doc.toModel(), nil
}

func (r *processRepository) Get(ctx context.Context, id string) (*model.BusinessProcess, error) {
	docRef := r.client.Collection(r.processesCollection()).Doc(id)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "process not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get process", goerr.V("id", id))
	}

	var processDoc processDocument
	if err := doc.DataTo(&processDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal process", goerr.V("id", id))
	}

	return processDoc.toModel(), nil
}

func (r *processRepository) List(ctx context.Context) ([]*model.BusinessProcess, error) {
	iter := r.client.Collection(r.processesCollection()).OrderBy("id", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var processes []*model.BusinessProcess
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate processes")
		}

		var processDoc processDocument
		if err := doc.DataTo(&processDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal process")
		}

		processes = append(processes, processDoc.toModel())
	}

	return processes, nil
}

func (r *processRepository) Update(ctx context.Context, process *model.BusinessProcess) (*model.BusinessProcess, error) {
	docRef := r.client.Collection(r.processesCollection()).Doc(process.ID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "process not found", goerr.V("id", process.ID))
		}
		return nil, goerr.Wrap(err, "failed to get process", goerr.V("id", process.ID))
	}

	doc := toProcessDocument(process)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update process", goerr.V("id", process.ID))
	}

	return doc.toModel(), nil
}

func (r *processRepository) ListTemplates(ctx context.Context) ([]*model.WorkflowTemplate, error) {
	iter := r.client.Collection(r.templatesCollection()).OrderBy("id", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var templates []*model.WorkflowTemplate
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate workflow templates")
		}

		var tmplDoc workflowTemplateDocument
		if err := doc.DataTo(&tmplDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal workflow template")
		}

		templates = append(templates, &model.WorkflowTemplate{
			ID:               tmplDoc.ID,
			Name:             tmplDoc.Name,
			Category:         tmplDoc.Category,
			Description:      tmplDoc.Description,
			EstimatedSavings: tmplDoc.EstimatedSavings,
		})
	}

	return templates, nil
}

func (r *processRepository) GetTemplate(ctx context.Context, id string) (*model.WorkflowTemplate, error) {
	docRef := r.client.Collection(r.templatesCollection()).Doc(id)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "workflow template not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get workflow template", goerr.V("id", id))
	}

	var tmplDoc workflowTemplateDocument
	if err := doc.DataTo(&tmplDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal workflow template", goerr.V("id", id))
	}

	return &model.WorkflowTemplate{
		ID:               tmplDoc.ID,
		Name:             tmplDoc.Name,
		Category:         tmplDoc.Category,
		Description:      tmplDoc.Description,
		EstimatedSavings: tmplDoc.EstimatedSavings,
	}, nil
}

func (r *processRepository) PutTemplate(ctx context.Context, tmpl *model.WorkflowTemplate) error {
	doc := &workflowTemplateDocument{
		ID:               tmpl.ID,
		Name:             tmpl.Name,
		Category:         tmpl.Category,
		Description:      tmpl.Description,
		EstimatedSavings: tmpl.EstimatedSavings,
	}

	docRef := r.client.Collection(r.templatesCollection()).Doc(tmpl.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put workflow template", goerr.V("id", tmpl.ID))
	}

	return nil
}
