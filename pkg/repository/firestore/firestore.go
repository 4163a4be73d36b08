package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/baysgaia/cashmax/pkg/domain/interfaces"
	"github.com/baysgaia/cashmax/pkg/repository/memory"
)

type Firestore struct {
	client  *firestore.Client
	risk    *riskRepository
	process *processRepository
	project *projectRepository
	subsidy *subsidyRepository
	alert   *memory.AlertRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.risk.collectionPrefix = prefix
		f.process.collectionPrefix = prefix
		f.project.collectionPrefix = prefix
		f.subsidy.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID string, opts ...Option) (*Firestore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:  client,
		risk:    newRiskRepository(client),
		process: newProcessRepository(client),
		project: newProjectRepository(client),
		subsidy: newSubsidyRepository(client),
		// Alerts are never durable; they live in process memory even when
		// firestore backs the other collections.
		alert: memory.NewAlertRepository(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Risk() interfaces.RiskRepository {
	return f.risk
}

func (f *Firestore) Process() interfaces.ProcessRepository {
	return f.process
}

func (f *Firestore) Project() interfaces.ProjectRepository {
	return f.project
}

func (f *Firestore) Subsidy() interfaces.SubsidyRepository {
	return f.subsidy
}

func (f *Firestore) Alert() interfaces.AlertRepository {
	return f.alert
}

// Ping probes the backend with a lightweight read. A NotFound response
// still proves the service is reachable.
func (f *Firestore) Ping(ctx context.Context) error {
	_, err := f.client.Collection(f.risk.risksCollection()).Doc("_health").Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return goerr.Wrap(err, "firestore is not reachable")
	}
	return nil
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
