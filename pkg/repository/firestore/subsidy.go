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

type subsidyDocumentDocument struct {
	ID         string    `firestore:"id"`
	SubsidyID  string    `firestore:"subsidy_id"`
	Name       string    `firestore:"name"`
	Type       string    `firestore:"type"`
	Status     string    `firestore:"status"`
	UploadedAt time.Time `firestore:"uploaded_at"`
	URL        string    `firestore:"url"`
}

type subsidyEventDocument struct {
	SubsidyID string    `firestore:"subsidy_id"`
	Event     string    `firestore:"event"`
	Date      time.Time `firestore:"date"`
	Status    string    `firestore:"status"`
}

type subsidyDocument struct {
	ID                  string                    `firestore:"id"`
	Name                string                    `firestore:"name"`
	Type                string                    `firestore:"type"`
	Provider            string                    `firestore:"provider"`
	MaxAmount           float64                   `firestore:"max_amount"`
	ApplicationDeadline time.Time                 `firestore:"application_deadline"`
	Status              string                    `firestore:"status"`
	Documents           []subsidyDocumentDocument `firestore:"documents"`
	Timeline            []subsidyEventDocument    `firestore:"timeline"`
	Requirements        []string                  `firestore:"requirements"`
}

func toSubsidyDocument(s *model.Subsidy) *subsidyDocument {
	doc := &subsidyDocument{
		ID:                  s.ID,
		Name:                s.Name,
		Type:                string(s.Type),
		Provider:            s.Provider,
		MaxAmount:           s.MaxAmount,
		ApplicationDeadline: s.ApplicationDeadline,
		Status:              string(s.Status),
		Requirements:        s.Requirements,
	}
	for _, d := range s.Documents {
		doc.Documents = append(doc.Documents, subsidyDocumentDocument{
			ID:         d.ID,
			SubsidyID:  d.SubsidyID,
			Name:       d.Name,
			Type:       d.Type,
			Status:     string(d.Status),
			UploadedAt: d.UploadedAt,
			URL:        d.URL,
		})
	}
	for _, e := range s.Timeline {
		doc.Timeline = append(doc.Timeline, subsidyEventDocument{
			SubsidyID: e.SubsidyID,
			Event:     e.Event,
			Date:      e.Date,
			Status:    string(e.Status),
		})
	}
	return doc
}

func (d *subsidyDocument) toModel() *model.Subsidy {
	subsidy := &model.Subsidy{
		ID:                  d.ID,
		Name:                d.Name,
		Type:                types.SubsidyType(d.Type),
		Provider:            d.Provider,
		MaxAmount:           d.MaxAmount,
		ApplicationDeadline: d.ApplicationDeadline,
		Status:              types.SubsidyStatus(d.Status),
		Requirements:        d.Requirements,
	}
	subsidy.Documents = make([]model.SubsidyDocument, 0, len(d.Documents))
	for _, doc := range d.Documents {
		subsidy.Documents = append(subsidy.Documents, model.SubsidyDocument{
			ID:         doc.ID,
			SubsidyID:  doc.SubsidyID,
			Name:       doc.Name,
			Type:       doc.Type,
			Status:     types.DocumentStatus(doc.Status),
			UploadedAt: doc.UploadedAt,
			URL:        doc.URL,
		})
	}
	subsidy.Timeline = make([]model.SubsidyEvent, 0, len(d.Timeline))
	for _, e := range d.Timeline {
		subsidy.Timeline = append(subsidy.Timeline, model.SubsidyEvent{
			SubsidyID: e.SubsidyID,
			Event:     e.Event,
			Date:      e.Date,
			Status:    types.TimelineStatus(e.Status),
		})
	}
	return subsidy
}

type subsidyRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newSubsidyRepository(client *firestore.Client) *subsidyRepository {
	return &subsidyRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *subsidyRepository) subsidiesCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_subsidies"
	}
	return "subsidies"
}

func (r *subsidyRepository) Create(ctx context.Context, subsidy *model.Subsidy) (*model.Subsidy, error) {
	doc := toSubsidyDocument(subsidy)

	docRef := r.client.Collection(r.subsidiesCollection()).Doc(doc.ID)
	if _, err := docRef.Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.New("subsidy already exists", goerr.V("id", doc.ID))
		}
		return nil, goerr.Wrap(err, "failed to create subsidy", goerr.V("id", doc.ID))
	}

	return doc.toModel(), nil
}

func (r *subsidyRepository) Get(ctx context.Context, id string) (*model.Subsidy, error) {
	docRef := r.client.Collection(r.subsidiesCollection()).Doc(id)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "subsidy not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get subsidy", goerr.V("id", id))
	}

	var subsidyDoc subsidyDocument
	if err := doc.DataTo(&subsidyDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal subsidy", goerr.V("id", id))
	}

	return subsidyDoc.toModel(), nil
}

func (r *subsidyRepository) List(ctx context.Context) ([]*model.Subsidy, error) {
	iter := r.client.Collection(r.subsidiesCollection()).OrderBy("id", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var subsidies []*model.Subsidy
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate subsidies")
		}

		var subsidyDoc subsidyDocument
		if err := doc.DataTo(&subsidyDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal subsidy")
		}

		subsidies = append(subsidies, subsidyDoc.toModel())
	}

	return subsidies, nil
}

func (r *subsidyRepository) Update(ctx context.Context, subsidy *model.Subsidy) (*model.Subsidy, error) {
	docRef := r.client.Collection(r.subsidiesCollection()).Doc(subsidy.ID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "subsidy not found", goerr.V("id", subsidy.ID))
		}
		return nil, goerr.Wrap(err, "failed to get subsidy", goerr.V("id", subsidy.ID))
	}

	doc := toSubsidyDocument(subsidy)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update subsidy", goerr.V("id", subsidy.ID))
	}

	return doc.toModel(), nil
}
