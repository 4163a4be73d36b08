package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/baysgaia/cashmax/pkg/domain/interfaces"
	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/domain/types"
)

// SubsidyUseCase implements subsidy tracking, the application checklist
// and the funding plan simulation.
type SubsidyUseCase struct {
	repo interfaces.Repository
	now  func() time.Time
}

func (uc *SubsidyUseCase) ListSubsidies(ctx context.Context) ([]*model.Subsidy, error) {
	return uc.repo.Subsidy().List(ctx)
}

func (uc *SubsidyUseCase) GetSubsidy(ctx context.Context, id string) (*model.Subsidy, error) {
	return uc.repo.Subsidy().Get(ctx, id)
}

// UpdateStatus moves a subsidy to a new application state and appends the
// transition to its timeline.
func (uc *SubsidyUseCase) UpdateStatus(ctx context.Context, id string, status types.SubsidyStatus) (*model.Subsidy, error) {
	subsidy, err := uc.repo.Subsidy().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	subsidy.Status = status
	subsidy.Timeline = append(subsidy.Timeline, model.SubsidyEvent{
		SubsidyID: id,
		Event:     "Status changed to " + status.String(),
		Date:      uc.now(),
		Status:    types.TimelineStatusCompleted,
	})

	return uc.repo.Subsidy().Update(ctx, subsidy)
}

// UploadDocument attaches an application document to a subsidy
func (uc *SubsidyUseCase) UploadDocument(ctx context.Context, subsidyID string, doc model.SubsidyDocument) (*model.SubsidyDocument, error) {
	subsidy, err := uc.repo.Subsidy().Get(ctx, subsidyID)
	if err != nil {
		return nil, err
	}

	doc.ID = "doc-" + uuid.NewString()
	doc.SubsidyID = subsidyID
	doc.UploadedAt = uc.now()
	subsidy.Documents = append(subsidy.Documents, doc)

	if _, err := uc.repo.Subsidy().Update(ctx, subsidy); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetApplicationChecklist marks each requirement of a subsidy as satisfied
// when an approved document name contains the requirement text.
func (uc *SubsidyUseCase) GetApplicationChecklist(ctx context.Context, subsidyID string) ([]model.ChecklistItem, error) {
	subsidy, err := uc.repo.Subsidy().Get(ctx, subsidyID)
	if err != nil {
		return nil, err
	}

	checklist := make([]model.ChecklistItem, 0, len(subsidy.Requirements))
	for _, req := range subsidy.Requirements {
		completed := false
		for _, doc := range subsidy.Documents {
			if doc.Status == types.DocumentStatusApproved &&
				strings.Contains(strings.ToLower(doc.Name), strings.ToLower(req)) {
				completed = true
				break
			}
		}
		checklist = append(checklist, model.ChecklistItem{Item: req, Completed: completed})
	}
	return checklist, nil
}

// GenerateFundingSimulation builds a funding plan around the IT
// introduction subsidy and a JFC loan, with a six month balance
// projection starting this month.
func (uc *SubsidyUseCase) GenerateFundingSimulation(ctx context.Context, requiredAmount float64) (*model.FundingSimulation, error) {
	simulation := &model.FundingSimulation{
		TotalRequiredFunding: requiredAmount,
		Subsidies:            []model.SubsidyApplication{},
		Loans:                []model.LoanApplication{},
		Timeline:             []model.FundingEvent{},
		CashflowProjection:   []model.CashflowProjection{},
	}

	if itSubsidy, err := uc.repo.Subsidy().Get(ctx, "it-005"); err == nil {
		simulation.Subsidies = append(simulation.Subsidies, model.SubsidyApplication{
			Subsidy:        *itSubsidy,
			Probability:    0.6,
			ExpectedAmount: 3000000,
			ExpectedDate:   time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		})
	}

	simulation.Loans = append(simulation.Loans, model.LoanApplication{
		Lender:         "日本政策金融公庫",
		Amount:         5000000,
		InterestRate:   2.5,
		TermMonths:     60,
		MonthlyPayment: 88611,
		Status:         "preparing",
	})

	simulation.Timeline = append(simulation.Timeline,
		model.FundingEvent{
			Date:        time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
			Type:        "application",
			Amount:      5000000,
			Description: "日本政策金融公庫融資申請",
		},
		model.FundingEvent{
			Date:        time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			Type:        "funding",
			Amount:      5000000,
			Description: "日本政策金融公庫融資実行",
		},
	)

	now := uc.now()
	balance := float64(12000000)
	for i := 0; i < 6; i++ {
		var inflow float64
		switch i {
		case 1:
			inflow = 5000000 // loan funding
		case 4:
			inflow = 3000000 // expected subsidy payment
		}
		outflow := float64(88611)
		balance = balance + inflow - outflow

		simulation.CashflowProjection = append(simulation.CashflowProjection, model.CashflowProjection{
			Date:          now.AddDate(0, i, 0),
			Inflow:        inflow,
			Outflow:       outflow,
			Balance:       balance,
			FundingImpact: inflow,
		})
	}

	return simulation, nil
}
