package usecase

import (
	"math/rand"
	"time"

	"github.com/baysgaia/cashmax/pkg/domain/interfaces"
	"github.com/baysgaia/cashmax/pkg/domain/model/config"
	"github.com/baysgaia/cashmax/pkg/service/bank"
	"github.com/baysgaia/cashmax/pkg/service/notify"
)

type UseCases struct {
	repo      interfaces.Repository
	bank      bank.Client
	notifier  notify.Notifier
	constants *config.Constants
	now       func() time.Time
	rng       *rand.Rand

	KPI      *KPIUseCase
	Cashflow *CashflowUseCase
	Bank     *BankUseCase
	Risk     *RiskUseCase
	Process  *ProcessUseCase
	Project  *ProjectUseCase
	Subsidy  *SubsidyUseCase
	Alert    *AlertUseCase
}

type Option func(*UseCases)

func WithBank(client bank.Client) Option {
	return func(uc *UseCases) {
		uc.bank = client
	}
}

func WithNotifier(n notify.Notifier) Option {
	return func(uc *UseCases) {
		uc.notifier = n
	}
}

func WithConstants(c *config.Constants) Option {
	return func(uc *UseCases) {
		uc.constants = c
	}
}

// WithClock overrides the time source, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

// WithSeed makes synthesized KPI and cashflow series reproducible
func WithSeed(seed int64) Option {
	return func(uc *UseCases) {
		uc.rng = rand.New(rand.NewSource(seed))
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:      repo,
		bank:      bank.NewSunabar(),
		notifier:  notify.Discard{},
		constants: config.DefaultConstants(),
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.KPI = &KPIUseCase{rng: uc.rng, now: uc.now}
	uc.Cashflow = &CashflowUseCase{rng: uc.rng, now: uc.now}
	uc.Bank = &BankUseCase{client: uc.bank}
	uc.Risk = &RiskUseCase{repo: uc.repo, now: uc.now}
	uc.Process = &ProcessUseCase{repo: uc.repo, constants: uc.constants}
	uc.Project = &ProjectUseCase{repo: uc.repo, now: uc.now}
	uc.Subsidy = &SubsidyUseCase{repo: uc.repo, now: uc.now}
	uc.Alert = &AlertUseCase{
		repo:      uc.repo,
		notifier:  uc.notifier,
		constants: uc.constants,
		now:       uc.now,
	}

	return uc
}

// Repository exposes the backing repository, mainly for health checks
func (uc *UseCases) Repository() interfaces.Repository {
	return uc.repo
}

// Constants exposes the active business constants
func (uc *UseCases) Constants() *config.Constants {
	return uc.constants
}
