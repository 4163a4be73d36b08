package memory

import (
	"context"

	"github.com/baysgaia/cashmax/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	risk    *riskRepository
	process *processRepository
	project *projectRepository
	subsidy *subsidyRepository
	alert   *AlertRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		risk:    newRiskRepository(),
		process: newProcessRepository(),
		project: newProjectRepository(),
		subsidy: newSubsidyRepository(),
		alert:   NewAlertRepository(),
	}
}

func (m *Memory) Risk() interfaces.RiskRepository {
	return m.risk
}

func (m *Memory) Process() interfaces.ProcessRepository {
	return m.process
}

func (m *Memory) Project() interfaces.ProjectRepository {
	return m.project
}

func (m *Memory) Subsidy() interfaces.SubsidyRepository {
	return m.subsidy
}

func (m *Memory) Alert() interfaces.AlertRepository {
	return m.alert
}

func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

func (m *Memory) Close() error {
	return nil
}
