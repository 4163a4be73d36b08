package types_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/baysgaia/cashmax/pkg/domain/types"
)

func TestLevelValidate(t *testing.T) {
	gt.NoError(t, types.LevelLow.Validate())
	gt.NoError(t, types.LevelMedium.Validate())
	gt.NoError(t, types.LevelHigh.Validate())
	gt.Error(t, types.Level(0).Validate())
	gt.Error(t, types.Level(4).Validate())
	gt.Error(t, types.Level(-1).Validate())
}

func TestLevelValidateTagged(t *testing.T) {
	err := types.Level(0).Validate()
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.ErrTagValidation))
}

func TestLevelBand(t *testing.T) {
	gt.Value(t, types.LevelHigh.Band()).Equal(types.BandHigh)
	gt.Value(t, types.LevelMedium.Band()).Equal(types.BandMed)
	gt.Value(t, types.LevelLow.Band()).Equal(types.BandLow)
}

func TestObjectiveStatusFromRate(t *testing.T) {
	cases := []struct {
		name string
		rate float64
		want types.ObjectiveStatus
	}{
		{"exactly 100 is achieved", 100, types.ObjectiveStatusAchieved},
		{"above 100 is achieved", 120, types.ObjectiveStatusAchieved},
		{"exactly 80 is on track", 80, types.ObjectiveStatusOnTrack},
		{"just below 100 is on track", 99.9, types.ObjectiveStatusOnTrack},
		{"exactly 60 is at risk", 60, types.ObjectiveStatusAtRisk},
		{"just below 80 is at risk", 79.9, types.ObjectiveStatusAtRisk},
		{"below 60 is missed", 59.9, types.ObjectiveStatusMissed},
		{"zero is missed", 0, types.ObjectiveStatusMissed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Value(t, types.ObjectiveStatusFromRate(tc.rate)).Equal(tc.want)
		})
	}
}

func TestProcessStatusFromLevel(t *testing.T) {
	cases := []struct {
		name  string
		level int
		want  types.ProcessStatus
	}{
		{"at threshold is automated", 70, types.ProcessStatusAutomated},
		{"full automation", 100, types.ProcessStatusAutomated},
		{"just below threshold is semi-automated", 69, types.ProcessStatusSemiAutomated},
		{"partial automation", 1, types.ProcessStatusSemiAutomated},
		{"zero is manual", 0, types.ProcessStatusManual},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Value(t, types.ProcessStatusFromLevel(tc.level)).Equal(tc.want)
		})
	}
}

func TestDifficultyFromManualMinutes(t *testing.T) {
	gt.Value(t, types.DifficultyFromManualMinutes(101)).Equal(types.DifficultyHigh)
	gt.Value(t, types.DifficultyFromManualMinutes(100)).Equal(types.DifficultyMedium)
	gt.Value(t, types.DifficultyFromManualMinutes(51)).Equal(types.DifficultyMedium)
	gt.Value(t, types.DifficultyFromManualMinutes(50)).Equal(types.DifficultyLow)
	gt.Value(t, types.DifficultyFromManualMinutes(0)).Equal(types.DifficultyLow)
}

func TestSeverityRank(t *testing.T) {
	gt.Value(t, types.SeverityCritical.Rank()).Equal(0)
	gt.Value(t, types.SeverityHigh.Rank()).Equal(1)
	gt.Value(t, types.SeverityMedium.Rank()).Equal(2)
	gt.Value(t, types.SeverityLow.Rank()).Equal(3)
}

func TestParseSubsidyStatus(t *testing.T) {
	status, err := types.ParseSubsidyStatus("applied")
	gt.NoError(t, err)
	gt.Value(t, status).Equal(types.SubsidyStatusApplied)

	_, err = types.ParseSubsidyStatus("pending")
	gt.Error(t, err)
}

func TestParseAlertType(t *testing.T) {
	alertType, err := types.ParseAlertType("CRITICAL")
	gt.NoError(t, err)
	gt.Value(t, alertType).Equal(types.AlertTypeCritical)

	_, err = types.ParseAlertType("critical")
	gt.Error(t, err)
}
