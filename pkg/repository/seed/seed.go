// Package seed loads the demo dataset into a repository. The dataset mirrors
// the finance transformation program of a small Japanese company: three
// assessed risks, two partially automated processes, one tracked project and
// four funding programs.
package seed

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/baysgaia/cashmax/pkg/domain/interfaces"
	"github.com/baysgaia/cashmax/pkg/domain/model"
	"github.com/baysgaia/cashmax/pkg/domain/types"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Load populates every collection of the repository with the demo dataset.
// Relative dates (last assessment, KRI updates) are anchored to now.
func Load(ctx context.Context, repo interfaces.Repository, now time.Time) error {
	for _, risk := range Risks(now) {
		if _, err := repo.Risk().Create(ctx, risk); err != nil {
			return goerr.Wrap(err, "failed to seed risk", goerr.V("id", risk.ID))
		}
	}
	for _, cp := range Checkpoints() {
		if err := repo.Risk().PutCheckpoint(ctx, cp); err != nil {
			return goerr.Wrap(err, "failed to seed compliance checkpoint", goerr.V("id", cp.ID))
		}
	}
	for _, policy := range Policies() {
		if err := repo.Risk().PutPolicy(ctx, policy); err != nil {
			return goerr.Wrap(err, "failed to seed governance policy", goerr.V("id", policy.ID))
		}
	}
	for _, process := range Processes(now) {
		if _, err := repo.Process().Create(ctx, process); err != nil {
			return goerr.Wrap(err, "failed to seed process", goerr.V("id", process.ID))
		}
	}
	for _, tmpl := range Templates() {
		if err := repo.Process().PutTemplate(ctx, tmpl); err != nil {
			return goerr.Wrap(err, "failed to seed workflow template", goerr.V("id", tmpl.ID))
		}
	}
	if err := repo.Project().SavePhases(ctx, Phases()); err != nil {
		return goerr.Wrap(err, "failed to seed phases")
	}
	if err := repo.Project().Save(ctx, Project(now)); err != nil {
		return goerr.Wrap(err, "failed to seed project")
	}
	for _, subsidy := range Subsidies() {
		if _, err := repo.Subsidy().Create(ctx, subsidy); err != nil {
			return goerr.Wrap(err, "failed to seed subsidy", goerr.V("id", subsidy.ID))
		}
	}
	return nil
}

// Risks returns the seeded risk register
func Risks(now time.Time) []*model.Risk {
	return []*model.Risk{
		{
			ID:          "risk-001",
			Category:    types.RiskCategoryFinancial,
			Name:        "資金ショート",
			Description: "運転資金の枯渇による事業継続リスク",
			Impact:      types.LevelHigh,
			Probability: types.LevelHigh,
			RiskScore:   9,
			Status:      types.RiskStatusAssessed,
			Owner:       "CFO",
			MitigationActions: []model.MitigationAction{
				{
					ID:            "mit-001",
					RiskID:        "risk-001",
					Action:        "日本政策金融公庫融資の早期実行",
					DueDate:       date(2025, time.September, 1),
					Status:        types.MitigationStatusInProgress,
					Owner:         "CEO",
					Cost:          0,
					Effectiveness: types.EffectivenessHigh,
				},
				{
					ID:            "mit-002",
					RiskID:        "risk-001",
					Action:        "売掛金の早期回収交渉",
					DueDate:       date(2025, time.August, 20),
					Status:        types.MitigationStatusPlanned,
					Owner:         "営業担当",
					Cost:          0,
					Effectiveness: types.EffectivenessMedium,
				},
			},
			KRI: []model.KeyRiskIndicator{
				{
					ID:           "kri-001",
					RiskID:       "risk-001",
					Metric:       "現金残高（月次必要資金比）",
					Threshold:    50,
					CurrentValue: 45,
					Trend:        types.KRITrendDeteriorating,
					LastUpdated:  now,
				},
			},
			LastAssessment: now,
			NextReview:     date(2025, time.August, 15),
		},
		{
			ID:          "risk-002",
			Category:    types.RiskCategoryFinancial,
			Name:        "補助金不採択",
			Description: "IT導入補助金やDX推進助成金の不採択",
			Impact:      types.LevelHigh,
			Probability: types.LevelMedium,
			RiskScore:   6,
			Status:      types.RiskStatusAssessed,
			Owner:       "プロジェクトアドバイザー",
			MitigationActions: []model.MitigationAction{
				{
					ID:            "mit-003",
					RiskID:        "risk-002",
					Action:        "申請書の精緻化と専門家レビュー",
					DueDate:       date(2025, time.September, 10),
					Status:        types.MitigationStatusPlanned,
					Owner:         "プロジェクトアドバイザー",
					Cost:          100000,
					Effectiveness: types.EffectivenessHigh,
				},
			},
			KRI: []model.KeyRiskIndicator{
				{
					ID:           "kri-002",
					RiskID:       "risk-002",
					Metric:       "補助金採択率（過去実績）",
					Threshold:    50,
					CurrentValue: 60,
					Trend:        types.KRITrendStable,
					LastUpdated:  now,
				},
			},
			LastAssessment: now,
			NextReview:     date(2025, time.September, 1),
		},
		{
			ID:          "risk-003",
			Category:    types.RiskCategoryOperational,
			Name:        "API誤操作による振込ミス",
			Description: "銀行APIの誤操作による誤送金リスク",
			Impact:      types.LevelHigh,
			Probability: types.LevelMedium,
			RiskScore:   6,
			Status:      types.RiskStatusMitigated,
			Owner:       "CTO",
			MitigationActions: []model.MitigationAction{
				{
					ID:            "mit-004",
					RiskID:        "risk-003",
					Action:        "多重承認制の実装",
					DueDate:       date(2025, time.September, 30),
					Status:        types.MitigationStatusPlanned,
					Owner:         "CTO",
					Cost:          200000,
					Effectiveness: types.EffectivenessHigh,
				},
			},
			KRI: []model.KeyRiskIndicator{
				{
					ID:           "kri-003",
					RiskID:       "risk-003",
					Metric:       "月間手動振込件数",
					Threshold:    20,
					CurrentValue: 15,
					Trend:        types.KRITrendImproving,
					LastUpdated:  now,
				},
			},
			LastAssessment: now,
			NextReview:     date(2025, time.October, 1),
		},
	}
}

// Checkpoints returns the seeded compliance checkpoints
func Checkpoints() []*model.ComplianceCheckpoint {
	lastChecked := date(2025, time.July, 31)
	return []*model.ComplianceCheckpoint{
		{
			ID:               "comp-001",
			Name:             "電子帳簿保存法準拠確認",
			Category:         "regulatory",
			Frequency:        "monthly",
			LastChecked:      &lastChecked,
			NextCheck:        date(2025, time.August, 31),
			Status:           types.ComplianceStatusCompliant,
			Evidence:         []string{"audit-log-2025-07.pdf"},
			ResponsibleParty: "CFO",
		},
		{
			ID:               "comp-002",
			Name:             "補助金実績報告",
			Category:         "grant",
			Frequency:        "quarterly",
			NextCheck:        date(2025, time.December, 31),
			Status:           types.ComplianceStatusPending,
			ResponsibleParty: "プロジェクトアドバイザー",
		},
	}
}

// Policies returns the seeded governance policies
func Policies() []*model.GovernancePolicy {
	return []*model.GovernancePolicy{
		{
			ID:            "pol-001",
			Name:          "資金管理ポリシー",
			Category:      "financial",
			Description:   "現金残高管理と支払承認に関する規定",
			EffectiveDate: date(2025, time.August, 1),
			LastReviewed:  date(2025, time.August, 1),
			NextReview:    date(2026, time.August, 1),
			Owner:         "CFO",
			Status:        types.PolicyStatusApproved,
			Documents:     []model.PolicyDocument{},
		},
		{
			ID:            "pol-002",
			Name:          "API利用セキュリティポリシー",
			Category:      "operational",
			Description:   "銀行APIの安全な利用に関する規定",
			EffectiveDate: date(2025, time.September, 1),
			LastReviewed:  date(2025, time.August, 1),
			NextReview:    date(2026, time.February, 1),
			Owner:         "CTO",
			Status:        types.PolicyStatusDraft,
			Documents:     []model.PolicyDocument{},
		},
	}
}

// Processes returns the seeded business processes
func Processes(now time.Time) []*model.BusinessProcess {
	lastExecuted := now
	return []*model.BusinessProcess{
		{
			ID:              "proc-001",
			Name:            "売掛金回収プロセス",
			Type:            types.ProcessTypeReceivables,
			Status:          types.ProcessStatusSemiAutomated,
			AutomationLevel: 40,
			Steps: []model.ProcessStep{
				{
					ID:            "step-001",
					ProcessID:     "proc-001",
					Name:          "請求書発行",
					Description:   "月末締めで請求書を自動生成",
					IsAutomated:   true,
					ExecutionTime: 5,
					Dependencies:  []string{},
				},
				{
					ID:            "step-002",
					ProcessID:     "proc-001",
					Name:          "入金確認",
					Description:   "銀行APIで自動照合",
					IsAutomated:   true,
					ExecutionTime: 2,
					Dependencies:  []string{"step-001"},
				},
				{
					ID:            "step-003",
					ProcessID:     "proc-001",
					Name:          "督促メール送信",
					Description:   "期日超過で自動送信",
					IsAutomated:   false,
					ExecutionTime: 15,
					Dependencies:  []string{"step-002"},
				},
			},
			Metrics: model.ProcessMetrics{
				AverageExecutionTime: 22,
				ErrorRate:            5,
				CompletionRate:       95,
				CostSavings:          150000,
				LastExecuted:         &lastExecuted,
			},
		},
		{
			ID:              "proc-002",
			Name:            "支払承認ワークフロー",
			Type:            types.ProcessTypePayables,
			Status:          types.ProcessStatusManual,
			AutomationLevel: 20,
			Steps: []model.ProcessStep{
				{
					ID:            "step-004",
					ProcessID:     "proc-002",
					Name:          "支払申請作成",
					Description:   "請求書から支払申請を作成",
					IsAutomated:   false,
					ExecutionTime: 30,
					Dependencies:  []string{},
				},
				{
					ID:            "step-005",
					ProcessID:     "proc-002",
					Name:          "承認プロセス",
					Description:   "金額に応じた承認ルート",
					IsAutomated:   false,
					ExecutionTime: 480,
					Dependencies:  []string{"step-004"},
				},
				{
					ID:            "step-006",
					ProcessID:     "proc-002",
					Name:          "振込実行",
					Description:   "承認済み支払の実行",
					IsAutomated:   false,
					ExecutionTime: 20,
					Dependencies:  []string{"step-005"},
				},
			},
			Metrics: model.ProcessMetrics{
				AverageExecutionTime: 530,
				ErrorRate:            2,
				CompletionRate:       98,
				CostSavings:          0,
				LastExecuted:         &lastExecuted,
			},
		},
	}
}

// Templates returns the seeded workflow template catalog
func Templates() []*model.WorkflowTemplate {
	return []*model.WorkflowTemplate{
		{
			ID:               "tmpl-001",
			Name:             "自動督促ワークフロー",
			Category:         "receivables",
			Description:      "支払期日超過時の自動督促プロセス",
			EstimatedSavings: 200000,
		},
		{
			ID:               "tmpl-002",
			Name:             "支払承認自動化",
			Category:         "payables",
			Description:      "金額別の自動承認ルーティング",
			EstimatedSavings: 300000,
		},
	}
}

// Phases returns the four project phases
func Phases() []*model.Phase {
	return []*model.Phase{
		{
			ID:          "phase-1",
			Number:      1,
			Name:        "基盤構築",
			Description: "現状把握と資金繰りの安定化",
			Duration:    "Week 0-3",
			Status:      types.PhaseStatusCompleted,
			CompletionCriteria: []string{
				"全KPIのベースライン測定完了",
				"GMOあおぞらネット銀行API接続の技術検証完了",
				"sunabar環境での主要機能テスト成功",
				"緊急資金調達の目途確立",
				"プロジェクト体制の確立",
			},
		},
		{
			ID:          "phase-2",
			Number:      2,
			Name:        "システム導入",
			Description: "デジタルツール活用と運転資本の改善開始",
			Duration:    "Week 4-7",
			Status:      types.PhaseStatusInProgress,
			CompletionCriteria: []string{
				"デジタルツールの選定と導入完了",
				"パイロットでDSO 15%以上短縮確認",
				"IT導入補助金の申請完了",
				"全社展開の準備完了",
			},
		},
		{
			ID:          "phase-3",
			Number:      3,
			Name:        "プロセス変革",
			Description: "業務フロー最適化と自動化定着",
			Duration:    "Week 8-11",
			Status:      types.PhaseStatusNotStarted,
			CompletionCriteria: []string{
				"全社での新プロセス稼働",
				"自動化率70%達成",
				"AI予測精度95%以上達成",
				"法令遵守要件の充足確認",
			},
		},
		{
			ID:          "phase-4",
			Number:      4,
			Name:        "最適化＆拡張",
			Description: "モニタリング強化と継続的改善",
			Duration:    "Week 12-16",
			Status:      types.PhaseStatusNotStarted,
			CompletionCriteria: []string{
				"全KRの達成または明確な改善",
				"ROI 5倍以上の実現",
				"継続改善体制の確立",
				"次期展開計画の承認",
			},
		},
	}
}

// Project returns the seeded cash maximization project
func Project(now time.Time) *model.Project {
	phases := Phases()
	return &model.Project{
		ID:        "proj-001",
		Name:      "現金残高最大化プロジェクト",
		Phase:     *phases[1],
		StartDate: date(2025, time.August, 1),
		EndDate:   date(2025, time.November, 30),
		Status:    types.ProjectStatusInProgress,
		Objectives: []model.Objective{
			{
				ID:           "obj-001",
				Name:         "KR1: 月末現金残高",
				Description:  "月末現金残高を20%増加",
				TargetValue:  20,
				CurrentValue: 5.2,
				Unit:         "%",
				Deadline:     date(2025, time.November, 1),
				Status:       types.ObjectiveStatusAtRisk,
			},
			{
				ID:           "obj-002",
				Name:         "KR2: CCC短縮",
				Description:  "キャッシュ転換日数を25%短縮",
				TargetValue:  25,
				CurrentValue: 18,
				Unit:         "%",
				Deadline:     date(2025, time.December, 1),
				Status:       types.ObjectiveStatusOnTrack,
			},
			{
				ID:           "obj-003",
				Name:         "KR3: DSO短縮",
				Description:  "売掛金回収日数を30%短縮",
				TargetValue:  30,
				CurrentValue: 22,
				Unit:         "%",
				Deadline:     date(2025, time.October, 1),
				Status:       types.ObjectiveStatusOnTrack,
			},
			{
				ID:           "obj-004",
				Name:         "KR4: 資金予測精度",
				Description:  "資金予測精度95%以上",
				TargetValue:  95,
				CurrentValue: 92.5,
				Unit:         "%",
				Deadline:     date(2025, time.October, 1),
				Status:       types.ObjectiveStatusOnTrack,
			},
			{
				ID:           "obj-005",
				Name:         "KR5: プロセス自動化",
				Description:  "資金関連プロセス自動化70%",
				TargetValue:  70,
				CurrentValue: 35,
				Unit:         "%",
				Deadline:     date(2025, time.December, 1),
				Status:       types.ObjectiveStatusAtRisk,
			},
		},
		Milestones: []model.Milestone{
			{
				ID:           "ms-001",
				PhaseID:      "phase-1",
				Name:         "M1: 現状分析完了・緊急資金確保",
				Description:  "Phase 1完了",
				DueDate:      date(2025, time.August, 22),
				Status:       types.MilestoneStatusCompleted,
				Deliverables: []string{"KPIベースライン", "融資実行"},
				Dependencies: []string{},
			},
			{
				ID:           "ms-002",
				PhaseID:      "phase-2",
				Name:         "M2: システム導入・パイロット成功",
				Description:  "Phase 2完了",
				DueDate:      date(2025, time.September, 19),
				Status:       types.MilestoneStatusPending,
				Deliverables: []string{"ツール導入完了", "DSO 15%短縮確認"},
				Dependencies: []string{"ms-001"},
			},
			{
				ID:           "ms-003",
				PhaseID:      "phase-3",
				Name:         "M3: プロセス変革・自動化達成",
				Description:  "Phase 3完了",
				DueDate:      date(2025, time.October, 17),
				Status:       types.MilestoneStatusPending,
				Deliverables: []string{"自動化率70%達成", "AI予測精度95%"},
				Dependencies: []string{"ms-002"},
			},
			{
				ID:           "ms-004",
				PhaseID:      "phase-4",
				Name:         "M4: プロジェクト完了・目標達成",
				Description:  "Phase 4完了",
				DueDate:      date(2025, time.November, 30),
				Status:       types.MilestoneStatusPending,
				Deliverables: []string{"全KR達成", "ROI 5倍以上"},
				Dependencies: []string{"ms-003"},
			},
		},
		Budget: model.Budget{
			Total:     10000000,
			Allocated: 8000000,
			Spent:     2500000,
			Categories: []model.BudgetCategory{
				{Name: "システム導入", Budget: 4500000, Spent: 1500000},
				{Name: "人件費", Budget: 3000000, Spent: 800000},
				{Name: "外部サービス", Budget: 2000000, Spent: 200000},
				{Name: "予備費", Budget: 500000, Spent: 0},
			},
		},
		Progress:    35,
		LastUpdated: now,
	}
}

// Subsidies returns the seeded funding programs
func Subsidies() []*model.Subsidy {
	return []*model.Subsidy{
		{
			ID:                  "jfc-001",
			Name:                "日本政策金融公庫 新規開業資金",
			Type:                types.SubsidyTypeLoan,
			Provider:            "日本政策金融公庫",
			MaxAmount:           72000000,
			ApplicationDeadline: date(2025, time.December, 31),
			Status:              types.SubsidyStatusPreparing,
			Documents:           []model.SubsidyDocument{},
			Timeline:            []model.SubsidyEvent{},
			Requirements: []string{
				"創業計画書",
				"事業計画書（3年分）",
				"履歴事項全部証明書",
				"印鑑証明書",
				"直近3ヶ月の試算表",
			},
		},
		{
			ID:                  "it-005",
			Name:                "IT導入補助金2025（通常枠）",
			Type:                types.SubsidyTypeSubsidy,
			Provider:            "経済産業省",
			MaxAmount:           4500000,
			ApplicationDeadline: date(2025, time.September, 22),
			Status:              types.SubsidyStatusPreparing,
			Documents:           []model.SubsidyDocument{},
			Timeline:            []model.SubsidyEvent{},
			Requirements: []string{
				"gBizIDプライム",
				"SECURITY ACTION宣言",
				"みらデジ経営チェック",
				"労働生産性向上計画",
				"賃上げ計画",
			},
		},
		{
			ID:                  "tokyo-dx-002",
			Name:                "東京都DX推進助成金",
			Type:                types.SubsidyTypeGrant,
			Provider:            "東京都中小企業振興公社",
			MaxAmount:           30000000,
			ApplicationDeadline: date(2025, time.November, 30),
			Status:              types.SubsidyStatusPreparing,
			Documents:           []model.SubsidyDocument{},
			Timeline:            []model.SubsidyEvent{},
			Requirements: []string{
				"DXアドバイザー派遣申込（3ヶ月前）",
				"DX推進計画書",
				"賃金引上げ計画",
				"2社以上の見積書（100万円以上）",
			},
		},
		{
			ID:                  "small-003",
			Name:                "小規模事業者持続化補助金（創業枠）",
			Type:                types.SubsidyTypeSubsidy,
			Provider:            "日本商工会議所",
			MaxAmount:           2000000,
			ApplicationDeadline: date(2025, time.November, 28),
			Status:              types.SubsidyStatusPreparing,
			Documents:           []model.SubsidyDocument{},
			Timeline:            []model.SubsidyEvent{},
			Requirements: []string{
				"経営計画書",
				"補助事業計画書",
				"創業3年未満の証明",
				"商工会議所の確認書",
			},
		},
	}
}
