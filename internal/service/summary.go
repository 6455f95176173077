package service

import (
	"context"
	"time"

	"github.com/mbellini/foodly/backend/internal/types"
)

// SummaryService combines daily totals and targets into a progress view.
type SummaryService struct {
	targets *TargetService
	ledger  *LedgerService
}

// NewSummaryService creates a new SummaryService instance
func NewSummaryService(targets *TargetService, ledger *LedgerService) *SummaryService {
	return &SummaryService{targets: targets, ledger: ledger}
}

// Summary returns totals, targets and per-nutrient completion percentages
// for one date (today when empty).
func (s *SummaryService) Summary(ctx context.Context, date string) (*types.DaySummary, error) {
	totals, err := s.ledger.DayTotals(ctx, date)
	if err != nil {
		return nil, err
	}
	targets, err := s.targets.ComputeTargets(ctx)
	if err != nil {
		return nil, err
	}

	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	}

	return &types.DaySummary{
		Date:    date,
		Totals:  totals,
		Targets: targets,
		Progress: types.DayProgress{
			KcalPct:  pct(totals.Kcal, targets.Kcal),
			ProtPct:  pct(totals.ProtG, targets.ProtG),
			CarbPct:  pct(totals.CarbG, targets.CarbG),
			FatPct:   pct(totals.FatG, targets.FatG),
			FiberPct: pct(totals.FiberG, targets.FiberG),
		},
	}, nil
}

// pct is a percentage rounded to one decimal, 0 when the target is 0.
func pct(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return round1(100 * part / whole)
}
