package output

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	calc "github.com/rpgo/retirement-savings/internal/calculation"
	"github.com/rpgo/retirement-savings/internal/domain"
	"github.com/shopspring/decimal"
)

// buildTestResult runs the engine on the reference scenario with a fixed clock and ID.
func buildTestResult(t *testing.T) *domain.ProjectionResult {
	t.Helper()
	calc.SetNowFunc(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) })
	calc.SetIDFunc(func() string { return "fixture-id" })
	t.Cleanup(func() {
		calc.SetNowFunc(time.Now)
		calc.SetIDFunc(uuid.NewString)
	})

	in := &domain.ProjectionInput{
		CurrentAge:           35,
		RetirementAge:        66,
		LifeExpectancy:       95,
		CurrentSavings:       decimal.NewFromInt(30000),
		MonthlyContribution:  decimal.NewFromInt(500),
		MonthlyExpense:       decimal.NewFromInt(3000),
		PreRetirementReturn:  decimal.NewFromInt(6),
		PostRetirementReturn: decimal.NewFromInt(5),
		AnnualInflation:      decimal.NewFromInt(3),
		AnnualIncomeIncrease: decimal.NewFromInt(2),
	}
	result, err := calc.NewProjectionEngine().Run(context.Background(), in)
	if err != nil {
		t.Fatalf("engine run failed: %v", err)
	}
	return result
}

func point(age int, v string) domain.SeriesPoint {
	return domain.SeriesPoint{Age: age, Value: decimal.RequireFromString(v)}
}
