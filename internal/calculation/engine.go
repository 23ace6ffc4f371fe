package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/retirement-savings/internal/domain"
	"github.com/rpgo/retirement-savings/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ProjectionEngine orchestrates a full savings projection
type ProjectionEngine struct {
	Solver *ContributionSolver
	Logger Logger
}

// NewProjectionEngine creates a new projection engine
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		Solver: NewContributionSolver(),
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the projection engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

func (pe *ProjectionEngine) logger() Logger {
	if pe.Logger == nil {
		return NopLogger{}
	}
	return pe.Logger
}

// assumptions is the float view of a validated input used by the core functions.
type assumptions struct {
	currentSavings, monthlyContribution, monthlyExpense float64
	preReturn, postReturn, inflation, incomeIncrease    float64
}

func newAssumptions(in *domain.ProjectionInput) assumptions {
	return assumptions{
		currentSavings:      in.CurrentSavings.InexactFloat64(),
		monthlyContribution: in.MonthlyContribution.InexactFloat64(),
		monthlyExpense:      in.MonthlyExpense.InexactFloat64(),
		preReturn:           in.PreRetirementReturn.InexactFloat64(),
		postReturn:          in.PostRetirementReturn.InexactFloat64(),
		inflation:           in.AnnualInflation.InexactFloat64(),
		incomeIncrease:      in.AnnualIncomeIncrease.InexactFloat64(),
	}
}

// Run computes the savings projection and the needs projection for one input.
//
// The savings track accumulates with the person's own contribution and then draws
// down the inflated expense. The needs track does the same with the contribution
// that would exactly reach the required savings at retirement.
func (pe *ProjectionEngine) Run(ctx context.Context, in *domain.ProjectionInput) (*domain.ProjectionResult, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: projection input is required", domain.ErrInvalidInput)
	}
	log := pe.logger()
	started := nowFunc()

	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("projection input validation failed: %w", err)
	}

	a := newAssumptions(in)
	inflatedExpense := InflateToRetirement(a.monthlyExpense, a.inflation, in.YearsToRetirement())
	futureSavings := FutureSavings(a.currentSavings, a.monthlyContribution, in.CurrentAge, in.RetirementAge, a.preReturn, a.incomeIncrease)
	requiredSavings := RequiredSavings(inflatedExpense, in.RetirementAge, in.LifeExpectancy, a.inflation, a.postReturn)
	log.Debugf("future savings %.2f, required savings %.2f, inflated monthly expense %.2f",
		futureSavings, requiredSavings, inflatedExpense)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	savingsTrack := buildTrack(in, a, a.monthlyContribution, inflatedExpense)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	solution, err := pe.Solver.Solve(a.currentSavings, requiredSavings, in.CurrentAge, in.RetirementAge, a.preReturn, a.incomeIncrease)
	if err != nil {
		log.Errorf("solving required contribution: %v", err)
		return nil, fmt.Errorf("failed to solve required monthly contribution: %w", err)
	}
	log.Debugf("required monthly contribution %.4f after %d iterations", solution.MonthlyContribution, solution.Iterations)

	needsTrack := buildTrack(in, a, solution.MonthlyContribution, inflatedExpense)

	result := &domain.ProjectionResult{
		FutureSavings:               decimal.NewFromFloat(futureSavings).Round(2),
		RequiredSavings:             decimal.NewFromFloat(requiredSavings).Round(2),
		SavingsSeries:               savingsTrack.Series(),
		NeedsSeries:                 needsTrack.Series(),
		InflatedMonthlyExpense:      decimal.NewFromFloat(inflatedExpense).Round(2),
		RequiredMonthlyContribution: decimal.NewFromFloat(solution.MonthlyContribution).Round(2),
		Input:                       *in,
	}

	if _, balance, ok := savingsTrack.Last(); ok {
		result.EndingBalance = decimal.NewFromFloat(balance).Round(2)
	}

	drawdown := make(domain.YearlyBalances)
	for age, v := range savingsTrack {
		if age > in.RetirementAge {
			drawdown[age] = v
		}
	}
	if age, ok := DepletionAge(drawdown); ok {
		result.SavingsDepletionAge = &age
		log.Infof("savings run out at age %d", age)
	}

	if in.BirthDate != nil {
		retirement := dateutil.AddYears(*in.BirthDate, in.RetirementAge)
		result.RetirementDate = &retirement
	}

	completed := nowFunc()
	result.Metadata = domain.CalculationMetadata{
		CalculationID: idFunc(),
		StartedAt:     started,
		CompletedAt:   completed,
		DurationMs:    completed.Sub(started).Milliseconds(),
	}

	log.Infof("projection %s complete: future %s, required %s",
		result.Metadata.CalculationID, result.FutureSavings.StringFixed(2), result.RequiredSavings.StringFixed(2))
	return result, nil
}

// buildTrack builds one accumulation + drawdown series for a given monthly contribution.
func buildTrack(in *domain.ProjectionInput, a assumptions, monthlyContribution, inflatedExpense float64) domain.YearlyBalances {
	accumulation := AnnualSavingsUntilRetirement(a.currentSavings, monthlyContribution, in.CurrentAge, in.RetirementAge, a.preReturn, a.incomeIncrease)

	start := a.currentSavings
	if v, ok := accumulation[in.RetirementAge]; ok {
		start = v
	}

	drawdown := DrawdownAfterRetirement(start, in.RetirementAge, in.LifeExpectancy, inflatedExpense, a.inflation, a.postReturn)
	return accumulation.Merge(drawdown)
}
