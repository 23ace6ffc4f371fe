package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/rpgo/retirement-savings/internal/domain"
)

// ErrDidNotConverge is returned when the contribution search exceeds its iteration cap.
var ErrDidNotConverge = errors.New("contribution solver did not converge")

const (
	DefaultSolverMaxIterations = 10000
	DefaultSolverTolerance     = 0.01 // one cent
)

// ContributionSolver searches for the monthly contribution that closes the gap
// between the compounded current balance and a savings goal.
type ContributionSolver struct {
	MaxIterations int
	Tolerance     float64
}

// NewContributionSolver returns a solver with the default cap and tolerance.
func NewContributionSolver() *ContributionSolver {
	return &ContributionSolver{
		MaxIterations: DefaultSolverMaxIterations,
		Tolerance:     DefaultSolverTolerance,
	}
}

// ContributionSolution is the outcome of a contribution search.
type ContributionSolution struct {
	MonthlyContribution float64 `json:"monthly_contribution"`
	Shortfall           float64 `json:"shortfall"`
	LumpSumFutureValue  float64 `json:"lump_sum_future_value"`
	Iterations          int     `json:"iterations"`
}

func (s *ContributionSolver) limits() (int, float64) {
	maxIter, tol := DefaultSolverMaxIterations, DefaultSolverTolerance
	if s != nil && s.MaxIterations > 0 {
		maxIter = s.MaxIterations
	}
	if s != nil && s.Tolerance > 0 {
		tol = s.Tolerance
	}
	return maxIter, tol
}

// Solve finds the starting monthly contribution that, stepped up by
// annualIncomeIncreasePct each year, grows to the part of futureSavingsGoal not
// already covered by currentSavings. It returns exactly zero when no contributions
// are needed.
//
// The search walks up in fixed steps while under target and, on overshoot, backs off
// one step and halves the step size.
func (s *ContributionSolver) Solve(currentSavings, futureSavingsGoal float64, currentAge, retirementAge int, annualReturnPct, annualIncomeIncreasePct float64) (ContributionSolution, error) {
	for _, v := range []float64{currentSavings, futureSavingsGoal, annualReturnPct, annualIncomeIncreasePct} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ContributionSolution{}, fmt.Errorf("%w: solver inputs must be finite", domain.ErrInvalidInput)
		}
	}

	if currentAge < 0 || retirementAge > domain.MaxAge {
		return ContributionSolution{}, fmt.Errorf("%w: ages must be between 0 and %d", domain.ErrInvalidInput, domain.MaxAge)
	}

	months := (retirementAge - currentAge) * 12
	r := monthlyRate(annualReturnPct)
	stepUp := annualIncomeIncreasePct / 100

	lump := FutureValueOfLumpSum(currentSavings, currentAge, retirementAge, annualReturnPct)
	if lump >= futureSavingsGoal {
		return ContributionSolution{LumpSumFutureValue: lump}, nil
	}

	shortfall := futureSavingsGoal - lump
	if months <= 0 {
		return ContributionSolution{}, fmt.Errorf("%w: no months left to contribute toward a shortfall of %.2f",
			domain.ErrInvalidInput, shortfall)
	}

	maxIter, tol := s.limits()
	contribution := 0.0
	step := shortfall / float64(months)

	for i := 1; i <= maxIter; i++ {
		fv := contributionStreamValue(contribution, r, stepUp, months)
		if math.Abs(fv-shortfall) <= tol {
			return ContributionSolution{
				MonthlyContribution: contribution,
				Shortfall:           shortfall,
				LumpSumFutureValue:  lump,
				Iterations:          i,
			}, nil
		}
		if fv < shortfall {
			contribution += step
		} else {
			contribution -= step
			step /= 2
		}
	}

	return ContributionSolution{}, fmt.Errorf("%w after %d iterations (shortfall %.2f)", ErrDidNotConverge, maxIter, shortfall)
}

// SolveGoal validates the goal and solves it.
func (s *ContributionSolver) SolveGoal(g *domain.ContributionGoal) (ContributionSolution, error) {
	if err := g.Validate(); err != nil {
		return ContributionSolution{}, err
	}
	return s.Solve(
		g.CurrentSavings.InexactFloat64(), g.Goal.InexactFloat64(),
		g.CurrentAge, g.RetirementAge,
		g.AnnualReturn.InexactFloat64(), g.AnnualIncomeIncrease.InexactFloat64(),
	)
}

// SolveMonthlyContribution runs a default solver and returns only the contribution.
func SolveMonthlyContribution(currentSavings, futureSavingsGoal float64, currentAge, retirementAge int, annualReturnPct, annualIncomeIncreasePct float64) (float64, error) {
	sol, err := NewContributionSolver().Solve(currentSavings, futureSavingsGoal, currentAge, retirementAge, annualReturnPct, annualIncomeIncreasePct)
	if err != nil {
		return 0, err
	}
	return sol.MonthlyContribution, nil
}
