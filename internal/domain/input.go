package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MaxAge bounds every age field so projection loops stay small.
const MaxAge = 150

// ErrInvalidInput is returned when a projection input violates its invariants.
var ErrInvalidInput = errors.New("invalid input")

// ProjectionInput holds the validated numeric inputs for a single projection run.
// Percentages are annual and stored as whole numbers (6 means 6%).
type ProjectionInput struct {
	CurrentAge     int `yaml:"current_age" json:"current_age"`
	RetirementAge  int `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy int `yaml:"life_expectancy" json:"life_expectancy"`

	CurrentSavings      decimal.Decimal `yaml:"current_savings" json:"current_savings"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	MonthlyExpense      decimal.Decimal `yaml:"monthly_expense" json:"monthly_expense"` // in today's dollars

	PreRetirementReturn  decimal.Decimal `yaml:"pre_retirement_return" json:"pre_retirement_return"`
	PostRetirementReturn decimal.Decimal `yaml:"post_retirement_return" json:"post_retirement_return"`
	AnnualInflation      decimal.Decimal `yaml:"annual_inflation" json:"annual_inflation"`
	AnnualIncomeIncrease decimal.Decimal `yaml:"annual_income_increase" json:"annual_income_increase"`

	// Optional; used to derive CurrentAge when it is omitted and to date the retirement.
	BirthDate *time.Time `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
}

// Validate checks the age ordering and sign invariants. Every failure wraps ErrInvalidInput.
func (in *ProjectionInput) Validate() error {
	if in.CurrentAge < 0 || in.RetirementAge < 0 || in.LifeExpectancy < 0 {
		return fmt.Errorf("%w: ages cannot be negative", ErrInvalidInput)
	}
	if in.LifeExpectancy > MaxAge {
		return fmt.Errorf("%w: life expectancy must be at most %d", ErrInvalidInput, MaxAge)
	}
	if in.RetirementAge <= in.CurrentAge {
		return fmt.Errorf("%w: retirement age (%d) must be greater than current age (%d)",
			ErrInvalidInput, in.RetirementAge, in.CurrentAge)
	}
	if in.LifeExpectancy < in.RetirementAge {
		return fmt.Errorf("%w: life expectancy (%d) cannot be less than retirement age (%d)",
			ErrInvalidInput, in.LifeExpectancy, in.RetirementAge)
	}

	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"current savings", in.CurrentSavings},
		{"monthly contribution", in.MonthlyContribution},
		{"monthly expense", in.MonthlyExpense},
		{"pre-retirement return", in.PreRetirementReturn},
		{"post-retirement return", in.PostRetirementReturn},
		{"annual inflation", in.AnnualInflation},
		{"annual income increase", in.AnnualIncomeIncrease},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative", ErrInvalidInput, a.name)
		}
	}

	return nil
}

// YearsToRetirement returns the accumulation phase length in whole years.
func (in *ProjectionInput) YearsToRetirement() int {
	return in.RetirementAge - in.CurrentAge
}

// YearsInRetirement returns the drawdown phase length in whole years.
func (in *ProjectionInput) YearsInRetirement() int {
	return in.LifeExpectancy - in.RetirementAge
}
