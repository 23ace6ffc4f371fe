package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ContributionGoal asks for the monthly contribution that grows the current savings
// to Goal by RetirementAge. Percentages are annual whole numbers, as in ProjectionInput.
type ContributionGoal struct {
	CurrentSavings       decimal.Decimal `yaml:"current_savings" json:"current_savings"`
	Goal                 decimal.Decimal `yaml:"goal" json:"goal"`
	CurrentAge           int             `yaml:"current_age" json:"current_age"`
	RetirementAge        int             `yaml:"retirement_age" json:"retirement_age"`
	AnnualReturn         decimal.Decimal `yaml:"annual_return" json:"annual_return"`
	AnnualIncomeIncrease decimal.Decimal `yaml:"annual_income_increase" json:"annual_income_increase"`
}

// Validate applies the same age bounds and sign rules as ProjectionInput.Validate.
// A goal may have RetirementAge equal to CurrentAge; the solver then needs no months
// unless there is a shortfall.
func (g *ContributionGoal) Validate() error {
	if g.CurrentAge < 0 || g.RetirementAge < 0 {
		return fmt.Errorf("%w: ages cannot be negative", ErrInvalidInput)
	}
	if g.RetirementAge > MaxAge {
		return fmt.Errorf("%w: retirement age must be at most %d", ErrInvalidInput, MaxAge)
	}
	if g.RetirementAge < g.CurrentAge {
		return fmt.Errorf("%w: retirement age (%d) cannot be less than current age (%d)",
			ErrInvalidInput, g.RetirementAge, g.CurrentAge)
	}

	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"current savings", g.CurrentSavings},
		{"goal", g.Goal},
		{"annual return", g.AnnualReturn},
		{"annual income increase", g.AnnualIncomeIncrease},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative", ErrInvalidInput, a.name)
		}
	}
	return nil
}
