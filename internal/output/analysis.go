package output

import (
	"fmt"

	calc "github.com/rpgo/retirement-savings/internal/calculation"
	"github.com/rpgo/retirement-savings/internal/domain"
	money "github.com/rpgo/retirement-savings/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Assessment summarizes whether a projection meets its retirement need.
type Assessment struct {
	OnTrack bool
	// Gap is required minus projected savings; negative means a surplus.
	Gap          decimal.Decimal
	GapPercent   decimal.Decimal
	DepletionAge *int
	Crossover    *calc.CrossoverResult
	Notes        []string
}

// AnalyzeProjection compares projected savings with required savings.
func AnalyzeProjection(result *domain.ProjectionResult) Assessment {
	future := money.NewMoneyFromDecimal(result.FutureSavings)
	required := money.NewMoneyFromDecimal(result.RequiredSavings)
	gap := required.Sub(future)

	a := Assessment{
		OnTrack:      future.GreaterThanOrEqual(required),
		Gap:          gap.Decimal,
		GapPercent:   gap.Ratio(required),
		DepletionAge: result.SavingsDepletionAge,
	}

	if len(result.SavingsSeries) > 0 && len(result.NeedsSeries) > 0 {
		if cr, err := calc.FindCrossover(result.SavingsSeries, result.NeedsSeries); err == nil {
			a.Crossover = cr
		}
	}

	if a.OnTrack {
		a.Notes = append(a.Notes, fmt.Sprintf("On track: projected savings exceed the need by %s", FormatCurrency(gap.Abs().Decimal)))
	} else {
		a.Notes = append(a.Notes, fmt.Sprintf("Short by %s (%s of required savings)", FormatCurrency(a.Gap), FormatPercentage(a.GapPercent)))
		if result.RequiredMonthlyContribution.IsPositive() {
			monthly := money.NewMoneyFromDecimal(result.RequiredMonthlyContribution)
			a.Notes = append(a.Notes, fmt.Sprintf("Contributing %s per month (%s in the first year, rising with income) would close the gap",
				monthly.Format(), monthly.Annual().Format()))
		}
	}
	if a.DepletionAge != nil {
		funded := *a.DepletionAge - result.Input.RetirementAge - 1
		a.Notes = append(a.Notes, fmt.Sprintf("Savings run out at age %d, funding %d of %d retirement years",
			*a.DepletionAge, funded, result.Input.YearsInRetirement()))
	}
	if a.Crossover != nil {
		dir := "above"
		if a.Crossover.FellBelow {
			dir = "below"
		}
		a.Notes = append(a.Notes, fmt.Sprintf("Savings move %s the needs curve around age %.1f", dir, a.Crossover.FractionalAge))
	}
	return a
}
