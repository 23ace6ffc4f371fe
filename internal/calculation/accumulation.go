package calculation

import "github.com/rpgo/retirement-savings/internal/domain"

// AnnualSavingsUntilRetirement simulates the accumulation phase month by month and
// records the balance at each birthday from currentAge+1 through retirementAge.
// Contributions land at the end of each month; the annual contribution total grows
// by annualIncomeIncreasePct after every year.
func AnnualSavingsUntilRetirement(currentSavings, monthlyContribution float64, currentAge, retirementAge int, annualReturnPct, annualIncomeIncreasePct float64) domain.YearlyBalances {
	balances := make(domain.YearlyBalances)
	r := monthlyRate(annualReturnPct)
	increase := annualIncomeIncreasePct / 100

	savings := currentSavings
	annualContribution := monthlyContribution * 12
	contribution := monthlyContribution

	for age := currentAge; age < retirementAge; age++ {
		for month := 0; month < 12; month++ {
			savings = savings*(1+r) + contribution
		}
		balances[age+1] = savings

		annualContribution *= 1 + increase
		contribution = annualContribution / 12
	}

	return balances
}
