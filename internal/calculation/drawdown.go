package calculation

import (
	"math"

	"github.com/rpgo/retirement-savings/internal/domain"
)

// DrawdownAfterRetirement simulates withdrawals from startingSavings, the balance at
// retirementAge. Each year the balance earns the post-retirement return monthly while
// the monthly expense inflates monthly; the year's withdrawals come out at year end.
// Balances are recorded for ages retirementAge+1 through lifeExpectancy and are
// floored at zero. A depleted account stays at zero; no debt is carried forward.
func DrawdownAfterRetirement(startingSavings float64, retirementAge, lifeExpectancy int, monthlyExpenseAtRetirement, annualInflationPct, postRetirementReturnPct float64) domain.YearlyBalances {
	balances := make(domain.YearlyBalances)
	r := monthlyRate(postRetirementReturnPct)
	inflation := monthlyRate(annualInflationPct)

	savings := startingSavings
	expense := monthlyExpenseAtRetirement

	for age := retirementAge; age < lifeExpectancy; age++ {
		withdrawn := 0.0
		for month := 0; month < 12; month++ {
			savings *= 1 + r
			expense *= 1 + inflation
			withdrawn += expense
		}
		savings = math.Max(savings-withdrawn, 0)
		balances[age+1] = savings
	}

	return balances
}

// DepletionAge returns the first age whose balance is zero, if any.
func DepletionAge(balances domain.YearlyBalances) (int, bool) {
	for _, age := range balances.Ages() {
		if balances[age] <= 0 {
			return age, true
		}
	}
	return 0, false
}
