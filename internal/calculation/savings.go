package calculation

import "math"

// FutureSavings projects the account value at retirement from the current balance and
// a monthly contribution that rises by annualIncomeIncreasePct once a year.
//
// When retirementAge <= currentAge the contribution loop does not run and the
// balance is returned unchanged (or discounted for a negative span).
func FutureSavings(currentSavings, monthlyContribution float64, currentAge, retirementAge int, annualReturnPct, annualIncomeIncreasePct float64) float64 {
	months := (retirementAge - currentAge) * 12
	r := monthlyRate(annualReturnPct)
	lump := lumpSumFutureValue(currentSavings, r, months)
	stream := contributionStreamValue(monthlyContribution, r, annualIncomeIncreasePct/100, months)
	return lump + stream
}

// FutureValueOfLumpSum returns only the compounded current balance.
func FutureValueOfLumpSum(currentSavings float64, currentAge, retirementAge int, annualReturnPct float64) float64 {
	return lumpSumFutureValue(currentSavings, monthlyRate(annualReturnPct), (retirementAge-currentAge)*12)
}

// RequiredSavings returns the balance needed at retirement to fund a monthly expense
// that grows with inflation every month, discounted at the post-retirement return.
// monthlyExpenseAtRetirement must already be expressed in retirement-date dollars.
func RequiredSavings(monthlyExpenseAtRetirement float64, retirementAge, lifeExpectancy int, annualInflationPct, postRetirementReturnPct float64) float64 {
	months := (lifeExpectancy - retirementAge) * 12
	inflation := monthlyRate(annualInflationPct)
	r := monthlyRate(postRetirementReturnPct)

	total := 0.0
	expense := monthlyExpenseAtRetirement
	for i := 0; i < months; i++ {
		expense *= 1 + inflation
		total += expense / math.Pow(1+r, float64(i))
	}
	return total
}

// InflateToRetirement grows today's expense by annual inflation over the given years.
func InflateToRetirement(monthlyExpense, annualInflationPct float64, years int) float64 {
	return monthlyExpense * math.Pow(1+annualInflationPct/100, float64(years))
}
