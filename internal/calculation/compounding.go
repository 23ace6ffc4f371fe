package calculation

import "math"

// monthlyRate converts an annual percentage (6 means 6%) to a monthly fraction.
func monthlyRate(annualPct float64) float64 {
	return annualPct / 12 / 100
}

// lumpSumFutureValue compounds principal monthly for the given number of months.
// A negative month count discounts instead of compounding.
func lumpSumFutureValue(principal, rate float64, months int) float64 {
	return principal * math.Pow(1+rate, float64(months))
}

// contributionStreamValue is the value after `months` months of end-of-month
// contributions. The contribution grows by stepUp at the start of every
// contribution year after the first.
func contributionStreamValue(contribution, rate, stepUp float64, months int) float64 {
	total := 0.0
	current := contribution
	for i := 0; i < months; i++ {
		if i > 0 && i%12 == 0 {
			current *= 1 + stepUp
		}
		total += current * math.Pow(1+rate, float64(months-i-1))
	}
	return total
}
