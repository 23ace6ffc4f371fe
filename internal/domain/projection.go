package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// YearlyBalances maps an age to the projected account balance at that age.
type YearlyBalances map[int]float64

// Ages returns the keys in ascending order.
func (yb YearlyBalances) Ages() []int {
	ages := make([]int, 0, len(yb))
	for age := range yb {
		ages = append(ages, age)
	}
	sort.Ints(ages)
	return ages
}

// Last returns the balance at the highest age, or false if empty.
func (yb YearlyBalances) Last() (int, float64, bool) {
	if len(yb) == 0 {
		return 0, 0, false
	}
	ages := yb.Ages()
	age := ages[len(ages)-1]
	return age, yb[age], true
}

// Merge returns a new map holding both sets of entries. Entries from other win on overlap.
func (yb YearlyBalances) Merge(other YearlyBalances) YearlyBalances {
	merged := make(YearlyBalances, len(yb)+len(other))
	for age, v := range yb {
		merged[age] = v
	}
	for age, v := range other {
		merged[age] = v
	}
	return merged
}

// Series converts the map into chart points sorted by age, rounded to cents.
func (yb YearlyBalances) Series() []SeriesPoint {
	points := make([]SeriesPoint, 0, len(yb))
	for _, age := range yb.Ages() {
		points = append(points, SeriesPoint{
			Age:   age,
			Value: decimal.NewFromFloat(yb[age]).Round(2),
		})
	}
	return points
}

// SeriesPoint is one {age, value} pair of a chart series.
type SeriesPoint struct {
	Age   int             `json:"age"`
	Value decimal.Decimal `json:"value"`
}

// ProjectionResult is the full output of one projection run.
type ProjectionResult struct {
	FutureSavings   decimal.Decimal `json:"future_savings"`
	RequiredSavings decimal.Decimal `json:"required_savings"`
	SavingsSeries   []SeriesPoint   `json:"savings_series"`
	NeedsSeries     []SeriesPoint   `json:"needs_series"`

	InflatedMonthlyExpense      decimal.Decimal `json:"inflated_monthly_expense"`
	RequiredMonthlyContribution decimal.Decimal `json:"required_monthly_contribution"`
	EndingBalance               decimal.Decimal `json:"ending_balance"` // savings left at life expectancy
	SavingsDepletionAge         *int            `json:"savings_depletion_age,omitempty"`
	RetirementDate              *time.Time      `json:"retirement_date,omitempty"`

	Input    ProjectionInput     `json:"input"`
	Metadata CalculationMetadata `json:"calculation_metadata"`
}

// CalculationMetadata records bookkeeping for a single run.
type CalculationMetadata struct {
	CalculationID string    `json:"calculation_id"`
	StartedAt     time.Time `json:"started_at"`
	CompletedAt   time.Time `json:"completed_at"`
	DurationMs    int64     `json:"duration_ms"`
}

// Shortfall returns RequiredSavings minus FutureSavings (negative means a surplus).
func (pr *ProjectionResult) Shortfall() decimal.Decimal {
	return pr.RequiredSavings.Sub(pr.FutureSavings)
}

// IsOnTrack reports whether projected savings cover the required amount.
func (pr *ProjectionResult) IsOnTrack() bool {
	return pr.FutureSavings.GreaterThanOrEqual(pr.RequiredSavings)
}
