package calculation

import (
	"fmt"

	"github.com/rpgo/retirement-savings/internal/domain"
	"github.com/shopspring/decimal"
)

// CrossoverResult describes the first point where two balance series trade places.
type CrossoverResult struct {
	// Later of the two ages bracketing the crossover
	Age     int `json:"age"`
	PrevAge int `json:"prev_age"`

	// Fractional age where the linear interpolation of both series meet (e.g. 76.4)
	FractionalAge float64 `json:"fractional_age"`

	// Fraction (0..1) of the interval between PrevAge and Age
	Fraction decimal.Decimal `json:"fraction"`

	// Balance of the first series at the crossover
	Balance decimal.Decimal `json:"balance"`

	// True when the first series ends up below the second
	FellBelow bool `json:"fell_below"`
}

var oneCent = decimal.NewFromFloat(0.01)

// FindCrossover finds the first age at which series a and b cross, comparing only ages
// present in both. An exact tie at the first shared age is ignored as trivial. If the
// series never cross it returns nil, nil.
func FindCrossover(a, b []domain.SeriesPoint) (*CrossoverResult, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("one or both series are empty")
	}

	byAge := make(map[int]decimal.Decimal, len(b))
	for _, p := range b {
		byAge[p.Age] = p.Value
	}

	var (
		prev     *domain.SeriesPoint
		prevDiff decimal.Decimal
	)
	for i := range a {
		bv, ok := byAge[a[i].Age]
		if !ok {
			continue
		}
		curr := a[i]
		currDiff := curr.Value.Sub(bv)

		if prev == nil {
			prev, prevDiff = &a[i], currDiff
			continue
		}

		if currDiff.Abs().LessThan(oneCent) && !prevDiff.Abs().LessThan(oneCent) {
			return &CrossoverResult{
				Age:           curr.Age,
				PrevAge:       prev.Age,
				FractionalAge: float64(curr.Age),
				Fraction:      decimal.NewFromInt(1),
				Balance:       curr.Value,
				FellBelow:     prevDiff.IsPositive(),
			}, nil
		}

		if prevDiff.Mul(currDiff).IsNegative() {
			// diff(t) = prevDiff + t*(currDiff - prevDiff); solve diff(t) = 0
			t := prevDiff.Neg().Div(currDiff.Sub(prevDiff))
			if t.LessThan(decimal.Zero) {
				t = decimal.Zero
			} else if t.GreaterThan(decimal.NewFromInt(1)) {
				t = decimal.NewFromInt(1)
			}

			span := float64(curr.Age - prev.Age)
			balance := prev.Value.Add(curr.Value.Sub(prev.Value).Mul(t))
			return &CrossoverResult{
				Age:           curr.Age,
				PrevAge:       prev.Age,
				FractionalAge: float64(prev.Age) + t.InexactFloat64()*span,
				Fraction:      t,
				Balance:       balance.Round(2),
				FellBelow:     currDiff.IsNegative(),
			}, nil
		}

		prev, prevDiff = &a[i], currDiff
	}

	return nil, nil
}
