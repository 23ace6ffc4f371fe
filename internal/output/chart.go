package output

import (
	"github.com/rpgo/retirement-savings/internal/domain"
	"github.com/shopspring/decimal"
)

// ChartRow is one age on the savings-versus-needs chart.
type ChartRow struct {
	Age     int             `json:"age"`
	Savings decimal.Decimal `json:"savings"`
	Needs   decimal.Decimal `json:"needs"`
}

// CombineSeries lines up both series by the ages of the savings series.
// Ages missing from the needs series chart as zero.
func CombineSeries(savings, needs []domain.SeriesPoint) []ChartRow {
	byAge := make(map[int]decimal.Decimal, len(needs))
	for _, p := range needs {
		byAge[p.Age] = p.Value
	}

	rows := make([]ChartRow, 0, len(savings))
	for _, p := range savings {
		n, ok := byAge[p.Age]
		if !ok {
			n = decimal.Zero
		}
		rows = append(rows, ChartRow{Age: p.Age, Savings: p.Value, Needs: n})
	}
	return rows
}
