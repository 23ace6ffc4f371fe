package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/retirement-savings/internal/domain"
)

// CSVFormatter exports the combined chart series, one row per age.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Age", "Savings", "Needs"}); err != nil {
		return nil, err
	}
	for _, r := range CombineSeries(result.SavingsSeries, result.NeedsSeries) {
		if err := w.Write([]string{intToString(r.Age), r.Savings.StringFixed(2), r.Needs.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
