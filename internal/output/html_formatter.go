package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/rpgo/retirement-savings/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report with an inline SVG chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"deref": func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	},
}).Parse(htmlTemplateSource))

const (
	chartWidth  = 800
	chartHeight = 320
	chartMargin = 50
)

// chartGeometry holds pre-computed SVG coordinates so the template stays declarative.
type chartGeometry struct {
	Width, Height int
	Left, Right   int
	Top, Bottom   int
	SavingsPoints string
	NeedsPoints   string
	RetirementX   float64
	MinAge        int
	MaxAge        int
	MaxLabel      string
}

func buildChart(rows []ChartRow, retirementAge int) *chartGeometry {
	if len(rows) == 0 {
		return nil
	}
	g := &chartGeometry{
		Width: chartWidth, Height: chartHeight,
		Left: chartMargin, Right: chartWidth - chartMargin,
		Top: chartMargin / 2, Bottom: chartHeight - chartMargin,
		MinAge: rows[0].Age, MaxAge: rows[len(rows)-1].Age,
	}

	maxValue := decimal.NewFromInt(1)
	for _, r := range rows {
		maxValue = decimal.Max(maxValue, r.Savings, r.Needs)
	}
	g.MaxLabel = FormatCurrency(maxValue)
	top := maxValue.InexactFloat64()

	span := float64(g.MaxAge - g.MinAge)
	if span == 0 {
		span = 1
	}
	x := func(age int) float64 {
		return float64(g.Left) + float64(age-g.MinAge)/span*float64(g.Right-g.Left)
	}
	y := func(v decimal.Decimal) float64 {
		return float64(g.Bottom) - v.InexactFloat64()/top*float64(g.Bottom-g.Top)
	}

	var savings, needs []string
	for _, r := range rows {
		savings = append(savings, fmt.Sprintf("%.1f,%.1f", x(r.Age), y(r.Savings)))
		needs = append(needs, fmt.Sprintf("%.1f,%.1f", x(r.Age), y(r.Needs)))
	}
	g.SavingsPoints = strings.Join(savings, " ")
	g.NeedsPoints = strings.Join(needs, " ")
	g.RetirementX = x(retirementAge)
	return g
}

func (h HTMLFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	rows := CombineSeries(result.SavingsSeries, result.NeedsSeries)

	data := struct {
		*domain.ProjectionResult
		Assessment Assessment
		Rows       []ChartRow
		Chart      *chartGeometry
	}{result, AnalyzeProjection(result), rows, buildChart(rows, result.Input.RetirementAge)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
