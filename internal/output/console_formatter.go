package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/retirement-savings/internal/domain"
)

var (
	colorBorder = lipgloss.Color("#575653")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorRed    = lipgloss.Color("#D14D41")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Width(55).
			Align(lipgloss.Center).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	dimStyle    = lipgloss.NewStyle().Foreground(colorBorder)
	goodStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	badStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// ConsoleFormatter renders a terminal report: summary, year-by-year table and assessment.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var b strings.Builder
	in := result.Input

	b.WriteString(titleStyle.Render("RETIREMENT SAVINGS PROJECTION"))
	b.WriteString("\n\n")

	summary := [][2]string{
		{"Ages", fmt.Sprintf("%d now, retire at %d, plan to %d", in.CurrentAge, in.RetirementAge, in.LifeExpectancy)},
		{"Future Savings", FormatCurrency(result.FutureSavings)},
		{"Required Savings", FormatCurrency(result.RequiredSavings)},
		{"Monthly Expense at Retirement", FormatCurrency(result.InflatedMonthlyExpense)},
		{"Required Monthly Contribution", FormatCurrency(result.RequiredMonthlyContribution)},
		{"Balance at Life Expectancy", FormatCurrency(result.EndingBalance)},
	}
	if result.RetirementDate != nil {
		summary = append(summary, [2]string{"Retirement Date", result.RetirementDate.Format("2006-01-02")})
	}
	for _, kv := range summary {
		fmt.Fprintf(&b, "  %s %s\n", headerStyle.Render(fmt.Sprintf("%-30s", kv[0]+":")), kv[1])
	}
	b.WriteString("\n")

	rows := make([][]string, 0, len(result.SavingsSeries))
	for _, r := range CombineSeries(result.SavingsSeries, result.NeedsSeries) {
		rows = append(rows, []string{intToString(r.Age), FormatCurrency(r.Savings), FormatCurrency(r.Needs)})
	}
	b.WriteString(renderTable([]string{"Age", "Savings", "Needs"}, rows))
	b.WriteString("\n")

	a := AnalyzeProjection(result)
	status := goodStyle.Render("ON TRACK")
	if !a.OnTrack {
		status = badStyle.Render("SHORTFALL")
	}
	fmt.Fprintf(&b, "  %s %s\n", headerStyle.Render("Assessment:"), status)
	for _, n := range a.Notes {
		fmt.Fprintf(&b, "  - %s\n", n)
	}
	return []byte(b.String()), nil
}

// renderTable draws a bordered table; every column after the first is right-aligned.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	rule := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return dimStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
	}
	line := func(cells []string, style lipgloss.Style) string {
		var sb strings.Builder
		sb.WriteString(dimStyle.Render("│"))
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i == 0 {
				sb.WriteString(style.Render(fmt.Sprintf(" %-*s ", w, cell)))
			} else {
				sb.WriteString(style.Render(fmt.Sprintf(" %*s ", w, cell)))
			}
			sb.WriteString(dimStyle.Render("│"))
		}
		sb.WriteString("\n")
		return sb.String()
	}

	var b strings.Builder
	b.WriteString(rule("╭", "┬", "╮"))
	b.WriteString(line(headers, headerStyle))
	b.WriteString(rule("├", "┼", "┤"))
	for _, row := range rows {
		b.WriteString(line(row, lipgloss.NewStyle()))
	}
	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}
