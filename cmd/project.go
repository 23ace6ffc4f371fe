package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rpgo/retirement-savings/internal/config"
	"github.com/rpgo/retirement-savings/internal/domain"
	"github.com/rpgo/retirement-savings/internal/output"
)

var (
	flagInput     string
	flagFormat    string
	flagOutputDir string

	// per-field inputs, kept as strings so "$30,000" and "6%" parse like the web form
	flagCurrentAge     int
	flagRetirementAge  int
	flagLifeExpectancy int
	flagCurrentSavings string
	flagContribution   string
	flagExpense        string
	flagPreReturn      string
	flagPostReturn     string
	flagInflation      string
	flagIncomeIncrease string
	flagBirthDate      string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project savings and retirement needs",
	Long: "Run a projection from a YAML input file (--input) or from per-field flags.\n" +
		"Without --output-dir the report is printed to stdout.",
	RunE: runProject,
}

func init() {
	example := config.NewInputParser().CreateExampleInput()

	f := projectCmd.Flags()
	f.StringVarP(&flagInput, "input", "i", "", "YAML input file (per-field flags are ignored when set)")
	f.StringVarP(&flagFormat, "format", "f", "", "Report format: console, csv, html, json, all (default from settings)")
	f.StringVarP(&flagOutputDir, "output-dir", "o", "", "Write the report to a timestamped file in this directory")

	f.IntVar(&flagCurrentAge, "current-age", example.CurrentAge, "Current age (ignored when --birth-date is set)")
	f.IntVar(&flagRetirementAge, "retirement-age", example.RetirementAge, "Age at retirement")
	f.IntVar(&flagLifeExpectancy, "life-expectancy", example.LifeExpectancy, "Age the savings must last to")
	f.StringVar(&flagCurrentSavings, "current-savings", example.CurrentSavings.String(), "Current savings")
	f.StringVar(&flagContribution, "monthly-contribution", example.MonthlyContribution.String(), "Monthly contribution")
	f.StringVar(&flagExpense, "monthly-expense", example.MonthlyExpense.String(), "Monthly expense in today's dollars")
	f.StringVar(&flagPreReturn, "pre-return", example.PreRetirementReturn.String(), "Annual return before retirement (%)")
	f.StringVar(&flagPostReturn, "post-return", example.PostRetirementReturn.String(), "Annual return after retirement (%)")
	f.StringVar(&flagInflation, "inflation", example.AnnualInflation.String(), "Annual inflation (%)")
	f.StringVar(&flagIncomeIncrease, "income-increase", example.AnnualIncomeIncrease.String(), "Annual contribution increase (%)")
	f.StringVar(&flagBirthDate, "birth-date", "", "Birth date YYYY-MM-DD; derives the current age and dates the retirement")

	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	in, err := projectionInput(cmd)
	if err != nil {
		return err
	}

	format := flagFormat
	if !cmd.Flags().Changed("format") {
		format = settings.Format
	}
	outDir := flagOutputDir
	if !cmd.Flags().Changed("output-dir") {
		outDir = settings.OutputDir
	}

	result, err := newEngine().Run(cmd.Context(), in)
	if err != nil {
		return err
	}

	if outDir == "" {
		if output.NormalizeFormatName(format) == "all" {
			return fmt.Errorf("format %q needs --output-dir", format)
		}
		data, err := output.Render(result, format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	paths, err := output.GenerateReport(result, format, outDir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", p)
	}
	return nil
}

func projectionInput(cmd *cobra.Command) (*domain.ProjectionInput, error) {
	parser := config.NewInputParser()
	if flagInput != "" {
		return parser.LoadFromFile(flagInput)
	}

	fields := map[string]string{
		"retirementAge":        strconv.Itoa(flagRetirementAge),
		"lifeExpectancy":       strconv.Itoa(flagLifeExpectancy),
		"currentSavings":       flagCurrentSavings,
		"monthlyContribution":  flagContribution,
		"monthlyExpense":       flagExpense,
		"preRetirementReturn":  flagPreReturn,
		"postRetirementReturn": flagPostReturn,
		"annualInflation":      flagInflation,
		"annualIncomeIncrease": flagIncomeIncrease,
		"birthDate":            flagBirthDate,
	}
	if flagBirthDate == "" || cmd.Flags().Changed("current-age") {
		fields["currentAge"] = strconv.Itoa(flagCurrentAge)
	}
	return parser.ParseForm(fields)
}
