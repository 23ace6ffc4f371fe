package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/retirement-savings/internal/domain"
	"github.com/rpgo/retirement-savings/internal/output"
)

var (
	flagGoal              float64
	flagSolveSavings      float64
	flagSolveCurrentAge   int
	flagSolveRetireAge    int
	flagSolveReturn       float64
	flagSolveIncomeGrowth float64
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find the monthly contribution that reaches a savings goal",
	RunE:  runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.Float64Var(&flagGoal, "goal", 0, "Savings goal at retirement")
	f.Float64Var(&flagSolveSavings, "current-savings", 0, "Current savings")
	f.IntVar(&flagSolveCurrentAge, "current-age", 35, "Current age")
	f.IntVar(&flagSolveRetireAge, "retirement-age", 67, "Age at retirement")
	f.Float64Var(&flagSolveReturn, "return", 6, "Annual return before retirement (%)")
	f.Float64Var(&flagSolveIncomeGrowth, "income-increase", 2, "Annual contribution increase (%)")
	_ = solveCmd.MarkFlagRequired("goal")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, _ []string) error {
	goal := &domain.ContributionGoal{
		CurrentSavings:       decimal.NewFromFloat(flagSolveSavings),
		Goal:                 decimal.NewFromFloat(flagGoal),
		CurrentAge:           flagSolveCurrentAge,
		RetirementAge:        flagSolveRetireAge,
		AnnualReturn:         decimal.NewFromFloat(flagSolveReturn),
		AnnualIncomeIncrease: decimal.NewFromFloat(flagSolveIncomeGrowth),
	}
	sol, err := newSolver().SolveGoal(goal)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if sol.MonthlyContribution == 0 {
		fmt.Fprintf(out, "No contributions needed: current savings grow to %s\n",
			output.FormatCurrency(decimal.NewFromFloat(sol.LumpSumFutureValue)))
		return nil
	}
	fmt.Fprintf(out, "Required monthly contribution: %s\n", output.FormatCurrency(decimal.NewFromFloat(sol.MonthlyContribution)))
	fmt.Fprintf(out, "Shortfall covered:             %s\n", output.FormatCurrency(decimal.NewFromFloat(sol.Shortfall)))
	fmt.Fprintf(out, "Solver iterations:             %d\n", sol.Iterations)
	return nil
}
