package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rpgo/retirement-savings/internal/calculation"
	"github.com/rpgo/retirement-savings/internal/domain"
	"github.com/rpgo/retirement-savings/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Prints the values pinned by the regression tests for the reference scenario.
func main() {
	birth := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	in := &domain.ProjectionInput{
		CurrentAge:           35,
		RetirementAge:        66,
		LifeExpectancy:       95,
		CurrentSavings:       decimal.NewFromInt(30000),
		MonthlyContribution:  decimal.NewFromInt(500),
		MonthlyExpense:       decimal.NewFromInt(3000),
		PreRetirementReturn:  decimal.NewFromInt(6),
		PostRetirementReturn: decimal.NewFromInt(5),
		AnnualInflation:      decimal.NewFromInt(3),
		AnnualIncomeIncrease: decimal.NewFromInt(2),
		BirthDate:            &birth,
	}

	result, err := calculation.NewProjectionEngine().Run(context.Background(), in)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Reference scenario:")
	fmt.Printf("InflatedMonthlyExpense: %s\n", result.InflatedMonthlyExpense.StringFixed(2))
	fmt.Printf("FutureSavings: %s\n", result.FutureSavings.StringFixed(2))
	fmt.Printf("RequiredSavings: %s\n", result.RequiredSavings.StringFixed(2))
	fmt.Printf("RequiredMonthlyContribution: %s\n", result.RequiredMonthlyContribution.StringFixed(2))
	if result.SavingsDepletionAge != nil {
		fmt.Printf("SavingsDepletionAge: %d\n", *result.SavingsDepletionAge)
	}
	fmt.Printf("RetirementDate: %s (age %d on %s)\n", result.RetirementDate.Format("2006-01-02"),
		dateutil.Age(birth, *result.RetirementDate), result.RetirementDate.Format("Jan 2"))

	for _, age := range []int{36, 66, 67, 76, 77, 95} {
		fmt.Printf("age %d: savings %s needs %s\n", age, valueAt(result.SavingsSeries, age), valueAt(result.NeedsSeries, age))
	}

	fmt.Println("Solver:")
	sol, err := calculation.NewContributionSolver().Solve(30000, 2000000, 35, 66, 6, 2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Solve(30000, 2000000, 35, 66, 6, 2): %.10f after %d iterations\n", sol.MonthlyContribution, sol.Iterations)
}

func valueAt(series []domain.SeriesPoint, age int) string {
	for _, p := range series {
		if p.Age == age {
			return p.Value.StringFixed(2)
		}
	}
	return "-"
}
