package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validGoal() ContributionGoal {
	return ContributionGoal{
		CurrentSavings:       decimal.NewFromInt(30000),
		Goal:                 decimal.NewFromInt(1000000),
		CurrentAge:           30,
		RetirementAge:        65,
		AnnualReturn:         decimal.NewFromInt(6),
		AnnualIncomeIncrease: decimal.NewFromInt(2),
	}
}

func TestContributionGoalValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ContributionGoal)
		wantErr string
	}{
		{"valid", func(*ContributionGoal) {}, ""},
		{"retire now", func(g *ContributionGoal) { g.RetirementAge = g.CurrentAge }, ""},
		{"retirement age above max", func(g *ContributionGoal) { g.RetirementAge = 1000000 }, "retirement age must be at most 150"},
		{"retirement age overflowing months", func(g *ContributionGoal) { g.RetirementAge = 768614336404564651 }, "retirement age must be at most 150"},
		{"negative age", func(g *ContributionGoal) { g.CurrentAge = -1 }, "ages cannot be negative"},
		{"retirement before current", func(g *ContributionGoal) { g.RetirementAge = 20 }, "retirement age (20) cannot be less than current age (30)"},
		{"negative return", func(g *ContributionGoal) { g.AnnualReturn = decimal.NewFromInt(-1) }, "annual return cannot be negative"},
		{"negative income increase", func(g *ContributionGoal) { g.AnnualIncomeIncrease = decimal.NewFromFloat(-0.5) }, "annual income increase cannot be negative"},
		{"negative goal", func(g *ContributionGoal) { g.Goal = decimal.NewFromInt(-5) }, "goal cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGoal()
			tt.mutate(&g)
			err := g.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
