package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestYearlyBalancesAgesAndSeries(t *testing.T) {
	yb := YearlyBalances{68: 3, 66: 1234.5678, 67: 2.5}

	assert.Equal(t, []int{66, 67, 68}, yb.Ages())

	series := yb.Series()
	if assert.Len(t, series, 3) {
		assert.Equal(t, 66, series[0].Age)
		assert.Equal(t, "1234.57", series[0].Value.StringFixed(2))
		assert.Equal(t, 68, series[2].Age)
		assert.True(t, series[2].Value.Equal(decimal.NewFromInt(3)))
	}
}

func TestYearlyBalancesMerge(t *testing.T) {
	acc := YearlyBalances{36: 10, 37: 20}
	draw := YearlyBalances{37: 99, 38: 5}

	merged := acc.Merge(draw)
	assert.Equal(t, YearlyBalances{36: 10, 37: 99, 38: 5}, merged)
	// inputs untouched
	assert.Equal(t, 20.0, acc[37])
}

func TestYearlyBalancesLast(t *testing.T) {
	_, _, ok := YearlyBalances{}.Last()
	assert.False(t, ok)

	age, v, ok := YearlyBalances{40: 1, 42: 7, 41: 3}.Last()
	assert.True(t, ok)
	assert.Equal(t, 42, age)
	assert.Equal(t, 7.0, v)
}

func TestProjectionResultShortfall(t *testing.T) {
	pr := &ProjectionResult{
		FutureSavings:   decimal.NewFromInt(800),
		RequiredSavings: decimal.NewFromInt(1000),
	}
	assert.True(t, pr.Shortfall().Equal(decimal.NewFromInt(200)))
	assert.False(t, pr.IsOnTrack())

	pr.FutureSavings = decimal.NewFromInt(1000)
	assert.True(t, pr.IsOnTrack())
}
