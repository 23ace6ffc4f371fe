package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rpgo/retirement-savings/internal/calculation"
	"github.com/rpgo/retirement-savings/internal/config"
	"github.com/rpgo/retirement-savings/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	input, err := config.NewInputParser().LoadFromFile("../testdata/example_input.yaml")
	require.NoError(t, err)

	result, err := calculation.NewProjectionEngine().Run(context.Background(), input)
	require.NoError(t, err)

	dir := t.TempDir()
	paths, err := output.GenerateReport(result, "all", dir)
	require.NoError(t, err)
	require.Len(t, paths, 4)

	byExt := map[string]string{}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		byExt[filepath.Ext(p)] = string(data)
	}

	assert.Contains(t, byExt[".txt"], "RETIREMENT SAVINGS PROJECTION")
	assert.True(t, strings.HasPrefix(byExt[".csv"], "Age,Savings,Needs\n36,"))
	assert.Contains(t, byExt[".html"], "<polyline")

	var decoded struct {
		FutureSavings string `json:"future_savings"`
		Input         struct {
			RetirementAge int `json:"retirement_age"`
		} `json:"input"`
	}
	require.NoError(t, json.Unmarshal([]byte(byExt[".json"]), &decoded))
	assert.Equal(t, "864636.63", decoded.FutureSavings)
	assert.Equal(t, 66, decoded.Input.RetirementAge)
}
