package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheetforge/sheet-api/internal/formula"
)

func TestEvaluate_BareVariable(t *testing.T) {
	assert.Equal(t, 3, formula.Evaluate("STR", map[string]float64{"STR": 3}))
}

func TestEvaluate_Arithmetic(t *testing.T) {
	vars := map[string]float64{"STR": 2, "DEX": 2, "WIS": 4}

	assert.Equal(t, 4, formula.Evaluate("DEX * 2", vars))
	assert.Equal(t, 6, formula.Evaluate("STR + WIS", vars))
	assert.Equal(t, 10, formula.Evaluate("(STR + WIS) / 2 + 7", vars))
	assert.Equal(t, 12, formula.Evaluate("3 * 4", nil))
}

func TestEvaluate_FloorsResult(t *testing.T) {
	assert.Equal(t, 2, formula.Evaluate("5 / 2", nil))
	assert.Equal(t, 3, formula.Evaluate("STR / 2", map[string]float64{"STR": 7}))
}

func TestEvaluate_ClampsNegative(t *testing.T) {
	vars := map[string]float64{"STR": 2, "WIS": -5}
	assert.Equal(t, 0, formula.Evaluate("STR + WIS", vars))
	assert.Equal(t, 0, formula.Evaluate("WIS", vars))
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	assert.Equal(t, 0, formula.Evaluate("STR / 0", map[string]float64{"STR": 4}))
}

func TestEvaluate_Empty(t *testing.T) {
	assert.Equal(t, 0, formula.Evaluate("", nil))
	assert.Equal(t, 0, formula.Evaluate("   ", nil))
}

func TestEvaluate_UnknownVariable(t *testing.T) {
	assert.Equal(t, 0, formula.Evaluate("STR + CHA", map[string]float64{"STR": 4}))
}

func TestEvaluate_Malformed(t *testing.T) {
	vars := map[string]float64{"STR": 4}

	assert.Equal(t, 0, formula.Evaluate("STR +", vars))
	assert.Equal(t, 0, formula.Evaluate("((STR)", vars))
	assert.Equal(t, 0, formula.Evaluate("import os", vars))
	assert.Equal(t, 0, formula.Evaluate(`len("x")`, vars))
}

func TestEvaluate_WordBoundarySubstitution(t *testing.T) {
	// STR must not clobber the inside of STRENGTH
	vars := map[string]float64{"STR": 2, "STRENGTH": 10}
	assert.Equal(t, 12, formula.Evaluate("STR + STRENGTH", vars))
}

func TestEvaluate_NeverPanics(t *testing.T) {
	vars := map[string]float64{"STR": 3, "DEX": 1}
	expressions := []string{
		"STR", "STR+DEX", "STR*(DEX+1)", "STR/DEX", "STR-DEX",
		"((STR))", "STR / (DEX - 1)", "0", ".", "()", "-STR",
	}
	for _, expr := range expressions {
		assert.NotPanics(t, func() {
			result := formula.Evaluate(expr, vars)
			assert.GreaterOrEqual(t, result, 0, "expression %q", expr)
		})
	}
}
