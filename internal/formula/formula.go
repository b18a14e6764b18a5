// Package formula evaluates the restricted arithmetic expressions used for
// attribute-derived quantities such as inventory slot counts.
//
// An expression is arithmetic over named numeric variables, e.g.
// "3 + STR * 2". Evaluation never fails from the caller's point of view:
// any problem degrades to 0 with a logged diagnostic, because a slot count
// must always render something.
package formula

import (
	"log/slog"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	exprlang "github.com/expr-lang/expr"
)

// allowedPattern is what may remain after variable substitution. Anything
// else (letters in particular) means an unknown variable or an injection
// attempt, and the expression is rejected before it reaches the evaluator.
var allowedPattern = regexp.MustCompile(`^[0-9+\-*/(). \t]*$`)

// Evaluate substitutes vars into expression, evaluates the arithmetic, and
// returns the floored result clamped to be non-negative. Substitution is
// whole-word, so a variable STR never corrupts an occurrence of STRENGTH.
// Returns 0 for empty, malformed, or unresolvable expressions.
func Evaluate(expression string, vars map[string]float64) int {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return 0
	}

	substituted := substitute(expression, vars)
	if !allowedPattern.MatchString(substituted) {
		slog.Warn("formula contains unresolved or illegal tokens",
			"expression", expression,
			"substituted", substituted)
		return 0
	}

	result, err := exprlang.Eval(substituted, nil)
	if err != nil {
		slog.Warn("formula evaluation failed",
			"expression", expression,
			"error", err.Error())
		return 0
	}

	value, ok := toFloat(result)
	if !ok {
		slog.Warn("formula produced a non-numeric result",
			"expression", expression)
		return 0
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		slog.Warn("formula produced a non-finite result",
			"expression", expression)
		return 0
	}

	floored := int(math.Floor(value))
	if floored < 0 {
		return 0
	}
	return floored
}

// substitute replaces whole-word occurrences of each variable with its
// value. Longer names go first so overlapping names never partially match.
func substitute(expression string, vars map[string]float64) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(name) + `\b`)
		if err != nil {
			continue
		}
		value := strconv.FormatFloat(vars[name], 'f', -1, 64)
		if vars[name] < 0 {
			value = "(" + value + ")"
		}
		expression = re.ReplaceAllString(expression, value)
	}
	return expression
}

func toFloat(result interface{}) (float64, bool) {
	switch v := result.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}
