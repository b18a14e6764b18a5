package sheet

import (
	"encoding/json"
	"fmt"
	"math"
)

// ValueType describes the numeric domain of a schema
type ValueType string

// Supported value types
const (
	ValueTypeInteger ValueType = "integer"
	ValueTypeReal    ValueType = "real"
)

// boundsEpsilon narrows exclusive real bounds to the nearest legal
// inclusive value for UI widget attributes.
const boundsEpsilon = 1e-6

// MaxBound is the upper bound of a numeric schema. It is either a concrete
// number or the "dynamic" sentinel, meaning the bound is a paired field's
// live value supplied at evaluation time.
type MaxBound struct {
	Dynamic bool
	Value   float64
}

// UnmarshalJSON accepts either a number or the string "dynamic"
func (b *MaxBound) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "dynamic" {
			return fmt.Errorf("maximum must be a number or \"dynamic\", got %q", s)
		}
		b.Dynamic = true
		b.Value = 0
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("maximum must be a number or \"dynamic\"")
	}
	b.Dynamic = false
	b.Value = v
	return nil
}

// MarshalJSON renders the dynamic sentinel as the string "dynamic"
func (b MaxBound) MarshalJSON() ([]byte, error) {
	if b.Dynamic {
		return json.Marshal("dynamic")
	}
	return json.Marshal(b.Value)
}

// NumericSchema describes the legal values for one numeric field
type NumericSchema struct {
	ValueType        ValueType `json:"valueType"`
	Minimum          *float64  `json:"minimum,omitempty"`
	Maximum          *MaxBound `json:"maximum,omitempty"`
	ExclusiveMinimum *float64  `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64  `json:"exclusiveMaximum,omitempty"`
	Step             *float64  `json:"step,omitempty"`
	Default          *float64  `json:"default,omitempty"`
}

// HasDynamicMaximum reports whether the upper bound is the dynamic sentinel
func (s *NumericSchema) HasDynamicMaximum() bool {
	return s.Maximum != nil && s.Maximum.Dynamic
}

// DefaultValue returns the schema default, or 0 when none is set
func (s *NumericSchema) DefaultValue() float64 {
	if s.Default != nil {
		return *s.Default
	}
	return 0
}

// Accepts decides whether value satisfies every constraint of the schema.
// When the maximum is dynamic, dynamicCap supplies the live cap; a nil
// dynamicCap leaves that bound unenforced.
func (s *NumericSchema) Accepts(value float64, dynamicCap *float64) bool {
	if s.ValueType == ValueTypeInteger && value != math.Trunc(value) {
		return false
	}
	if s.Minimum != nil && value < *s.Minimum {
		return false
	}
	if s.Maximum != nil {
		if s.Maximum.Dynamic {
			if dynamicCap != nil && value > *dynamicCap {
				return false
			}
		} else if value > s.Maximum.Value {
			return false
		}
	}
	if s.ExclusiveMinimum != nil && value <= *s.ExclusiveMinimum {
		return false
	}
	if s.ExclusiveMaximum != nil && value >= *s.ExclusiveMaximum {
		return false
	}
	if s.Step != nil && !isMultipleOf(value, *s.Step) {
		return false
	}
	return true
}

// EffectiveBounds computes the inclusive [min, max] window for UI widgets.
// Exclusive bounds are narrowed to the nearest legal inclusive value
// (integer: one; real: a minimal epsilon). Unconstrained sides default to
// the 32-bit integer extremes.
func (s *NumericSchema) EffectiveBounds(dynamicCap *float64) (float64, float64) {
	lo := float64(math.MinInt32)
	hi := float64(math.MaxInt32)

	if s.Minimum != nil {
		lo = *s.Minimum
	}
	if s.ExclusiveMinimum != nil {
		cand := *s.ExclusiveMinimum + s.narrowing()
		if cand > lo {
			lo = cand
		}
	}
	if s.Maximum != nil {
		if s.Maximum.Dynamic {
			if dynamicCap != nil {
				hi = *dynamicCap
			}
		} else {
			hi = s.Maximum.Value
		}
	}
	if s.ExclusiveMaximum != nil {
		cand := *s.ExclusiveMaximum - s.narrowing()
		if cand < hi {
			hi = cand
		}
	}
	return lo, hi
}

func (s *NumericSchema) narrowing() float64 {
	if s.ValueType == ValueTypeInteger {
		return 1
	}
	return boundsEpsilon
}

// Problems reports structural violations within the schema itself
func (s *NumericSchema) Problems() []string {
	var problems []string

	if s.ValueType != ValueTypeInteger && s.ValueType != ValueTypeReal {
		problems = append(problems, fmt.Sprintf("valueType must be %q or %q", ValueTypeInteger, ValueTypeReal))
	}
	if s.Minimum != nil && s.Maximum != nil && !s.Maximum.Dynamic && *s.Minimum > s.Maximum.Value {
		problems = append(problems, fmt.Sprintf("minimum %v exceeds maximum %v", *s.Minimum, s.Maximum.Value))
	}
	if s.ExclusiveMinimum != nil && s.ExclusiveMaximum != nil && *s.ExclusiveMinimum >= *s.ExclusiveMaximum {
		problems = append(problems, fmt.Sprintf("exclusiveMinimum %v must be below exclusiveMaximum %v",
			*s.ExclusiveMinimum, *s.ExclusiveMaximum))
	}
	if s.Step != nil && *s.Step <= 0 {
		problems = append(problems, "step must be positive")
	}
	return problems
}

func isMultipleOf(value, step float64) bool {
	rem := math.Abs(math.Mod(value, step))
	return rem < boundsEpsilon || step-rem < boundsEpsilon
}
