package minimize

import (
	"fmt"
)

// Criterion selects which convergence metric ends a search.
type Criterion int

const (
	// IntervalWidth stops once b - a < eps.
	IntervalWidth Criterion = iota
	// FunctionValueDiff stops once |f(x1) - f(x2)| < eps.
	FunctionValueDiff
)

var criterionNames = map[string]Criterion{
	"interval": IntervalWidth,
	"function": FunctionValueDiff,
}

// ParseCriterion converts the command line spelling of a criterion, either
// "interval" or "function", into a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	c, ok := criterionNames[s]
	if !ok {
		return 0, fmt.Errorf(
			"Unknown stopping criterion '%s'. Use \"interval\" or \"function\".", s,
		)
	}
	return c, nil
}

func (c Criterion) String() string {
	switch c {
	case IntervalWidth:
		return "interval"
	case FunctionValueDiff:
		return "function"
	}
	return fmt.Sprintf("Criterion(%d)", int(c))
}

// Label describes the stopping condition for a given tolerance.
func (c Criterion) Label(eps float64) string {
	switch c {
	case IntervalWidth:
		return fmt.Sprintf("Interval Width < %g", eps)
	case FunctionValueDiff:
		return fmt.Sprintf("|f(x1) - f(x2)| < %g", eps)
	}
	panic(fmt.Sprintf("Unrecognized Criterion %d.", int(c)))
}
