package planner

import (
	"strconv"
	"strings"
)

// Step is one decision in a Plan: the strategy taken and what it cost.
type Step struct {
	Cost     float64
	Strategy string
}

// String renders "<cost>, <name>".
func (s Step) String() string {
	return strconv.FormatFloat(s.Cost, 'f', -1, 64) + ", " + s.Strategy
}

// Plan is the ordered strategy sequence chosen by BestPath, current step first.
type Plan []Step

// Total returns the sum of step costs.
func (p Plan) Total() float64 {
	var sum float64
	for _, s := range p {
		sum += s.Cost
	}

	return sum
}

// Names returns the strategy names in order.
func (p Plan) Names() []string {
	out := make([]string, len(p))
	for i, s := range p {
		out[i] = s.Strategy
	}

	return out
}

// String renders one "<cost>, <name>" line per step.
func (p Plan) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.String())
	}

	return b.String()
}
