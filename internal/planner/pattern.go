package planner

import (
	"context"
	"time"

	"hungerguard/internal/port"
)

// PatternPlanner is the deterministic planner: regex extraction over the raw
// report followed by template composition. It is pure, does no I/O, and
// never fails.
type PatternPlanner struct {
	composer *Composer
}

// NewPatternPlanner creates a PatternPlanner on the wall clock.
func NewPatternPlanner() *PatternPlanner {
	return &PatternPlanner{composer: NewComposer()}
}

// NewPatternPlannerWithClock creates a PatternPlanner on a fixed clock.
func NewPatternPlannerWithClock(now func() time.Time) *PatternPlanner {
	return &PatternPlanner{composer: NewComposerWithClock(now)}
}

func (p *PatternPlanner) GeneratePlan(_ context.Context, input port.PlanInput) (*port.PlanOutput, error) {
	items, total := Extract(input.RawReport)
	plan := p.composer.Compose(items, total, input.Focus)
	return &port.PlanOutput{
		PlanText:  plan.Text,
		Metrics:   &plan.Metrics,
		ModelUsed: "pattern",
	}, nil
}
