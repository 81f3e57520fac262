package port

import (
	"context"

	"hungerguard/internal/domain"
)

// PlanInput carries a raw surplus report into a planner.
type PlanInput struct {
	RawReport string
	Focus     domain.PriorityFocus
}

// PlanOutput is a rendered allocation plan. Metrics is the ground truth
// computed during composition; generative planners leave it nil and the
// orchestration falls back to re-extracting metrics from the text.
type PlanOutput struct {
	PlanText  string
	Metrics   *domain.ImpactMetrics
	ModelUsed string
}

// Planner abstracts allocation-plan generation.
type Planner interface {
	GeneratePlan(ctx context.Context, input PlanInput) (*PlanOutput, error)
}
