package port

import (
	"context"
	"time"

	"hungerguard/internal/domain"
)

// PlanRecord is a generated allocation plan queued for the background
// record side effect.
type PlanRecord struct {
	ID        string
	Focus     string
	PlanText  string
	Summary   string
	Impact    domain.ImpactMetrics
	CreatedAt time.Time
}

// PlanRecorder persists allocation plans best-effort. Record failures are
// logged and ignored; they never affect a response.
type PlanRecorder interface {
	Record(ctx context.Context, rec *PlanRecord) error
	Ping(ctx context.Context) error
}
