package noop

import (
	"context"
	"log"

	"hungerguard/internal/port"
)

type noopRecorder struct{}

// NewRecorder creates a no-op PlanRecorder that logs a one-line summary of
// each plan instead of persisting it.
func NewRecorder() port.PlanRecorder {
	return &noopRecorder{}
}

func (r *noopRecorder) Record(_ context.Context, rec *port.PlanRecord) error {
	log.Printf("[NOOP RECORD] plan %s focus=%s people=%d food=%dkg value=₹%d",
		rec.ID, rec.Focus, rec.Impact.PeopleServed, rec.Impact.FoodSavedKg, rec.Impact.EconomicValueRupees)
	return nil
}

func (r *noopRecorder) Ping(_ context.Context) error {
	return nil
}
