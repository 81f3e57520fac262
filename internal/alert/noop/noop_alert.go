package noop

import (
	"context"
	"log"

	"hungerguard/internal/port"
)

type noopSender struct{}

// NewSender creates a no-op AlertSender that logs alerts to stdout.
func NewSender() port.AlertSender {
	return &noopSender{}
}

func (s *noopSender) SendAlert(_ context.Context, recipient, message string) error {
	log.Printf("ALERT SENT TO %s: %s", recipient, message)
	return nil
}
