package port

import "context"

// AlertSender notifies a stakeholder (driver, warehouse manager, coordinator)
// about an urgent allocation. Delivery is best-effort.
type AlertSender interface {
	SendAlert(ctx context.Context, recipient, message string) error
}
