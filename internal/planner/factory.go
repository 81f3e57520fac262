package planner

import (
	"fmt"

	"hungerguard/internal/config"
	"hungerguard/internal/port"
)

// ProviderFactory is a function that creates a Planner from planner config.
type ProviderFactory func(cfg *config.PlannerConfig) (port.Planner, error)

// registry of planner provider factories, populated explicitly via
// RegisterProvider at startup.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a planner provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewPlanner creates a Planner from config using the registered factory.
func NewPlanner(cfg *config.PlannerConfig) (port.Planner, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown planner provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
