package metrics

import (
	"go.uber.org/dig"
)

// RegisterProviders registers the metrics collectors with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(NewSCMMetrics)
}
