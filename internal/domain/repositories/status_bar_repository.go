package repositories

import (
	"github.com/rios0rios0/scmbridge/internal/domain/entities"
)

// StatusBarRepository is the host status bar. SetElement creates the entry
// keyed by id or replaces the one already there.
type StatusBarRepository interface {
	SetElement(id string, entry entities.StatusBarEntry)
}
