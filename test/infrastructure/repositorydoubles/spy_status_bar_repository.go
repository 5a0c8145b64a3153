//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/scmbridge/internal/domain/entities"
	"github.com/rios0rios0/scmbridge/internal/domain/repositories"
)

// SetElementCall records a single invocation of SetElement.
type SetElementCall struct {
	ID    string
	Entry entities.StatusBarEntry
}

// SpyStatusBarRepository implements repositories.StatusBarRepository as a spy.
type SpyStatusBarRepository struct {
	Calls []SetElementCall
}

var _ repositories.StatusBarRepository = (*SpyStatusBarRepository)(nil)

func (s *SpyStatusBarRepository) SetElement(id string, entry entities.StatusBarEntry) {
	s.Calls = append(s.Calls, SetElementCall{ID: id, Entry: entry})
}
