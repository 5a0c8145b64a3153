package memory

import (
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/scmbridge/internal/domain/entities"
	"github.com/rios0rios0/scmbridge/internal/domain/repositories"
)

// Element is one status-bar entry together with its id.
type Element struct {
	ID string `json:"id"`
	entities.StatusBarEntry
}

// StatusBarRepository is a host status bar kept in memory. Entries are never
// evicted; SetElement overwrites by id.
type StatusBarRepository struct {
	elements map[string]entities.StatusBarEntry
	onUpsert []func(id string)
}

var _ repositories.StatusBarRepository = (*StatusBarRepository)(nil)

// NewStatusBarRepository creates an empty status bar.
func NewStatusBarRepository() *StatusBarRepository {
	return &StatusBarRepository{
		elements: make(map[string]entities.StatusBarEntry),
	}
}

// OnUpsert registers a hook called after every SetElement.
func (r *StatusBarRepository) OnUpsert(hook func(id string)) {
	r.onUpsert = append(r.onUpsert, hook)
}

func (r *StatusBarRepository) SetElement(id string, entry entities.StatusBarEntry) {
	r.elements[id] = entry
	logger.Debugf("Status bar element %q set to %q", id, entry.Text)

	for _, hook := range r.onUpsert {
		hook(id)
	}
}

// Get returns the entry stored under id.
func (r *StatusBarRepository) Get(id string) (entities.StatusBarEntry, bool) {
	entry, ok := r.elements[id]
	return entry, ok
}

// Elements returns every entry, left-aligned first, then by descending
// priority, then by id.
func (r *StatusBarRepository) Elements() []Element {
	result := make([]Element, 0, len(r.elements))
	for id, entry := range r.elements {
		result = append(result, Element{ID: id, StatusBarEntry: entry})
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Alignment != b.Alignment {
			return a.Alignment < b.Alignment
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.ID < b.ID
	})
	return result
}
