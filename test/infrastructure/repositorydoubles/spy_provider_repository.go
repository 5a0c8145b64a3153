//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/scmbridge/internal/domain/entities"
	"github.com/rios0rios0/scmbridge/internal/domain/repositories"
)

// SpyProviderRepository implements repositories.ProviderRepository as a configurable spy.
// It has no optional notification streams.
type SpyProviderRepository struct {
	// --- identity ---
	ProviderID    string
	ProviderLabel string
	Context       string

	// --- optional values ---
	Root          string
	Template      string
	BadgeCount    *int
	AcceptCommand *entities.Command
	BarCommands   []entities.Command
	ChangeEmitter *entities.Emitter[struct{}]

	// --- Dispose ---
	DisposeCount int
	// spy: hook run on every Dispose call
	OnDispose func()
}

var _ repositories.ProviderRepository = (*SpyProviderRepository)(nil)

// NewSpyProviderRepository creates a spy with the given id as id and label.
func NewSpyProviderRepository(id string) *SpyProviderRepository {
	return &SpyProviderRepository{
		ProviderID:    id,
		ProviderLabel: id,
		ChangeEmitter: entities.NewEmitter[struct{}](),
	}
}

func (p *SpyProviderRepository) ID() string             { return p.ProviderID }
func (p *SpyProviderRepository) Label() string          { return p.ProviderLabel }
func (p *SpyProviderRepository) ContextValue() string   { return p.Context }
func (p *SpyProviderRepository) RootURI() string        { return p.Root }
func (p *SpyProviderRepository) CommitTemplate() string { return p.Template }

func (p *SpyProviderRepository) Count() (int, bool) {
	if p.BadgeCount == nil {
		return 0, false
	}
	return *p.BadgeCount, true
}

func (p *SpyProviderRepository) AcceptInputCommand() *entities.Command { return p.AcceptCommand }

func (p *SpyProviderRepository) StatusBarCommands() []entities.Command { return p.BarCommands }

func (p *SpyProviderRepository) OnDidChange() entities.Event[struct{}] {
	if p.ChangeEmitter == nil {
		p.ChangeEmitter = entities.NewEmitter[struct{}]()
	}
	return p.ChangeEmitter.Event()
}

func (p *SpyProviderRepository) Dispose() {
	p.DisposeCount++
	if p.OnDispose != nil {
		p.OnDispose()
	}
}

// SpyStatusBarProviderRepository is a SpyProviderRepository that also
// announces status-bar commands and commit templates.
type SpyStatusBarProviderRepository struct {
	*SpyProviderRepository

	CommandsEmitter *entities.Emitter[[]entities.Command]
	TemplateEmitter *entities.Emitter[string]
}

var (
	_ repositories.StatusBarCommandsNotifier = (*SpyStatusBarProviderRepository)(nil)
	_ repositories.CommitTemplateNotifier    = (*SpyStatusBarProviderRepository)(nil)
)

// NewSpyStatusBarProviderRepository creates a notifying spy with the given id.
func NewSpyStatusBarProviderRepository(id string) *SpyStatusBarProviderRepository {
	return &SpyStatusBarProviderRepository{
		SpyProviderRepository: NewSpyProviderRepository(id),
		CommandsEmitter:       entities.NewEmitter[[]entities.Command](),
		TemplateEmitter:       entities.NewEmitter[string](),
	}
}

func (p *SpyStatusBarProviderRepository) OnDidChangeStatusBarCommands() entities.Event[[]entities.Command] {
	return p.CommandsEmitter.Event()
}

func (p *SpyStatusBarProviderRepository) OnDidChangeCommitTemplate() entities.Event[string] {
	return p.TemplateEmitter.Event()
}

// Announce fires the status-bar commands notification.
func (p *SpyStatusBarProviderRepository) Announce(commands ...entities.Command) {
	p.BarCommands = commands
	p.CommandsEmitter.Fire(commands)
}
