package static

import (
	"slices"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/scmbridge/config"
	"github.com/rios0rios0/scmbridge/internal/domain/entities"
	"github.com/rios0rios0/scmbridge/internal/domain/repositories"
)

// StaticProviderRepository is an SCM provider whose state comes from the
// workspace configuration and is changed only through its setters.
type StaticProviderRepository struct {
	id                 string
	label              string
	contextValue       string
	rootURI            string
	commitTemplate     string
	count              *int
	acceptInputCommand *entities.Command
	statusBarCommands  []entities.Command
	status             entities.WorkingDirectoryStatus
	disposed           bool

	onDidChange                  *entities.Emitter[struct{}]
	onDidChangeStatusBarCommands *entities.Emitter[[]entities.Command]
	onDidChangeCommitTemplate    *entities.Emitter[string]
}

var (
	_ repositories.ProviderRepository             = (*StaticProviderRepository)(nil)
	_ repositories.StatusBarCommandsNotifier      = (*StaticProviderRepository)(nil)
	_ repositories.StatusBarCommandsWriter        = (*StaticProviderRepository)(nil)
	_ repositories.CommitTemplateNotifier         = (*StaticProviderRepository)(nil)
	_ repositories.CommitTemplateWriter           = (*StaticProviderRepository)(nil)
	_ repositories.WorkingDirectoryStatusReporter = (*StaticProviderRepository)(nil)
)

// NewProviderRepository creates a static provider from its configuration.
func NewProviderRepository(cfg config.ProviderConfig) repositories.ProviderRepository {
	provider := &StaticProviderRepository{
		id:                           cfg.ID,
		label:                        cfg.Label,
		contextValue:                 cfg.ContextValue,
		rootURI:                      cfg.RootURI,
		commitTemplate:               cfg.CommitTemplate,
		statusBarCommands:            slices.Clone(cfg.StatusBarCommands),
		onDidChange:                  entities.NewEmitter[struct{}](),
		onDidChangeStatusBarCommands: entities.NewEmitter[[]entities.Command](),
		onDidChangeCommitTemplate:    entities.NewEmitter[string](),
	}
	if cfg.Count != nil {
		count := *cfg.Count
		provider.count = &count
	}
	if cfg.AcceptInputCommand != nil {
		command := *cfg.AcceptInputCommand
		provider.acceptInputCommand = &command
	}
	if cfg.Status != nil {
		provider.status = *cfg.Status
		provider.status.Changes = slices.Clone(cfg.Status.Changes)
	}
	return provider
}

func (p *StaticProviderRepository) ID() string             { return p.id }
func (p *StaticProviderRepository) Label() string          { return p.label }
func (p *StaticProviderRepository) ContextValue() string   { return p.contextValue }
func (p *StaticProviderRepository) RootURI() string        { return p.rootURI }
func (p *StaticProviderRepository) CommitTemplate() string { return p.commitTemplate }

func (p *StaticProviderRepository) Count() (int, bool) {
	if p.count == nil {
		return 0, false
	}
	return *p.count, true
}

func (p *StaticProviderRepository) AcceptInputCommand() *entities.Command {
	if p.acceptInputCommand == nil {
		return nil
	}
	command := *p.acceptInputCommand
	return &command
}

func (p *StaticProviderRepository) StatusBarCommands() []entities.Command {
	return slices.Clone(p.statusBarCommands)
}

func (p *StaticProviderRepository) WorkingDirectoryStatus() entities.WorkingDirectoryStatus {
	status := p.status
	status.Changes = slices.Clone(p.status.Changes)
	return status
}

func (p *StaticProviderRepository) OnDidChange() entities.Event[struct{}] {
	return p.onDidChange.Event()
}

func (p *StaticProviderRepository) OnDidChangeStatusBarCommands() entities.Event[[]entities.Command] {
	return p.onDidChangeStatusBarCommands.Event()
}

func (p *StaticProviderRepository) OnDidChangeCommitTemplate() entities.Event[string] {
	return p.onDidChangeCommitTemplate.Event()
}

// SetStatusBarCommands replaces the status-bar commands and announces them.
func (p *StaticProviderRepository) SetStatusBarCommands(commands []entities.Command) {
	if p.disposed {
		logger.Warnf("Ignoring status bar commands for disposed provider %q", p.id)
		return
	}

	p.statusBarCommands = slices.Clone(commands)
	p.onDidChangeStatusBarCommands.Fire(p.StatusBarCommands())
	p.onDidChange.Fire(struct{}{})
}

// SetCommitTemplate replaces the commit template and announces it.
func (p *StaticProviderRepository) SetCommitTemplate(template string) {
	if p.disposed {
		logger.Warnf("Ignoring commit template for disposed provider %q", p.id)
		return
	}

	p.commitTemplate = template
	p.onDidChangeCommitTemplate.Fire(template)
	p.onDidChange.Fire(struct{}{})
}

// Dispose drops every listener. Later calls are no-ops.
func (p *StaticProviderRepository) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	p.onDidChange.Dispose()
	p.onDidChangeStatusBarCommands.Dispose()
	p.onDidChangeCommitTemplate.Dispose()
	logger.Debugf("Disposed static provider %q", p.id)
}
