package repositories

import (
	"github.com/rios0rios0/scmbridge/internal/domain/entities"
)

// ProviderRepository abstracts one version-control backend (git, hg, ...)
// as seen by the SCM service. Optional values are reported as their zero
// value: an empty RootURI or CommitTemplate and a nil AcceptInputCommand mean
// the provider has none.
type ProviderRepository interface {
	entities.Disposable

	// ID identifies the provider instance (e.g. "git").
	ID() string

	// Label is the human readable provider name.
	Label() string

	// ContextValue is the tag hosts use to scope menus and key bindings.
	ContextValue() string

	// RootURI is the location of the repository root, if known.
	RootURI() string

	// CommitTemplate is the initial commit message, if any.
	CommitTemplate() string

	// Count returns the badge count and whether the provider reports one.
	Count() (int, bool)

	// AcceptInputCommand is run when the user accepts the input box.
	AcceptInputCommand() *entities.Command

	// StatusBarCommands returns the commands currently offered for the status bar.
	StatusBarCommands() []entities.Command

	// OnDidChange fires whenever any provider state changes.
	OnDidChange() entities.Event[struct{}]
}

// StatusBarCommandsNotifier is implemented by providers that announce
// replacements of their status-bar commands.
type StatusBarCommandsNotifier interface {
	OnDidChangeStatusBarCommands() entities.Event[[]entities.Command]
}

// CommitTemplateNotifier is implemented by providers that announce commit
// template changes.
type CommitTemplateNotifier interface {
	OnDidChangeCommitTemplate() entities.Event[string]
}

// StatusBarCommandsWriter is implemented by providers whose status-bar
// commands can be replaced from outside (for example by the host API).
type StatusBarCommandsWriter interface {
	SetStatusBarCommands(commands []entities.Command)
}

// CommitTemplateWriter is implemented by providers whose commit template can
// be replaced from outside.
type CommitTemplateWriter interface {
	SetCommitTemplate(template string)
}

// WorkingDirectoryStatusReporter is implemented by providers that can
// describe their working tree.
type WorkingDirectoryStatusReporter interface {
	WorkingDirectoryStatus() entities.WorkingDirectoryStatus
}
