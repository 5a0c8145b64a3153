package commands

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/scmbridge/internal/domain/entities"
	"github.com/rios0rios0/scmbridge/internal/domain/repositories"
)

// StatusBarCommandPriority is the priority every SCM status-bar entry gets.
const StatusBarCommandPriority = 102

// Contribution is the interface for pieces started and stopped with the host.
type Contribution interface {
	OnStart()
	OnStop()
}

// StatusBarContribution mirrors the status-bar commands announced by SCM
// providers into the host status bar. Entries for commands that disappear
// from a later announcement are left in place.
type StatusBarContribution struct {
	service   SCM
	statusBar repositories.StatusBarRepository

	subscriptions []entities.Disposable
}

// NewStatusBarContribution creates a contribution bridging service to statusBar.
func NewStatusBarContribution(
	service SCM,
	statusBar repositories.StatusBarRepository,
) *StatusBarContribution {
	return &StatusBarContribution{
		service:   service,
		statusBar: statusBar,
	}
}

// OnStart subscribes to every registered repository and to every repository
// registered later.
func (it *StatusBarContribution) OnStart() {
	for _, repository := range it.service.Repositories() {
		it.watch(repository)
	}
	it.subscriptions = append(it.subscriptions, it.service.OnDidAddRepository()(it.watch))
}

// OnStop releases every subscription made since OnStart.
func (it *StatusBarContribution) OnStop() {
	for _, subscription := range it.subscriptions {
		subscription.Dispose()
	}
	it.subscriptions = nil
}

func (it *StatusBarContribution) watch(repository *SCMRepository) {
	notifier, ok := repository.Provider().(repositories.StatusBarCommandsNotifier)
	if !ok {
		return
	}

	event := notifier.OnDidChangeStatusBarCommands()
	if event == nil {
		return
	}

	logger.Debugf("Watching status bar commands of provider %q", repository.Provider().ID())
	it.subscriptions = append(it.subscriptions, event(it.OnCommands))
}

// OnCommands creates or replaces one status-bar entry per command.
func (it *StatusBarContribution) OnCommands(commands []entities.Command) {
	for _, command := range commands {
		it.statusBar.SetElement(command.ID, entities.StatusBarEntry{
			Text:      command.Label,
			Alignment: entities.StatusBarAlignmentLeft,
			Priority:  StatusBarCommandPriority,
			Command:   command.ID,
			Tooltip:   command.Category,
		})
	}
}
