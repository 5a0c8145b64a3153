package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/scmbridge/config"
	"github.com/rios0rios0/scmbridge/internal/domain/entities"
	"github.com/rios0rios0/scmbridge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/scmbridge/internal/infrastructure/repositories"
)

// Workspace is the interface for the workspace command.
type Workspace interface {
	Execute(ctx context.Context, cfg *config.Config) error
	Close()
}

// WorkspaceCommand registers the providers of a workspace configuration with
// the SCM service and starts the status-bar contribution.
type WorkspaceCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
	service          SCM
	contribution     Contribution

	repositories  []*SCMRepository
	subscriptions []entities.Disposable
	started       bool
}

// NewWorkspaceCommand creates a new WorkspaceCommand.
func NewWorkspaceCommand(
	providerRegistry *infraRepos.ProviderRegistry,
	service SCM,
	contribution Contribution,
) *WorkspaceCommand {
	return &WorkspaceCommand{
		providerRegistry: providerRegistry,
		service:          service,
		contribution:     contribution,
	}
}

// Execute registers every configured provider. When a provider cannot be
// built the repositories registered so far are disposed again.
func (it *WorkspaceCommand) Execute(ctx context.Context, cfg *config.Config) error {
	if !it.started {
		it.contribution.OnStart()
		it.started = true
	}

	registered := make([]*SCMRepository, 0, len(cfg.Providers))
	for _, providerCfg := range cfg.Providers {
		if err := ctx.Err(); err != nil {
			disposeAll(registered)
			return err
		}

		provider, err := it.providerRegistry.Get(providerCfg)
		if err != nil {
			disposeAll(registered)
			return fmt.Errorf("failed to create provider %q: %w", providerCfg.ID, err)
		}

		repository := it.service.RegisterSCMProvider(provider)
		it.configureInput(repository, providerCfg)
		registered = append(registered, repository)
		logger.Infof("Registered provider %q (%s)", provider.ID(), provider.Label())
	}

	for i, providerCfg := range cfg.Providers {
		if providerCfg.Selected && !registered[i].Selected() {
			registered[i].SetSelected(true)
		}
	}

	// Announce the configured commands now that the contribution is listening.
	for _, repository := range registered {
		if writer, ok := repository.Provider().(repositories.StatusBarCommandsWriter); ok {
			writer.SetStatusBarCommands(repository.Provider().StatusBarCommands())
		}
	}

	it.repositories = append(it.repositories, registered...)
	logger.Infof(
		"Workspace ready: %d repositories, %d selected",
		len(it.service.Repositories()), len(it.service.SelectedRepositories()),
	)
	return nil
}

// configureInput seeds the repository input box and keeps its value in step
// with the provider's commit template.
func (it *WorkspaceCommand) configureInput(repository *SCMRepository, cfg config.ProviderConfig) {
	input := repository.Input()
	if cfg.Placeholder != "" {
		input.SetPlaceholder(cfg.Placeholder)
	}
	if template := repository.Provider().CommitTemplate(); template != "" {
		input.SetValue(template)
	}
	if cfg.MaxSubjectLength > 0 {
		input.SetValidateInput(entities.NewSubjectLengthValidator(cfg.MaxSubjectLength))
	}

	notifier, ok := repository.Provider().(repositories.CommitTemplateNotifier)
	if !ok || notifier.OnDidChangeCommitTemplate() == nil {
		return
	}
	it.subscriptions = append(it.subscriptions, notifier.OnDidChangeCommitTemplate()(input.SetValue))
}

// Close stops the contribution and disposes every repository this command
// registered.
func (it *WorkspaceCommand) Close() {
	for _, subscription := range it.subscriptions {
		subscription.Dispose()
	}
	it.subscriptions = nil

	if it.started {
		it.contribution.OnStop()
		it.started = false
	}

	disposeAll(it.repositories)
	it.repositories = nil
}

func disposeAll(repositories []*SCMRepository) {
	for _, repository := range repositories {
		repository.Dispose()
	}
}
