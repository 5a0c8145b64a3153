package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewSCMService); err != nil {
		return err
	}
	if err := container.Provide(NewStatusBarContribution); err != nil {
		return err
	}
	if err := container.Provide(NewWorkspaceCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *SCMService) SCM {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *StatusBarContribution) Contribution {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *WorkspaceCommand) Workspace {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
