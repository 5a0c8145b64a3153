package controllers

import (
	"context"
	"fmt"
	"io"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/scmbridge/internal/domain/commands"
	"github.com/rios0rios0/scmbridge/internal/domain/entities"
	"github.com/rios0rios0/scmbridge/internal/infrastructure/repositories/memory"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command   commands.Workspace
	service   commands.SCM
	statusBar *memory.StatusBarRepository
}

// NewListController creates a new ListController.
func NewListController(
	command commands.Workspace,
	service commands.SCM,
	statusBar *memory.StatusBarRepository,
) *ListController {
	return &ListController{
		command:   command,
		service:   service,
		statusBar: statusBar,
	}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "List the repositories of a workspace",
		Long: `Register every provider of the workspace configuration and print
the resulting repositories, the current selection and the status bar.`,
	}
}

// Execute loads the workspace and prints its state.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) {
	applyVerbosity(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		logger.Error(err)
		return
	}

	if execErr := it.command.Execute(context.Background(), cfg); execErr != nil {
		logger.Errorf("List failed: %v", execErr)
		return
	}
	defer it.command.Close()

	it.render(cmd.OutOrStdout())
}

func (it *ListController) render(out io.Writer) {
	fmt.Fprintln(out, "Repositories:")
	for _, repository := range it.service.Repositories() {
		marker := " "
		if repository.Selected() {
			marker = "*"
		}
		provider := repository.Provider()
		fmt.Fprintf(out, "  %s %-16s %-20s %s\n", marker, provider.ID(), provider.Label(), provider.RootURI())
	}

	selected := make([]string, 0, len(it.service.SelectedRepositories()))
	for _, repository := range it.service.SelectedRepositories() {
		selected = append(selected, repository.Provider().ID())
	}
	fmt.Fprintf(out, "Selected: %s\n", strings.Join(selected, ", "))

	fmt.Fprintln(out, "Status bar:")
	for _, element := range it.statusBar.Elements() {
		fmt.Fprintf(out, "  [%s %d] %-20s %s\n", element.Alignment, element.Priority, element.ID, element.Text)
	}
}
