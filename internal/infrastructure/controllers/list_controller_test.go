//go:build unit

package controllers_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/scmbridge/config"
	"github.com/rios0rios0/scmbridge/internal/domain/commands"
	"github.com/rios0rios0/scmbridge/internal/infrastructure/controllers"
	infraRepos "github.com/rios0rios0/scmbridge/internal/infrastructure/repositories"
	"github.com/rios0rios0/scmbridge/internal/infrastructure/repositories/memory"
	"github.com/rios0rios0/scmbridge/internal/infrastructure/repositories/static"
)

func newListController() (*controllers.ListController, *commands.SCMService) {
	registry := infraRepos.NewProviderRegistry()
	registry.Register(config.KindStatic, static.NewProviderRepository)
	service := commands.NewSCMService()
	statusBar := memory.NewStatusBarRepository()
	contribution := commands.NewStatusBarContribution(service, statusBar)
	workspace := commands.NewWorkspaceCommand(registry, service, contribution)
	return controllers.NewListController(workspace, service, statusBar), service
}

func newCobraCommand(t *testing.T, cfgPath string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "list"}
	cmd.Flags().String("config", cfgPath, "")
	cmd.Flags().Bool("verbose", false, "")
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	return cmd, out
}

func TestListControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should print repositories, selection and status bar", func(t *testing.T) {
		t.Parallel()

		// given
		cfgPath := filepath.Join(t.TempDir(), "scmbridge.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte(`
providers:
  - id: git
    label: Git
    status_bar_commands:
      - id: git.sync
        label: Sync
  - id: hg
    label: Mercurial
    selected: true
`), 0o600))
		controller, service := newListController()
		cmd, out := newCobraCommand(t, cfgPath)

		// when
		controller.Execute(cmd, nil)

		// then
		output := out.String()
		assert.Contains(t, output, "* git")
		assert.Contains(t, output, "* hg")
		assert.Contains(t, output, "Selected: git, hg")
		assert.Contains(t, output, "[left 102] git.sync")
		assert.Empty(t, service.Repositories())
	})

	t.Run("should print nothing when the config cannot be loaded", func(t *testing.T) {
		t.Parallel()

		// given
		controller, _ := newListController()
		cmd, out := newCobraCommand(t, filepath.Join(t.TempDir(), "missing.yaml"))

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Empty(t, out.String())
	})
}

func TestControllerBinds(t *testing.T) {
	t.Parallel()

	t.Run("should bind list and serve subcommands", func(t *testing.T) {
		t.Parallel()

		// given
		listController, _ := newListController()
		serveController := controllers.NewServeController(nil, nil, nil, nil)

		// when
		all := controllers.NewControllers(listController, serveController)

		// then
		require.Len(t, *all, 2)
		assert.Equal(t, "list", (*all)[0].GetBind().Use)
		assert.Equal(t, "serve", (*all)[1].GetBind().Use)
	})
}
