//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/scmbridge/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// CommandBuilder helps create test commands with a fluent interface.
type CommandBuilder struct {
	*testkit.BaseBuilder
	id        string
	label     string
	category  string
	tooltip   string
	arguments []string
}

// NewCommandBuilder creates a new command builder with sensible defaults.
func NewCommandBuilder() *CommandBuilder {
	return &CommandBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "git.sync",
		label:       "Sync",
		category:    "Git",
	}
}

// WithID sets the command id.
func (b *CommandBuilder) WithID(id string) *CommandBuilder {
	b.id = id
	return b
}

// WithLabel sets the label shown in the status bar.
func (b *CommandBuilder) WithLabel(label string) *CommandBuilder {
	b.label = label
	return b
}

// WithCategory sets the command category.
func (b *CommandBuilder) WithCategory(category string) *CommandBuilder {
	b.category = category
	return b
}

// WithTooltip sets the command tooltip.
func (b *CommandBuilder) WithTooltip(tooltip string) *CommandBuilder {
	b.tooltip = tooltip
	return b
}

// WithArguments sets the command arguments.
func (b *CommandBuilder) WithArguments(arguments ...string) *CommandBuilder {
	b.arguments = arguments
	return b
}

// Build creates the command (satisfies testkit.Builder interface).
func (b *CommandBuilder) Build() interface{} {
	return b.BuildCommand()
}

// BuildCommand creates the command with a concrete return type.
func (b *CommandBuilder) BuildCommand() entities.Command {
	return entities.Command{
		ID:        b.id,
		Label:     b.label,
		Category:  b.category,
		Tooltip:   b.tooltip,
		Arguments: b.arguments,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *CommandBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "git.sync"
	b.label = "Sync"
	b.category = "Git"
	b.tooltip = ""
	b.arguments = nil
	return b
}

// Clone creates a deep copy of the CommandBuilder.
func (b *CommandBuilder) Clone() testkit.Builder {
	return &CommandBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		label:       b.label,
		category:    b.category,
		tooltip:     b.tooltip,
		arguments:   append([]string(nil), b.arguments...),
	}
}
