//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/scmbridge/internal/domain/commands"
)

// StubContribution is a stub implementation of commands.Contribution.
type StubContribution struct {
	StartCallCount int
	StopCallCount  int
}

var _ commands.Contribution = (*StubContribution)(nil)

func (s *StubContribution) OnStart() { s.StartCallCount++ }

func (s *StubContribution) OnStop() { s.StopCallCount++ }
