package controllers

import (
	"context"
	"net"

	"github.com/rios0rios0/scmbridge/config"
)

// Serve exports serve for testing.
func (it *ServeController) Serve(ctx context.Context, cfg *config.Config, listener net.Listener) error {
	return it.serve(ctx, cfg, listener)
}
