package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	apperrors "github.com/agbru/recipsum/internal/errors"
	"github.com/agbru/recipsum/internal/logging"
	"github.com/agbru/recipsum/internal/server"
)

// runServe starts the HTTP API and blocks until shutdown.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger := logging.NewLogger(os.Stderr, "server")

	var opts []server.Option
	if a.Config.FileRoot != "" {
		opts = append(opts, server.WithFileRoot(a.Config.FileRoot))
	}

	srv := server.New(a.Config.Addr, a.Factory, logger, opts...)
	if err := srv.Start(ctx); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
