package util

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler creates a context that is cancelled on receiving SIGINT or SIGTERM.
// context.Cause of the returned context wraps ErrCancelled and names the signal.
// A second signal will force immediate exit.
func SetupSignalHandler() context.Context {
	return notifyContext(context.Background(), os.Exit, syscall.SIGINT, syscall.SIGTERM)
}

func notifyContext(parent context.Context, exit func(int), signals ...os.Signal) context.Context {
	ctx, cancel := context.WithCancelCause(parent)

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, signals...)

	go func() {
		sig := <-sigCh
		slog.Info("received shutdown signal, stopping after the current pass", "signal", sig.String())
		cancel(fmt.Errorf("%w: received %s", ErrCancelled, sig))

		// Second signal forces immediate exit
		sig = <-sigCh
		slog.Warn("received second shutdown signal, forcing exit", "signal", sig.String())
		exit(1)
	}()

	return ctx
}
