package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"max.ks1230/home-ledger/internal/logger"
	"max.ks1230/home-ledger/internal/model/messages"
	"max.ks1230/home-ledger/internal/model/session"
	"max.ks1230/home-ledger/internal/server"
	"max.ks1230/home-ledger/internal/tracing"
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the optional Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return runServe(ctx, *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	logger.Info("Tracker init - start")
	defer logger.Sync()

	a, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("closing clients", zap.Error(err))
		}
	}()

	tracer, err := tracing.Init(a.conf.Jaeger())
	if err != nil {
		return errors.Wrap(err, "init tracing")
	}
	defer tracer.Close()

	provider := session.NewLocalProvider(a.conf.Auth())
	sessions := session.NewController(provider)
	defer sessions.Close()

	srv := server.New(a.conf.HTTP(), server.Deps{
		App:       a.conf.App(),
		Entries:   a.entries,
		Reports:   a.reports,
		Allocator: a.allocator,
		Sessions:  sessions,
		Store:     a.store,
	})

	logger.Info("Tracker init - end")

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		provider.Sweep(ctx)
		return nil
	})
	if a.telegram != nil && a.conf.Telegram().Listen() {
		bot := messages.NewService(a.telegram, a.reports, a.allocator, a.conf.App(), a.conf.Telegram().ChatID())
		eg.Go(func() error {
			a.telegram.ListenUpdates(ctx, bot)
			return nil
		})
	}
	eg.Go(func() error {
		return srv.Run(ctx)
	})
	return eg.Wait()
}
