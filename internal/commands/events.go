package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"max.ks1230/home-ledger/internal/clients/kafka"
	"max.ks1230/home-ledger/internal/config"
	"max.ks1230/home-ledger/internal/model/events"
)

func newEventsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect the ledger event stream",
	}

	tail := &cobra.Command{
		Use:   "tail",
		Short: "Print ledger events from Kafka until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.New(config.File(*configPath))
			if err != nil {
				return errors.Wrap(err, "init config")
			}
			if !conf.Kafka().Enabled() {
				return errors.New("kafka is disabled in the config")
			}

			out := cmd.OutOrStdout()
			consumer, err := kafka.NewConsumer(conf.Kafka(), func(_ context.Context, ev events.Event) error {
				return printJSON(out, ev)
			})
			if err != nil {
				return err
			}
			defer consumer.Close()

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return consumer.StartConsuming(ctx)
		},
	}

	cmd.AddCommand(tail)
	return cmd
}
