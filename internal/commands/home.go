package commands

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"max.ks1230/home-ledger/internal/entity/ledger"
)

func newSummaryCommand(configPath *string) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the daily and weekly summary for a day",
		Args:  cobra.NoArgs,
		RunE: withApp(configPath, func(cmd *cobra.Command, a *app, _ []string) (interface{}, error) {
			day := a.conf.App().Today()
			if date != "" {
				var err error
				if day, err = ledger.ParseDate(date); err != nil {
					return nil, err
				}
			}
			report, err := a.reports.Daily(cmd.Context(), day)
			if err != nil {
				return nil, err
			}
			return report.Summary, nil
		}),
	}
	cmd.Flags().StringVar(&date, "date", "", "day to summarize, YYYY-MM-DD (default today)")

	return cmd
}

func newGiveHomeCommand(configPath *string) *cobra.Command {
	var (
		recipient string
		amount    string
	)

	cmd := &cobra.Command{
		Use:   "give-home",
		Short: "Give today's balance, or a part of it, to home",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			to, err := ledger.ParseRecipient(recipient)
			if err != nil {
				return err
			}
			var explicit decimal.NullDecimal
			if amount != "" {
				if explicit.Decimal, err = decimal.NewFromString(amount); err != nil {
					return err
				}
				explicit.Valid = true
			}

			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.allocator.GiveToHome(cmd.Context(), to, explicit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&recipient, "recipient", "", "Mom or Dad")
	_ = cmd.MarkFlagRequired("recipient")
	cmd.Flags().StringVar(&amount, "amount", "", "amount to give (default the undisbursed balance)")

	return cmd
}

func newUndoHomeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "undo-home",
		Short: "Reset the latest home disbursement",
		Args:  cobra.NoArgs,
		RunE: withApp(configPath, func(cmd *cobra.Command, a *app, _ []string) (interface{}, error) {
			return a.allocator.UndoLast(cmd.Context())
		}),
	}
}
