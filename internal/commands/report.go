package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/model/reports"
)

func newReportCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print ledger reports as JSON",
	}

	var date string
	daily := &cobra.Command{
		Use:   "daily",
		Short: "Records and summary of one day",
		Args:  cobra.NoArgs,
		RunE: withApp(configPath, func(cmd *cobra.Command, a *app, _ []string) (interface{}, error) {
			day := a.conf.App().Today()
			if date != "" {
				var err error
				if day, err = ledger.ParseDate(date); err != nil {
					return nil, err
				}
			}
			return a.reports.Daily(cmd.Context(), day)
		}),
	}
	daily.Flags().StringVar(&date, "date", "", "YYYY-MM-DD (default today)")

	var month string
	monthly := &cobra.Command{
		Use:   "monthly",
		Short: "Totals and trend of one month against the previous one",
		Args:  cobra.NoArgs,
		RunE: withApp(configPath, func(cmd *cobra.Command, a *app, _ []string) (interface{}, error) {
			m := a.conf.App().Today().Month()
			if month != "" {
				var err error
				if m, err = ledger.ParseMonth(month); err != nil {
					return nil, err
				}
			}
			return a.reports.Monthly(cmd.Context(), m)
		}),
	}
	monthly.Flags().StringVar(&month, "month", "", "YYYY-MM (default current month)")

	var from, to string
	ranged := &cobra.Command{
		Use:   "range",
		Short: "Day and month buckets between two dates",
		Args:  cobra.NoArgs,
		RunE: withApp(configPath, func(cmd *cobra.Command, a *app, _ []string) (interface{}, error) {
			start, err := ledger.ParseDate(from)
			if err != nil {
				return nil, err
			}
			end, err := ledger.ParseDate(to)
			if err != nil {
				return nil, err
			}
			return a.reports.Range(cmd.Context(), start, end)
		}),
	}
	ranged.Flags().StringVar(&from, "from", "", "first day, YYYY-MM-DD")
	ranged.Flags().StringVar(&to, "to", "", "last day, YYYY-MM-DD")
	_ = ranged.MarkFlagRequired("from")
	_ = ranged.MarkFlagRequired("to")

	period := &cobra.Command{
		Use:       "period " + strings.Join(reports.ReportPeriods(), "|"),
		Short:     "Range report from the start of the period up to today",
		Args:      cobra.ExactArgs(1),
		ValidArgs: reports.ReportPeriods(),
		RunE: withApp(configPath, func(cmd *cobra.Command, a *app, args []string) (interface{}, error) {
			return a.reports.Period(cmd.Context(), args[0], a.conf.App().Today())
		}),
	}

	cmd.AddCommand(daily, monthly, ranged, period)
	return cmd
}

// withApp wires the app for one run of fn and prints its result.
func withApp(
	configPath *string,
	fn func(cmd *cobra.Command, a *app, args []string) (interface{}, error),
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(*configPath)
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := fn(cmd, a, args)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	}
}
