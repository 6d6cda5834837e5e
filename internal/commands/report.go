package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/networth/internal/logger"
	"github.com/cleared-dev/networth/internal/networth"
	"github.com/cleared-dev/networth/internal/render"
)

type reportFlags struct {
	from           string
	to             string
	exclude        []string
	format         string
	locale         string
	currency       string
	flipDebt       bool
	splitByAccount bool
}

func newReportCommand(root *rootOptions) *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print month-by-month assets, debts and net worth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.from, "from", "", "first month, YYYY-MM")
	cmd.Flags().StringVar(&flags.to, "to", "", "last month, YYYY-MM")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "account IDs to leave out (repeatable)")
	cmd.Flags().StringVar(&flags.format, "format", string(render.FormatTable), "output: table, csv or json")
	cmd.Flags().StringVar(&flags.locale, "locale", "", "locale for labels and numbers, e.g. fr-FR")
	cmd.Flags().StringVar(&flags.currency, "currency", "", "ISO currency code for amounts")
	cmd.Flags().BoolVar(&flags.flipDebt, "flip-debt", false, "show debts as negative amounts")
	cmd.Flags().BoolVar(&flags.splitByAccount, "split-by-account", false, "one column per account")

	return cmd
}

func runReport(cmd *cobra.Command, root *rootOptions, flags *reportFlags) error {
	log := logger.FromContext(cmd.Context())

	format, err := render.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	ws, err := root.open()
	if err != nil {
		return err
	}

	// Flags override networth.yaml.
	rc := &ws.Config.Report
	if cmd.Flags().Changed("from") {
		rc.From = flags.from
	}
	if cmd.Flags().Changed("to") {
		rc.To = flags.to
	}
	rc.Exclude = append(rc.Exclude, flags.exclude...)
	if flags.locale != "" {
		rc.Locale = flags.locale
	}
	if flags.currency != "" {
		rc.Currency = flags.currency
	}
	if cmd.Flags().Changed("flip-debt") {
		rc.FlipDebt = flags.flipDebt
	}
	if cmd.Flags().Changed("split-by-account") {
		rc.SplitByAccount = flags.splitByAccount
	}

	filters, err := ws.Filters()
	if err != nil {
		return err
	}

	in, err := ws.Load(cmd.Context())
	if err != nil {
		return err
	}

	rep, err := networth.ComputeReport(in.Transactions, in.Accounts.Catalogs(), filters, ws.Options())
	if err != nil {
		return fmt.Errorf("computing report: %w", err)
	}
	log.Debug().
		Int("transactions", len(in.Transactions)).
		Int("months", rep.Len()).
		Strs("excluded", rc.Exclude).
		Msg("computed report")

	return render.Render(cmd.OutOrStdout(), rep, format, render.Settings{
		Locale:   rc.Locale,
		Currency: rc.Currency,
	})
}
