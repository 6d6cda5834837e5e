package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/networth/internal/model"
	"github.com/cleared-dev/networth/internal/networth"
)

func newAccountsCommand(root *rootOptions) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List catalog accounts with their current balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccounts(cmd, root, model.AccountStatus(status))
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "only on_budget, tracking or closed accounts")

	return cmd
}

func runAccounts(cmd *cobra.Command, root *rootOptions, status model.AccountStatus) error {
	if status != "" && !status.Valid() {
		return fmt.Errorf("invalid status %q", status)
	}

	ws, err := root.open()
	if err != nil {
		return err
	}
	in, err := ws.Load(cmd.Context())
	if err != nil {
		return err
	}

	rep, err := networth.ComputeReport(in.Transactions, in.Accounts.Catalogs(), networth.Filters{}, networth.Options{})
	if err != nil {
		return fmt.Errorf("computing balances: %w", err)
	}
	var current networth.Snapshot
	if n := len(rep.Balances); n > 0 {
		current = rep.Balances[n-1]
	}

	list := in.Accounts.All()
	if status != "" {
		list = in.Accounts.ByStatus(status)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tBALANCE")
	for _, a := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Status, current[a.ID].StringFixed(2))
	}
	return tw.Flush()
}
