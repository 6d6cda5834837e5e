package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/networth/internal/buildinfo"
	"github.com/cleared-dev/networth/internal/logger"
	"github.com/cleared-dev/networth/internal/workspace"
)

type rootOptions struct {
	repo    string
	verbose bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "networth",
		Short:   "Month-by-month net worth from your bank exports",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log := logger.New(cmd.ErrOrStderr(), opts.verbose)
			cmd.SetContext(logger.WithContext(cmd.Context(), log))
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.repo, "repo", ".", "project directory")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand(opts))
	rootCmd.AddCommand(newReportCommand(opts))
	rootCmd.AddCommand(newAccountsCommand(opts))

	return rootCmd
}

func (o *rootOptions) open() (*workspace.Workspace, error) {
	return workspace.Open(o.repo)
}
