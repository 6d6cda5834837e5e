package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/networth/internal/importer"
	"github.com/cleared-dev/networth/internal/importlog"
	"github.com/cleared-dev/networth/internal/logger"
)

func newImportCommand(root *rootOptions) *cobra.Command {
	var accountID string
	var format string

	cmd := &cobra.Command{
		Use:   "import [file...]",
		Short: "Import bank CSV exports into the ledger",
		Long: "Import bank CSV exports into the ledger.\n\n" +
			"With no files, every CSV in import/ is imported and then moved to import/processed/.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, root, accountID, format, args)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "account the rows belong to (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&format, "format", "chase", "CSV layout: chase or generic")

	return cmd
}

func runImport(cmd *cobra.Command, root *rootOptions, accountID, format string, files []string) error {
	log := logger.FromContext(cmd.Context())

	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown format %q (have %v)", format, importer.DefaultRegistry().Formats())
	}

	ws, err := root.open()
	if err != nil {
		return err
	}
	catalog, err := ws.Accounts()
	if err != nil {
		return err
	}
	if !catalog.Exists(accountID) {
		return fmt.Errorf("unknown account %q", accountID)
	}

	fromInbox := len(files) == 0
	if fromInbox {
		found, err := importer.Scan(ws.Root)
		if err != nil {
			return err
		}
		for _, f := range found {
			files = append(files, f.Path)
		}
	}
	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import.")
		return nil
	}

	store := ws.Ledger(catalog)
	batch := importlog.NewBatch()

	for _, path := range files {
		txns, err := importer.ParseFile(parser, path, accountID)
		if err != nil {
			return err
		}

		written, err := store.Append(txns)
		if err != nil {
			return fmt.Errorf("importing %s: %w", filepath.Base(path), err)
		}
		skipped := len(txns) - written

		log.Info().
			Str("file", filepath.Base(path)).
			Str("account", accountID).
			Int("written", written).
			Int("skipped", skipped).
			Msg("imported")
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s (%d already present)\n", written, filepath.Base(path), skipped)

		entry := importlog.Entry{
			Timestamp: time.Now().UTC(),
			BatchID:   batch,
			File:      filepath.Base(path),
			Format:    parser.Format(),
			AccountID: accountID,
			Count:     written,
			Skipped:   skipped,
		}
		if err := importlog.Append(ws.Root, []importlog.Entry{entry}); err != nil {
			return fmt.Errorf("writing import log: %w", err)
		}

		if fromInbox {
			if err := importer.MarkProcessed(ws.Root, filepath.Base(path)); err != nil {
				return err
			}
		}
	}
	return nil
}
