// Package workspace ties a networth project directory together: its config,
// account catalog and ledger.
package workspace

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/networth/internal/accounts"
	"github.com/cleared-dev/networth/internal/config"
	"github.com/cleared-dev/networth/internal/ledger"
	"github.com/cleared-dev/networth/internal/logger"
	"github.com/cleared-dev/networth/internal/model"
	"github.com/cleared-dev/networth/internal/month"
	"github.com/cleared-dev/networth/internal/networth"
)

// EnvFile is the optional dotenv file at the project root.
const EnvFile = ".env"

// Workspace is an opened project directory.
type Workspace struct {
	Root   string
	Config *config.Config
}

// Inputs is everything the report engine needs from disk.
type Inputs struct {
	Accounts     *accounts.Service
	Transactions []model.Transaction
}

// Open loads networth.yaml from root and applies environment overrides.
func Open(root string) (*Workspace, error) {
	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("opening workspace %s: %w", root, err)
	}

	env, err := config.ReadEnvFile(filepath.Join(root, EnvFile))
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(env)

	return &Workspace{Root: root, Config: cfg}, nil
}

// Path resolves a config-relative path against the project root.
func (w *Workspace) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(w.Root, rel)
}

// Accounts loads the account catalog.
func (w *Workspace) Accounts() (*accounts.Service, error) {
	return accounts.Load(w.Path(w.Config.Data.Accounts))
}

// Ledger returns the ledger store, validating appends against catalog when
// it is non-nil.
func (w *Workspace) Ledger(catalog ledger.AccountChecker) *ledger.Service {
	return ledger.NewService(w.Path(w.Config.Data.Ledger), catalog)
}

// Load reads the catalog and the full ledger concurrently.
func (w *Workspace) Load(ctx context.Context) (*Inputs, error) {
	log := logger.FromContext(ctx)
	g, ctx := errgroup.WithContext(ctx)

	var in Inputs
	g.Go(func() error {
		svc, err := w.Accounts()
		if err != nil {
			return err
		}
		in.Accounts = svc
		log.Debug().Int("accounts", len(svc.All())).Msg("loaded account catalog")
		return ctx.Err()
	})
	g.Go(func() error {
		txns, err := w.Ledger(nil).ReadAll()
		if err != nil {
			return fmt.Errorf("loading ledger: %w", err)
		}
		in.Transactions = txns
		log.Debug().Int("transactions", len(txns)).Msg("loaded ledger")
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &in, nil
}

// Filters converts the report section of the config into engine filters.
func (w *Workspace) Filters() (networth.Filters, error) {
	var f networth.Filters
	if len(w.Config.Report.Exclude) > 0 {
		f.ExcludedAccounts = make(map[string]bool, len(w.Config.Report.Exclude))
		for _, id := range w.Config.Report.Exclude {
			f.ExcludedAccounts[id] = true
		}
	}
	if w.Config.Report.From != "" {
		m, err := month.Parse(w.Config.Report.From)
		if err != nil {
			return f, fmt.Errorf("report.from: %w", err)
		}
		f.From = m.Start()
	}
	if w.Config.Report.To != "" {
		m, err := month.Parse(w.Config.Report.To)
		if err != nil {
			return f, fmt.Errorf("report.to: %w", err)
		}
		f.To = m.Start()
	}
	return f, nil
}

// Options converts the report section of the config into engine options.
func (w *Workspace) Options() networth.Options {
	return networth.Options{
		Labeler:        networth.NewLabeler(w.Config.Report.Locale),
		Palette:        w.Config.Report.Palette,
		FlipDebt:       w.Config.Report.FlipDebt,
		SplitByAccount: w.Config.Report.SplitByAccount,
	}
}
