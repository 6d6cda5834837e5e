package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cleared-dev/networth/internal/model"
	"github.com/cleared-dev/networth/internal/month"
)

// FileName is the per-month transaction file.
const FileName = "transactions.csv"

// Service stores transactions partitioned by month under
// <root>/YYYY/MM/transactions.csv.
type Service struct {
	root     string
	accounts AccountChecker
}

// NewService creates a ledger Service. accounts may be nil.
func NewService(root string, accounts AccountChecker) *Service {
	return &Service{root: root, accounts: accounts}
}

// Append validates txns and appends them to their months' files. A
// transaction whose non-empty Reference already exists for the same account
// in its month is skipped, so re-importing a statement is harmless. Nothing
// is written if any transaction fails validation. Returns the number written.
func (s *Service) Append(txns []model.Transaction) (int, error) {
	byMonth := make(map[month.Month][]model.Transaction)
	for i, txn := range txns {
		if err := txn.Check(i); err != nil {
			return 0, fmt.Errorf("validation failed: %w", err)
		}
		m := month.Of(txn.Date)
		byMonth[m] = append(byMonth[m], txn)
	}

	months := slices.SortedFunc(maps.Keys(byMonth), month.Month.Compare)
	for _, m := range months {
		if verrs := ValidateTransactions(byMonth[m], s.accounts, m.Year, int(m.Month)); len(verrs) > 0 {
			msgs := make([]string, len(verrs))
			for i, ve := range verrs {
				msgs[i] = ve.Error()
			}
			return 0, fmt.Errorf("validation failed for %s: %s", m, strings.Join(msgs, "; "))
		}
	}

	written := 0
	for _, m := range months {
		existing, err := s.ReadMonth(m.Year, int(m.Month))
		if err != nil {
			return written, err
		}
		fresh := dropKnownReferences(existing, byMonth[m])
		if len(fresh) == 0 {
			continue
		}
		if err := s.appendMonth(m, fresh); err != nil {
			return written, err
		}
		written += len(fresh)
	}
	return written, nil
}

func (s *Service) appendMonth(m month.Month, txns []model.Transaction) error {
	path := s.monthPath(m.Year, int(m.Month))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendTransactions(f, txns); err != nil {
		return fmt.Errorf("appending transactions: %w", err)
	}
	return nil
}

// refKey scopes a reference to its account; two accounts can share a
// same-day, same-description row.
type refKey struct {
	account   string
	reference string
}

func dropKnownReferences(existing, incoming []model.Transaction) []model.Transaction {
	seen := make(map[refKey]bool, len(existing))
	for _, txn := range existing {
		if txn.Reference != "" {
			seen[refKey{txn.AccountID, txn.Reference}] = true
		}
	}
	var fresh []model.Transaction
	for _, txn := range incoming {
		if txn.Reference != "" {
			key := refKey{txn.AccountID, txn.Reference}
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		fresh = append(fresh, txn)
	}
	return fresh
}

// ReadMonth reads all transactions for a given year/month.
func (s *Service) ReadMonth(year, month int) ([]model.Transaction, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return txns, nil
}

// Months lists the months that have a transactions file, ascending.
func (s *Service) Months() ([]month.Month, error) {
	years, err := os.ReadDir(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading ledger dir: %w", err)
	}

	var months []month.Month
	for _, y := range years {
		year, err := strconv.Atoi(y.Name())
		if !y.IsDir() || err != nil {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(s.root, y.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading ledger year %s: %w", y.Name(), err)
		}
		for _, e := range entries {
			mm, err := strconv.Atoi(e.Name())
			if !e.IsDir() || err != nil || mm < 1 || mm > 12 {
				continue
			}
			if _, err := os.Stat(s.monthPath(year, mm)); err != nil {
				continue
			}
			months = append(months, month.New(year, time.Month(mm)))
		}
	}
	slices.SortFunc(months, month.Month.Compare)
	return months, nil
}

// ReadAll reads every month in the ledger, oldest first.
func (s *Service) ReadAll() ([]model.Transaction, error) {
	months, err := s.Months()
	if err != nil {
		return nil, err
	}
	var all []model.Transaction
	for _, m := range months {
		txns, err := s.ReadMonth(m.Year, int(m.Month))
		if err != nil {
			return nil, err
		}
		all = append(all, txns...)
	}
	return all, nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.root, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), FileName)
}
