package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cleared-dev/networth/internal/model"
)

// Service provides in-memory lookup over the account catalog.
type Service struct {
	accounts []model.Account
	byID     map[string]model.Account
}

// NewService creates a Service from a slice of accounts. File order is kept.
func NewService(accounts []model.Account) *Service {
	byID := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Service{accounts: accounts, byID: byID}
}

// Load reads the catalog at path and returns a Service.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening account catalog: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading account catalog: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id string) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// ByStatus returns all accounts with the given status, in file order.
func (s *Service) ByStatus(status model.AccountStatus) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Status == status {
			result = append(result, a)
		}
	}
	return result
}

// Catalogs splits the accounts into the on-budget, tracking and closed lists.
// It is rebuilt on every call so edits to the catalog are always reflected.
func (s *Service) Catalogs() model.Catalogs {
	return model.Catalogs{
		OnBudget: s.ByStatus(model.StatusOnBudget),
		Tracking: s.ByStatus(model.StatusTracking),
		Closed:   s.ByStatus(model.StatusClosed),
	}
}

// Save writes the catalog to path, creating parent directories.
func (s *Service) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating account catalog file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing account catalog: %w", err)
	}
	return nil
}
