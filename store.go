package papertrade

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Store is the persistence adapter: it loads and saves the portfolio
// snapshot as a keyed record. The portfolio is saved whole after every
// mutating operation; a crash between mutation and save loses at most that
// one operation.
type Store interface {
	Load() (*Portfolio, error)
	Save(*Portfolio) error
}

// FileStore persists the portfolio as a single JSON file on disk.
type FileStore struct {
	path            string
	startingBalance Money
}

// NewFileStore creates a store for the given file path. A missing file is
// not an error: Load then returns a fresh portfolio with startingBalance.
func NewFileStore(path string, startingBalance Money) *FileStore {
	return &FileStore{path: path, startingBalance: startingBalance}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load reads the persisted portfolio. When no file exists yet it returns a
// fresh portfolio with the store's starting balance. A corrupt file is an
// ErrInvalidState failure, never silently replaced.
func (s *FileStore) Load() (*Portfolio, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		log.Printf("no saved portfolio at %q, starting fresh with %s", s.path, s.startingBalance)
		return NewPortfolio(s.startingBalance), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open portfolio file %q: %w", s.path, err)
	}
	defer f.Close()

	p, err := DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load portfolio file %q: %w", s.path, err)
	}
	return p, nil
}

// Save overwrites the persisted portfolio with the current state.
func (s *FileStore) Save(p *Portfolio) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create directory for portfolio file %q: %w", s.path, err)
		}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("cannot open portfolio file %q for writing: %w", s.path, err)
	}
	defer f.Close()

	return EncodePortfolio(f, p)
}
