package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/model"
)

// Store is the exclusive owner of the in-memory expense ledger and the only
// component that touches the primary and backup storage files. All storage
// failures are reported on the injected logger and never propagated: the
// in-memory ledger remains the source of truth for the running session.
type Store struct {
	paths    config.Paths
	log      *logrus.Logger
	expenses []model.Expense
}

// Open creates a Store and loads the primary storage file. A missing file
// means a first run and yields an empty ledger; an unreadable or corrupt file
// is reported and likewise yields an empty ledger.
func Open(paths config.Paths, log *logrus.Logger) *Store {
	s := &Store{paths: paths, log: log}
	s.load()
	return s
}

func (s *Store) load() {
	f, err := os.Open(s.paths.Data)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		s.log.WithError(err).WithField("path", s.paths.Data).
			Warn("ledger unreadable, starting empty")
		return
	}
	defer f.Close()

	expenses, err := ReadExpenses(f)
	if err != nil {
		s.log.WithError(err).WithField("path", s.paths.Data).
			Warn("ledger corrupt, starting empty")
		return
	}
	s.expenses = expenses
}

// Expenses returns the ledger in insertion order. Callers treat the slice as
// read-only.
func (s *Store) Expenses() []model.Expense {
	return s.expenses
}

// Len returns the number of recorded expenses.
func (s *Store) Len() int {
	return len(s.expenses)
}

// Append adds an expense to the end of the ledger. In-memory only; callers
// follow up with Persist.
func (s *Store) Append(e model.Expense) {
	s.expenses = append(s.expenses, e)
}

// Persist snapshots the current primary file to the backup location, then
// atomically rewrites the primary file with the full ledger. Both steps are
// best-effort: failures are reported and the in-memory ledger stands. The
// backup always holds the primary's content from just before the latest
// successful write, one generation deep.
func (s *Store) Persist() {
	if err := s.backup(); err != nil {
		s.log.WithError(err).WithField("path", s.paths.Backup).
			Error("backup failed")
	}
	if err := s.write(); err != nil {
		s.log.WithError(err).WithField("path", s.paths.Data).
			Error("ledger write failed, in-memory data preserved")
	}
}

func (s *Store) backup() error {
	data, err := os.ReadFile(s.paths.Data)
	if errors.Is(err, fs.ErrNotExist) {
		return nil // nothing to snapshot yet
	}
	if err != nil {
		return fmt.Errorf("reading primary for backup: %w", err)
	}
	if err := os.WriteFile(s.paths.Backup, data, 0o644); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	return nil
}

func (s *Store) write() error {
	tmp := s.paths.Data + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating temp ledger: %w", err)
	}

	if err := WriteExpenses(f, s.expenses); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing temp ledger: %w", err)
	}

	if err := os.Rename(tmp, s.paths.Data); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing ledger: %w", err)
	}
	return nil
}
