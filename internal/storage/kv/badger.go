// Package kv keeps the account name cache and the upstream credentials in
// BadgerDB.
package kv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	namePrefix     = "name:"
	credentialsKey = "credentials:cookie"
)

type Config struct {
	// Path is the database directory. Empty means in-memory.
	Path    string
	NameTTL time.Duration
}

type Store struct {
	db      *badger.DB
	nameTTL time.Duration
	logger  *slog.Logger
}

func Open(cfg Config, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.Path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = &badgerLogger{logger: logger.With("component", "badgerdb")}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db at %q: %w", cfg.Path, err)
	}
	logger.Info("badger opened", "path", cfg.Path, "in_memory", cfg.Path == "")

	return &Store{
		db:      db,
		nameTTL: cfg.NameTTL,
		logger:  logger.With("component", "kv"),
	}, nil
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close badger db: %w", err)
	}
	return nil
}

// Name returns the cached display name of accountID. Lookup failures are
// logged and reported as a miss.
func (s *Store) Name(accountID string) (string, bool) {
	v, err := s.get([]byte(namePrefix + accountID))
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			s.logger.Warn("name lookup failed", "account_id", accountID, "error", err)
		}
		return "", false
	}
	return string(v), true
}

func (s *Store) SetName(accountID, name string) error {
	e := badger.NewEntry([]byte(namePrefix+accountID), []byte(name))
	if s.nameTTL > 0 {
		e = e.WithTTL(s.nameTTL)
	}
	if err := s.db.Update(func(txn *badger.Txn) error { return txn.SetEntry(e) }); err != nil {
		return fmt.Errorf("save name %s: %w", accountID, err)
	}
	return nil
}

// LoadCredentials returns the stored cookie, or "" when none was saved.
func (s *Store) LoadCredentials() (string, error) {
	v, err := s.get([]byte(credentialsKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load credentials: %w", err)
	}
	return string(v), nil
}

func (s *Store) SaveCredentials(cookie string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(credentialsKey), []byte(cookie))
	})
	if err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

// RunGC reclaims value log space until ctx is done.
func (s *Store) RunGC(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := s.db.RunValueLogGC(0.7)
			switch {
			case err == nil:
				s.logger.Debug("value log gc completed")
			case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			default:
				s.logger.Warn("value log gc failed", "error", err)
			}
		}
	}
}

func (s *Store) get(key []byte) ([]byte, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	return out, err
}

// badgerLogger adapts slog to Badger's logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(f string, v ...any) {
	l.logger.Error(fmt.Sprintf(f, v...))
}

func (l *badgerLogger) Warningf(f string, v ...any) {
	l.logger.Warn(fmt.Sprintf(f, v...))
}

func (l *badgerLogger) Infof(f string, v ...any) {
	l.logger.Debug(fmt.Sprintf(f, v...))
}

func (l *badgerLogger) Debugf(f string, v ...any) {
	l.logger.Debug(fmt.Sprintf(f, v...))
}
