// Package storage implements a fiber.Storage kept in memory and mirrored to a json file.
package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nikmy/labforms/pkg/errors"
	"github.com/nikmy/labforms/pkg/logger"
)

func NewFileStorage(cfg Config, log logger.Logger) *FileStorage {
	return newFileStorage(cfg, log, time.Now)
}

func newFileStorage(cfg Config, log logger.Logger, now func() time.Time) *FileStorage {
	cfg = cfg.withDefaults()

	s := &FileStorage{
		fileName: cfg.Path,
		interval: cfg.FlushInterval,
		entries:  make(map[string]entry),
		now:      now,
		log:      log.With("file_storage"),
	}
	s.load()
	return s
}

type FileStorage struct {
	fileName string
	interval time.Duration

	mu      sync.RWMutex
	entries map[string]entry

	// serializes writers of the file
	writeMu sync.Mutex

	now func() time.Time
	log logger.Logger
}

type entry struct {
	Value     []byte     `json:"value"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (e entry) expired(now time.Time) bool {
	return e.ExpiresAt != nil && !e.ExpiresAt.After(now)
}

// Run flushes the storage to disk every interval until ctx is done.
func (s *FileStorage) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := s.flush()
			if err != nil {
				s.log.Warn(err)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *FileStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || e.expired(s.now()) {
		return nil, nil
	}
	return e.Value, nil
}

func (s *FileStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}

	e := entry{Value: append([]byte(nil), val...)}
	if exp > 0 {
		expiresAt := s.now().Add(exp)
		e.ExpiresAt = &expiresAt
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
	return nil
}

func (s *FileStorage) Delete(key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

func (s *FileStorage) Reset() error {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()
	return nil
}

// Close writes the last state to disk.
func (s *FileStorage) Close() error {
	return s.flush()
}

func (s *FileStorage) live() map[string]entry {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	data := make(map[string]entry, len(s.entries))
	for k, e := range s.entries {
		if !e.expired(now) {
			data[k] = e
		}
	}
	return data
}

func (s *FileStorage) flush() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.log.Debugf("saving data to %s", s.fileName)

	bytes, err := json.Marshal(s.live())
	if err != nil {
		return errors.WrapFail(err, "marshal sessions")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.fileName), filepath.Base(s.fileName)+".*")
	if err != nil {
		return errors.WrapFail(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(bytes)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.WrapFailf(err, "write %s", tmp.Name())
	}

	return errors.WrapFailf(os.Rename(tmp.Name(), s.fileName), "replace %s", s.fileName)
}

func (s *FileStorage) load() {
	s.log.Infof("reading data from %s", s.fileName)

	bytes, err := os.ReadFile(s.fileName)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		s.log.Warn(errors.WrapFailf(err, "read %s", s.fileName))
		return
	}

	var data map[string]entry
	err = json.Unmarshal(bytes, &data)
	if err != nil {
		s.log.Warn(errors.WrapFailf(err, "parse %s", s.fileName))
		return
	}

	if data != nil {
		s.entries = data
	}
}
