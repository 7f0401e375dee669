// Package cache persists compiled C output between runs, so recompiling
// an unchanged program becomes a disk lookup instead of a parse. Records
// live in a single SoloDB file under ~/.lpsc and expire after a
// configurable number of days.
package cache

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	solodb "github.com/phillarmonic/SoloDB"
)

// DefaultExpiration is how long a cached compile result stays usable.
const DefaultExpiration = 30 * 24 * time.Hour

// entry is the stored record: the generated C plus enough metadata to
// tell where it came from.
type entry struct {
	Code       string    `json:"code"`
	SourceLen  int       `json:"sourceLen"`
	CompiledAt time.Time `json:"compiledAt"`
}

// Store maps source hashes to compiled C in a SoloDB file. A disabled
// store swallows writes and misses every read, which lets --no-cache
// share the normal compile path.
type Store struct {
	db   *solodb.DB
	file string
	ttl  time.Duration
	off  bool
}

// Stats carries the SoloDB counters the cache subcommands report.
type Stats struct {
	Keys        int
	FileBytes   int64
	LiveRecords int64
}

// Open prepares the store under ~/.lpsc, creating the directory and
// database file on first use.
func Open(ttl time.Duration, disabled bool) (*Store, error) {
	if disabled {
		return &Store{off: true, ttl: ttl}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}
	dir := filepath.Join(home, ".lpsc")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}

	file := filepath.Join(dir, "cache.solo")
	db, err := solodb.Open(solodb.Options{
		Path:       file,
		Durability: solodb.SyncBatch,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open compile cache at %s: %w", file, err)
	}

	return &Store{db: db, file: file, ttl: ttl}, nil
}

// recordKey hashes LPS1 source into the key for its compiled output.
func recordKey(source string) string {
	sum := sha256.Sum256([]byte(source))
	return "compile:" + hex.EncodeToString(sum[:])[:32]
}

// Lookup returns the compiled C for source when a fresh record exists.
// Missing, expired and unreadable records all count as a plain miss;
// the cache never fails a compile.
func (s *Store) Lookup(source string) (string, bool) {
	if s.off || s.db == nil {
		return "", false
	}

	rc, _, _, err := s.db.GetBlob(recordKey(source))
	if err != nil {
		return "", false
	}
	defer func() { _ = rc.Close() }()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", false
	}
	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return "", false
	}
	return e.Code, true
}

// Save records the compiled C for source, stamped with the store's
// expiry window.
func (s *Store) Save(source, code string) error {
	if s.off || s.db == nil {
		return nil
	}

	raw, err := json.Marshal(entry{
		Code:       code,
		SourceLen:  len(source),
		CompiledAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}

	deadline := time.Now().Add(s.ttl)
	if err := s.db.SetBlob(recordKey(source), bytes.NewReader(raw), int64(len(raw)), deadline); err != nil {
		return fmt.Errorf("cache write: %w", err)
	}
	return nil
}

// Stats reports the database counters, all zero for a disabled store.
func (s *Store) Stats() Stats {
	if s.off || s.db == nil {
		return Stats{}
	}

	ds := s.db.Stats()
	return Stats{
		Keys:        ds.Keys,
		FileBytes:   ds.FileBytes,
		LiveRecords: int64(ds.LiveRecords),
	}
}

// Clear deletes the database file outright. The next compile recreates
// it from scratch.
func (s *Store) Clear() error {
	if s.off || s.db == nil {
		return nil
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("cannot close compile cache: %w", err)
	}
	s.db = nil

	if err := os.Remove(s.file); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot remove %s: %w", s.file, err)
	}
	return nil
}

// Compact reclaims disk space held by dead records.
func (s *Store) Compact() error {
	if s.off || s.db == nil {
		return nil
	}
	return s.db.Compact()
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	if s.off || s.db == nil {
		return nil
	}
	return s.db.Close()
}
