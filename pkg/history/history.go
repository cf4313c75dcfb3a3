// Package history persists completed screenings as an append-only log kept in
// a single storage slot.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sw33tLie/vitalis/internal/utils"
	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/i18n"
	"github.com/sw33tLie/vitalis/pkg/storage"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Record is one completed screening. Its risk tier is never stored; call Risk.
type Record struct {
	Timestamp       time.Time        `json:"timestamp"`
	Answers         fast.ResponseSet `json:"answers"`
	DurationSeconds int              `json:"duration"`
	Language        i18n.Language    `json:"language"`
}

// Risk classifies the record's answers with the current rule.
func (r Record) Risk() fast.RiskTier {
	return fast.Classify(r.Answers)
}

// Locker serializes writers across processes. utils.WriteLock satisfies it.
type Locker interface {
	Lock() error
	Unlock() error
}

// Store reads and writes the history log.
type Store struct {
	slot storage.Slot
	key  string
	lock Locker
}

// Option configures a Store.
type Option func(*Store)

// WithLocker guards Append and Clear with l.
func WithLocker(l Locker) Option {
	return func(s *Store) { s.lock = l }
}

// WithKey overrides the slot key (default storage.HistoryKey).
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func NewStore(slot storage.Slot, opts ...Option) *Store {
	s := &Store{slot: slot, key: storage.HistoryKey}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Append adds rec to the end of the log. Existing entries are kept as stored,
// including ones that no longer decode; only content that is not a JSON array
// is replaced by a fresh log holding rec.
func (s *Store) Append(ctx context.Context, rec Record) error {
	item, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	unlock, err := s.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	raw, ok, err := s.slot.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}

	next := "[" + string(item) + "]"
	if ok {
		if verr := validArray(raw); verr == nil {
			next, err = sjson.SetRaw(raw, "-1", string(item))
			if err != nil {
				return fmt.Errorf("append record: %w", err)
			}
		} else {
			utils.Log.Debugf("history: discarding unreadable log: %v", verr)
		}
	}

	if err := s.slot.Put(ctx, s.key, next); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// ReadAll returns the log oldest first, skipping entries that do not decode.
// Missing or unreadable content yields an empty slice; it never fails.
func (s *Store) ReadAll(ctx context.Context) []Record {
	raw, ok, err := s.slot.Get(ctx, s.key)
	if err != nil {
		utils.Log.Warnf("history: read failed, treating as empty: %v", err)
		return []Record{}
	}
	if !ok {
		return []Record{}
	}
	recs, err := parse(raw)
	if err != nil {
		utils.Log.Debugf("history: unreadable log treated as empty: %v", err)
		return []Record{}
	}
	return recs
}

// Clear removes every record. There is no undo.
func (s *Store) Clear(ctx context.Context) error {
	unlock, err := s.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.slot.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *Store) acquire() (func(), error) {
	if s.lock == nil {
		return func() {}, nil
	}
	if err := s.lock.Lock(); err != nil {
		return nil, err
	}
	return func() {
		if err := s.lock.Unlock(); err != nil {
			utils.Log.Warnf("history: %v", err)
		}
	}, nil
}

func validArray(raw string) error {
	if !gjson.Valid(raw) {
		return fmt.Errorf("history is not valid JSON")
	}
	if !gjson.Parse(raw).IsArray() {
		return fmt.Errorf("history is not a JSON array")
	}
	return nil
}

// parse decodes each element on its own. Elements that do not decode are
// skipped so one bad entry does not hide the rest.
func parse(raw string) ([]Record, error) {
	if err := validArray(raw); err != nil {
		return nil, err
	}
	recs := []Record{}
	gjson.Parse(raw).ForEach(func(i, v gjson.Result) bool {
		var rec Record
		if err := json.Unmarshal([]byte(v.Raw), &rec); err != nil {
			utils.Log.Debugf("history: skipping entry %d: %v", i.Int(), err)
			return true
		}
		recs = append(recs, rec)
		return true
	})
	return recs, nil
}
