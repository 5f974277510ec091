// Package store keeps relay transfer records in process memory.
//
// Records are lost when the process restarts. Each record carries its own
// lock so that status transitions on different transfers never contend; the
// map itself is guarded by a separate RWMutex.
package store

import (
	"errors"
	"fmt"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/chainsafe/castpay-relayer/pkg/transfer"
)

var (
	ErrNotFound          = errors.New("transaction not found")
	ErrAlreadyExists     = errors.New("transaction already exists")
	ErrInvalidTransition = errors.New("invalid status transition")
)

const defaultListLimit = 100

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Sender string
	Status transfer.Status
	Limit  int
}

type entry struct {
	mu     sync.Mutex
	record *transfer.Record
}

// Memory is an in-memory transfer record store
type Memory struct {
	mu      sync.RWMutex
	records map[string]*entry
	now     func() time.Time
}

// NewMemory creates an empty store
func NewMemory() *Memory {
	return &Memory{
		records: make(map[string]*entry),
		now:     time.Now,
	}
}

// Create stores rec. The record must be pending.
func (m *Memory) Create(rec *transfer.Record) error {
	if rec == nil || rec.ID == "" {
		return fmt.Errorf("record id is required")
	}
	if rec.Status != transfer.StatusPending {
		return fmt.Errorf("%w: new record must be %s, got %s", ErrInvalidTransition, transfer.StatusPending, rec.Status)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[rec.ID]; ok {
		return ErrAlreadyExists
	}
	m.records[rec.ID] = &entry{record: rec.Clone()}
	return nil
}

// Get returns a copy of the record with the given id
func (m *Memory) Get(id string) (*transfer.Record, error) {
	e := m.lookup(id)
	if e == nil {
		return nil, ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.record == nil {
		return nil, ErrNotFound
	}
	return e.record.Clone(), nil
}

// UpdateStatus moves the record to status, merges detail into the existing
// detail map and appends the transition to its history. The updated copy is
// returned.
func (m *Memory) UpdateStatus(id string, status transfer.Status, detail map[string]any) (*transfer.Record, error) {
	return m.transition(id, status, detail, nil)
}

// SetChainTxHash records the broadcast transaction hash together with the
// submitted transition.
func (m *Memory) SetChainTxHash(id, txHash string, detail map[string]any) (*transfer.Record, error) {
	return m.transition(id, transfer.StatusSubmitted, detail, func(rec *transfer.Record) {
		rec.ChainTxHash = txHash
	})
}

func (m *Memory) transition(
	id string,
	status transfer.Status,
	detail map[string]any,
	mutate func(*transfer.Record),
) (*transfer.Record, error) {
	e := m.lookup(id)
	if e == nil {
		return nil, ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	rec := e.record
	if rec == nil {
		return nil, ErrNotFound
	}
	if !transfer.CanTransition(rec.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, rec.Status, status)
	}

	now := m.now()
	rec.Status = status
	rec.LastUpdatedAt = now
	rec.History = append(rec.History, transfer.StatusChange{Status: status, At: now})
	if rec.Detail == nil {
		rec.Detail = map[string]any{}
	}
	maps.Copy(rec.Detail, detail)
	if mutate != nil {
		mutate(rec)
	}

	return rec.Clone(), nil
}

// List returns records matching f, newest first
func (m *Memory) List(f Filter) []*transfer.Record {
	m.mu.RLock()
	entries := make([]*entry, 0, len(m.records))
	for _, e := range m.records {
		entries = append(entries, e)
	}
	m.mu.RUnlock()

	out := make([]*transfer.Record, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		rec := e.record
		if rec != nil && matches(rec, f) {
			out = append(out, rec.Clone())
		}
		e.mu.Unlock()
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Sweep deletes every record created before cutoff and returns how many
// were removed.
func (m *Memory) Sweep(cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, e := range m.records {
		e.mu.Lock()
		if e.record != nil && e.record.CreatedAt.Before(cutoff) {
			e.record = nil
			delete(m.records, id)
			removed++
		}
		e.mu.Unlock()
	}
	return removed
}

// Delete removes a record that never left pending. It is used to roll back
// an intake that could not be queued.
func (m *Memory) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.records[id]
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.record != nil && e.record.Status != transfer.StatusPending {
		return fmt.Errorf("%w: cannot delete %s record", ErrInvalidTransition, e.record.Status)
	}
	e.record = nil
	delete(m.records, id)
	return nil
}

// Counts returns the number of stored records per status
func (m *Memory) Counts() map[transfer.Status]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[transfer.Status]int)
	for _, e := range m.records {
		e.mu.Lock()
		if e.record != nil {
			counts[e.record.Status]++
		}
		e.mu.Unlock()
	}
	return counts
}

func (m *Memory) lookup(id string) *entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.records[id]
}

func matches(rec *transfer.Record, f Filter) bool {
	if f.Sender != "" && !strings.EqualFold(rec.Sender, f.Sender) {
		return false
	}
	if f.Status != "" && rec.Status != f.Status {
		return false
	}
	return true
}
