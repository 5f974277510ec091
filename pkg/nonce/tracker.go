// Package nonce tracks per-sender replay counters for signed transfer intents.
//
// The counter for a sender is the lowest nonce that has not yet been consumed
// by a successful transfer. Intents are reserved at intake, committed once
// they land on chain and released if they fail, so a failed intent can be
// re-signed with the same nonce.
package nonce

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrNonceUsed is returned when the nonce is below the sender's counter
	ErrNonceUsed = errors.New("nonce already used")
	// ErrNonceInFlight is returned when another transfer holds the same nonce
	ErrNonceInFlight = errors.New("nonce already in flight")
)

type account struct {
	next     uint64
	inFlight map[uint64]struct{}
}

// Tracker is a concurrency-safe in-memory nonce registry
type Tracker struct {
	mu       sync.Mutex
	accounts map[string]*account
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{accounts: make(map[string]*account)}
}

func key(sender string) string {
	return strings.ToLower(strings.TrimSpace(sender))
}

func (t *Tracker) get(sender string) *account {
	k := key(sender)
	acc, ok := t.accounts[k]
	if !ok {
		acc = &account{inFlight: make(map[uint64]struct{})}
		t.accounts[k] = acc
	}
	return acc
}

// Current returns the next nonce the sender is expected to sign. Unknown
// senders start at zero.
func (t *Tracker) Current(sender string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if acc, ok := t.accounts[key(sender)]; ok {
		return acc.next
	}
	return 0
}

// Advance increments the sender's counter and returns the new value
func (t *Tracker) Advance(sender string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	acc := t.get(sender)
	acc.next++
	return acc.next
}

// Reserve claims nonce for an in-flight transfer. Nonces at or above the
// counter are accepted so a client may pipeline several intents.
func (t *Tracker) Reserve(sender string, nonce uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	acc := t.get(sender)
	if nonce < acc.next {
		return fmt.Errorf("%w: got %d, expected >= %d", ErrNonceUsed, nonce, acc.next)
	}
	if _, busy := acc.inFlight[nonce]; busy {
		return fmt.Errorf("%w: %d", ErrNonceInFlight, nonce)
	}
	acc.inFlight[nonce] = struct{}{}
	return nil
}

// Release frees a reservation without consuming the nonce. A sender with
// nothing in flight and nothing committed is forgotten.
func (t *Tracker) Release(sender string, nonce uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := key(sender)
	acc, ok := t.accounts[k]
	if !ok {
		return
	}
	delete(acc.inFlight, nonce)
	if acc.next == 0 && len(acc.inFlight) == 0 {
		delete(t.accounts, k)
	}
}

// Commit consumes nonce after a successful transfer. The counter never moves
// backwards.
func (t *Tracker) Commit(sender string, nonce uint64) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	acc := t.get(sender)
	delete(acc.inFlight, nonce)
	if nonce+1 > acc.next {
		acc.next = nonce + 1
	}
	return acc.next
}
