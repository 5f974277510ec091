// Package transfer holds the relay's transfer domain types: the signed intent
// a user submits, the tracked record of its on-chain execution, and the
// lifecycle the record moves through.
package transfer

import (
	"fmt"
	"maps"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a relayed transfer
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSubmitted  Status = "submitted"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusSubmitted, StatusSuccess, StatusFailed:
		return true
	}
	return false
}

// CanTransition reports whether a record in status from may move to status to.
//
//	pending -> processing -> submitted -> success
//	any non-terminal      -> failed
func CanTransition(from, to Status) bool {
	if from.IsTerminal() {
		return false
	}
	switch to {
	case StatusProcessing:
		return from == StatusPending
	case StatusSubmitted:
		return from == StatusProcessing
	case StatusSuccess:
		return from == StatusSubmitted
	case StatusFailed:
		return true
	}
	return false
}

// Detail keys written by the executor
const (
	DetailError       = "error"
	DetailErrorKind   = "errorKind"
	DetailBlockNumber = "blockNumber"
	DetailGasUsed     = "gasUsed"
	DetailGasLimit    = "gasLimit"
	DetailGasPrice    = "gasPrice"
	DetailSponsorship = "sponsorship"
)

// Intent is a signed request to move tokens from Sender to Recipient.
// Amount is in base units (6-decimal fixed point for USDC).
type Intent struct {
	Sender    string
	Recipient string
	Amount    *big.Int
	Nonce     uint64
	Signature string
}

// StatusChange is one entry in a record's transition history
type StatusChange struct {
	Status Status    `json:"status"`
	At     time.Time `json:"at"`
}

// Record tracks a relay-initiated transfer through its lifecycle
type Record struct {
	ID              string         `json:"id"`
	Sender          string         `json:"sender"`
	Recipient       string         `json:"recipient"`
	Amount          string         `json:"amount"`
	AmountBaseUnits string         `json:"amountBaseUnits"`
	Nonce           uint64         `json:"nonce"`
	Status          Status         `json:"status"`
	ChainTxHash     string         `json:"chainTxHash,omitempty"`
	Detail          map[string]any `json:"detail"`
	History         []StatusChange `json:"history"`
	CreatedAt       time.Time      `json:"createdAt"`
	LastUpdatedAt   time.Time      `json:"lastUpdatedAt"`
}

// NewRecord creates a pending record for intent submitted at the given time.
func NewRecord(intent *Intent, decimals int32, submittedAt time.Time) *Record {
	return &Record{
		ID:              RecordID(intent, submittedAt),
		Sender:          intent.Sender,
		Recipient:       intent.Recipient,
		Amount:          FormatUnits(intent.Amount, decimals),
		AmountBaseUnits: intent.Amount.String(),
		Nonce:           intent.Nonce,
		Status:          StatusPending,
		Detail:          map[string]any{},
		History:         []StatusChange{{Status: StatusPending, At: submittedAt}},
		CreatedAt:       submittedAt,
		LastUpdatedAt:   submittedAt,
	}
}

// Clone returns a deep copy safe to hand out of the owning store.
func (r *Record) Clone() *Record {
	c := *r
	c.Detail = maps.Clone(r.Detail)
	if c.Detail == nil {
		c.Detail = map[string]any{}
	}
	c.History = append([]StatusChange(nil), r.History...)
	return &c
}

// recordNamespace scopes record ids generated by this relay
var recordNamespace = uuid.MustParse("6c1f3a52-8f0e-4d0b-9b7e-2a4c5d6e7f80")

// RecordID derives the record id from the intent tuple and the submission time
// in nanoseconds. The same inputs always yield the same id.
func RecordID(intent *Intent, submittedAt time.Time) string {
	name := fmt.Sprintf("%s|%s|%s|%d|%d",
		strings.ToLower(intent.Sender),
		strings.ToLower(intent.Recipient),
		intent.Amount.String(),
		intent.Nonce,
		submittedAt.UnixNano(),
	)
	return uuid.NewSHA1(recordNamespace, []byte(name)).String()
}

// Acknowledgement is returned synchronously on intake
type Acknowledgement struct {
	ID      string `json:"id"`
	Status  Status `json:"status"`
	Message string `json:"message"`
}
