// Package payment holds the request and response shapes of the relay's
// payment API.
package payment

import "github.com/chainsafe/castpay-relayer/pkg/transfer"

// TransferRequest is a signed transfer intent as posted by a client.
// Amount is a decimal string in whole token units, e.g. "10.50".
type TransferRequest struct {
	Sender    string  `json:"sender" validate:"required"`
	Recipient string  `json:"recipient" validate:"required"`
	Amount    string  `json:"amount" validate:"required"`
	Nonce     *uint64 `json:"nonce" validate:"required"`
	Signature string  `json:"signature" validate:"required"`
}

// TransactionsResponse lists tracked transfers, newest first
type TransactionsResponse struct {
	Transactions []*transfer.Record `json:"transactions"`
	Count        int                `json:"count"`
}

// BalanceResponse reports what a sender can move through the relay
type BalanceResponse struct {
	Address          string `json:"address"`
	Balance          string `json:"balance"`
	RelayerAllowance string `json:"relayerAllowance"`
	SpenderAddress   string `json:"spenderAddress"`
	Symbol           string `json:"symbol"`
}

// NonceResponse reports the next nonce a sender should sign with
type NonceResponse struct {
	Address string `json:"address"`
	Nonce   uint64 `json:"nonce"`
	Source  string `json:"source"`
}

// NonceSourceMemory marks nonces served from the in-process tracker
const NonceSourceMemory = "memory"

// RelayerResponse identifies the relay's signing address
type RelayerResponse struct {
	Relayer string `json:"relayer"`
}
