// Package paymaster holds the request and response shapes of the paymaster
// operator API.
package paymaster

import "time"

// StatusResponse is a cached view of the paymaster contract. Token amounts
// are decimal strings in whole units.
type StatusResponse struct {
	Address            string    `json:"address"`
	Enabled            bool      `json:"enabled"`
	Balance            string    `json:"balance"`
	TotalDeposited     string    `json:"totalDeposited"`
	UserCount          string    `json:"userCount"`
	Paused             bool      `json:"paused"`
	SponsorshipEnabled bool      `json:"sponsorshipEnabled"`
	Symbol             string    `json:"symbol"`
	FetchedAt          time.Time `json:"fetchedAt"`
}

// BalanceResponse reports the paymaster's token balance
type BalanceResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
	Symbol  string `json:"symbol"`
}

// DepositRequest moves Amount whole tokens from the relay wallet into the paymaster
type DepositRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// TxResponse reports a mined paymaster transaction
type TxResponse struct {
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
	GasUsed     uint64 `json:"gasUsed"`
}
