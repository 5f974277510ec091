//go:build ignore

// Signs a transfer intent the way a wallet would and prints the JSON body for
// POST /api/payments/transfer.
//
//	SENDER_KEY=<hex> go run scripts/sign-intent.go -to 0x... -amount 10.50 -nonce 0
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainsafe/castpay-relayer/pkg/auth"
	"github.com/chainsafe/castpay-relayer/pkg/transfer"
)

func main() {
	to := flag.String("to", "", "Recipient address")
	amount := flag.String("amount", "", "Amount in whole tokens, e.g. 10.50")
	nonce := flag.Uint64("nonce", 0, "Sender nonce from /api/users/nonce/{address}")
	decimals := flag.Int("decimals", int(transfer.USDCDecimals), "Token decimals")
	flag.Parse()

	key, err := crypto.HexToECDSA(os.Getenv("SENDER_KEY"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "SENDER_KEY: %v\n", err)
		os.Exit(1)
	}
	if !auth.ValidateEVMAddress(*to) {
		fmt.Fprintln(os.Stderr, "-to must be a 0x-prefixed address")
		os.Exit(1)
	}

	base, err := transfer.ParseUnits(*amount, int32(*decimals))
	if err != nil {
		fmt.Fprintf(os.Stderr, "amount: %v\n", err)
		os.Exit(1)
	}

	sender := crypto.PubkeyToAddress(key.PublicKey).Hex()
	recipient := auth.NormalizeAddress(*to)
	msg := auth.CanonicalMessage(sender, recipient, base.String(), *nonce)

	sig, err := crypto.Sign(auth.PersonalMessageHash(msg), key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sign: %v\n", err)
		os.Exit(1)
	}
	sig[64] += 27

	body, _ := json.MarshalIndent(map[string]any{
		"sender":    sender,
		"recipient": recipient,
		"amount":    *amount,
		"nonce":     *nonce,
		"signature": hexutil.Encode(sig),
	}, "", "  ")
	fmt.Println(string(body))
}
