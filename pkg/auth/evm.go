package auth

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const messagePrefix = "CastPay"

// CanonicalMessage builds the exact string a sender signs to authorize a transfer
func CanonicalMessage(sender, recipient, amountBaseUnits string, nonce uint64) string {
	return strings.Join([]string{
		messagePrefix,
		sender,
		recipient,
		amountBaseUnits,
		strconv.FormatUint(nonce, 10),
	}, ":")
}

// Verify reports whether signature is a personal_sign signature by sender over
// the canonical transfer message. It never panics and returns false for any
// malformed input.
func Verify(sender, recipient, amountBaseUnits string, nonce uint64, signature string) bool {
	if !ValidateEVMAddress(sender) {
		return false
	}
	msg := CanonicalMessage(sender, recipient, amountBaseUnits, nonce)
	recovered, err := VerifyEIP191Signature(msg, signature)
	if err != nil {
		return false
	}
	return strings.EqualFold(recovered.Hex(), sender)
}

// VerifyEIP191Signature verifies an EIP-191 personal_sign signature
// Returns the recovered Ethereum address if valid
func VerifyEIP191Signature(message, signature string) (common.Address, error) {
	sigBytes, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signature hex: %w", err)
	}

	if len(sigBytes) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length: expected %d, got %d", crypto.SignatureLength, len(sigBytes))
	}

	// v can be 0, 1, 27, or 28 - normalize to 0 or 1
	if sigBytes[64] >= 27 {
		sigBytes[64] -= 27
	}
	if sigBytes[64] > 1 {
		return common.Address{}, fmt.Errorf("invalid recovery id %d", sigBytes[64])
	}

	pubKey, err := crypto.SigToPub(PersonalMessageHash(message), sigBytes)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}

	return crypto.PubkeyToAddress(*pubKey), nil
}

// PersonalMessageHash returns the EIP-191 prefixed keccak256 hash of message
func PersonalMessageHash(message string) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return crypto.Keccak256([]byte(prefixed))
}

// ValidateEVMAddress checks if a string is a valid EVM address
func ValidateEVMAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") && !strings.HasPrefix(address, "0X") {
		return false
	}
	if len(address) != 42 {
		return false
	}
	_, err := hex.DecodeString(address[2:])
	return err == nil
}

// NormalizeAddress returns a checksummed EVM address
func NormalizeAddress(address string) string {
	return common.HexToAddress(address).Hex()
}
