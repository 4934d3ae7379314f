package service

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

func signMessage(t *testing.T, message string) (signature, address string) {
	t.Helper()

	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	return hexutil.Encode(sig), crypto.PubkeyToAddress(key.PublicKey).Hex()
}

func TestVerifyPersonalSign(t *testing.T) {
	const message = "Login to MediChain at 2025-01-10T10:00:00Z nonce:abc"

	sig, addr := signMessage(t, message)

	if err := VerifyPersonalSign(message, sig, addr); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}
}

func TestVerifyPersonalSignWalletVOffset(t *testing.T) {
	// MetaMask returns V as 27/28 rather than geth's 0/1.
	const message = "challenge"

	sig, addr := signMessage(t, message)

	raw, err := hexutil.Decode(sig)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	raw[crypto.RecoveryIDOffset] += 27

	if err := VerifyPersonalSign(message, hexutil.Encode(raw), addr); err != nil {
		t.Fatalf("wallet-style signature rejected: %v", err)
	}
}

func TestVerifyPersonalSignWrongAddress(t *testing.T) {
	const message = "challenge"

	sig, _ := signMessage(t, message)
	_, otherAddr := signMessage(t, message)

	err := VerifyPersonalSign(message, sig, otherAddr)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyPersonalSignTamperedMessage(t *testing.T) {
	sig, addr := signMessage(t, "original message")

	err := VerifyPersonalSign("tampered message", sig, addr)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyPersonalSignMalformed(t *testing.T) {
	for _, sig := range []string{"", "0x00", "not-hex"} {
		err := VerifyPersonalSign("msg", sig, "0x0000000000000000000000000000000000000001")
		if !errors.Is(err, ErrMalformedSignature) {
			t.Errorf("signature %q: expected ErrMalformedSignature, got %v", sig, err)
		}
	}
}
