package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidSignature     = errors.New("signature does not match wallet address")
	ErrMalformedSignature   = errors.New("malformed signature")
	ErrTransferNotFound     = errors.New("transfer not found on chain")
	ErrTransferReverted     = errors.New("transfer reverted on chain")
	ErrTransferWrongAccount = errors.New("transfer recipient does not match doctor wallet")
	ErrTransferUnderpaid    = errors.New("transfer value below consultation fee")
)

// weiPerEther converts a fee denominated in the native coin to wei.
var weiPerEther = decimal.New(1, 18)

// VerifyPersonalSign checks that signature is a valid EIP-191 personal_sign
// of message by the key behind walletAddress. Wallets return V as 27/28;
// geth expects 0/1.
func VerifyPersonalSign(message, signature, walletAddress string) error {
	sig, err := hexutil.Decode(signature)
	if err != nil || len(sig) != crypto.SignatureLength {
		return ErrMalformedSignature
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig = append([]byte(nil), sig...)
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pubKey, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return ErrMalformedSignature
	}

	recovered := crypto.PubkeyToAddress(*pubKey)
	if recovered != common.HexToAddress(walletAddress) {
		return ErrInvalidSignature
	}
	return nil
}

// SettlementVerifier checks a settlement reference against the chain.
// A nil verifier disables verification: the settlement write is then
// recorded as-is.
type SettlementVerifier interface {
	VerifyTransfer(ctx context.Context, txHash string, toAddress string, fee decimal.Decimal) error
}

// ChainService reads transfer receipts via an Ethereum JSON-RPC endpoint.
type ChainService struct {
	client *ethclient.Client
	log    *logrus.Logger
}

func NewChainService(rpcURL string, log *logrus.Logger) (*ChainService, error) {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain RPC: %w", err)
	}
	return &ChainService{client: client, log: log}, nil
}

// VerifyTransfer requires a mined, successful transaction whose recipient
// is the doctor's wallet and whose value covers the snapshotted fee.
func (s *ChainService) VerifyTransfer(ctx context.Context, txHash string, toAddress string, fee decimal.Decimal) error {
	hash := common.HexToHash(txHash)

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return ErrTransferNotFound
		}
		s.log.Warnf("Failed to fetch receipt for %s: %+v", txHash, err)
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return ErrTransferReverted
	}

	tx, _, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return ErrTransferNotFound
		}
		s.log.Warnf("Failed to fetch transaction %s: %+v", txHash, err)
		return err
	}

	if tx.To() == nil || !strings.EqualFold(tx.To().Hex(), common.HexToAddress(toAddress).Hex()) {
		return ErrTransferWrongAccount
	}

	required := fee.Mul(weiPerEther).BigInt()
	if tx.Value().Cmp(required) < 0 {
		return ErrTransferUnderpaid
	}
	return nil
}

var _ SettlementVerifier = (*ChainService)(nil)
