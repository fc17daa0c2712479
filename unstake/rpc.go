package unstake

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
)

// ErrNonPositiveAmount x
var ErrNonPositiveAmount = errors.New("amount must be a positive number of SOL")

// SolToLamports converts a decimal SOL amount to lamports
// (1 SOL = 1,000,000,000 lamports). Zero and negative amounts are
// rejected before any resolution or network step runs.
func SolToLamports(amountSol float64) (uint64, error) {
	if amountSol <= 0 {
		return 0, fmt.Errorf("%w, got %v", ErrNonPositiveAmount, amountSol)
	}
	return uint64(amountSol * float64(solana.LAMPORTS_PER_SOL)), nil
}

// Submitter sends finalized instruction sequences. The wallet keypair is
// the ambient signing capability: it pays fees and signs every
// transaction without ever appearing in the explicit signer list.
type Submitter struct {
	client  RPCClient
	wallet  solana.PrivateKey
	logger  zerolog.Logger
	timeout time.Duration
	poll    time.Duration
}

// NewSubmitter x
func NewSubmitter(client RPCClient, wallet solana.PrivateKey, logger zerolog.Logger) *Submitter {
	return &Submitter{
		client:  client,
		wallet:  wallet,
		logger:  logger,
		timeout: 120 * time.Second,
		poll:    2 * time.Second,
	}
}

// Wallet returns the ambient wallet's public key.
func (s *Submitter) Wallet() solana.PublicKey {
	return s.wallet.PublicKey()
}

// build fetches a recent blockhash and signs the transaction with the
// wallet plus the explicit signers. Signer order carries no meaning.
func (s *Submitter) build(ctx context.Context, instrs []solana.Instruction, signers []solana.PrivateKey) (*solana.Transaction, error) {
	recent, err := s.client.GetRecentBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return nil, fmt.Errorf("fetch recent blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		instrs,
		recent.Value.Blockhash,
		solana.TransactionPayer(s.wallet.PublicKey()),
	)
	if err != nil {
		return nil, err
	}

	_, err = tx.Sign(
		func(key solana.PublicKey) *solana.PrivateKey {
			if s.wallet.PublicKey().Equals(key) {
				return &s.wallet
			}
			for _, signer := range signers {
				if signer.PublicKey().Equals(key) {
					signer := signer
					return &signer
				}
			}
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	return tx, nil
}

// SubmitAndConfirm sends the instruction sequence and blocks until the
// network reports the transaction confirmed, returning the signature.
// Nothing is retried; every failure propagates to the caller.
func (s *Submitter) SubmitAndConfirm(ctx context.Context, instrs []solana.Instruction, signers []solana.PrivateKey) (solana.Signature, error) {
	tx, err := s.build(ctx, instrs, signers)
	if err != nil {
		return solana.Signature{}, err
	}

	sig, err := s.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return sig, fmt.Errorf("send transaction: %w", err)
	}
	s.logger.Info().Str("signature", sig.String()).Msg("transaction sent, awaiting confirmation")

	deadline := time.Now().Add(s.timeout)
	for time.Now().Before(deadline) {
		res, err := s.client.GetSignatureStatuses(ctx, false, sig)
		if err == nil && res != nil && len(res.Value) > 0 && res.Value[0] != nil {
			status := res.Value[0]
			if status.Err != nil {
				return sig, fmt.Errorf("transaction %s failed: %v", sig, status.Err)
			}
			if status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
				status.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				return sig, nil
			}
		}
		if err != nil {
			s.logger.Debug().Err(err).Msg("signature status poll failed")
		}

		select {
		case <-ctx.Done():
			return sig, ctx.Err()
		case <-time.After(s.poll):
		}
	}

	return sig, fmt.Errorf("transaction %s not confirmed after %s", sig, s.timeout)
}
