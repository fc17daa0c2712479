package unstake

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/rpc"
)

// ErrAccountNotFound x
var ErrAccountNotFound = errors.New("token account not found")

// AccountFetcher is the existence query the provisioner needs.
// *rpc.Client satisfies it.
type AccountFetcher interface {
	GetAccountInfo(ctx context.Context, account solana.PublicKey) (*rpc.GetAccountInfoResult, error)
}

// TokenAccountProvision describes a destination token account that must
// exist before the transaction referencing it can succeed.
type TokenAccountProvision struct {
	// Destination is the resolved token account the transaction writes to.
	Destination solana.PublicKey
	// DefaultAddress is the canonical ATA of Owner for Mint. Only this
	// address is eligible for auto-creation; comparison is by value.
	DefaultAddress solana.PublicKey
	Owner          solana.PublicKey
	Mint           solana.PublicKey
	// Payer funds the created account (the ambient wallet).
	Payer solana.PublicKey
}

// EnsureTokenAccount decides whether instrs needs a preceding
// ATA-creation instruction. An existing destination leaves instrs
// untouched. A missing destination equal to the canonical default gets
// exactly one creation instruction prepended. A missing destination that
// differs from the default fails with ErrAccountNotFound; the operator
// supplied an address that does not exist as a token account, which is
// more likely a mistake than something to silently provision.
func EnsureTokenAccount(
	ctx context.Context,
	fetcher AccountFetcher,
	provision TokenAccountProvision,
	instrs []solana.Instruction,
) ([]solana.Instruction, error) {

	_, err := fetcher.GetAccountInfo(ctx, provision.Destination)
	if err == nil {
		return instrs, nil
	}
	if !errors.Is(err, rpc.ErrNotFound) {
		return instrs, fmt.Errorf("query token account %s: %w", provision.Destination, err)
	}

	if !provision.Destination.Equals(provision.DefaultAddress) {
		return instrs, fmt.Errorf("%w: %s", ErrAccountNotFound, provision.Destination)
	}

	createInst, err := associatedtokenaccount.NewCreateInstruction(
		provision.Payer,
		provision.Owner,
		provision.Mint,
	).ValidateAndBuild()
	if err != nil {
		return instrs, err
	}

	// The creation must precede the instruction that references the account.
	return append([]solana.Instruction{createInst}, instrs...), nil
}
