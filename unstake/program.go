// Package unstake is a client for the on-chain unstake liquidity-pool
// program: account/role resolution, instruction builders, PDA derivation
// and transaction submission.
package unstake

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// DefaultProgramID is the mainnet deployment of the unstake program.
var DefaultProgramID = solana.MustPublicKeyFromBase58("unpXTU2Ndrc7WWNyEhQWe4udTzSibLPi25SXv2xbCHQ")

// Anchor discriminators (first 8 bytes of sha256 of the namespaced name).
var (
	createPoolDiscriminator   = []byte{233, 146, 209, 142, 207, 104, 64, 188}
	addLiquidityDiscriminator = []byte{181, 157, 89, 67, 143, 182, 52, 72}
	poolAccountDiscriminator  = []byte{241, 154, 109, 4, 17, 177, 109, 188}
)

var feeAccountSeed = []byte("fee")

// ErrNotPoolAccount x
var ErrNotPoolAccount = errors.New("account is not an unstake pool")

// RPCClient is the slice of the solana RPC surface this package consumes.
// *rpc.Client satisfies it.
type RPCClient interface {
	GetAccountInfo(ctx context.Context, account solana.PublicKey) (*rpc.GetAccountInfoResult, error)
	GetRecentBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetRecentBlockhashResult, error)
	SendTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, sigs ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
}

// Pool is the deserialized on-chain pool account state.
type Pool struct {
	FeeAuthority  solana.PublicKey
	LpMint        solana.PublicKey
	IncomingStake uint64
}

// DecodePool x
func DecodePool(data []byte) (*Pool, error) {
	if len(data) < len(poolAccountDiscriminator) || !bytes.Equal(data[:len(poolAccountDiscriminator)], poolAccountDiscriminator) {
		return nil, ErrNotPoolAccount
	}
	var pool Pool
	if err := bin.NewBorshDecoder(data[len(poolAccountDiscriminator):]).Decode(&pool); err != nil {
		return nil, fmt.Errorf("decode pool account: %w", err)
	}
	return &pool, nil
}

// GetPool fetches and decodes a pool account.
func GetPool(ctx context.Context, client RPCClient, poolAccount solana.PublicKey) (*Pool, error) {
	res, err := client.GetAccountInfo(ctx, poolAccount)
	if err != nil {
		return nil, fmt.Errorf("fetch pool account %s: %w", poolAccount, err)
	}
	return DecodePool(res.Value.Data.GetBinary())
}

// FindPoolSolReserves derives the pool's SOL reserves PDA.
func FindPoolSolReserves(programID solana.PublicKey, poolAccount solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress([][]byte{poolAccount.Bytes()}, programID)
	return addr, err
}

// FindFeeAccount derives the pool's fee account PDA.
func FindFeeAccount(programID solana.PublicKey, poolAccount solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress([][]byte{poolAccount.Bytes(), feeAccountSeed}, programID)
	return addr, err
}
