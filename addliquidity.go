package main

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"

	"unstakecli/models"
	"unstakecli/notify"
	"unstakecli/unstake"
)

// runAddLiquidity deposits SOL into an existing pool. The LP token
// destination defaults to the depositor's associated token account for
// the pool's LP mint and is created on the fly when missing.
func runAddLiquidity(
	ctx context.Context,
	cfg *models.Config,
	client unstake.RPCClient,
	cmd *addLiquidityCmd,
	notifier *notify.Notifier,
	logger zerolog.Logger,
) error {

	poolAccount, err := solana.PublicKeyFromBase58(cmd.PoolAccount)
	if err != nil {
		return fmt.Errorf("invalid pool account %q: %v", cmd.PoolAccount, err)
	}

	lamports, err := unstake.SolToLamports(cmd.AmountSol)
	if err != nil {
		return err
	}

	// The pool is fetched the first time the LP mint is actually needed,
	// so keypair problems surface before any network access.
	var pool *unstake.Pool
	loadPool := func() (*unstake.Pool, error) {
		if pool == nil {
			pool, err = unstake.GetPool(ctx, client, poolAccount)
			if err != nil {
				return nil, err
			}
		}
		return pool, nil
	}

	bindings, err := unstake.ResolveRoles(cfg.Wallet.PublicKey(), []unstake.RoleSpec{
		{Role: unstake.RoleFrom, OverridePath: cmd.From, Default: unstake.DefaultWallet},
		{Role: unstake.RoleMintLpTokensTo, OverridePath: cmd.MintLpTokensTo, Default: unstake.DefaultDerive,
			Derive: func(b *unstake.Bindings) (solana.PublicKey, error) {
				p, err := loadPool()
				if err != nil {
					return solana.PublicKey{}, err
				}
				ata, _, err := solana.FindAssociatedTokenAddress(b.Key(unstake.RoleFrom), p.LpMint)
				return ata, err
			}},
	})
	if err != nil {
		return err
	}

	p, err := loadPool()
	if err != nil {
		return err
	}

	from := bindings.Key(unstake.RoleFrom)
	destination := bindings.Key(unstake.RoleMintLpTokensTo)

	poolSolReserves, err := unstake.FindPoolSolReserves(cfg.ProgramID, poolAccount)
	if err != nil {
		return err
	}

	instrs := []solana.Instruction{
		unstake.NewAddLiquidityInstruction(
			cfg.ProgramID,
			lamports,
			from,
			poolAccount,
			poolSolReserves,
			p.LpMint,
			destination,
		),
	}

	defaultAta, _, err := solana.FindAssociatedTokenAddress(from, p.LpMint)
	if err != nil {
		return err
	}

	instrs, err = unstake.EnsureTokenAccount(ctx, client, unstake.TokenAccountProvision{
		Destination:    destination,
		DefaultAddress: defaultAta,
		Owner:          from,
		Mint:           p.LpMint,
		Payer:          cfg.Wallet.PublicKey(),
	}, instrs)
	if err != nil {
		return err
	}

	logger.Info().
		Stringer("pool_account", poolAccount).
		Uint64("lamports", lamports).
		Msg("adding liquidity")

	submitter := unstake.NewSubmitter(client, cfg.Wallet, logger)
	sig, err := submitter.SubmitAndConfirm(ctx, instrs, bindings.Signers())
	if err != nil {
		return err
	}

	fmt.Printf("from: %s\n", from)
	fmt.Printf("mint_lp_tokens_to: %s\n", destination)
	fmt.Printf("signature: %s\n", sig)

	notifier.TransactionConfirmed("add_liquidity", sig.String())
	return nil
}
