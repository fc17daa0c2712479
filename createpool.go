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

// runCreatePool resolves the four create_pool roles, builds the
// instruction and submits it. Pool account and LP mint default to fresh
// keypairs, payer and fee authority to the wallet.
func runCreatePool(
	ctx context.Context,
	cfg *models.Config,
	client unstake.RPCClient,
	cmd *createPoolCmd,
	notifier *notify.Notifier,
	logger zerolog.Logger,
) error {

	fee, err := models.LoadFeeSpec(cmd.FeePath)
	if err != nil {
		return err
	}

	bindings, err := unstake.ResolveRoles(cfg.Wallet.PublicKey(), []unstake.RoleSpec{
		{Role: unstake.RolePayer, OverridePath: cmd.Payer, Default: unstake.DefaultWallet},
		{Role: unstake.RoleFeeAuthority, OverridePath: cmd.FeeAuthority, Default: unstake.DefaultWallet},
		{Role: unstake.RolePoolAccount, OverridePath: cmd.PoolAccount, Default: unstake.DefaultGenerate},
		{Role: unstake.RoleLpMint, OverridePath: cmd.LpMint, Default: unstake.DefaultGenerate},
	})
	if err != nil {
		return err
	}

	poolAccount := bindings.Key(unstake.RolePoolAccount)
	poolSolReserves, err := unstake.FindPoolSolReserves(cfg.ProgramID, poolAccount)
	if err != nil {
		return err
	}
	feeAccount, err := unstake.FindFeeAccount(cfg.ProgramID, poolAccount)
	if err != nil {
		return err
	}

	inst := unstake.NewCreatePoolInstruction(
		cfg.ProgramID,
		*fee,
		bindings.Key(unstake.RolePayer),
		bindings.Key(unstake.RoleFeeAuthority),
		poolAccount,
		poolSolReserves,
		feeAccount,
		bindings.Key(unstake.RoleLpMint),
	)

	logger.Info().Stringer("pool_account", poolAccount).Msg("creating pool")

	submitter := unstake.NewSubmitter(client, cfg.Wallet, logger)
	sig, err := submitter.SubmitAndConfirm(ctx, []solana.Instruction{inst}, bindings.Signers())
	if err != nil {
		return err
	}

	fmt.Printf("payer: %s\n", bindings.Key(unstake.RolePayer))
	fmt.Printf("fee_authority: %s\n", bindings.Key(unstake.RoleFeeAuthority))
	fmt.Printf("pool_account: %s\n", poolAccount)
	fmt.Printf("lp_mint: %s\n", bindings.Key(unstake.RoleLpMint))
	fmt.Printf("signature: %s\n", sig)

	notifier.TransactionConfirmed("create_pool", sig.String())
	return nil
}
