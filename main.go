package main

import (
	"context"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/gagliardetto/solana-go/rpc"

	"unstakecli/models"
	"unstakecli/notify"
	"unstakecli/util"
)

type createPoolCmd struct {
	FeePath      string `arg:"positional,required" help:"path to the fee-spec JSON file"`
	Payer        string `arg:"--payer" help:"keypair file overriding the payer"`
	FeeAuthority string `arg:"--fee_authority" help:"keypair file overriding the fee authority"`
	PoolAccount  string `arg:"--pool_account" help:"keypair file overriding the pool account"`
	LpMint       string `arg:"--lp_mint" help:"keypair file overriding the LP mint"`
}

type addLiquidityCmd struct {
	PoolAccount    string  `arg:"positional,required" help:"pool account address"`
	AmountSol      float64 `arg:"positional,required" help:"amount of SOL to deposit"`
	From           string  `arg:"--from" help:"keypair file overriding the depositing account"`
	MintLpTokensTo string  `arg:"--mint_lp_tokens_to" help:"keypair file overriding the LP token destination"`
}

type cliArgs struct {
	CreatePool   *createPoolCmd   `arg:"subcommand:create_pool" help:"create an unstake liquidity pool"`
	AddLiquidity *addLiquidityCmd `arg:"subcommand:add_liquidity" help:"deposit SOL into an unstake liquidity pool"`

	Cluster   string `arg:"--cluster" help:"RPC URL or moniker: mainnet-beta, devnet, testnet, localnet"`
	Wallet    string `arg:"--wallet" help:"wallet keypair file"`
	ProgramID string `arg:"--program_id" help:"unstake program address"`
}

func main() {
	var args cliArgs
	parser := arg.MustParse(&args)

	logger := util.NewLogger(os.Getenv("LOG_LEVEL"))

	cfg, err := models.ResolveConfig(args.Cluster, args.Wallet, args.ProgramID)
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	notifier, err := notify.NewFromEnv(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("notify")
	}

	clientRPC := rpc.New(cfg.RPCURL)
	ctx := context.Background()

	switch {
	case args.CreatePool != nil:
		err = runCreatePool(ctx, cfg, clientRPC, args.CreatePool, notifier, logger)
	case args.AddLiquidity != nil:
		err = runAddLiquidity(ctx, cfg, clientRPC, args.AddLiquidity, notifier, logger)
	default:
		parser.Fail("missing subcommand")
	}

	if err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}
