// Package models loads the runtime configuration and the fee-spec files
// the CLI consumes.
package models

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"unstakecli/unstake"
)

// Config is the explicit runtime configuration of one invocation. It is
// resolved once in main and passed down; nothing reads process-global
// state afterwards.
type Config struct {
	RPCURL    string
	Wallet    solana.PrivateKey
	ProgramID solana.PublicKey
}

// solanaCLIConfig mirrors the fields we use from the solana CLI's own
// YAML config file.
type solanaCLIConfig struct {
	JSONRPCURL  string `yaml:"json_rpc_url"`
	KeypairPath string `yaml:"keypair_path"`
}

var clusterURLs = map[string]string{
	"mainnet-beta": rpc.MainNetBeta_RPC,
	"devnet":       rpc.DevNet_RPC,
	"testnet":      rpc.TestNet_RPC,
	"localnet":     rpc.LocalNet_RPC,
}

// ResolveConfig merges flag values, environment (a .env file is honored
// best-effort), the solana CLI config file and built-in defaults, in that
// order of priority. cluster accepts either a moniker or a full URL.
func ResolveConfig(cluster string, walletPath string, programID string) (*Config, error) {
	_ = godotenv.Load()

	cli := loadSolanaCLIConfig(defaultSolanaCLIConfigPath())

	rpcURL := firstNonEmpty(cluster, os.Getenv("SOLANA_RPC_URL"), cli.JSONRPCURL, rpc.MainNetBeta_RPC)
	if url, ok := clusterURLs[rpcURL]; ok {
		rpcURL = url
	}

	keypairPath := firstNonEmpty(walletPath, os.Getenv("SOLANA_WALLET"), cli.KeypairPath, defaultWalletPath())
	wallet, err := solana.PrivateKeyFromSolanaKeygenFile(keypairPath)
	if err != nil {
		return nil, fmt.Errorf("%w for wallet at %s: %v", unstake.ErrInvalidKeypairFile, keypairPath, err)
	}

	program := unstake.DefaultProgramID
	if raw := firstNonEmpty(programID, os.Getenv("UNSTAKE_PROGRAM_ID")); raw != "" {
		program, err = solana.PublicKeyFromBase58(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid program id %q: %v", raw, err)
		}
	}

	return &Config{
		RPCURL:    rpcURL,
		Wallet:    wallet,
		ProgramID: program,
	}, nil
}

// loadSolanaCLIConfig is best-effort: a missing or unreadable file yields
// an empty config and the defaults take over.
func loadSolanaCLIConfig(path string) solanaCLIConfig {
	var cfg solanaCLIConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	_ = yaml.Unmarshal(raw, &cfg)
	return cfg
}

func defaultSolanaCLIConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "solana", "cli", "config.yml")
}

func defaultWalletPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "solana", "id.json")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
