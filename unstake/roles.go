package unstake

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ErrInvalidKeypairFile x
var ErrInvalidKeypairFile = errors.New("invalid keypair file")

// Role identifies the semantic purpose of an account in a command. The
// role set of each command is fixed at compile time.
type Role int

const (
	RolePayer Role = iota
	RoleFeeAuthority
	RolePoolAccount
	RoleLpMint
	RoleFrom
	RoleMintLpTokensTo
)

var roleNames = map[Role]string{
	RolePayer:          "payer",
	RoleFeeAuthority:   "fee_authority",
	RolePoolAccount:    "pool_account",
	RoleLpMint:         "lp_mint",
	RoleFrom:           "from",
	RoleMintLpTokensTo: "mint_lp_tokens_to",
}

func (r Role) String() string {
	name, ok := roleNames[r]
	if !ok {
		panic(fmt.Sprintf("unknown role %d", int(r)))
	}
	return name
}

// DefaultRule says how a role resolves when no override keypair is given.
type DefaultRule int

const (
	// DefaultWallet resolves to the ambient wallet's public key. The
	// wallet signs at submission time, so no explicit signer is recorded.
	DefaultWallet DefaultRule = iota
	// DefaultGenerate resolves to a fresh ephemeral keypair which is
	// recorded as an explicit signer.
	DefaultGenerate
	// DefaultDerive computes a public key from already-resolved roles.
	// Derived roles are never signing parties.
	DefaultDerive
)

// DeriveFunc computes a derived role's public key from the bindings
// resolved so far.
type DeriveFunc func(b *Bindings) (solana.PublicKey, error)

// RoleSpec declares how one role resolves: an optional override keypair
// path, and the default rule applied when no override is supplied.
// Derive specs must appear after the roles they depend on.
type RoleSpec struct {
	Role         Role
	OverridePath string
	Default      DefaultRule
	Derive       DeriveFunc
}

// Bindings holds the resolved keys and signers of one command invocation.
// Every resolved role has exactly one public key; the signer map holds
// exactly the roles whose private key this process possesses.
type Bindings struct {
	keys    map[Role]solana.PublicKey
	signers map[Role]solana.PrivateKey
}

// Key returns the resolved public key for role. Asking for an unresolved
// role is a programming error and panics.
func (b *Bindings) Key(role Role) solana.PublicKey {
	key, ok := b.keys[role]
	if !ok {
		panic(fmt.Sprintf("role %s not resolved", role))
	}
	return key
}

// HasSigner x
func (b *Bindings) HasSigner(role Role) bool {
	_, ok := b.signers[role]
	return ok
}

// Signer returns the private key held for role, or nil.
func (b *Bindings) Signer(role Role) solana.PrivateKey {
	return b.signers[role]
}

// Signers returns the explicit signer collection. Order carries no
// meaning; the ambient wallet is never part of it.
func (b *Bindings) Signers() []solana.PrivateKey {
	out := make([]solana.PrivateKey, 0, len(b.signers))
	for _, pk := range b.signers {
		out = append(out, pk)
	}
	return out
}

// ResolveRoles resolves each spec independently: an override keypair file
// wins over the default rule and always registers a signer; wallet and
// derive defaults register none; generate defaults register the fresh
// keypair. Override files are read before any network access happens.
func ResolveRoles(wallet solana.PublicKey, specs []RoleSpec) (*Bindings, error) {
	b := &Bindings{
		keys:    map[Role]solana.PublicKey{},
		signers: map[Role]solana.PrivateKey{},
	}

	for _, spec := range specs {
		if spec.OverridePath != "" {
			keypair, err := solana.PrivateKeyFromSolanaKeygenFile(spec.OverridePath)
			if err != nil {
				return nil, fmt.Errorf("%w for %s at %s: %v", ErrInvalidKeypairFile, spec.Role, spec.OverridePath, err)
			}
			b.keys[spec.Role] = keypair.PublicKey()
			b.signers[spec.Role] = keypair
			continue
		}

		switch spec.Default {
		case DefaultWallet:
			b.keys[spec.Role] = wallet
		case DefaultGenerate:
			fresh := solana.NewWallet()
			b.keys[spec.Role] = fresh.PublicKey()
			b.signers[spec.Role] = fresh.PrivateKey
		case DefaultDerive:
			key, err := spec.Derive(b)
			if err != nil {
				return nil, fmt.Errorf("derive %s: %w", spec.Role, err)
			}
			b.keys[spec.Role] = key
		default:
			panic(fmt.Sprintf("unknown default rule %d for role %s", int(spec.Default), spec.Role))
		}
	}

	return b, nil
}
