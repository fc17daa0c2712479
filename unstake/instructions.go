package unstake

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// CreatePoolInstruction x
type CreatePoolInstruction struct {
	bin.BaseVariant
	Fee                     Fee
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
	programID               solana.PublicKey
}

// ProgramID x
func (inst *CreatePoolInstruction) ProgramID() solana.PublicKey {
	return inst.programID
}

// Accounts x
func (inst *CreatePoolInstruction) Accounts() (out []*solana.AccountMeta) {
	return inst.Impl.(solana.AccountsGettable).GetAccounts()
}

// Data x
func (inst *CreatePoolInstruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bin.NewBorshEncoder(buf).Encode(inst); err != nil {
		return nil, fmt.Errorf("unable to encode instruction: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalWithEncoder x
func (inst *CreatePoolInstruction) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	err = encoder.WriteBytes(createPoolDiscriminator, false)
	if err != nil {
		return err
	}
	return inst.Fee.MarshalWithEncoder(encoder)
}

// NewCreatePoolInstruction builds the create_pool instruction. The payer,
// fee authority, pool account and LP mint must all sign.
func NewCreatePoolInstruction(
	programID solana.PublicKey,
	fee Fee,
	payer solana.PublicKey,
	feeAuthority solana.PublicKey,
	poolAccount solana.PublicKey,
	poolSolReserves solana.PublicKey,
	feeAccount solana.PublicKey,
	lpMint solana.PublicKey,
) *CreatePoolInstruction {

	inst := CreatePoolInstruction{
		Fee:              fee,
		AccountMetaSlice: make(solana.AccountMetaSlice, 9),
		programID:        programID,
	}
	inst.BaseVariant = bin.BaseVariant{
		Impl: inst,
	}

	inst.AccountMetaSlice[0] = solana.Meta(payer).WRITE().SIGNER()
	inst.AccountMetaSlice[1] = solana.Meta(feeAuthority).SIGNER()
	inst.AccountMetaSlice[2] = solana.Meta(poolAccount).WRITE().SIGNER()
	inst.AccountMetaSlice[3] = solana.Meta(poolSolReserves)
	inst.AccountMetaSlice[4] = solana.Meta(feeAccount).WRITE()
	inst.AccountMetaSlice[5] = solana.Meta(lpMint).WRITE().SIGNER()
	inst.AccountMetaSlice[6] = solana.Meta(solana.TokenProgramID)
	inst.AccountMetaSlice[7] = solana.Meta(solana.SystemProgramID)
	inst.AccountMetaSlice[8] = solana.Meta(solana.SysVarRentPubkey)

	return &inst
}

// AddLiquidityInstruction x
type AddLiquidityInstruction struct {
	bin.BaseVariant
	Amount                  uint64
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
	programID               solana.PublicKey
}

// ProgramID x
func (inst *AddLiquidityInstruction) ProgramID() solana.PublicKey {
	return inst.programID
}

// Accounts x
func (inst *AddLiquidityInstruction) Accounts() (out []*solana.AccountMeta) {
	return inst.Impl.(solana.AccountsGettable).GetAccounts()
}

// Data x
func (inst *AddLiquidityInstruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bin.NewBorshEncoder(buf).Encode(inst); err != nil {
		return nil, fmt.Errorf("unable to encode instruction: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalWithEncoder x
func (inst *AddLiquidityInstruction) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	err = encoder.WriteBytes(addLiquidityDiscriminator, false)
	if err != nil {
		return err
	}
	return encoder.WriteUint64(inst.Amount, binary.LittleEndian)
}

// NewAddLiquidityInstruction builds the add_liquidity instruction. Only
// the depositing account signs; amount is in lamports.
func NewAddLiquidityInstruction(
	programID solana.PublicKey,
	amount uint64,
	from solana.PublicKey,
	poolAccount solana.PublicKey,
	poolSolReserves solana.PublicKey,
	lpMint solana.PublicKey,
	mintLpTokensTo solana.PublicKey,
) *AddLiquidityInstruction {

	inst := AddLiquidityInstruction{
		Amount:           amount,
		AccountMetaSlice: make(solana.AccountMetaSlice, 7),
		programID:        programID,
	}
	inst.BaseVariant = bin.BaseVariant{
		Impl: inst,
	}

	inst.AccountMetaSlice[0] = solana.Meta(from).WRITE().SIGNER()
	inst.AccountMetaSlice[1] = solana.Meta(poolAccount).WRITE()
	inst.AccountMetaSlice[2] = solana.Meta(poolSolReserves).WRITE()
	inst.AccountMetaSlice[3] = solana.Meta(lpMint).WRITE()
	inst.AccountMetaSlice[4] = solana.Meta(mintLpTokensTo).WRITE()
	inst.AccountMetaSlice[5] = solana.Meta(solana.SystemProgramID)
	inst.AccountMetaSlice[6] = solana.Meta(solana.TokenProgramID)

	return &inst
}
