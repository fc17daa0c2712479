package unstake

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func u64le(v uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return buf
}

func TestCreatePoolInstructionDataFlat(t *testing.T) {
	inst := NewCreatePoolInstruction(
		DefaultProgramID,
		Fee{Flat: &FlatFee{Ratio: Rational{Num: 1, Denom: 100}}},
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
	)

	data, err := inst.Data()
	if err != nil {
		t.Fatalf("Data returned error: %v", err)
	}

	want := append([]byte{}, createPoolDiscriminator...)
	want = append(want, 0) // flat variant tag
	want = append(want, u64le(1)...)
	want = append(want, u64le(100)...)
	if !bytes.Equal(data, want) {
		t.Fatalf("unexpected data\n got %v\nwant %v", data, want)
	}
}

func TestCreatePoolInstructionDataLiquidityLinear(t *testing.T) {
	inst := NewCreatePoolInstruction(
		DefaultProgramID,
		Fee{LiquidityLinear: &LiquidityLinearFee{
			MaxLiqRemaining:  Rational{Num: 15, Denom: 1000},
			ZeroLiqRemaining: Rational{Num: 42, Denom: 1000},
		}},
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
	)

	data, err := inst.Data()
	if err != nil {
		t.Fatalf("Data returned error: %v", err)
	}

	want := append([]byte{}, createPoolDiscriminator...)
	want = append(want, 1) // liquidityLinear variant tag
	want = append(want, u64le(15)...)
	want = append(want, u64le(1000)...)
	want = append(want, u64le(42)...)
	want = append(want, u64le(1000)...)
	if !bytes.Equal(data, want) {
		t.Fatalf("unexpected data\n got %v\nwant %v", data, want)
	}
}

func TestCreatePoolInstructionAccounts(t *testing.T) {
	payer := solana.NewWallet().PublicKey()
	feeAuthority := solana.NewWallet().PublicKey()
	poolAccount := solana.NewWallet().PublicKey()
	poolSolReserves := solana.NewWallet().PublicKey()
	feeAccount := solana.NewWallet().PublicKey()
	lpMint := solana.NewWallet().PublicKey()

	inst := NewCreatePoolInstruction(
		DefaultProgramID,
		Fee{Flat: &FlatFee{Ratio: Rational{Num: 0, Denom: 1}}},
		payer, feeAuthority, poolAccount, poolSolReserves, feeAccount, lpMint,
	)

	if !inst.ProgramID().Equals(DefaultProgramID) {
		t.Fatalf("unexpected program id %s", inst.ProgramID())
	}

	accounts := inst.Accounts()
	if len(accounts) != 9 {
		t.Fatalf("expected 9 accounts, got %d", len(accounts))
	}

	signers := map[int]solana.PublicKey{0: payer, 1: feeAuthority, 2: poolAccount, 5: lpMint}
	for idx, want := range signers {
		meta := accounts[idx]
		if !meta.PublicKey.Equals(want) {
			t.Fatalf("account %d: expected %s, got %s", idx, want, meta.PublicKey)
		}
		if !meta.IsSigner {
			t.Fatalf("account %d (%s) must sign", idx, want)
		}
	}
	if accounts[3].IsSigner || accounts[4].IsSigner {
		t.Fatalf("PDAs must not be marked as signers")
	}
	if !accounts[8].PublicKey.Equals(solana.SysVarRentPubkey) {
		t.Fatalf("expected rent sysvar last, got %s", accounts[8].PublicKey)
	}
}

func TestAddLiquidityInstructionData(t *testing.T) {
	inst := NewAddLiquidityInstruction(
		DefaultProgramID,
		1_500_000_000,
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
	)

	data, err := inst.Data()
	if err != nil {
		t.Fatalf("Data returned error: %v", err)
	}

	want := append([]byte{}, addLiquidityDiscriminator...)
	want = append(want, u64le(1_500_000_000)...)
	if !bytes.Equal(data, want) {
		t.Fatalf("unexpected data\n got %v\nwant %v", data, want)
	}
}

func TestAddLiquidityInstructionAccounts(t *testing.T) {
	from := solana.NewWallet().PublicKey()
	mintLpTokensTo := solana.NewWallet().PublicKey()

	inst := NewAddLiquidityInstruction(
		DefaultProgramID,
		1,
		from,
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
		mintLpTokensTo,
	)

	accounts := inst.Accounts()
	if len(accounts) != 7 {
		t.Fatalf("expected 7 accounts, got %d", len(accounts))
	}
	if !accounts[0].PublicKey.Equals(from) || !accounts[0].IsSigner {
		t.Fatalf("the depositing account must be the first meta and sign")
	}
	for i := 1; i < len(accounts); i++ {
		if accounts[i].IsSigner {
			t.Fatalf("account %d must not sign", i)
		}
	}
	if !accounts[4].PublicKey.Equals(mintLpTokensTo) || !accounts[4].IsWritable {
		t.Fatalf("LP token destination must be writable at index 4")
	}
}

func TestFeeValidate(t *testing.T) {
	cases := []struct {
		name    string
		fee     Fee
		wantErr bool
	}{
		{"flat ok", Fee{Flat: &FlatFee{Ratio: Rational{Num: 1, Denom: 100}}}, false},
		{"linear ok", Fee{LiquidityLinear: &LiquidityLinearFee{
			MaxLiqRemaining:  Rational{Num: 15, Denom: 1000},
			ZeroLiqRemaining: Rational{Num: 42, Denom: 1000},
		}}, false},
		{"neither", Fee{}, true},
		{"both", Fee{
			Flat:            &FlatFee{Ratio: Rational{Num: 1, Denom: 2}},
			LiquidityLinear: &LiquidityLinearFee{},
		}, true},
		{"zero denom", Fee{Flat: &FlatFee{Ratio: Rational{Num: 1, Denom: 0}}}, true},
		{"ratio above one", Fee{Flat: &FlatFee{Ratio: Rational{Num: 3, Denom: 2}}}, true},
	}

	for _, tc := range cases {
		err := tc.fee.Validate()
		if tc.wantErr && err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
	}
}
