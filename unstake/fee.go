package unstake

import (
	"encoding/binary"
	"errors"

	bin "github.com/gagliardetto/binary"
)

// ErrInvalidFee x
var ErrInvalidFee = errors.New("invalid fee")

// Rational x
type Rational struct {
	Num   uint64
	Denom uint64
}

// IsValid reports whether the rational is a well-formed ratio in [0, 1].
func (r Rational) IsValid() bool {
	return r.Denom != 0 && r.Num <= r.Denom
}

// FlatFee charges the same ratio regardless of pool liquidity.
type FlatFee struct {
	Ratio Rational
}

// LiquidityLinearFee interpolates the charged ratio between the fee at max
// liquidity and the fee at zero liquidity.
type LiquidityLinearFee struct {
	MaxLiqRemaining  Rational
	ZeroLiqRemaining Rational
}

// Fee is the program's fee enum. Exactly one variant must be set.
type Fee struct {
	Flat            *FlatFee
	LiquidityLinear *LiquidityLinearFee
}

// Validate checks the enum is structurally sound. Economic validation is
// performed by the on-chain program.
func (f *Fee) Validate() error {
	switch {
	case f.Flat != nil && f.LiquidityLinear != nil:
		return errors.New("fee must be either flat or liquidityLinear, not both")
	case f.Flat != nil:
		if !f.Flat.Ratio.IsValid() {
			return ErrInvalidFee
		}
	case f.LiquidityLinear != nil:
		if !f.LiquidityLinear.MaxLiqRemaining.IsValid() || !f.LiquidityLinear.ZeroLiqRemaining.IsValid() {
			return ErrInvalidFee
		}
	default:
		return errors.New("fee must set flat or liquidityLinear")
	}
	return nil
}

// MarshalWithEncoder writes the borsh enum encoding: a u8 variant tag
// (0 = flat, 1 = liquidityLinear) followed by the variant fields.
func (f *Fee) MarshalWithEncoder(encoder *bin.Encoder) error {
	switch {
	case f.Flat != nil:
		if err := encoder.WriteUint8(0); err != nil {
			return err
		}
		return encodeRational(encoder, f.Flat.Ratio)
	case f.LiquidityLinear != nil:
		if err := encoder.WriteUint8(1); err != nil {
			return err
		}
		if err := encodeRational(encoder, f.LiquidityLinear.MaxLiqRemaining); err != nil {
			return err
		}
		return encodeRational(encoder, f.LiquidityLinear.ZeroLiqRemaining)
	}
	return errors.New("fee variant not set")
}

func encodeRational(encoder *bin.Encoder, r Rational) error {
	if err := encoder.WriteUint64(r.Num, binary.LittleEndian); err != nil {
		return err
	}
	return encoder.WriteUint64(r.Denom, binary.LittleEndian)
}
