package models

import (
	"encoding/json"
	"fmt"
	"os"

	"unstakecli/unstake"
)

type rationalJSON struct {
	Num   uint64 `json:"num"`
	Denom uint64 `json:"denom"`
}

type flatJSON struct {
	Ratio rationalJSON `json:"ratio"`
}

type liquidityLinearJSON struct {
	Params struct {
		MaxLiqRemaining  rationalJSON `json:"maxLiqRemaining"`
		ZeroLiqRemaining rationalJSON `json:"zeroLiqRemaining"`
	} `json:"params"`
}

// feeSpecFile is the on-disk schema: exactly one of the two variants.
type feeSpecFile struct {
	Flat            *flatJSON            `json:"flat"`
	LiquidityLinear *liquidityLinearJSON `json:"liquidityLinear"`
}

// LoadFeeSpec reads and validates a fee-spec JSON file. Any structural
// problem is reported before the command touches the network.
func LoadFeeSpec(path string) (*unstake.Fee, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fee spec %s: %w", path, err)
	}

	var spec feeSpecFile
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse fee spec %s: %w", path, err)
	}

	fee := &unstake.Fee{}
	if spec.Flat != nil {
		fee.Flat = &unstake.FlatFee{
			Ratio: rational(spec.Flat.Ratio),
		}
	}
	if spec.LiquidityLinear != nil {
		fee.LiquidityLinear = &unstake.LiquidityLinearFee{
			MaxLiqRemaining:  rational(spec.LiquidityLinear.Params.MaxLiqRemaining),
			ZeroLiqRemaining: rational(spec.LiquidityLinear.Params.ZeroLiqRemaining),
		}
	}

	if err := fee.Validate(); err != nil {
		return nil, fmt.Errorf("fee spec %s: %w", path, err)
	}
	return fee, nil
}

func rational(r rationalJSON) unstake.Rational {
	return unstake.Rational{Num: r.Num, Denom: r.Denom}
}
