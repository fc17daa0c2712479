package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFeeSpecFlat(t *testing.T) {
	fee, err := LoadFeeSpec(filepath.Join("testdata", "fee_flat.json"))
	if err != nil {
		t.Fatalf("LoadFeeSpec returned error: %v", err)
	}
	if fee.Flat == nil || fee.LiquidityLinear != nil {
		t.Fatalf("expected the flat variant, got %+v", fee)
	}
	if fee.Flat.Ratio.Num != 1 || fee.Flat.Ratio.Denom != 100 {
		t.Fatalf("unexpected ratio %+v", fee.Flat.Ratio)
	}
}

func TestLoadFeeSpecLiquidityLinear(t *testing.T) {
	fee, err := LoadFeeSpec(filepath.Join("testdata", "fee_liquidity_linear.json"))
	if err != nil {
		t.Fatalf("LoadFeeSpec returned error: %v", err)
	}
	if fee.LiquidityLinear == nil || fee.Flat != nil {
		t.Fatalf("expected the liquidityLinear variant, got %+v", fee)
	}
	if fee.LiquidityLinear.MaxLiqRemaining.Num != 15 || fee.LiquidityLinear.MaxLiqRemaining.Denom != 1000 {
		t.Fatalf("unexpected maxLiqRemaining %+v", fee.LiquidityLinear.MaxLiqRemaining)
	}
	if fee.LiquidityLinear.ZeroLiqRemaining.Num != 42 || fee.LiquidityLinear.ZeroLiqRemaining.Denom != 1000 {
		t.Fatalf("unexpected zeroLiqRemaining %+v", fee.LiquidityLinear.ZeroLiqRemaining)
	}
}

func TestLoadFeeSpecRejectsBroken(t *testing.T) {
	cases := map[string]string{
		"neither":    `{}`,
		"both":       `{"flat":{"ratio":{"num":1,"denom":2}},"liquidityLinear":{"params":{"maxLiqRemaining":{"num":1,"denom":2},"zeroLiqRemaining":{"num":1,"denom":2}}}}`,
		"zero denom": `{"flat":{"ratio":{"num":1,"denom":0}}}`,
		"not json":   `fee: nope`,
	}

	dir := t.TempDir()
	for name, body := range cases {
		path := filepath.Join(dir, name+".json")
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if _, err := LoadFeeSpec(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}

	if _, err := LoadFeeSpec(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}
