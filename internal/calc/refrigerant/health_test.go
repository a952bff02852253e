package refrigerant

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestEvaluate_DeltaTBoundaryIsOK(t *testing.T) {
	// 14 is the bottom of the ok band, inclusive
	out := EvaluateCoolingHealth(HealthInput{DeltaT: f(14), MeteringDevice: "txv"})
	require.Len(t, out, 1)
	assert.Equal(t, LevelOK, out[0].Level)
}

func TestEvaluate_DeltaTWarnings(t *testing.T) {
	out := EvaluateCoolingHealth(HealthInput{DeltaT: f(13.9)})
	require.Len(t, out, 1)
	assert.Equal(t, LevelWarn, out[0].Level)

	out = EvaluateCoolingHealth(HealthInput{DeltaT: f(25)})
	require.Len(t, out, 1)
	assert.Equal(t, LevelWarn, out[0].Level)
	assert.Contains(t, out[0].Message, "freeze")
}

func TestEvaluate_DeviceAsymmetry(t *testing.T) {
	// 7 F superheat reads fine on a TXV system but is under the
	// fixed-orifice floor, so the two device paths must diverge.
	txv := EvaluateCoolingHealth(HealthInput{Superheat: f(7), MeteringDevice: "txv"})
	require.Len(t, txv, 1)
	assert.Equal(t, LevelOK, txv[0].Level)

	fixed := EvaluateCoolingHealth(HealthInput{Superheat: f(7), MeteringDevice: "piston"})
	require.Len(t, fixed, 1)
	assert.Equal(t, LevelWarn, fixed[0].Level)
	assert.Contains(t, fixed[0].Message, "overcharge")
}

func TestEvaluate_TXVOrderSubcoolFirst(t *testing.T) {
	out := EvaluateCoolingHealth(HealthInput{
		DeltaT:         f(18),
		Superheat:      f(10),
		Subcool:        f(10),
		MeteringDevice: "TXV",
	})
	require.Len(t, out, 3)
	assert.Contains(t, out[0].Message, "Delta-T")
	assert.Contains(t, out[1].Message, "Subcool")
	assert.Contains(t, out[2].Message, "Superheat")
}

func TestEvaluate_FixedOrderSuperheatFirst(t *testing.T) {
	out := EvaluateCoolingHealth(HealthInput{
		Superheat:      f(12),
		Subcool:        f(10),
		MeteringDevice: "fixed",
	})
	require.Len(t, out, 2)
	assert.Contains(t, out[0].Message, "Superheat")
	assert.Contains(t, out[1].Message, "Subcool")
}

func TestEvaluate_MissingMetricsSkipped(t *testing.T) {
	assert.Empty(t, EvaluateCoolingHealth(HealthInput{MeteringDevice: "txv"}))

	out := EvaluateCoolingHealth(HealthInput{
		Subcool:        f(math.NaN()),
		Superheat:      f(15),
		MeteringDevice: "txv",
	})
	require.Len(t, out, 1)
	assert.Contains(t, out[0].Message, "Superheat")
}

func TestEvaluate_TXVSubcoolBands(t *testing.T) {
	warnLow := EvaluateCoolingHealth(HealthInput{Subcool: f(5.9), MeteringDevice: "txv"})
	require.Len(t, warnLow, 1)
	assert.Equal(t, LevelWarn, warnLow[0].Level)
	assert.Contains(t, warnLow[0].Message, "undercharge")

	warnHigh := EvaluateCoolingHealth(HealthInput{Subcool: f(14.1), MeteringDevice: "txv"})
	require.Len(t, warnHigh, 1)
	assert.Contains(t, warnHigh[0].Message, "overcharge")

	okBoundary := EvaluateCoolingHealth(HealthInput{Subcool: f(6), MeteringDevice: "txv"})
	require.Len(t, okBoundary, 1)
	assert.Equal(t, LevelOK, okBoundary[0].Level)
}

func TestSuggestChargeAdjust_TXV(t *testing.T) {
	assert.Equal(t,
		"Subcool reading required for TXV charge guidance.",
		SuggestChargeAdjust(ChargeInput{MeteringDevice: "txv"}))

	assert.Equal(t,
		"Add charge slowly and re-check subcool.",
		SuggestChargeAdjust(ChargeInput{Subcool: f(7.9), MeteringDevice: "txv"}))

	assert.Equal(t,
		"Recover charge slowly and re-check subcool.",
		SuggestChargeAdjust(ChargeInput{Subcool: f(12.1), MeteringDevice: "txv"}))

	assert.Equal(t,
		"Charge looks correct; no adjustment needed.",
		SuggestChargeAdjust(ChargeInput{Subcool: f(10), MeteringDevice: "txv"}))
}

func TestSuggestChargeAdjust_FixedOrifice(t *testing.T) {
	assert.Equal(t,
		"Superheat reading required for fixed-orifice charge guidance.",
		SuggestChargeAdjust(ChargeInput{MeteringDevice: "piston"}))

	// high superheat means undercharged, so the advice is to add
	assert.Equal(t,
		"Add charge slowly and re-check superheat.",
		SuggestChargeAdjust(ChargeInput{Superheat: f(16), MeteringDevice: "piston"}))

	assert.Equal(t,
		"Recover charge slowly and re-check superheat.",
		SuggestChargeAdjust(ChargeInput{Superheat: f(8), MeteringDevice: "piston"}))

	assert.Equal(t,
		"Charge looks correct; no adjustment needed.",
		SuggestChargeAdjust(ChargeInput{Superheat: f(12), MeteringDevice: "piston"}))
}

func TestLoadThresholds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	require.NoError(t, os.WriteFile(path, []byte("delta_t_low: 12\n"), 0o644))

	th, err := LoadThresholds(path)
	require.NoError(t, err)
	assert.Equal(t, 12.0, th.DeltaTLow)
	// untouched fields keep their defaults
	assert.Equal(t, DefaultThresholds.DeltaTHigh, th.DeltaTHigh)

	out := th.Evaluate(HealthInput{DeltaT: f(13)})
	require.Len(t, out, 1)
	assert.Equal(t, LevelOK, out[0].Level)
}

func TestLoadThresholds_MissingFile(t *testing.T) {
	_, err := LoadThresholds(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDiagnose(t *testing.T) {
	d, err := Diagnose(DiagnoseInput{
		Refrigerant:    "r410a",
		MeteringDevice: "txv",
		ReturnF:        f(75),
		SupplyF:        f(57),
		SuctionPsig:    f(118),
		SuctionLineF:   f(50),
		LiquidPsig:     f(275),
		LiquidLineF:    f(70),
	})
	require.NoError(t, err)
	assert.Equal(t, "R410A", d.Refrigerant)
	assert.Equal(t, "txv", d.MeteringDevice)
	require.NotNil(t, d.DeltaT)
	assert.Equal(t, 18.0, *d.DeltaT)
	require.NotNil(t, d.Superheat)
	assert.Equal(t, 14.2, *d.Superheat)
	require.NotNil(t, d.Subcool)
	assert.Equal(t, 9.0, *d.Subcool)
	assert.Len(t, d.Advisories, 3)
	assert.Equal(t, "Charge looks correct; no adjustment needed.", d.ChargeAdvice)
}

func TestDiagnose_NoReadings(t *testing.T) {
	_, err := Diagnose(DiagnoseInput{Refrigerant: "R22"})
	assert.Error(t, err)
}

func TestDiagnose_PartialReadings(t *testing.T) {
	d, err := Diagnose(DiagnoseInput{
		MeteringDevice: "piston",
		ReturnF:        f(74),
		SupplyF:        f(58),
	})
	require.NoError(t, err)
	require.NotNil(t, d.DeltaT)
	assert.Nil(t, d.Superheat)
	assert.Nil(t, d.Subcool)
	assert.Equal(t, "Superheat reading required for fixed-orifice charge guidance.", d.ChargeAdvice)
}
