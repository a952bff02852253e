package refrigerant

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaturationTemp_BelowTableClamps(t *testing.T) {
	temp, err := SaturationTemp(50, "R410A")
	require.NoError(t, err)
	assert.Equal(t, 26.0, temp) // first table entry, not extrapolated
}

func TestSaturationTemp_AboveTableClamps(t *testing.T) {
	temp, err := SaturationTemp(900, "R410A")
	require.NoError(t, err)
	assert.Equal(t, 121.0, temp) // last table entry
}

func TestSaturationTemp_Interpolates(t *testing.T) {
	// midpoint of (90,26) and (110,33): 26 + 10/20*7
	temp, err := SaturationTemp(100, "R410A")
	require.NoError(t, err)
	assert.Equal(t, 29.5, temp)
}

func TestSaturationTemp_ExactTablePoint(t *testing.T) {
	temp, err := SaturationTemp(110, "R410A")
	require.NoError(t, err)
	assert.Equal(t, 33.0, temp)
}

func TestSaturationTemp_UnknownCodeFallsBackToR410A(t *testing.T) {
	want, err := SaturationTemp(100, "R410A")
	require.NoError(t, err)
	got, err := SaturationTemp(100, "R-1234yf")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaturationTemp_CodeNormalization(t *testing.T) {
	a, err := SaturationTemp(100, "r-22")
	require.NoError(t, err)
	b, err := SaturationTemp(100, "R22")
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestSaturationTemp_Invalid(t *testing.T) {
	_, err := SaturationTemp(math.NaN(), "R410A")
	assert.Error(t, err)
}

func TestDeltaT(t *testing.T) {
	dt, err := DeltaT(75, 57.5)
	require.NoError(t, err)
	assert.Equal(t, 17.5, dt)

	_, err = DeltaT(math.NaN(), 57.5)
	assert.Error(t, err)
}

func TestSuperheat(t *testing.T) {
	// sat at 118 PSIG R410A: 33 + 8/20*7 = 35.8
	sh, err := Superheat(118, 50, "R410A")
	require.NoError(t, err)
	assert.Equal(t, 14.2, sh)
}

func TestSubcool(t *testing.T) {
	// 275 PSIG is a table point at 79 F
	sc, err := Subcool(275, 70, "R410A")
	require.NoError(t, err)
	assert.Equal(t, 9.0, sc)
}

func TestAirflowByTonnage(t *testing.T) {
	af, err := AirflowByTonnage(3)
	require.NoError(t, err)
	assert.Equal(t, 1200, af.NominalCFM)
	assert.Equal(t, 1050, af.LowCFM)
	assert.Equal(t, 1260, af.HighCFM)

	_, err = AirflowByTonnage(0)
	assert.Error(t, err)
}

func TestFrictionRate(t *testing.T) {
	fr, err := FrictionRate(0.5, 0.1, 0.08, 250)
	require.NoError(t, err)
	assert.Equal(t, 0.128, fr)

	_, err = FrictionRate(0.5, 0.1, 0.08, 0)
	assert.Error(t, err)
}

func TestTargetsFor(t *testing.T) {
	tg := TargetsFor("R410A", "txv")
	assert.Equal(t, 16.0, tg.DeltaTLowF)
	assert.Equal(t, 22.0, tg.DeltaTHighF)
	assert.Equal(t, 10.0, tg.SubcoolF)
	assert.Equal(t, 10.0, tg.SuperheatF)

	tg = TargetsFor("R22", "piston")
	assert.Equal(t, 8.0, tg.SubcoolF)
	assert.Equal(t, 12.0, tg.SuperheatF)
}

func TestTablesAscending(t *testing.T) {
	for code, table := range ptTables {
		for i := 1; i < len(table); i++ {
			assert.Greater(t, table[i].PSIG, table[i-1].PSIG, "%s pressures must ascend", code)
			assert.Greater(t, table[i].TempF, table[i-1].TempF, "%s temperatures must ascend", code)
		}
	}
}
