package refrigerant

import (
	"fmt"
	"math"
	"strings"
)

// SaturationTemp converts a gauge pressure to the refrigerant's saturation
// temperature in degrees F, linearly interpolated between table points and
// clamped to the table endpoints outside the charted range (no extrapolation).
// Result carries one decimal.
func SaturationTemp(psig float64, refrigerant string) (float64, error) {
	if !isFinite(psig) {
		return 0, fmt.Errorf("invalid pressure")
	}
	table := tableFor(refrigerant)
	if psig <= table[0].PSIG {
		return table[0].TempF, nil
	}
	last := table[len(table)-1]
	if psig >= last.PSIG {
		return last.TempF, nil
	}
	for i := 1; i < len(table); i++ {
		p1, p2 := table[i-1], table[i]
		if psig <= p2.PSIG {
			f := p1.TempF + (psig-p1.PSIG)/(p2.PSIG-p1.PSIG)*(p2.TempF-p1.TempF)
			return round1(f), nil
		}
	}
	return last.TempF, nil
}

// DeltaT is the evaporator temperature split: return air minus supply air.
func DeltaT(returnF, supplyF float64) (float64, error) {
	if !isFinite(returnF) || !isFinite(supplyF) {
		return 0, fmt.Errorf("invalid input")
	}
	return round1(returnF - supplyF), nil
}

// Superheat is suction line temperature above the suction saturation
// temperature implied by the suction pressure.
func Superheat(suctionPsig, suctionLineF float64, refrigerant string) (float64, error) {
	if !isFinite(suctionLineF) {
		return 0, fmt.Errorf("invalid input")
	}
	sat, err := SaturationTemp(suctionPsig, refrigerant)
	if err != nil {
		return 0, err
	}
	return round1(suctionLineF - sat), nil
}

// Subcool is the liquid saturation temperature above the measured liquid line
// temperature.
func Subcool(liquidPsig, liquidLineF float64, refrigerant string) (float64, error) {
	if !isFinite(liquidLineF) {
		return 0, fmt.Errorf("invalid input")
	}
	sat, err := SaturationTemp(liquidPsig, refrigerant)
	if err != nil {
		return 0, err
	}
	return round1(sat - liquidLineF), nil
}

type Airflow struct {
	NominalCFM int `json:"nominal_cfm"`
	LowCFM     int `json:"low_cfm"`
	HighCFM    int `json:"high_cfm"`
}

// AirflowByTonnage returns the nominal 400 CFM/ton airflow with the usual
// field band (87.5% to 105%).
func AirflowByTonnage(tons float64) (Airflow, error) {
	if !isFinite(tons) || tons <= 0 {
		return Airflow{}, fmt.Errorf("invalid tonnage")
	}
	nominal := tons * 400.0
	return Airflow{
		NominalCFM: int(math.Round(nominal)),
		LowCFM:     int(math.Round(nominal * 0.875)),
		HighCFM:    int(math.Round(nominal * 1.05)),
	}, nil
}

// FrictionRate is the duct friction rate with supply and return side drops
// accounted separately, in in.w.c. per 100 ft.
func FrictionRate(totalESP, supplyDrop, returnDrop, totalEQLFt float64) (float64, error) {
	if !isFinite(totalESP) || !isFinite(supplyDrop) || !isFinite(returnDrop) || !isFinite(totalEQLFt) {
		return 0, fmt.Errorf("invalid input")
	}
	if totalEQLFt <= 0 {
		return 0, fmt.Errorf("invalid equivalent length")
	}
	fr := (totalESP - supplyDrop - returnDrop) / totalEQLFt * 100.0
	return math.Round(fr*1000.0) / 1000.0, nil
}

type Targets struct {
	DeltaTLowF  float64 `json:"delta_t_low_f"`
	DeltaTHighF float64 `json:"delta_t_high_f"`
	SubcoolF    float64 `json:"subcool_f"`
	SuperheatF  float64 `json:"superheat_f"`
}

// TargetsFor returns the static field targets for a refrigerant and metering
// device. These are rules of thumb, not derived values.
func TargetsFor(refrigerant, meteringDevice string) Targets {
	t := Targets{DeltaTLowF: 16, DeltaTHighF: 22, SubcoolF: 8, SuperheatF: 12}
	if normalizeCode(refrigerant) == "R410A" {
		t.SubcoolF = 10
	}
	if IsTXV(meteringDevice) {
		t.SuperheatF = 10
	}
	return t
}

// IsTXV reports whether the metering device string names a thermostatic
// expansion valve; anything else is treated as fixed orifice.
func IsTXV(meteringDevice string) bool {
	return strings.EqualFold(strings.TrimSpace(meteringDevice), "txv")
}

func round1(f float64) float64 {
	return math.Round(f*10.0) / 10.0
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
