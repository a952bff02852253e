package refrigerant

import "fmt"

// DiagnoseInput carries one set of gauge and thermometer readings. All
// readings are optional; metrics whose inputs are missing are skipped.
type DiagnoseInput struct {
	Refrigerant    string `json:"refrigerant"`
	MeteringDevice string `json:"metering_device"`

	ReturnF *float64 `json:"return_f,omitempty"`
	SupplyF *float64 `json:"supply_f,omitempty"`

	SuctionPsig  *float64 `json:"suction_psig,omitempty"`
	SuctionLineF *float64 `json:"suction_line_f,omitempty"`

	LiquidPsig  *float64 `json:"liquid_psig,omitempty"`
	LiquidLineF *float64 `json:"liquid_line_f,omitempty"`
}

type Diagnosis struct {
	Refrigerant    string     `json:"refrigerant"`
	MeteringDevice string     `json:"metering_device"`
	DeltaT         *float64   `json:"delta_t,omitempty"`
	Superheat      *float64   `json:"superheat,omitempty"`
	Subcool        *float64   `json:"subcool,omitempty"`
	Targets        Targets    `json:"targets"`
	Advisories     []Advisory `json:"advisories"`
	ChargeAdvice   string     `json:"charge_advice"`
}

// Diagnose derives delta-T, superheat and subcool from whichever readings are
// present, evaluates them against the thresholds, and attaches charge
// guidance. At least one metric must be derivable.
func (t Thresholds) Diagnose(in DiagnoseInput) (Diagnosis, error) {
	d := Diagnosis{
		Refrigerant:    normalizeCode(in.Refrigerant),
		MeteringDevice: device(in.MeteringDevice),
	}

	if rf, okR := reading(in.ReturnF); okR {
		if sf, okS := reading(in.SupplyF); okS {
			if dt, err := DeltaT(rf, sf); err == nil {
				d.DeltaT = &dt
			}
		}
	}
	if p, okP := reading(in.SuctionPsig); okP {
		if lt, okT := reading(in.SuctionLineF); okT {
			if sh, err := Superheat(p, lt, in.Refrigerant); err == nil {
				d.Superheat = &sh
			}
		}
	}
	if p, okP := reading(in.LiquidPsig); okP {
		if lt, okT := reading(in.LiquidLineF); okT {
			if sc, err := Subcool(p, lt, in.Refrigerant); err == nil {
				d.Subcool = &sc
			}
		}
	}

	if d.DeltaT == nil && d.Superheat == nil && d.Subcool == nil {
		return Diagnosis{}, fmt.Errorf("no usable readings")
	}

	d.Targets = TargetsFor(in.Refrigerant, in.MeteringDevice)
	d.Advisories = t.Evaluate(HealthInput{
		DeltaT:         d.DeltaT,
		Superheat:      d.Superheat,
		Subcool:        d.Subcool,
		MeteringDevice: in.MeteringDevice,
	})
	d.ChargeAdvice = SuggestChargeAdjust(ChargeInput{
		Superheat:       d.Superheat,
		Subcool:         d.Subcool,
		MeteringDevice:  in.MeteringDevice,
		TargetSubcool:   d.Targets.SubcoolF,
		TargetSuperheat: d.Targets.SuperheatF,
	})
	return d, nil
}

// Diagnose runs a diagnosis with the default thresholds.
func Diagnose(in DiagnoseInput) (Diagnosis, error) {
	return DefaultThresholds.Diagnose(in)
}

func device(meteringDevice string) string {
	if IsTXV(meteringDevice) {
		return "txv"
	}
	return "fixed"
}
