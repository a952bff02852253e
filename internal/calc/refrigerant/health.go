package refrigerant

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Level string

const (
	LevelOK   Level = "ok"
	LevelWarn Level = "warn"
)

type Advisory struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Thresholds holds the field-guidance bands used by the health evaluation.
// They have no cited derivation; they are kept here as tunable configuration
// rather than literals inside the evaluation.
type Thresholds struct {
	DeltaTLow  float64 `yaml:"delta_t_low" json:"delta_t_low"`
	DeltaTHigh float64 `yaml:"delta_t_high" json:"delta_t_high"`

	TXVSubcoolLow    float64 `yaml:"txv_subcool_low" json:"txv_subcool_low"`
	TXVSubcoolHigh   float64 `yaml:"txv_subcool_high" json:"txv_subcool_high"`
	TXVSuperheatLow  float64 `yaml:"txv_superheat_low" json:"txv_superheat_low"`
	TXVSuperheatHigh float64 `yaml:"txv_superheat_high" json:"txv_superheat_high"`

	FixedSuperheatLow  float64 `yaml:"fixed_superheat_low" json:"fixed_superheat_low"`
	FixedSuperheatHigh float64 `yaml:"fixed_superheat_high" json:"fixed_superheat_high"`
	FixedSubcoolLow    float64 `yaml:"fixed_subcool_low" json:"fixed_subcool_low"`
	FixedSubcoolHigh   float64 `yaml:"fixed_subcool_high" json:"fixed_subcool_high"`
}

var DefaultThresholds = Thresholds{
	DeltaTLow:  14,
	DeltaTHigh: 24,

	TXVSubcoolLow:    6,
	TXVSubcoolHigh:   14,
	TXVSuperheatLow:  5,
	TXVSuperheatHigh: 20,

	FixedSuperheatLow:  8,
	FixedSuperheatHigh: 25,
	FixedSubcoolLow:    5,
	FixedSubcoolHigh:   15,
}

// LoadThresholds reads a YAML override file on top of the defaults.
func LoadThresholds(path string) (Thresholds, error) {
	t := DefaultThresholds
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read thresholds: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse thresholds: %w", err)
	}
	return t, nil
}

type HealthInput struct {
	DeltaT         *float64 `json:"delta_t,omitempty"`
	Superheat      *float64 `json:"superheat,omitempty"`
	Subcool        *float64 `json:"subcool,omitempty"`
	MeteringDevice string   `json:"metering_device"`
}

// EvaluateCoolingHealth runs the default thresholds over the readings.
func EvaluateCoolingHealth(in HealthInput) []Advisory {
	return DefaultThresholds.Evaluate(in)
}

// Evaluate produces one ok/warn advisory per metric present. Missing readings
// are skipped, never reported as errors. TXV systems are judged subcool first,
// fixed-orifice systems superheat first, and the two device types use
// different bands; that ordering and asymmetry is how techs read the numbers
// in the field and must not be merged.
func (t Thresholds) Evaluate(in HealthInput) []Advisory {
	var out []Advisory

	if v, present := reading(in.DeltaT); present {
		switch {
		case v < t.DeltaTLow:
			out = append(out, warn("Delta-T low: check airflow, charge, dirty coil, or duct leakage."))
		case v > t.DeltaTHigh:
			out = append(out, warn("Delta-T high: airflow likely low, check filter and blower; freeze risk."))
		default:
			out = append(out, ok("Delta-T in range."))
		}
	}

	if IsTXV(in.MeteringDevice) {
		if v, present := reading(in.Subcool); present {
			switch {
			case v < t.TXVSubcoolLow:
				out = append(out, warn("Subcool low: possible undercharge."))
			case v > t.TXVSubcoolHigh:
				out = append(out, warn("Subcool high: possible overcharge."))
			default:
				out = append(out, ok("Subcool in range for TXV."))
			}
		}
		if v, present := reading(in.Superheat); present {
			switch {
			case v < t.TXVSuperheatLow:
				out = append(out, warn("Superheat low: flooding risk, verify TXV operation."))
			case v > t.TXVSuperheatHigh:
				out = append(out, warn("Superheat high: low charge or poor airflow."))
			default:
				out = append(out, ok("Superheat in range."))
			}
		}
		return out
	}

	if v, present := reading(in.Superheat); present {
		switch {
		case v < t.FixedSuperheatLow:
			out = append(out, warn("Superheat low: possible overcharge or low airflow."))
		case v > t.FixedSuperheatHigh:
			out = append(out, warn("Superheat high: undercharge or restriction."))
		default:
			out = append(out, ok("Superheat in range for fixed orifice."))
		}
	}
	if v, present := reading(in.Subcool); present {
		switch {
		case v < t.FixedSubcoolLow:
			out = append(out, warn("Subcool low: possible undercharge."))
		case v > t.FixedSubcoolHigh:
			out = append(out, warn("Subcool high: possible overcharge."))
		default:
			out = append(out, ok("Subcool in range."))
		}
	}
	return out
}

type ChargeInput struct {
	Superheat       *float64 `json:"superheat,omitempty"`
	Subcool         *float64 `json:"subcool,omitempty"`
	MeteringDevice  string   `json:"metering_device"`
	TargetSubcool   float64  `json:"target_subcool"`
	TargetSuperheat float64  `json:"target_superheat"`
}

// Charge guidance bands around the target readings.
const (
	subcoolBand   = 2
	superheatBand = 3
)

// SuggestChargeAdjust returns a directional recommendation only; it never
// suggests a charge amount.
func SuggestChargeAdjust(in ChargeInput) string {
	if in.TargetSubcool <= 0 {
		in.TargetSubcool = 10
	}
	if in.TargetSuperheat <= 0 {
		in.TargetSuperheat = 12
	}

	if IsTXV(in.MeteringDevice) {
		sc, present := reading(in.Subcool)
		if !present {
			return "Subcool reading required for TXV charge guidance."
		}
		switch {
		case sc < in.TargetSubcool-subcoolBand:
			return "Add charge slowly and re-check subcool."
		case sc > in.TargetSubcool+subcoolBand:
			return "Recover charge slowly and re-check subcool."
		default:
			return "Charge looks correct; no adjustment needed."
		}
	}

	sh, present := reading(in.Superheat)
	if !present {
		return "Superheat reading required for fixed-orifice charge guidance."
	}
	switch {
	case sh > in.TargetSuperheat+superheatBand:
		return "Add charge slowly and re-check superheat."
	case sh < in.TargetSuperheat-superheatBand:
		return "Recover charge slowly and re-check superheat."
	default:
		return "Charge looks correct; no adjustment needed."
	}
}

func reading(p *float64) (float64, bool) {
	if p == nil || !isFinite(*p) {
		return 0, false
	}
	return *p, true
}

func ok(msg string) Advisory   { return Advisory{Level: LevelOK, Message: msg} }
func warn(msg string) Advisory { return Advisory{Level: LevelWarn, Message: msg} }
