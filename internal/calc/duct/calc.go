package duct

import (
	"fmt"
	"math"
)

// Default sizing targets used when the caller leaves a field zero.
const (
	DefaultTargetFPM = 800
	DefaultBranchFPM = 700
	DefaultMinDiaIn  = 6
	DefaultMaxDiaIn  = 24
	DefaultAspect    = 2
	DefaultMinSideIn = 6
)

// AreaRound returns the cross-sectional area in ft2 of a round duct with the
// given diameter in inches.
func AreaRound(diameterIn float64) float64 {
	r := diameterIn / 2.0 / 12.0
	return math.Pi * r * r
}

// AreaRect returns the cross-sectional area in ft2 of a rectangular duct.
func AreaRect(widthIn, heightIn float64) float64 {
	return (widthIn / 12.0) * (heightIn / 12.0)
}

// Velocity returns the air velocity in FPM for a given airflow and area,
// rounded to the nearest whole FPM.
func Velocity(cfm, areaFt2 float64) (int, error) {
	if !isFinite(cfm) || !isFinite(areaFt2) || areaFt2 <= 0 {
		return 0, fmt.Errorf("invalid input")
	}
	return int(math.Round(cfm / areaFt2)), nil
}

// SplitRatios divides totalCFM across the given ratios. Ratios are normalized
// by their sum, each share is rounded independently, and any rounding residual
// is assigned to the first part so the parts always sum to totalCFM exactly.
func SplitRatios(totalCFM int, ratios []float64) []int {
	if totalCFM <= 0 || len(ratios) == 0 {
		return nil
	}
	sum := 0.0
	for _, r := range ratios {
		if !isFinite(r) {
			return nil
		}
		sum += r
	}
	if sum == 0 {
		sum = 1
	}
	parts := make([]int, len(ratios))
	got := 0
	for i, r := range ratios {
		parts[i] = int(math.Round(float64(totalCFM) * r / sum))
		got += parts[i]
	}
	parts[0] += totalCFM - got
	return parts
}

// SplitEqual divides totalCFM into n near-equal integer parts. The remainder
// of the floor division goes one CFM at a time to the leading parts, so
// SplitEqual(100, 3) is [34 33 33].
func SplitEqual(totalCFM, n int) []int {
	if totalCFM <= 0 || n <= 0 {
		return nil
	}
	base := totalCFM / n
	rem := totalCFM % n
	parts := make([]int, n)
	for i := range parts {
		parts[i] = base
		if i < rem {
			parts[i]++
		}
	}
	return parts
}

type RoundInput struct {
	CFM       float64 `json:"cfm"`
	TargetFPM float64 `json:"target_fpm"`
	MinDiaIn  float64 `json:"min_dia_in"`
	MaxDiaIn  float64 `json:"max_dia_in"`
	WholeInch bool    `json:"whole_inch"` // default is even-inch rounding
}

type RoundSize struct {
	DiameterIn  float64 `json:"diameter_in"`
	VelocityFPM int     `json:"velocity_fpm"`
	AreaFt2     float64 `json:"area_ft2"`
}

// SizeRound picks a round duct diameter for the requested airflow. The
// diameter is back-solved from the target velocity, rounded (even inches by
// default, stock sizes come in even diameters), then clamped into the allowed
// range. Area and velocity are recomputed from the clamped diameter, so the
// reported velocity is the true resulting velocity, not the target.
func SizeRound(in RoundInput) (RoundSize, error) {
	if !isFinite(in.CFM) || in.CFM <= 0 {
		return RoundSize{}, fmt.Errorf("invalid input")
	}
	if in.TargetFPM <= 0 {
		in.TargetFPM = DefaultTargetFPM
	}
	if in.MinDiaIn <= 0 {
		in.MinDiaIn = DefaultMinDiaIn
	}
	if in.MaxDiaIn <= 0 {
		in.MaxDiaIn = DefaultMaxDiaIn
	}

	area := in.CFM / in.TargetFPM
	d := math.Sqrt(area * 144.0 * 4.0 / math.Pi)
	if in.WholeInch {
		d = math.Round(d)
	} else {
		d = 2.0 * math.Round(d/2.0)
	}
	if d < in.MinDiaIn {
		d = in.MinDiaIn
	}
	if d > in.MaxDiaIn {
		d = in.MaxDiaIn
	}

	actualArea := AreaRound(d)
	v, err := Velocity(in.CFM, actualArea)
	if err != nil {
		return RoundSize{}, err
	}
	return RoundSize{DiameterIn: d, VelocityFPM: v, AreaFt2: actualArea}, nil
}

type RectInput struct {
	CFM       float64 `json:"cfm"`
	TargetFPM float64 `json:"target_fpm"`
	Aspect    float64 `json:"aspect"`
	MinWIn    float64 `json:"min_w_in"`
	MinHIn    float64 `json:"min_h_in"`
}

type RectSize struct {
	WidthIn     float64 `json:"width_in"`
	HeightIn    float64 `json:"height_in"`
	VelocityFPM int     `json:"velocity_fpm"`
	AreaFt2     float64 `json:"area_ft2"`
}

// SizeRect sizes a rectangular duct at the given aspect ratio. Width and
// height are clamped to their minimums independently, which can change the
// realized aspect ratio; area and velocity are recomputed afterwards.
func SizeRect(in RectInput) (RectSize, error) {
	if !isFinite(in.CFM) || in.CFM <= 0 {
		return RectSize{}, fmt.Errorf("invalid input")
	}
	if in.TargetFPM <= 0 {
		in.TargetFPM = DefaultTargetFPM
	}
	if in.Aspect <= 0 {
		in.Aspect = DefaultAspect
	}
	if in.MinWIn <= 0 {
		in.MinWIn = DefaultMinSideIn
	}
	if in.MinHIn <= 0 {
		in.MinHIn = DefaultMinSideIn
	}

	area := in.CFM / in.TargetFPM
	h := math.Round(math.Sqrt(area * 144.0 / in.Aspect))
	w := math.Round(in.Aspect * math.Sqrt(area*144.0/in.Aspect))
	if w < in.MinWIn {
		w = in.MinWIn
	}
	if h < in.MinHIn {
		h = in.MinHIn
	}

	actualArea := AreaRect(w, h)
	v, err := Velocity(in.CFM, actualArea)
	if err != nil {
		return RectSize{}, err
	}
	return RectSize{WidthIn: w, HeightIn: h, VelocityFPM: v, AreaFt2: actualArea}, nil
}

// TrunkSuggestion formats a quick trunk size for the given airflow
// (8-24 in round at 800 FPM), or "n/a" when it cannot be sized.
func TrunkSuggestion(cfm float64) string {
	return sizeSuggestion(cfm, DefaultTargetFPM, 8, 24)
}

// BranchSuggestion formats a quick branch size for the given airflow
// (6-16 in round at 700 FPM), or "n/a" when it cannot be sized.
func BranchSuggestion(cfm float64) string {
	return sizeSuggestion(cfm, DefaultBranchFPM, 6, 16)
}

func sizeSuggestion(cfm, targetFPM, minDia, maxDia float64) string {
	res, err := SizeRound(RoundInput{CFM: cfm, TargetFPM: targetFPM, MinDiaIn: minDia, MaxDiaIn: maxDia})
	if err != nil {
		return "n/a"
	}
	return fmt.Sprintf("%.0f\" round @ ~%d FPM", res.DiameterIn, res.VelocityFPM)
}

// FrictionRateQuick returns the available friction rate in in.w.c. per 100 ft
// after subtracting component pressure drops from the total external static.
// A negative result means the drops already exceed the available static and
// the design is infeasible as measured; it is reported, not clamped.
func FrictionRateQuick(totalESP, equivalentLengthFt, componentDrops float64) (float64, error) {
	if !isFinite(totalESP) || !isFinite(equivalentLengthFt) || !isFinite(componentDrops) {
		return 0, fmt.Errorf("invalid input")
	}
	if equivalentLengthFt <= 0 {
		return 0, fmt.Errorf("invalid equivalent length")
	}
	fr := (totalESP - componentDrops) / equivalentLengthFt * 100.0
	return math.Round(fr*1000.0) / 1000.0, nil
}

// Segment is one run of duct with an optional fitting at its end.
type Segment struct {
	LengthFt float64 `json:"length_ft"`
	Fitting  string  `json:"fitting,omitempty"`
}

// Feet-equivalent penalties per fitting type. Field short-table values, not
// Manual D group letters.
var fittingEQL = map[string]float64{
	"elbow90": 15,
	"elbow45": 8,
	"wye":     10,
	"tee":     25,
	"takeoff": 30,
	"boot":    10,
	"flex":    2,
}

// EquivalentLength totals the straight-duct-equivalent length of the given
// segments. Unknown or absent fitting tags contribute no penalty. The total is
// floored at zero and rounded to the nearest foot.
func EquivalentLength(segments []Segment) int {
	total := 0.0
	for _, s := range segments {
		if !isFinite(s.LengthFt) {
			continue
		}
		total += s.LengthFt + fittingEQL[s.Fitting]
	}
	if total < 0 {
		total = 0
	}
	return int(math.Round(total))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
