package duct

import (
	"fmt"
	"strings"
)

// Plan generation constants.
const (
	planBranchCount   = 5
	planReturnFaceFPM = 450
)

var defaultPlanSplit = []float64{0.40, 0.35, 0.25}

type PlanInput struct {
	TotalCFM  int       `json:"total_cfm"`
	Split     []float64 `json:"split,omitempty"`
	TrunkFPM  float64   `json:"trunk_fpm"`
	BranchFPM float64   `json:"branch_fpm"`
}

type PlanBranch struct {
	CFM  int    `json:"cfm"`
	Size string `json:"size"`
}

type PlanSubPlenum struct {
	CFM      int          `json:"cfm"`
	Trunk    string       `json:"trunk"`
	Branches []PlanBranch `json:"branches"`
}

type Plan struct {
	TotalCFM   int             `json:"total_cfm"`
	TrunkFPM   float64         `json:"trunk_fpm"`
	BranchFPM  float64         `json:"branch_fpm"`
	SubPlenums []PlanSubPlenum `json:"sub_plenums"`
	Returns    GrilleResult    `json:"returns"`
}

// GeneratePlan lays out a sub-plenum distribution for the whole building:
// the total airflow is split across sub-plenums (40/35/25 by default), each
// sub-plenum gets a trunk sized at TrunkFPM and five branches sized at
// BranchFPM, and return grilles are ranked once for the building total at a
// 450 FPM face target. Sub-plenum CFMs always sum to the plan total.
func GeneratePlan(in PlanInput) (Plan, error) {
	if in.TotalCFM <= 0 {
		return Plan{}, fmt.Errorf("invalid total cfm")
	}
	if len(in.Split) == 0 {
		in.Split = defaultPlanSplit
	}
	if in.TrunkFPM <= 0 {
		in.TrunkFPM = DefaultTargetFPM
	}
	if in.BranchFPM <= 0 {
		in.BranchFPM = DefaultBranchFPM
	}

	shares := SplitRatios(in.TotalCFM, in.Split)
	if len(shares) == 0 {
		return Plan{}, fmt.Errorf("invalid split")
	}

	subs := make([]PlanSubPlenum, 0, len(shares))
	for _, cfm := range shares {
		sub := PlanSubPlenum{
			CFM:   cfm,
			Trunk: sizeSuggestion(float64(cfm), in.TrunkFPM, 8, 24),
		}
		for _, bcfm := range SplitEqual(cfm, planBranchCount) {
			sub.Branches = append(sub.Branches, PlanBranch{
				CFM:  bcfm,
				Size: sizeSuggestion(float64(bcfm), in.BranchFPM, 6, 16),
			})
		}
		subs = append(subs, sub)
	}

	returns, err := ReturnSizing(float64(in.TotalCFM), planReturnFaceFPM)
	if err != nil {
		return Plan{}, err
	}

	return Plan{
		TotalCFM:   in.TotalCFM,
		TrunkFPM:   in.TrunkFPM,
		BranchFPM:  in.BranchFPM,
		SubPlenums: subs,
		Returns:    returns,
	}, nil
}

// FormatPlanText renders a plan as the fixed multi-line block used by the
// print and PDF exports. The layout is a compatibility contract; change it
// only together with the golden file.
func FormatPlanText(p Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sub-Plenum Plan - %d CFM total\n", p.TotalCFM)
	b.WriteString("\n")
	b.WriteString("Sub-Plenums:\n")
	for i, sub := range p.SubPlenums {
		fmt.Fprintf(&b, "  SP-%d: %d CFM, trunk %s\n", i+1, sub.CFM, sub.Trunk)
		for j, br := range sub.Branches {
			fmt.Fprintf(&b, "    Branch %d: %d CFM - %s\n", j+1, br.CFM, br.Size)
		}
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Returns (%.0f FPM face target, %.2f ft2 needed):\n",
		p.Returns.TargetFaceFPM, p.Returns.TargetAreaFt2)
	top := p.Returns.Options
	if len(top) > 3 {
		top = top[:3]
	}
	for _, opt := range top {
		fmt.Fprintf(&b, "  %.0fx%.0f grille @ ~%d FPM\n", opt.WidthIn, opt.HeightIn, opt.VelocityFPM)
	}
	b.WriteString("\n")
	b.WriteString("Notes:\n")
	b.WriteString("  - Keep trunk velocity at or below 900 FPM.\n")
	b.WriteString("  - Keep branch velocity at or below 750 FPM.\n")
	b.WriteString("  - Provide a return path for every closed room.\n")
	return b.String()
}
