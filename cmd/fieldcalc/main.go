// fieldcalc is the offline companion to the Airside server: the same
// calculation engine behind plain terminal commands, for jobs with no network
// and no browser.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"Airside/internal/calc/duct"
	"Airside/internal/calc/refrigerant"
)

func main() {
	root := &cobra.Command{
		Use:   "fieldcalc",
		Short: "HVAC field calculations: duct sizing, sub-plenum plans, refrigerant diagnostics",
	}
	root.AddCommand(ductCmd(), rectCmd(), planCmd(), ptCmd(), diagCmd(), airflowCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func ductCmd() *cobra.Command {
	var in duct.RoundInput
	cmd := &cobra.Command{
		Use:   "duct",
		Short: "Size a round duct for an airflow",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := duct.SizeRound(in)
			if err != nil {
				return err
			}
			fmt.Printf("%.0f\" round, %.2f ft2, ~%d FPM\n", res.DiameterIn, res.AreaFt2, res.VelocityFPM)
			return nil
		},
	}
	cmd.Flags().Float64Var(&in.CFM, "cfm", 0, "airflow in CFM (required)")
	cmd.Flags().Float64Var(&in.TargetFPM, "fpm", 0, "target velocity, default 800")
	cmd.Flags().Float64Var(&in.MinDiaIn, "min", 0, "minimum diameter in inches, default 6")
	cmd.Flags().Float64Var(&in.MaxDiaIn, "max", 0, "maximum diameter in inches, default 24")
	cmd.Flags().BoolVar(&in.WholeInch, "whole-inch", false, "round to whole inches instead of even")
	cmd.MarkFlagRequired("cfm")
	return cmd
}

func rectCmd() *cobra.Command {
	var in duct.RectInput
	cmd := &cobra.Command{
		Use:   "rect",
		Short: "Size a rectangular duct for an airflow",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := duct.SizeRect(in)
			if err != nil {
				return err
			}
			fmt.Printf("%.0fx%.0f, %.2f ft2, ~%d FPM\n", res.WidthIn, res.HeightIn, res.AreaFt2, res.VelocityFPM)
			return nil
		},
	}
	cmd.Flags().Float64Var(&in.CFM, "cfm", 0, "airflow in CFM (required)")
	cmd.Flags().Float64Var(&in.TargetFPM, "fpm", 0, "target velocity, default 800")
	cmd.Flags().Float64Var(&in.Aspect, "aspect", 0, "width/height ratio, default 2")
	cmd.MarkFlagRequired("cfm")
	return cmd
}

func planCmd() *cobra.Command {
	var in duct.PlanInput
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a sub-plenum plan for a building total",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := duct.GeneratePlan(in)
			if err != nil {
				return err
			}
			fmt.Print(duct.FormatPlanText(plan))
			return nil
		},
	}
	cmd.Flags().IntVar(&in.TotalCFM, "cfm", 0, "building total CFM (required)")
	cmd.Flags().Float64SliceVar(&in.Split, "split", nil, "sub-plenum ratios, default 0.4,0.35,0.25")
	cmd.Flags().Float64Var(&in.TrunkFPM, "trunk-fpm", 0, "trunk velocity target, default 800")
	cmd.Flags().Float64Var(&in.BranchFPM, "branch-fpm", 0, "branch velocity target, default 700")
	cmd.MarkFlagRequired("cfm")
	return cmd
}

func ptCmd() *cobra.Command {
	var psig float64
	var ref string
	cmd := &cobra.Command{
		Use:   "pt",
		Short: "Saturation temperature for a gauge pressure",
		RunE: func(cmd *cobra.Command, args []string) error {
			temp, err := refrigerant.SaturationTemp(psig, ref)
			if err != nil {
				return err
			}
			fmt.Printf("%.0f PSIG %s -> %.1f F saturation\n", psig, ref, temp)
			return nil
		},
	}
	cmd.Flags().Float64Var(&psig, "psig", 0, "gauge pressure (required)")
	cmd.Flags().StringVar(&ref, "refrigerant", "R410A", "R410A, R22, R454B or R32")
	cmd.MarkFlagRequired("psig")
	return cmd
}

func diagCmd() *cobra.Command {
	var (
		in                       refrigerant.DiagnoseInput
		returnF, supplyF         float64
		suctionPsig, suctionLine float64
		liquidPsig, liquidLine   float64
	)
	cmd := &cobra.Command{
		Use:   "diag",
		Short: "Evaluate cooling health from gauge and thermometer readings",
		RunE: func(cmd *cobra.Command, args []string) error {
			set := func(name string, v *float64) *float64 {
				if cmd.Flags().Changed(name) {
					return v
				}
				return nil
			}
			in.ReturnF = set("return", &returnF)
			in.SupplyF = set("supply", &supplyF)
			in.SuctionPsig = set("suction-psig", &suctionPsig)
			in.SuctionLineF = set("suction-line", &suctionLine)
			in.LiquidPsig = set("liquid-psig", &liquidPsig)
			in.LiquidLineF = set("liquid-line", &liquidLine)

			d, err := refrigerant.Diagnose(in)
			if err != nil {
				return err
			}
			if d.DeltaT != nil {
				fmt.Printf("Delta-T:   %.1f F\n", *d.DeltaT)
			}
			if d.Superheat != nil {
				fmt.Printf("Superheat: %.1f F\n", *d.Superheat)
			}
			if d.Subcool != nil {
				fmt.Printf("Subcool:   %.1f F\n", *d.Subcool)
			}
			for _, a := range d.Advisories {
				fmt.Printf("[%s] %s\n", a.Level, a.Message)
			}
			fmt.Println(d.ChargeAdvice)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Refrigerant, "refrigerant", "R410A", "R410A, R22, R454B or R32")
	cmd.Flags().StringVar(&in.MeteringDevice, "metering", "txv", "txv or fixed")
	cmd.Flags().Float64Var(&returnF, "return", 0, "return air temperature F")
	cmd.Flags().Float64Var(&supplyF, "supply", 0, "supply air temperature F")
	cmd.Flags().Float64Var(&suctionPsig, "suction-psig", 0, "suction pressure PSIG")
	cmd.Flags().Float64Var(&suctionLine, "suction-line", 0, "suction line temperature F")
	cmd.Flags().Float64Var(&liquidPsig, "liquid-psig", 0, "liquid pressure PSIG")
	cmd.Flags().Float64Var(&liquidLine, "liquid-line", 0, "liquid line temperature F")
	return cmd
}

func airflowCmd() *cobra.Command {
	var tons float64
	cmd := &cobra.Command{
		Use:   "airflow",
		Short: "Target airflow band for a system tonnage",
		RunE: func(cmd *cobra.Command, args []string) error {
			af, err := refrigerant.AirflowByTonnage(tons)
			if err != nil {
				return err
			}
			fmt.Printf("%d CFM nominal (%d-%d acceptable)\n", af.NominalCFM, af.LowCFM, af.HighCFM)
			return nil
		},
	}
	cmd.Flags().Float64Var(&tons, "tons", 0, "system tonnage (required)")
	cmd.MarkFlagRequired("tons")
	return cmd
}
