// Package fieldengine re-exports the duct sizing and refrigerant diagnostics
// libraries under one namespace for callers that want a single import. It has
// no logic of its own.
package fieldengine

import (
	"Airside/internal/calc/duct"
	"Airside/internal/calc/refrigerant"
)

type (
	RoundInput   = duct.RoundInput
	RoundSize    = duct.RoundSize
	RectInput    = duct.RectInput
	RectSize     = duct.RectSize
	Segment      = duct.Segment
	GrilleResult = duct.GrilleResult
	PlanInput    = duct.PlanInput
	Plan         = duct.Plan

	PTPoint       = refrigerant.PTPoint
	Airflow       = refrigerant.Airflow
	Targets       = refrigerant.Targets
	Advisory      = refrigerant.Advisory
	Thresholds    = refrigerant.Thresholds
	HealthInput   = refrigerant.HealthInput
	ChargeInput   = refrigerant.ChargeInput
	DiagnoseInput = refrigerant.DiagnoseInput
	Diagnosis     = refrigerant.Diagnosis
)

var (
	AreaRound            = duct.AreaRound
	AreaRect             = duct.AreaRect
	Velocity             = duct.Velocity
	SplitRatios          = duct.SplitRatios
	SplitEqual           = duct.SplitEqual
	SizeRound            = duct.SizeRound
	SizeRect             = duct.SizeRect
	TrunkSuggestion      = duct.TrunkSuggestion
	BranchSuggestion     = duct.BranchSuggestion
	FrictionRateQuick    = duct.FrictionRateQuick
	EquivalentLength     = duct.EquivalentLength
	ReturnSizing         = duct.ReturnSizing
	SupplyRegisterSizing = duct.SupplyRegisterSizing
	GeneratePlan         = duct.GeneratePlan
	FormatPlanText       = duct.FormatPlanText

	SaturationTemp        = refrigerant.SaturationTemp
	DeltaT                = refrigerant.DeltaT
	Superheat             = refrigerant.Superheat
	Subcool               = refrigerant.Subcool
	AirflowByTonnage      = refrigerant.AirflowByTonnage
	FrictionRate          = refrigerant.FrictionRate
	TargetsFor            = refrigerant.TargetsFor
	EvaluateCoolingHealth = refrigerant.EvaluateCoolingHealth
	SuggestChargeAdjust   = refrigerant.SuggestChargeAdjust
	Diagnose              = refrigerant.Diagnose
)
