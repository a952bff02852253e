package duct

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Round(w http.ResponseWriter, r *http.Request) {
	var input RoundInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := SizeRound(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) Rect(w http.ResponseWriter, r *http.Request) {
	var input RectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := SizeRect(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	writeJSON(w, res)
}

type frictionInput struct {
	TotalESP       float64 `json:"total_esp"`
	EQLFt          float64 `json:"eql_ft"`
	ComponentDrops float64 `json:"component_drops"`
}

type frictionResult struct {
	RatePer100Ft float64 `json:"rate_per_100ft"`
	Feasible     bool    `json:"feasible"`
}

func (h *Handler) Friction(w http.ResponseWriter, r *http.Request) {
	var input frictionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	rate, err := FrictionRateQuick(input.TotalESP, input.EQLFt, input.ComponentDrops)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	writeJSON(w, frictionResult{RatePer100Ft: rate, Feasible: rate > 0})
}

type eqlInput struct {
	Segments []Segment `json:"segments"`
}

type eqlResult struct {
	TotalFt int `json:"total_ft"`
}

func (h *Handler) EQL(w http.ResponseWriter, r *http.Request) {
	var input eqlInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	writeJSON(w, eqlResult{TotalFt: EquivalentLength(input.Segments)})
}

type returnsInput struct {
	TotalCFM   float64 `json:"total_cfm"`
	MaxFaceFPM float64 `json:"max_face_fpm"`
	Supply     bool    `json:"supply"`
}

func (h *Handler) Returns(w http.ResponseWriter, r *http.Request) {
	var input returnsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	size := ReturnSizing
	if input.Supply {
		size = SupplyRegisterSizing
	}
	res, err := size(input.TotalCFM, input.MaxFaceFPM)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	writeJSON(w, res)
}

type planResult struct {
	Plan Plan   `json:"plan"`
	Text string `json:"text"`
}

func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	var input PlanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	plan, err := GeneratePlan(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	writeJSON(w, planResult{Plan: plan, Text: FormatPlanText(plan)})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
