package refrigerant

import (
	"encoding/json"
	"net/http"
)

// Handler serves the diagnostics tools. Thresholds are fixed at construction;
// pass LoadThresholds output to make the bands site-tunable.
type Handler struct {
	Thresholds Thresholds
}

func NewHandler() *Handler {
	return &Handler{Thresholds: DefaultThresholds}
}

type ptInput struct {
	PSIG        float64 `json:"psig"`
	Refrigerant string  `json:"refrigerant"`
}

type ptResult struct {
	Refrigerant string  `json:"refrigerant"`
	PSIG        float64 `json:"psig"`
	SatTempF    float64 `json:"sat_temp_f"`
}

func (h *Handler) PTChart(w http.ResponseWriter, r *http.Request) {
	var input ptInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	temp, err := SaturationTemp(input.PSIG, input.Refrigerant)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	writeJSON(w, ptResult{
		Refrigerant: normalizeCode(input.Refrigerant),
		PSIG:        input.PSIG,
		SatTempF:    temp,
	})
}

func (h *Handler) Diagnose(w http.ResponseWriter, r *http.Request) {
	var input DiagnoseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := h.Thresholds.Diagnose(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	writeJSON(w, res)
}

type chargeResult struct {
	Advice string `json:"advice"`
}

func (h *Handler) Charge(w http.ResponseWriter, r *http.Request) {
	var input ChargeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	writeJSON(w, chargeResult{Advice: SuggestChargeAdjust(input)})
}

type airflowInput struct {
	Tons float64 `json:"tons"`
}

func (h *Handler) Airflow(w http.ResponseWriter, r *http.Request) {
	var input airflowInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := AirflowByTonnage(input.Tons)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	writeJSON(w, res)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
