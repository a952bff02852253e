package reports

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"Airside/internal/repo"
)

// Handler stores and lists service call reports. Reports arrive with
// already-validated values; the calculation engine is never invoked here.
type Handler struct {
	Repo repo.Repository
}

type createRequest struct {
	Technician  string          `json:"technician"`
	Site        string          `json:"site"`
	Refrigerant string          `json:"refrigerant"`
	Summary     string          `json:"summary"`
	Readings    json.RawMessage `json:"readings"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Technician == "" || req.Site == "" {
		http.Error(w, "Technician and site required", http.StatusBadRequest)
		return
	}
	readings := "{}"
	if len(req.Readings) > 0 {
		readings = string(req.Readings)
	}

	rep := repo.ServiceReport{
		ID:          uuid.NewString(),
		Technician:  req.Technician,
		Site:        req.Site,
		Refrigerant: req.Refrigerant,
		Summary:     req.Summary,
		Readings:    readings,
		CreatedUnix: time.Now().Unix(),
	}
	if err := h.Repo.InsertReport(r.Context(), rep); err != nil {
		http.Error(w, "Report store error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rep)
}

type listEntry struct {
	repo.ServiceReport
	Age string `json:"age"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Repo.ListReports(r.Context(), r.URL.Query().Get("technician"))
	if err != nil {
		http.Error(w, "Report store error", http.StatusInternalServerError)
		return
	}
	out := make([]listEntry, 0, len(reports))
	for _, rep := range reports {
		out = append(out, listEntry{
			ServiceReport: rep,
			Age:           humanize.Time(time.Unix(rep.CreatedUnix, 0)),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "Invalid report id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeleteReport(r.Context(), id); err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "Report not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Report store error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
