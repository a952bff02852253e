package catalog

import (
	"encoding/json"
	"net/http"

	"Airside/internal/repo"
)

type Handler struct {
	Repo repo.Repository
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Repo.ListCatalog(r.Context())
	if err != nil {
		http.Error(w, "Catalog unavailable", http.StatusInternalServerError)
		return
	}
	items := FromRepo(rows)
	SortItems(items, r.URL.Query().Get("sort"))
	writeJSON(w, items)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Repo.ListCatalog(r.Context())
	if err != nil {
		http.Error(w, "Catalog unavailable", http.StatusInternalServerError)
		return
	}
	items := Search(FromRepo(rows), r.URL.Query().Get("q"))
	SortItems(items, r.URL.Query().Get("sort"))
	writeJSON(w, items)
}

type priceRequest struct {
	Selection Selection `json:"selection"`
}

type priceResponse struct {
	Selection Selection `json:"selection"`
	Total     float64   `json:"total"`
}

// Price totals a pick list server-side so the UI never prices from stale data.
func (h *Handler) Price(w http.ResponseWriter, r *http.Request) {
	var req priceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	rows, err := h.Repo.ListCatalog(r.Context())
	if err != nil {
		http.Error(w, "Catalog unavailable", http.StatusInternalServerError)
		return
	}
	items := FromRepo(rows)
	writeJSON(w, priceResponse{Selection: req.Selection, Total: req.Selection.Total(items)})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
