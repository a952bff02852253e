package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"Airside/internal/catalog"
	"Airside/internal/repo"
)

// Handler imports a materials catalog from an xlsx price book.
type Handler struct {
	Repo repo.Repository
}

type CatalogImportResult struct {
	Count int            `json:"count"`
	Items []catalog.Item `json:"items"`
}

func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var items []catalog.Item
	for i := 1; i < len(rows); i++ {
		item, err := parseCatalogRow(rows[i])
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		http.Error(w, "No usable rows", http.StatusBadRequest)
		return
	}

	if err := h.Repo.ReplaceCatalog(r.Context(), catalog.ToRepo(items)); err != nil {
		http.Error(w, "Catalog store error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CatalogImportResult{Count: len(items), Items: items})
}

func parseCatalogRow(row []string) (catalog.Item, error) {
	// expected: category, name, unit, unit_price
	if len(row) < 2 || row[0] == "" || row[1] == "" {
		return catalog.Item{}, fmt.Errorf("bad row")
	}
	item := catalog.Item{
		Key:  catalog.ItemKey{Category: row[0], Name: row[1]},
		Unit: "ea",
	}
	if len(row) > 2 && row[2] != "" {
		item.Unit = row[2]
	}
	if len(row) > 3 && row[3] != "" {
		price, err := toFloat(row[3])
		if err != nil {
			return catalog.Item{}, err
		}
		item.UnitPrice = price
	}
	return item, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
