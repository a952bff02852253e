package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"Airside/internal/calc/refrigerant"
)

type Input struct {
	JobName    string `json:"job_name"`
	Technician string `json:"technician"`
	Site       string `json:"site"`
	Title      string `json:"title"`
	Notes      string `json:"notes"`

	// Pre-formatted engine output, included verbatim.
	PlanText   string                 `json:"plan_text,omitempty"`
	Advisories []refrigerant.Advisory `json:"advisories,omitempty"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Field Service Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Job: %s", input.JobName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Technician: %s", input.Technician))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Site: %s", input.Site))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if input.PlanText != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Duct Plan")
		pdf.Ln(9)
		// Monospace keeps the plan's column alignment.
		pdf.SetFont("Courier", "", 9)
		pdf.MultiCell(0, 4.5, input.PlanText, "", "L", false)
		pdf.Ln(4)
	}

	if len(input.Advisories) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Diagnostics")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		for _, a := range input.Advisories {
			pdf.MultiCell(0, 6, fmt.Sprintf("[%s] %s", strings.ToUpper(string(a.Level)), a.Message), "", "L", false)
		}
		pdf.Ln(4)
	}

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Notes")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
