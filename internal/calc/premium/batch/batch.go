package batch

import (
	"fmt"

	"Airside/internal/calc/refrigerant"
)

type DiagnoseBatchInput struct {
	Items []refrigerant.DiagnoseInput `json:"items"`
}

type DiagnoseBatchResult struct {
	Results []refrigerant.Diagnosis `json:"results"`
}

// DiagnoseAll runs the diagnostics engine over a set of readings, e.g. every
// system on a rooftop. Any unusable item fails the whole batch so a partial
// result is never mistaken for a complete one.
func DiagnoseAll(in DiagnoseBatchInput) (DiagnoseBatchResult, error) {
	if len(in.Items) == 0 {
		return DiagnoseBatchResult{}, fmt.Errorf("no items")
	}
	out := DiagnoseBatchResult{Results: make([]refrigerant.Diagnosis, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := refrigerant.Diagnose(item)
		if err != nil {
			return DiagnoseBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
