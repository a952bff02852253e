package duct

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Round(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/tools/duct/round", strings.NewReader(`{"cfm":400}`))
	rec := httptest.NewRecorder()

	h.Round(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res RoundSize
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 10.0, res.DiameterIn)
	assert.Equal(t, 733, res.VelocityFPM)
}

func TestHandler_Round_BadPayload(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/tools/duct/round", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.Round(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Round_InvalidInput(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/tools/duct/round", strings.NewReader(`{"cfm":-5}`))
	rec := httptest.NewRecorder()

	h.Round(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Friction_ReportsInfeasible(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/tools/duct/friction",
		strings.NewReader(`{"total_esp":0.3,"eql_ft":150,"component_drops":0.5}`))
	rec := httptest.NewRecorder()

	h.Friction(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res frictionResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, -0.133, res.RatePer100Ft)
	assert.False(t, res.Feasible)
}

func TestHandler_Plan(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/tools/duct/plan", strings.NewReader(`{"total_cfm":2000}`))
	rec := httptest.NewRecorder()

	h.Plan(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res planResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 2000, res.Plan.TotalCFM)
	assert.True(t, strings.HasPrefix(res.Text, "Sub-Plenum Plan - 2000 CFM total"))
}
