package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ocv-hull/internal/api/models"
	"ocv-hull/internal/config"
	"ocv-hull/internal/data"
	"ocv-hull/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := data.NewResultStore(time.Minute)
	ocvHandler := NewOCVHandler(store, config.PipelineConfig{})
	hullHandler := NewHullHandler()
	sweepHandler := NewSweepHandler(config.PipelineConfig{})

	api := router.Group("/api/v1")
	api.POST("/ocv", ocvHandler.RunOCV)
	api.GET("/ocv/:id", ocvHandler.GetResult)
	api.POST("/hull", hullHandler.ComputeHull)
	api.POST("/sweep", sweepHandler.RunSweep)
	return router
}

func specSamples() []model.Sample {
	return []model.Sample{
		{Lithiation: 0, TemperatureK: 300, Energy: -10.0},
		{Lithiation: 0.5, TemperatureK: 300, Energy: -10.3},
		{Lithiation: 1, TemperatureK: 300, Energy: -10.1},
	}
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRunOCVAndFetchStored(t *testing.T) {
	router := testRouter()
	rec := postJSON(t, router, "/api/v1/ocv", models.OCVRequest{
		Samples:      specSamples(),
		TemperatureK: 300,
		// odd npts keeps the x=0.5 ground state on the formation grid
		Pipeline: models.PipelineParams{ELiBulk: -1.95, Npts: 101},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.OCVResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 3, resp.Summary.StableVertices)
	assert.NotEmpty(t, resp.OCV.Points)
	assert.Nil(t, resp.Formation) // not requested
	assert.Empty(t, resp.Grid)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ocv/"+resp.ID, nil)
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code)

	var stored models.OCVResponse
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &stored))
	assert.Equal(t, resp.Summary, stored.Summary)
	assert.NotNil(t, stored.Formation)
	assert.NotEmpty(t, stored.Grid)
}

func TestGetResultNotFound(t *testing.T) {
	router := testRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ocv/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRunOCVErrorCodes(t *testing.T) {
	router := testRouter()

	// Missing required fields.
	rec := postJSON(t, router, "/api/v1/ocv", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Degenerate input: duplicate (x, T) pair.
	dup := specSamples()
	dup = append(dup, model.Sample{Lithiation: 0, TemperatureK: 300, Energy: -9})
	rec = postJSON(t, router, "/api/v1/ocv", models.OCVRequest{
		Samples:      dup,
		TemperatureK: 300,
		Pipeline:     models.PipelineParams{ELiBulk: -1.95},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "DEGENERATE_INPUT", errResp.Error.Code)

	// Out-of-domain temperature.
	rec = postJSON(t, router, "/api/v1/ocv", models.OCVRequest{
		Samples:      specSamples(),
		TemperatureK: 500,
		Pipeline:     models.PipelineParams{ELiBulk: -1.95},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "OUT_OF_DOMAIN", errResp.Error.Code)
}

func TestComputeHull(t *testing.T) {
	router := testRouter()
	rec := postJSON(t, router, "/api/v1/hull", models.HullRequest{
		Samples:      specSamples(),
		TemperatureK: 300,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.HullResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Segments)
	assert.Len(t, resp.Formation.Points, 100)
}

func TestRunSweep(t *testing.T) {
	router := testRouter()
	var samples []model.Sample
	for _, temp := range []float64{300, 800} {
		for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
			samples = append(samples, model.Sample{
				Lithiation:   x,
				TemperatureK: temp,
				Energy:       -10 - 0.1*x - 0.6*x*(1-x),
			})
		}
	}
	rec := postJSON(t, router, "/api/v1/sweep", models.SweepRequest{
		Samples:       samples,
		TemperaturesK: []float64{300, 550, 900},
		Pipeline:      models.PipelineParams{ELiBulk: -1.95},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.SweepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 3)
	assert.NotNil(t, resp.Entries[0].Summary)
	assert.NotNil(t, resp.Entries[1].Summary)
	assert.Empty(t, resp.Entries[0].Error)
	// 900K is outside the sampled range; the sweep reports it per entry.
	assert.Nil(t, resp.Entries[2].Summary)
	assert.NotEmpty(t, resp.Entries[2].Error)
}
