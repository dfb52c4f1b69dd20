package asado

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewHandler(RatesClassic)
	r.POST("/asado/estimacion", h.Estimacion)
	r.POST("/asado/distribucion", h.Distribucion)

	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEstimacionEndpoint(t *testing.T) {
	r := setupTestRouter()

	w := postJSON(t, r, "/asado/estimacion", gin.H{
		"hombres": 2, "mujeres": 2, "ninos": 0, "al_pan": false,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var est Estimate
	if err := json.Unmarshal(w.Body.Bytes(), &est); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if !almostEqual(est.CarneKg, 1.6) {
		t.Fatalf("expected 1.6 kg, got %f", est.CarneKg)
	}
	if est.EmbutidoUnits != 2 {
		t.Fatalf("expected 2 embutidos, got %d", est.EmbutidoUnits)
	}
}

func TestDistribucionEndpoint(t *testing.T) {
	r := setupTestRouter()

	chorizoPct := 60.0
	w := postJSON(t, r, "/asado/distribucion", gin.H{
		"hombres":     4,
		"mujeres":     2,
		"ninos":       1,
		"cortes":      gin.H{"Vacío": 60.0},
		"achuras":     gin.H{"Mollejas": 20.0},
		"chorizo_pct": chorizoPct,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp distribucionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if !almostEqual(resp.RestantePct, 20) {
		t.Fatalf("expected 20%% restante, got %f", resp.RestantePct)
	}
	if resp.Chorizos+resp.Morcillas != 4 {
		t.Fatalf("embutidos should sum to 4, got %d + %d", resp.Chorizos, resp.Morcillas)
	}
}

func TestDistribucionRejectsOverBudget(t *testing.T) {
	r := setupTestRouter()

	w := postJSON(t, r, "/asado/distribucion", gin.H{
		"hombres": 2,
		"cortes":  gin.H{"Vacío": 70.0, "Entraña": 40.0},
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}
