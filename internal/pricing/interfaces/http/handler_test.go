package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/optionslab/internal/pricing/application"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	app := application.NewPricingService(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	NewHandler(r, app)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Price(t *testing.T) {
	r := setupRouter()

	w := postJSON(t, r, "/api/v1/pricing/price", gin.H{
		"type":             "CALL",
		"underlying_price": 100,
		"strike_price":     100,
		"time_to_maturity": 1,
		"risk_free_rate":   0.05,
		"volatility":       0.2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Type  string `json:"type"`
		Price string `json:"price"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CALL", resp.Type)
	assert.Equal(t, "10.450584", resp.Price)
}

func TestHandler_Greeks(t *testing.T) {
	r := setupRouter()

	w := postJSON(t, r, "/api/v1/pricing/greeks", gin.H{
		"type":             "PUT",
		"underlying_price": 100,
		"strike_price":     100,
		"time_to_maturity": 1,
		"risk_free_rate":   0.05,
		"volatility":       0.2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Delta float64 `json:"delta"`
		Gamma float64 `json:"gamma"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, -0.3632, resp.Delta, 1e-4)
	assert.Greater(t, resp.Gamma, 0.0)
}

func TestHandler_Price_BadRequest(t *testing.T) {
	r := setupRouter()

	// 域校验失败 -> 400
	w := postJSON(t, r, "/api/v1/pricing/price", gin.H{
		"type":             "CALL",
		"underlying_price": 100,
		"strike_price":     100,
		"time_to_maturity": -1,
		"volatility":       0.2,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 绑定失败 -> 400
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/price", bytes.NewReader([]byte("not json")))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusBadRequest, w2.Code)
}

func TestHandler_ImpliedVol(t *testing.T) {
	r := setupRouter()

	w := postJSON(t, r, "/api/v1/pricing/implied-vol", gin.H{
		"type":             "CALL",
		"underlying_price": 100,
		"strike_price":     100,
		"time_to_maturity": 1,
		"risk_free_rate":   0.05,
		"market_price":     10.4506,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ImpliedVol string `json:"implied_vol"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ImpliedVol)
}
