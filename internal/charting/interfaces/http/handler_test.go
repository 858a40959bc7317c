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

	"github.com/wyfcoding/optionslab/internal/charting/application"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	app := application.NewChartingService(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
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

func TestHandler_VolatilitySeries(t *testing.T) {
	r := setupRouter()

	w := postJSON(t, r, "/api/v1/charts/volatility-series", gin.H{
		"type":             "CALL",
		"strike_price":     100,
		"time_to_maturity": 1,
		"risk_free_rate":   0.05,
		"min_vol":          0.1,
		"max_vol":          0.3,
		"vol_step":         0.1,
		"points":           10,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Series []struct {
			Label  string `json:"label"`
			Points []struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"points"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Series, 3)
	assert.Equal(t, "0.10", resp.Series[0].Label)
	assert.Len(t, resp.Series[0].Points, 11)
}

func TestHandler_GreeksByVolatility(t *testing.T) {
	r := setupRouter()

	w := postJSON(t, r, "/api/v1/charts/greeks-by-vol", gin.H{
		"type":             "CALL",
		"strike_price":     100,
		"time_to_maturity": 1,
		"min_vol":          0.1,
		"max_vol":          0.5,
		"vol_step":         0.1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Rows []struct {
			Volatility float64 `json:"volatility"`
			Delta      float64 `json:"delta"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 5)
}

func TestHandler_PriceSeries_BadStep(t *testing.T) {
	r := setupRouter()

	w := postJSON(t, r, "/api/v1/charts/delta-series", gin.H{
		"type":             "CALL",
		"strike_price":     100,
		"time_to_maturity": 1,
		"min_vol":          0.5,
		"max_vol":          0.1,
		"vol_step":         0.1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
