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

	"github.com/wyfcoding/optionslab/internal/simulation/application"
)

func setupRouter(limits application.Limits) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	app := application.NewSimulationService(
		slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil, limits)
	NewHandler(r, app)
	return r
}

func postRun(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulation/run", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Run(t *testing.T) {
	r := setupRouter(application.Limits{MaxPaths: 100, MaxSteps: 1000})

	body := gin.H{
		"drift":         0.05,
		"volatility":    0.2,
		"horizon":       1,
		"steps":         10,
		"initial_value": 100,
		"path_count":    3,
		"seed":          42,
	}
	w := postRun(t, r, body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Times    []float64   `json:"times"`
		Paths    [][]float64 `json:"paths"`
		Expected []float64   `json:"expected"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Times, 11)
	require.Len(t, resp.Paths, 3)
	require.Len(t, resp.Expected, 11)
	assert.InDelta(t, 100.0, resp.Paths[0][0], 1e-9)

	// 同种子再跑一次，路径逐点一致
	w2 := postRun(t, r, body)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.JSONEq(t, w.Body.String(), w2.Body.String())
}

func TestHandler_Run_BadRequest(t *testing.T) {
	r := setupRouter(application.Limits{MaxPaths: 5, MaxSteps: 1000})

	// 超出路径数限额 -> 400
	w := postRun(t, r, gin.H{
		"drift":         0.05,
		"volatility":    0.2,
		"horizon":       1,
		"steps":         10,
		"initial_value": 100,
		"path_count":    10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 域校验失败（负初值）-> 400
	w = postRun(t, r, gin.H{
		"drift":         0.05,
		"volatility":    0.2,
		"horizon":       1,
		"steps":         10,
		"initial_value": -100,
		"path_count":    3,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 绑定失败 -> 400
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulation/run", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
