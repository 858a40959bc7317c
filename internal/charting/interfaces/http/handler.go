package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wyfcoding/optionslab/internal/charting/application"
	pricing "github.com/wyfcoding/optionslab/internal/pricing/domain"
)

// Handler 图表服务的 HTTP 接口
type Handler struct {
	app *application.ChartingService
}

// NewHandler 注册路由并返回 handler
func NewHandler(r *gin.Engine, app *application.ChartingService) *Handler {
	h := &Handler{app: app}
	v1 := r.Group("/api/v1/charts")
	{
		v1.POST("/price-series", h.PriceSeries)
		v1.POST("/volatility-series", h.VolatilitySeries)
		v1.POST("/delta-series", h.DeltaSeries)
		v1.POST("/greeks-by-vol", h.GreeksByVolatility)
	}
	return h
}

func (h *Handler) PriceSeries(c *gin.Context) {
	var req application.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dto, err := h.app.PriceSeries(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *Handler) VolatilitySeries(c *gin.Context) {
	var req application.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dto, err := h.app.VolatilitySeries(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *Handler) DeltaSeries(c *gin.Context) {
	var req application.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dto, err := h.app.DeltaSeries(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *Handler) GreeksByVolatility(c *gin.Context) {
	var req application.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dto, err := h.app.GreeksByVolatility(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto)
}

func statusFor(err error) int {
	if errors.Is(err, pricing.ErrInvalidInput) || errors.Is(err, pricing.ErrInvalidOptionType) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
