package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wyfcoding/optionslab/internal/pricing/application"
	"github.com/wyfcoding/optionslab/internal/pricing/domain"
)

// Handler 定价服务的 HTTP 接口
type Handler struct {
	app *application.PricingService
}

// NewHandler 注册路由并返回 handler
func NewHandler(r *gin.Engine, app *application.PricingService) *Handler {
	h := &Handler{app: app}
	v1 := r.Group("/api/v1/pricing")
	{
		v1.POST("/price", h.Price)
		v1.POST("/greeks", h.Greeks)
		v1.POST("/implied-vol", h.ImpliedVolatility)
	}
	return h
}

func (h *Handler) Price(c *gin.Context) {
	var req application.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dto, err := h.app.Price(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *Handler) Greeks(c *gin.Context) {
	var req application.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dto, err := h.app.Greeks(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *Handler) ImpliedVolatility(c *gin.Context) {
	var req application.ImpliedVolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dto, err := h.app.ImpliedVolatility(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto)
}

// statusFor 领域校验错误映射为 400，其余为 500
func statusFor(err error) int {
	if errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrInvalidOptionType) ||
		errors.Is(err, domain.ErrIVNotConverged) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
