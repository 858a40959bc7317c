package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pricing "github.com/wyfcoding/optionslab/internal/pricing/domain"
	"github.com/wyfcoding/optionslab/internal/simulation/application"
)

// Handler 模拟服务的 HTTP 接口
type Handler struct {
	app *application.SimulationService
}

// NewHandler 注册路由并返回 handler
func NewHandler(r *gin.Engine, app *application.SimulationService) *Handler {
	h := &Handler{app: app}
	r.POST("/api/v1/simulation/run", h.Run)
	return h
}

func (h *Handler) Run(c *gin.Context) {
	var cmd application.RunCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dto, err := h.app.Run(c.Request.Context(), cmd)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, pricing.ErrInvalidInput) || errors.Is(err, pricing.ErrInvalidOptionType) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto)
}
