package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvisser/dyngate/internal/api/models"
)

// Health godoc
// @Summary Liveness check
// @Description Returns server health status
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /healthz [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}
