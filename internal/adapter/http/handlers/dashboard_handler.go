package handlers

import (
	"net/http"

	"dental_lab/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Stats godoc
// @Summary  Headline counts for the laboratory
// @Tags     dashboard
// @Produce  json
// @Param    X-Owner-ID header string true "Owner id"
// @Success  200 {object} usecase.DashboardStats
// @Router   /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context(), ownerID(c))
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, stats)
}
