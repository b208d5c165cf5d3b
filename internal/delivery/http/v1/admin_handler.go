package v1

import (
	"net/http"

	"talentflow/internal/delivery/http/response"
	"talentflow/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(api *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	api.GET("/export", handler.Export)
	api.POST("/reset", handler.Reset)
}

// Export godoc
// @Summary      Export the full store
// @Description  Snapshot of every collection, grouped by entity type
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/export [get]
func (h *AdminHandler) Export(c *gin.Context) {
	snapshot, err := h.adminUC.ExportAll(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Store export", snapshot)
}

// Reset godoc
// @Summary      Wipe the store and reseed it
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.adminUC.ResetAll(c); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Store reset", nil)
}
