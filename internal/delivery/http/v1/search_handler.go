package v1

import (
	"net/http"

	"talentflow/internal/delivery/http/response"
	"talentflow/internal/domain"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUC domain.SearchUsecase
}

func NewSearchHandler(api *gin.RouterGroup, searchUC domain.SearchUsecase) {
	handler := &SearchHandler{searchUC: searchUC}

	api.GET("/search", handler.Search)
}

// Search godoc
// @Summary      Search across jobs, candidates and assessments
// @Tags         search
// @Produce      json
// @Param        q  query  string  true  "Search query"
// @Success      200  {object}  response.Response
// @Router       /api/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	results, err := h.searchUC.Search(c, c.Query("q"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Search results", gin.H{"results": results})
}
