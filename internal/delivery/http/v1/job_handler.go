package v1

import (
	"net/http"
	"strconv"
	"strings"

	"talentflow/internal/delivery/http/response"
	"talentflow/internal/domain"
	"talentflow/pkg/apperror"
	"talentflow/pkg/validation"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(api *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.PATCH("/:id", handler.Update)
		jobs.PATCH("/:id/reorder", handler.Reorder)
	}
}

type CreateJobRequest struct {
	Title        string   `json:"title" binding:"required"`
	Slug         string   `json:"slug"`
	Status       string   `json:"status" binding:"omitempty,oneof=active archived"`
	Tags         []string `json:"tags"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Location     string   `json:"location"`
	Type         string   `json:"type" binding:"omitempty,oneof=full-time part-time contract"`
}

type ReorderJobRequest struct {
	FromOrder *int64 `json:"fromOrder" binding:"required"`
	ToOrder   *int64 `json:"toOrder" binding:"required"`
}

// List godoc
// @Summary      List jobs
// @Description  Filtered, sorted, paginated job listing
// @Tags         jobs
// @Produce      json
// @Param        search    query  string  false  "Substring match on title and tags"
// @Param        status    query  string  false  "active | archived | all"
// @Param        sort      query  string  false  "title | order"
// @Param        page      query  int     false  "Page number (1-indexed)"
// @Param        pageSize  query  int     false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /api/jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	result, err := h.jobUC.ListJobs(c, domain.JobFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Sort:     c.DefaultQuery("sort", "order"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", result)
}

// Create godoc
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body  CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; ")))
		return
	}

	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	job := &domain.Job{
		Title:        req.Title,
		Slug:         req.Slug,
		Status:       req.Status,
		Tags:         req.Tags,
		Description:  toPtr(req.Description),
		Requirements: req.Requirements,
		Location:     toPtr(req.Location),
		Type:         toPtr(req.Type),
	}

	if err := h.jobUC.CreateJob(c, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// Update godoc
// @Summary      Partially update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id     path  string          true  "Job id"
// @Param        patch  body  domain.JobPatch  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/jobs/{id} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	var patch domain.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.UpdateJob(c, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// Reorder godoc
// @Summary      Move a job to a new rank position
// @Description  Shifts every job between fromOrder and toOrder by one position
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Job id"
// @Param        move  body  ReorderJobRequest  true  "From/to positions"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/jobs/{id}/reorder [patch]
func (h *JobHandler) Reorder(c *gin.Context) {
	var req ReorderJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; ")))
		return
	}

	if err := h.jobUC.ReorderJob(c, c.Param("id"), *req.FromOrder, *req.ToOrder); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job reordered", gin.H{"success": true})
}
