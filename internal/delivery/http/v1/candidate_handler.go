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

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(api *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := api.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.POST("", handler.Create)
		candidates.PATCH("/:id", handler.Update)
		candidates.GET("/:id/timeline", handler.Timeline)
	}
}

type CreateCandidateRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Stage  string `json:"stage" binding:"omitempty,oneof=applied screen tech offer hired rejected"`
	JobID  string `json:"jobId"`
	Phone  string `json:"phone"`
	Resume string `json:"resume"`
	Notes  string `json:"notes"`
}

// List godoc
// @Summary      List candidates
// @Description  Filtered, paginated candidate listing, newest first
// @Tags         candidates
// @Produce      json
// @Param        search    query  string  false  "Substring match on name and email"
// @Param        stage     query  string  false  "Pipeline stage or all"
// @Param        page      query  int     false  "Page number (1-indexed)"
// @Param        pageSize  query  int     false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /api/candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "50"))

	result, err := h.candidateUC.ListCandidates(c, domain.CandidateFilter{
		Search:   c.Query("search"),
		Stage:    c.Query("stage"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate list", result)
}

// Create godoc
// @Summary      Create a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body  CreateCandidateRequest  true  "Candidate JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CreateCandidateRequest
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

	candidate := &domain.Candidate{
		Name:   req.Name,
		Email:  req.Email,
		Stage:  req.Stage,
		JobID:  req.JobID,
		Phone:  toPtr(req.Phone),
		Resume: toPtr(req.Resume),
		Notes:  toPtr(req.Notes),
	}

	if err := h.candidateUC.CreateCandidate(c, candidate); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// Update godoc
// @Summary      Partially update a candidate
// @Description  A stage change or a supplied note appends one timeline entry
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id     path  string                 true  "Candidate id"
// @Param        patch  body  domain.CandidatePatch  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/candidates/{id} [patch]
func (h *CandidateHandler) Update(c *gin.Context) {
	var patch domain.CandidatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.UpdateCandidate(c, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}

// Timeline godoc
// @Summary      Get a candidate's timeline
// @Description  Stage changes and notes, newest first
// @Tags         candidates
// @Produce      json
// @Param        id  path  string  true  "Candidate id"
// @Success      200  {object}  response.Response
// @Router       /api/candidates/{id}/timeline [get]
func (h *CandidateHandler) Timeline(c *gin.Context) {
	timeline, err := h.candidateUC.GetTimeline(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate timeline", gin.H{"timeline": timeline})
}
