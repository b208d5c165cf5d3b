package v1

import (
	"net/http"
	"strings"

	"talentflow/internal/delivery/http/response"
	"talentflow/internal/domain"
	"talentflow/pkg/apperror"
	"talentflow/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	assessmentUC domain.AssessmentUsecase
}

func NewAssessmentHandler(api *gin.RouterGroup, assessmentUC domain.AssessmentUsecase) {
	handler := &AssessmentHandler{assessmentUC: assessmentUC}

	assessments := api.Group("/assessments")
	{
		assessments.GET("/:jobId", handler.Get)
		assessments.PUT("/:jobId", handler.Save)
		assessments.POST("/:jobId/submit", handler.Submit)
	}
}

type SubmitResponseRequest struct {
	CandidateID string         `json:"candidateId" binding:"required"`
	Responses   map[string]any `json:"responses" binding:"required"`
}

// Get godoc
// @Summary      Get the assessment attached to a job
// @Description  Returns a null assessment when the job has none
// @Tags         assessments
// @Produce      json
// @Param        jobId  path  string  true  "Job id"
// @Success      200  {object}  response.Response
// @Router       /api/assessments/{jobId} [get]
func (h *AssessmentHandler) Get(c *gin.Context) {
	assessment, err := h.assessmentUC.GetAssessment(c, c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Assessment", gin.H{"assessment": assessment})
}

// Save godoc
// @Summary      Create or replace a job's assessment
// @Description  Each job holds at most one assessment; saving upserts it
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        jobId       path  string             true  "Job id"
// @Param        assessment  body  domain.Assessment  true  "Assessment schema"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/assessments/{jobId} [put]
func (h *AssessmentHandler) Save(c *gin.Context) {
	var assessment domain.Assessment
	if err := c.ShouldBindJSON(&assessment); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	saved, err := h.assessmentUC.SaveAssessment(c, c.Param("jobId"), &assessment)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Assessment saved", saved)
}

// Submit godoc
// @Summary      Submit a candidate's assessment responses
// @Description  Validates every visible question; only a fully valid response set is recorded
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        jobId       path  string                 true  "Job id"
// @Param        submission  body  SubmitResponseRequest  true  "Candidate responses"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/assessments/{jobId}/submit [post]
func (h *AssessmentHandler) Submit(c *gin.Context) {
	var req SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; ")))
		return
	}

	submissionID, err := h.assessmentUC.SubmitResponse(c, c.Param("jobId"), req.CandidateID, req.Responses)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Response submitted", gin.H{"submissionId": submissionID})
}
