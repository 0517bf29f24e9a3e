package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcett/studentdir/internal/app/models/dto"
	"github.com/gcett/studentdir/internal/app/services"
	"github.com/gcett/studentdir/internal/middleware"
	"github.com/gcett/studentdir/internal/pkg/helpers"
)

// SubmissionController handles skill-test submissions
type SubmissionController struct {
	submissionService services.SubmissionService
}

// NewSubmissionController creates a new SubmissionController
func NewSubmissionController(submissionService services.SubmissionService) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
	}
}

// Submit stores a skill-test submission
// @Summary Submit a skill test
// @Description AI/ML entries require portfolioFile and UI/UX entries require redesignFile. A file that fails to upload is kept by name without a URL.
// @Tags skill-test
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param phone formData string true "Phone"
// @Param linkedinId formData string false "LinkedIn ID"
// @Param portfolioDescription formData string false "Portfolio description"
// @Param category formData string true "AI/ML or UI/UX"
// @Param portfolioFile formData file false "Portfolio file"
// @Param redesignFile formData file false "Redesign file"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /skill-test/submit [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	var req dto.SubmitSkillTestRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	submission, err := c.submissionService.Submit(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, submission)
}

// ListSubmissions pages through submissions newest first
// @Summary List submissions
// @Tags skill-test
// @Produce json
// @Security AdminCookie
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.SubmissionListResponse
// @Failure 401 {object} dto.ErrorResponse "Admin session required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/submissions [get]
func (c *SubmissionController) ListSubmissions(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	resp, err := c.submissionService.ListSubmissions(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
