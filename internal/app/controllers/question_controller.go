package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcett/studentdir/internal/app/models/dto"
	"github.com/gcett/studentdir/internal/app/services"
	"github.com/gcett/studentdir/internal/middleware"
)

// QuestionController handles the skill-test question bank
type QuestionController struct {
	questionService services.QuestionService
}

// NewQuestionController creates a new QuestionController
func NewQuestionController(questionService services.QuestionService) *QuestionController {
	return &QuestionController{
		questionService: questionService,
	}
}

// ListQuestions lists skill-test questions
// @Summary List questions
// @Tags questions
// @Produce json
// @Param testType query string false "AI/ML or UI/UX"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown test type"
// @Router /admin/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	questions, err := c.questionService.ListQuestions(ctx.Request.Context(), ctx.Query("testType"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, questions)
}

// CreateQuestion adds a question
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.QuestionRequest true "Question"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Admin session required"
// @Router /admin/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	question, err := c.questionService.CreateQuestion(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, question)
}

// UpdateQuestion replaces a question
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "Question ID"
// @Param request body dto.QuestionRequest true "Question"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Admin session required"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	var req dto.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	question, err := c.questionService.UpdateQuestion(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion removes a question
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Security AdminCookie
// @Param id path string true "Question ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse "Admin session required"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	if err := c.questionService.DeleteQuestion(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Question deleted successfully"})
}
