package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcett/studentdir/internal/app/models/dto"
	"github.com/gcett/studentdir/internal/app/services"
	"github.com/gcett/studentdir/internal/middleware"
)

// NoticeController handles the notice board
type NoticeController struct {
	noticeService services.NoticeService
}

// NewNoticeController creates a new NoticeController
func NewNoticeController(noticeService services.NoticeService) *NoticeController {
	return &NoticeController{
		noticeService: noticeService,
	}
}

// ListNotices lists notices newest first
// @Summary List notices
// @Tags notices
// @Produce json
// @Success 200 {array} dto.NoticeResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/notices [get]
func (c *NoticeController) ListNotices(ctx *gin.Context) {
	notices, err := c.noticeService.ListNotices(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notices)
}

// CreateNotice publishes a notice
// @Summary Create a notice
// @Description Stores the notice and emails it to every known address in the background
// @Tags notices
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param request body dto.NoticeRequest true "Notice"
// @Success 201 {object} dto.NoticeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Admin session required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/notices [post]
func (c *NoticeController) CreateNotice(ctx *gin.Context) {
	var req dto.NoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	notice, err := c.noticeService.CreateNotice(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, notice)
}

// UpdateNotice edits a notice
// @Summary Update a notice
// @Tags notices
// @Accept json
// @Produce json
// @Security AdminCookie
// @Param id path string true "Notice ID"
// @Param request body dto.NoticeRequest true "Notice"
// @Success 200 {object} dto.NoticeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Admin session required"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Router /admin/notices/{id} [put]
func (c *NoticeController) UpdateNotice(ctx *gin.Context) {
	var req dto.NoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	notice, err := c.noticeService.UpdateNotice(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notice)
}

// DeleteNotice removes a notice
// @Summary Delete a notice
// @Tags notices
// @Produce json
// @Security AdminCookie
// @Param id path string true "Notice ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse "Admin session required"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Router /admin/notices/{id} [delete]
func (c *NoticeController) DeleteNotice(ctx *gin.Context) {
	if err := c.noticeService.DeleteNotice(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Notice deleted successfully"})
}
