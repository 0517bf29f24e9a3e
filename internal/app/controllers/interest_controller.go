package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcett/studentdir/internal/app/models/dto"
	"github.com/gcett/studentdir/internal/app/services"
	"github.com/gcett/studentdir/internal/middleware"
)

// InterestController handles the OTP guarded interest update
type InterestController struct {
	interestService services.InterestService
}

// NewInterestController creates a new InterestController
func NewInterestController(interestService services.InterestService) *InterestController {
	return &InterestController{
		interestService: interestService,
	}
}

// VerifyEmail looks up a registered email
// @Summary Verify a registered email
// @Description Returns the current interests of a registered student and whether they were already updated
// @Tags interests
// @Accept json
// @Produce json
// @Param request body dto.VerifyEmailRequest true "Email"
// @Success 200 {object} dto.VerifyEmailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Email not registered"
// @Router /verify-email [post]
func (c *InterestController) VerifyEmail(ctx *gin.Context) {
	var req dto.VerifyEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	resp, err := c.interestService.VerifyEmail(ctx.Request.Context(), req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateInterests runs one step of the interest update
// @Summary Update interests
// @Description action=send-otp mails a 6 digit code valid for 10 minutes. action=verify-update checks the code and replaces the interests; each email can update only once.
// @Tags interests
// @Accept json
// @Produce json
// @Param request body dto.UpdateInterestsRequest true "Action payload"
// @Success 200 {object} dto.UpdateInterestsResponse "verify-update result; send-otp returns dto.SendOTPResponse"
// @Failure 400 {object} dto.ErrorResponse "Invalid OTP, invalid data or already updated"
// @Failure 404 {object} dto.ErrorResponse "Email not registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /update-interests [post]
func (c *InterestController) UpdateInterests(ctx *gin.Context) {
	var req dto.UpdateInterestsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	switch req.Action {
	case dto.InterestActionSendOTP:
		resp, err := c.interestService.SendOTP(ctx.Request.Context(), req.Email)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, resp)

	case dto.InterestActionVerifyUpdate:
		resp, err := c.interestService.VerifyUpdate(ctx.Request.Context(), req.Email, req.OTP, req.Interests)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, resp)
	}
}
