package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gcett/studentdir/internal/app/models/dto"
	"github.com/gcett/studentdir/internal/app/services"
	"github.com/gcett/studentdir/internal/middleware"
)

// CookieConfig controls the admin session cookie
type CookieConfig struct {
	Secure bool
	Domain string
}

// AdminAuthController handles admin login and logout
type AdminAuthController struct {
	authService services.AdminAuthService
	cookie      CookieConfig
	logger      zerolog.Logger
}

// NewAdminAuthController creates a new AdminAuthController
func NewAdminAuthController(authService services.AdminAuthService, cookie CookieConfig, logger zerolog.Logger) *AdminAuthController {
	return &AdminAuthController{
		authService: authService,
		cookie:      cookie,
		logger:      logger,
	}
}

// Login starts an admin session
// @Summary Admin login
// @Description Checks the configured admin credentials and sets an httpOnly, SameSite=Strict session cookie valid for 24 hours
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Credentials"
// @Success 200 {object} dto.AdminSessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /admin/auth [post]
func (c *AdminAuthController) Login(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	token, session, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Str("email", req.Email).Str("ip", ctx.ClientIP()).Msg("Admin login rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.setCookie(ctx, token, maxAge)
	ctx.JSON(http.StatusOK, session)
}

// Logout ends the admin session
// @Summary Admin logout
// @Description Clears the session cookie
// @Tags admin
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /admin/auth [delete]
func (c *AdminAuthController) Logout(ctx *gin.Context) {
	c.setCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Logged out"})
}

// Session reports the current admin session
// @Summary Current admin session
// @Tags admin
// @Produce json
// @Security AdminCookie
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse "Admin session required"
// @Router /admin/auth [get]
func (c *AdminAuthController) Session(ctx *gin.Context) {
	email := ctx.GetString(middleware.ContextKeyAdminEmail)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Authenticated as " + email})
}

func (c *AdminAuthController) setCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(middleware.AdminCookieName, value, maxAge, "/", c.cookie.Domain, c.cookie.Secure, true)
}
