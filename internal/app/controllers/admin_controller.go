package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adlavijwal/innovbridge/internal/app/models/dto"
	"github.com/adlavijwal/innovbridge/internal/app/services"
	"github.com/adlavijwal/innovbridge/internal/middleware"
)

// AdminController handles admin login and operator email sends
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// Login authenticates the operator
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AdminLoginResponse} "Token issued"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, expiresIn, err := c.adminService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AdminLoginResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, "Logged in"))
}

// SendEmail dispatches one templated email
// @Summary Send a templated email
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendEmailRequest true "Email dispatch"
// @Success 200 {object} dto.APIResponse "Email dispatched"
// @Failure 400 {object} dto.ErrorResponse "Unknown template"
// @Failure 502 {object} dto.ErrorResponse "Delivery failed"
// @Router /admin/emails [post]
func (c *AdminController) SendEmail(ctx *gin.Context) {
	var req dto.SendEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid email data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.adminService.SendEmail(ctx, req.Type, req.To, req.Data); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Email dispatched"))
}
