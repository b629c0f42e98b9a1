package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adlavijwal/innovbridge/internal/app/models/dto"
	"github.com/adlavijwal/innovbridge/internal/app/services"
	"github.com/adlavijwal/innovbridge/internal/middleware"
)

// SubscriptionController handles newsletter and community signups
type SubscriptionController struct {
	subscriptionService *services.SubscriptionService
}

// NewSubscriptionController creates a new SubscriptionController
func NewSubscriptionController(subscriptionService *services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{subscriptionService: subscriptionService}
}

// SubscribeNewsletter handles newsletter signups
// @Summary Subscribe to the newsletter
// @Description Records a newsletter subscription and sends a welcome email. The subscription stands even if the welcome email fails.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body dto.SubscribeNewsletterRequest true "Subscription details"
// @Success 201 {object} dto.APIResponse{data=dto.SubscriptionResponse} "Subscribed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid email or frequency"
// @Failure 409 {object} dto.ErrorResponse "Email already subscribed"
// @Router /newsletter/subscribe [post]
func (c *SubscriptionController) SubscribeNewsletter(ctx *gin.Context) {
	var req dto.SubscribeNewsletterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid subscription data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	emailSent, err := c.subscriptionService.SubscribeNewsletter(ctx, req.Email, req.Frequency)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.SubscriptionResponse{
		Subscribed: true,
		EmailSent:  emailSent,
	}, "Subscribed to newsletter"))
}

// JoinCommunity handles community signups
// @Summary Join the community
// @Description Records a community membership and sends a welcome email. If the email cannot be delivered the join is rolled back.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body dto.JoinCommunityRequest true "Member email"
// @Success 201 {object} dto.APIResponse{data=dto.SubscriptionResponse} "Joined successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid email"
// @Failure 409 {object} dto.ErrorResponse "Email already subscribed"
// @Failure 502 {object} dto.ErrorResponse "Welcome email delivery failed"
// @Router /community/join [post]
func (c *SubscriptionController) JoinCommunity(ctx *gin.Context) {
	var req dto.JoinCommunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid member data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.subscriptionService.JoinCommunity(ctx, req.Email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.SubscriptionResponse{
		Subscribed: true,
		EmailSent:  true,
	}, "Joined the community"))
}
