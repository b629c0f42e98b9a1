package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/app/models/dto"
	"github.com/adlavijwal/innovbridge/internal/app/services"
	"github.com/adlavijwal/innovbridge/internal/middleware"
)

// StudentHubController handles the paid request wizard endpoints
type StudentHubController struct {
	studentHubService *services.StudentHubService
}

// NewStudentHubController creates a new StudentHubController
func NewStudentHubController(studentHubService *services.StudentHubService) *StudentHubController {
	return &StudentHubController{studentHubService: studentHubService}
}

// OpenSession starts a wizard session
// @Summary Open a wizard session
// @Description Starts a server-side wizard session for one of the request kinds (resume, project, ppt)
// @Tags student-hub
// @Accept json
// @Produce json
// @Param request body dto.OpenWizardRequest true "Request kind"
// @Success 201 {object} dto.APIResponse{data=dto.WizardSessionResponse} "Session created"
// @Failure 400 {object} dto.ErrorResponse "Unknown request kind"
// @Router /student-hub/sessions [post]
func (c *StudentHubController) OpenSession(ctx *gin.Context) {
	var req dto.OpenWizardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.studentHubService.OpenSession(ctx, models.RequestType(req.RequestType))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(sessionResponse(session), "Session opened"))
}

// GetSession retrieves a wizard session
// @Summary Get a wizard session
// @Tags student-hub
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.WizardSessionResponse}
// @Failure 404 {object} dto.ErrorResponse "Session not found or expired"
// @Router /student-hub/sessions/{id} [get]
func (c *StudentHubController) GetSession(ctx *gin.Context) {
	session, err := c.studentHubService.GetSession(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(sessionResponse(session), ""))
}

// SaveForm replaces the session's form state
// @Summary Save the wizard form
// @Tags student-hub
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SaveFormRequest true "Form fields"
// @Success 200 {object} dto.APIResponse{data=dto.WizardSessionResponse}
// @Failure 400 {object} dto.ErrorResponse "Form is locked after payment"
// @Failure 404 {object} dto.ErrorResponse "Session not found or expired"
// @Router /student-hub/sessions/{id} [put]
func (c *StudentHubController) SaveForm(ctx *gin.Context) {
	var req dto.SaveFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid form data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.studentHubService.SaveForm(ctx, ctx.Param("id"), req.Form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(sessionResponse(session), "Form saved"))
}

// StartCheckout validates the form and opens a payment page
// @Summary Start checkout
// @Description Validates the form, creates the unpaid request and returns the payment page URL
// @Tags student-hub
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.CheckoutResponse} "Checkout URL"
// @Failure 400 {object} dto.ErrorResponse "Form validation failed"
// @Failure 404 {object} dto.ErrorResponse "Session not found or expired"
// @Failure 502 {object} dto.ErrorResponse "Payment provider unavailable"
// @Router /student-hub/sessions/{id}/checkout [post]
func (c *StudentHubController) StartCheckout(ctx *gin.Context) {
	_, url, err := c.studentHubService.StartCheckout(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CheckoutResponse{
		Success: true,
		URL:     url,
	}, "Checkout session created"))
}

// ConfirmPayment verifies a checkout session after the payment redirect
// @Summary Confirm payment
// @Description Verifies the checkout session with the payment provider. An unpaid session is a 200 with paid=false, not an error.
// @Tags student-hub
// @Produce json
// @Param session_id query string true "Checkout session ID"
// @Param request_id query string true "Request ID"
// @Success 200 {object} dto.ConfirmPaymentResponse
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 502 {object} dto.ErrorResponse "Payment provider unavailable"
// @Router /student-hub/confirm [get]
func (c *StudentHubController) ConfirmPayment(ctx *gin.Context) {
	checkoutSessionID := ctx.Query("session_id")
	requestID := ctx.Query("request_id")
	if checkoutSessionID == "" || requestID == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing confirmation parameters").
			WithDetails("session_id and request_id are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	outcome, err := c.studentHubService.ConfirmPayment(ctx, checkoutSessionID, requestID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !outcome.Paid {
		ctx.JSON(http.StatusOK, dto.ConfirmPaymentResponse{
			Success: false,
			Paid:    false,
			Message: "Payment not completed",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ConfirmPaymentResponse{
		Success: true,
		Paid:    true,
		Message: "Payment confirmed",
	})
}

// Submit finalizes a paid request
// @Summary Submit the request
// @Tags student-hub
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=models.StudentRequest} "Request submitted"
// @Failure 402 {object} dto.ErrorResponse "Payment required"
// @Failure 404 {object} dto.ErrorResponse "Session not found or expired"
// @Router /student-hub/sessions/{id}/submit [post]
func (c *StudentHubController) Submit(ctx *gin.Context) {
	req, err := c.studentHubService.Submit(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(req, "Request submitted"))
}

// RequestHistory returns a request with its status trail (admin)
// @Summary Get request history
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.RequestHistoryResponse}
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /admin/student-requests/{id}/history [get]
func (c *StudentHubController) RequestHistory(ctx *gin.Context) {
	req, history, err := c.studentHubService.RequestHistory(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.RequestHistoryResponse{
		Request: req,
		History: history,
	}, ""))
}

// CancelSession abandons a wizard session
// @Summary Cancel a wizard session
// @Tags student-hub
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse "Session discarded"
// @Failure 404 {object} dto.ErrorResponse "Session not found or expired"
// @Router /student-hub/sessions/{id} [delete]
func (c *StudentHubController) CancelSession(ctx *gin.Context) {
	if err := c.studentHubService.CancelSession(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Session discarded"))
}

func sessionResponse(session *models.WizardSession) dto.WizardSessionResponse {
	return dto.WizardSessionResponse{
		ID:          session.ID,
		RequestType: string(session.RequestType),
		State:       string(session.State),
		Form:        session.Form,
	}
}
