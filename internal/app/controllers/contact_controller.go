package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/app/models/dto"
	"github.com/adlavijwal/innovbridge/internal/app/services"
	"github.com/adlavijwal/innovbridge/internal/middleware"
)

// ContactController handles contact form submissions
type ContactController struct {
	contactService *services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// Submit handles a contact form submission
// @Summary Submit the contact form
// @Description Stores the submission and sends a confirmation to the sender plus a notification to the team inbox
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact form"
// @Success 201 {object} dto.APIResponse "Submission stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid form data"
// @Router /contact [post]
func (c *ContactController) Submit(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid contact data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sub := &models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := c.contactService.Submit(ctx, sub); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(nil, "Thanks for reaching out, we'll get back to you soon"))
}
