package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/app/models/dto"
	"github.com/adlavijwal/innovbridge/internal/app/services"
	"github.com/adlavijwal/innovbridge/internal/middleware"
)

// ContentController handles public content reads and admin content writes
type ContentController struct {
	contentService *services.ContentService
}

// NewContentController creates a new ContentController
func NewContentController(contentService *services.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

// GetTechUpdates lists published tech updates
// @Summary List tech updates
// @Description Retrieves the latest published tech updates, optionally filtered by category
// @Tags content
// @Produce json
// @Param category query string false "Category filter, 'All' or empty for no filter"
// @Success 200 {object} dto.APIResponse{data=dto.TechUpdateListResponse} "Tech updates retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tech-updates [get]
func (c *ContentController) GetTechUpdates(ctx *gin.Context) {
	category := ctx.Query("category")

	updates, categories, err := c.contentService.GetTechUpdates(ctx, category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data: dto.TechUpdateListResponse{
			Updates:    updates,
			Categories: categories,
		},
		Timestamp: time.Now(),
	})
}

// GetOpportunities lists active opportunity listings
// @Summary List opportunities
// @Description Retrieves the latest active listings, optionally filtered by type
// @Tags content
// @Produce json
// @Param type query string false "Type filter, 'All' or empty for no filter"
// @Success 200 {object} dto.APIResponse{data=dto.OpportunityListResponse} "Opportunities retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /opportunities [get]
func (c *ContentController) GetOpportunities(ctx *gin.Context) {
	listingType := ctx.Query("type")

	listings, types, err := c.contentService.GetOpportunities(ctx, listingType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data: dto.OpportunityListResponse{
			Opportunities: listings,
			Types:         types,
		},
		Timestamp: time.Now(),
	})
}

// GetServices lists active services
// @Summary List services
// @Tags content
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Service} "Services retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /services [get]
func (c *ContentController) GetServices(ctx *gin.Context) {
	services, err := c.contentService.GetServices(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      services,
		Timestamp: time.Now(),
	})
}

// GetTechUpdate returns a single tech update (admin)
// @Summary Get tech update
// @Tags admin
// @Security BearerAuth
// @Router /admin/tech-updates/{id} [get]
func (c *ContentController) GetTechUpdate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	update, err := c.contentService.GetTechUpdate(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(update, ""))
}

// GetOpportunity returns a single opportunity listing (admin)
// @Summary Get opportunity
// @Tags admin
// @Security BearerAuth
// @Router /admin/opportunities/{id} [get]
func (c *ContentController) GetOpportunity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	opp, err := c.contentService.GetOpportunity(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(opp, ""))
}

// GetService returns a single service offering (admin)
// @Summary Get service
// @Tags admin
// @Security BearerAuth
// @Router /admin/services/{id} [get]
func (c *ContentController) GetService(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	svc, err := c.contentService.GetService(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(svc, ""))
}

// CreateTechUpdate creates a tech update (admin)
// @Summary Create tech update
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTechUpdateRequest true "Tech update"
// @Success 201 {object} dto.APIResponse{data=models.TechUpdate}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /admin/tech-updates [post]
func (c *ContentController) CreateTechUpdate(ctx *gin.Context) {
	var req dto.CreateTechUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid tech update data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	update := &models.TechUpdate{
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Category:  req.Category,
		ImageURL:  req.ImageURL,
		Published: req.Published,
	}
	if _, err := c.contentService.CreateTechUpdate(ctx, update); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      update,
		Timestamp: time.Now(),
	})
}

// UpdateTechUpdate updates a tech update (admin)
// @Summary Update tech update
// @Tags admin
// @Security BearerAuth
// @Router /admin/tech-updates/{id} [put]
func (c *ContentController) UpdateTechUpdate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CreateTechUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid tech update data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	update := &models.TechUpdate{
		ID:        id,
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Category:  req.Category,
		ImageURL:  req.ImageURL,
		Published: req.Published,
	}
	if err := c.contentService.UpdateTechUpdate(ctx, update); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      update,
		Timestamp: time.Now(),
	})
}

// DeleteTechUpdate deletes a tech update (admin)
// @Summary Delete tech update
// @Tags admin
// @Security BearerAuth
// @Router /admin/tech-updates/{id} [delete]
func (c *ContentController) DeleteTechUpdate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.contentService.DeleteTechUpdate(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Tech update deleted"))
}

// CreateOpportunity creates an opportunity listing (admin)
// @Summary Create opportunity
// @Tags admin
// @Security BearerAuth
// @Router /admin/opportunities [post]
func (c *ContentController) CreateOpportunity(ctx *gin.Context) {
	var req dto.CreateOpportunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid opportunity data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	expiresAt, err := services.ParseExpiry(req.ExpiresAt)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	opp := &models.Opportunity{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Location:    req.Location,
		Company:     req.Company,
		ApplyURL:    req.ApplyURL,
		Active:      req.Active,
		ExpiresAt:   expiresAt,
	}
	if _, err := c.contentService.CreateOpportunity(ctx, opp); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      opp,
		Timestamp: time.Now(),
	})
}

// UpdateOpportunity updates an opportunity listing (admin)
// @Summary Update opportunity
// @Tags admin
// @Security BearerAuth
// @Router /admin/opportunities/{id} [put]
func (c *ContentController) UpdateOpportunity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CreateOpportunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid opportunity data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	expiresAt, err := services.ParseExpiry(req.ExpiresAt)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	opp := &models.Opportunity{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Location:    req.Location,
		Company:     req.Company,
		ApplyURL:    req.ApplyURL,
		Active:      req.Active,
		ExpiresAt:   expiresAt,
	}
	if err := c.contentService.UpdateOpportunity(ctx, opp); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      opp,
		Timestamp: time.Now(),
	})
}

// DeleteOpportunity deletes an opportunity listing (admin)
// @Summary Delete opportunity
// @Tags admin
// @Security BearerAuth
// @Router /admin/opportunities/{id} [delete]
func (c *ContentController) DeleteOpportunity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.contentService.DeleteOpportunity(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Opportunity deleted"))
}

// CreateService creates a service offering (admin)
// @Summary Create service
// @Description Creates a service offering. The icon must be one of the known icon identifiers.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateServiceRequest true "Service"
// @Success 201 {object} dto.APIResponse{data=models.Service}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown icon"
// @Router /admin/services [post]
func (c *ContentController) CreateService(ctx *gin.Context) {
	var req dto.CreateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid service data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	svc := &models.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Features:    req.Features,
		Active:      req.Active,
		OrderIndex:  req.OrderIndex,
	}
	if _, err := c.contentService.CreateService(ctx, svc); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      svc,
		Timestamp: time.Now(),
	})
}

// UpdateService updates a service offering (admin)
// @Summary Update service
// @Tags admin
// @Security BearerAuth
// @Router /admin/services/{id} [put]
func (c *ContentController) UpdateService(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid service data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	svc := &models.Service{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Features:    req.Features,
		Active:      req.Active,
		OrderIndex:  req.OrderIndex,
	}
	if err := c.contentService.UpdateService(ctx, svc); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      svc,
		Timestamp: time.Now(),
	})
}

// DeleteService deletes a service offering (admin)
// @Summary Delete service
// @Tags admin
// @Security BearerAuth
// @Router /admin/services/{id} [delete]
func (c *ContentController) DeleteService(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.contentService.DeleteService(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Service deleted"))
}

// parseIDParam parses the :id path parameter, writing the 400 itself on
// failure.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID").
			WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
