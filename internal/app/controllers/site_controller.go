package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/app/services"
	"github.com/hexadigitall/platform/internal/middleware"
)

// SiteController handles the public website endpoints: contact form,
// newsletter subscription, and analytics event tracking.
type SiteController struct {
	contactService   *services.ContactService
	analyticsService *services.AnalyticsService
	logger           zerolog.Logger
}

// NewSiteController creates a new SiteController
func NewSiteController(contactService *services.ContactService, analyticsService *services.AnalyticsService, logger zerolog.Logger) *SiteController {
	return &SiteController{
		contactService:   contactService,
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// SubmitContactForm forwards a contact-form submission
// @Summary Submit contact form
// @Tags site
// @Accept json
// @Produce json
// @Param request body dto.ContactFormRequest true "Contact form"
// @Success 200 {object} dto.APIResponse
// @Router /contact [post]
func (c *SiteController) SubmitContactForm(ctx *gin.Context) {
	var req dto.ContactFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.contactService.SubmitContactForm(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Message received"))
}

// SubscribeNewsletter subscribes an email address to the newsletter
// @Summary Subscribe to newsletter
// @Tags site
// @Accept json
// @Produce json
// @Param request body dto.NewsletterRequest true "Subscription"
// @Success 200 {object} dto.APIResponse
// @Router /newsletter [post]
func (c *SiteController) SubscribeNewsletter(ctx *gin.Context) {
	var req dto.NewsletterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.contactService.SubscribeNewsletter(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Subscribed"))
}

// TrackEvent records an analytics event
// @Summary Track analytics event
// @Tags site
// @Accept json
// @Produce json
// @Param request body dto.TrackEventRequest true "Event"
// @Success 202 {object} dto.APIResponse
// @Router /events [post]
func (c *SiteController) TrackEvent(ctx *gin.Context) {
	var req dto.TrackEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.analyticsService.Track(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusAccepted, dto.NewMessageResponse("Event recorded"))
}
