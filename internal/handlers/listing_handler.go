package handlers

import (
	"net/http"

	"jobportal_backend/internal/query"
	"jobportal_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ListingHandler serves the public board: job listing, filter facets
// and the company directory.
type ListingHandler struct {
	*BaseHandler
	listingService services.ListingService
	profileService services.ProfileService
}

func NewListingHandler(base *BaseHandler, listingService services.ListingService, profileService services.ProfileService) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
		profileService: profileService,
	}
}

func (h *ListingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.ListJobs)
	rg.GET("/jobs/facets", h.Facets)
	rg.GET("/companies", h.ListCompanies)
	rg.GET("/companies/:id", h.CompanyDetail)
}

func (h *ListingHandler) ListJobs(c *gin.Context) {
	params := query.ParamsFromValues(c.Request.URL.Query())

	resp, appErr := h.listingService.ListJobs(c.Request.Context(), params)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ListingHandler) Facets(c *gin.Context) {
	resp, appErr := h.listingService.Facets(c.Request.Context())
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ListingHandler) ListCompanies(c *gin.Context) {
	params := query.ParamsFromValues(c.Request.URL.Query())

	resp, appErr := h.listingService.ListCompanies(c.Request.Context(), params)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ListingHandler) CompanyDetail(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	resp, appErr := h.profileService.CompanyDetail(c.Request.Context(), id)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
