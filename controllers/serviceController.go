package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
)

func GetServices(ctx *gin.Context) {
	var services []models.Service
	if err := backendFor(ctx).Get("/service/", &services); err != nil {
		respondWithError(ctx, statusFromError(err), "Unable to fetch services", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"services": services})
}

// GetServiceBySlug returns the service with its comma-separated specialties
// string already split into display tags.
func GetServiceBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	var service models.Service
	if err := backendFor(ctx).Get("/service/slug/"+url.PathEscape(slug), &service); err != nil {
		if api.IsNotFound(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Service not found")
		} else {
			respondWithError(ctx, statusFromError(err), "Unable to retrieve service", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"service":       service,
		"specialtyTags": service.SpecialtyTags(),
	})
}
