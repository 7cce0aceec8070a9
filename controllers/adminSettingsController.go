package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/models"
)

func AdminGetSettings(ctx *gin.Context) {
	var settings models.StoreSettings
	if err := backendFor(ctx).Get("/settings/", &settings); err != nil {
		respondWithError(ctx, statusFromError(err), "Unable to fetch settings", err)
		return
	}

	ctx.JSON(http.StatusOK, settings)
}

func AdminUpdateSettings(ctx *gin.Context) {
	var update models.SettingsUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var settings models.StoreSettings
	if err := backendFor(ctx).Put("/settings/", update, &settings); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	// Storefront totals pick the change up once the cached copy expires.
	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Settings updated successfully.",
		"settings": settings,
	})
}
