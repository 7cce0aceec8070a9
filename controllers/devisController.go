package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/models"
	"github.com/maint-tn/maint-gateway/stores"
)

// GetDevisList returns the session's quotations. Fetch failures come back as
// an empty list, not an error banner.
func GetDevisList(ctx *gin.Context) {
	store := stores.NewDevisStore(backendFor(ctx))
	list, err := store.List()
	if err != nil {
		log.Println("Failed to fetch devis:", err)
		list = []models.Devis{}
	}
	ctx.JSON(http.StatusOK, gin.H{"devis": list})
}

// GetDevisByID resolves one quotation. The devis was addressed directly by
// id, so absence is reported, with a redirect hint to the list.
func GetDevisByID(ctx *gin.Context) {
	store := stores.NewDevisStore(backendFor(ctx))
	devis, err := store.GetByID(ctx.Param("id"))
	if err != nil || devis == nil {
		sendJSONResponse(ctx, http.StatusNotFound, gin.H{
			"message":  "Devis not found",
			"redirect": "/account/devis",
		})
		return
	}
	ctx.JSON(http.StatusOK, devis)
}

// CreateDevis posts the request then responds with the refetched list.
func CreateDevis(ctx *gin.Context) {
	var request models.DevisRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	store := stores.NewDevisStore(backendFor(ctx))
	list, err := store.Add(request)
	if err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Devis request created successfully.",
		"devis":   list,
	})
}

func UpdateDevis(ctx *gin.Context) {
	var updates map[string]any
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	store := stores.NewDevisStore(backendFor(ctx))
	if err := store.Update(ctx.Param("id"), updates); err != nil {
		if errors.Is(err, stores.ErrUpdateNotSupported) {
			sendErrorResponse(ctx, http.StatusNotImplemented, err.Error())
			return
		}
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Devis updated successfully."})
}
