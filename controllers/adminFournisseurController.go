package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
)

var fournisseurCache listCache[models.Fournisseur]

func AdminGetFournisseurs(ctx *gin.Context) {
	var fournisseurs []models.Fournisseur
	if err := backendFor(ctx).Get("/fournisseur", &fournisseurs); err != nil {
		respondWithError(ctx, statusFromError(err), "Unable to fetch fournisseurs", err)
		return
	}
	fournisseurCache.replace(fournisseurs)

	search := ctx.Query("search")
	visible := make([]models.Fournisseur, 0, len(fournisseurs))
	for _, fournisseur := range fournisseurs {
		if matchesSearch(search, fournisseur.CompanyName, fournisseur.City) {
			visible = append(visible, fournisseur)
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"fournisseurs": visible})
}

func AdminGetFournisseur(ctx *gin.Context) {
	id := ctx.Param("id")

	var fournisseur models.Fournisseur
	if err := backendFor(ctx).Get("/fournisseur/"+id, &fournisseur); err != nil {
		if api.IsNotFound(err) {
			sendJSONResponse(ctx, http.StatusNotFound, gin.H{
				"message":  "Fournisseur not found",
				"redirect": "/admin/fournisseurs",
			})
		} else {
			respondWithError(ctx, statusFromError(err), "Unable to retrieve fournisseur", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, fournisseur)
}

func AdminCreateFournisseur(ctx *gin.Context) {
	var fournisseur models.Fournisseur
	if err := ctx.ShouldBindJSON(&fournisseur); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var created models.Fournisseur
	if err := backendFor(ctx).Post("/fournisseur", fournisseur, &created); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func AdminUpdateFournisseur(ctx *gin.Context) {
	id := ctx.Param("id")

	var fournisseur models.Fournisseur
	if err := ctx.ShouldBindJSON(&fournisseur); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var updated models.Fournisseur
	if err := backendFor(ctx).Put("/fournisseur/"+id, fournisseur, &updated); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func AdminDeleteFournisseur(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid fournisseur ID")
		return
	}

	fournisseurCache.remove(func(fournisseur models.Fournisseur) bool { return fournisseur.ID == id })

	if err := backendFor(ctx).Delete("/fournisseur/"+strconv.Itoa(id), nil); err != nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Fournisseur removed from list.",
			"notice":  err.Error(),
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Fournisseur deleted successfully."})
}
