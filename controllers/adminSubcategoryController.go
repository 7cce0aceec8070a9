package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
)

var subcategoryCache listCache[models.SubCategory]

func AdminGetSubcategories(ctx *gin.Context) {
	path := "/vetrine/subcategories"
	if categoryID := ctx.Query("categoryId"); categoryID != "" {
		path = "/vetrine/categories/" + categoryID + "/subcategories"
	}

	var subcategories []models.SubCategory
	if err := backendFor(ctx).Get(path, &subcategories); err != nil {
		respondWithError(ctx, statusFromError(err), "Unable to fetch subcategories", err)
		return
	}
	subcategoryCache.replace(subcategories)

	search := ctx.Query("search")
	visible := make([]models.SubCategory, 0, len(subcategories))
	for _, subcategory := range subcategories {
		if matchesSearch(search, subcategory.Name) {
			visible = append(visible, subcategory)
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"subcategories": visible})
}

func AdminGetSubcategory(ctx *gin.Context) {
	id := ctx.Param("id")

	var subcategory models.SubCategory
	if err := backendFor(ctx).Get("/vetrine/subcategories/"+id, &subcategory); err != nil {
		if api.IsNotFound(err) {
			sendJSONResponse(ctx, http.StatusNotFound, gin.H{
				"message":  "Subcategory not found",
				"redirect": "/admin/subcategories",
			})
		} else {
			respondWithError(ctx, statusFromError(err), "Unable to retrieve subcategory", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, subcategory)
}

func AdminCreateSubcategory(ctx *gin.Context) {
	var subcategory models.SubCategory
	if err := ctx.ShouldBindJSON(&subcategory); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var created models.SubCategory
	if err := backendFor(ctx).Post("/vetrine/subcategories", subcategory, &created); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func AdminUpdateSubcategory(ctx *gin.Context) {
	id := ctx.Param("id")

	var subcategory models.SubCategory
	if err := ctx.ShouldBindJSON(&subcategory); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var updated models.SubCategory
	if err := backendFor(ctx).Put("/vetrine/subcategories/"+id, subcategory, &updated); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func AdminDeleteSubcategory(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid subcategory ID")
		return
	}

	subcategoryCache.remove(func(subcategory models.SubCategory) bool { return subcategory.ID == id })

	if err := backendFor(ctx).Delete("/vetrine/subcategories/"+strconv.Itoa(id), nil); err != nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Subcategory removed from list.",
			"notice":  err.Error(),
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Subcategory deleted successfully."})
}
