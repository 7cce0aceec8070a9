package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
)

var productCache listCache[models.Product]

func AdminGetProducts(ctx *gin.Context) {
	var products []models.Product
	if err := backendFor(ctx).Get("/vetrine/products", &products); err != nil {
		respondWithError(ctx, statusFromError(err), "Unable to fetch products", err)
		return
	}
	productCache.replace(products)

	search := ctx.Query("search")
	visible := make([]models.Product, 0, len(products))
	for _, product := range products {
		if matchesSearch(search, product.Name, product.SKU) {
			visible = append(visible, product)
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"products": visible})
}

func AdminGetProduct(ctx *gin.Context) {
	id := ctx.Param("id")

	var product models.Product
	if err := backendFor(ctx).Get("/vetrine/products/"+id, &product); err != nil {
		if api.IsNotFound(err) {
			sendJSONResponse(ctx, http.StatusNotFound, gin.H{
				"message":  "Product not found",
				"redirect": "/admin/products",
			})
		} else {
			respondWithError(ctx, statusFromError(err), "Unable to retrieve product", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func AdminCreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var created models.Product
	if err := backendFor(ctx).Post("/vetrine/products", product, &created); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func AdminUpdateProduct(ctx *gin.Context) {
	id := ctx.Param("id")

	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var updated models.Product
	if err := backendFor(ctx).Put("/vetrine/products/"+id, product, &updated); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func AdminDeleteProduct(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	productCache.remove(func(product models.Product) bool { return product.ID == id })

	if err := backendFor(ctx).Delete("/vetrine/products/"+strconv.Itoa(id), nil); err != nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Product removed from list.",
			"notice":  err.Error(),
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product deleted successfully."})
}
