package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/models"
	"github.com/maint-tn/maint-gateway/utils"
)

const msgFailedToSaveCart = "Unable to save cart"

func cartResponse(ctx *gin.Context, items []models.CartItem) gin.H {
	return gin.H{
		"items":  items,
		"totals": deps.Cart.TotalsFor(ctx.Request.Context(), items),
	}
}

func GetCart(ctx *gin.Context) {
	cartID := utils.CartID(ctx)
	items := deps.Cart.Items(cartID)
	ctx.JSON(http.StatusOK, cartResponse(ctx, items))
}

// AddToCart puts a product in the visitor's cart; adding a product already
// present merges into the existing line.
func AddToCart(ctx *gin.Context) {
	var payload struct {
		Product  models.Product `json:"product" binding:"required"`
		Quantity int            `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	cartID := utils.CartID(ctx)
	items, err := deps.Cart.AddItem(cartID, payload.Product, payload.Quantity)
	if err != nil {
		log.Println("Failed to save cart:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCart)
		return
	}

	response := cartResponse(ctx, items)
	response["message"] = payload.Product.Name + " added to cart"
	ctx.JSON(http.StatusOK, response)
}

// UpdateCartItem sets a line's quantity. Zero or below removes the line.
func UpdateCartItem(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	cartID := utils.CartID(ctx)
	items, err := deps.Cart.UpdateQuantity(cartID, productID, payload.Quantity)
	if err != nil {
		log.Println("Failed to save cart:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCart)
		return
	}

	ctx.JSON(http.StatusOK, cartResponse(ctx, items))
}

func RemoveCartItem(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	cartID := utils.CartID(ctx)
	items, err := deps.Cart.RemoveItem(cartID, productID)
	if err != nil {
		log.Println("Failed to save cart:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCart)
		return
	}

	ctx.JSON(http.StatusOK, cartResponse(ctx, items))
}

func ClearCart(ctx *gin.Context) {
	cartID := utils.CartID(ctx)
	if err := deps.Cart.Clear(cartID); err != nil {
		log.Println("Failed to clear cart:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCart)
		return
	}
	ctx.JSON(http.StatusOK, cartResponse(ctx, nil))
}
