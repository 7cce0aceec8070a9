package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/models"
	"github.com/maint-tn/maint-gateway/utils"
)

type checkoutForm struct {
	FullName      string `json:"fullName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city" binding:"required"`
	ZipCode       string `json:"zipCode"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// Checkout turns the visitor's cart into a backend order. Line prices use the
// discounted price when present; the backend recomputes shipping and tax from
// the store settings. A successful order clears the cart.
func Checkout(ctx *gin.Context) {
	var form checkoutForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	cartID := utils.CartID(ctx)
	items := deps.Cart.Items(cartID)
	if len(items) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
		return
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.UnitPrice(),
			Quantity:  item.Quantity,
		})
	}

	orderData := models.OrderCreate{
		Items:         orderItems,
		Username:      form.FullName,
		Email:         form.Email,
		Telephone:     form.Phone,
		Location:      strings.TrimSpace(fmt.Sprintf("%s, %s %s", form.Address, form.City, form.ZipCode)),
		PaymentMethod: form.PaymentMethod,
	}

	var order models.Order
	if err := backendFor(ctx).Post("/vetrine/orders", orderData, &order); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	if err := deps.Cart.Clear(cartID); err != nil {
		log.Println("Failed to clear cart after checkout:", err)
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order created successfully.",
		"order":   order,
	})
}

// GetOrderByCode backs the confirmation and account order pages.
func GetOrderByCode(ctx *gin.Context) {
	code := ctx.Param("code")

	var order models.Order
	if err := backendFor(ctx).Get("/vetrine/orders/orderCode/"+code, &order); err != nil {
		sendErrorResponse(ctx, statusFromError(err), err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"order": order})
}
