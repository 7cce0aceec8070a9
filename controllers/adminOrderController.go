package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
)

var orderCache listCache[models.Order]

var orderStatuses = map[string]bool{
	models.OrderStatusPending:    true,
	models.OrderStatusProcessing: true,
	models.OrderStatusShipped:    true,
	models.OrderStatusDelivered:  true,
}

// AdminGetOrders lists orders with substring search over code, customer name
// and id, plus an optional status filter.
func AdminGetOrders(ctx *gin.Context) {
	var orders []models.Order
	if err := backendFor(ctx).Get("/vetrine/orders", &orders); err != nil {
		respondWithError(ctx, statusFromError(err), "Unable to fetch orders", err)
		return
	}
	orderCache.replace(orders)

	search := ctx.Query("search")
	status := ctx.Query("status")
	visible := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if !matchesSearch(search, order.Code, order.Username, strconv.Itoa(order.ID)) {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		visible = append(visible, order)
	}
	ctx.JSON(http.StatusOK, gin.H{"orders": visible})
}

func AdminGetOrder(ctx *gin.Context) {
	id := ctx.Param("id")

	var order models.Order
	if err := backendFor(ctx).Get("/vetrine/orders/"+id, &order); err != nil {
		if api.IsNotFound(err) {
			sendJSONResponse(ctx, http.StatusNotFound, gin.H{
				"message":  "Order not found",
				"redirect": "/admin/orders",
			})
		} else {
			respondWithError(ctx, statusFromError(err), "Unable to retrieve order", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// AdminUpdateOrderStatus handles the inline status dropdown: the cached row
// is patched before the backend call, and a backend failure leaves the patch
// in place with a notice.
func AdminUpdateOrderStatus(ctx *gin.Context) {
	var statusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&statusData); err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}
	if !orderStatuses[statusData.Status] {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status")
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	orderCache.patch(
		func(order models.Order) bool { return order.ID == id },
		func(order *models.Order) { order.Status = statusData.Status },
	)

	payload := map[string]string{"status": statusData.Status}
	if err := backendFor(ctx).Put("/vetrine/orders/orderStatus/"+strconv.Itoa(id), payload, nil); err != nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Order status updated locally.",
			"notice":  err.Error(),
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order status updated successfully."})
}

func AdminDeleteOrder(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	orderCache.remove(func(order models.Order) bool { return order.ID == id })

	if err := backendFor(ctx).Delete("/vetrine/orders/"+strconv.Itoa(id), nil); err != nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Order removed from list.",
			"notice":  err.Error(),
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}
