package handlers

import (
	"net/http"

	"github.com/Ashik0101/food-delivery-app/config"
	"github.com/Ashik0101/food-delivery-app/middleware"
	"github.com/Ashik0101/food-delivery-app/models"
	"github.com/Ashik0101/food-delivery-app/statemachine"

	"github.com/gin-gonic/gin"
)

type OrderItemPayload struct {
	Name     string   `json:"name" binding:"required"`
	Price    *float64 `json:"price" binding:"required,gte=0"`
	Quantity int      `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	Restaurant      uint               `json:"restaurant" binding:"required"`
	Items           []OrderItemPayload `json:"items" binding:"required,min=1,dive"`
	TotalPrice      *float64           `json:"totalPrice" binding:"required,gte=0"`
	DeliveryAddress AddressPayload     `json:"deliveryAddress" binding:"required"`
	Status          models.OrderStatus `json:"status" binding:"required,orderstatus"`
}

// PlaceOrder creates a new order owned by the authenticated user. The
// owner comes from the bearer token, not from the request body. Line items
// and the total price are trusted as sent.
func PlaceOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			Name:     item.Name,
			Price:    *item.Price,
			Quantity: item.Quantity,
		})
	}

	order := models.Order{
		UserID:          userID,
		RestaurantID:    req.Restaurant,
		Items:           items,
		TotalPrice:      *req.TotalPrice,
		DeliveryAddress: req.DeliveryAddress.toModel(),
		Status:          req.Status,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "order": order})
}

// GetOrder returns an order with its user and restaurant references
// resolved to full records
func GetOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.
		Preload("Items").
		Preload("User").
		Preload("Restaurant").
		Preload("Restaurant.Menu").
		First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required,orderstatus"`
}

// UpdateOrderStatus moves an order one step forward through its lifecycle.
// Only the owning user may change status; anyone else gets a rejection and
// the stored status is untouched.
func UpdateOrderStatus(c *gin.Context) {
	callerID := middleware.GetUserID(c)

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.UserID != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": string(prevStatus),
		"current_status":  string(req.Status),
	})
}
