package handlers

import (
	"net/http"
	"strconv"

	"github.com/Ashik0101/food-delivery-app/config"
	"github.com/Ashik0101/food-delivery-app/models"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ── Restaurant Management ────────────────────────────────────────────────────

type MenuItemPayload struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Image       string   `json:"image"`
}

type AddRestaurantRequest struct {
	Name    string            `json:"name" binding:"required"`
	Address AddressPayload    `json:"address" binding:"required"`
	Menu    []MenuItemPayload `json:"menu" binding:"dive"`
}

// AddRestaurant persists a restaurant with its initial menu
func AddRestaurant(c *gin.Context) {
	var req AddRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu := make([]models.MenuItem, 0, len(req.Menu))
	for _, item := range req.Menu {
		menu = append(menu, models.MenuItem{
			Name:        item.Name,
			Description: item.Description,
			Price:       *item.Price,
			Image:       item.Image,
		})
	}

	restaurant := models.Restaurant{
		Name:    req.Name,
		Address: req.Address.toModel(),
		Menu:    menu,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add restaurant"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant added successfully", "restaurant": restaurant})
}

// ListRestaurants returns restaurants page by page
func ListRestaurants(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	var total int64
	config.DB.Model(&models.Restaurant{}).Count(&total)

	var restaurants []models.Restaurant
	config.DB.Preload("Menu").
		Offset((page - 1) * limit).
		Limit(limit).
		Order("id").
		Find(&restaurants)

	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"total":       total,
		"page":        page,
		"limit":       limit,
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant with its menu
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Preload("Menu").First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for this ID"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetMenu returns the menu for a specific restaurant
func GetMenu(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Preload("Menu").First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for this ID"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(restaurant.Menu),
		"menu":       restaurant.Menu,
	})
}

// ── Menu Management ─────────────────────────────────────────────────────────

// Unlike the items accepted at restaurant creation, an item added later
// must carry an image reference.
type AddMenuItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Image       string   `json:"image" binding:"required"`
}

// AddMenuItem appends a new item to the restaurant's menu
func AddMenuItem(c *gin.Context) {
	var req AddMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for this ID"})
		return
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        *req.Price,
		Image:        req.Image,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// RemoveMenuItem deletes a menu item by id. Removing an id that is not on
// the menu is a no-op, not an error.
func RemoveMenuItem(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for this ID"})
		return
	}

	if err := config.DB.
		Where("restaurant_id = ? AND id = ?", restaurant.ID, c.Param("menuId")).
		Delete(&models.MenuItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}

	config.DB.Preload("Menu").First(&restaurant, restaurant.ID)
	c.JSON(http.StatusAccepted, gin.H{"message": "Menu item deleted", "restaurant": restaurant})
}
