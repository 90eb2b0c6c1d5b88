package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hisashi-abk/cafe-analytics/internal/application/analytics"
)

// MenuItemHandler handles the menu item API endpoints
type MenuItemHandler struct {
	BaseHandler
	products *analytics.ProductService
}

// NewMenuItemHandler creates a new MenuItemHandler
func NewMenuItemHandler(products *analytics.ProductService) *MenuItemHandler {
	return &MenuItemHandler{products: products}
}

// RegisterRoutes registers menu item routes
func (h *MenuItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	menuItems := rg.Group("/menu-items")
	{
		menuItems.GET("", h.ListMenuItems)
		menuItems.GET("/:id", h.GetMenuItem)
	}
}

// ListMenuItems returns the full menu with category names
func (h *MenuItemHandler) ListMenuItems(c *gin.Context) {
	items, err := h.products.GetMenuItems(c.Request.Context())
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, items)
}

// GetMenuItem returns a single menu item
func (h *MenuItemHandler) GetMenuItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.Error(c, http.StatusBadRequest, "Invalid menu item id")
		return
	}

	item, err := h.products.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, item)
}
