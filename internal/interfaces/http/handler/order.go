package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hisashi-abk/cafe-analytics/internal/application/analytics"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/ordering"
)

// OrderHandler handles the order API endpoints
type OrderHandler struct {
	BaseHandler
	orders *analytics.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *analytics.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
	}
}

// ListOrders returns orders with items, oldest first. The optional
// start_date and end_date parameters bound the window.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter := filterFromQuery(c)
	orders, err := h.orders.GetOrders(c.Request.Context(), ordering.DateRange{
		Start: filter.Start,
		End:   filter.End,
	})
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, orders)
}

// GetOrder returns a single order with its items
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, order)
}
