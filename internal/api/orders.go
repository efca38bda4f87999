package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pipeworks/pipeadmin/internal/domain/orders"
)

func (h *Handler) ListOrders(c *gin.Context) {
	var f orders.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Message: err.Error()})
		return
	}
	if term := c.Query("search"); term != "" {
		f = orders.Search(term)
	}
	list := orders.Apply(h.orders.List(), f)
	c.JSON(http.StatusOK, gin.H{"orders": list, "total": len(list)})
}

func (h *Handler) OrderStats(c *gin.Context) {
	c.JSON(http.StatusOK, orders.ComputeStats(h.orders.List()))
}

func (h *Handler) GetOrder(c *gin.Context) {
	o, err := h.orders.Get(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

type createOrderRequest struct {
	Customer orders.Customer     `json:"customer" binding:"required"`
	Items    []orders.OrderItem  `json:"items" binding:"required,min=1"`
	Priority orders.Priority     `json:"priority"`
	DueDate  string              `json:"dueDate,omitempty"`
	Notes    string              `json:"notes,omitempty"`
	Shipping orders.ShippingInfo `json:"shipping"`
	TaxRate  float64             `json:"taxRate"`
	Discount float64             `json:"discount,omitempty"`
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid order payload", Message: err.Error()})
		return
	}
	if req.Priority == "" {
		req.Priority = orders.PriorityMedium
	}
	o := h.orders.Create(orders.CreateInput{
		Customer: req.Customer,
		Items:    req.Items,
		Priority: req.Priority,
		DueDate:  req.DueDate,
		Notes:    req.Notes,
		Shipping: req.Shipping,
		TaxRate:  req.TaxRate,
		Discount: req.Discount,
		Actor:    actor(c),
	})
	h.log.Info("order created", "orderNumber", o.OrderNumber, "total", o.TotalAmount)
	c.JSON(http.StatusCreated, o)
}

type statusUpdateRequest struct {
	Status orders.Status `json:"status" binding:"required"`
	Notes  string        `json:"notes,omitempty"`
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status payload", Message: err.Error()})
		return
	}
	o, err := h.orders.UpdateStatus(c.Param("order_id"), req.Status, actor(c), req.Notes)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) UpdateOrderPriority(c *gin.Context) {
	var req struct {
		Priority orders.Priority `json:"priority" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid priority payload", Message: err.Error()})
		return
	}
	o, err := h.orders.UpdatePriority(c.Param("order_id"), req.Priority)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) AssignOrder(c *gin.Context) {
	var req struct {
		AssignedTo string `json:"assignedTo" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid assign payload", Message: err.Error()})
		return
	}
	o, err := h.orders.Assign(c.Param("order_id"), req.AssignedTo)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) UpdateOrderPayment(c *gin.Context) {
	var req struct {
		PaymentStatus orders.PaymentStatus `json:"paymentStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid payment payload", Message: err.Error()})
		return
	}
	o, err := h.orders.UpdatePayment(c.Param("order_id"), req.PaymentStatus)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.orders.Delete(c.Param("order_id")); err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found", Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete order", Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type bulkOrderRequest struct {
	Type     string        `json:"type" binding:"required,oneof=update_status assign_to"`
	Value    string        `json:"value" binding:"required"`
	OrderIDs []string      `json:"orderIds" binding:"required,min=1"`
	Status   orders.Status `json:"-"`
}

func (h *Handler) BulkOrderAction(c *gin.Context) {
	var req bulkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid bulk action payload", Message: err.Error()})
		return
	}
	var updated []orders.Order
	switch req.Type {
	case "update_status":
		updated = h.orders.BulkUpdateStatus(req.OrderIDs, orders.Status(req.Value), actor(c))
	case "assign_to":
		updated = h.orders.BulkAssign(req.OrderIDs, req.Value)
	}
	c.JSON(http.StatusOK, gin.H{"orders": updated, "updated": len(updated)})
}

// actor names the mutation author in history entries. There is no auth
// layer; the admin UI sends its display name in a header.
func actor(c *gin.Context) string {
	if v := c.GetHeader("X-Admin-User"); v != "" {
		return v
	}
	return "Admin User"
}
