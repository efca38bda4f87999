package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pipeworks/pipeadmin/internal/domain/items"
)

func (h *Handler) ListItems(c *gin.Context) {
	var f items.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Message: err.Error()})
		return
	}
	list := items.Apply(h.items.List(), f)
	c.JSON(http.StatusOK, gin.H{"items": list, "total": len(list)})
}

func (h *Handler) LowStockItems(c *gin.Context) {
	list := h.items.LowStock()
	c.JSON(http.StatusOK, gin.H{"items": list, "total": len(list)})
}

func (h *Handler) GetItem(c *gin.Context) {
	it, err := h.items.Get(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h *Handler) CreateItem(c *gin.Context) {
	var data items.FormData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item payload", Message: err.Error()})
		return
	}
	it := h.items.Create(data)
	h.log.Info("item created", "id", it.ID, "name", it.Name)
	c.JSON(http.StatusCreated, it)
}

func (h *Handler) UpdateItem(c *gin.Context) {
	var data items.FormData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item payload", Message: err.Error()})
		return
	}
	it, err := h.items.Update(c.Param("item_id"), data)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	if err := h.items.Delete(c.Param("item_id")); err != nil {
		if errors.Is(err, items.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found", Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete item", Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
