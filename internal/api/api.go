package api

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pipeworks/pipeadmin/internal/domain/items"
	"github.com/pipeworks/pipeadmin/internal/domain/orders"
	"github.com/pipeworks/pipeadmin/internal/domain/staff"
	"github.com/pipeworks/pipeadmin/internal/infra/metrics"
	"github.com/pipeworks/pipeadmin/internal/report"
)

// ErrorResponse is the JSON error shape for every API failure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Handler carries the injected stores and the report exporter.
type Handler struct {
	log      *slog.Logger
	items    *items.Repo
	orders   *orders.Repo
	staff    *staff.Repo
	exporter *report.Exporter
}

func NewHandler(log *slog.Logger, itemsRepo *items.Repo, ordersRepo *orders.Repo, staffRepo *staff.Repo, exporter *report.Exporter) *Handler {
	return &Handler{
		log:      log,
		items:    itemsRepo,
		orders:   ordersRepo,
		staff:    staffRepo,
		exporter: exporter,
	}
}

// Register mounts all API routes on the group.
func (h *Handler) Register(g *gin.RouterGroup) {
	g.Use(countRequests())

	g.GET("/items", h.ListItems)
	g.GET("/items/low-stock", h.LowStockItems)
	g.GET("/items/:item_id", h.GetItem)
	g.POST("/items", h.CreateItem)
	g.PUT("/items/:item_id", h.UpdateItem)
	g.DELETE("/items/:item_id", h.DeleteItem)

	g.GET("/orders", h.ListOrders)
	g.GET("/orders/stats", h.OrderStats)
	g.GET("/orders/:order_id", h.GetOrder)
	g.POST("/orders", h.CreateOrder)
	g.PUT("/orders/:order_id/status", h.UpdateOrderStatus)
	g.PUT("/orders/:order_id/priority", h.UpdateOrderPriority)
	g.PUT("/orders/:order_id/assign", h.AssignOrder)
	g.PUT("/orders/:order_id/payment", h.UpdateOrderPayment)
	g.DELETE("/orders/:order_id", h.DeleteOrder)
	g.POST("/orders/bulk", h.BulkOrderAction)

	g.GET("/staff", h.ListStaff)
	g.GET("/staff/stats", h.StaffStats)
	g.GET("/staff/roles", h.ListRoles)
	g.GET("/staff/:staff_id", h.GetStaff)
	g.GET("/staff/:staff_id/attendance", h.StaffAttendanceSummary)
	g.POST("/staff", h.CreateStaff)
	g.PUT("/staff/:staff_id", h.UpdateStaff)
	g.PUT("/staff/:staff_id/status", h.UpdateStaffStatus)
	g.PUT("/staff/:staff_id/roles", h.AssignStaffRoles)
	g.DELETE("/staff/:staff_id", h.DeleteStaff)
	g.POST("/staff/bulk", h.BulkStaffAction)

	g.GET("/attendance", h.ListAttendance)
	g.POST("/attendance", h.AddAttendanceRecord)
	g.PUT("/attendance/:record_id", h.UpdateAttendanceRecord)
	g.POST("/attendance/clock-in", h.ClockIn)
	g.POST("/attendance/clock-out", h.ClockOut)

	g.GET("/reports/orders.pdf", h.OrdersReportPDF)
	g.GET("/reports/staff.pdf", h.StaffReportPDF)
	g.GET("/reports/inventory.xlsx", h.InventoryExcel)
	g.GET("/reports/orders.xlsx", h.OrdersExcel)
}

func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

// reportOptions reads the shared report query parameters. Stats are
// included unless the caller disables them explicitly.
func reportOptions(c *gin.Context) report.Options {
	opts := report.Options{
		IncludeStats: c.DefaultQuery("includeStats", "true") != "false",
		DateFrom:     c.Query("dateFrom"),
		DateTo:       c.Query("dateTo"),
	}
	return opts
}

func nowUTC() time.Time { return time.Now().UTC() }
