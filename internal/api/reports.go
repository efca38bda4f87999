package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pipeworks/pipeadmin/internal/domain/orders"
	"github.com/pipeworks/pipeadmin/internal/domain/staff"
	"github.com/pipeworks/pipeadmin/internal/infra/metrics"
	"github.com/pipeworks/pipeadmin/internal/report"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// OrdersReportPDF exports the current order snapshot, optionally
// filtered the same way as the list endpoint.
func (h *Handler) OrdersReportPDF(c *gin.Context) {
	var f orders.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Message: err.Error()})
		return
	}
	list := orders.Apply(h.orders.List(), f)

	var buf bytes.Buffer
	if err := h.exporter.Orders(&buf, list, reportOptions(c)); err != nil {
		h.log.Error("orders report failed", "err", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Report generation failed", Message: err.Error()})
		return
	}
	metrics.ReportsGenerated.WithLabelValues("orders", "pdf").Inc()
	sendFile(c, report.OrdersFilename(nowUTC()), pdfContentType, buf.Bytes())
}

func (h *Handler) StaffReportPDF(c *gin.Context) {
	var f staff.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Message: err.Error()})
		return
	}
	members := staff.Apply(h.staff.List(), f)
	records := h.staff.ListAttendance(staff.AttendanceFilter{
		DateFrom: c.Query("dateFrom"),
		DateTo:   c.Query("dateTo"),
	})

	var buf bytes.Buffer
	if err := h.exporter.Staff(&buf, members, records, reportOptions(c)); err != nil {
		h.log.Error("staff report failed", "err", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Report generation failed", Message: err.Error()})
		return
	}
	metrics.ReportsGenerated.WithLabelValues("staff", "pdf").Inc()
	sendFile(c, report.StaffFilename(nowUTC()), pdfContentType, buf.Bytes())
}

func (h *Handler) InventoryExcel(c *gin.Context) {
	buf, name, err := report.InventoryExcel(h.items.List(), nowUTC())
	if err != nil {
		h.log.Error("inventory export failed", "err", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Export failed", Message: err.Error()})
		return
	}
	metrics.ReportsGenerated.WithLabelValues("inventory", "xlsx").Inc()
	sendFile(c, name, xlsxContentType, buf.Bytes())
}

func (h *Handler) OrdersExcel(c *gin.Context) {
	var f orders.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Message: err.Error()})
		return
	}
	buf, name, err := report.OrdersExcel(orders.Apply(h.orders.List(), f), nowUTC())
	if err != nil {
		h.log.Error("orders export failed", "err", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Export failed", Message: err.Error()})
		return
	}
	metrics.ReportsGenerated.WithLabelValues("orders", "xlsx").Inc()
	sendFile(c, name, xlsxContentType, buf.Bytes())
}

func sendFile(c *gin.Context, name, contentType string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, contentType, data)
}
