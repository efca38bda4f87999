package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipeworks/pipeadmin/internal/domain/items"
	"github.com/pipeworks/pipeadmin/internal/domain/orders"
	"github.com/pipeworks/pipeadmin/internal/domain/staff"
	"github.com/pipeworks/pipeadmin/internal/report"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	itemsRepo := items.NewRepo()
	ordersRepo := orders.NewRepo()
	staffRepo := staff.NewRepo(8)

	itemsRepo.Seed([]items.Item{
		{ID: "i1", Name: "Steel Pipe Standard", Category: items.CategorySteel,
			Price: 45.50, StockQuantity: 15, MinimumStock: 20, Status: items.StatusActive},
		{ID: "i2", Name: "PVC Pipe Residential", Category: items.CategoryPVC,
			Price: 12.75, StockQuantity: 300, MinimumStock: 50, Status: items.StatusActive},
	})
	ordersRepo.Seed([]orders.Order{
		{ID: "o1", OrderNumber: "ORD-2024-001",
			Customer: orders.Customer{Name: "John Smith", Company: "ABC Construction Ltd."},
			Status:   orders.StatusProcessing, Priority: orders.PriorityHigh,
			PaymentStatus: orders.PaymentPaid, TotalAmount: 2520.75,
			StatusHistory: []orders.StatusHistoryEntry{{ID: "h1", Status: orders.StatusPending}}},
	})
	staffRepo.SeedMembers([]staff.Member{
		{ID: "s1", EmployeeID: "EMP001", FirstName: "John", LastName: "Wilson",
			Status: staff.StatusActive, Department: staff.DeptProduction},
	})

	h := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)),
		itemsRepo, ordersRepo, staffRepo, report.NewExporter("Pipes Manufacturing"))

	r := gin.New()
	h.Register(r.Group("/api"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListOrdersWithSearch(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Orders []orders.Order `json:"orders"`
		Total  int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)

	w = doJSON(t, r, http.MethodGet, "/api/orders?status=delivered", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Total)
}

func TestOrderStatsEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/orders/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var s orders.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Equal(t, 1, s.Total)
	assert.Equal(t, 1, s.Processing)
	assert.Equal(t, 2520.75, s.TotalRevenue)
}

func TestCreateOrderValidation(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{"customer": gin.H{"name": "A"}})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var e ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	assert.Equal(t, "Invalid order payload", e.Error)
}

func TestCreateOrder(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"customer": gin.H{"name": "Maria Garcia", "company": "XYZ Supply Inc."},
		"items":    []gin.H{{"name": "PVC Pipe Residential", "quantity": 10, "unitPrice": 12.75}},
		"taxRate":  0.08,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var o orders.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &o))
	assert.Equal(t, orders.StatusPending, o.Status)
	assert.Equal(t, orders.PriorityMedium, o.Priority, "priority defaults to medium")
	assert.InDelta(t, 127.5*1.08, o.TotalAmount, 1e-9)
}

func TestUpdateOrderStatusUsesActorHeader(t *testing.T) {
	r := setupRouter(t)

	raw, _ := json.Marshal(gin.H{"status": "shipped", "notes": "dispatched"})
	req := httptest.NewRequest(http.MethodPut, "/api/orders/o1/status", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-User", "Sarah Johnson")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var o orders.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &o))
	assert.Equal(t, orders.StatusShipped, o.Status)
	last := o.StatusHistory[len(o.StatusHistory)-1]
	assert.Equal(t, "Sarah Johnson", last.UpdatedBy)

	w = doJSON(t, r, http.MethodPut, "/api/orders/missing/status", gin.H{"status": "shipped"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBulkOrderActionRejectsUnknownType(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders/bulk", gin.H{
		"type": "explode", "value": "x", "orderIds": []string{"o1"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/orders/bulk", gin.H{
		"type": "assign_to", "value": "Lisa Chen", "orderIds": []string{"o1", "missing"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Updated int `json:"updated"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Updated)
}

func TestLowStockEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/items/low-stock", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []items.Item `json:"items"`
		Total int          `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "i1", resp.Items[0].ID)
}

func TestClockInConflict(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/attendance/clock-in", gin.H{"staffId": "s1", "location": "Factory Floor"})
	require.Equal(t, http.StatusCreated, w.Code)

	var rec staff.AttendanceRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, staff.AttPresent, rec.Status)

	w = doJSON(t, r, http.MethodPost, "/api/attendance/clock-in", gin.H{"staffId": "s1"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/attendance/clock-out", gin.H{"staffId": "s1"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/attendance/clock-out", gin.H{"staffId": "s1"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/attendance/clock-in", gin.H{"staffId": "nobody"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrdersReportDownload(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/reports/orders.pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pdfContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "orders-report-")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestInventoryExcelDownload(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/reports/inventory.xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inventory_")
	assert.NotZero(t, w.Body.Len())
}
