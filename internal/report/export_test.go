package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipeworks/pipeadmin/internal/domain/items"
	"github.com/pipeworks/pipeadmin/internal/domain/orders"
	"github.com/pipeworks/pipeadmin/internal/domain/staff"
)

func testExporter() *Exporter {
	e := NewExporter("Pipes Manufacturing")
	e.now = func() time.Time { return time.Date(2024, 1, 16, 14, 30, 0, 0, time.UTC) }
	return e
}

func TestOrdersPDF(t *testing.T) {
	list := []orders.Order{
		{
			OrderNumber: "ORD-2024-001",
			Customer:    orders.Customer{Name: "John Smith", Company: "ABC Construction Ltd."},
			Status:      orders.StatusProcessing,
			Priority:    orders.PriorityHigh,
			TotalAmount: 2520.75, PaymentStatus: orders.PaymentPaid,
			CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	err := testExporter().Orders(&buf, list, Options{IncludeStats: true, DateFrom: "2024-01-01", DateTo: "2024-01-16"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestOrdersPDFEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	err := testExporter().Orders(&buf, nil, Options{IncludeStats: true})
	require.NoError(t, err, "zero records still render a valid head-only document")
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestOrdersPDFPaginates(t *testing.T) {
	var list []orders.Order
	for i := 0; i < 120; i++ {
		list = append(list, orders.Order{
			OrderNumber: "ORD-2024-001",
			Customer:    orders.Customer{Name: "John Smith"},
			Status:      orders.StatusPending,
			Priority:    orders.PriorityLow,
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		})
	}

	var small, large bytes.Buffer
	require.NoError(t, testExporter().Orders(&small, list[:1], Options{}))
	require.NoError(t, testExporter().Orders(&large, list, Options{}))
	assert.Greater(t, large.Len(), small.Len())
}

func TestStaffPDFWithAttendance(t *testing.T) {
	members := []staff.Member{
		{ID: "s1", EmployeeID: "EMP001", FirstName: "John", LastName: "Wilson",
			Status: staff.StatusActive, Department: staff.DeptProduction, HireDate: "2022-03-15"},
	}
	records := []staff.AttendanceRecord{
		{StaffID: "s1", Date: "2024-01-16", Status: staff.AttPresent, TotalHours: 8},
	}

	var buf bytes.Buffer
	err := testExporter().Staff(&buf, members, records, Options{IncludeStats: true})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestInventoryExcel(t *testing.T) {
	now := time.Date(2024, 1, 16, 14, 30, 5, 0, time.UTC)
	buf, name, err := InventoryExcel([]items.Item{
		{ID: "1", Name: "Steel Pipe Standard", Category: items.CategorySteel, StockQuantity: 150, MinimumStock: 20},
	}, now)
	require.NoError(t, err)
	assert.Equal(t, "inventory_20240116_143005.xlsx", name)
	assert.NotZero(t, buf.Len())
}

func TestOrdersExcel(t *testing.T) {
	now := time.Date(2024, 1, 16, 14, 30, 5, 0, time.UTC)
	buf, name, err := OrdersExcel([]orders.Order{
		{OrderNumber: "ORD-2024-001", Customer: orders.Customer{Name: "John Smith"},
			CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}, now)
	require.NoError(t, err)
	assert.Equal(t, "orders_20240116_143005.xlsx", name)
	assert.NotZero(t, buf.Len())
}
