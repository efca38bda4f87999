package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pipeworks/pipeadmin/internal/domain/items"
	"github.com/pipeworks/pipeadmin/internal/domain/orders"
)

// InventoryExcel writes the inventory snapshot to an .xlsx workbook and
// returns the content plus a timestamped filename.
func InventoryExcel(list []items.Item, now time.Time) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"item_id",
		"name",
		"category",
		"diameter_mm",
		"length_m",
		"price",
		"stock_quantity",
		"minimum_stock",
		"low_stock",
		"status",
		"supplier",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, it := range list {
		excelRow := []interface{}{
			it.ID,
			it.Name,
			string(it.Category),
			it.Diameter,
			it.Length,
			it.Price,
			it.StockQuantity,
			it.MinimumStock,
			it.LowStock(),
			string(it.Status),
			it.Supplier,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, "", fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, "", fmt.Errorf("write row: %w", err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}

	fileName := fmt.Sprintf("inventory_%s.xlsx", now.Format("20060102_150405"))
	return buf, fileName, nil
}

// OrdersExcel writes the order list to an .xlsx workbook, one row per
// order, mirroring the PDF report columns.
func OrdersExcel(list []orders.Order, now time.Time) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"order_number",
		"customer",
		"company",
		"items",
		"status",
		"priority",
		"payment_status",
		"subtotal",
		"tax",
		"shipping_cost",
		"discount",
		"total_amount",
		"created_at",
		"assigned_to",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, o := range list {
		excelRow := []interface{}{
			o.OrderNumber,
			o.Customer.Name,
			o.Customer.Company,
			len(o.Items),
			string(o.Status),
			string(o.Priority),
			string(o.PaymentStatus),
			o.Subtotal,
			o.Tax,
			o.ShippingCost,
			o.Discount,
			o.TotalAmount,
			o.CreatedAt.Format("2006-01-02"),
			o.AssignedTo,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, "", fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, "", fmt.Errorf("write row: %w", err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}

	fileName := fmt.Sprintf("orders_%s.xlsx", now.Format("20060102_150405"))
	return buf, fileName, nil
}
