package report

import (
	"fmt"
	"strconv"

	"github.com/pipeworks/pipeadmin/internal/domain/orders"
	"github.com/pipeworks/pipeadmin/internal/domain/staff"
)

// Cell is one resolved table cell: display text plus an optional fill
// that overrides the stripe background.
type Cell struct {
	Text string
	Fill *RGB
}

type Row []Cell

// Table is a fully resolved data table, ready to draw. Building it is a
// pure step so tests can check row counts and cell fills without parsing
// PDF output.
type Table struct {
	Head   []string
	Widths []float64
	Rows   []Row
}

var ordersHead = []string{
	"Order #", "Customer", "Company", "Items", "Status",
	"Priority", "Total", "Date", "Assigned To",
}

var ordersWidths = []float64{20, 25, 30, 12, 20, 15, 20, 20, 25}

// OrdersTable resolves the orders report table: one row per order, with
// the status and priority cells colored by category.
func OrdersTable(list []orders.Order) Table {
	t := Table{Head: ordersHead, Widths: ordersWidths}
	for _, o := range list {
		assigned := o.AssignedTo
		if assigned == "" {
			assigned = "Unassigned"
		}
		sc := StatusColor(o.Status)
		pc := PriorityColor(o.Priority)
		t.Rows = append(t.Rows, Row{
			{Text: o.OrderNumber},
			{Text: o.Customer.Name},
			{Text: o.Customer.Company},
			{Text: strconv.Itoa(len(o.Items))},
			{Text: formatEnum(string(o.Status)), Fill: &sc},
			{Text: formatEnum(string(o.Priority)), Fill: &pc},
			{Text: formatCurrency(o.TotalAmount)},
			{Text: formatTime(o.CreatedAt)},
			{Text: assigned},
		})
	}
	return t
}

var staffHead = []string{
	"Employee ID", "Name", "Email", "Department", "Role",
	"Job Title", "Salary", "Status", "Hire Date",
}

var staffWidths = []float64{20, 30, 35, 25, 25, 25, 20, 15, 20}

// StaffTable resolves the staff directory table.
func StaffTable(members []staff.Member) Table {
	t := Table{Head: staffHead, Widths: staffWidths}
	for _, m := range members {
		t.Rows = append(t.Rows, Row{
			{Text: m.EmployeeID},
			{Text: m.FirstName + " " + m.LastName},
			{Text: m.Email},
			{Text: formatEnum(string(m.Department))},
			{Text: formatEnum(string(m.Role))},
			{Text: m.JobTitle},
			{Text: formatCurrency(m.Salary)},
			{Text: formatEnum(string(m.Status))},
			{Text: formatDate(m.HireDate)},
		})
	}
	return t
}

var attendanceHead = []string{
	"Employee", "ID", "Days Present", "Days Absent", "Total Hours", "Late Days",
}

var attendanceWidths = []float64{40, 25, 25, 25, 30, 25}

// AttendanceTable rolls attendance records up per staff member, in order
// of each member's first appearance in the record list.
func AttendanceTable(records []staff.AttendanceRecord, members []staff.Member) Table {
	t := Table{Head: attendanceHead, Widths: attendanceWidths}

	byID := make(map[string]staff.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	var order []string
	grouped := map[string][]staff.AttendanceRecord{}
	for _, rec := range records {
		if _, ok := grouped[rec.StaffID]; !ok {
			order = append(order, rec.StaffID)
		}
		grouped[rec.StaffID] = append(grouped[rec.StaffID], rec)
	}

	for _, staffID := range order {
		s := staff.Summarize(staffID, grouped[staffID])
		name, employeeID := "Unknown", "N/A"
		if m, ok := byID[staffID]; ok {
			name = m.FirstName + " " + m.LastName
			employeeID = m.EmployeeID
		}
		t.Rows = append(t.Rows, Row{
			{Text: name},
			{Text: employeeID},
			{Text: strconv.Itoa(s.PresentDays)},
			{Text: strconv.Itoa(s.AbsentDays)},
			{Text: fmt.Sprintf("%.1f", s.TotalHours)},
			{Text: strconv.Itoa(s.LateDays)},
		})
	}
	return t
}

// StatsRow is one label/value pair in the summary block.
type StatsRow struct {
	Label string
	Value string
}

func OrderStatsRows(s orders.Stats) []StatsRow {
	return []StatsRow{
		{"Total Orders", strconv.Itoa(s.Total)},
		{"Pending", strconv.Itoa(s.Pending)},
		{"Processing", strconv.Itoa(s.Processing)},
		{"Shipped", strconv.Itoa(s.Shipped)},
		{"Delivered", strconv.Itoa(s.Delivered)},
		{"Cancelled/Returned", strconv.Itoa(s.Cancelled)},
		{"Total Revenue", formatCurrency(s.TotalRevenue)},
		{"Average Order Value", formatCurrency(s.AverageOrderValue)},
	}
}

func StaffStatsRows(s staff.Stats) []StatsRow {
	return []StatsRow{
		{"Total Staff", strconv.Itoa(s.TotalStaff)},
		{"Active", strconv.Itoa(s.ActiveStaff)},
		{"On Leave", strconv.Itoa(s.OnLeave)},
		{"Departments", strconv.Itoa(s.TotalDepartments)},
		{"New Hires (This Month)", strconv.Itoa(s.NewHires)},
		{"Present Today", strconv.Itoa(s.PresentToday)},
		{"Absent Today", strconv.Itoa(s.AbsentToday)},
		{"Late Today", strconv.Itoa(s.LateToday)},
	}
}
