// Package seed loads the demo dataset the dashboard ships with, so the
// API is usable out of the box without a database.
package seed

import (
	"time"

	"github.com/pipeworks/pipeadmin/internal/domain/items"
	"github.com/pipeworks/pipeadmin/internal/domain/orders"
	"github.com/pipeworks/pipeadmin/internal/domain/staff"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func ts(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// Load seeds all three stores.
func Load(itemsRepo *items.Repo, ordersRepo *orders.Repo, staffRepo *staff.Repo) {
	itemsRepo.Seed(Items())
	ordersRepo.Seed(Orders())
	staffRepo.SeedRoles(Roles())
	staffRepo.SeedMembers(Staff())
	staffRepo.SeedAttendance(Attendance())
}

func Items() []items.Item {
	return []items.Item{
		{
			ID: "1", Name: "Steel Pipe Standard",
			Description: "High-grade steel pipe for industrial use",
			Category:    items.CategorySteel,
			Diameter:    25, Length: 6, Thickness: 2.5,
			Price: 45.50, StockQuantity: 150, MinimumStock: 20,
			Specifications: items.Specifications{
				Material: "Carbon Steel", Grade: "Grade A",
				Pressure: "300 PSI", Temperature: "-20°C to 120°C",
			},
			Supplier:  "SteelCorp Industries",
			CreatedAt: day("2024-01-10"), UpdatedAt: day("2024-01-15"),
			Status: items.StatusActive,
		},
		{
			ID: "2", Name: "PVC Pipe Residential",
			Description: "Lightweight PVC pipe for residential plumbing",
			Category:    items.CategoryPVC,
			Diameter:    32, Length: 4, Thickness: 3.0,
			Price: 12.75, StockQuantity: 300, MinimumStock: 50,
			Specifications: items.Specifications{
				Material: "PVC", Pressure: "200 PSI", Temperature: "0°C to 60°C",
			},
			Supplier:  "PlasticPro Ltd",
			CreatedAt: day("2024-01-08"), UpdatedAt: day("2024-01-12"),
			Status: items.StatusActive,
		},
		{
			ID: "3", Name: "Copper Pipe Premium",
			Description: "Premium copper pipe for heating systems",
			Category:    items.CategoryCopper,
			Diameter:    15, Length: 3, Thickness: 1.0,
			Price: 28.90, StockQuantity: 75, MinimumStock: 15,
			Specifications: items.Specifications{
				Material: "Copper", Grade: "Type L",
				Pressure: "400 PSI", Temperature: "-40°C to 200°C",
			},
			Supplier:  "CopperWorks Inc",
			CreatedAt: day("2024-01-05"), UpdatedAt: day("2024-01-10"),
			Status: items.StatusActive,
		},
	}
}

func Orders() []orders.Order {
	return []orders.Order{
		{
			ID: "1", OrderNumber: "ORD-2024-001",
			Customer: orders.Customer{
				ID: "cust1", Name: "John Smith", Email: "john@abcconstruction.com",
				Phone: "+1-555-0123", Company: "ABC Construction Ltd.",
				Address: orders.Address{Street: "123 Business Ave", City: "New York", State: "NY", ZipCode: "10001", Country: "USA"},
			},
			Items: []orders.OrderItem{{
				ID: "item1", ItemID: "1", Name: "Steel Pipe Standard", Category: "steel",
				Diameter: 25, Length: 6, Quantity: 50, UnitPrice: 45.50, TotalPrice: 2275.00,
				Specifications: orders.Specifications{Material: "Carbon Steel", Grade: "Grade A", Pressure: "300 PSI"},
			}},
			Status:   orders.StatusProcessing,
			Priority: orders.PriorityHigh, PaymentStatus: orders.PaymentPaid,
			TotalAmount: 2520.75, Subtotal: 2275.00, Tax: 195.75, ShippingCost: 50.00,
			Shipping: orders.ShippingInfo{
				Method: "Standard Delivery", Carrier: "FedEx", TrackingNumber: "FX123456789",
				EstimatedDelivery: "2024-01-25",
				Address:           orders.Address{Street: "456 Construction Site Rd", City: "Brooklyn", State: "NY", ZipCode: "11201", Country: "USA"},
				Cost:              50.00,
			},
			Notes:     "Customer requested expedited processing",
			CreatedAt: day("2024-01-15"), UpdatedAt: day("2024-01-16"), DueDate: "2024-01-22",
			StatusHistory: []orders.StatusHistoryEntry{
				{ID: "hist1", Status: orders.StatusPending, Timestamp: ts("2024-01-15T09:00:00Z"), UpdatedBy: "System", Notes: "Order created"},
				{ID: "hist2", Status: orders.StatusConfirmed, Timestamp: ts("2024-01-15T10:30:00Z"), UpdatedBy: "Sarah Johnson", Notes: "Payment confirmed, order approved"},
				{ID: "hist3", Status: orders.StatusProcessing, Timestamp: ts("2024-01-16T08:00:00Z"), UpdatedBy: "Mike Wilson", Notes: "Started manufacturing process"},
			},
			AssignedTo: "Mike Wilson",
			Tags:       []string{"urgent", "large-order"},
		},
		{
			ID: "2", OrderNumber: "ORD-2024-002",
			Customer: orders.Customer{
				ID: "cust2", Name: "Maria Garcia", Email: "maria@xyzsupply.com",
				Phone: "+1-555-0456", Company: "XYZ Supply Inc.",
				Address: orders.Address{Street: "789 Industrial Blvd", City: "Los Angeles", State: "CA", ZipCode: "90210", Country: "USA"},
			},
			Items: []orders.OrderItem{{
				ID: "item2", ItemID: "2", Name: "PVC Pipe Residential", Category: "pvc",
				Diameter: 32, Length: 4, Quantity: 100, UnitPrice: 12.75, TotalPrice: 1275.00,
				Specifications: orders.Specifications{Material: "PVC", Pressure: "200 PSI"},
			}},
			Status:   orders.StatusShipped,
			Priority: orders.PriorityMedium, PaymentStatus: orders.PaymentPaid,
			TotalAmount: 1377.00, Subtotal: 1275.00, Tax: 102.00, ShippingCost: 0.00,
			Shipping: orders.ShippingInfo{
				Method: "Express Delivery", Carrier: "UPS", TrackingNumber: "UPS987654321",
				EstimatedDelivery: "2024-01-18",
				Address:           orders.Address{Street: "321 Warehouse District", City: "Long Beach", State: "CA", ZipCode: "90802", Country: "USA"},
			},
			CreatedAt: day("2024-01-12"), UpdatedAt: day("2024-01-16"), DueDate: "2024-01-20",
			StatusHistory: []orders.StatusHistoryEntry{
				{ID: "hist4", Status: orders.StatusPending, Timestamp: ts("2024-01-12T14:00:00Z"), UpdatedBy: "System", Notes: "Order created"},
				{ID: "hist5", Status: orders.StatusConfirmed, Timestamp: ts("2024-01-12T15:20:00Z"), UpdatedBy: "Tom Brown", Notes: "Payment verified"},
				{ID: "hist6", Status: orders.StatusProcessing, Timestamp: ts("2024-01-13T09:00:00Z"), UpdatedBy: "Lisa Chen", Notes: "In production queue"},
				{ID: "hist7", Status: orders.StatusQualityCheck, Timestamp: ts("2024-01-15T11:00:00Z"), UpdatedBy: "Quality Team", Notes: "Passed quality inspection"},
				{ID: "hist8", Status: orders.StatusShipped, Timestamp: ts("2024-01-16T16:30:00Z"), UpdatedBy: "Shipping Dept", Notes: "Package dispatched via UPS"},
			},
			AssignedTo: "Lisa Chen",
			Tags:       []string{"repeat-customer"},
		},
		{
			ID: "3", OrderNumber: "ORD-2024-003",
			Customer: orders.Customer{
				ID: "cust3", Name: "Robert Johnson", Email: "robert@buildtech.com",
				Phone: "+1-555-0789", Company: "BuildTech Solutions",
				Address: orders.Address{Street: "456 Tech Park Dr", City: "Austin", State: "TX", ZipCode: "73301", Country: "USA"},
			},
			Items: []orders.OrderItem{{
				ID: "item3", ItemID: "3", Name: "Copper Pipe Premium", Category: "copper",
				Diameter: 15, Length: 3, Quantity: 25, UnitPrice: 28.90, TotalPrice: 722.50,
				Specifications: orders.Specifications{Material: "Copper", Grade: "Type L", Pressure: "400 PSI"},
			}},
			Status:   orders.StatusDelivered,
			Priority: orders.PriorityLow, PaymentStatus: orders.PaymentPaid,
			TotalAmount: 787.92, Subtotal: 722.50, Tax: 57.80, ShippingCost: 7.62,
			Shipping: orders.ShippingInfo{
				Method: "Ground Shipping", Carrier: "USPS", TrackingNumber: "USPS456789123",
				EstimatedDelivery: "2024-01-15", ActualDelivery: "2024-01-14",
				Address: orders.Address{Street: "789 Project Site Lane", City: "Round Rock", State: "TX", ZipCode: "78664", Country: "USA"},
				Cost:    7.62,
			},
			CreatedAt: day("2024-01-08"), UpdatedAt: day("2024-01-14"),
			StatusHistory: []orders.StatusHistoryEntry{
				{ID: "hist9", Status: orders.StatusPending, Timestamp: ts("2024-01-08T10:00:00Z"), UpdatedBy: "System", Notes: "Order placed"},
				{ID: "hist10", Status: orders.StatusConfirmed, Timestamp: ts("2024-01-08T11:15:00Z"), UpdatedBy: "Jenny Adams", Notes: "Order confirmed and scheduled"},
				{ID: "hist11", Status: orders.StatusProcessing, Timestamp: ts("2024-01-09T08:30:00Z"), UpdatedBy: "Production Team", Notes: "Manufacturing started"},
				{ID: "hist12", Status: orders.StatusShipped, Timestamp: ts("2024-01-12T14:00:00Z"), UpdatedBy: "Shipping Dept", Notes: "Shipped via USPS Ground"},
				{ID: "hist13", Status: orders.StatusDelivered, Timestamp: ts("2024-01-14T16:45:00Z"), UpdatedBy: "System", Notes: "Package delivered and signed for"},
			},
			AssignedTo: "Jenny Adams",
		},
	}
}

func Roles() []staff.AccessRole {
	return []staff.AccessRole{
		{ID: "role-1", Name: "Administrator", Description: "Full system access", Level: 10,
			CanManageStaff: true, CanViewReports: true, CanModifyInventory: true, CanProcessOrders: true},
		{ID: "role-2", Name: "Production Manager", Description: "Manages production operations", Level: 8,
			CanManageStaff: true, CanViewReports: true, CanModifyInventory: true, CanProcessOrders: true},
		{ID: "role-3", Name: "Quality Inspector", Description: "Quality control and inspection", Level: 6,
			CanViewReports: true},
		{ID: "role-4", Name: "Machine Operator", Description: "Operates manufacturing equipment", Level: 4},
	}
}

func Staff() []staff.Member {
	roles := Roles()
	return []staff.Member{
		{
			ID: "staff-1", EmployeeID: "EMP001", FirstName: "John", LastName: "Wilson",
			Email: "john.wilson@company.com", Phone: "+1-555-0101",
			Role: staff.RoleManager, Department: staff.DeptProduction,
			JobTitle: "Production Manager", HireDate: "2022-03-15", Salary: 75000,
			Status:  staff.StatusActive,
			Address: staff.Address{Street: "123 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "USA"},
			EmergencyContact: staff.EmergencyContact{
				Name: "Jane Wilson", Relationship: "Spouse", Phone: "+1-555-0102",
			},
			Shift:        staff.ShiftDay,
			WorkingHours: staff.WorkingHours{StartTime: "08:00", EndTime: "17:00", BreakDuration: 60},
			Roles:        []staff.AccessRole{roles[1]},
			LastLogin:    "2024-01-16T08:30:00Z", IsActive: true,
			CreatedAt: day("2022-03-15"), UpdatedAt: day("2024-01-16"), CreatedBy: "admin",
		},
		{
			ID: "staff-2", EmployeeID: "EMP002", FirstName: "Sarah", LastName: "Johnson",
			Email: "sarah.johnson@company.com", Phone: "+1-555-0201",
			Role: staff.RoleQualityInspector, Department: staff.DeptQualityControl,
			JobTitle: "Senior Quality Inspector", HireDate: "2021-08-20", Salary: 55000,
			Status:  staff.StatusActive,
			Address: staff.Address{Street: "456 Oak Ave", City: "Springfield", State: "IL", ZipCode: "62702", Country: "USA"},
			EmergencyContact: staff.EmergencyContact{
				Name: "Michael Johnson", Relationship: "Brother", Phone: "+1-555-0202",
			},
			Manager: "staff-1", Shift: staff.ShiftDay,
			WorkingHours: staff.WorkingHours{StartTime: "07:30", EndTime: "16:30", BreakDuration: 45},
			Roles:        []staff.AccessRole{roles[2]},
			LastLogin:    "2024-01-16T07:45:00Z", IsActive: true,
			CreatedAt: day("2021-08-20"), UpdatedAt: day("2024-01-16"), CreatedBy: "admin",
		},
		{
			ID: "staff-3", EmployeeID: "EMP003", FirstName: "Mike", LastName: "Chen",
			Email: "mike.chen@company.com", Phone: "+1-555-0301",
			Role: staff.RoleMachineOperator, Department: staff.DeptProduction,
			JobTitle: "Machine Operator", HireDate: "2023-01-10", Salary: 45000,
			Status:  staff.StatusActive,
			Address: staff.Address{Street: "789 Pine St", City: "Springfield", State: "IL", ZipCode: "62703", Country: "USA"},
			EmergencyContact: staff.EmergencyContact{
				Name: "Lisa Chen", Relationship: "Wife", Phone: "+1-555-0302",
			},
			Manager: "staff-1", Shift: staff.ShiftDay,
			WorkingHours: staff.WorkingHours{StartTime: "08:00", EndTime: "16:00", BreakDuration: 30},
			Roles:        []staff.AccessRole{roles[3]},
			LastLogin:    "2024-01-16T08:00:00Z", IsActive: true,
			CreatedAt: day("2023-01-10"), UpdatedAt: day("2024-01-16"), CreatedBy: "staff-1",
		},
		{
			ID: "staff-4", EmployeeID: "EMP004", FirstName: "Emma", LastName: "Davis",
			Email: "emma.davis@company.com", Phone: "+1-555-0401",
			Role: staff.RoleWarehouseStaff, Department: staff.DeptWarehouse,
			JobTitle: "Warehouse Coordinator", HireDate: "2022-11-05", Salary: 42000,
			Status:  staff.StatusOnLeave,
			Address: staff.Address{Street: "321 Elm St", City: "Springfield", State: "IL", ZipCode: "62704", Country: "USA"},
			EmergencyContact: staff.EmergencyContact{
				Name: "Robert Davis", Relationship: "Father", Phone: "+1-555-0402",
			},
			Shift:        staff.ShiftDay,
			WorkingHours: staff.WorkingHours{StartTime: "09:00", EndTime: "17:00", BreakDuration: 60},
			Roles:        []staff.AccessRole{},
			LastLogin:    "2024-01-10T09:15:00Z",
			CreatedAt:    day("2022-11-05"), UpdatedAt: day("2024-01-10"), CreatedBy: "admin",
		},
	}
}

func Attendance() []staff.AttendanceRecord {
	return []staff.AttendanceRecord{
		{
			ID: "att-1", StaffID: "staff-1", Date: "2024-01-16",
			ClockIn: "2024-01-16T08:00:00Z", ClockOut: "2024-01-16T17:00:00Z",
			BreakStart: "2024-01-16T12:00:00Z", BreakEnd: "2024-01-16T13:00:00Z",
			Status: staff.AttPresent, TotalHours: 8, OvertimeHours: 0,
			Location: "Factory Floor",
		},
		{
			ID: "att-2", StaffID: "staff-2", Date: "2024-01-16",
			ClockIn: "2024-01-16T07:45:00Z", ClockOut: "2024-01-16T16:30:00Z",
			Status: staff.AttPresent, TotalHours: 8, OvertimeHours: 0,
			Location: "Quality Lab",
		},
		{
			ID: "att-3", StaffID: "staff-3", Date: "2024-01-16",
			ClockIn: "2024-01-16T08:15:00Z",
			Status:  staff.AttLate, Notes: "Traffic delay",
			Location: "Production Line A",
		},
	}
}
