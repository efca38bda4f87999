package staff

import "time"

type Role string

const (
	RoleAdmin            Role = "admin"
	RoleManager          Role = "manager"
	RoleSupervisor       Role = "supervisor"
	RoleProductionLead   Role = "production_lead"
	RoleMachineOperator  Role = "machine_operator"
	RoleQualityInspector Role = "quality_inspector"
	RoleWarehouseStaff   Role = "warehouse_staff"
	RoleMaintenance      Role = "maintenance"
	RoleShippingClerk    Role = "shipping_clerk"
	RoleSalesRep         Role = "sales_rep"
	RoleHR               Role = "hr"
	RoleAccountant       Role = "accountant"
)

type Department string

const (
	DeptAdministration Department = "administration"
	DeptProduction     Department = "production"
	DeptQualityControl Department = "quality_control"
	DeptWarehouse      Department = "warehouse"
	DeptMaintenance    Department = "maintenance"
	DeptShipping       Department = "shipping"
	DeptSales          Department = "sales"
	DeptHR             Department = "hr"
	DeptFinance        Department = "finance"
)

type EmploymentStatus string

const (
	StatusActive     EmploymentStatus = "active"
	StatusInactive   EmploymentStatus = "inactive"
	StatusOnLeave    EmploymentStatus = "on_leave"
	StatusTerminated EmploymentStatus = "terminated"
)

type ShiftType string

const (
	ShiftDay      ShiftType = "day"
	ShiftNight    ShiftType = "night"
	ShiftRotating ShiftType = "rotating"
	ShiftFlexible ShiftType = "flexible"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type WorkingHours struct {
	StartTime     string `json:"startTime"` // HH:MM
	EndTime       string `json:"endTime"`   // HH:MM
	BreakDuration int    `json:"breakDuration"`
}

// AccessRole is a system-access role assigned to a staff member, distinct
// from the employment Role string.
type AccessRole struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Level              int    `json:"level"` // 1-10, higher = more access
	CanManageStaff     bool   `json:"canManageStaff"`
	CanViewReports     bool   `json:"canViewReports"`
	CanModifyInventory bool   `json:"canModifyInventory"`
	CanProcessOrders   bool   `json:"canProcessOrders"`
}

type Member struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employeeId"`
	FirstName  string           `json:"firstName"`
	LastName   string           `json:"lastName"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	Avatar     string           `json:"avatar,omitempty"`
	Role       Role             `json:"role"`
	Department Department       `json:"department"`
	JobTitle   string           `json:"jobTitle"`
	HireDate   string           `json:"hireDate"` // YYYY-MM-DD
	Salary     float64          `json:"salary"`
	Status     EmploymentStatus `json:"status"`

	Address          Address          `json:"address"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`

	Manager      string       `json:"manager,omitempty"`
	Shift        ShiftType    `json:"shift"`
	WorkingHours WorkingHours `json:"workingHours"`

	Roles     []AccessRole `json:"roles"`
	LastLogin string       `json:"lastLogin,omitempty"`
	IsActive  bool         `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy"`
	Notes     string    `json:"notes,omitempty"`
}

func (m Member) clone() Member {
	c := m
	c.Roles = append([]AccessRole(nil), m.Roles...)
	return c
}

type AttendanceStatus string

const (
	AttPresent    AttendanceStatus = "present"
	AttAbsent     AttendanceStatus = "absent"
	AttLate       AttendanceStatus = "late"
	AttEarlyLeave AttendanceStatus = "early_leave"
	AttHalfDay    AttendanceStatus = "half_day"
	AttOvertime   AttendanceStatus = "overtime"
)

type AttendanceRecord struct {
	ID            string           `json:"id"`
	StaffID       string           `json:"staffId"`
	Date          string           `json:"date"` // YYYY-MM-DD
	ClockIn       string           `json:"clockIn,omitempty"`
	ClockOut      string           `json:"clockOut,omitempty"`
	BreakStart    string           `json:"breakStart,omitempty"`
	BreakEnd      string           `json:"breakEnd,omitempty"`
	Status        AttendanceStatus `json:"status"`
	TotalHours    float64          `json:"totalHours"`
	OvertimeHours float64          `json:"overtimeHours"`
	Notes         string           `json:"notes,omitempty"`
	ApprovedBy    string           `json:"approvedBy,omitempty"`
	IsManualEntry bool             `json:"isManualEntry"`
	Location      string           `json:"location,omitempty"`
}
