package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	members := []Member{
		{ID: "s1", Status: StatusActive, Department: DeptProduction, HireDate: "2022-03-15"},
		{ID: "s2", Status: StatusActive, Department: DeptQualityControl, HireDate: "2024-01-05"},
		{ID: "s3", Status: StatusActive, Department: DeptProduction, HireDate: "2023-01-10"},
		{ID: "s4", Status: StatusOnLeave, Department: DeptWarehouse, HireDate: "2022-11-05"},
	}
	today := []AttendanceRecord{
		{StaffID: "s1", Status: AttPresent},
		{StaffID: "s2", Status: AttPresent},
		{StaffID: "s3", Status: AttLate},
	}

	s := ComputeStats(members, today, "2024-01")

	assert.Equal(t, 4, s.TotalStaff)
	assert.Equal(t, 3, s.ActiveStaff)
	assert.Equal(t, 1, s.OnLeave)
	assert.Equal(t, 1, s.NewHires)
	assert.Equal(t, 3, s.TotalDepartments)
	assert.Equal(t, 2, s.PresentToday)
	assert.Equal(t, 1, s.LateToday)
	assert.Equal(t, 0, s.AbsentToday)
	assert.InDelta(t, 200.0/3.0, s.AvgAttendance, 1e-9)
}

func TestComputeStatsAbsentCanGoNegative(t *testing.T) {
	members := []Member{
		{ID: "s1", Status: StatusActive},
	}
	// records for staff who are not active still count against the active
	// headcount; the formula is carried over unchanged
	today := []AttendanceRecord{
		{StaffID: "s1", Status: AttPresent},
		{StaffID: "ghost", Status: AttPresent},
	}

	s := ComputeStats(members, today, "2024-01")
	assert.Equal(t, -1, s.AbsentToday)
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil, nil, "2024-01")
	assert.Equal(t, 0, s.TotalStaff)
	assert.Equal(t, 0.0, s.AvgAttendance)
}

func TestSummarize(t *testing.T) {
	records := []AttendanceRecord{
		{StaffID: "s1", Status: AttPresent, TotalHours: 8, OvertimeHours: 0},
		{StaffID: "s1", Status: AttPresent, TotalHours: 9.5, OvertimeHours: 1.5},
		{StaffID: "s1", Status: AttLate, TotalHours: 7, OvertimeHours: 0},
		{StaffID: "s1", Status: AttAbsent},
		{StaffID: "someone-else", Status: AttPresent, TotalHours: 8},
	}

	s := Summarize("s1", records)

	assert.Equal(t, 4, s.TotalDays)
	assert.Equal(t, 2, s.PresentDays)
	assert.Equal(t, 1, s.LateDays)
	assert.Equal(t, 1, s.AbsentDays)
	assert.Equal(t, 1, s.OvertimeDays)
	assert.Equal(t, 24.5, s.TotalHours)
	assert.Equal(t, 1.5, s.TotalOvertimeHours)
	assert.InDelta(t, 24.5/4, s.AvgHours, 1e-9)
	assert.Equal(t, 50.0, s.AttendanceRate)
	assert.Equal(t, 25.0, s.PunctualityRate)
}

func TestSummarizeNoRecords(t *testing.T) {
	s := Summarize("s1", nil)

	assert.Equal(t, 0, s.TotalDays)
	assert.Equal(t, 0.0, s.AvgHours)
	assert.Equal(t, 0.0, s.AttendanceRate)
	assert.Equal(t, 0.0, s.PunctualityRate)
}
