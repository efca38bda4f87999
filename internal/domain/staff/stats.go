package staff

// Stats is the staff dashboard summary.
type Stats struct {
	TotalStaff       int     `json:"totalStaff"`
	ActiveStaff      int     `json:"activeStaff"`
	OnLeave          int     `json:"onLeave"`
	NewHires         int     `json:"newHires"` // hired this calendar month
	AvgAttendance    float64 `json:"avgAttendance"`
	TotalDepartments int     `json:"totalDepartments"`
	PresentToday     int     `json:"presentToday"`
	AbsentToday      int     `json:"absentToday"`
	LateToday        int     `json:"lateToday"`
}

// ComputeStats reduces the staff roster plus today's attendance records
// into the dashboard summary. todayRecords must already be limited to the
// current date; month is the current month in YYYY-MM form.
//
// AbsentToday is activeStaff minus the number of today's records — it can
// go negative when records exist for inactive staff or a member has more
// than one record. That formula is carried over from the source on
// purpose; do not "correct" it here.
func ComputeStats(members []Member, todayRecords []AttendanceRecord, month string) Stats {
	s := Stats{TotalStaff: len(members)}

	departments := map[Department]struct{}{}
	for _, m := range members {
		switch m.Status {
		case StatusActive:
			s.ActiveStaff++
		case StatusOnLeave:
			s.OnLeave++
		}
		if len(m.HireDate) >= len(month) && m.HireDate[:len(month)] == month {
			s.NewHires++
		}
		departments[m.Department] = struct{}{}
	}
	s.TotalDepartments = len(departments)

	for _, rec := range todayRecords {
		switch rec.Status {
		case AttPresent:
			s.PresentToday++
		case AttLate:
			s.LateToday++
		}
	}
	s.AbsentToday = s.ActiveStaff - len(todayRecords)

	if s.ActiveStaff > 0 {
		s.AvgAttendance = float64(s.PresentToday) / float64(s.ActiveStaff) * 100
	}
	return s
}

// MemberSummary aggregates one member's attendance over a period.
type MemberSummary struct {
	StaffID            string  `json:"staffId"`
	PresentDays        int     `json:"presentDays"`
	LateDays           int     `json:"lateDays"`
	AbsentDays         int     `json:"absentDays"`
	OvertimeDays       int     `json:"overtimeDays"`
	TotalDays          int     `json:"totalDays"`
	TotalHours         float64 `json:"totalHours"`
	TotalOvertimeHours float64 `json:"totalOvertimeHours"`
	AvgHours           float64 `json:"avgHours"`
	AttendanceRate     float64 `json:"attendanceRate"`
	PunctualityRate    float64 `json:"punctualityRate"`
}

// Summarize computes per-member day counts, hour totals, and the two
// rates. Every rate is guarded so a member with no records in the period
// yields zeros rather than a division error.
func Summarize(staffID string, records []AttendanceRecord) MemberSummary {
	s := MemberSummary{StaffID: staffID}
	for _, rec := range records {
		if rec.StaffID != staffID {
			continue
		}
		s.TotalDays++
		switch rec.Status {
		case AttPresent:
			s.PresentDays++
		case AttLate:
			s.LateDays++
		case AttAbsent:
			s.AbsentDays++
		}
		if rec.OvertimeHours > 0 {
			s.OvertimeDays++
		}
		s.TotalHours += rec.TotalHours
		s.TotalOvertimeHours += rec.OvertimeHours
	}
	if s.TotalDays > 0 {
		s.AvgHours = s.TotalHours / float64(s.TotalDays)
		s.AttendanceRate = float64(s.PresentDays) / float64(s.TotalDays) * 100
		s.PunctualityRate = float64(s.PresentDays-s.LateDays) / float64(s.TotalDays) * 100
	}
	return s
}
