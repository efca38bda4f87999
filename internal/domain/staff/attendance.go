package staff

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ComputeHours derives total and overtime hours from a clock pair. Total
// is rounded to 2 decimals; overtime is whatever exceeds the standard
// shift, floored at zero. Missing either timestamp yields zeros.
func ComputeHours(clockIn, clockOut string, shiftHours float64) (total, overtime float64) {
	if clockIn == "" || clockOut == "" {
		return 0, 0
	}
	in, err := time.Parse(time.RFC3339, clockIn)
	if err != nil {
		return 0, 0
	}
	out, err := time.Parse(time.RFC3339, clockOut)
	if err != nil {
		return 0, 0
	}
	total = math.Round(out.Sub(in).Hours()*100) / 100
	overtime = math.Max(0, total-shiftHours)
	return total, overtime
}

// ClockIn opens today's attendance record for the member. The status is
// always present on clock-in, matching the original tracker; lateness is
// only set through manual entries.
func (r *Repo) ClockIn(staffID, location string, now time.Time) (AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.memberExists(staffID) {
		return AttendanceRecord{}, ErrNotFound
	}
	today := now.UTC().Format("2006-01-02")
	for _, rec := range r.attendance {
		if rec.StaffID == staffID && rec.Date == today && rec.ClockOut == "" && rec.ClockIn != "" {
			return AttendanceRecord{}, ErrAlreadyOpen
		}
	}
	rec := AttendanceRecord{
		ID:       uuid.NewString(),
		StaffID:  staffID,
		Date:     today,
		ClockIn:  now.UTC().Format(time.RFC3339),
		Status:   AttPresent,
		Location: location,
	}
	r.attendance = append(r.attendance, rec)
	return rec, nil
}

// ClockOut closes today's open record and fills in the hour totals.
func (r *Repo) ClockOut(staffID string, now time.Time) (AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	today := now.UTC().Format("2006-01-02")
	for i := range r.attendance {
		rec := &r.attendance[i]
		if rec.StaffID == staffID && rec.Date == today && rec.ClockOut == "" && rec.ClockIn != "" {
			rec.ClockOut = now.UTC().Format(time.RFC3339)
			rec.TotalHours, rec.OvertimeHours = ComputeHours(rec.ClockIn, rec.ClockOut, r.shiftHours)
			return *rec, nil
		}
	}
	return AttendanceRecord{}, ErrNoOpenRecord
}

// AddRecord inserts a manual attendance entry. The status comes from the
// form; hours are recomputed when both clock timestamps are supplied.
func (r *Repo) AddRecord(rec AttendanceRecord) AttendanceRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = uuid.NewString()
	rec.IsManualEntry = true
	if rec.ClockIn != "" && rec.ClockOut != "" {
		rec.TotalHours, rec.OvertimeHours = ComputeHours(rec.ClockIn, rec.ClockOut, r.shiftHours)
	}
	r.attendance = append(r.attendance, rec)
	return rec
}

// RecordPatch carries the updatable attendance fields; nil means keep.
type RecordPatch struct {
	ClockIn    *string           `json:"clockIn,omitempty"`
	ClockOut   *string           `json:"clockOut,omitempty"`
	Status     *AttendanceStatus `json:"status,omitempty"`
	Notes      *string           `json:"notes,omitempty"`
	ApprovedBy *string           `json:"approvedBy,omitempty"`
	Location   *string           `json:"location,omitempty"`
}

func (r *Repo) UpdateRecord(recordID string, patch RecordPatch) (AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.attendance {
		rec := &r.attendance[i]
		if rec.ID != recordID {
			continue
		}
		if patch.ClockIn != nil {
			rec.ClockIn = *patch.ClockIn
		}
		if patch.ClockOut != nil {
			rec.ClockOut = *patch.ClockOut
		}
		if patch.Status != nil {
			rec.Status = *patch.Status
		}
		if patch.Notes != nil {
			rec.Notes = *patch.Notes
		}
		if patch.ApprovedBy != nil {
			rec.ApprovedBy = *patch.ApprovedBy
		}
		if patch.Location != nil {
			rec.Location = *patch.Location
		}
		if (patch.ClockIn != nil || patch.ClockOut != nil) && rec.ClockIn != "" && rec.ClockOut != "" {
			rec.TotalHours, rec.OvertimeHours = ComputeHours(rec.ClockIn, rec.ClockOut, r.shiftHours)
		}
		return *rec, nil
	}
	return AttendanceRecord{}, ErrRecordNotFound
}

type AttendanceFilter struct {
	StaffIDs []string           `form:"staffId" json:"staffIds,omitempty"`
	DateFrom string             `form:"dateFrom" json:"dateFrom,omitempty"`
	DateTo   string             `form:"dateTo" json:"dateTo,omitempty"`
	Status   []AttendanceStatus `form:"status" json:"status,omitempty"`
}

func (f AttendanceFilter) Match(rec AttendanceRecord) bool {
	if len(f.StaffIDs) > 0 {
		found := false
		for _, id := range f.StaffIDs {
			if rec.StaffID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.DateFrom != "" && rec.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && rec.Date > f.DateTo {
		return false
	}
	if len(f.Status) > 0 {
		found := false
		for _, s := range f.Status {
			if rec.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *Repo) ListAttendance(f AttendanceFilter) []AttendanceRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]AttendanceRecord, 0, len(r.attendance))
	for _, rec := range r.attendance {
		if f.Match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (r *Repo) TodayAttendance(now time.Time) []AttendanceRecord {
	today := now.UTC().Format("2006-01-02")
	return r.ListAttendance(AttendanceFilter{DateFrom: today, DateTo: today})
}

func (r *Repo) SeedAttendance(records []AttendanceRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attendance = append(r.attendance, records...)
}

func (r *Repo) memberExists(id string) bool {
	for _, m := range r.members {
		if m.ID == id {
			return true
		}
	}
	return false
}
