package staff

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("staff member not found")
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrAlreadyOpen    = errors.New("open attendance record already exists for today")
	ErrNoOpenRecord   = errors.New("no open attendance record for today")
)

// Repo holds staff, the access-role catalog, and attendance records.
type Repo struct {
	mu         sync.RWMutex
	members    []Member
	roles      []AccessRole
	attendance []AttendanceRecord
	shiftHours float64
}

// NewRepo builds an empty store. shiftHours is the standard shift length
// used for overtime; the original tracker assumes 8.
func NewRepo(shiftHours float64) *Repo {
	if shiftHours <= 0 {
		shiftHours = 8
	}
	return &Repo{shiftHours: shiftHours}
}

type FormData struct {
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Avatar           string           `json:"avatar,omitempty"`
	Role             Role             `json:"role"`
	Department       Department       `json:"department"`
	JobTitle         string           `json:"jobTitle"`
	HireDate         string           `json:"hireDate"`
	Salary           float64          `json:"salary"`
	Status           EmploymentStatus `json:"status"`
	Address          Address          `json:"address"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	Manager          string           `json:"manager,omitempty"`
	Shift            ShiftType        `json:"shift"`
	WorkingHours     WorkingHours     `json:"workingHours"`
	RoleIDs          []string         `json:"roles"`
	Notes            string           `json:"notes,omitempty"`
}

// Create assigns the next EMP%03d employee ID and resolves access-role IDs
// against the catalog.
func (r *Repo) Create(data FormData, createdBy string) Member {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	m := Member{
		ID:               uuid.NewString(),
		EmployeeID:       fmt.Sprintf("EMP%03d", len(r.members)+1),
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            data.Email,
		Phone:            data.Phone,
		Avatar:           data.Avatar,
		Role:             data.Role,
		Department:       data.Department,
		JobTitle:         data.JobTitle,
		HireDate:         data.HireDate,
		Salary:           data.Salary,
		Status:           data.Status,
		Address:          data.Address,
		EmergencyContact: data.EmergencyContact,
		Manager:          data.Manager,
		Shift:            data.Shift,
		WorkingHours:     data.WorkingHours,
		Roles:            r.resolveRoles(data.RoleIDs),
		IsActive:         data.Status == StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
		CreatedBy:        createdBy,
		Notes:            data.Notes,
	}
	r.members = append(r.members, m)
	return m.clone()
}

func (r *Repo) Update(id string, data FormData) (Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.members {
		if r.members[i].ID != id {
			continue
		}
		m := &r.members[i]
		m.FirstName = data.FirstName
		m.LastName = data.LastName
		m.Email = data.Email
		m.Phone = data.Phone
		if data.Avatar != "" {
			m.Avatar = data.Avatar
		}
		m.Role = data.Role
		m.Department = data.Department
		m.JobTitle = data.JobTitle
		m.HireDate = data.HireDate
		m.Salary = data.Salary
		m.Status = data.Status
		m.Address = data.Address
		m.EmergencyContact = data.EmergencyContact
		m.Manager = data.Manager
		m.Shift = data.Shift
		m.WorkingHours = data.WorkingHours
		m.Roles = r.resolveRoles(data.RoleIDs)
		m.IsActive = data.Status == StatusActive
		m.UpdatedAt = time.Now()
		return m.clone(), nil
	}
	return Member{}, ErrNotFound
}

func (r *Repo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.members {
		if r.members[i].ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *Repo) List() []Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m.clone())
	}
	return out
}

func (r *Repo) Get(id string) (Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members {
		if m.ID == id {
			return m.clone(), nil
		}
	}
	return Member{}, ErrNotFound
}

// UpdateStatus changes the employment status and keeps IsActive in sync.
func (r *Repo) UpdateStatus(id string, status EmploymentStatus) (Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.members {
		if r.members[i].ID == id {
			r.members[i].Status = status
			r.members[i].IsActive = status == StatusActive
			r.members[i].UpdatedAt = time.Now()
			return r.members[i].clone(), nil
		}
	}
	return Member{}, ErrNotFound
}

func (r *Repo) AssignRoles(id string, roleIDs []string) (Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.members {
		if r.members[i].ID == id {
			r.members[i].Roles = r.resolveRoles(roleIDs)
			r.members[i].UpdatedAt = time.Now()
			return r.members[i].clone(), nil
		}
	}
	return Member{}, ErrNotFound
}

func (r *Repo) BulkUpdateStatus(ids []string, status EmploymentStatus) []Member {
	out := make([]Member, 0, len(ids))
	for _, id := range ids {
		if m, err := r.UpdateStatus(id, status); err == nil {
			out = append(out, m)
		}
	}
	return out
}

func (r *Repo) ListByDepartment(dep Department) []Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Member
	for _, m := range r.members {
		if m.Department == dep {
			out = append(out, m.clone())
		}
	}
	return out
}

// Roles returns the access-role catalog.
func (r *Repo) Roles() []AccessRole {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]AccessRole(nil), r.roles...)
}

func (r *Repo) SeedRoles(roles []AccessRole) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles = append(r.roles, roles...)
}

func (r *Repo) SeedMembers(members []Member) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range members {
		r.members = append(r.members, m.clone())
	}
}

func (r *Repo) resolveRoles(ids []string) []AccessRole {
	out := []AccessRole{}
	for _, role := range r.roles {
		for _, id := range ids {
			if role.ID == id {
				out = append(out, role)
				break
			}
		}
	}
	return out
}
