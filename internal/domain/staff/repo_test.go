package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignsEmployeeIDAndRoles(t *testing.T) {
	r := NewRepo(8)
	r.SeedRoles([]AccessRole{
		{ID: "role-1", Name: "Administrator", Level: 10},
		{ID: "role-2", Name: "Production Manager", Level: 8},
	})

	m := r.Create(FormData{
		FirstName: "John", LastName: "Wilson",
		Status:  StatusActive,
		RoleIDs: []string{"role-2", "unknown"},
	}, "admin")

	assert.Equal(t, "EMP001", m.EmployeeID)
	assert.True(t, m.IsActive)
	assert.Equal(t, "admin", m.CreatedBy)
	require.Len(t, m.Roles, 1)
	assert.Equal(t, "Production Manager", m.Roles[0].Name)

	second := r.Create(FormData{FirstName: "Sarah", Status: StatusActive}, "admin")
	assert.Equal(t, "EMP002", second.EmployeeID)
}

func TestUpdateStatusSyncsIsActive(t *testing.T) {
	r := NewRepo(8)
	m := r.Create(FormData{FirstName: "John", Status: StatusActive}, "admin")

	got, err := r.UpdateStatus(m.ID, StatusOnLeave)
	require.NoError(t, err)
	assert.Equal(t, StatusOnLeave, got.Status)
	assert.False(t, got.IsActive)

	got, err = r.UpdateStatus(m.ID, StatusActive)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestBulkUpdateStatusSkipsUnknown(t *testing.T) {
	r := NewRepo(8)
	a := r.Create(FormData{FirstName: "A", Status: StatusActive}, "admin")
	b := r.Create(FormData{FirstName: "B", Status: StatusActive}, "admin")

	updated := r.BulkUpdateStatus([]string{a.ID, "missing", b.ID}, StatusInactive)
	assert.Len(t, updated, 2)
	for _, m := range updated {
		assert.Equal(t, StatusInactive, m.Status)
	}
}

func TestDeleteMember(t *testing.T) {
	r := NewRepo(8)
	m := r.Create(FormData{FirstName: "A", Status: StatusActive}, "admin")

	require.NoError(t, r.Delete(m.ID))
	assert.ErrorIs(t, r.Delete(m.ID), ErrNotFound)
	_, err := r.Get(m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListReturnsCopies(t *testing.T) {
	r := NewRepo(8)
	r.SeedRoles([]AccessRole{{ID: "role-1", Name: "Administrator"}})
	r.Create(FormData{FirstName: "A", Status: StatusActive, RoleIDs: []string{"role-1"}}, "admin")

	snapshot := r.List()
	snapshot[0].Roles[0].Name = "mutated"

	assert.Equal(t, "Administrator", r.List()[0].Roles[0].Name)
}

func TestFilterSearchTermAnyField(t *testing.T) {
	members := []Member{
		{ID: "1", EmployeeID: "EMP001", FirstName: "John", LastName: "Wilson", Email: "john.wilson@company.com", JobTitle: "Production Manager"},
		{ID: "2", EmployeeID: "EMP002", FirstName: "Sarah", LastName: "Johnson", Email: "sarah.johnson@company.com", JobTitle: "Senior Quality Inspector"},
	}

	tests := []struct {
		term string
		want []string
	}{
		{"wilson", []string{"1"}},
		{"emp002", []string{"2"}},
		{"inspector", []string{"2"}},
		{"john", []string{"1", "2"}}, // first name of one, last name of the other
		{"nobody", nil},
	}
	for _, tt := range tests {
		got := Apply(members, Filter{SearchTerm: tt.term})
		var ids []string
		for _, m := range got {
			ids = append(ids, m.ID)
		}
		assert.Equal(t, tt.want, ids, "term %q", tt.term)
	}
}

func TestFilterConjunction(t *testing.T) {
	members := []Member{
		{ID: "1", Department: DeptProduction, Status: StatusActive, Salary: 75000, HireDate: "2022-03-15"},
		{ID: "2", Department: DeptProduction, Status: StatusActive, Salary: 45000, HireDate: "2023-01-10"},
		{ID: "3", Department: DeptWarehouse, Status: StatusOnLeave, Salary: 42000, HireDate: "2022-11-05"},
	}

	got := Apply(members, Filter{
		Department: []Department{DeptProduction},
		SalaryMin:  50000,
	})
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	hired := Apply(members, Filter{HiredAfter: "2022-06-01", HiredBefore: "2023-06-01"})
	assert.Len(t, hired, 2)
}
