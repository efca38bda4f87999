package staff

import "strings"

// Filter is a sparse conjunction of optional staff constraints. The search
// term is satisfied when ANY of first name, last name, email, employee ID
// or job title contains it, case-insensitively.
type Filter struct {
	Role        []Role             `form:"role" json:"role,omitempty"`
	Department  []Department       `form:"department" json:"department,omitempty"`
	Status      []EmploymentStatus `form:"status" json:"status,omitempty"`
	Manager     string             `form:"manager" json:"manager,omitempty"`
	SearchTerm  string             `form:"searchTerm" json:"searchTerm,omitempty"`
	HiredAfter  string             `form:"hiredAfter" json:"hiredAfter,omitempty"`
	HiredBefore string             `form:"hiredBefore" json:"hiredBefore,omitempty"`
	SalaryMin   float64            `form:"salaryMin" json:"salaryMin,omitempty"`
	SalaryMax   float64            `form:"salaryMax" json:"salaryMax,omitempty"`
}

func (f Filter) Match(m Member) bool {
	if len(f.Role) > 0 && !containsRole(f.Role, m.Role) {
		return false
	}
	if len(f.Department) > 0 && !containsDept(f.Department, m.Department) {
		return false
	}
	if len(f.Status) > 0 && !containsStatus(f.Status, m.Status) {
		return false
	}
	if f.Manager != "" && m.Manager != f.Manager {
		return false
	}
	if f.HiredAfter != "" && m.HireDate < f.HiredAfter {
		return false
	}
	if f.HiredBefore != "" && m.HireDate > f.HiredBefore {
		return false
	}
	if f.SalaryMin != 0 && m.Salary < f.SalaryMin {
		return false
	}
	if f.SalaryMax != 0 && m.Salary > f.SalaryMax {
		return false
	}
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		return strings.Contains(strings.ToLower(m.FirstName), term) ||
			strings.Contains(strings.ToLower(m.LastName), term) ||
			strings.Contains(strings.ToLower(m.Email), term) ||
			strings.Contains(strings.ToLower(m.EmployeeID), term) ||
			strings.Contains(strings.ToLower(m.JobTitle), term)
	}
	return true
}

func Apply(list []Member, f Filter) []Member {
	out := make([]Member, 0, len(list))
	for _, m := range list {
		if f.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

func containsRole(set []Role, r Role) bool {
	for _, v := range set {
		if v == r {
			return true
		}
	}
	return false
}

func containsDept(set []Department, d Department) bool {
	for _, v := range set {
		if v == d {
			return true
		}
	}
	return false
}

func containsStatus(set []EmploymentStatus, s EmploymentStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
