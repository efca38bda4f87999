package orders

import (
	"strings"
	"time"
)

// Filter is a sparse conjunction of optional constraints. Absent or empty
// constraints impose no restriction; string constraints match
// case-insensitive substrings.
type Filter struct {
	Status        []Status        `form:"status" json:"status,omitempty"`
	Priority      []Priority      `form:"priority" json:"priority,omitempty"`
	PaymentStatus []PaymentStatus `form:"paymentStatus" json:"paymentStatus,omitempty"`
	Customer      string          `form:"customer" json:"customer,omitempty"`
	OrderNumber   string          `form:"orderNumber" json:"orderNumber,omitempty"`
	AssignedTo    string          `form:"assignedTo" json:"assignedTo,omitempty"`
	MinAmount     float64         `form:"minAmount" json:"minAmount,omitempty"`
	MaxAmount     float64         `form:"maxAmount" json:"maxAmount,omitempty"`
	DateFrom      string          `form:"dateFrom" json:"dateFrom,omitempty"`
	DateTo        string          `form:"dateTo" json:"dateTo,omitempty"`
}

func (f Filter) Match(o Order) bool {
	if len(f.Status) > 0 && !containsStatus(f.Status, o.Status) {
		return false
	}
	if len(f.Priority) > 0 && !containsPriority(f.Priority, o.Priority) {
		return false
	}
	if len(f.PaymentStatus) > 0 && !containsPayment(f.PaymentStatus, o.PaymentStatus) {
		return false
	}
	if f.Customer != "" {
		term := strings.ToLower(f.Customer)
		if !strings.Contains(strings.ToLower(o.Customer.Name), term) &&
			!strings.Contains(strings.ToLower(o.Customer.Company), term) {
			return false
		}
	}
	if f.OrderNumber != "" && !strings.Contains(strings.ToLower(o.OrderNumber), strings.ToLower(f.OrderNumber)) {
		return false
	}
	if f.AssignedTo != "" && o.AssignedTo != f.AssignedTo {
		return false
	}
	if f.MinAmount != 0 && o.TotalAmount < f.MinAmount {
		return false
	}
	if f.MaxAmount != 0 && o.TotalAmount > f.MaxAmount {
		return false
	}
	if f.DateFrom != "" {
		if from, err := time.Parse("2006-01-02", f.DateFrom); err == nil && o.CreatedAt.Before(from) {
			return false
		}
	}
	if f.DateTo != "" {
		if to, err := time.Parse("2006-01-02", f.DateTo); err == nil && o.CreatedAt.After(to.Add(24*time.Hour-time.Nanosecond)) {
			return false
		}
	}
	return true
}

func Apply(list []Order, f Filter) []Order {
	out := make([]Order, 0, len(list))
	for _, o := range list {
		if f.Match(o) {
			out = append(out, o)
		}
	}
	return out
}

// Search builds the quick-search filter: one term matched against both
// customer and order number.
func Search(term string) Filter {
	return Filter{Customer: term, OrderNumber: term}
}

func containsStatus(set []Status, s Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsPriority(set []Priority, p Priority) bool {
	for _, v := range set {
		if v == p {
			return true
		}
	}
	return false
}

func containsPayment(set []PaymentStatus, p PaymentStatus) bool {
	for _, v := range set {
		if v == p {
			return true
		}
	}
	return false
}
