package orders

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("order not found")

// Repo holds the order collection in memory. All reads return deep copies,
// so a snapshot taken for a report is never mutated under the caller.
type Repo struct {
	mu     sync.RWMutex
	orders []Order
	seq    int
}

func NewRepo() *Repo { return &Repo{} }

type CreateInput struct {
	Customer Customer
	Items    []OrderItem
	Priority Priority
	DueDate  string
	Notes    string
	Shipping ShippingInfo
	TaxRate  float64
	Discount float64
	Actor    string
}

// Create computes line totals and the monetary breakdown
// (total = subtotal + tax + shipping - discount) and seeds the
// status history with a pending entry.
func (r *Repo) Create(in CreateInput) Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.seq++

	items := append([]OrderItem(nil), in.Items...)
	var subtotal float64
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		items[i].TotalPrice = items[i].UnitPrice * float64(items[i].Quantity)
		subtotal += items[i].TotalPrice
	}
	tax := subtotal * in.TaxRate

	actor := in.Actor
	if actor == "" {
		actor = "System"
	}

	o := Order{
		ID:            uuid.NewString(),
		OrderNumber:   fmt.Sprintf("ORD-%d-%03d", now.Year(), r.seq),
		Customer:      in.Customer,
		Items:         items,
		Status:        StatusPending,
		Priority:      in.Priority,
		PaymentStatus: PaymentPending,
		Subtotal:      subtotal,
		Tax:           tax,
		ShippingCost:  in.Shipping.Cost,
		Discount:      in.Discount,
		TotalAmount:   subtotal + tax + in.Shipping.Cost - in.Discount,
		Shipping:      in.Shipping,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
		DueDate:       in.DueDate,
		StatusHistory: []StatusHistoryEntry{{
			ID:        uuid.NewString(),
			Status:    StatusPending,
			Timestamp: now,
			UpdatedBy: actor,
			Notes:     "Order created",
		}},
	}
	r.orders = append(r.orders, o)
	return o.clone()
}

func (r *Repo) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.clone())
	}
	return out
}

func (r *Repo) Get(id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o.clone(), nil
		}
	}
	return Order{}, ErrNotFound
}

// UpdateStatus appends a history entry and moves the order to the new
// status. Transition legality is not checked here; the history only
// promises chronological order.
func (r *Repo) UpdateStatus(id string, status Status, updatedBy, notes string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}
		now := time.Now()
		r.orders[i].Status = status
		r.orders[i].UpdatedAt = now
		r.orders[i].StatusHistory = append(r.orders[i].StatusHistory, StatusHistoryEntry{
			ID:        uuid.NewString(),
			Status:    status,
			Timestamp: now,
			UpdatedBy: updatedBy,
			Notes:     notes,
		})
		return r.orders[i].clone(), nil
	}
	return Order{}, ErrNotFound
}

func (r *Repo) UpdatePriority(id string, priority Priority) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Priority = priority
			r.orders[i].UpdatedAt = time.Now()
			return r.orders[i].clone(), nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *Repo) Assign(id, assignedTo string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].AssignedTo = assignedTo
			r.orders[i].UpdatedAt = time.Now()
			return r.orders[i].clone(), nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *Repo) UpdatePayment(id string, status PaymentStatus) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].PaymentStatus = status
			r.orders[i].UpdatedAt = time.Now()
			return r.orders[i].clone(), nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *Repo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// BulkUpdateStatus applies the status change to every listed order.
// Unknown IDs are skipped, matching the original bulk action behavior.
func (r *Repo) BulkUpdateStatus(ids []string, status Status, updatedBy string) []Order {
	out := make([]Order, 0, len(ids))
	for _, id := range ids {
		if o, err := r.UpdateStatus(id, status, updatedBy, "Bulk status update"); err == nil {
			out = append(out, o)
		}
	}
	return out
}

func (r *Repo) BulkAssign(ids []string, assignedTo string) []Order {
	out := make([]Order, 0, len(ids))
	for _, id := range ids {
		if o, err := r.Assign(id, assignedTo); err == nil {
			out = append(out, o)
		}
	}
	return out
}

// Seed inserts pre-built orders, keeping the order-number sequence ahead
// of the highest seeded entry.
func (r *Repo) Seed(list []Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range list {
		r.orders = append(r.orders, o.clone())
	}
	if n := len(r.orders); n > r.seq {
		r.seq = n
	}
}
