package items

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("item not found")

type Repo struct {
	mu    sync.RWMutex
	items []Item
}

func NewRepo() *Repo { return &Repo{} }

type FormData struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       Category       `json:"category"`
	Diameter       float64        `json:"diameter"`
	Length         float64        `json:"length"`
	Thickness      float64        `json:"thickness,omitempty"`
	Price          float64        `json:"price"`
	StockQuantity  int            `json:"stockQuantity"`
	MinimumStock   int            `json:"minimumStock"`
	Image          string         `json:"image,omitempty"`
	Specifications Specifications `json:"specifications"`
	Supplier       string         `json:"supplier,omitempty"`
	Status         Status         `json:"status"`
}

func (r *Repo) Create(data FormData) Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	it := Item{
		ID:             uuid.NewString(),
		Name:           data.Name,
		Description:    data.Description,
		Category:       data.Category,
		Diameter:       data.Diameter,
		Length:         data.Length,
		Thickness:      data.Thickness,
		Price:          data.Price,
		StockQuantity:  data.StockQuantity,
		MinimumStock:   data.MinimumStock,
		Image:          data.Image,
		Specifications: data.Specifications,
		Supplier:       data.Supplier,
		CreatedAt:      now,
		UpdatedAt:      now,
		Status:         data.Status,
	}
	r.items = append(r.items, it)
	return it
}

func (r *Repo) Update(id string, data FormData) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		it := &r.items[i]
		it.Name = data.Name
		it.Description = data.Description
		it.Category = data.Category
		it.Diameter = data.Diameter
		it.Length = data.Length
		it.Thickness = data.Thickness
		it.Price = data.Price
		it.StockQuantity = data.StockQuantity
		it.MinimumStock = data.MinimumStock
		if data.Image != "" {
			it.Image = data.Image
		}
		it.Specifications = data.Specifications
		it.Supplier = data.Supplier
		it.Status = data.Status
		it.UpdatedAt = time.Now()
		return *it, nil
	}
	return Item{}, ErrNotFound
}

func (r *Repo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *Repo) List() []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Item(nil), r.items...)
}

func (r *Repo) Get(id string) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

// AdjustStock applies a delta to the stock quantity. Negative balances are
// allowed; the caller decides whether that warrants an out_of_stock flip.
func (r *Repo) AdjustStock(id string, delta int) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].StockQuantity += delta
			r.items[i].UpdatedAt = time.Now()
			return r.items[i], nil
		}
	}
	return Item{}, ErrNotFound
}

// LowStock lists items at or below their minimum stock.
func (r *Repo) LowStock() []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Item
	for _, it := range r.items {
		if it.LowStock() {
			out = append(out, it)
		}
	}
	return out
}

func (r *Repo) Seed(list []Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, list...)
}
