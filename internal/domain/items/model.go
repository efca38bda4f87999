package items

import "time"

type Category string

const (
	CategorySteel    Category = "steel"
	CategoryPVC      Category = "pvc"
	CategoryCopper   Category = "copper"
	CategoryAluminum Category = "aluminum"
	CategoryOther    Category = "other"
)

type Status string

const (
	StatusActive       Status = "active"
	StatusDiscontinued Status = "discontinued"
	StatusOutOfStock   Status = "out_of_stock"
)

type Specifications struct {
	Material    string `json:"material"`
	Grade       string `json:"grade,omitempty"`
	Pressure    string `json:"pressure,omitempty"`
	Temperature string `json:"temperature,omitempty"`
}

// Item is one pipe inventory unit.
type Item struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       Category       `json:"category"`
	Diameter       float64        `json:"diameter"` // mm
	Length         float64        `json:"length"`   // m
	Thickness      float64        `json:"thickness,omitempty"`
	Price          float64        `json:"price"`
	StockQuantity  int            `json:"stockQuantity"`
	MinimumStock   int            `json:"minimumStock"`
	Image          string         `json:"image,omitempty"`
	Specifications Specifications `json:"specifications"`
	Supplier       string         `json:"supplier,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Status         Status         `json:"status"`
}

// LowStock reports whether the item is at or below its reorder floor.
func (i Item) LowStock() bool {
	return i.StockQuantity <= i.MinimumStock
}
