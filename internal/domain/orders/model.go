package orders

import "time"

type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusProcessing     Status = "processing"
	StatusManufacturing  Status = "manufacturing"
	StatusQualityCheck   Status = "quality_check"
	StatusReadyToShip    Status = "ready_to_ship"
	StatusShipped        Status = "shipped"
	StatusInTransit      Status = "in_transit"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
	StatusReturned       Status = "returned"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Customer is embedded into the order as a snapshot: correcting a customer
// record later must not retroactively change past orders.
type Customer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Company string  `json:"company"`
	Address Address `json:"address"`
}

type Specifications struct {
	Material string `json:"material"`
	Grade    string `json:"grade,omitempty"`
	Pressure string `json:"pressure,omitempty"`
}

type OrderItem struct {
	ID             string         `json:"id"`
	ItemID         string         `json:"itemId"`
	Name           string         `json:"name"`
	Category       string         `json:"category"`
	Diameter       float64        `json:"diameter"`
	Length         float64        `json:"length"`
	Quantity       int            `json:"quantity"`
	UnitPrice      float64        `json:"unitPrice"`
	TotalPrice     float64        `json:"totalPrice"`
	Specifications Specifications `json:"specifications"`
	Image          string         `json:"image,omitempty"`
}

type ShippingInfo struct {
	Method            string  `json:"method"`
	Carrier           string  `json:"carrier"`
	TrackingNumber    string  `json:"trackingNumber,omitempty"`
	EstimatedDelivery string  `json:"estimatedDelivery,omitempty"`
	ActualDelivery    string  `json:"actualDelivery,omitempty"`
	Address           Address `json:"address"`
	Cost              float64 `json:"cost"`
}

// StatusHistoryEntry records one lifecycle transition. Entries are append-only
// and chronologically non-decreasing; the last entry always matches the
// order's current status.
type StatusHistoryEntry struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	UpdatedBy string    `json:"updatedBy"`
	Notes     string    `json:"notes,omitempty"`
	Location  string    `json:"location,omitempty"`
}

type Order struct {
	ID            string               `json:"id"`
	OrderNumber   string               `json:"orderNumber"`
	Customer      Customer             `json:"customer"`
	Items         []OrderItem          `json:"items"`
	Status        Status               `json:"status"`
	Priority      Priority             `json:"priority"`
	PaymentStatus PaymentStatus        `json:"paymentStatus"`
	TotalAmount   float64              `json:"totalAmount"`
	Subtotal      float64              `json:"subtotal"`
	Tax           float64              `json:"tax"`
	ShippingCost  float64              `json:"shippingCost"`
	Discount      float64              `json:"discount,omitempty"`
	Shipping      ShippingInfo         `json:"shipping"`
	Notes         string               `json:"notes,omitempty"`
	InternalNotes string               `json:"internalNotes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
	DueDate       string               `json:"dueDate,omitempty"`
	EstCompletion string               `json:"estimatedCompletion,omitempty"`
	StatusHistory []StatusHistoryEntry `json:"statusHistory"`
	AssignedTo    string               `json:"assignedTo,omitempty"`
	Tags          []string             `json:"tags,omitempty"`
}

func (o Order) clone() Order {
	c := o
	c.Items = append([]OrderItem(nil), o.Items...)
	c.StatusHistory = append([]StatusHistoryEntry(nil), o.StatusHistory...)
	if o.Tags != nil {
		c.Tags = append([]string(nil), o.Tags...)
	}
	return c
}
