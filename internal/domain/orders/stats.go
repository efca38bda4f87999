package orders

// Stats is the dashboard summary. The five status buckets partition the
// collection: pending, the processing family (confirmed through
// ready_to_ship), the shipped family (shipped through out_for_delivery),
// delivered, and the cancelled family (cancelled + returned).
type Stats struct {
	Total             int     `json:"total"`
	Pending           int     `json:"pending"`
	Processing        int     `json:"processing"`
	Shipped           int     `json:"shipped"`
	Delivered         int     `json:"delivered"`
	Cancelled         int     `json:"cancelled"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

var (
	processingFamily = map[Status]bool{
		StatusConfirmed:     true,
		StatusProcessing:    true,
		StatusManufacturing: true,
		StatusQualityCheck:  true,
		StatusReadyToShip:   true,
	}
	shippedFamily = map[Status]bool{
		StatusShipped:        true,
		StatusInTransit:      true,
		StatusOutForDelivery: true,
	}
	cancelledFamily = map[Status]bool{
		StatusCancelled: true,
		StatusReturned:  true,
	}
)

// ComputeStats reduces the collection into the dashboard summary. Revenue
// counts paid orders only, and the average is guarded with a denominator
// floor of 1 so an empty or unpaid collection yields 0 rather than NaN.
func ComputeStats(list []Order) Stats {
	s := Stats{Total: len(list)}
	paid := 0
	for _, o := range list {
		switch {
		case o.Status == StatusPending:
			s.Pending++
		case processingFamily[o.Status]:
			s.Processing++
		case shippedFamily[o.Status]:
			s.Shipped++
		case o.Status == StatusDelivered:
			s.Delivered++
		case cancelledFamily[o.Status]:
			s.Cancelled++
		}
		if o.PaymentStatus == PaymentPaid {
			s.TotalRevenue += o.TotalAmount
			paid++
		}
	}
	if paid < 1 {
		paid = 1
	}
	s.AverageOrderValue = s.TotalRevenue / float64(paid)
	return s
}
