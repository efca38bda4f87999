package report

import (
	"github.com/pipeworks/pipeadmin/internal/domain/orders"
)

// RGB is a fill color with 0-255 components.
type RGB struct {
	R, G, B int
}

// Brand theme, matching the host application's red accent.
var (
	headFill    = RGB{220, 53, 69}
	stripeFill  = RGB{248, 249, 250}
	defaultFill = RGB{158, 158, 158}
)

// StatusColor maps an order status to its table cell fill.
func StatusColor(s orders.Status) RGB {
	switch s {
	case orders.StatusPending:
		return RGB{255, 235, 59} // yellow
	case orders.StatusConfirmed:
		return RGB{33, 150, 243} // blue
	case orders.StatusProcessing:
		return RGB{156, 39, 176} // purple
	case orders.StatusShipped:
		return RGB{33, 150, 243} // blue
	case orders.StatusDelivered:
		return RGB{76, 175, 80} // green
	case orders.StatusCancelled:
		return RGB{244, 67, 54} // red
	default:
		return defaultFill
	}
}

// PriorityColor maps an order priority to its table cell fill.
func PriorityColor(p orders.Priority) RGB {
	switch p {
	case orders.PriorityUrgent:
		return RGB{244, 67, 54} // red
	case orders.PriorityHigh:
		return RGB{255, 152, 0} // orange
	case orders.PriorityMedium:
		return RGB{255, 235, 59} // yellow
	case orders.PriorityLow:
		return RGB{76, 175, 80} // green
	default:
		return defaultFill
	}
}
