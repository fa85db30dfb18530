package inventory

import (
	"math"
	"time"
)

// Status is a derived record state.
type Status string

const (
	StatusInStock      Status = "in_stock"
	StatusLowStock     Status = "low_stock"
	StatusOutOfStock   Status = "out_of_stock"
	StatusExpiringSoon Status = "expiring_soon"

	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusVIP      Status = "vip"

	StatusCompleted  Status = "completed"
	StatusPending    Status = "pending"
	StatusRefunded   Status = "refunded"
	StatusCancelled  Status = "cancelled"
	StatusShipped    Status = "shipped"
	StatusProcessing Status = "processing"
)

const expiryWindowDays = 30

// DeriveStatus computes a medicine's stock status. The checks are an ordered
// decision list: stock-out and low-stock take precedence over expiry.
func DeriveStatus(stock, minStock int, expiry, today time.Time) Status {
	if stock == 0 {
		return StatusOutOfStock
	}
	if stock <= minStock {
		return StatusLowStock
	}
	if !expiry.IsZero() {
		daysUntilExpiry := int(math.Ceil(expiry.Sub(today).Hours() / 24))
		if daysUntilExpiry <= expiryWindowDays {
			return StatusExpiringSoon
		}
	}
	return StatusInStock
}

// DeriveStatusFromDate is DeriveStatus over a YYYY-MM-DD expiry string. An
// unparseable or empty date is treated as no expiry.
func DeriveStatusFromDate(stock, minStock int, expiryDate string, today time.Time) Status {
	expiry, err := time.Parse("2006-01-02", expiryDate)
	if err != nil {
		expiry = time.Time{}
	}
	return DeriveStatus(stock, minStock, expiry, today)
}
