// Package inventory holds the page-local domain records: medicines,
// customers, suppliers, sales, purchases. Lists live in memory only and reset
// with the process, mirroring a page's mounted lifetime.
package inventory

// Medicine is a stocked pharmacy item. Status is derived, never stored by the
// caller.
type Medicine struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Manufacturer     string  `json:"manufacturer"`
	BatchNumber      string  `json:"batchNumber"`
	ExpiryDate       string  `json:"expiryDate"` // YYYY-MM-DD
	Stock            int     `json:"stock"`
	MinStock         int     `json:"minStock"`
	Price            float64 `json:"price"`
	Supplier         string  `json:"supplier"`
	Status           Status  `json:"status"`
	LastRestocked    string  `json:"lastRestocked"` // YYYY-MM-DD
	Description      string  `json:"description"`
	Dosage           string  `json:"dosage"`
	ActiveIngredient string  `json:"activeIngredient"`
}

func (m Medicine) RecordID() string { return m.ID }

type Customer struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	JoinDate       string  `json:"joinDate"`
	TotalPurchases int     `json:"totalPurchases"`
	TotalSpent     float64 `json:"totalSpent"`
	LastPurchase   string  `json:"lastPurchase"`
	Status         Status  `json:"status"`
	LoyaltyPoints  int     `json:"loyaltyPoints"`
}

func (c Customer) RecordID() string { return c.ID }

type Supplier struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	Rating      float64 `json:"rating"`
	TotalOrders int     `json:"totalOrders"`
	TotalValue  float64 `json:"totalValue"`
	Status      Status  `json:"status"`
	JoinDate    string  `json:"joinDate"`
	Category    string  `json:"category"`
}

func (s Supplier) RecordID() string { return s.ID }

type Sale struct {
	ID            string  `json:"id"`
	Customer      string  `json:"customer"`
	Date          string  `json:"date"`
	Total         float64 `json:"total"`
	Items         int     `json:"items"`
	PaymentMethod string  `json:"paymentMethod"`
	Status        Status  `json:"status"`
	Receipt       string  `json:"receipt"`
}

func (s Sale) RecordID() string { return s.ID }

type Purchase struct {
	ID       string  `json:"id"`
	Supplier string  `json:"supplier"`
	Date     string  `json:"date"`
	Total    float64 `json:"total"`
	Items    int     `json:"items"`
	Status   Status  `json:"status"`
	Invoice  string  `json:"invoice"`
}

func (p Purchase) RecordID() string { return p.ID }
