package inventory

import (
	"time"

	"github.com/sam-arth07/Phermo/internal/ids"
)

// NewMedicineList builds the medicine collection with the shared CRUD rules:
// name/category/manufacturer required, MED- ids, derived stock status,
// restock date stamped on add.
func NewMedicineList(seed []Medicine) *List[Medicine] {
	return NewList(ListConfig[Medicine]{
		Prefix: "MED",
		Validate: func(m Medicine) error {
			var missing []string
			if m.Name == "" {
				missing = append(missing, "name")
			}
			if m.Category == "" {
				missing = append(missing, "category")
			}
			if m.Manufacturer == "" {
				missing = append(missing, "manufacturer")
			}
			if len(missing) > 0 {
				return &ValidationError{Fields: missing}
			}
			return nil
		},
		Derive: func(m *Medicine, today time.Time) {
			m.Status = DeriveStatusFromDate(m.Stock, m.MinStock, m.ExpiryDate, today)
		},
		Stamp: func(m *Medicine, id string, today time.Time) {
			m.ID = id
			m.LastRestocked = today.Format("2006-01-02")
		},
	}, seed)
}

// NewCustomerList builds the customer collection. Customer status is a plain
// facet, not derived.
func NewCustomerList(seed []Customer) *List[Customer] {
	return NewList(ListConfig[Customer]{
		Prefix: "CUST",
		Validate: func(c Customer) error {
			var missing []string
			if c.Name == "" {
				missing = append(missing, "name")
			}
			if c.Email == "" {
				missing = append(missing, "email")
			}
			if len(missing) > 0 {
				return &ValidationError{Fields: missing}
			}
			return nil
		},
		Stamp: func(c *Customer, id string, today time.Time) {
			c.ID = id
			c.JoinDate = today.Format("2006-01-02")
			if c.Status == "" {
				c.Status = StatusActive
			}
		},
	}, seed)
}

func NewSupplierList(seed []Supplier) *List[Supplier] {
	return NewList(ListConfig[Supplier]{
		Prefix: "SUP",
		Validate: func(s Supplier) error {
			var missing []string
			if s.Name == "" {
				missing = append(missing, "name")
			}
			if s.Email == "" {
				missing = append(missing, "email")
			}
			if len(missing) > 0 {
				return &ValidationError{Fields: missing}
			}
			return nil
		},
		Stamp: func(s *Supplier, id string, today time.Time) {
			s.ID = id
			s.JoinDate = today.Format("2006-01-02")
			if s.Status == "" {
				s.Status = StatusActive
			}
		},
	}, seed)
}

func NewSaleList(seed []Sale) *List[Sale] {
	return NewList(ListConfig[Sale]{
		Prefix: "SALE",
		Validate: func(s Sale) error {
			var missing []string
			if s.Customer == "" {
				missing = append(missing, "customer")
			}
			if len(missing) > 0 {
				return &ValidationError{Fields: missing}
			}
			return nil
		},
		Stamp: func(s *Sale, id string, today time.Time) {
			s.ID = id
			if s.Date == "" {
				s.Date = today.Format("2006-01-02")
			}
			if s.Status == "" {
				s.Status = StatusPending
			}
			if s.Receipt == "" {
				s.Receipt = "RCP-" + ids.New()
			}
		},
	}, seed)
}

func NewPurchaseList(seed []Purchase) *List[Purchase] {
	return NewList(ListConfig[Purchase]{
		Prefix: "PUR",
		Validate: func(p Purchase) error {
			var missing []string
			if p.Supplier == "" {
				missing = append(missing, "supplier")
			}
			if len(missing) > 0 {
				return &ValidationError{Fields: missing}
			}
			return nil
		},
		Stamp: func(p *Purchase, id string, today time.Time) {
			p.ID = id
			if p.Date == "" {
				p.Date = today.Format("2006-01-02")
			}
			if p.Status == "" {
				p.Status = StatusPending
			}
			if p.Invoice == "" {
				p.Invoice = "INV-" + ids.New()
			}
		},
	}, seed)
}
