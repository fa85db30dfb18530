package inventory

// Sample datasets the list pages mount with. Statuses on medicines are the
// stored snapshot values; DeriveStatus recomputes them on every mutation.

func SeedMedicines() []Medicine {
	return []Medicine{
		{
			ID: "MED-001", Name: "Paracetamol 500mg", Category: "Pain Relief",
			Manufacturer: "PharmaCorp", BatchNumber: "PC2024001", ExpiryDate: "2025-12-15",
			Stock: 150, MinStock: 50, Price: 12.50, Supplier: "MediCorp Solutions",
			Status: StatusInStock, LastRestocked: "2024-05-15",
			Description: "Effective pain reliever and fever reducer",
			Dosage:      "500mg", ActiveIngredient: "Paracetamol",
		},
		{
			ID: "MED-002", Name: "Amoxicillin 250mg", Category: "Antibiotics",
			Manufacturer: "BioTech Ltd", BatchNumber: "BT2024002", ExpiryDate: "2025-08-20",
			Stock: 25, MinStock: 30, Price: 8.75, Supplier: "PharmaTech Ltd",
			Status: StatusLowStock, LastRestocked: "2024-04-10",
			Description: "Broad-spectrum penicillin antibiotic",
			Dosage:      "250mg", ActiveIngredient: "Amoxicillin",
		},
		{
			ID: "MED-003", Name: "Ibuprofen 400mg", Category: "Anti-inflammatory",
			Manufacturer: "HealthMed Inc", BatchNumber: "HM2024003", ExpiryDate: "2025-11-30",
			Stock: 80, MinStock: 40, Price: 15.25, Supplier: "Global Medicine Inc",
			Status: StatusInStock, LastRestocked: "2024-06-01",
			Description: "Non-steroidal anti-inflammatory drug",
			Dosage:      "400mg", ActiveIngredient: "Ibuprofen",
		},
		{
			ID: "MED-004", Name: "Lisinopril 10mg", Category: "Cardiovascular",
			Manufacturer: "CardioPharm", BatchNumber: "CP2024004", ExpiryDate: "2024-08-15",
			Stock: 60, MinStock: 25, Price: 22.00, Supplier: "HealthCare Distributors",
			Status: StatusExpiringSoon, LastRestocked: "2024-03-20",
			Description: "ACE inhibitor for high blood pressure",
			Dosage:      "10mg", ActiveIngredient: "Lisinopril",
		},
		{
			ID: "MED-005", Name: "Metformin 500mg", Category: "Diabetes",
			Manufacturer: "DiabetesRx", BatchNumber: "DR2024005", ExpiryDate: "2026-03-10",
			Stock: 0, MinStock: 35, Price: 18.50, Supplier: "Advanced Biotech",
			Status: StatusOutOfStock, LastRestocked: "2024-01-15",
			Description: "Type 2 diabetes medication",
			Dosage:      "500mg", ActiveIngredient: "Metformin",
		},
	}
}

func SeedCustomers() []Customer {
	return []Customer{
		{
			ID: "CUST-001", Name: "John Doe", Email: "john.doe@email.com",
			Phone: "+1 (555) 123-4567", Address: "123 Main Street, New York, NY 10001",
			JoinDate: "2024-01-15", TotalPurchases: 15, TotalSpent: 1247.50,
			LastPurchase: "2024-06-10", Status: StatusActive, LoyaltyPoints: 125,
		},
		{
			ID: "CUST-002", Name: "Sarah Johnson", Email: "sarah.j@email.com",
			Phone: "+1 (555) 987-6543", Address: "456 Oak Avenue, Boston, MA 02101",
			JoinDate: "2024-02-22", TotalPurchases: 8, TotalSpent: 689.25,
			LastPurchase: "2024-06-09", Status: StatusActive, LoyaltyPoints: 68,
		},
		{
			ID: "CUST-003", Name: "Mike Wilson", Email: "mike.wilson@email.com",
			Phone: "+1 (555) 456-7890", Address: "789 Pine Road, Chicago, IL 60601",
			JoinDate: "2023-11-08", TotalPurchases: 23, TotalSpent: 2156.75,
			LastPurchase: "2024-06-08", Status: StatusVIP, LoyaltyPoints: 215,
		},
		{
			ID: "CUST-004", Name: "Emily Davis", Email: "emily.davis@email.com",
			Phone: "+1 (555) 234-5678", Address: "321 Elm Street, Dallas, TX 75201",
			JoinDate: "2024-03-10", TotalPurchases: 5, TotalSpent: 324.80,
			LastPurchase: "2024-05-28", Status: StatusInactive, LoyaltyPoints: 32,
		},
		{
			ID: "CUST-005", Name: "David Brown", Email: "david.brown@email.com",
			Phone: "+1 (555) 345-6789", Address: "654 Maple Drive, San Francisco, CA 94102",
			JoinDate: "2024-04-12", TotalPurchases: 12, TotalSpent: 967.90,
			LastPurchase: "2024-06-07", Status: StatusActive, LoyaltyPoints: 96,
		},
	}
}

func SeedSuppliers() []Supplier {
	return []Supplier{
		{
			ID: "SUP-001", Name: "MediCorp Solutions", Email: "contact@medicorp.com",
			Phone: "+1 (555) 123-4567", Address: "123 Medical Drive, New York, NY 10001",
			Rating: 4.8, TotalOrders: 45, TotalValue: 125750,
			Status: StatusActive, JoinDate: "2023-01-15", Category: "pharmaceuticals",
		},
		{
			ID: "SUP-002", Name: "PharmaTech Ltd", Email: "sales@pharmatech.com",
			Phone: "+1 (555) 987-6543", Address: "456 Science Park, Boston, MA 02101",
			Rating: 4.6, TotalOrders: 32, TotalValue: 89420,
			Status: StatusActive, JoinDate: "2023-03-22", Category: "medical_devices",
		},
		{
			ID: "SUP-003", Name: "Global Medicine Inc", Email: "info@globalmedicine.com",
			Phone: "+1 (555) 456-7890", Address: "789 Healthcare Blvd, Chicago, IL 60601",
			Rating: 4.9, TotalOrders: 67, TotalValue: 198350,
			Status: StatusActive, JoinDate: "2022-11-08", Category: "pharmaceuticals",
		},
		{
			ID: "SUP-004", Name: "HealthCare Distributors", Email: "orders@healthcare-dist.com",
			Phone: "+1 (555) 234-5678", Address: "321 Distribution Way, Dallas, TX 75201",
			Rating: 4.3, TotalOrders: 28, TotalValue: 67890,
			Status: StatusInactive, JoinDate: "2023-05-10", Category: "supplies",
		},
		{
			ID: "SUP-005", Name: "Advanced Biotech", Email: "partnerships@advancedbio.com",
			Phone: "+1 (555) 345-6789", Address: "654 Innovation Drive, San Francisco, CA 94102",
			Rating: 4.7, TotalOrders: 23, TotalValue: 156780,
			Status: StatusActive, JoinDate: "2023-07-12", Category: "pharmaceuticals",
		},
	}
}

func SeedSales() []Sale {
	return []Sale{
		{
			ID: "SALE-001", Customer: "John Doe", Date: "2024-06-10", Total: 247.50,
			Items: 5, PaymentMethod: "card", Status: StatusCompleted, Receipt: "RCP-2024-001",
		},
		{
			ID: "SALE-002", Customer: "Sarah Johnson", Date: "2024-06-10", Total: 89.25,
			Items: 3, PaymentMethod: "cash", Status: StatusCompleted, Receipt: "RCP-2024-002",
		},
		{
			ID: "SALE-003", Customer: "Mike Wilson", Date: "2024-06-09", Total: 156.75,
			Items: 7, PaymentMethod: "card", Status: StatusRefunded, Receipt: "RCP-2024-003",
		},
		{
			ID: "SALE-004", Customer: "Emily Davis", Date: "2024-06-09", Total: 324.80,
			Items: 12, PaymentMethod: "insurance", Status: StatusPending, Receipt: "RCP-2024-004",
		},
		{
			ID: "SALE-005", Customer: "David Brown", Date: "2024-06-08", Total: 67.90,
			Items: 2, PaymentMethod: "cash", Status: StatusCompleted, Receipt: "RCP-2024-005",
		},
	}
}

func SeedPurchases() []Purchase {
	return []Purchase{
		{
			ID: "PUR-001", Supplier: "MediCorp Solutions", Date: "2024-06-10",
			Total: 15750, Items: 25, Status: StatusCompleted, Invoice: "INV-2024-001",
		},
		{
			ID: "PUR-002", Supplier: "PharmaTech Ltd", Date: "2024-06-09",
			Total: 8420, Items: 12, Status: StatusPending, Invoice: "INV-2024-002",
		},
		{
			ID: "PUR-003", Supplier: "Global Medicine Inc", Date: "2024-06-08",
			Total: 22350, Items: 35, Status: StatusCompleted, Invoice: "INV-2024-003",
		},
		{
			ID: "PUR-004", Supplier: "HealthCare Distributors", Date: "2024-06-07",
			Total: 12150, Items: 18, Status: StatusCancelled, Invoice: "INV-2024-004",
		},
	}
}
