package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sam-arth07/Phermo/internal/export"
	"github.com/sam-arth07/Phermo/internal/inventory"
	"github.com/sam-arth07/Phermo/internal/view"
)

func pageQuery(c *gin.Context) view.Query {
	return view.Query{
		ActiveFilter: c.DefaultQuery("filter", view.FilterAll),
		SearchTerm:   c.Query("search"),
	}
}

func (h HandlerSet) ListMedicines(c *gin.Context) {
	records := view.Filter(h.inv.Medicines.All(), pageQuery(c), view.Medicines())
	c.JSON(http.StatusOK, gin.H{"medicines": records, "total": len(records)})
}

func (h HandlerSet) AddMedicine(c *gin.Context) {
	var medicine inventory.Medicine
	if err := c.ShouldBindJSON(&medicine); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.inv.Medicines.Add(medicine)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h HandlerSet) UpdateMedicine(c *gin.Context) {
	var medicine inventory.Medicine
	if err := c.ShouldBindJSON(&medicine); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	medicine.ID = id
	updated, err := h.inv.Medicines.Update(id, medicine)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteMedicine removes a record. The confirm query parameter is the
// explicit confirmation step: without confirm=true nothing is deleted.
func (h HandlerSet) DeleteMedicine(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"
	deleted, err := h.inv.Medicines.Delete(c.Param("id"), func(string) bool { return confirmed })
	if err != nil {
		fail(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": "confirmation required"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportMedicines streams the filtered list as a CSV attachment.
func (h HandlerSet) ExportMedicines(c *gin.Context) {
	records := view.Filter(h.inv.Medicines.All(), pageQuery(c), view.Medicines())

	content, err := export.CSV(export.FormatMedicines(records))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="medicines.csv"`)
	c.Data(http.StatusOK, "text/csv;charset=utf-8", []byte(content))
}

func (h HandlerSet) ListCustomers(c *gin.Context) {
	records := view.Filter(h.inv.Customers.All(), pageQuery(c), view.Customers())
	c.JSON(http.StatusOK, gin.H{"customers": records, "total": len(records)})
}

func (h HandlerSet) ListSuppliers(c *gin.Context) {
	records := view.Filter(h.inv.Suppliers.All(), pageQuery(c), view.Suppliers())
	c.JSON(http.StatusOK, gin.H{"suppliers": records, "total": len(records)})
}

func (h HandlerSet) ListSales(c *gin.Context) {
	records := view.Filter(h.inv.Sales.All(), pageQuery(c), view.Sales())
	c.JSON(http.StatusOK, gin.H{"sales": records, "total": len(records)})
}

func (h HandlerSet) ListPurchases(c *gin.Context) {
	records := view.Filter(h.inv.Purchases.All(), pageQuery(c), view.Purchases())
	c.JSON(http.StatusOK, gin.H{"purchases": records, "total": len(records)})
}
