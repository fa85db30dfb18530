package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sam-arth07/Phermo/internal/backend"
	"github.com/sam-arth07/Phermo/internal/catalog"
	"github.com/sam-arth07/Phermo/internal/config"
	"github.com/sam-arth07/Phermo/internal/inventory"
	"github.com/sam-arth07/Phermo/internal/metrics"
	"github.com/sam-arth07/Phermo/internal/middleware"
	"github.com/sam-arth07/Phermo/internal/session"
)

// Inventory bundles the page-local record lists.
type Inventory struct {
	Medicines *inventory.List[inventory.Medicine]
	Customers *inventory.List[inventory.Customer]
	Suppliers *inventory.List[inventory.Supplier]
	Sales     *inventory.List[inventory.Sale]
	Purchases *inventory.List[inventory.Purchase]
}

// SeededInventory builds the lists with the sample datasets the pages mount
// with.
func SeededInventory() Inventory {
	return Inventory{
		Medicines: inventory.NewMedicineList(inventory.SeedMedicines()),
		Customers: inventory.NewCustomerList(inventory.SeedCustomers()),
		Suppliers: inventory.NewSupplierList(inventory.SeedSuppliers()),
		Sales:     inventory.NewSaleList(inventory.SeedSales()),
		Purchases: inventory.NewPurchaseList(inventory.SeedPurchases()),
	}
}

type HandlerSet struct {
	log       zerolog.Logger
	cfg       *config.AppConfig
	sessions  *session.Store
	catalog   *catalog.Store
	dashboard *metrics.Store
	inv       Inventory
}

func NewHandlerSet(
	log zerolog.Logger,
	cfg *config.AppConfig,
	sessions *session.Store,
	catalogStore *catalog.Store,
	dashboard *metrics.Store,
	inv Inventory,
) HandlerSet {
	return HandlerSet{
		log:       log,
		cfg:       cfg,
		sessions:  sessions,
		catalog:   catalogStore,
		dashboard: dashboard,
		inv:       inv,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/signup", h.Signup)

		protected := v1.Group("/auth")
		protected.Use(middleware.Auth(h.sessions))
		protected.POST("/logout", h.Logout)
		protected.POST("/refresh", h.RefreshSession)
		protected.GET("/me", h.Me)
		protected.PATCH("/profile", h.UpdateProfile)
	}

	products := v1.Group("/products")
	products.Use(middleware.Auth(h.sessions))
	{
		products.GET("", h.ListProducts)
		products.POST("", h.AddProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
		products.GET("/categories", h.ListCategories)
	}

	dashboard := v1.Group("/dashboard")
	dashboard.Use(middleware.Auth(h.sessions))
	{
		dashboard.GET("", h.Dashboard)
		dashboard.POST("/refresh", h.RefreshDashboard)
		dashboard.GET("/activity", h.RecentActivity)
	}

	inv := v1.Group("/inventory")
	inv.Use(middleware.Auth(h.sessions))
	{
		inv.GET("/medicines", h.ListMedicines)
		inv.POST("/medicines", h.AddMedicine)
		inv.PUT("/medicines/:id", h.UpdateMedicine)
		inv.DELETE("/medicines/:id", h.DeleteMedicine)
		inv.GET("/medicines/export", h.ExportMedicines)

		inv.GET("/customers", h.ListCustomers)
		inv.GET("/suppliers", h.ListSuppliers)
		inv.GET("/sales", h.ListSales)
		inv.GET("/purchases", h.ListPurchases)
	}
}

// fail translates store errors into HTTP statuses: validation 400, missing
// record 404, backend failure 502.
func fail(c *gin.Context, err error) {
	var validationErr *inventory.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		return
	}
	if errors.Is(err, inventory.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	var fetchErr *backend.FetchError
	if errors.As(err, &fetchErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
