// Package metrics assembles the dashboard snapshot: aggregated business
// metrics from concurrent backend reads plus synthesized sample series. The
// random source is injected so tests are deterministic.
package metrics

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sam-arth07/Phermo/internal/backend"
)

const (
	msgFetchDashboard = "Failed to fetch dashboard data"
	msgFetchActivity  = "Failed to fetch recent activity"
)

type MonthlyPoint struct {
	Month     string `json:"month"`
	Revenue   int    `json:"revenue"`
	Orders    int    `json:"orders"`
	Customers int    `json:"customers"`
}

type DailyPoint struct {
	Date   string `json:"date"`
	Sales  int    `json:"sales"`
	Profit int    `json:"profit"`
}

type CategoryShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type Stats struct {
	TotalRevenue   int     `json:"totalRevenue"`
	TotalOrders    int     `json:"totalOrders"`
	TotalCustomers int     `json:"totalCustomers"`
	ConversionRate float64 `json:"conversionRate"`
}

type Order struct {
	ID       int     `json:"id"`
	Customer string  `json:"customer"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
	Date     string  `json:"date"`
}

type ProductSummary struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sales   int    `json:"sales"`
	Revenue int    `json:"revenue"`
	Image   string `json:"image,omitempty"`
}

type Activity struct {
	ID          int       `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	User        string    `json:"user"`
}

// Snapshot is fully replaced on each successful refresh; synthesized and real
// fields coexist by design.
type Snapshot struct {
	MonthlySeries []MonthlyPoint       `json:"monthlySeries"`
	DailySeries   []DailyPoint         `json:"dailySeries"`
	CategoryMix   []CategoryShare      `json:"categoryMix"`
	Stats         Stats                `json:"stats"`
	RecentOrders  []Order              `json:"recentOrders"`
	TopProducts   []ProductSummary     `json:"topProducts"`
	RecentUsers   []backend.RemoteUser `json:"recentUsers"`
	LastUpdated   time.Time            `json:"lastUpdated"`
}

// State is a snapshot of the store itself.
type State struct {
	Snapshot       Snapshot
	RecentActivity []Activity
	IsLoading      bool
	Error          string
}

// DashboardBackend is the slice of the backend API this store needs.
type DashboardBackend interface {
	Users(ctx context.Context, limit int) ([]backend.RemoteUser, error)
	Products(ctx context.Context, limit, skip int) (backend.ProductPage, error)
	Carts(ctx context.Context, limit int) ([]backend.Cart, error)
	Posts(ctx context.Context, limit int) ([]backend.Post, error)
}

var orderStatuses = [...]string{"completed", "pending", "shipped", "processing"}

var activityTypes = [...]string{"user_signup", "order_placed", "product_added", "payment_received"}

var categoryMixTemplate = []CategoryShare{
	{Name: "Pain Relief", Color: "#3B82F6"},
	{Name: "Antibiotics", Color: "#EF4444"},
	{Name: "Cardiovascular", Color: "#F59E0B"},
	{Name: "Anti-inflammatory", Color: "#10B981"},
	{Name: "Diabetes", Color: "#8B5CF6"},
}

type Store struct {
	mu       sync.Mutex
	snapshot Snapshot
	activity []Activity
	loading  bool
	errMsg   string

	backend DashboardBackend
	rng     *rand.Rand
	now     func() time.Time
	log     zerolog.Logger
}

// New builds the store. rng drives every synthesized number; pass a seeded
// source for reproducible output.
func New(dashboard DashboardBackend, rng *rand.Rand, log zerolog.Logger) *Store {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Store{
		backend: dashboard,
		rng:     rng,
		now:     time.Now,
		log:     log.With().Str("store", "dashboard").Logger(),
	}
}

// State returns a copy of the current store state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Snapshot:       s.snapshot,
		RecentActivity: append([]Activity(nil), s.activity...),
		IsLoading:      s.loading,
		Error:          s.errMsg,
	}
}

// Refresh performs the three backend reads concurrently, overlays the
// synthesized series, and replaces the snapshot wholesale. On failure the
// prior snapshot is left untouched.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	var (
		users    []backend.RemoteUser
		products backend.ProductPage
		carts    []backend.Cart
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.backend.Users(gctx, 5)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.backend.Products(gctx, 10, 0)
		return err
	})
	g.Go(func() error {
		var err error
		carts, err = s.backend.Carts(gctx, 10)
		return err
	})

	if err := g.Wait(); err != nil {
		s.mu.Lock()
		s.loading = false
		s.errMsg = msgFetchDashboard
		s.mu.Unlock()
		return fmt.Errorf("refresh dashboard: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.snapshot = Snapshot{
		MonthlySeries: s.monthlySeries(now),
		DailySeries:   s.dailySeries(now),
		CategoryMix:   s.categoryMix(),
		Stats: Stats{
			TotalRevenue:   485000,
			TotalOrders:    1847,
			TotalCustomers: 892,
			ConversionRate: 3.2,
		},
		RecentOrders: s.recentOrders(carts, now),
		TopProducts:  s.topProducts(products.Products),
		RecentUsers:  users,
		LastUpdated:  now,
	}
	s.loading = false

	s.log.Debug().Time("last_updated", now).Msg("dashboard snapshot replaced")
	return nil
}

// RefreshActivity replaces the recent-activity feed from demo posts.
func (s *Store) RefreshActivity(ctx context.Context) error {
	posts, err := s.backend.Posts(ctx, 10)
	if err != nil {
		s.mu.Lock()
		s.errMsg = msgFetchActivity
		s.mu.Unlock()
		return fmt.Errorf("refresh activity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	activity := make([]Activity, 0, len(posts))
	for _, post := range posts {
		activity = append(activity, Activity{
			ID:          post.ID,
			Type:        activityTypes[s.rng.Intn(len(activityTypes))],
			Description: post.Title,
			Timestamp:   now.Add(-time.Duration(s.rng.Int63n(int64(24 * time.Hour)))),
			User:        fmt.Sprintf("User %d", post.UserID),
		})
	}
	s.activity = activity
	return nil
}

// ClearError dismisses the current error banner.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

// UpdateStats merges overrides into the headline stats.
func (s *Store) UpdateStats(update func(*Stats)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	update(&s.snapshot.Stats)
}

func (s *Store) monthlySeries(now time.Time) []MonthlyPoint {
	points := make([]MonthlyPoint, 0, 12)
	for i := 11; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		points = append(points, MonthlyPoint{
			Month:     month.Format("Jan"),
			Revenue:   s.rng.Intn(50000) + 30000,
			Orders:    s.rng.Intn(200) + 100,
			Customers: s.rng.Intn(100) + 50,
		})
	}
	return points
}

func (s *Store) dailySeries(now time.Time) []DailyPoint {
	points := make([]DailyPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		points = append(points, DailyPoint{
			Date:   day.Format("Jan 2"),
			Sales:  s.rng.Intn(5000) + 2000,
			Profit: s.rng.Intn(2000) + 800,
		})
	}
	return points
}

func (s *Store) categoryMix() []CategoryShare {
	mix := make([]CategoryShare, len(categoryMixTemplate))
	copy(mix, categoryMixTemplate)
	for i := range mix {
		mix[i].Value = s.rng.Intn(30) + 10
	}
	return mix
}

func (s *Store) topProducts(products []backend.Product) []ProductSummary {
	if len(products) > 5 {
		products = products[:5]
	}
	summaries := make([]ProductSummary, 0, len(products))
	for _, product := range products {
		summaries = append(summaries, ProductSummary{
			ID:      product.ID,
			Name:    product.Title,
			Sales:   s.rng.Intn(200) + 50,
			Revenue: int(product.Price * (s.rng.Float64()*200 + 50)),
			Image:   product.Thumbnail,
		})
	}
	return summaries
}

func (s *Store) recentOrders(carts []backend.Cart, now time.Time) []Order {
	if len(carts) > 5 {
		carts = carts[:5]
	}
	orders := make([]Order, 0, len(carts))
	for _, cart := range carts {
		orders = append(orders, Order{
			ID:       cart.ID,
			Customer: fmt.Sprintf("Customer %d", cart.UserID),
			Amount:   cart.Total,
			Status:   orderStatuses[s.rng.Intn(len(orderStatuses))],
			Date:     now.Add(-time.Duration(s.rng.Int63n(int64(7 * 24 * time.Hour)))).Format("2006-01-02"),
		})
	}
	return orders
}
