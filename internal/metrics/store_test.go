package metrics

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam-arth07/Phermo/internal/backend"
)

type fakeDashboard struct {
	users    []backend.RemoteUser
	products backend.ProductPage
	carts    []backend.Cart
	posts    []backend.Post
	err      error
}

func (f *fakeDashboard) Users(_ context.Context, _ int) ([]backend.RemoteUser, error) {
	return f.users, f.err
}

func (f *fakeDashboard) Products(_ context.Context, _, _ int) (backend.ProductPage, error) {
	return f.products, f.err
}

func (f *fakeDashboard) Carts(_ context.Context, _ int) ([]backend.Cart, error) {
	return f.carts, f.err
}

func (f *fakeDashboard) Posts(_ context.Context, _ int) ([]backend.Post, error) {
	return f.posts, f.err
}

func seededStore(fake *fakeDashboard) *Store {
	s := New(fake, rand.New(rand.NewSource(42)), zerolog.Nop())
	s.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	return s
}

func sampleDashboard() *fakeDashboard {
	return &fakeDashboard{
		users: []backend.RemoteUser{{ID: 1, Username: "a"}, {ID: 2, Username: "b"}},
		products: backend.ProductPage{
			Products: []backend.Product{
				{ID: 1, Title: "P1", Price: 10, Thumbnail: "t1"},
				{ID: 2, Title: "P2", Price: 20},
				{ID: 3, Title: "P3", Price: 30},
				{ID: 4, Title: "P4", Price: 40},
				{ID: 5, Title: "P5", Price: 50},
				{ID: 6, Title: "P6", Price: 60},
				{ID: 7, Title: "P7", Price: 70},
			},
			Total: 100,
		},
		carts: []backend.Cart{
			{ID: 1, UserID: 11, Total: 100.5},
			{ID: 2, UserID: 12, Total: 200},
			{ID: 3, UserID: 13, Total: 300},
			{ID: 4, UserID: 14, Total: 400},
			{ID: 5, UserID: 15, Total: 500},
			{ID: 6, UserID: 16, Total: 600},
		},
		posts: []backend.Post{
			{ID: 1, UserID: 5, Title: "restock announcement"},
			{ID: 2, UserID: 6, Title: "new supplier onboarded"},
		},
	}
}

func TestRefreshAssemblesSnapshot(t *testing.T) {
	s := seededStore(sampleDashboard())

	require.NoError(t, s.Refresh(context.Background()))
	snap := s.State().Snapshot

	assert.Len(t, snap.MonthlySeries, 12)
	assert.Len(t, snap.DailySeries, 7)
	assert.Len(t, snap.CategoryMix, 5)
	assert.Len(t, snap.TopProducts, 5)
	assert.Len(t, snap.RecentOrders, 5)
	assert.Len(t, snap.RecentUsers, 2)
	assert.False(t, snap.LastUpdated.IsZero())

	// Fixed headline stats.
	assert.Equal(t, 485000, snap.Stats.TotalRevenue)
	assert.Equal(t, 1847, snap.Stats.TotalOrders)
	assert.Equal(t, 892, snap.Stats.TotalCustomers)
	assert.InDelta(t, 3.2, snap.Stats.ConversionRate, 0.001)

	// Months run oldest-first and end at the current month.
	assert.Equal(t, "Jul", snap.MonthlySeries[0].Month)
	assert.Equal(t, "Jun", snap.MonthlySeries[11].Month)

	// The last daily point is today.
	assert.Equal(t, "Jun 15", snap.DailySeries[6].Date)

	valid := map[string]bool{"completed": true, "pending": true, "shipped": true, "processing": true}
	for _, order := range snap.RecentOrders {
		assert.True(t, valid[order.Status], "unexpected status %q", order.Status)
	}

	for _, point := range snap.MonthlySeries {
		assert.GreaterOrEqual(t, point.Revenue, 30000)
		assert.Less(t, point.Revenue, 80000)
		assert.GreaterOrEqual(t, point.Orders, 100)
		assert.GreaterOrEqual(t, point.Customers, 50)
	}

	for _, share := range snap.CategoryMix {
		assert.GreaterOrEqual(t, share.Value, 10)
		assert.Less(t, share.Value, 40)
		assert.NotEmpty(t, share.Color)
	}
}

func TestRefreshIsDeterministicWithSeededSource(t *testing.T) {
	a := seededStore(sampleDashboard())
	b := seededStore(sampleDashboard())

	require.NoError(t, a.Refresh(context.Background()))
	require.NoError(t, b.Refresh(context.Background()))

	assert.Equal(t, a.State().Snapshot, b.State().Snapshot)
}

func TestRefreshFailureKeepsPriorSnapshot(t *testing.T) {
	fake := sampleDashboard()
	s := seededStore(fake)
	require.NoError(t, s.Refresh(context.Background()))
	prior := s.State().Snapshot

	fake.err = &backend.FetchError{Op: "GET /users", Status: 500}
	err := s.Refresh(context.Background())
	require.Error(t, err)

	state := s.State()
	assert.Equal(t, prior, state.Snapshot)
	assert.Equal(t, "Failed to fetch dashboard data", state.Error)
	assert.False(t, state.IsLoading)
}

func TestTopProductsDeriveFromCatalog(t *testing.T) {
	fake := sampleDashboard()
	s := seededStore(fake)

	require.NoError(t, s.Refresh(context.Background()))
	top := s.State().Snapshot.TopProducts

	require.Len(t, top, 5)
	assert.Equal(t, "P1", top[0].Name)
	assert.Equal(t, "t1", top[0].Image)
	for _, p := range top {
		assert.GreaterOrEqual(t, p.Sales, 50)
		assert.Greater(t, p.Revenue, 0)
	}
}

func TestRecentOrdersDeriveFromCarts(t *testing.T) {
	s := seededStore(sampleDashboard())

	require.NoError(t, s.Refresh(context.Background()))
	orders := s.State().Snapshot.RecentOrders

	require.Len(t, orders, 5)
	assert.Equal(t, "Customer 11", orders[0].Customer)
	assert.InDelta(t, 100.5, orders[0].Amount, 0.001)
	for _, order := range orders {
		_, err := time.Parse("2006-01-02", order.Date)
		assert.NoError(t, err)
	}
}

func TestRefreshActivity(t *testing.T) {
	s := seededStore(sampleDashboard())

	require.NoError(t, s.RefreshActivity(context.Background()))
	activity := s.State().RecentActivity

	require.Len(t, activity, 2)
	assert.Equal(t, "restock announcement", activity[0].Description)
	assert.Equal(t, "User 5", activity[0].User)

	valid := map[string]bool{"user_signup": true, "order_placed": true, "product_added": true, "payment_received": true}
	for _, entry := range activity {
		assert.True(t, valid[entry.Type])
		assert.False(t, entry.Timestamp.IsZero())
	}
}

func TestRefreshActivityFailure(t *testing.T) {
	fake := sampleDashboard()
	fake.err = &backend.FetchError{Op: "GET /posts", Status: 500}
	s := seededStore(fake)

	require.Error(t, s.RefreshActivity(context.Background()))
	assert.Equal(t, "Failed to fetch recent activity", s.State().Error)
}

func TestUpdateStats(t *testing.T) {
	s := seededStore(sampleDashboard())
	require.NoError(t, s.Refresh(context.Background()))

	s.UpdateStats(func(stats *Stats) { stats.TotalOrders = 2000 })

	assert.Equal(t, 2000, s.State().Snapshot.Stats.TotalOrders)
	assert.Equal(t, 485000, s.State().Snapshot.Stats.TotalRevenue)
}
