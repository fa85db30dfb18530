package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam-arth07/Phermo/internal/backend"
	"github.com/sam-arth07/Phermo/internal/config"
	"github.com/sam-arth07/Phermo/internal/kv"
)

type fakeAuth struct {
	loginResp backend.LoginResponse
	loginErr  error
	meResp    backend.RemoteUser
	meErr     error
	loginCalls int
	meCalls    int
}

func (f *fakeAuth) Login(_ context.Context, _, _ string, _ int) (backend.LoginResponse, error) {
	f.loginCalls++
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Me(_ context.Context, _ string) (backend.RemoteUser, error) {
	f.meCalls++
	return f.meResp, f.meErr
}

func testConfig() config.SecurityConfig {
	return config.SecurityConfig{
		JWTSecret:   "test-secret",
		TokenTTL:    30 * time.Minute,
		SignupDelay: 0,
	}
}

func newTestStore(t *testing.T, auth AuthBackend, storage kv.Storage) *Store {
	t.Helper()
	s := New(context.Background(), auth, storage, testConfig(), zerolog.Nop())
	s.sleep = func(time.Duration) {}
	return s
}

func TestInitialStateUnauthenticated(t *testing.T) {
	s := newTestStore(t, &fakeAuth{}, kv.NewMemory())

	state := s.State()
	assert.False(t, state.IsAuthenticated)
	assert.Empty(t, state.Token)
	assert.Nil(t, state.User)
}

func TestLoginSuccessPersists(t *testing.T) {
	storage := kv.NewMemory()
	auth := &fakeAuth{
		loginResp: backend.LoginResponse{
			Token: "remote-token",
			RemoteUser: backend.RemoteUser{
				ID: 1, Username: "emilys", Email: "emily@x.com",
				FirstName: "Emily", LastName: "Johnson",
			},
		},
	}
	s := newTestStore(t, auth, storage)

	state, err := s.Login(context.Background(), "emilys", "pass")
	require.NoError(t, err)

	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, "remote-token", state.Token)
	require.NotNil(t, state.User)
	assert.Equal(t, "Emily", state.User.FirstName)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Error)

	token, ok, err := storage.Get(context.Background(), "token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "remote-token", token)

	raw, ok, err := storage.Get(context.Background(), "user")
	require.NoError(t, err)
	require.True(t, ok)
	var persisted Profile
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, "emilys", persisted.Username)
}

func TestLoginFailureUsesServerMessage(t *testing.T) {
	storage := kv.NewMemory()
	auth := &fakeAuth{
		loginErr: &backend.FetchError{Op: "POST /auth/login", Status: 400, Message: "Invalid credentials"},
	}
	s := newTestStore(t, auth, storage)

	state, err := s.Login(context.Background(), "bad", "creds")
	require.Error(t, err)

	assert.False(t, state.IsAuthenticated)
	assert.Equal(t, "Invalid credentials", state.Error)

	// Failure must not persist anything.
	_, ok, _ := storage.Get(context.Background(), "token")
	assert.False(t, ok)
}

func TestLoginFailureGenericMessage(t *testing.T) {
	auth := &fakeAuth{loginErr: &backend.FetchError{Op: "POST /auth/login", Err: context.DeadlineExceeded}}
	s := newTestStore(t, auth, kv.NewMemory())

	state, err := s.Login(context.Background(), "x", "y")
	require.Error(t, err)
	assert.Equal(t, "Login failed", state.Error)
}

func TestSignupSimulatesAccount(t *testing.T) {
	storage := kv.NewMemory()
	s := newTestStore(t, &fakeAuth{}, storage)
	s.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

	state, err := s.Signup(context.Background(), "Jane Mary Doe", "jane@x.com", "secret123")
	require.NoError(t, err)

	require.NotNil(t, state.User)
	assert.Equal(t, "Jane", state.User.FirstName)
	assert.Equal(t, "Mary Doe", state.User.LastName)
	assert.Equal(t, "jane@x.com", state.User.Username)
	assert.Contains(t, state.User.Image, "api.dicebear.com")
	assert.True(t, state.IsAuthenticated)
	assert.NotEmpty(t, state.Token)

	// The account record exists so the simulated account can log in later.
	_, ok, _ := storage.Get(context.Background(), "account:jane@x.com")
	assert.True(t, ok)
}

func TestSignupThenLocalLogin(t *testing.T) {
	storage := kv.NewMemory()
	auth := &fakeAuth{
		loginErr: &backend.FetchError{Op: "POST /auth/login", Status: 400, Message: "Invalid credentials"},
	}
	s := newTestStore(t, auth, storage)

	_, err := s.Signup(context.Background(), "Jane Doe", "jane@x.com", "secret123")
	require.NoError(t, err)
	s.Logout(context.Background())

	state, err := s.Login(context.Background(), "jane@x.com", "secret123")
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, "Jane", state.User.FirstName)

	// Wrong password still fails.
	_, err = s.Login(context.Background(), "jane@x.com", "wrong")
	require.Error(t, err)
	assert.False(t, s.State().IsAuthenticated)
}

func TestLogoutClearsEverything(t *testing.T) {
	storage := kv.NewMemory()
	auth := &fakeAuth{loginResp: backend.LoginResponse{Token: "tok", RemoteUser: backend.RemoteUser{Username: "u"}}}
	s := newTestStore(t, auth, storage)

	_, err := s.Login(context.Background(), "u", "p")
	require.NoError(t, err)

	s.Logout(context.Background())

	state := s.State()
	assert.False(t, state.IsAuthenticated)
	assert.Empty(t, state.Token)
	assert.Nil(t, state.User)

	_, ok, _ := storage.Get(context.Background(), "token")
	assert.False(t, ok)
	_, ok, _ = storage.Get(context.Background(), "user")
	assert.False(t, ok)
}

func TestRestoreFromStorage(t *testing.T) {
	storage := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, storage.Set(ctx, "token", "persisted-token"))
	profile, _ := json.Marshal(Profile{Username: "restored"})
	require.NoError(t, storage.Set(ctx, "user", string(profile)))

	s := newTestStore(t, &fakeAuth{}, storage)

	state := s.State()
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, "persisted-token", state.Token)
	require.NotNil(t, state.User)
	assert.Equal(t, "restored", state.User.Username)
}

func TestRefreshFailureExpiresSession(t *testing.T) {
	storage := kv.NewMemory()
	auth := &fakeAuth{
		loginResp: backend.LoginResponse{Token: "tok", RemoteUser: backend.RemoteUser{Username: "u"}},
		meErr:     &backend.FetchError{Op: "GET /auth/me", Status: 401, Message: "Token expired"},
	}
	s := newTestStore(t, auth, storage)

	_, err := s.Login(context.Background(), "u", "p")
	require.NoError(t, err)

	_, err = s.Refresh(context.Background())
	require.ErrorIs(t, err, ErrSessionExpired)

	state := s.State()
	assert.False(t, state.IsAuthenticated)
	assert.Equal(t, "Session expired", state.Error)

	_, ok, _ := storage.Get(context.Background(), "token")
	assert.False(t, ok)
}

func TestRefreshSuccessReplacesUser(t *testing.T) {
	auth := &fakeAuth{
		loginResp: backend.LoginResponse{Token: "tok", RemoteUser: backend.RemoteUser{Username: "u", FirstName: "Old"}},
		meResp:    backend.RemoteUser{Username: "u", FirstName: "New"},
	}
	s := newTestStore(t, auth, kv.NewMemory())

	_, err := s.Login(context.Background(), "u", "p")
	require.NoError(t, err)

	profile, err := s.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "New", profile.FirstName)
	assert.Equal(t, "New", s.State().User.FirstName)
}

func TestRefreshLocalTokenSkipsBackend(t *testing.T) {
	auth := &fakeAuth{meErr: &backend.FetchError{Op: "GET /auth/me", Status: 401}}
	s := newTestStore(t, auth, kv.NewMemory())

	_, err := s.Signup(context.Background(), "Jane Doe", "jane@x.com", "secret123")
	require.NoError(t, err)

	profile, err := s.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", profile.Username)
	assert.Zero(t, auth.meCalls)
}

func TestRefreshWithoutTokenExpires(t *testing.T) {
	s := newTestStore(t, &fakeAuth{}, kv.NewMemory())

	_, err := s.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestUpdateProfileMergesAndPersists(t *testing.T) {
	storage := kv.NewMemory()
	auth := &fakeAuth{loginResp: backend.LoginResponse{
		Token:      "tok",
		RemoteUser: backend.RemoteUser{Username: "u", FirstName: "First", LastName: "Last"},
	}}
	s := newTestStore(t, auth, storage)

	_, err := s.Login(context.Background(), "u", "p")
	require.NoError(t, err)

	bio := "Pharmacist"
	location := "Boston"
	profile, err := s.UpdateProfile(context.Background(), ProfileUpdate{Bio: &bio, Location: &location})
	require.NoError(t, err)

	assert.Equal(t, "Pharmacist", profile.Bio)
	assert.Equal(t, "Boston", profile.Location)
	assert.Equal(t, "First", profile.FirstName) // untouched fields survive

	raw, ok, _ := storage.Get(context.Background(), "user")
	require.True(t, ok)
	var persisted Profile
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, "Pharmacist", persisted.Bio)
}

func TestUpdateProfileWithoutSession(t *testing.T) {
	s := newTestStore(t, &fakeAuth{}, kv.NewMemory())

	name := "X"
	_, err := s.UpdateProfile(context.Background(), ProfileUpdate{FirstName: &name})
	assert.Error(t, err)
}

func TestClearError(t *testing.T) {
	auth := &fakeAuth{loginErr: &backend.FetchError{Op: "POST /auth/login", Status: 400, Message: "nope"}}
	s := newTestStore(t, auth, kv.NewMemory())

	_, _ = s.Login(context.Background(), "x", "y")
	require.NotEmpty(t, s.State().Error)

	s.ClearError()
	assert.Empty(t, s.State().Error)
}

func TestSessionInvariant(t *testing.T) {
	// isAuthenticated == (token != "") across the lifecycle.
	storage := kv.NewMemory()
	auth := &fakeAuth{loginResp: backend.LoginResponse{Token: "tok", RemoteUser: backend.RemoteUser{Username: "u"}}}
	s := newTestStore(t, auth, storage)

	check := func() {
		state := s.State()
		assert.Equal(t, state.Token != "", state.IsAuthenticated)
		if state.Token != "" {
			assert.NotNil(t, state.User)
		}
	}

	check()
	_, _ = s.Login(context.Background(), "u", "p")
	check()
	s.Logout(context.Background())
	check()
}
