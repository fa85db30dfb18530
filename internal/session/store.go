// Package session holds credential and session state: login, signup, logout,
// refresh, profile updates. It is the sole writer of the persisted key-value
// storage.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sam-arth07/Phermo/internal/backend"
	"github.com/sam-arth07/Phermo/internal/config"
	"github.com/sam-arth07/Phermo/internal/kv"
	"github.com/sam-arth07/Phermo/internal/security"
)

const (
	keyToken = "token"
	keyUser  = "user"

	accountKeyPrefix = "account:"

	msgLoginFailed    = "Login failed"
	msgSessionExpired = "Session expired"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
)

// Profile is the user record owned by this store.
type Profile struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Image     string `json:"image,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

// State is a snapshot of the session. IsAuthenticated is true exactly when
// Token is non-empty, and User is non-nil whenever Token is non-empty.
type State struct {
	User            *Profile
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// AuthBackend is the slice of the backend API this store needs.
type AuthBackend interface {
	Login(ctx context.Context, username, password string, expiresInMins int) (backend.LoginResponse, error)
	Me(ctx context.Context, token string) (backend.RemoteUser, error)
}

// localAccount is what signup persists so the simulated account can log in
// later.
type localAccount struct {
	PasswordHash string  `json:"passwordHash"`
	Profile      Profile `json:"profile"`
}

type Store struct {
	mu      sync.Mutex
	state   State
	backend AuthBackend
	storage kv.Storage
	cfg     config.SecurityConfig
	log     zerolog.Logger

	now   func() time.Time
	sleep func(time.Duration)
}

// New builds the store, restoring any persisted session. Restore failures are
// logged and treated as a fresh, unauthenticated session.
func New(ctx context.Context, auth AuthBackend, storage kv.Storage, cfg config.SecurityConfig, log zerolog.Logger) *Store {
	s := &Store{
		backend: auth,
		storage: storage,
		cfg:     cfg,
		log:     log.With().Str("store", "session").Logger(),
		now:     time.Now,
		sleep:   time.Sleep,
	}

	token, ok, err := storage.Get(ctx, keyToken)
	if err != nil {
		s.log.Warn().Err(err).Msg("restore token failed")
		return s
	}
	if !ok {
		return s
	}

	raw, ok, err := storage.Get(ctx, keyUser)
	if err != nil || !ok {
		return s
	}
	var profile Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		s.log.Warn().Err(err).Msg("restore user failed")
		return s
	}

	s.state.Token = token
	s.state.User = &profile
	s.state.IsAuthenticated = true
	return s
}

// State returns a copy of the current session state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() State {
	state := s.state
	if s.state.User != nil {
		user := *s.state.User
		state.User = &user
	}
	return state
}

// Login authenticates against the backend. When the backend rejects the
// credentials but a locally simulated account exists for the username, the
// password is verified against the stored hash instead.
func (s *Store) Login(ctx context.Context, username, password string) (State, error) {
	s.setLoading()

	resp, err := s.backend.Login(ctx, username, password, 30)
	if err != nil {
		var fetchErr *backend.FetchError
		if errors.As(err, &fetchErr) && fetchErr.Status >= 400 && fetchErr.Status < 500 {
			if profile, ok := s.loginLocal(ctx, username, password); ok {
				return s.completeLocalLogin(ctx, profile)
			}
		}
		message := msgLoginFailed
		if errors.As(err, &fetchErr) && fetchErr.Message != "" {
			message = fetchErr.Message
		}
		s.fail(message)
		return s.State(), fmt.Errorf("login: %w", err)
	}

	profile := profileFromRemote(resp.RemoteUser)
	if err := s.persist(ctx, resp.Token, &profile); err != nil {
		s.fail(msgLoginFailed)
		return s.State(), err
	}

	s.mu.Lock()
	s.state = State{User: &profile, Token: resp.Token, IsAuthenticated: true}
	s.mu.Unlock()

	s.log.Info().Str("username", profile.Username).Msg("login succeeded")
	return s.State(), nil
}

func (s *Store) loginLocal(ctx context.Context, username, password string) (Profile, bool) {
	raw, ok, err := s.storage.Get(ctx, accountKeyPrefix+strings.ToLower(username))
	if err != nil || !ok {
		return Profile{}, false
	}
	var account localAccount
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return Profile{}, false
	}
	match, err := security.VerifyPassword(password, account.PasswordHash)
	if err != nil || !match {
		return Profile{}, false
	}
	return account.Profile, true
}

func (s *Store) completeLocalLogin(ctx context.Context, profile Profile) (State, error) {
	token, err := security.MintLocalToken(s.cfg.JWTSecret, profile.Username, profile.Email, s.cfg.TokenTTL)
	if err != nil {
		s.fail(msgLoginFailed)
		return s.State(), err
	}
	if err := s.persist(ctx, token, &profile); err != nil {
		s.fail(msgLoginFailed)
		return s.State(), err
	}

	s.mu.Lock()
	s.state = State{User: &profile, Token: token, IsAuthenticated: true}
	s.mu.Unlock()

	s.log.Info().Str("username", profile.Username).Msg("local login succeeded")
	return s.State(), nil
}

// Signup is a local simulation: no account is created server-side. It
// synthesizes a profile from the input after an artificial delay, mints a
// locally signed token, and records the account so it can log in again.
func (s *Store) Signup(ctx context.Context, name, email, password string) (State, error) {
	s.setLoading()
	s.sleep(s.cfg.SignupDelay)

	first, last := splitName(name)
	profile := Profile{
		ID:        s.now().UnixMilli(),
		FirstName: first,
		LastName:  last,
		Email:     email,
		Username:  email,
		Image:     avatarURL(name),
	}

	token, err := security.MintLocalToken(s.cfg.JWTSecret, profile.Username, email, s.cfg.TokenTTL)
	if err != nil {
		s.fail("Signup failed")
		return s.State(), err
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		s.fail("Signup failed")
		return s.State(), err
	}
	account, err := json.Marshal(localAccount{PasswordHash: hash, Profile: profile})
	if err != nil {
		s.fail("Signup failed")
		return s.State(), err
	}
	if err := s.storage.Set(ctx, accountKeyPrefix+strings.ToLower(email), string(account)); err != nil {
		s.fail("Signup failed")
		return s.State(), err
	}

	if err := s.persist(ctx, token, &profile); err != nil {
		s.fail("Signup failed")
		return s.State(), err
	}

	s.mu.Lock()
	s.state = State{User: &profile, Token: token, IsAuthenticated: true}
	s.mu.Unlock()

	s.log.Info().Str("email", email).Msg("signup simulated")
	return s.State(), nil
}

// Logout clears memory and persisted state unconditionally. No network call.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.state = State{}
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, keyToken, keyUser); err != nil {
		s.log.Warn().Err(err).Msg("clear persisted session failed")
	}
}

// Refresh re-validates the current token. Any failure is session expiry: all
// state, in memory and persisted, is cleared.
func (s *Store) Refresh(ctx context.Context) (Profile, error) {
	s.mu.Lock()
	token := s.state.Token
	s.mu.Unlock()

	if token == "" {
		s.expire(ctx)
		return Profile{}, fmt.Errorf("refresh: %w", ErrSessionExpired)
	}

	// Locally minted tokens never validate against the backend.
	if claims, err := security.ParseLocalToken(token, s.cfg.JWTSecret); err == nil {
		s.mu.Lock()
		user := s.state.User
		s.mu.Unlock()
		if user == nil || user.Username != claims.Username {
			s.expire(ctx)
			return Profile{}, fmt.Errorf("refresh: %w", ErrSessionExpired)
		}
		return *user, nil
	}

	remote, err := s.backend.Me(ctx, token)
	if err != nil {
		s.expire(ctx)
		return Profile{}, fmt.Errorf("refresh: %w", ErrSessionExpired)
	}

	profile := profileFromRemote(remote)

	s.mu.Lock()
	// Keep locally edited profile fields the backend does not know about.
	if s.state.User != nil {
		profile.Phone = firstNonEmpty(profile.Phone, s.state.User.Phone)
		profile.Location = s.state.User.Location
		profile.Bio = s.state.User.Bio
	}
	s.state.User = &profile
	s.mu.Unlock()

	if err := s.persistUser(ctx, &profile); err != nil {
		s.log.Warn().Err(err).Msg("persist refreshed user failed")
	}
	return profile, nil
}

// ProfileUpdate carries the fields UpdateProfile merges. Nil fields are left
// untouched.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Location  *string
	Bio       *string
}

// UpdateProfile merges the given fields into the current user and re-persists.
// Local-only: no backend call is made.
func (s *Store) UpdateProfile(ctx context.Context, update ProfileUpdate) (Profile, error) {
	s.mu.Lock()
	if s.state.User == nil {
		s.mu.Unlock()
		return Profile{}, fmt.Errorf("update profile: no active session")
	}

	user := *s.state.User
	apply(&user.FirstName, update.FirstName)
	apply(&user.LastName, update.LastName)
	apply(&user.Email, update.Email)
	apply(&user.Phone, update.Phone)
	apply(&user.Location, update.Location)
	apply(&user.Bio, update.Bio)
	s.state.User = &user
	s.mu.Unlock()

	if err := s.persistUser(ctx, &user); err != nil {
		return Profile{}, err
	}
	return user, nil
}

// ClearError dismisses the current error banner.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.state.Error = ""
	s.mu.Unlock()
}

func (s *Store) setLoading() {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.Error = ""
	s.mu.Unlock()
}

func (s *Store) fail(message string) {
	s.mu.Lock()
	s.state = State{Error: message}
	s.mu.Unlock()
}

func (s *Store) expire(ctx context.Context) {
	s.mu.Lock()
	s.state = State{Error: msgSessionExpired}
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, keyToken, keyUser); err != nil {
		s.log.Warn().Err(err).Msg("clear persisted session failed")
	}
}

func (s *Store) persist(ctx context.Context, token string, profile *Profile) error {
	if err := s.storage.Set(ctx, keyToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return s.persistUser(ctx, profile)
}

func (s *Store) persistUser(ctx context.Context, profile *Profile) error {
	encoded, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.storage.Set(ctx, keyUser, string(encoded)); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	return nil
}

func profileFromRemote(user backend.RemoteUser) Profile {
	return Profile{
		ID:        int64(user.ID),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Username:  user.Username,
		Image:     user.Image,
		Phone:     user.Phone,
	}
}

// splitName splits a display name on the first space.
func splitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func avatarURL(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(seed)
}

func apply(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
