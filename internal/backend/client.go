// Package backend is the HTTP client for the external catalog/auth API. It is
// a collaborator: every read and mutation the stores make goes through here.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sam-arth07/Phermo/internal/config"
)

// FetchError is any network or server failure on a backend call. Message is
// safe to surface to the user.
type FetchError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
}

func (e *FetchError) Unwrap() error { return e.Err }

type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(cfg config.BackendConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log.With().Str("component", "backend").Logger(),
	}
}

// Login posts credentials to the auth endpoint. The returned error carries
// the server-provided message when the backend rejects them.
func (c *Client) Login(ctx context.Context, username, password string, expiresInMins int) (LoginResponse, error) {
	body := map[string]any{
		"username":      username,
		"password":      password,
		"expiresInMins": expiresInMins,
	}
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return LoginResponse{}, err
	}
	return resp, nil
}

// Me validates a token and returns the profile it belongs to.
func (c *Client) Me(ctx context.Context, token string) (RemoteUser, error) {
	var user RemoteUser
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &user); err != nil {
		return RemoteUser{}, err
	}
	return user, nil
}

// Products fetches one page of the catalog listing.
func (c *Client) Products(ctx context.Context, limit, skip int) (ProductPage, error) {
	path := "/products?" + pageQuery(limit, skip)
	var page ProductPage
	if err := c.do(ctx, http.MethodGet, path, "", nil, &page); err != nil {
		return ProductPage{}, err
	}
	return page, nil
}

// SearchProducts fetches one page of catalog search results.
func (c *Client) SearchProducts(ctx context.Context, query string, limit, skip int) (ProductPage, error) {
	path := "/products/search?q=" + url.QueryEscape(query) + "&" + pageQuery(limit, skip)
	var page ProductPage
	if err := c.do(ctx, http.MethodGet, path, "", nil, &page); err != nil {
		return ProductPage{}, err
	}
	return page, nil
}

func (c *Client) AddProduct(ctx context.Context, product Product) (Product, error) {
	var created Product
	if err := c.do(ctx, http.MethodPost, "/products/add", "", product, &created); err != nil {
		return Product{}, err
	}
	return created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, product Product) (Product, error) {
	var updated Product
	if err := c.do(ctx, http.MethodPut, "/products/"+strconv.Itoa(id), "", product, &updated); err != nil {
		return Product{}, err
	}
	return updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/products/"+strconv.Itoa(id), "", nil, nil)
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/products/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Users fetches demo users for the dashboard.
func (c *Client) Users(ctx context.Context, limit int) ([]RemoteUser, error) {
	var list userList
	if err := c.do(ctx, http.MethodGet, "/users?limit="+strconv.Itoa(limit), "", nil, &list); err != nil {
		return nil, err
	}
	return list.Users, nil
}

// Carts fetches demo carts for the dashboard.
func (c *Client) Carts(ctx context.Context, limit int) ([]Cart, error) {
	var list cartList
	if err := c.do(ctx, http.MethodGet, "/carts?limit="+strconv.Itoa(limit), "", nil, &list); err != nil {
		return nil, err
	}
	return list.Carts, nil
}

// Posts fetches demo posts for the activity feed.
func (c *Client) Posts(ctx context.Context, limit int) ([]Post, error) {
	var list postList
	if err := c.do(ctx, http.MethodGet, "/posts?limit="+strconv.Itoa(limit), "", nil, &list); err != nil {
		return nil, err
	}
	return list.Posts, nil
}

func pageQuery(limit, skip int) string {
	return "limit=" + strconv.Itoa(limit) + "&skip=" + strconv.Itoa(skip)
}

func (c *Client) do(ctx context.Context, method, path, token string, body any, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &FetchError{Op: op, Err: fmt.Errorf("encode body: %w", err)}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &FetchError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Msg("backend request failed")
		return &FetchError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &FetchError{Op: op, Status: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// serverMessage extracts the {"message": "..."} body the backend sends with
// error statuses.
func serverMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}
