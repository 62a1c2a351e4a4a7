package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"giveaway/internal/model"
)

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("pickup not found")
	ErrInvalidStatus = errors.New("invalid status")
)

// Client talks to the pickup API.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

// Login exchanges credentials for a session. The bearer token comes
// back in the Authorization response header.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("encode login request: %w", err)
	}

	url := c.baseURL + "/api/charity/login"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var res loginResponse
		if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return &Session{
			CharityID: res.ID,
			Name:      res.Name,
			Email:     res.Email,
			Location:  res.Location,
			Token:     strings.TrimPrefix(resp.Header.Get("Authorization"), "Bearer "),
		}, nil
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, unexpectedStatus(resp)
	}
}

// ListPickups fetches the full pickup list.
func (c *Client) ListPickups(ctx context.Context, session *Session) ([]model.Pickup, error) {
	url := c.baseURL + "/api/charity/pickups"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	authorize(req, session)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var pickups []model.Pickup
		if err := json.NewDecoder(resp.Body).Decode(&pickups); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return pickups, nil
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, unexpectedStatus(resp)
	}
}

// PatchStatus updates one pickup's status and returns the record the
// server now holds.
func (c *Client) PatchStatus(ctx context.Context, session *Session, id string, status model.Status) (*model.Pickup, error) {
	body, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/api/charity/pickups/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	authorize(req, session)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var pickup model.Pickup
		if err := json.NewDecoder(resp.Body).Decode(&pickup); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return &pickup, nil
	case http.StatusBadRequest:
		return nil, ErrInvalidStatus
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, unexpectedStatus(resp)
	}
}

func authorize(req *http.Request, session *Session) {
	if session.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("unexpected status: %d, body: %s", resp.StatusCode, string(body))
}
