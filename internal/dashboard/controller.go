package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"giveaway/internal/logger"
	"giveaway/internal/model"
)

// ErrNotAuthenticated is returned when a controller method runs without
// a session.
var ErrNotAuthenticated = errors.New("not logged in")

// Controller drives the charity dashboard: it owns the current pickup
// snapshot, the derived stats, the tab/search filters and the visible
// error state. All reads render from the snapshot; all writes go to the
// server and are followed by a full refetch, never an optimistic local
// patch. A failed call keeps the stale snapshot on screen.
type Controller struct {
	client *Client
	log    logger.Logger

	mu         sync.Mutex
	session    *Session
	pickups    []model.Pickup
	stats      Stats
	activeTab  string
	searchTerm string
	lastErr    error
}

func NewController(client *Client, log logger.Logger) *Controller {
	return &Controller{
		client:    client,
		log:       log,
		activeTab: string(model.StatusPending),
	}
}

// Login creates the session used by every later call.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	session, err := c.client.Login(ctx, email, password)
	if err != nil {
		c.setError(err)
		return err
	}

	c.mu.Lock()
	c.session = session
	c.lastErr = nil
	c.mu.Unlock()
	return nil
}

// Logout drops the session and the loaded data.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = nil
	c.pickups = nil
	c.stats = Stats{}
	c.lastErr = nil
}

func (c *Controller) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Refresh refetches the authoritative pickup list and recomputes the
// stats. On failure the previously displayed data stays put and the
// error becomes visible via Err.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()

	if !session.Authenticated() {
		c.setError(ErrNotAuthenticated)
		return ErrNotAuthenticated
	}

	pickups, err := c.client.ListPickups(ctx, session)
	if err != nil {
		c.log.Error("failed to load pickups", logger.Error(err))
		c.setError(err)
		return err
	}

	c.mu.Lock()
	c.pickups = pickups
	c.stats = ComputeStats(pickups)
	c.lastErr = nil
	c.mu.Unlock()
	return nil
}

// Schedule moves a pickup to scheduled. Offered by the UI only for
// pending pickups, but the server is the one that decides.
func (c *Controller) Schedule(ctx context.Context, pickupID string) error {
	return c.updateStatus(ctx, pickupID, model.StatusScheduled)
}

// MarkCompleted moves a pickup to completed.
func (c *Controller) MarkCompleted(ctx context.Context, pickupID string) error {
	return c.updateStatus(ctx, pickupID, model.StatusCompleted)
}

func (c *Controller) updateStatus(ctx context.Context, pickupID string, status model.Status) error {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()

	if !session.Authenticated() {
		c.setError(ErrNotAuthenticated)
		return ErrNotAuthenticated
	}

	if _, err := c.client.PatchStatus(ctx, session, pickupID, status); err != nil {
		c.log.Error("status update failed",
			logger.String("pickup", pickupID), logger.String("status", string(status)), logger.Error(err))
		c.setError(fmt.Errorf("update pickup %s: %w", pickupID, err))
		return err
	}

	return c.Refresh(ctx)
}

func (c *Controller) SetActiveTab(tab string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeTab = tab
}

func (c *Controller) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchTerm = term
}

// Visible applies the tab and search filters to the current snapshot.
func (c *Controller) Visible() []model.Pickup {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Filter(c.pickups, c.activeTab, c.searchTerm)
}

func (c *Controller) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Err reports the most recent failure, or nil after a successful
// refresh.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller) setError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = err
}
