package dashboard

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"giveaway/internal/handler"
	"giveaway/internal/logger"
	"giveaway/internal/model"
	"giveaway/internal/mw"
	"giveaway/internal/service"
	"giveaway/internal/store"
)

const testJWTSecret = "test-secret"

// newTestServer stands up the real API over the in-memory store, with a
// demo charity ready to log in.
func newTestServer(t *testing.T) (*httptest.Server, *store.Memory) {
	t.Helper()

	mem := store.NewMemory()
	log := logger.Nop()
	authSvc := service.NewCharityAuth(mem)
	pickupSvc := service.NewPickupService(mem, log)

	if _, err := authSvc.Create(context.Background(), "Demo Charity", "charity@demo.com", "charity123", "Demo City"); err != nil {
		t.Fatalf("create charity: %v", err)
	}

	r := chi.NewRouter()
	r.Post("/api/charity/login", handler.LoginHandler(authSvc, testJWTSecret, log))
	r.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware(testJWTSecret))
		r.Get("/api/charity/pickups", handler.ListPickupsHandler(pickupSvc, log))
		r.Patch("/api/charity/pickups/{id}", handler.PatchPickupStatusHandler(pickupSvc, log))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, mem
}

func loggedInController(t *testing.T, srv *httptest.Server) *Controller {
	t.Helper()

	ctrl := NewController(NewClient(srv.URL), logger.Nop())
	if err := ctrl.Login(context.Background(), "charity@demo.com", "charity123"); err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	return ctrl
}

func TestLoginCreatesSession(t *testing.T) {
	srv, _ := newTestServer(t)
	ctrl := loggedInController(t, srv)

	session := ctrl.Session()
	if !session.Authenticated() {
		t.Fatal("session should carry a token after login")
	}
	if session.Name != "Demo Charity" || session.Email != "charity@demo.com" || session.Location != "Demo City" {
		t.Errorf("session = %+v, want the demo charity fields", session)
	}

	ctrl.Logout()
	if ctrl.Session().Authenticated() {
		t.Error("session should be cleared at logout")
	}
}

func TestLoginRejectedCredentials(t *testing.T) {
	srv, _ := newTestServer(t)
	ctrl := NewController(NewClient(srv.URL), logger.Nop())

	err := ctrl.Login(context.Background(), "charity@demo.com", "wrong")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Login() error = %v, want ErrUnauthorized", err)
	}
	if ctrl.Err() == nil {
		t.Error("failed login must set a visible error")
	}
}

func TestRefreshLoadsPickupsAndStats(t *testing.T) {
	srv, _ := newTestServer(t)
	ctrl := loggedInController(t, srv)

	if err := ctrl.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}

	// The empty store seeds the 3-record demo set on first read.
	stats := ctrl.Stats()
	want := Stats{Total: 3, Pending: 1, Scheduled: 1, Completed: 1}
	if stats != want {
		t.Errorf("Stats() = %+v, want %+v", stats, want)
	}

	ctrl.SetActiveTab(TabAll)
	if got := len(ctrl.Visible()); got != 3 {
		t.Errorf("Visible() on all tab = %d records, want 3", got)
	}

	ctrl.SetActiveTab("pending")
	ctrl.SetSearchTerm("john")
	visible := ctrl.Visible()
	if len(visible) != 1 || visible[0].DonorName != "John Doe" {
		t.Errorf("Visible() = %+v, want only John Doe's pending pickup", visible)
	}
}

func TestScheduleRefetchesAuthoritativeState(t *testing.T) {
	srv, mem := newTestServer(t)
	ctrl := loggedInController(t, srv)
	ctx := context.Background()

	created, err := mem.CreatePickup(ctx, model.Pickup{DonorName: "Acme", Status: model.StatusPending})
	if err != nil {
		t.Fatalf("CreatePickup() error: %v", err)
	}
	if err := ctrl.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}

	if err := ctrl.Schedule(ctx, created.ID); err != nil {
		t.Fatalf("Schedule() error: %v", err)
	}

	got, _ := mem.GetPickupByID(ctx, created.ID)
	if got.Status != model.StatusScheduled {
		t.Errorf("server status = %q, want scheduled", got.Status)
	}

	ctrl.SetActiveTab("scheduled")
	visible := ctrl.Visible()
	if len(visible) != 1 || visible[0].ID != created.ID {
		t.Errorf("dashboard did not refetch after schedule: %+v", visible)
	}
	if err := ctrl.Err(); err != nil {
		t.Errorf("Err() = %v after successful update, want nil", err)
	}
}

func TestMarkCompleted(t *testing.T) {
	srv, mem := newTestServer(t)
	ctrl := loggedInController(t, srv)
	ctx := context.Background()

	created, _ := mem.CreatePickup(ctx, model.Pickup{DonorName: "Acme", Status: model.StatusScheduled})

	if err := ctrl.MarkCompleted(ctx, created.ID); err != nil {
		t.Fatalf("MarkCompleted() error: %v", err)
	}

	got, _ := mem.GetPickupByID(ctx, created.ID)
	if got.Status != model.StatusCompleted {
		t.Errorf("server status = %q, want completed", got.Status)
	}
}

func TestFailedUpdateKeepsStaleData(t *testing.T) {
	srv, _ := newTestServer(t)
	ctrl := loggedInController(t, srv)
	ctx := context.Background()

	if err := ctrl.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	before := ctrl.Stats()

	err := ctrl.Schedule(ctx, "no-such-pickup")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Schedule() error = %v, want ErrNotFound", err)
	}

	if ctrl.Err() == nil {
		t.Error("failed update must set a visible error")
	}
	if ctrl.Stats() != before {
		t.Error("failed update must not clear or change the displayed data")
	}
}

func TestRefreshWithoutLogin(t *testing.T) {
	srv, _ := newTestServer(t)
	ctrl := NewController(NewClient(srv.URL), logger.Nop())

	if err := ctrl.Refresh(context.Background()); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("Refresh() error = %v, want ErrNotAuthenticated", err)
	}
}
