package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campaignlab/campaign-api/internal/api/middleware"
	"github.com/campaignlab/campaign-api/internal/core/domain"
	"github.com/campaignlab/campaign-api/internal/core/ports"
)

type stubCampaignService struct {
	listFn   func(ctx context.Context) ([]domain.Campaign, error)
	getFn    func(ctx context.Context, id int64) (*domain.Campaign, error)
	createFn func(ctx context.Context, input ports.CampaignInput) (*domain.Campaign, error)
	updateFn func(ctx context.Context, id int64, input ports.CampaignInput) (*domain.Campaign, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubCampaignService) List(ctx context.Context) ([]domain.Campaign, error) {
	return s.listFn(ctx)
}

func (s *stubCampaignService) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	return s.getFn(ctx, id)
}

func (s *stubCampaignService) Create(ctx context.Context, input ports.CampaignInput) (*domain.Campaign, error) {
	return s.createFn(ctx, input)
}

func (s *stubCampaignService) Update(ctx context.Context, id int64, input ports.CampaignInput) (*domain.Campaign, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubCampaignService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func sampleCampaign(id int64) *domain.Campaign {
	return &domain.Campaign{
		ID:          id,
		Name:        "summer sale",
		Description: "seasonal discount push",
		StartDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Budget:      1000.0,
		Status:      true,
	}
}

// authedContext builds an echo context carrying the identity the Auth
// middleware would have injected.
func authedContext(t *testing.T, e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, &domain.Identity{ID: 1, Username: "admin"})
	return c, rec
}

func TestCampaignHandler_List(t *testing.T) {
	e := echo.New()
	stub := &stubCampaignService{
		listFn: func(ctx context.Context) ([]domain.Campaign, error) {
			return []domain.Campaign{*sampleCampaign(1), *sampleCampaign(2)}, nil
		},
	}
	handler := NewCampaignHandler(stub)

	c, rec := authedContext(t, e, http.MethodGet, "/campaigns/", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 campaigns, got %d", len(resp))
	}
}

func TestCampaignHandler_Get_Success(t *testing.T) {
	e := echo.New()
	stub := &stubCampaignService{
		getFn: func(ctx context.Context, id int64) (*domain.Campaign, error) {
			if id != 7 {
				t.Fatalf("unexpected id: %d", id)
			}
			return sampleCampaign(7), nil
		},
	}
	handler := NewCampaignHandler(stub)

	c, rec := authedContext(t, e, http.MethodGet, "/campaigns/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(7) || resp["name"] != "summer sale" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCampaignHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubCampaignService{
		getFn: func(ctx context.Context, id int64) (*domain.Campaign, error) {
			return nil, domain.ErrCampaignNotFound
		},
	}
	handler := NewCampaignHandler(stub)

	c, _ := authedContext(t, e, http.MethodGet, "/campaigns/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.Get(c); err != domain.ErrCampaignNotFound {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestCampaignHandler_Get_NonNumericID(t *testing.T) {
	e := echo.New()
	handler := NewCampaignHandler(&stubCampaignService{})

	c, _ := authedContext(t, e, http.MethodGet, "/campaigns/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := handler.Get(c); err != domain.ErrCampaignNotFound {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestCampaignHandler_Create_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubCampaignService{
		createFn: func(ctx context.Context, input ports.CampaignInput) (*domain.Campaign, error) {
			if input.Name != "summer sale" || input.Budget != 1000.0 || !input.Status {
				t.Fatalf("unexpected input: %+v", input)
			}
			created := sampleCampaign(3)
			return created, nil
		},
	}
	handler := NewCampaignHandler(stub)

	body := `{"name":"summer sale","description":"seasonal discount push","start_date":"2026-06-01T00:00:00Z","end_date":"2026-08-31T00:00:00Z","budget":1000.0,"status":true}`
	c, rec := authedContext(t, e, http.MethodPost, "/campaigns/", body)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(3) {
		t.Fatalf("expected assigned id 3, got %v", resp["id"])
	}
}

func TestCampaignHandler_Create_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubCampaignService{
		createFn: func(ctx context.Context, input ports.CampaignInput) (*domain.Campaign, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewCampaignHandler(stub)

	c, _ := authedContext(t, e, http.MethodPost, "/campaigns/", `{"budget":5}`)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCampaignHandler_Update_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubCampaignService{
		updateFn: func(ctx context.Context, id int64, input ports.CampaignInput) (*domain.Campaign, error) {
			if id != 7 {
				t.Fatalf("unexpected id: %d", id)
			}
			updated := sampleCampaign(7)
			updated.Name = input.Name
			return updated, nil
		},
	}
	handler := NewCampaignHandler(stub)

	body := `{"name":"renamed","description":"seasonal discount push","start_date":"2026-06-01T00:00:00Z","end_date":"2026-08-31T00:00:00Z","budget":1000.0,"status":true}`
	c, rec := authedContext(t, e, http.MethodPut, "/campaigns/7", body)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "renamed" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCampaignHandler_Delete_Success(t *testing.T) {
	e := echo.New()
	stub := &stubCampaignService{
		deleteFn: func(ctx context.Context, id int64) error {
			if id != 7 {
				t.Fatalf("unexpected id: %d", id)
			}
			return nil
		},
	}
	handler := NewCampaignHandler(stub)

	c, rec := authedContext(t, e, http.MethodDelete, "/campaigns/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Campaign deleted successfully" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestCampaignHandler_Delete_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubCampaignService{
		deleteFn: func(ctx context.Context, id int64) error {
			return domain.ErrCampaignNotFound
		},
	}
	handler := NewCampaignHandler(stub)

	c, _ := authedContext(t, e, http.MethodDelete, "/campaigns/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.Delete(c); err != domain.ErrCampaignNotFound {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}
