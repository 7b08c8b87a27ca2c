package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "twofold/internal/errors"
	"twofold/internal/models"
	"twofold/internal/services"
)

type mockQuoteService struct {
	todayFn func(now time.Time) (*services.TodaysQuote, error)
	likeFn  func(now time.Time) (*services.TodaysQuote, error)
}

func (m *mockQuoteService) Today(_ context.Context, now time.Time) (*services.TodaysQuote, error) {
	if m.todayFn != nil {
		return m.todayFn(now)
	}
	return &services.TodaysQuote{MessageID: now.Day(), Date: now.Format("2006-01-02")}, nil
}

func (m *mockQuoteService) Like(_ context.Context, now time.Time) (*services.TodaysQuote, error) {
	if m.likeFn != nil {
		return m.likeFn(now)
	}
	return &services.TodaysQuote{MessageID: now.Day(), Likes: 1}, nil
}

var _ services.QuoteServicer = (*mockQuoteService)(nil)

type mockDashboardService struct {
	getDashboardFn func(year, month int) (*services.Dashboard, error)
}

func (m *mockDashboardService) GetDashboard(_ context.Context, year, month int) (*services.Dashboard, error) {
	if m.getDashboardFn != nil {
		return m.getDashboardFn(year, month)
	}
	return &services.Dashboard{Month: &services.MonthSummary{Year: year, Month: month}}, nil
}

var _ services.DashboardServicer = (*mockDashboardService)(nil)

func TestQuoteHandler(t *testing.T) {
	setup := func(svc services.QuoteServicer) *gin.Engine {
		handler := NewQuoteHandler(svc)
		handler.now = fixedNow
		r := gin.New()
		auth := r.Group("", injectSession(models.RoleHusband))
		auth.GET("/quotes/today", handler.GetToday)
		auth.POST("/quotes/today/like", handler.Like)
		return r
	}

	t.Run("returns today's quote", func(t *testing.T) {
		rec := doRequest(setup(&mockQuoteService{}), "GET", "/quotes/today", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["message_id"].(float64) != 14 {
			t.Errorf("expected message_id=14, got %v", result["message_id"])
		}
		if result["date"] != "2024-09-14" {
			t.Errorf("expected date 2024-09-14, got %v", result["date"])
		}
	})

	t.Run("like returns new count", func(t *testing.T) {
		rec := doRequest(setup(&mockQuoteService{}), "POST", "/quotes/today/like", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["likes"].(float64) != 1 {
			t.Error("expected likes=1")
		}
	})

	t.Run("returns 503 when unavailable", func(t *testing.T) {
		svc := &mockQuoteService{
			todayFn: func(_ time.Time) (*services.TodaysQuote, error) {
				return nil, apperrors.ErrQuoteUnavailable
			},
		}
		rec := doRequest(setup(svc), "GET", "/quotes/today", "")

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "QUOTE_UNAVAILABLE")
	})
}

func TestDashboardHandler(t *testing.T) {
	t.Run("defaults to the current month", func(t *testing.T) {
		handler := NewDashboardHandler(&mockDashboardService{})
		handler.now = fixedNow
		r := gin.New()
		r.GET("/dashboard", injectSession(models.RoleWife), handler.GetDashboard)

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		month := parseJSON(t, rec)["month"].(map[string]interface{})
		if month["month"].(float64) != 9 {
			t.Errorf("expected month 9, got %v", month["month"])
		}
	})

	t.Run("returns 400 on invalid period", func(t *testing.T) {
		svc := &mockDashboardService{
			getDashboardFn: func(_, _ int) (*services.Dashboard, error) {
				return nil, apperrors.ErrInvalidPeriod
			},
		}
		handler := NewDashboardHandler(svc)
		r := gin.New()
		r.GET("/dashboard", handler.GetDashboard)

		rec := doRequest(r, "GET", "/dashboard?month=13", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PERIOD")
	})
}

func TestUserHandler_ListUsers(t *testing.T) {
	t.Run("returns both users", func(t *testing.T) {
		svc := &mockUserService{
			listUsersFn: func() ([]models.User, error) {
				return []models.User{
					{Base: models.Base{ID: "h"}, Role: models.RoleHusband, Name: "Moon"},
					{Base: models.Base{ID: "w"}, Role: models.RoleWife, Name: "Lovely"},
				}, nil
			},
		}
		handler := NewUserHandler(svc)
		r := gin.New()
		r.GET("/users", handler.ListUsers)

		rec := doRequest(r, "GET", "/users", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		users := parseJSON(t, rec)["users"].([]interface{})
		if len(users) != 2 {
			t.Fatalf("expected 2 users, got %d", len(users))
		}
		if users[1].(map[string]interface{})["name"] != "Lovely" {
			t.Errorf("unexpected second user %v", users[1])
		}
	})

	t.Run("returns 500 on failure", func(t *testing.T) {
		svc := &mockUserService{
			listUsersFn: func() ([]models.User, error) {
				return nil, apperrors.ErrInternalServer
			},
		}
		handler := NewUserHandler(svc)
		r := gin.New()
		r.GET("/users", handler.ListUsers)

		rec := doRequest(r, "GET", "/users", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
