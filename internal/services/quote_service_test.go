package services

import (
	"context"
	"testing"
	"time"

	"twofold/internal/models"
	"twofold/internal/testutil"
)

func TestQuoteService(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 8, 31, 10, 0, 0, 0, time.UTC)

	t.Run("today_starts_with_no_likes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewQuoteService(db)

		q, err := svc.Today(ctx, day)
		testutil.AssertNoError(t, err)

		if q.MessageID != 1 {
			t.Errorf("expected day 31 to wrap to message 1, got %d", q.MessageID)
		}
		if q.Date != "2024-08-31" {
			t.Errorf("expected date 2024-08-31, got %s", q.Date)
		}
		if q.Likes != 0 {
			t.Errorf("expected 0 likes, got %d", q.Likes)
		}
		if q.Message == "" {
			t.Error("expected a message")
		}
	})

	t.Run("today_is_stable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewQuoteService(db)

		_, err := svc.Today(ctx, day)
		testutil.AssertNoError(t, err)
		_, err = svc.Today(ctx, day)
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.QuoteMessage{}).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 quote row, got %d", count)
		}
	})

	t.Run("like_increments", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewQuoteService(db)

		_, err := svc.Like(ctx, day)
		testutil.AssertNoError(t, err)
		q, err := svc.Like(ctx, day)
		testutil.AssertNoError(t, err)
		if q.Likes != 2 {
			t.Errorf("expected 2 likes, got %d", q.Likes)
		}

		today, err := svc.Today(ctx, day)
		testutil.AssertNoError(t, err)
		if today.Likes != 2 {
			t.Errorf("expected Today to report 2 likes, got %d", today.Likes)
		}
	})

	t.Run("likes_are_per_day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewQuoteService(db)

		_, err := svc.Like(ctx, day)
		testutil.AssertNoError(t, err)

		next, err := svc.Today(ctx, day.AddDate(0, 0, 1))
		testutil.AssertNoError(t, err)
		if next.Likes != 0 {
			t.Errorf("expected a fresh counter for the next day, got %d", next.Likes)
		}
		if next.MessageID != 1 {
			t.Errorf("expected September 1 to show message 1, got %d", next.MessageID)
		}
	})
}
