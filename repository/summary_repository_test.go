package repository

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}))
}

func TestSummaryRepository_Create_Validation(t *testing.T) {
	repo := NewSummaryRepository(nil, testLogger())

	t.Run("should reject empty url", func(t *testing.T) {
		summary, err := repo.Create(context.Background(), "")
		assert.Error(t, err)
		assert.Nil(t, summary)
	})

	t.Run("should reject nil database connection", func(t *testing.T) {
		summary, err := repo.Create(context.Background(), "https://example.com/article")
		assert.Error(t, err)
		assert.Nil(t, summary)
	})
}

func TestSummaryRepository_FindByID_Validation(t *testing.T) {
	repo := NewSummaryRepository(nil, testLogger())

	tests := map[string]struct {
		id int64
	}{
		"should reject zero id":     {id: 0},
		"should reject negative id": {id: -7},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			summary, err := repo.FindByID(context.Background(), tc.id)
			assert.Error(t, err)
			assert.Nil(t, summary)
		})
	}
}

func TestSummaryRepository_UpdateSummaryText_Validation(t *testing.T) {
	repo := NewSummaryRepository(nil, testLogger())

	t.Run("should reject non-positive id", func(t *testing.T) {
		err := repo.UpdateSummaryText(context.Background(), 0, "summary text")
		assert.Error(t, err)
	})
}

func TestSummaryRepository_Update_Validation(t *testing.T) {
	repo := NewSummaryRepository(nil, testLogger())

	t.Run("should reject empty url", func(t *testing.T) {
		summary, err := repo.Update(context.Background(), 1, "", "text")
		assert.Error(t, err)
		assert.Nil(t, summary)
	})
}

func TestSummaryRepository_Delete_Validation(t *testing.T) {
	repo := NewSummaryRepository(nil, testLogger())

	t.Run("should reject non-positive id", func(t *testing.T) {
		summary, err := repo.Delete(context.Background(), -1)
		assert.Error(t, err)
		assert.Nil(t, summary)
	})
}
