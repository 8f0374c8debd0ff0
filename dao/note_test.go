package dao

import (
	"context"
	"testing"
	"time"

	"Worklog/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestNoteDAO(t *testing.T) *NoteDAO {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库每个连接独立，固定为单连接
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	d := NewNoteDAO(db)
	require.NoError(t, d.Migrate(context.Background()))
	return d
}

func seed(t *testing.T, d NoteRepository, notes ...*models.Note) {
	t.Helper()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, n := range notes {
		if n.CreatedAt.IsZero() {
			n.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			n.UpdatedAt = n.CreatedAt
		}
		require.NoError(t, d.Create(context.Background(), n))
		require.NotEmpty(t, n.ID)
	}
}

func titles(notes []*models.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Title)
	}
	return out
}

func TestNoteDAO_ListOrder(t *testing.T) {
	d := newTestNoteDAO(t)
	ctx := context.Background()
	seed(t, d,
		&models.Note{Title: "old", Date: "2024-03-01", Color: "#3b82f6"},
		&models.Note{Title: "morning", Date: "2024-03-05", StartTime: "09:00", Color: "#3b82f6"},
		&models.Note{Title: "evening", Date: "2024-03-05", StartTime: "18:00", Color: "#3b82f6"},
		&models.Note{Title: "untimed-first", Date: "2024-03-04", Color: "#3b82f6"},
		&models.Note{Title: "untimed-second", Date: "2024-03-04", Color: "#3b82f6"},
	)

	notes, err := d.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"evening", "morning", "untimed-second", "untimed-first", "old"}, titles(notes))
}

func TestNoteDAO_UpdatePartial(t *testing.T) {
	d := newTestNoteDAO(t)
	ctx := context.Background()
	n := &models.Note{Title: "Standup", Date: "2024-03-05", Location: "Room 4", Tags: "daily", Color: "#3b82f6"}
	seed(t, d, n)

	title, color := "Retro", "#10b981"
	at := n.CreatedAt.Add(time.Hour)
	updated, err := d.Update(ctx, n.ID, &models.NotePatch{Title: &title, Color: &color}, at)
	require.NoError(t, err)
	assert.Equal(t, n.ID, updated.ID)
	assert.Equal(t, "Retro", updated.Title)
	assert.Equal(t, "#10b981", updated.Color)
	assert.Equal(t, "Room 4", updated.Location)
	assert.Equal(t, "daily", updated.Tags)
	assert.True(t, updated.UpdatedAt.Equal(at))
}

func TestNoteDAO_UpdateMissing(t *testing.T) {
	d := newTestNoteDAO(t)
	title := "x"
	_, err := d.Update(context.Background(), "1234567890", &models.NotePatch{Title: &title}, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteDAO_Delete(t *testing.T) {
	d := newTestNoteDAO(t)
	ctx := context.Background()
	n := &models.Note{Title: "Standup", Date: "2024-03-05", Color: "#3b82f6"}
	seed(t, d, n)

	assert.ErrorIs(t, d.Delete(ctx, "1234567890"), ErrNotFound)
	notes, err := d.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	require.NoError(t, d.Delete(ctx, n.ID))
	assert.ErrorIs(t, d.Delete(ctx, n.ID), ErrNotFound)
	notes, err = d.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteDAO_ValidID(t *testing.T) {
	d := newTestNoteDAO(t)
	n := &models.Note{Title: "Standup", Date: "2024-03-05", Color: "#3b82f6"}
	seed(t, d, n)

	assert.True(t, d.ValidID(n.ID))
	assert.False(t, d.ValidID("65f1c2a9e4b0a1b2c3d4e5f6"))
	assert.False(t, d.ValidID(""))
}
