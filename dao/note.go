package dao

import (
	"context"
	"errors"
	"time"

	"Worklog/models"
	"Worklog/pkg/snowflake"

	"gorm.io/gorm"
)

// noteColumns 补丁字段名到列名
var noteColumns = map[string]string{
	"title":        "title",
	"date":         "date",
	"endDate":      "end_date",
	"location":     "location",
	"startTime":    "start_time",
	"endTime":      "end_time",
	"activities":   "activities",
	"result":       "result",
	"blockers":     "blockers",
	"participants": "participants",
	"tags":         "tags",
	"color":        "color",
}

// NoteDAO mysql / sqlite 下的笔记存储，ID 为雪花 ID
type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

// List 查询全部笔记
func (d *NoteDAO) List(ctx context.Context) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Order("date DESC").
		Order("start_time DESC").
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

// Create 创建笔记
func (d *NoteDAO) Create(ctx context.Context, note *models.Note) error {
	if note.ID == "" {
		note.ID = snowflake.GenIDString()
	}
	return d.Db.WithContext(ctx).Create(note).Error
}

// Update 在事务内确认存在后更新并重新读取
func (d *NoteDAO) Update(ctx context.Context, id string, patch *models.NotePatch, updatedAt time.Time) (*models.Note, error) {
	var updated models.Note
	err := d.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&updated).Error; err != nil {
			return err
		}
		values := map[string]any{"updated_at": updatedAt}
		for key, v := range patch.Fields() {
			values[noteColumns[key]] = v
		}
		if err := tx.Model(&models.Note{}).Where("id = ?", id).Updates(values).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&updated).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete 删除笔记
func (d *NoteDAO) Delete(ctx context.Context, id string) error {
	return d.DeleteByID(ctx, id)
}

func (d *NoteDAO) ValidID(id string) bool {
	_, ok := snowflake.ParseID(id)
	return ok
}

func (d *NoteDAO) Migrate(ctx context.Context) error {
	return d.Db.WithContext(ctx).AutoMigrate(&models.Note{})
}
