package dao

import (
	"context"
	"fmt"
	"time"

	"Worklog/config"
	"Worklog/models"
	"Worklog/pkg/database"
)

// NoteRepository 笔记存储，Mongo 与 SQL 两种实现
type NoteRepository interface {
	// List 按 date、startTime、createdAt 倒序返回全部笔记
	List(ctx context.Context) ([]*models.Note, error)
	// Create 写入笔记并回填 ID
	Create(ctx context.Context, note *models.Note) error
	// Update 应用补丁并返回更新后的笔记，不存在时返回 ErrNotFound
	Update(ctx context.Context, id string, patch *models.NotePatch, updatedAt time.Time) (*models.Note, error)
	Delete(ctx context.Context, id string) error
	// ValidID 是否符合当前存储的 ID 格式
	ValidID(id string) bool
	Migrate(ctx context.Context) error
}

var (
	_ NoteRepository = (*NoteDAO)(nil)
	_ NoteRepository = (*NoteMongoDAO)(nil)
)

// NewNoteRepository 根据 store.driver 选择实现，返回的 cleanup 负责关闭连接
func NewNoteRepository(cfg *config.Config) (NoteRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, err := database.NewMongo(context.Background(), cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		cleanup := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}
		return NewNoteMongoDAO(coll), cleanup, nil
	case config.DriverMySQL, config.DriverSqlite:
		db, err := database.NewDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return NewNoteDAO(db), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
