package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// Repo 基于 gorm 的通用仓储
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// DeleteByID 按主键删除，没有删除任何行时返回 ErrNotFound
func (r Repo[T]) DeleteByID(ctx context.Context, id any) error {
	var model T
	res := r.Db.WithContext(ctx).Where("id = ?", id).Delete(&model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r Repo[T]) Transaction(ctx context.Context, f func(tx *gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(f)
}
