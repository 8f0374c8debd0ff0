package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"Worklog/config"
	"Worklog/models"
	"Worklog/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	noteListKey = "worklog:notes:list"
	// noteListVersionKey 每次写操作自增，回填列表前比对
	noteListVersionKey = "worklog:notes:list:version"
)

var errStaleList = errors.New("note list changed since read")

// NoteListCache 缓存笔记列表，任何写操作后整体失效；redis 为 nil 时所有方法都是空操作
type NoteListCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewNoteListCache(client *redis.Client, conf *config.Redis) *NoteListCache {
	return &NoteListCache{redis: client, ttl: conf.CacheTTL()}
}

func (c *NoteListCache) Enabled() bool {
	return c != nil && c.redis != nil
}

// Get 命中时返回 true
func (c *NoteListCache) Get(ctx context.Context) ([]*models.Note, bool) {
	if !c.Enabled() {
		return nil, false
	}
	raw, err := c.redis.Get(ctx, noteListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.L.Warn("note list cache get failed", zap.Error(err))
		}
		return nil, false
	}
	var notes []*models.Note
	if err := json.Unmarshal(raw, &notes); err != nil {
		log.L.Warn("note list cache decode failed", zap.Error(err))
		return nil, false
	}
	return notes, true
}

// Version 读取存储前调用，ok 为 false 时本次结果不应回填
func (c *NoteListCache) Version(ctx context.Context) (int64, bool) {
	if !c.Enabled() {
		return 0, false
	}
	v, err := c.redis.Get(ctx, noteListVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		log.L.Warn("note list cache version failed", zap.Error(err))
		return 0, false
	}
	return v, true
}

// Set 仅当 version 之后没有写操作时回填
func (c *NoteListCache) Set(ctx context.Context, version int64, notes []*models.Note) {
	if !c.Enabled() {
		return
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return
	}
	err = c.redis.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, noteListVersionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != version {
			return errStaleList
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, noteListKey, raw, c.ttl)
			return nil
		})
		return err
	}, noteListVersionKey)
	switch {
	case err == nil:
	case errors.Is(err, errStaleList), errors.Is(err, redis.TxFailedErr):
		log.L.Debug("note list cache fill skipped, list changed")
	default:
		log.L.Warn("note list cache set failed", zap.Error(err))
	}
}

// Invalidate 写操作提交后调用，版本自增并删除列表
func (c *NoteListCache) Invalidate(ctx context.Context) {
	if !c.Enabled() {
		return
	}
	_, err := c.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, noteListVersionKey)
		pipe.Del(ctx, noteListKey)
		return nil
	})
	if err != nil {
		log.L.Warn("note list cache invalidate failed", zap.Error(err))
	}
}
