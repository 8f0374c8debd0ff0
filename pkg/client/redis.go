package client

import (
	"context"
	"fmt"
	"time"

	"Worklog/config"
	"Worklog/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 未配置 redis 时返回 nil，缓存随之关闭
func NewRedisClient(conf *config.Redis) (*redis.Client, func(), error) {
	if conf == nil || conf.Address == "" {
		log.L.Info("redis not configured, note list cache disabled")
		return nil, func() {}, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.Address, conf.Port),
		Password: conf.Password,
		Username: conf.Username,
		DB:       conf.Database,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.L.Error("connect redis error", zap.Error(err))
		_ = client.Close()
		return nil, nil, err
	}
	log.L.Info("redis client success")
	return client, func() { _ = client.Close() }, nil
}
