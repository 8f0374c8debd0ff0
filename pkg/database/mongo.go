package database

import (
	"context"

	"Worklog/config"
	"Worklog/pkg/log"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

// NewMongo 建立 Mongo 连接并 ping 一次，调用方负责 Disconnect
func NewMongo(ctx context.Context, conf *config.Mongo) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(conf.URI).
		SetConnectTimeout(conf.ConnectTimeout()).
		SetServerSelectionTimeout(conf.ConnectTimeout())
	client, err := mongo.Connect(opts)
	if err != nil {
		log.L.Error("failed to connect mongo", zap.Error(err))
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, conf.ConnectTimeout())
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		log.L.Error("failed to ping mongo", zap.Error(err))
		return nil, err
	}
	log.L.Info("connect mongo success", zap.String("database", conf.Database))
	return client, nil
}
