//go:build wireinject
// +build wireinject

package main

import (
	"Worklog/config"
	"Worklog/dao"
	"Worklog/dao/cache"
	"Worklog/handler"
	"Worklog/pkg/client"
	"Worklog/pkg/rocketmq"
	"Worklog/pkg/server"
	"Worklog/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		config.ProvideRedisConfig,
		config.ProvideRocketMQConfig,
		config.ProvideCalendarConfig,
		client.NewRedisClient,
		rocketmq.InitProducer,
		server.NewGinEngine,

		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.Calendar), "*"),
		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil, nil
}

func InitRepository(cfg *config.Config) (dao.NoteRepository, func(), error) {
	wire.Build(dao.ProviderSet)
	return nil, nil, nil
}
