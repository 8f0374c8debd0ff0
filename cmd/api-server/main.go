package main

import (
	"fmt"
	"os"

	"Worklog/config"
	"Worklog/pkg/log"
	"Worklog/pkg/server"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "worklog notes & calendar api",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file, default configs/config.$APP_ENV.yaml",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					cfg := loadConfig(ctx)
					app, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					return server.Run(ctx, app)
				},
			},
			{
				Name:  "migrate",
				Usage: "create tables / indexes for the configured store",
				Action: func(ctx *cli.Context) error {
					cfg := loadConfig(ctx)
					repo, cleanup, err := InitRepository(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					if err := repo.Migrate(ctx.Context); err != nil {
						return err
					}
					log.L.Info("migrate done", zap.String("store", cfg.Store.Driver))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}

func loadConfig(ctx *cli.Context) *config.Config {
	path := ctx.String("config")
	if path == "" {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "dev"
		}
		path = fmt.Sprintf("configs/config.%s.yaml", env)
	}
	cfg := config.New(path)
	log.Init(cfg.Log)
	if !cfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	return cfg
}
