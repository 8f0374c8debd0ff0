package database

import (
	"fmt"
	"os"
	"path/filepath"

	"Worklog/config"
	"Worklog/pkg/log"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化 SQL 数据库连接（mysql / sqlite）
func NewDB(conf *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Store.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(conf.MySQL.Dsn())
	case config.DriverSqlite:
		if dir := filepath.Dir(conf.Sqlite.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		dialector = sqlite.Open(conf.Sqlite.Path)
	default:
		return nil, fmt.Errorf("store driver %q is not a sql driver", conf.Store.Driver)
	}

	gormConf := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if conf.Debug() {
		gormConf.Logger = logger.Default.LogMode(logger.Info)
	}
	db, err := gorm.Open(dialector, gormConf)
	if err != nil {
		log.L.Error("failed to connect database", zap.String("driver", conf.Store.Driver), zap.Error(err))
		return nil, err
	}
	log.L.Info("connect database success", zap.String("driver", conf.Store.Driver))
	return db, nil
}
