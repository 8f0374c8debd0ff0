package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Server   *Server         `json:"server" yaml:"server"`
	Store    *Store          `json:"store" yaml:"store"`
	Mongo    *Mongo          `json:"mongo" yaml:"mongo"`
	MySQL    *MySQL          `json:"mysql" yaml:"mysql"`
	Sqlite   *Sqlite         `json:"sqlite" yaml:"sqlite"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	RocketMQ *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
	Log      *Log            `json:"log" yaml:"log"`
	Calendar *Calendar       `json:"calendar" yaml:"calendar"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load 读取并解析 yaml 配置，缺省字段使用默认值
func Load(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(content)
}

func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("解析 config.yaml 读取错误: %w", err)
	}
	conf.applyDefaults()
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Store == nil {
		c.Store = &Store{}
	}
	if c.Store.Driver == "" {
		c.Store.Driver = DriverMongo
	}
	if c.Mongo != nil {
		if c.Mongo.Database == "" {
			c.Mongo.Database = "demo_nextjs"
		}
		if c.Mongo.Collection == "" {
			c.Mongo.Collection = "worklogs"
		}
	}
	if c.Log == nil {
		c.Log = &Log{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Calendar == nil {
		c.Calendar = &Calendar{}
	}
}

// Validate 检查存储配置是否完整
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMongo:
		if c.Mongo == nil || c.Mongo.URI == "" {
			return fmt.Errorf("store driver %q requires mongo.uri", c.Store.Driver)
		}
	case DriverMySQL:
		if c.MySQL == nil || c.MySQL.Host == "" {
			return fmt.Errorf("store driver %q requires mysql.host", c.Store.Driver)
		}
	case DriverSqlite:
		if c.Sqlite == nil || c.Sqlite.Path == "" {
			return fmt.Errorf("store driver %q requires sqlite.path", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("calendar.timezone: %w", err)
	}
	return nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
