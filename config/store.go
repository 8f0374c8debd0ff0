package config

import (
	"fmt"
	"time"
)

const (
	DriverMongo  = "mongo"
	DriverMySQL  = "mysql"
	DriverSqlite = "sqlite"
)

// Store 选择笔记的存储后端
type Store struct {
	Driver string `json:"driver" yaml:"driver"`
}

type Mongo struct {
	URI        string `json:"uri" yaml:"uri"`
	Database   string `json:"database" yaml:"database"`
	Collection string `json:"collection" yaml:"collection"`
	TimeoutMs  int    `json:"timeout_ms" yaml:"timeout_ms"`
}

// ConnectTimeout 默认 10 秒
func (m *Mongo) ConnectTimeout() time.Duration {
	if m.TimeoutMs <= 0 {
		return 10 * time.Second
	}
	return time.Duration(m.TimeoutMs) * time.Millisecond
}

type MySQL struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"`
	Charset  string `json:"charset" yaml:"charset"`
}

func (m *MySQL) Dsn() string {
	port := m.Port
	if port == 0 {
		port = 3306
	}
	charset := m.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		m.Username, m.Password, m.Host, port, m.Database, charset)
}

type Sqlite struct {
	Path string `json:"path" yaml:"path"`
}
