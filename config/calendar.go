package config

import (
	"time"
	_ "time/tzdata"
)

type Calendar struct {
	// Timezone IANA 时区名，用于计算“今天”和导出 ics，默认本地时区
	Timezone string `json:"timezone" yaml:"timezone"`
}

func (c *Calendar) Location() (*time.Location, error) {
	if c == nil || c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func ProvideCalendarConfig(cfg *Config) *Calendar {
	return cfg.Calendar
}
