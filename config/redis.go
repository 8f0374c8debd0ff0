package config

import "time"

// Redis Redis配置信息，不配置时不启用列表缓存
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
	TTL      int    `json:"ttl" yaml:"ttl"` // 秒
}

func (r *Redis) CacheTTL() time.Duration {
	if r == nil || r.TTL <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(r.TTL) * time.Second
}

func ProvideRedisConfig(cfg *Config) *Redis {
	return cfg.Redis
}
