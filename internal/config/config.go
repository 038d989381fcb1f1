package config

import (
	"log"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
)

type MainConfig struct {
	AppName string `toml:"appName"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	// TLS 开启后使用 CertFile / KeyFile 启动，并把 http 请求跳转到 https
	TLS      bool   `toml:"tls"`
	CertFile string `toml:"certFile"`
	KeyFile  string `toml:"keyFile"`
}

type DatabaseConfig struct {
	// Driver 取值 mysql / postgres
	Driver       string `toml:"driver"`
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

type LogConfig struct {
	LogPath    string `toml:"logPath"`
	Level      string `toml:"level"`
	MaxSizeMB  int    `toml:"maxSizeMB"`
	MaxBackups int    `toml:"maxBackups"`
	MaxAgeDays int    `toml:"maxAgeDays"`
}

type JwtConfig struct {
	Key         string `toml:"key"`
	ExpireHours int    `toml:"expireHours"`
	Issuer      string `toml:"issuer"`
}

type KafkaConfig struct {
	Brokers      []string `toml:"brokers"`
	ClientID     string   `toml:"clientID"`
	ContactTopic string   `toml:"contactTopic"`
}

type RedisConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	Password     string `toml:"password"`
	DB           int    `toml:"db"`
	PoolSize     int    `toml:"poolSize"`
	MinIdleConns int    `toml:"minIdleConns"`
}

// StoreConfig 选择联系人关系的后端存储
type StoreConfig struct {
	// Backend 取值 gorm / redis / memory
	Backend string `toml:"backend"`
}

// MCPConfig 内置 MCP Server 配置
type MCPConfig struct {
	Enabled bool   `toml:"enabled"`
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

type Config struct {
	MainConfig     `toml:"mainConfig"`
	DatabaseConfig `toml:"databaseConfig"`
	JwtConfig      `toml:"jwtConfig"`
	KafkaConfig    `toml:"kafkaConfig"`
	LogConfig      `toml:"logConfig"`
	RedisConfig    `toml:"redisConfig"`
	StoreConfig    `toml:"storeConfig"`
	MCPConfig      `toml:"mcpConfig"`
}

const (
	StoreBackendGorm   = "gorm"
	StoreBackendRedis  = "redis"
	StoreBackendMemory = "memory"

	defaultConfigPath   = "configs/config_local.toml"
	defaultContactTopic = "oss.contact.events"
)

var (
	config *Config
	once   sync.Once
)

// LoadConfig 从 path 解析 toml，缺省字段填默认值
func LoadConfig(path string) (*Config, error) {
	c := new(Config)
	_, err := toml.DecodeFile(path, c)
	c.applyDefaults()
	return c, err
}

func (c *Config) applyDefaults() {
	if c.AppName == "" {
		c.AppName = "OssLarare"
	}
	if c.MainConfig.Host == "" {
		c.MainConfig.Host = "0.0.0.0"
	}
	if c.MainConfig.Port == 0 {
		c.MainConfig.Port = 8000
	}
	if c.DatabaseConfig.Driver == "" {
		c.DatabaseConfig.Driver = "mysql"
	}
	if c.StoreConfig.Backend == "" {
		c.StoreConfig.Backend = StoreBackendMemory
	}
	if c.KafkaConfig.ContactTopic == "" {
		c.KafkaConfig.ContactTopic = defaultContactTopic
	}
	if c.LogConfig.Level == "" {
		c.LogConfig.Level = "info"
	}
	if c.MCPConfig.Name == "" {
		c.MCPConfig.Name = c.AppName + "-contact"
	}
	if c.MCPConfig.Version == "" {
		c.MCPConfig.Version = "1.0.0"
	}
}

func GetConfig() *Config {
	once.Do(func() {
		path := os.Getenv("OSS_CONFIG")
		if path == "" {
			path = defaultConfigPath
		}
		var err error
		config, err = LoadConfig(path)
		if err != nil {
			log.Printf("加载配置文件失败: %v, 尝试使用默认设置", err)
		}
	})
	return config
}
