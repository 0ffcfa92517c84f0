package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"dexinfo.com/internal/domain/entity"
)

// Config holds the application configuration
type Config struct {
	Server   Server   `mapstructure:"server"`
	Log      Log      `mapstructure:"log"`
	Subgraph Subgraph `mapstructure:"subgraph"`
	Cache    Cache    `mapstructure:"cache"`
	Redis    Redis    `mapstructure:"redis"`
}

// Server configuration
type Server struct {
	Port string `mapstructure:"port"`
}

// Log configuration
type Log struct {
	Level string `mapstructure:"level"`
}

// Subgraph configuration: one indexing endpoint per chain id
type Subgraph struct {
	Endpoints    map[string]string `mapstructure:"endpoints"`
	DefaultChain uint64            `mapstructure:"defaultChain"`
	First        int               `mapstructure:"first"`
	Timeout      time.Duration     `mapstructure:"timeout"`
}

// Cache configuration
type Cache struct {
	Backend string        `mapstructure:"backend"`
	TTL     time.Duration `mapstructure:"ttl"`
	Size    int           `mapstructure:"size"`
}

// Redis configuration, used when the cache backend is redis
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

const (
	CacheBackendNone   = "none"
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

const defaultBSCEndpoint = "https://proxy-worker.pancake-swap.workers.dev/bsc-exchange"

// LoadConfig loads configuration from YAML file
// Uses CONFIG_ENV environment variable to determine which config file to load
func LoadConfig(configDir string) (*Config, error) {
	configEnv := os.Getenv("CONFIG_ENV")
	if configEnv == "" {
		configEnv = "local"
	}

	v := viper.New()

	// Load base app-config.yaml as template/defaults (if it exists)
	baseConfigPath := filepath.Join(configDir, "app-config.yaml")
	baseConfigExists := false
	if _, err := os.Stat(baseConfigPath); err == nil {
		v.SetConfigFile(baseConfigPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read base config file: %w", err)
		}
		baseConfigExists = true
	}

	// Environment-specific config (e.g., local.yaml when CONFIG_ENV=local) merges on top
	envConfigPath := filepath.Join(configDir, configEnv+".yaml")
	if _, err := os.Stat(envConfigPath); err == nil {
		v.SetConfigFile(envConfigPath)
		if baseConfigExists {
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("failed to merge env config file: %w", err)
			}
		} else if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read env config file: %w", err)
		}
	}

	v.SetEnvPrefix("DEXINFO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("server.port", "DEXINFO_SERVER_PORT", "PORT")
	_ = v.BindEnv("log.level", "DEXINFO_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("subgraph.defaultChain", "DEXINFO_SUBGRAPH_DEFAULT_CHAIN")
	_ = v.BindEnv("subgraph.first", "DEXINFO_SUBGRAPH_FIRST")
	_ = v.BindEnv("subgraph.timeout", "DEXINFO_SUBGRAPH_TIMEOUT")
	_ = v.BindEnv("cache.backend", "DEXINFO_CACHE_BACKEND")
	_ = v.BindEnv("cache.ttl", "DEXINFO_CACHE_TTL")
	_ = v.BindEnv("cache.size", "DEXINFO_CACHE_SIZE")
	_ = v.BindEnv("redis.addr", "DEXINFO_REDIS_ADDR", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "DEXINFO_REDIS_PASSWORD", "REDIS_PASSWORD")
	_ = v.BindEnv("redis.db", "DEXINFO_REDIS_DB")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if len(cfg.Subgraph.Endpoints) == 0 {
		cfg.Subgraph.Endpoints = map[string]string{
			entity.ChainIDBSC.String(): defaultBSCEndpoint,
		}
	}
	if cfg.Subgraph.DefaultChain == 0 {
		cfg.Subgraph.DefaultChain = uint64(entity.ChainIDBSC)
	}
	if cfg.Subgraph.First <= 0 {
		cfg.Subgraph.First = 10
	}
	if cfg.Subgraph.Timeout == 0 {
		cfg.Subgraph.Timeout = 10 * time.Second
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = CacheBackendMemory
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 30 * time.Second
	}
	if cfg.Cache.Size <= 0 {
		cfg.Cache.Size = 1024
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
}

// Validate checks the values that defaults cannot fix
func (c *Config) Validate() error {
	endpoints, err := c.Subgraph.ChainEndpoints()
	if err != nil {
		return err
	}
	if _, ok := endpoints[entity.ChainID(c.Subgraph.DefaultChain)]; !ok {
		return fmt.Errorf("default chain %d has no subgraph endpoint: %w", c.Subgraph.DefaultChain, entity.ErrUnknownChain)
	}
	switch c.Cache.Backend {
	case CacheBackendNone, CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("unsupported cache backend %q", c.Cache.Backend)
	}
	return nil
}

// ChainEndpoints parses the endpoint map keys into chain ids
func (s Subgraph) ChainEndpoints() (map[entity.ChainID]string, error) {
	endpoints := make(map[entity.ChainID]string, len(s.Endpoints))
	for raw, url := range s.Endpoints {
		chainID, err := entity.ParseChainID(raw)
		if err != nil {
			return nil, fmt.Errorf("subgraph endpoint key: %w", err)
		}
		if url == "" {
			return nil, fmt.Errorf("subgraph endpoint for chain %s is empty", raw)
		}
		endpoints[chainID] = url
	}
	return endpoints, nil
}
