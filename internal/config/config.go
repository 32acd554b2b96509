// Package config loads runtime configuration from a .env file with
// environment variable overrides.
package config

import (
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Port      string
	StaticDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type LoggerConfig struct {
	Mode       string // "development" or "production"
	FileEnable bool
	Filename   string
}

// MarketConfig carries the storefront identity: whose shop this is, the
// referral the commission accrues to, and the bank withdrawals pay out
// through.
type MarketConfig struct {
	PlatformName   string
	OwnerName      string
	ReferralName   string
	BankName       string
	CommissionRate float64
	CatalogSize    int
	StorageKey     string
}

type SyncConfig struct {
	Interval time.Duration
	Stagger  time.Duration
}

type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Logger LoggerConfig
	Market MarketConfig
	Sync   SyncConfig
}

// Load reads .env, applies environment overrides, and fills defaults. A
// missing config file is not an error; the defaults describe a complete
// working setup.
func Load() Config {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("server.static_dir", "STATIC_DIR")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	viper.BindEnv("logger.mode", "LOG_MODE")
	viper.BindEnv("logger.file_enable", "LOG_FILE_ENABLE")
	viper.BindEnv("logger.filename", "LOG_FILENAME")

	viper.BindEnv("market.platform_name", "MARKET_PLATFORM_NAME")
	viper.BindEnv("market.owner_name", "MARKET_OWNER_NAME")
	viper.BindEnv("market.referral_name", "MARKET_REFERRAL_NAME")
	viper.BindEnv("market.bank_name", "MARKET_BANK_NAME")
	viper.BindEnv("market.commission_rate", "MARKET_COMMISSION_RATE")
	viper.BindEnv("market.catalog_size", "MARKET_CATALOG_SIZE")
	viper.BindEnv("market.storage_key", "MARKET_STORAGE_KEY")

	viper.BindEnv("sync.interval", "SYNC_INTERVAL")
	viper.BindEnv("sync.stagger", "SYNC_STAGGER")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.static_dir", "./static")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.file_enable", false)
	viper.SetDefault("logger.filename", "logs/backend.log")

	viper.SetDefault("market.platform_name", "Global Marketplace")
	viper.SetDefault("market.owner_name", "Olawale Abdul")
	viper.SetDefault("market.referral_name", "Adegan Global")
	viper.SetDefault("market.bank_name", "Global Pilgrim Bank")
	viper.SetDefault("market.commission_rate", 0.05)
	viper.SetDefault("market.catalog_size", 50)
	viper.SetDefault("market.storage_key", "globalMarketplaceData")

	viper.SetDefault("sync.interval", "30s")
	viper.SetDefault("sync.stagger", "300ms")

	if err := viper.ReadInConfig(); err != nil {
		zap.S().Infof("[CONFIG] no config file, using defaults: %v", err)
	}

	return Config{
		Server: ServerConfig{
			Port:      viper.GetString("server.port"),
			StaticDir: viper.GetString("server.static_dir"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("redis.host"),
			Port:     viper.GetString("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Mode:       viper.GetString("logger.mode"),
			FileEnable: viper.GetBool("logger.file_enable"),
			Filename:   viper.GetString("logger.filename"),
		},
		Market: MarketConfig{
			PlatformName:   viper.GetString("market.platform_name"),
			OwnerName:      viper.GetString("market.owner_name"),
			ReferralName:   viper.GetString("market.referral_name"),
			BankName:       viper.GetString("market.bank_name"),
			CommissionRate: viper.GetFloat64("market.commission_rate"),
			CatalogSize:    viper.GetInt("market.catalog_size"),
			StorageKey:     viper.GetString("market.storage_key"),
		},
		Sync: SyncConfig{
			Interval: viper.GetDuration("sync.interval"),
			Stagger:  viper.GetDuration("sync.stagger"),
		},
	}
}
