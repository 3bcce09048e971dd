package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
	Sentry    SentryConfig    `mapstructure:"sentry"`
	Trace     TraceConfig     `mapstructure:"trace"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release / test
	// ThrottleRPS caps per-client request rate across all endpoints.
	// 0 disables the throttle.
	ThrottleRPS   float64 `mapstructure:"throttle_rps"`
	ThrottleBurst int     `mapstructure:"throttle_burst"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite / postgres
	DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig 外部身份源签发的 Bearer Token 校验参数
type AuthConfig struct {
	// JWTSecret is the HS256 secret shared with the identity provider.
	JWTSecret string `mapstructure:"jwt_secret"`
	// Issuer, when non-empty, is enforced against the token's iss claim.
	Issuer string `mapstructure:"issuer"`
}

type RateLimitConfig struct {
	// Backend selects the submission guard implementation: memory / redis.
	Backend string        `mapstructure:"backend"`
	Window  time.Duration `mapstructure:"window"`
	Max     int           `mapstructure:"max"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type SentryConfig struct {
	DSN string `mapstructure:"dsn"`
}

type TraceConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"` // OTLP HTTP endpoint, host:port
}

// Load 读取 config.yaml 并允许环境变量覆盖（ADVICE_SERVER_PORT 等）
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("ADVICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// 缺省配置文件不算错误，走默认值 + 环境变量
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.throttle_rps", 0)
	v.SetDefault("server.throttle_burst", 20)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "advice.db")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")
	v.SetDefault("ratelimit.backend", "memory")
	v.SetDefault("ratelimit.window", time.Hour)
	v.SetDefault("ratelimit.max", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("trace.enabled", false)
	v.SetDefault("trace.endpoint", "localhost:4318")
}
