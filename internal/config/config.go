package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitstreak/pkg"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// cross origin clients allowed to call the JSON API
	AllowedOrigins []string `toml:"allowed_origins"`
	// reverse proxies (IPs or CIDRs) whose X-Real-Ip / X-Forwarded-For are believed
	TrustedProxies []string `toml:"trusted_proxies"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresUser   string `toml:"postgres_user"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// sessions and auth
	SessionTTL                  time.Duration `toml:"session_ttl"`
	SessionCookieName           string        `toml:"session_cookie_name"`
	SessionCookieSecure         bool          `toml:"session_cookie_secure"`
	SessionCleanPeriod          time.Duration `toml:"session_clean_period"`
	PasswordHashCost            int           `toml:"password_hash_cost"`
	LoginRateLimitAllowedPerMin int           `toml:"login_rate_limit_allowed_per_min"`

	// workouts, progress and achievements
	WorkoutVariant    string `toml:"workout_variant"`
	CycleLength       int    `toml:"cycle_length"`
	AchievementLadder string `toml:"achievement_ladder"`
	// StreakThresholds overrides the named ladder when not empty
	StreakThresholds []int `toml:"streak_thresholds"`

	StreakCacheSizeMB int           `toml:"streak_cache_size_mb"`
	StreakCacheTTL    time.Duration `toml:"streak_cache_ttl"`
}

type Toml struct {
	Development *Config
	DockerDev   *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("env [%s] not configured", env)
	}
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}
	return fromToml(&tomlConfig, env)
}

// Parse is Load for in-memory config content.
func Parse(env, content string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.Decode(content, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}
	return fromToml(&tomlConfig, env)
}

func fromToml(tomlConfig *Toml, env string) (*Config, error) {
	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid [%s] config: %w", env, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.SessionTTL == 0 {
		c.SessionTTL = 24 * 7 * time.Hour
	}
	if c.SessionCookieName == "" {
		c.SessionCookieName = "fitstreak-session"
	}
	if c.SessionCleanPeriod == 0 {
		c.SessionCleanPeriod = 8 * time.Hour
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
	if c.WorkoutVariant == "" {
		c.WorkoutVariant = "muscle"
	}
	if c.AchievementLadder == "" {
		c.AchievementLadder = "full"
	}
	if c.StreakCacheSizeMB == 0 {
		c.StreakCacheSizeMB = 8
	}
	if c.StreakCacheTTL == 0 {
		c.StreakCacheTTL = 10 * time.Minute
	}
}

func (c *Config) Validate() error {
	if c.Port <= 0 {
		return errors.New("port not set")
	}
	if _, err := pkg.ParseTrustedProxies(c.TrustedProxies); err != nil {
		return err
	}
	if c.CycleLength < 0 {
		return errors.New("cycle length cannot be negative")
	}
	for _, threshold := range c.StreakThresholds {
		if threshold <= 0 {
			return fmt.Errorf("streak threshold must be positive, got %d", threshold)
		}
	}
	return nil
}
