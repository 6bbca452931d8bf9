package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"backoffice/src/menu"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Databases DatabasesConfig `mapstructure:"databases"`
	AWS       AWSConfig       `mapstructure:"aws"`
	Menu      []menu.Item     `mapstructure:"menu"`
}

type ServiceConfig struct {
	Port           string        `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"readTimeout"`
	WriteTimeout   time.Duration `mapstructure:"writeTimeout"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"`
	SecureCookies  bool          `mapstructure:"secureCookies"`
	AllowedOrigins []string      `mapstructure:"allowedOrigins"`
}

type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	ToFile   bool   `mapstructure:"toFile"`
	FilePath string `mapstructure:"filePath"`
}

type AuthConfig struct {
	JWTSecret        string        `mapstructure:"jwtSecret"`
	CookieName       string        `mapstructure:"cookieName"`
	SessionTTL       time.Duration `mapstructure:"sessionTTL"`
	LoginRatePerMin  int           `mapstructure:"loginRatePerMinute"`
	LoginBurst       int           `mapstructure:"loginBurst"`
	CustomerCacheTTL time.Duration `mapstructure:"customerCacheTTL"`
}

type DatabasesConfig struct {
	Control SQLConfig    `mapstructure:"control"`
	Tenant  TenantConfig `mapstructure:"tenant"`
	Redis   RedisConfig  `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

// DSN returns the connection string, building it from the individual fields
// when no explicit connection string is configured.
func (c SQLConfig) DSN() string {
	if c.ConnectionString != "" {
		return c.ConnectionString
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host,
		c.Username,
		c.Password,
		c.Database,
		c.Port)
}

type TenantConfig struct {
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	IdleTimeout     time.Duration `mapstructure:"idleTimeout"`
	ReaperSchedule  string        `mapstructure:"reaperSchedule"`
	SSLMode         string        `mapstructure:"sslMode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
	TLS      bool   `mapstructure:"tls"`
}

// Enabled reports whether a Redis server is configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type AWSConfig struct {
	Region         string        `mapstructure:"region"`
	Endpoint       string        `mapstructure:"endpoint"`
	SecretCacheTTL time.Duration `mapstructure:"secretCacheTTL"`
}

// LoadConfig reads appsettings.yaml from path and merges appsettings.<env>.yaml
// on top of it when env is set. BACKOFFICE_* environment variables win over both.
func LoadConfig(path string, env string) (*Config, error) {
	var cfg Config

	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("appsettings")
	v.SetConfigType("yaml")
	v.SetEnvPrefix("BACKOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	if env != "" {
		overlay := filepath.Join(path, "appsettings."+env+".yaml")
		if _, err := os.Stat(overlay); err == nil {
			v.SetConfigFile(overlay)
			if err := v.MergeInConfig(); err != nil {
				return nil, err
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("auth.jwtSecret must be set")
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.port", "8000")
	v.SetDefault("service.readTimeout", 30*time.Second)
	v.SetDefault("service.writeTimeout", 30*time.Second)
	v.SetDefault("service.requestTimeout", 10*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("auth.cookieName", "tms_session")
	v.SetDefault("auth.sessionTTL", 8*time.Hour)
	v.SetDefault("auth.loginRatePerMinute", 10)
	v.SetDefault("auth.loginBurst", 5)
	v.SetDefault("auth.customerCacheTTL", 5*time.Minute)
	v.SetDefault("databases.tenant.maxOpenConns", 10)
	v.SetDefault("databases.tenant.maxIdleConns", 2)
	v.SetDefault("databases.tenant.connMaxLifetime", 30*time.Minute)
	v.SetDefault("databases.tenant.idleTimeout", 30*time.Minute)
	v.SetDefault("databases.tenant.reaperSchedule", "@every 5m")
	v.SetDefault("databases.tenant.sslMode", "disable")
	v.SetDefault("aws.secretCacheTTL", 15*time.Minute)
}
