// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port        string `mapstructure:"port"`
	ContentRoot string `mapstructure:"content_root"` // 空なら埋め込みの web/ を使う
	Index       string `mapstructure:"index"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite | postgres
	URL    string `mapstructure:"url"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

var Cfg *Config

// LoadConfig は .env、config.yaml、環境変数の順に設定を読み込みます。
// config.yaml が無くてもデフォルト値と環境変数で起動できます。
func LoadConfig(paths ...string) (*Config, error) {
	// .env は存在しなければ無視
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using process environment")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PORT / CONTENT_ROOT でも指定できる
	v.BindEnv("server.port", "PORT", "SERVER_PORT")
	v.BindEnv("server.content_root", "CONTENT_ROOT", "SERVER_CONTENT_ROOT")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.url", "DATABASE_URL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Server.Port = NormalizePort(cfg.Server.Port)
	if cfg.Server.Index == "" {
		cfg.Server.Index = DefaultIndexDocument
	}
	cfg.Database.Driver = strings.ToLower(cfg.Database.Driver)
	switch cfg.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	Cfg = &cfg

	log.Printf("Config loaded: port=%s content_root=%q db_driver=%s", cfg.Server.Port, cfg.Server.ContentRoot, cfg.Database.Driver)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.content_root", "")
	v.SetDefault("server.index", DefaultIndexDocument)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.url", DefaultDatabaseURL)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "PUT", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "X-Request-Id"})
	v.SetDefault("cors.exposed_headers", []string{"X-Request-Id"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 300)
}

// NormalizePort は "3000" と ":3000" のどちらも listen アドレスに変換します
func NormalizePort(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return DefaultServerPort
	}
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
