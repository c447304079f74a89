package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	// Required: signs the session cookie. Must come from the config file
	// or the INKWELL_SESSION_SECRET_KEY environment variable; there is no
	// default on purpose.
	SessionSecretKey string `mapstructure:"session_secret_key"`

	// Store paths. Posts and users live in separate database files.
	PostDBPath string `mapstructure:"post_db_path"`
	UserDBPath string `mapstructure:"user_db_path"`

	// Optional HTTP settings
	HTTPHost string `mapstructure:"http_host"`
	HTTPPort int    `mapstructure:"http_port"`

	// Optional asset paths
	TemplateGlob string `mapstructure:"template_glob"`
	StaticDir    string `mapstructure:"static_dir"`

	// Optional logging settings
	LogLevel string `mapstructure:"log_level"`

	ConfigPath string
}

const (
	DefaultConfigPath   = "/etc/inkwell/config.yml"
	DefaultPostDBPath   = "/var/lib/inkwell/posts.sqlite3"
	DefaultUserDBPath   = "/var/lib/inkwell/users.sqlite3"
	DefaultHTTPHost     = "0.0.0.0"
	DefaultHTTPPort     = 8380
	DefaultTemplateGlob = "web/templates/*.html"
	DefaultStaticDir    = "web/static"
	DefaultLogLevel     = "info"
)

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("post_db_path", DefaultPostDBPath)
	viper.SetDefault("user_db_path", DefaultUserDBPath)
	viper.SetDefault("http_host", DefaultHTTPHost)
	viper.SetDefault("http_port", DefaultHTTPPort)
	viper.SetDefault("template_glob", DefaultTemplateGlob)
	viper.SetDefault("static_dir", DefaultStaticDir)
	viper.SetDefault("log_level", DefaultLogLevel)

	// Allow environment variable overrides
	viper.AutomaticEnv()
	viper.SetEnvPrefix("INKWELL")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.SessionSecretKey == "" {
		return fmt.Errorf("session_secret_key is required")
	}

	if c.PostDBPath == c.UserDBPath {
		return fmt.Errorf("post_db_path and user_db_path must be different files")
	}

	return nil
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("INKWELL_DEV_MODE") == "1"
}
