package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Log struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

type Game struct {
	MaxColumns   int           `mapstructure:"max_columns"`
	MaxRows      int           `mapstructure:"max_rows"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	ReapInterval time.Duration `mapstructure:"reap_interval"`
}

type Config struct {
	Mode string `mapstructure:"mode"`
	Addr string `mapstructure:"addr"`
	Log  Log    `mapstructure:"log"`
	JWT  JWT    `mapstructure:"jwt"`
	Game Game   `mapstructure:"game"`
}

const EnvPrefix = "BEESWEEPER"

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "development")
	v.SetDefault("addr", ":8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)

	v.SetDefault("jwt.private_key_path", "")
	v.SetDefault("jwt.public_key_path", "")
	v.SetDefault("jwt.token_lifetime", "24h")

	v.SetDefault("game.max_columns", 100)
	v.SetDefault("game.max_rows", 100)
	v.SetDefault("game.idle_timeout", "1h")
	v.SetDefault("game.reap_interval", "1m")
}

// Load reads the JSON config at path on top of the defaults. An empty path
// skips the file. Environment variables such as BEESWEEPER_GAME_MAX_ROWS
// override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.Game.MaxColumns <= 0 || c.Game.MaxRows <= 0 {
		errs = append(errs, fmt.Errorf("game limits must be positive, got %dx%d",
			c.Game.MaxColumns, c.Game.MaxRows))
	}
	if c.Game.IdleTimeout <= 0 || c.Game.ReapInterval <= 0 {
		errs = append(errs, errors.New("game idle_timeout and reap_interval must be positive"))
	}
	if c.JWT.TokenLifetime <= 0 {
		errs = append(errs, errors.New("jwt token_lifetime must be positive"))
	}
	if (c.JWT.PrivateKeyPath == "") != (c.JWT.PublicKeyPath == "") {
		errs = append(errs, errors.New("jwt private_key_path and public_key_path must be set together"))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":                 c.Mode,
		"addr":                 c.Addr,
		"log_level":            c.Log.Level,
		"log_file":             c.Log.File,
		"jwt_token_lifetime":   c.JWT.TokenLifetime.String(),
		"jwt_private_key_path": c.JWT.PrivateKeyPath,
		"jwt_public_key_path":  c.JWT.PublicKeyPath,
		"game_max_columns":     c.Game.MaxColumns,
		"game_max_rows":        c.Game.MaxRows,
		"game_idle_timeout":    c.Game.IdleTimeout.String(),
		"game_reap_interval":   c.Game.ReapInterval.String(),
	}
}
