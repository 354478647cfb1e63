package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Badsnus/coolqr/internal/adapters/cache/redis"
	"github.com/Badsnus/coolqr/pkg/logger"
	qr "github.com/Badsnus/coolqr/pkg/qrcode"
	"github.com/spf13/viper"
)

const envPrefix = "COOLQR"

type Config struct {
	QR        qr.Config
	OutputDir string
	Logger    logger.Config
	Redis     RedisConfig
}

type RedisConfig struct {
	Enabled bool
	Options redis.Options
	TTL     time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("settings.debug", false)
	v.SetDefault("settings.timezone", "UTC")
	v.SetDefault("settings.log-to-file", false)
	v.SetDefault("settings.logs-dir", "logs")

	v.SetDefault("qr.size", qr.DefaultSize)
	v.SetDefault("qr.fill-color", qr.DefaultFillColor)
	v.SetDefault("qr.back-color", qr.DefaultBackColor)
	v.SetDefault("qr.style", "")
	v.SetDefault("qr.dot-shape", string(qr.DefaultDotShape))
	v.SetDefault("qr.level", qr.DefaultLevel.String())
	v.SetDefault("qr.version", 0)
	v.SetDefault("qr.quiet-zone", 0)
	v.SetDefault("qr.logo.path", "")
	v.SetDefault("qr.logo.circular", true)
	v.SetDefault("qr.logo.size-ratio", qr.DefaultLogoSizeRatio)
	v.SetDefault("qr.logo.border", qr.DefaultLogoBorder)
	v.SetDefault("qr.mask.color", "")
	v.SetDefault("qr.mask.opacity", qr.DefaultMaskOpacity)
	v.SetDefault("qr.output-dir", "codes")

	v.SetDefault("service.redis.enabled", false)
	v.SetDefault("service.redis.host", "localhost")
	v.SetDefault("service.redis.port", "6379")
	v.SetDefault("service.redis.password", "")
	v.SetDefault("service.redis.db", 0)
	v.SetDefault("service.redis.ttl", time.Hour)
}

// Load reads path (or config.yaml in the working directory when path is empty),
// COOLQR_ prefixed env vars and defaults into v. A missing default config file is
// not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	level, err := qr.ParseLevel(v.GetString("qr.level"))
	if err != nil {
		return nil, err
	}

	return &Config{
		QR: qr.Config{
			Size:          v.GetInt("qr.size"),
			FillColor:     v.GetString("qr.fill-color"),
			BackColor:     v.GetString("qr.back-color"),
			Style:         v.GetString("qr.style"),
			DotShape:      qr.DotShape(strings.ToLower(v.GetString("qr.dot-shape"))),
			Version:       v.GetInt("qr.version"),
			Level:         level,
			QuietZone:     v.GetInt("qr.quiet-zone"),
			LogoPath:      v.GetString("qr.logo.path"),
			LogoCircular:  v.GetBool("qr.logo.circular"),
			LogoSizeRatio: v.GetFloat64("qr.logo.size-ratio"),
			LogoBorder:    v.GetInt("qr.logo.border"),
			MaskColor:     v.GetString("qr.mask.color"),
			MaskOpacity:   v.GetFloat64("qr.mask.opacity"),
		},
		OutputDir: v.GetString("qr.output-dir"),
		Logger: logger.Config{
			Debug:     v.GetBool("settings.debug"),
			TimeZone:  v.GetString("settings.timezone"),
			LogToFile: v.GetBool("settings.log-to-file"),
			LogsDir:   v.GetString("settings.logs-dir"),
		},
		Redis: RedisConfig{
			Enabled: v.GetBool("service.redis.enabled"),
			Options: redis.Options{
				Host:     v.GetString("service.redis.host"),
				Port:     v.GetString("service.redis.port"),
				Password: v.GetString("service.redis.password"),
				DB:       v.GetInt("service.redis.db"),
			},
			TTL: v.GetDuration("service.redis.ttl"),
		},
	}, nil
}

// Get loads the config from the global viper instance and initializes the
// process logger. It panics on failure.
func Get() *Config {
	cfg, err := Load(viper.GetViper(), "")
	if err != nil {
		panic(err)
	}

	if err = logger.Init(cfg.Logger); err != nil {
		panic(err)
	}
	return cfg
}
