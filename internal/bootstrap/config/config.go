package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/bootstrap/logging"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
)

const (
	WatermarkPolicyAlways         = "always"
	WatermarkPolicyOnFailuresHold = "on-failures-hold"
)

type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Database   DatabaseConfig   `mapstructure:"database"`
	YouTube    YouTubeConfig    `mapstructure:"youtube"`
	Transcript TranscriptConfig `mapstructure:"transcript"`
	Translate  TranslateConfig  `mapstructure:"translate"`
	Tracker    TrackerConfig    `mapstructure:"tracker"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	Timezone string `mapstructure:"timezone"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type YouTubeConfig struct {
	APIKey   string `mapstructure:"api_key"`
	PageSize int64  `mapstructure:"page_size"`
}

type TranscriptConfig struct {
	Language string `mapstructure:"language"`
}

type TranslateConfig struct {
	Source    string `mapstructure:"source"`
	Target    string `mapstructure:"target"`
	BatchSize int    `mapstructure:"batch_size"`
}

type TrackerConfig struct {
	ChannelsFile       string `mapstructure:"channels_file"`
	DefaultWindowHours int    `mapstructure:"default_window_hours"`
	WatermarkPolicy    string `mapstructure:"watermark_policy"`
}

func Load(ctx context.Context, configFile string) (Config, error) {
	if ctx == nil {
		return Config{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return Config{}, errs.Wrap(err, "check context")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.config"))

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("YT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			// Keep default and env-backed config when no file is provided.
			logging.Warn(logCtx, "config file not found, fallback to defaults and env")
		} else {
			return Config{}, errs.Wrap(err, "read config")
		}
	} else {
		logging.Info(logCtx, "using config file", slog.String("path", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errs.Wrap(err, "unmarshal config")
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	logging.Info(
		logCtx,
		"config loaded",
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
		slog.String("database_driver", cfg.Database.Driver),
		slog.String("watermark_policy", cfg.Tracker.WatermarkPolicy),
	)

	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if cfg.Translate.BatchSize <= 0 {
		return errors.New("translate.batch_size must be positive")
	}
	if cfg.Tracker.DefaultWindowHours <= 0 {
		return errors.New("tracker.default_window_hours must be positive")
	}
	switch cfg.Tracker.WatermarkPolicy {
	case WatermarkPolicyAlways, WatermarkPolicyOnFailuresHold:
	default:
		return fmt.Errorf("unsupported tracker.watermark_policy %q", cfg.Tracker.WatermarkPolicy)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "yttrack")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.timezone", "Asia/Karachi")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "data/yt_transcripts.db")
	v.SetDefault("youtube.page_size", 100)
	v.SetDefault("transcript.language", "hi")
	v.SetDefault("translate.source", "hi")
	v.SetDefault("translate.target", "en")
	v.SetDefault("translate.batch_size", 50)
	v.SetDefault("tracker.channels_file", "channels.txt")
	v.SetDefault("tracker.default_window_hours", 24)
	v.SetDefault("tracker.watermark_policy", WatermarkPolicyAlways)
}
