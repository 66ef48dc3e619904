package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Base        string   `mapstructure:"base"`
	Holding     string   `mapstructure:"holding"`
	YearStart   int      `mapstructure:"year_start"`
	YearEnd     int      `mapstructure:"year_end"`
	Extensions  []string `mapstructure:"extensions"`
	UseExiftool bool     `mapstructure:"use_exiftool"`
	LogDir      string   `mapstructure:"log_dir"`
}

func LoadConfig() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to find user config dir: %w", err)
	}

	viper.SetConfigName("narya")
	viper.SetConfigType("toml")
	viper.AddConfigPath(filepath.Join(configDir, "narya"))

	// Set defaults:
	viper.SetDefault("base", filepath.Join(os.Getenv("HOME"), "media"))
	viper.SetDefault("holding", filepath.Join(os.Getenv("HOME"), "media-misplaced"))
	viper.SetDefault("year_start", 0)
	viper.SetDefault("year_end", 0)
	viper.SetDefault("extensions", []string{"jpg", "heic", "mov", "mp4", "mpg", "gif", "m4a"})
	viper.SetDefault("use_exiftool", false)
	viper.SetDefault("log_dir", "log")

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found; that's OK, just use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Extensions = NormalizeExtensions(cfg.Extensions)

	return &cfg, nil
}

// NormalizeExtensions lower-cases and strips leading dots so config values
// like ".JPG" and "jpg" mean the same thing.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(e)), ".")
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
