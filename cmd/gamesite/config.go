package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/gamesite"
)

var cfgFile string

// fileConfig mirrors gamesite.yaml and the GAMESITE_* environment.
type fileConfig struct {
	Name             string        `mapstructure:"name"`
	URL              string        `mapstructure:"url"`
	Description      string        `mapstructure:"description"`
	Author           string        `mapstructure:"author"`
	Addr             string        `mapstructure:"addr"`
	Mode             string        `mapstructure:"mode"`
	ConfigDir        string        `mapstructure:"config_dir"`
	ContentDir       string        `mapstructure:"content_dir"`
	StaticDir        string        `mapstructure:"static_dir"`
	SearchDB         string        `mapstructure:"search_db"`
	AdminPassword    string        `mapstructure:"admin_password"`
	SessionSecret    string        `mapstructure:"session_secret"`
	CookieSecure     bool          `mapstructure:"cookie_secure"`
	ConfigTTL        time.Duration `mapstructure:"config_ttl"`
	DevClearInterval time.Duration `mapstructure:"dev_clear_interval"`
	LogLevel         string        `mapstructure:"log_level"`
}

var appConfig fileConfig

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("name", "GameSite")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("description", "")
	v.SetDefault("author", "")
	v.SetDefault("addr", ":3000")
	v.SetDefault("mode", gamesite.ModeProduction)
	v.SetDefault("config_dir", "config")
	v.SetDefault("content_dir", "content")
	v.SetDefault("static_dir", "public")
	v.SetDefault("search_db", "data/search.db")
	v.SetDefault("admin_password", "")
	v.SetDefault("session_secret", "")
	v.SetDefault("cookie_secure", false)
	v.SetDefault("config_ttl", "0s")
	v.SetDefault("dev_clear_interval", "5s")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("GAMESITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func initializeConfig(cmd *cobra.Command) error {
	v := newViper()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("gamesite")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// Flags set on the command line win over file and environment.
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Changed {
		v.Set("addr", f.Value.String())
	}
	if f := cmd.Flags().Lookup("mode"); f != nil && f.Changed {
		v.Set("mode", f.Value.String())
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

func (c fileConfig) siteConfig() gamesite.SiteConfig {
	return gamesite.SiteConfig{
		Name:             c.Name,
		URL:              c.URL,
		Description:      c.Description,
		Author:           c.Author,
		Addr:             c.Addr,
		Mode:             c.Mode,
		ConfigDir:        c.ConfigDir,
		ContentDir:       c.ContentDir,
		SearchDBPath:     c.SearchDB,
		AdminPassword:    c.AdminPassword,
		SessionSecret:    c.SessionSecret,
		CookieSecure:     c.CookieSecure,
		ConfigTTL:        c.ConfigTTL,
		DevClearInterval: c.DevClearInterval,
		LogLevel:         c.LogLevel,
	}
}
