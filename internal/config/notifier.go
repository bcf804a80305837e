package config

import "errors"

// NotifierConfig configures the outbound sync notification queue. The
// notifier is optional; when disabled, synced transactions are not published
// anywhere.
type NotifierConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Url      string `mapstructure:"url"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Exchange string `mapstructure:"exchange"`
}

func (cfg *NotifierConfig) Validate() error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Url == "" {
		return errors.New("notifier url is required")
	}
	if cfg.User == "" {
		return errors.New("notifier user is required")
	}
	if cfg.Password == "" {
		return errors.New("notifier password is required")
	}
	if cfg.Exchange == "" {
		return errors.New("notifier exchange is required")
	}
	return nil
}
