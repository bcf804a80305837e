package config

import (
	"errors"
	"time"
)

type LedgerConfig struct {
	// RPCAddr is the JSON-RPC endpoint of the ledger node, including the
	// protocol prefix.
	RPCAddr       string        `mapstructure:"rpc-addr"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *LedgerConfig) Validate() error {
	if cfg.RPCAddr == "" {
		return errors.New("ledger rpc-addr is required")
	}
	if cfg.Timeout <= 0 {
		return errors.New("ledger timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return errors.New("ledger max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return errors.New("ledger retry-interval must be positive")
	}
	return nil
}
