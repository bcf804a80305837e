package config

import (
	"errors"
	"time"
)

const (
	defaultMaxBlocks        = 1500
	defaultMaxEvents        = 250
	defaultMaxBatchFailures = 10
)

type SyncConfig struct {
	// PollInterval is the sleep between full sweeps over all issuers.
	PollInterval time.Duration `mapstructure:"poll-interval"`
	// MaxBlocks bounds the scan range of one cycle.
	MaxBlocks uint64 `mapstructure:"max-blocks"`
	// MaxEvents is a soft cap on one committed batch; a single block is
	// never split to honor it.
	MaxEvents int `mapstructure:"max-events"`
	// FinalizedOnly targets the finalized head instead of the latest one.
	FinalizedOnly bool `mapstructure:"finalized-only"`
	// Confirmations is the extra block depth a deployment transaction must
	// reach before an issuer bootstraps. Zero disables the wait.
	Confirmations uint64 `mapstructure:"confirmations"`
	// MaxBatchFailures pauses an issuer after this many consecutive
	// failures of the same range, instead of retrying it forever.
	MaxBatchFailures int `mapstructure:"max-batch-failures"`
}

func (cfg *SyncConfig) Validate() error {
	if cfg.PollInterval <= 0 {
		return errors.New("sync poll-interval must be positive")
	}
	if cfg.MaxBlocks == 0 {
		cfg.MaxBlocks = defaultMaxBlocks
	}
	if cfg.MaxEvents < 0 {
		return errors.New("sync max-events must not be negative")
	}
	if cfg.MaxEvents == 0 {
		cfg.MaxEvents = defaultMaxEvents
	}
	if cfg.MaxBatchFailures < 0 {
		return errors.New("sync max-batch-failures must not be negative")
	}
	if cfg.MaxBatchFailures == 0 {
		cfg.MaxBatchFailures = defaultMaxBatchFailures
	}
	return nil
}
