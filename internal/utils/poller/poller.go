package poller

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Poller drives a sweep function on a fixed interval. Stop is cooperative:
// an in-flight sweep always runs to completion before the loop exits, so a
// batch is never torn mid-commit.
type Poller struct {
	interval   time.Duration
	quit       chan struct{}
	done       chan struct{}
	pollMethod func(ctx context.Context) error
}

func NewPoller(interval time.Duration, pollMethod func(ctx context.Context) error) *Poller {
	return &Poller{
		interval:   interval,
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
		pollMethod: pollMethod,
	}
}

func (p *Poller) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	defer close(p.done)

	log.Info().Msgf("Starting poller with interval %s", p.interval)

	for {
		select {
		case <-ticker.C:
			if err := p.pollMethod(ctx); err != nil {
				log.Error().Err(err).Msg("Error polling")
			}
		case <-ctx.Done():
			log.Info().Msg("Poller stopped due to context cancellation")
			return
		case <-p.quit:
			log.Info().Msg("Poller stopped")
			return
		}
	}
}

// Stop requests shutdown and blocks until the current sweep has drained.
func (p *Poller) Stop() {
	close(p.quit)
	<-p.done
}
