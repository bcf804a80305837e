package sync

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/captable-labs/captable-indexer/internal/clients/ledgerclient"
	"github.com/captable-labs/captable-indexer/internal/config"
	"github.com/captable-labs/captable-indexer/internal/db"
	"github.com/captable-labs/captable-indexer/internal/notify"
	"github.com/captable-labs/captable-indexer/internal/observability/metrics"
	"github.com/captable-labs/captable-indexer/internal/observability/tracing"
	"github.com/captable-labs/captable-indexer/internal/utils/poller"
)

// Service sweeps every deployed issuer on an interval, running one sync
// cycle per issuer. Failures are isolated per issuer; an issuer that keeps
// failing the same range is paused rather than retried forever.
type Service struct {
	cfg      *config.SyncConfig
	db       db.DbInterface
	ledger   ledgerclient.LedgerInterface
	notifier notify.Notifier

	mu       sync.Mutex
	failures map[string]int

	poller *poller.Poller
}

func NewService(
	cfg *config.SyncConfig,
	database db.DbInterface,
	ledger ledgerclient.LedgerInterface,
	notifier notify.Notifier,
) *Service {
	s := &Service{
		cfg:      cfg,
		db:       database,
		ledger:   ledger,
		notifier: notifier,
		failures: make(map[string]int),
	}
	s.poller = poller.NewPoller(cfg.PollInterval, metrics.RecordPollerDuration("issuer_sweep", s.sweep))
	return s
}

// Start blocks until the context is cancelled or Stop is called.
func (s *Service) Start(ctx context.Context) {
	s.poller.Start(ctx)
}

func (s *Service) Stop() {
	s.poller.Stop()
}

func (s *Service) headTag() ledgerclient.BlockTag {
	if s.cfg.FinalizedOnly {
		return ledgerclient.TagFinalized
	}
	return ledgerclient.TagLatest
}

// sweep runs one cycle for every syncable issuer. One issuer's failure never
// stops the others; it only counts against that issuer's quarantine budget.
func (s *Service) sweep(ctx context.Context) error {
	ctx = tracing.InjectTraceID(ctx)

	issuers, err := s.db.GetIssuers(ctx)
	if err != nil {
		return err
	}

	for _, issuer := range issuers {
		if issuer.DeployedTo == "" {
			continue
		}
		if issuer.SyncPaused {
			log.Debug().Str("issuer_id", issuer.ID).Msg("Skipping paused issuer")
			continue
		}

		if err := s.syncIssuer(ctx, issuer); err != nil {
			metrics.IncBatchFailures(issuer.ID)
			log.Error().Err(err).
				Str("issuer_id", issuer.ID).
				Msg("Issuer sync cycle failed")
			s.recordFailure(ctx, issuer.ID)
			continue
		}
		s.clearFailures(issuer.ID)
	}
	return nil
}

// recordFailure counts consecutive cycle failures and quarantines the issuer
// once MaxBatchFailures is reached. A paused issuer keeps its checkpoint;
// clearing sync_paused resumes from the same failing range.
func (s *Service) recordFailure(ctx context.Context, issuerID string) {
	s.mu.Lock()
	s.failures[issuerID]++
	count := s.failures[issuerID]
	s.mu.Unlock()

	if count < s.cfg.MaxBatchFailures {
		return
	}
	log.Warn().
		Str("issuer_id", issuerID).
		Int("failures", count).
		Msg("Pausing issuer sync after repeated batch failures")
	if err := s.db.SetIssuerSyncPaused(ctx, issuerID, true); err != nil {
		log.Error().Err(err).
			Str("issuer_id", issuerID).
			Msg("Failed to pause issuer sync")
		return
	}
	s.clearFailures(issuerID)
}

func (s *Service) clearFailures(issuerID string) {
	s.mu.Lock()
	delete(s.failures, issuerID)
	s.mu.Unlock()
}
