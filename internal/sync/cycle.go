package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/captable-labs/captable-indexer/internal/clients/ledgerclient"
	"github.com/captable-labs/captable-indexer/internal/db/model"
	"github.com/captable-labs/captable-indexer/internal/observability/metrics"
)

// syncIssuer runs one cycle for one issuer: bootstrap when the issuer has no
// checkpoint yet, otherwise scan the next block range and commit the batch.
func (s *Service) syncIssuer(ctx context.Context, issuer *model.Issuer) error {
	head, err := s.ledger.GetBlockByTag(ctx, s.headTag())
	if err != nil {
		return fmt.Errorf("failed to get %s block: %w", s.headTag(), err)
	}
	metrics.RecordLedgerHead(head.Number)

	if issuer.LastProcessedBlock == nil {
		if err := s.bootstrapIssuer(ctx, issuer, head.Number); err != nil {
			return err
		}
		if issuer.LastProcessedBlock == nil {
			// Still waiting for the deployment to surface.
			return nil
		}
	}
	return s.runCycle(ctx, issuer, *issuer.LastProcessedBlock, head.Number)
}

// runCycle scans (checkpoint, head] bounded by MaxBlocks, applies the
// trimmed batch, and advances the checkpoint. The batch's documents and the
// checkpoint commit in one transaction; sync notifications go out only after
// that commit succeeds.
func (s *Service) runCycle(ctx context.Context, issuer *model.Issuer, checkpoint, head uint64) error {
	startBlock := checkpoint + 1
	if startBlock > head {
		return nil
	}
	endBlock := min(startBlock+s.cfg.MaxBlocks-1, head)

	rawLogs, err := s.ledger.GetLogs(ctx, issuer.DeployedTo, startBlock, endBlock)
	if err != nil {
		return fmt.Errorf("failed to get logs [%d, %d] for issuer %s: %w",
			startBlock, endBlock, issuer.ID, err)
	}

	blockTimes, err := s.fetchBlockTimes(ctx, rawLogs)
	if err != nil {
		return err
	}
	events, err := decodeRawLogs(rawLogs, blockTimes)
	if err != nil {
		metrics.IncDecodeErrors()
		log.Error().Err(err).
			Str("issuer_id", issuer.ID).
			Msg("Fatal decode failure, ledger schema drift suspected")
		return err
	}

	if len(events) == 0 {
		if err := s.db.UpdateIssuerLastProcessedBlock(ctx, issuer.ID, endBlock); err != nil {
			return fmt.Errorf("failed to advance checkpoint for issuer %s: %w", issuer.ID, err)
		}
		metrics.RecordLastProcessedBlock(issuer.ID, endBlock)
		return nil
	}

	events, newCheckpoint := trimEvents(events, endBlock, s.cfg.MaxEvents)
	log.Info().
		Str("issuer_id", issuer.ID).
		Int("events", len(events)).
		Uint64("start_block", startBlock).
		Uint64("checkpoint", newCheckpoint).
		Msg("Applying event batch")

	b := newBatch(s.db, issuer.ID)
	err = s.db.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, ev := range events {
			if err := s.applyEvent(txCtx, b, ev); err != nil {
				return err
			}
		}
		return s.db.UpdateIssuerLastProcessedBlock(txCtx, issuer.ID, newCheckpoint)
	})
	if err != nil {
		return fmt.Errorf("failed to commit batch for issuer %s: %w", issuer.ID, err)
	}
	metrics.RecordLastProcessedBlock(issuer.ID, newCheckpoint)

	s.publishPending(ctx, b)
	return nil
}

func (s *Service) applyEvent(ctx context.Context, b *batch, ev Event) error {
	start := time.Now()
	err := b.apply(ctx, ev)
	metrics.RecordEventProcessingDuration(time.Since(start), eventTypeName(ev), err != nil)
	return err
}

func eventTypeName(ev Event) string {
	if ev.Tx != nil {
		return ev.Tx.TxType().String()
	}
	return ev.Lifecycle.String()
}

// fetchBlockTimes resolves the timestamp of every distinct block that emitted
// a retained log. Transaction documents carry the block's calendar date.
func (s *Service) fetchBlockTimes(ctx context.Context, rawLogs []*ledgerclient.RawLog) (map[uint64]time.Time, error) {
	blockTimes := make(map[uint64]time.Time)
	for _, raw := range rawLogs {
		if raw.Removed {
			continue
		}
		if _, ok := blockTimes[raw.BlockNumber]; ok {
			continue
		}
		blk, err := s.ledger.GetBlockByNumber(ctx, raw.BlockNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to get block %d: %w", raw.BlockNumber, err)
		}
		blockTimes[raw.BlockNumber] = blk.Timestamp
	}
	return blockTimes, nil
}

// publishPending delivers the batch's sync notifications. Failures are
// counted and logged, never propagated: the batch is already committed and
// consumers deduplicate on transaction id.
func (s *Service) publishPending(ctx context.Context, b *batch) {
	for _, ev := range b.pending {
		if err := s.notifier.PublishTransactionSynced(ctx, ev); err != nil {
			metrics.IncNotifierPublishFailures()
			log.Error().Err(err).
				Str("transaction_id", ev.TransactionID).
				Msg("Failed to publish sync notification")
		}
	}
}
