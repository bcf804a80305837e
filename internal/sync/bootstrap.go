package sync

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/captable-labs/captable-indexer/internal/clients/ledgerclient"
	"github.com/captable-labs/captable-indexer/internal/db/model"
	"github.com/captable-labs/captable-indexer/internal/ledger"
	"github.com/captable-labs/captable-indexer/internal/types"
)

// bootstrapIssuer runs once per issuer, before the first cycle. It locates
// the deployment transaction, verifies the contract's IssuerCreated event
// names this issuer, and seeds the checkpoint to the block before deployment
// so the first steady cycle starts at the deployment block itself. Seeding
// and the checkpoint write share one transaction.
//
// Returning a nil error without a checkpoint means the issuer stays in
// bootstrap: the deployment is not yet visible (or not yet final) under the
// configured head policy, and the next sweep retries.
func (s *Service) bootstrapIssuer(ctx context.Context, issuer *model.Issuer, head uint64) error {
	receipt, err := s.ledger.GetTransactionReceipt(ctx, issuer.TxHash)
	if err != nil {
		return fmt.Errorf("failed to get deployment receipt for issuer %s: %w", issuer.ID, err)
	}
	if receipt == nil {
		log.Warn().
			Str("issuer_id", issuer.ID).
			Str("tx_hash", issuer.TxHash).
			Msg("Deployment receipt not found")
		return nil
	}
	if receipt.BlockNumber > head {
		log.Debug().
			Str("issuer_id", issuer.ID).
			Uint64("deploy_block", receipt.BlockNumber).
			Uint64("head", head).
			Msg("Deployment tx not yet below target head")
		return nil
	}

	if s.cfg.Confirmations > 0 {
		if err := s.ledger.WaitForConfirmations(ctx, issuer.TxHash, s.cfg.Confirmations); err != nil {
			return fmt.Errorf("failed to wait for deployment confirmations for issuer %s: %w", issuer.ID, err)
		}
	}

	if err := s.verifyIssuerCreated(ctx, issuer, receipt.BlockNumber); err != nil {
		return err
	}

	checkpoint := receipt.BlockNumber - 1
	err = s.db.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.db.UpdateIssuerSharesAuthorized(txCtx, issuer.ID, issuer.InitialSharesAuthorized); err != nil {
			return err
		}
		return s.db.UpdateIssuerLastProcessedBlock(txCtx, issuer.ID, checkpoint)
	})
	if err != nil {
		return fmt.Errorf("failed to seed issuer %s: %w", issuer.ID, err)
	}

	issuer.LastProcessedBlock = &checkpoint
	log.Info().
		Str("issuer_id", issuer.ID).
		Uint64("deploy_block", receipt.BlockNumber).
		Msg("New issuer deployment verified and seeded")
	return nil
}

// verifyIssuerCreated checks that the deployment block carries exactly one
// IssuerCreated event and that the id it announces is the issuer being
// bootstrapped. A mismatch means the stored contract address belongs to a
// different cap table and must never be synced into this issuer's records.
func (s *Service) verifyIssuerCreated(ctx context.Context, issuer *model.Issuer, deployBlock uint64) error {
	rawLogs, err := s.ledger.GetLogs(ctx, issuer.DeployedTo, deployBlock, deployBlock)
	if err != nil {
		return fmt.Errorf("failed to get deployment logs for issuer %s: %w", issuer.ID, err)
	}

	issuerCreatedTopic := ledger.Topic(types.IssuerCreated.String())
	var created []*ledgerclient.RawLog
	for _, raw := range rawLogs {
		if raw.Topic == issuerCreatedTopic && !raw.Removed {
			created = append(created, raw)
		}
	}
	if len(created) != 1 {
		return fmt.Errorf("issuer %s: expected one IssuerCreated event at block %d, found %d",
			issuer.ID, deployBlock, len(created))
	}

	announcedID, err := ledger.ParseEntityID(created[0].Data)
	if err != nil {
		return fmt.Errorf("issuer %s: malformed IssuerCreated event: %w", issuer.ID, err)
	}
	if announcedID.String() != issuer.ID {
		return fmt.Errorf("issuer %s: contract at %s announced issuer %s",
			issuer.ID, issuer.DeployedTo, announcedID)
	}
	return nil
}
