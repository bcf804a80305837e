package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/captable-labs/captable-indexer/internal/db"
	"github.com/captable-labs/captable-indexer/internal/db/model"
	"github.com/captable-labs/captable-indexer/internal/ledger"
)

// newTxBase fills the fields shared by every transaction document. Date is
// the block's calendar date in OCF form (e.g. 2022-01-28).
func newTxBase(ev Event, objectType string, securityID uuid.UUID, issuerID string) model.TxBase {
	base := model.TxBase{
		ID:              ev.Tx.TxID().String(),
		ObjectType:      objectType,
		IssuerID:        issuerID,
		Date:            ev.Timestamp.UTC().Format(time.DateOnly),
		BlockNumber:     ev.Origin.BlockNumber,
		TxIndex:         ev.Origin.TxIndex,
		LogIndex:        ev.Origin.LogIndex,
		IsOnchainSynced: true,
	}
	if securityID != uuid.Nil {
		base.SecurityID = securityID.String()
	}
	return base
}

// recordHistory appends the audit entry for a persisted transaction. A
// replayed batch hits the unique index on the transaction id; that is the
// expected idempotent path, not a failure.
func (b *batch) recordHistory(ctx context.Context, tx ledger.DecodedTx) error {
	err := b.db.InsertHistoricalTransaction(ctx, &model.HistoricalTransaction{
		TransactionID:   tx.TxID().String(),
		IssuerID:        b.issuerID,
		TransactionType: tx.TxType().String(),
	})
	if db.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}

func handleStockIssuance(ctx context.Context, b *batch, ev Event) error {
	tx := ev.Tx.(*ledger.StockIssuance)

	doc := &model.StockIssuance{
		TxBase:       newTxBase(ev, model.ObjectTypeStockIssuance, tx.SecurityID, b.issuerID),
		StockClassID: tx.StockClassID.String(),
		Quantity:     tx.Quantity.String(),
		SharePrice:   tx.SharePrice.String(),
		IssuanceType: string(tx.IssuanceType),
	}
	if tx.StockPlanID != uuid.Nil {
		doc.StockPlanID = tx.StockPlanID.String()
	}

	confirmed, err := b.db.ConfirmStockIssuance(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to confirm stock issuance %s: %w", tx.ID, err)
	}
	log.Debug().
		Str("issuer_id", b.issuerID).
		Str("security_id", doc.SecurityID).
		Str("stakeholder_id", confirmed.StakeholderID).
		Msg("Stock issuance confirmed on chain")

	if err := b.recordHistory(ctx, tx); err != nil {
		return err
	}
	b.notifySynced(tx, doc.SecurityID)
	return nil
}

func handleStockTransfer(ctx context.Context, b *batch, ev Event) error {
	tx := ev.Tx.(*ledger.StockTransfer)

	doc := &model.StockTransfer{
		TxBase:               newTxBase(ev, model.ObjectTypeStockTransfer, tx.SecurityID, b.issuerID),
		Quantity:             tx.Quantity.String(),
		ResultingSecurityIDs: idStrings(tx.ResultingSecurityIDs),
	}
	if tx.BalanceSecurityID != uuid.Nil {
		doc.BalanceSecurityID = tx.BalanceSecurityID.String()
	}
	if err := b.db.UpsertStockTransfer(ctx, doc); err != nil {
		return fmt.Errorf("failed to upsert stock transfer %s: %w", tx.ID, err)
	}
	if err := b.recordHistory(ctx, tx); err != nil {
		return err
	}
	b.notifySynced(tx, doc.SecurityID)
	return nil
}

func handleStockCancellation(ctx context.Context, b *batch, ev Event) error {
	tx := ev.Tx.(*ledger.StockCancellation)

	doc := &model.StockCancellation{
		TxBase:   newTxBase(ev, model.ObjectTypeStockCancellation, tx.SecurityID, b.issuerID),
		Quantity: tx.Quantity.String(),
	}
	if tx.BalanceSecurityID != uuid.Nil {
		doc.BalanceSecurityID = tx.BalanceSecurityID.String()
	}
	if err := b.db.UpsertStockCancellation(ctx, doc); err != nil {
		return fmt.Errorf("failed to upsert stock cancellation %s: %w", tx.ID, err)
	}
	if err := b.recordHistory(ctx, tx); err != nil {
		return err
	}
	b.notifySynced(tx, doc.SecurityID)
	return nil
}

func handleStockRetraction(ctx context.Context, b *batch, ev Event) error {
	tx := ev.Tx.(*ledger.StockRetraction)

	doc := &model.StockRetraction{
		TxBase: newTxBase(ev, model.ObjectTypeStockRetraction, tx.SecurityID, b.issuerID),
	}
	if err := b.db.UpsertStockRetraction(ctx, doc); err != nil {
		return fmt.Errorf("failed to upsert stock retraction %s: %w", tx.ID, err)
	}
	if err := b.recordHistory(ctx, tx); err != nil {
		return err
	}
	b.notifySynced(tx, doc.SecurityID)
	return nil
}

func handleStockReissuance(ctx context.Context, b *batch, ev Event) error {
	tx := ev.Tx.(*ledger.StockReissuance)

	doc := &model.StockReissuance{
		TxBase:               newTxBase(ev, model.ObjectTypeStockReissuance, tx.SecurityID, b.issuerID),
		ResultingSecurityIDs: idStrings(tx.ResultingSecurityIDs),
	}
	if err := b.db.UpsertStockReissuance(ctx, doc); err != nil {
		return fmt.Errorf("failed to upsert stock reissuance %s: %w", tx.ID, err)
	}
	if err := b.recordHistory(ctx, tx); err != nil {
		return err
	}
	b.notifySynced(tx, doc.SecurityID)
	return nil
}

func handleStockRepurchase(ctx context.Context, b *batch, ev Event) error {
	tx := ev.Tx.(*ledger.StockRepurchase)

	doc := &model.StockRepurchase{
		TxBase:   newTxBase(ev, model.ObjectTypeStockRepurchase, tx.SecurityID, b.issuerID),
		Quantity: tx.Quantity.String(),
		Price:    tx.Price.String(),
	}
	if tx.BalanceSecurityID != uuid.Nil {
		doc.BalanceSecurityID = tx.BalanceSecurityID.String()
	}
	if err := b.db.UpsertStockRepurchase(ctx, doc); err != nil {
		return fmt.Errorf("failed to upsert stock repurchase %s: %w", tx.ID, err)
	}
	if err := b.recordHistory(ctx, tx); err != nil {
		return err
	}
	b.notifySynced(tx, doc.SecurityID)
	return nil
}

func handleStockAcceptance(ctx context.Context, b *batch, ev Event) error {
	tx := ev.Tx.(*ledger.StockAcceptance)

	doc := &model.StockAcceptance{
		TxBase: newTxBase(ev, model.ObjectTypeStockAcceptance, tx.SecurityID, b.issuerID),
	}
	if err := b.db.UpsertStockAcceptance(ctx, doc); err != nil {
		return fmt.Errorf("failed to upsert stock acceptance %s: %w", tx.ID, err)
	}
	if err := b.recordHistory(ctx, tx); err != nil {
		return err
	}
	b.notifySynced(tx, doc.SecurityID)
	return nil
}

// handleIssuerAdjustment persists the adjustment record and moves the
// issuer's authorized share count to the new total.
func handleIssuerAdjustment(ctx context.Context, b *batch, ev Event) error {
	tx := ev.Tx.(*ledger.IssuerAuthorizedSharesAdjustment)

	doc := &model.IssuerAuthorizedSharesAdjustment{
		TxBase:              newTxBase(ev, model.ObjectTypeIssuerAdjustment, uuid.Nil, b.issuerID),
		NewSharesAuthorized: tx.NewSharesAuthorized.String(),
	}
	if err := b.db.UpsertIssuerAdjustment(ctx, doc); err != nil {
		return fmt.Errorf("failed to upsert issuer adjustment %s: %w", tx.ID, err)
	}
	if err := b.db.UpdateIssuerSharesAuthorized(ctx, b.issuerID, doc.NewSharesAuthorized); err != nil {
		return fmt.Errorf("failed to update issuer %s shares authorized: %w", b.issuerID, err)
	}
	if err := b.recordHistory(ctx, tx); err != nil {
		return err
	}
	b.notifySynced(tx, "")
	return nil
}

func handleStockClassAdjustment(ctx context.Context, b *batch, ev Event) error {
	tx := ev.Tx.(*ledger.StockClassAuthorizedSharesAdjustment)

	doc := &model.StockClassAuthorizedSharesAdjustment{
		TxBase:              newTxBase(ev, model.ObjectTypeStockClassAdjustment, uuid.Nil, b.issuerID),
		StockClassID:        tx.StockClassID.String(),
		NewSharesAuthorized: tx.NewSharesAuthorized.String(),
	}
	if err := b.db.UpsertStockClassAdjustment(ctx, doc); err != nil {
		return fmt.Errorf("failed to upsert stock class adjustment %s: %w", tx.ID, err)
	}
	if err := b.db.UpdateStockClassSharesAuthorized(ctx, doc.StockClassID, doc.NewSharesAuthorized); err != nil {
		return fmt.Errorf("failed to update stock class %s shares authorized: %w", doc.StockClassID, err)
	}
	if err := b.recordHistory(ctx, tx); err != nil {
		return err
	}
	b.notifySynced(tx, "")
	return nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
