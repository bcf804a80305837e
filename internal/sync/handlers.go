package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/captable-labs/captable-indexer/internal/db"
	"github.com/captable-labs/captable-indexer/internal/ledger"
	"github.com/captable-labs/captable-indexer/internal/notify"
	"github.com/captable-labs/captable-indexer/internal/types"
)

// ErrUnhandledTxType means the handler registry does not cover a decoded
// transaction's tag. Unlike an unknown wire tag this is a bug in the
// registry itself, so it is fatal and not retryable.
var ErrUnhandledTxType = errors.New("no handler registered for transaction type")

// batch carries the state of one issuer's in-flight apply pass: the store
// handle scoped to the surrounding transaction, the issuer the events belong
// to, and the sync notifications to publish after commit.
type batch struct {
	db       db.DbInterface
	issuerID string
	pending  []*notify.TransactionSyncedEvent
}

func newBatch(database db.DbInterface, issuerID string) *batch {
	return &batch{db: database, issuerID: issuerID}
}

type txHandler func(ctx context.Context, b *batch, ev Event) error

type lifecycleHandler func(ctx context.Context, b *batch, entityID uuid.UUID) error

// txHandlers maps every wire tag to its apply handler. Keeping the registry
// total over the enumeration is asserted by tests against AllTxTypes.
var txHandlers = map[types.TxType]txHandler{
	types.TxIssuerAuthorizedSharesAdjustment:     handleIssuerAdjustment,
	types.TxStockClassAuthorizedSharesAdjustment: handleStockClassAdjustment,
	types.TxStockAcceptance:                      handleStockAcceptance,
	types.TxStockCancellation:                    handleStockCancellation,
	types.TxStockIssuance:                        handleStockIssuance,
	types.TxStockReissuance:                      handleStockReissuance,
	types.TxStockRepurchase:                      handleStockRepurchase,
	types.TxStockRetraction:                      handleStockRetraction,
	types.TxStockTransfer:                        handleStockTransfer,
}

var lifecycleHandlers = map[types.LifecycleEvent]lifecycleHandler{
	types.StakeholderCreated: handleStakeholderCreated,
	types.StockClassCreated:  handleStockClassCreated,
	types.StockPlanCreated:   handleStockPlanCreated,
}

// apply routes one event to its registered handler.
func (b *batch) apply(ctx context.Context, ev Event) error {
	if ev.Tx != nil {
		handler, ok := txHandlers[ev.Tx.TxType()]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnhandledTxType, ev.Tx.TxType())
		}
		return handler(ctx, b, ev)
	}
	handler, ok := lifecycleHandlers[ev.Lifecycle]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnhandledTxType, ev.Lifecycle)
	}
	return handler(ctx, b, ev.EntityID)
}

// notifySynced queues a sync notification for delivery after the batch
// commits. Publishing inside the transaction would leak events for batches
// that roll back.
func (b *batch) notifySynced(tx ledger.DecodedTx, securityID string) {
	b.pending = append(b.pending, &notify.TransactionSyncedEvent{
		IssuerID:        b.issuerID,
		TransactionID:   tx.TxID().String(),
		TransactionType: tx.TxType().String(),
		SecurityID:      securityID,
	})
}

func handleStakeholderCreated(ctx context.Context, b *batch, entityID uuid.UUID) error {
	return b.db.MarkStakeholderSynced(ctx, entityID.String())
}

func handleStockClassCreated(ctx context.Context, b *batch, entityID uuid.UUID) error {
	return b.db.MarkStockClassSynced(ctx, entityID.String())
}

func handleStockPlanCreated(ctx context.Context, b *batch, entityID uuid.UUID) error {
	return b.db.MarkStockPlanSynced(ctx, entityID.String())
}
