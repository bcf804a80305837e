package sync

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/captable-labs/captable-indexer/internal/db/model"
	"github.com/captable-labs/captable-indexer/internal/ledger"
	"github.com/captable-labs/captable-indexer/internal/types"
	"github.com/captable-labs/captable-indexer/tests/mocks"
)

// The registry must cover every wire tag; a missing entry would make a valid
// on-chain transaction fatal at dispatch.
func TestTxHandlerRegistryIsTotal(t *testing.T) {
	all := types.AllTxTypes()
	require.Len(t, txHandlers, len(all))
	for _, txType := range all {
		assert.Contains(t, txHandlers, txType, "missing handler for %s", txType)
	}
}

func TestApplyUnregisteredLifecycleEvent(t *testing.T) {
	b := newBatch(mocks.NewDbInterface(t), uuid.NewString())
	err := b.apply(t.Context(), Event{
		Lifecycle: types.LifecycleEvent("SOMETHING_NEW"),
		EntityID:  uuid.New(),
	})
	require.ErrorIs(t, err, ErrUnhandledTxType)
}

func TestHandleStockIssuance(t *testing.T) {
	issuerID := uuid.NewString()
	tx := &ledger.StockIssuance{
		ID:           uuid.New(),
		SecurityID:   uuid.New(),
		StockClassID: uuid.New(),
		Quantity:     decimal.RequireFromString("1500"),
		SharePrice:   decimal.RequireFromString("1.25"),
	}
	ev := Event{
		Tx:        tx,
		Timestamp: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		Origin:    Origin{BlockNumber: 120, TxIndex: 1, LogIndex: 0},
	}

	database := mocks.NewDbInterface(t)
	database.On("ConfirmStockIssuance", mock.Anything, mock.MatchedBy(func(doc *model.StockIssuance) bool {
		return doc.ID == tx.ID.String() &&
			doc.SecurityID == tx.SecurityID.String() &&
			doc.Quantity == "1500" &&
			doc.SharePrice == "1.25" &&
			doc.Date == "2024-03-15" &&
			doc.IsOnchainSynced
	})).Return(&model.StockIssuance{
		TxBase: model.TxBase{ID: tx.ID.String(), SecurityID: tx.SecurityID.String()},
	}, nil)
	database.On("InsertHistoricalTransaction", mock.Anything, mock.MatchedBy(func(ht *model.HistoricalTransaction) bool {
		return ht.TransactionID == tx.ID.String() &&
			ht.IssuerID == issuerID &&
			ht.TransactionType == "StockIssuance"
	})).Return(nil)

	b := newBatch(database, issuerID)
	require.NoError(t, b.apply(t.Context(), ev))

	require.Len(t, b.pending, 1)
	assert.Equal(t, tx.ID.String(), b.pending[0].TransactionID)
	assert.Equal(t, tx.SecurityID.String(), b.pending[0].SecurityID)
}

func TestHandleIssuerAdjustment(t *testing.T) {
	issuerID := uuid.NewString()
	tx := &ledger.IssuerAuthorizedSharesAdjustment{
		ID:                  uuid.New(),
		IssuerID:            uuid.New(),
		NewSharesAuthorized: decimal.RequireFromString("20000000"),
	}
	ev := Event{
		Tx:        tx,
		Timestamp: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		Origin:    Origin{BlockNumber: 200},
	}

	database := mocks.NewDbInterface(t)
	database.On("UpsertIssuerAdjustment", mock.Anything, mock.MatchedBy(func(doc *model.IssuerAuthorizedSharesAdjustment) bool {
		return doc.ID == tx.ID.String() && doc.NewSharesAuthorized == "20000000"
	})).Return(nil)
	database.On("UpdateIssuerSharesAuthorized", mock.Anything, issuerID, "20000000").Return(nil)
	database.On("InsertHistoricalTransaction", mock.Anything, mock.Anything).Return(nil)

	b := newBatch(database, issuerID)
	require.NoError(t, b.apply(t.Context(), ev))
}

func TestHandleStakeholderCreated(t *testing.T) {
	stakeholderID := uuid.New()

	database := mocks.NewDbInterface(t)
	database.On("MarkStakeholderSynced", mock.Anything, stakeholderID.String()).Return(nil)

	b := newBatch(database, uuid.NewString())
	err := b.apply(t.Context(), Event{
		Lifecycle: types.StakeholderCreated,
		EntityID:  stakeholderID,
	})
	require.NoError(t, err)
	assert.Empty(t, b.pending)
}
