package sync

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/captable-labs/captable-indexer/internal/clients/ledgerclient"
	"github.com/captable-labs/captable-indexer/internal/ledger"
	"github.com/captable-labs/captable-indexer/internal/types"
)

func TestDecodeRawLogs(t *testing.T) {
	ts := time.Unix(1700000000, 0).UTC()
	blockTimes := map[uint64]time.Time{105: ts}

	tx := &ledger.StockCancellation{
		ID:         uuid.New(),
		SecurityID: uuid.New(),
		Quantity:   decimal.RequireFromString("250"),
	}
	stockClassID := uuid.New()

	rawLogs := []*ledgerclient.RawLog{
		{
			Topic:       ledger.Topic(ledger.TxCreatedEvent),
			Data:        ledger.EncodeTx(tx),
			BlockNumber: 105,
			TxIndex:     1,
			LogIndex:    2,
		},
		{
			Topic:       ledger.Topic(types.StockClassCreated.String()),
			Data:        ledger.EncodeEntityID(stockClassID),
			BlockNumber: 105,
		},
		{
			// Unknown contract event, silently skipped.
			Topic:       "0x1111111111111111111111111111111111111111111111111111111111111111",
			BlockNumber: 105,
		},
		{
			// Reorged log, skipped.
			Topic:       ledger.Topic(ledger.TxCreatedEvent),
			Data:        ledger.EncodeTx(tx),
			BlockNumber: 105,
			Removed:     true,
		},
	}

	events, err := decodeRawLogs(rawLogs, blockTimes)
	require.NoError(t, err)
	require.Len(t, events, 2)

	decoded, ok := events[0].Tx.(*ledger.StockCancellation)
	require.True(t, ok)
	assert.Equal(t, tx.ID, decoded.ID)
	assert.True(t, tx.Quantity.Equal(decoded.Quantity))
	assert.Equal(t, ts, events[0].Timestamp)
	assert.Equal(t, Origin{BlockNumber: 105, TxIndex: 1, LogIndex: 2}, events[0].Origin)

	assert.Equal(t, types.StockClassCreated, events[1].Lifecycle)
	assert.Equal(t, stockClassID, events[1].EntityID)
}

func TestDecodeRawLogsMalformedEnvelopeIsFatal(t *testing.T) {
	rawLogs := []*ledgerclient.RawLog{
		{
			Topic:       ledger.Topic(ledger.TxCreatedEvent),
			Data:        []byte{0xde, 0xad},
			BlockNumber: 105,
		},
	}
	_, err := decodeRawLogs(rawLogs, map[uint64]time.Time{105: time.Now()})
	require.Error(t, err)
}
