package sync

import (
	"time"

	"github.com/google/uuid"

	"github.com/captable-labs/captable-indexer/internal/ledger"
	"github.com/captable-labs/captable-indexer/internal/types"
)

// Origin is a log's provenance on the ledger. It defines the global apply
// order within an issuer.
type Origin struct {
	BlockNumber uint64
	TxIndex     uint
	LogIndex    uint
}

// Less orders origins by (block, txIndex, logIndex) ascending.
func (o Origin) Less(other Origin) bool {
	if o.BlockNumber != other.BlockNumber {
		return o.BlockNumber < other.BlockNumber
	}
	if o.TxIndex != other.TxIndex {
		return o.TxIndex < other.TxIndex
	}
	return o.LogIndex < other.LogIndex
}

// Event is one normalized ledger event collected for a cycle. Exactly one of
// Tx and Lifecycle is set: Tx for decoded TxCreated envelopes, Lifecycle
// plus EntityID for entity-created notifications.
type Event struct {
	Tx        ledger.DecodedTx
	Lifecycle types.LifecycleEvent
	EntityID  uuid.UUID
	Timestamp time.Time
	Origin    Origin
}
