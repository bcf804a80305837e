package ledgerclient

import "time"

// BlockTag selects the head the poller targets; the finality policy is a
// parameter, not a state transition.
type BlockTag string

const (
	TagLatest    BlockTag = "latest"
	TagFinalized BlockTag = "finalized"
)

// RawLog is one ledger log record scoped to the cap table contract. Topic is
// the first log topic; Data carries the ABI-word payload.
type RawLog struct {
	Topic       string
	Data        []byte
	BlockNumber uint64
	TxIndex     uint
	LogIndex    uint
	TxHash      string
	Removed     bool
}

type Block struct {
	Number    uint64
	Timestamp time.Time
}

type Receipt struct {
	TxHash      string
	BlockNumber uint64
}
