package ledger

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/captable-labs/captable-indexer/internal/types"
)

// TxCreatedEvent is the generic transaction container event; everything else
// is a lifecycle notification carrying a bare entity id.
const TxCreatedEvent = "TxCreated"

// eventSignatures are the cap table contract's log signatures.
var eventSignatures = map[string]string{
	TxCreatedEvent:                    "TxCreated(uint256,uint8,bytes)",
	types.IssuerCreated.String():      "IssuerCreated(bytes16)",
	types.StakeholderCreated.String(): "StakeholderCreated(bytes16)",
	types.StockClassCreated.String():  "StockClassCreated(bytes16)",
	types.StockPlanCreated.String():   "StockPlanCreated(bytes16)",
}

var topicToEvent = func() map[string]string {
	m := make(map[string]string, len(eventSignatures))
	for name, sig := range eventSignatures {
		m[eventTopic(sig)] = name
	}
	return m
}()

func eventTopic(signature string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// EventName resolves a log's first topic to the contract event it denotes.
// Unknown topics resolve to false: logs from unrelated contracts or older
// contract versions are skipped, not fatal — only a recognized TxCreated
// with a bad tag indicates schema drift.
func EventName(topic string) (string, bool) {
	name, ok := topicToEvent[topic]
	return name, ok
}

// Topic returns the hex topic hash for a known event name. Used by tests
// and tooling to fabricate logs.
func Topic(name string) string {
	sig, ok := eventSignatures[name]
	if !ok {
		return ""
	}
	return eventTopic(sig)
}
