package sync

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/captable-labs/captable-indexer/internal/clients/ledgerclient"
	"github.com/captable-labs/captable-indexer/internal/ledger"
	"github.com/captable-labs/captable-indexer/internal/types"
)

// decodeRawLogs normalizes a scan range's raw logs. Removed (reorged) logs
// and logs from unrecognized contract events are skipped; a TxCreated
// envelope that fails to decode aborts the whole batch, because silently
// dropping it would corrupt downstream accounting.
func decodeRawLogs(rawLogs []*ledgerclient.RawLog, blockTimes map[uint64]time.Time) ([]Event, error) {
	events := make([]Event, 0, len(rawLogs))
	for _, raw := range rawLogs {
		if raw.Removed {
			continue
		}
		name, ok := ledger.EventName(raw.Topic)
		if !ok {
			log.Debug().
				Str("topic", raw.Topic).
				Uint64("block", raw.BlockNumber).
				Msg("Skipping log with unrecognized topic")
			continue
		}

		timestamp, ok := blockTimes[raw.BlockNumber]
		if !ok {
			return nil, fmt.Errorf("missing timestamp for block %d", raw.BlockNumber)
		}
		event := Event{
			Timestamp: timestamp,
			Origin: Origin{
				BlockNumber: raw.BlockNumber,
				TxIndex:     raw.TxIndex,
				LogIndex:    raw.LogIndex,
			},
		}

		switch name {
		case ledger.TxCreatedEvent:
			env, err := ledger.ParseEnvelope(raw.Data)
			if err != nil {
				return nil, fmt.Errorf("block %d log %d: %w", raw.BlockNumber, raw.LogIndex, err)
			}
			tx, err := ledger.DecodeTx(env)
			if err != nil {
				return nil, fmt.Errorf("block %d log %d: %w", raw.BlockNumber, raw.LogIndex, err)
			}
			event.Tx = tx
		case types.IssuerCreated.String():
			// Verified once at bootstrap; redundant in steady state.
			continue
		default:
			id, err := ledger.ParseEntityID(raw.Data)
			if err != nil {
				return nil, fmt.Errorf("block %d log %d: %w", raw.BlockNumber, raw.LogIndex, err)
			}
			event.Lifecycle = types.LifecycleEvent(name)
			event.EntityID = id
		}

		events = append(events, event)
	}
	return events, nil
}
