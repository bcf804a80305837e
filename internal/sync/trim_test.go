package sync

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/captable-labs/captable-indexer/internal/ledger"
)

func eventAt(block uint64, txIndex, logIndex uint) Event {
	return Event{
		Tx: &ledger.StockAcceptance{ID: uuid.New(), SecurityID: uuid.New()},
		Origin: Origin{
			BlockNumber: block,
			TxIndex:     txIndex,
			LogIndex:    logIndex,
		},
	}
}

func blockOf(events []Event) []uint64 {
	blocks := make([]uint64, len(events))
	for i, ev := range events {
		blocks[i] = ev.Origin.BlockNumber
	}
	return blocks
}

func TestTrimEvents(t *testing.T) {
	t.Run("everything fits", func(t *testing.T) {
		events := []Event{eventAt(101, 0, 0), eventAt(101, 1, 0), eventAt(102, 0, 0)}
		trimmed, checkpoint := trimEvents(events, 110, 250)
		assert.Len(t, trimmed, 3)
		assert.Equal(t, uint64(110), checkpoint)
	})

	t.Run("trims on block boundary", func(t *testing.T) {
		events := []Event{
			eventAt(101, 0, 0), eventAt(101, 0, 1), eventAt(101, 1, 0),
			eventAt(102, 0, 0), eventAt(102, 0, 1),
		}
		trimmed, checkpoint := trimEvents(events, 110, 3)
		assert.Equal(t, []uint64{101, 101, 101}, blockOf(trimmed))
		assert.Equal(t, uint64(101), checkpoint)
	})

	t.Run("single oversized block is kept whole", func(t *testing.T) {
		var events []Event
		for i := uint(0); i < 5; i++ {
			events = append(events, eventAt(101, i, 0))
		}
		trimmed, checkpoint := trimEvents(events, 110, 3)
		assert.Len(t, trimmed, 5)
		assert.Equal(t, uint64(110), checkpoint)
	})

	t.Run("block crossing the cap is kept whole", func(t *testing.T) {
		events := []Event{
			eventAt(100, 0, 0), eventAt(100, 1, 0),
			eventAt(101, 0, 0), eventAt(101, 1, 0), eventAt(101, 2, 0),
			eventAt(102, 0, 0),
		}
		trimmed, checkpoint := trimEvents(events, 110, 3)
		assert.Equal(t, []uint64{100, 100, 101, 101, 101}, blockOf(trimmed))
		assert.Equal(t, uint64(101), checkpoint)
	})

	t.Run("orders shuffled input by provenance", func(t *testing.T) {
		ordered := []Event{
			eventAt(100, 0, 0), eventAt(100, 0, 1), eventAt(100, 2, 0),
			eventAt(101, 0, 0), eventAt(101, 1, 3), eventAt(102, 0, 0),
		}
		shuffled := make([]Event, len(ordered))
		copy(shuffled, ordered)
		rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		trimmed, checkpoint := trimEvents(shuffled, 110, 250)
		require.Len(t, trimmed, len(ordered))
		for i := range ordered {
			assert.Equal(t, ordered[i].Origin, trimmed[i].Origin)
		}
		assert.Equal(t, uint64(110), checkpoint)
	})
}

func TestTrimNeverSplitsBlock(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		var events []Event
		block := uint64(100)
		for b := 0; b < 1+rng.Intn(6); b++ {
			for i := 0; i < 1+rng.Intn(5); i++ {
				events = append(events, eventAt(block, uint(i), 0))
			}
			block += 1 + uint64(rng.Intn(3))
		}
		maxEvents := 1 + rng.Intn(len(events)+2)

		trimmed, checkpoint := trimEvents(events, block+10, maxEvents)
		require.NotEmpty(t, trimmed, "trimmed batch must never be empty when events exist")

		// Every included block must be complete: no event for an included
		// block may sit beyond the trim point.
		included := make(map[uint64]int)
		for _, ev := range trimmed {
			included[ev.Origin.BlockNumber]++
		}
		total := make(map[uint64]int)
		for _, ev := range events {
			total[ev.Origin.BlockNumber]++
		}
		for b, n := range included {
			assert.Equal(t, total[b], n, "block %d partially included", b)
		}

		if len(trimmed) == len(events) {
			assert.Equal(t, block+10, checkpoint)
		} else {
			assert.Equal(t, trimmed[len(trimmed)-1].Origin.BlockNumber, checkpoint)
		}
	}
}
