package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/captable-labs/captable-indexer/internal/db"
	"github.com/captable-labs/captable-indexer/internal/db/model"
)

func txAt(id string, block uint64, txIndex, logIndex uint, date string) model.Transaction {
	return &model.StockTransfer{
		TxBase: model.TxBase{
			ID:          id,
			BlockNumber: block,
			TxIndex:     txIndex,
			LogIndex:    logIndex,
			Date:        date,
		},
	}
}

func TestSortTransactions(t *testing.T) {
	txs := []model.Transaction{
		txAt("d", 102, 0, 0, "2024-03-20"),
		txAt("c", 101, 1, 2, "2024-03-20"),
		txAt("b", 101, 1, 0, "2024-03-20"),
		// off-ledger records carry zero provenance and order by date
		txAt("a2", 0, 0, 0, "2024-02-02"),
		txAt("a1", 0, 0, 0, "2024-02-01"),
	}

	db.SortTransactions(txs)

	var ids []string
	for _, tx := range txs {
		ids = append(ids, tx.Base().ID)
	}
	assert.Equal(t, []string{"a1", "a2", "b", "c", "d"}, ids)
}
