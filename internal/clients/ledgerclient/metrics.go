package ledgerclient

import (
	"context"
	"time"

	"github.com/captable-labs/captable-indexer/internal/observability/metrics"
)

type ledgerClientWithMetrics struct {
	ledger LedgerInterface
}

func NewLedgerClientWithMetrics(ledger LedgerInterface) *ledgerClientWithMetrics {
	return &ledgerClientWithMetrics{ledger: ledger}
}

func (l *ledgerClientWithMetrics) GetLogs(ctx context.Context, address string, fromBlock, toBlock uint64) ([]*RawLog, error) {
	return runLedgerClientMethodWithMetrics("GetLogs", func() ([]*RawLog, error) {
		return l.ledger.GetLogs(ctx, address, fromBlock, toBlock)
	})
}

func (l *ledgerClientWithMetrics) GetBlockByNumber(ctx context.Context, number uint64) (*Block, error) {
	return runLedgerClientMethodWithMetrics("GetBlockByNumber", func() (*Block, error) {
		return l.ledger.GetBlockByNumber(ctx, number)
	})
}

func (l *ledgerClientWithMetrics) GetBlockByTag(ctx context.Context, tag BlockTag) (*Block, error) {
	return runLedgerClientMethodWithMetrics("GetBlockByTag", func() (*Block, error) {
		return l.ledger.GetBlockByTag(ctx, tag)
	})
}

func (l *ledgerClientWithMetrics) GetTransactionReceipt(ctx context.Context, txHash string) (*Receipt, error) {
	return runLedgerClientMethodWithMetrics("GetTransactionReceipt", func() (*Receipt, error) {
		return l.ledger.GetTransactionReceipt(ctx, txHash)
	})
}

func (l *ledgerClientWithMetrics) WaitForConfirmations(ctx context.Context, txHash string, confirmations uint64) error {
	// latency of a deliberate wait says nothing about the RPC endpoint
	return l.ledger.WaitForConfirmations(ctx, txHash, confirmations)
}

func runLedgerClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordLedgerClientLatency(duration, method, err != nil)
	return v, err
}
