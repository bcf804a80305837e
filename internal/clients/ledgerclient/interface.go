package ledgerclient

import "context"

type LedgerInterface interface {
	// GetLogs returns every log the cap table contract at address emitted
	// in the inclusive block range.
	GetLogs(ctx context.Context, address string, fromBlock, toBlock uint64) ([]*RawLog, error)
	GetBlockByNumber(ctx context.Context, number uint64) (*Block, error)
	GetBlockByTag(ctx context.Context, tag BlockTag) (*Block, error)
	// GetTransactionReceipt returns nil without error when the receipt does
	// not exist yet.
	GetTransactionReceipt(ctx context.Context, txHash string) (*Receipt, error)
	// WaitForConfirmations blocks until the transaction's block is at least
	// confirmations blocks behind the head, or the context is done. The
	// wait is explicit at the call site; nothing wraps outbound calls
	// transparently.
	WaitForConfirmations(ctx context.Context, txHash string, confirmations uint64) error
}
