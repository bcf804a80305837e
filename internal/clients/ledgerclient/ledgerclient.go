package ledgerclient

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/captable-labs/captable-indexer/internal/config"
)

const confirmationPollInterval = 2 * time.Second

type LedgerClient struct {
	httpClient *http.Client
	cfg        *config.LedgerConfig
}

func NewLedgerClient(cfg *config.LedgerConfig) *LedgerClient {
	return &LedgerClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}
}

type rpcRequest struct {
	JsonRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

func (c *LedgerClient) call(ctx context.Context, method string, params []any, result any) error {
	body, err := json.Marshal(rpcRequest{
		JsonRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.RPCAddr, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", method, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", method, resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("%s: %w", method, rpcResp.Error)
	}
	if result != nil && len(rpcResp.Result) > 0 {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", method, err)
		}
	}
	return nil
}

func clientCallWithRetry[T any](
	ctx context.Context, call retry.RetryableFuncWithData[T], cfg *config.LedgerConfig,
) (T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Debug().
				Uint("attempt", n+1).
				Err(err).
				Msg("retrying ledger rpc call")
		}))
	return result, err
}

type rpcLog struct {
	Topics           []string `json:"topics"`
	Data             string   `json:"data"`
	BlockNumber      string   `json:"blockNumber"`
	TransactionIndex string   `json:"transactionIndex"`
	LogIndex         string   `json:"logIndex"`
	TransactionHash  string   `json:"transactionHash"`
	Removed          bool     `json:"removed"`
}

func (c *LedgerClient) GetLogs(ctx context.Context, address string, fromBlock, toBlock uint64) ([]*RawLog, error) {
	callForLogs := func() ([]rpcLog, error) {
		var logs []rpcLog
		err := c.call(ctx, "eth_getLogs", []any{map[string]any{
			"address":   address,
			"fromBlock": hexUint(fromBlock),
			"toBlock":   hexUint(toBlock),
		}}, &logs)
		return logs, err
	}

	logs, err := clientCallWithRetry(ctx, callForLogs, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get logs for %s [%d, %d]: %w", address, fromBlock, toBlock, err)
	}

	out := make([]*RawLog, 0, len(logs))
	for _, l := range logs {
		raw, err := parseRpcLog(l)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}

func parseRpcLog(l rpcLog) (*RawLog, error) {
	if len(l.Topics) == 0 {
		return nil, fmt.Errorf("log without topics")
	}
	blockNumber, err := parseHexUint(l.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("bad log blockNumber: %w", err)
	}
	txIndex, err := parseHexUint(l.TransactionIndex)
	if err != nil {
		return nil, fmt.Errorf("bad log transactionIndex: %w", err)
	}
	logIndex, err := parseHexUint(l.LogIndex)
	if err != nil {
		return nil, fmt.Errorf("bad log logIndex: %w", err)
	}
	data, err := hex.DecodeString(strings.TrimPrefix(l.Data, "0x"))
	if err != nil {
		return nil, fmt.Errorf("bad log data: %w", err)
	}
	return &RawLog{
		Topic:       l.Topics[0],
		Data:        data,
		BlockNumber: blockNumber,
		TxIndex:     uint(txIndex),
		LogIndex:    uint(logIndex),
		TxHash:      l.TransactionHash,
		Removed:     l.Removed,
	}, nil
}

type rpcBlock struct {
	Number    string `json:"number"`
	Timestamp string `json:"timestamp"`
}

func (c *LedgerClient) getBlock(ctx context.Context, numberOrTag string) (*Block, error) {
	callForBlock := func() (*rpcBlock, error) {
		var blk *rpcBlock
		err := c.call(ctx, "eth_getBlockByNumber", []any{numberOrTag, false}, &blk)
		if err != nil {
			return nil, err
		}
		if blk == nil {
			return nil, fmt.Errorf("block %s not found", numberOrTag)
		}
		return blk, nil
	}

	blk, err := clientCallWithRetry(ctx, callForBlock, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get block %s: %w", numberOrTag, err)
	}
	number, err := parseHexUint(blk.Number)
	if err != nil {
		return nil, fmt.Errorf("bad block number: %w", err)
	}
	timestamp, err := parseHexUint(blk.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("bad block timestamp: %w", err)
	}
	return &Block{
		Number:    number,
		Timestamp: time.Unix(int64(timestamp), 0).UTC(),
	}, nil
}

func (c *LedgerClient) GetBlockByNumber(ctx context.Context, number uint64) (*Block, error) {
	return c.getBlock(ctx, hexUint(number))
}

func (c *LedgerClient) GetBlockByTag(ctx context.Context, tag BlockTag) (*Block, error) {
	return c.getBlock(ctx, string(tag))
}

type rpcReceipt struct {
	TransactionHash string `json:"transactionHash"`
	BlockNumber     string `json:"blockNumber"`
}

func (c *LedgerClient) GetTransactionReceipt(ctx context.Context, txHash string) (*Receipt, error) {
	callForReceipt := func() (*rpcReceipt, error) {
		var receipt *rpcReceipt
		err := c.call(ctx, "eth_getTransactionReceipt", []any{txHash}, &receipt)
		return receipt, err
	}

	receipt, err := clientCallWithRetry(ctx, callForReceipt, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt for %s: %w", txHash, err)
	}
	if receipt == nil {
		// Not mined yet; the caller decides whether that is an error.
		return nil, nil
	}
	blockNumber, err := parseHexUint(receipt.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("bad receipt blockNumber: %w", err)
	}
	return &Receipt{
		TxHash:      receipt.TransactionHash,
		BlockNumber: blockNumber,
	}, nil
}

func (c *LedgerClient) WaitForConfirmations(ctx context.Context, txHash string, confirmations uint64) error {
	for {
		receipt, err := c.GetTransactionReceipt(ctx, txHash)
		if err != nil {
			return err
		}
		if receipt != nil {
			head, err := c.GetBlockByTag(ctx, TagLatest)
			if err != nil {
				return err
			}
			if head.Number >= receipt.BlockNumber+confirmations {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(confirmationPollInterval):
		}
	}
}

func hexUint(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

func parseHexUint(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
}
