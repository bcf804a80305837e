package sync

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/captable-labs/captable-indexer/internal/clients/ledgerclient"
	"github.com/captable-labs/captable-indexer/internal/ledger"
	"github.com/captable-labs/captable-indexer/internal/notify"
	"github.com/captable-labs/captable-indexer/internal/types"
	"github.com/captable-labs/captable-indexer/tests/mocks"
)

func issuerCreatedLog(id uuid.UUID, block uint64) *ledgerclient.RawLog {
	return &ledgerclient.RawLog{
		Topic:       ledger.Topic(types.IssuerCreated.String()),
		Data:        ledger.EncodeEntityID(id),
		BlockNumber: block,
	}
}

func TestBootstrapWaitsForReceipt(t *testing.T) {
	issuer := deployedIssuer(0)
	issuer.LastProcessedBlock = nil

	database := mocks.NewDbInterface(t)
	ledgerMock := mocks.NewLedgerInterface(t)
	ledgerMock.On("GetTransactionReceipt", mock.Anything, issuer.TxHash).
		Return(nil, nil)

	s := NewService(testSyncConfig(), database, ledgerMock, notify.NoopNotifier{})
	require.NoError(t, s.bootstrapIssuer(t.Context(), issuer, 100))
	assert.Nil(t, issuer.LastProcessedBlock)
}

func TestBootstrapWaitsForFinality(t *testing.T) {
	issuer := deployedIssuer(0)
	issuer.LastProcessedBlock = nil

	database := mocks.NewDbInterface(t)
	ledgerMock := mocks.NewLedgerInterface(t)
	ledgerMock.On("GetTransactionReceipt", mock.Anything, issuer.TxHash).
		Return(&ledgerclient.Receipt{TxHash: issuer.TxHash, BlockNumber: 150}, nil)

	s := NewService(testSyncConfig(), database, ledgerMock, notify.NoopNotifier{})
	require.NoError(t, s.bootstrapIssuer(t.Context(), issuer, 100))
	assert.Nil(t, issuer.LastProcessedBlock)
}

func TestBootstrapSeedsIssuer(t *testing.T) {
	issuer := deployedIssuer(0)
	issuer.LastProcessedBlock = nil
	issuerUUID := uuid.MustParse(issuer.ID)

	database := mocks.NewDbInterface(t)
	database.On("WithTransaction", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	database.On("UpdateIssuerSharesAuthorized", mock.Anything, issuer.ID, issuer.InitialSharesAuthorized).
		Return(nil)
	database.On("UpdateIssuerLastProcessedBlock", mock.Anything, issuer.ID, uint64(49)).
		Return(nil)

	ledgerMock := mocks.NewLedgerInterface(t)
	ledgerMock.On("GetTransactionReceipt", mock.Anything, issuer.TxHash).
		Return(&ledgerclient.Receipt{TxHash: issuer.TxHash, BlockNumber: 50}, nil)
	ledgerMock.On("GetLogs", mock.Anything, issuer.DeployedTo, uint64(50), uint64(50)).
		Return([]*ledgerclient.RawLog{issuerCreatedLog(issuerUUID, 50)}, nil)

	s := NewService(testSyncConfig(), database, ledgerMock, notify.NoopNotifier{})
	require.NoError(t, s.bootstrapIssuer(t.Context(), issuer, 100))

	require.NotNil(t, issuer.LastProcessedBlock)
	assert.Equal(t, uint64(49), *issuer.LastProcessedBlock)
}

func TestBootstrapWaitsForConfirmations(t *testing.T) {
	issuer := deployedIssuer(0)
	issuer.LastProcessedBlock = nil
	issuerUUID := uuid.MustParse(issuer.ID)

	cfg := testSyncConfig()
	cfg.Confirmations = 6

	database := mocks.NewDbInterface(t)
	database.On("WithTransaction", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	database.On("UpdateIssuerSharesAuthorized", mock.Anything, issuer.ID, issuer.InitialSharesAuthorized).
		Return(nil)
	database.On("UpdateIssuerLastProcessedBlock", mock.Anything, issuer.ID, uint64(49)).
		Return(nil)

	ledgerMock := mocks.NewLedgerInterface(t)
	ledgerMock.On("GetTransactionReceipt", mock.Anything, issuer.TxHash).
		Return(&ledgerclient.Receipt{TxHash: issuer.TxHash, BlockNumber: 50}, nil)
	ledgerMock.On("WaitForConfirmations", mock.Anything, issuer.TxHash, uint64(6)).
		Return(nil)
	ledgerMock.On("GetLogs", mock.Anything, issuer.DeployedTo, uint64(50), uint64(50)).
		Return([]*ledgerclient.RawLog{issuerCreatedLog(issuerUUID, 50)}, nil)

	s := NewService(cfg, database, ledgerMock, notify.NoopNotifier{})
	require.NoError(t, s.bootstrapIssuer(t.Context(), issuer, 100))
	require.NotNil(t, issuer.LastProcessedBlock)
}

func TestBootstrapRejectsForeignContract(t *testing.T) {
	issuer := deployedIssuer(0)
	issuer.LastProcessedBlock = nil

	database := mocks.NewDbInterface(t)
	ledgerMock := mocks.NewLedgerInterface(t)
	ledgerMock.On("GetTransactionReceipt", mock.Anything, issuer.TxHash).
		Return(&ledgerclient.Receipt{TxHash: issuer.TxHash, BlockNumber: 50}, nil)
	ledgerMock.On("GetLogs", mock.Anything, issuer.DeployedTo, uint64(50), uint64(50)).
		Return([]*ledgerclient.RawLog{issuerCreatedLog(uuid.New(), 50)}, nil)

	s := NewService(testSyncConfig(), database, ledgerMock, notify.NoopNotifier{})
	err := s.bootstrapIssuer(t.Context(), issuer, 100)
	require.ErrorContains(t, err, "announced issuer")
	assert.Nil(t, issuer.LastProcessedBlock)
}

func TestBootstrapRequiresExactlyOneIssuerCreated(t *testing.T) {
	issuer := deployedIssuer(0)
	issuer.LastProcessedBlock = nil

	database := mocks.NewDbInterface(t)
	ledgerMock := mocks.NewLedgerInterface(t)
	ledgerMock.On("GetTransactionReceipt", mock.Anything, issuer.TxHash).
		Return(&ledgerclient.Receipt{TxHash: issuer.TxHash, BlockNumber: 50}, nil)
	ledgerMock.On("GetLogs", mock.Anything, issuer.DeployedTo, uint64(50), uint64(50)).
		Return([]*ledgerclient.RawLog{}, nil)

	s := NewService(testSyncConfig(), database, ledgerMock, notify.NoopNotifier{})
	err := s.bootstrapIssuer(t.Context(), issuer, 100)
	require.ErrorContains(t, err, "expected one IssuerCreated")
}
