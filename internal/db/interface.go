package db

import (
	"context"

	"github.com/captable-labs/captable-indexer/internal/db/model"
)

type DbInterface interface {
	Ping(ctx context.Context) error

	// WithTransaction is the atomic scope for one issuer's batch.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	GetIssuers(ctx context.Context) ([]*model.Issuer, error)
	GetIssuerByID(ctx context.Context, issuerID string) (*model.Issuer, error)
	UpdateIssuerLastProcessedBlock(ctx context.Context, issuerID string, block uint64) error
	UpdateIssuerSharesAuthorized(ctx context.Context, issuerID string, sharesAuthorized string) error
	SetIssuerSyncPaused(ctx context.Context, issuerID string, paused bool) error

	GetStockClassByID(ctx context.Context, stockClassID string) (*model.StockClass, error)
	GetStockPlanByID(ctx context.Context, stockPlanID string) (*model.StockPlan, error)
	UpdateStockClassSharesAuthorized(ctx context.Context, stockClassID string, sharesAuthorized string) error
	UpdateStockPlanSharesReserved(ctx context.Context, stockPlanID string, sharesReserved string) error
	MarkStakeholderSynced(ctx context.Context, stakeholderID string) error
	MarkStockClassSynced(ctx context.Context, stockClassID string) error
	MarkStockPlanSynced(ctx context.Context, stockPlanID string) error

	ConfirmStockIssuance(ctx context.Context, tx *model.StockIssuance) (*model.StockIssuance, error)
	UpsertStockTransfer(ctx context.Context, tx *model.StockTransfer) error
	UpsertStockCancellation(ctx context.Context, tx *model.StockCancellation) error
	UpsertStockRetraction(ctx context.Context, tx *model.StockRetraction) error
	UpsertStockReissuance(ctx context.Context, tx *model.StockReissuance) error
	UpsertStockRepurchase(ctx context.Context, tx *model.StockRepurchase) error
	UpsertStockAcceptance(ctx context.Context, tx *model.StockAcceptance) error
	UpsertIssuerAdjustment(ctx context.Context, tx *model.IssuerAuthorizedSharesAdjustment) error
	UpsertStockClassAdjustment(ctx context.Context, tx *model.StockClassAuthorizedSharesAdjustment) error
	InsertHistoricalTransaction(ctx context.Context, ht *model.HistoricalTransaction) error

	GetCapTableObjects(ctx context.Context, issuerID string) (*CapTableObjects, error)
}
