package db

import (
	"context"
	"time"

	"github.com/captable-labs/captable-indexer/internal/db/model"
	"github.com/captable-labs/captable-indexer/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return d.run("WithTransaction", func() error {
		return d.db.WithTransaction(ctx, fn)
	})
}

func (d *DbWithMetrics) GetIssuers(ctx context.Context) (result []*model.Issuer, err error) {
	//nolint:errcheck
	d.run("GetIssuers", func() error {
		result, err = d.db.GetIssuers(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) GetIssuerByID(ctx context.Context, issuerID string) (result *model.Issuer, err error) {
	//nolint:errcheck
	d.run("GetIssuerByID", func() error {
		result, err = d.db.GetIssuerByID(ctx, issuerID)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateIssuerLastProcessedBlock(ctx context.Context, issuerID string, block uint64) error {
	return d.run("UpdateIssuerLastProcessedBlock", func() error {
		return d.db.UpdateIssuerLastProcessedBlock(ctx, issuerID, block)
	})
}

func (d *DbWithMetrics) UpdateIssuerSharesAuthorized(ctx context.Context, issuerID string, sharesAuthorized string) error {
	return d.run("UpdateIssuerSharesAuthorized", func() error {
		return d.db.UpdateIssuerSharesAuthorized(ctx, issuerID, sharesAuthorized)
	})
}

func (d *DbWithMetrics) SetIssuerSyncPaused(ctx context.Context, issuerID string, paused bool) error {
	return d.run("SetIssuerSyncPaused", func() error {
		return d.db.SetIssuerSyncPaused(ctx, issuerID, paused)
	})
}

func (d *DbWithMetrics) GetStockClassByID(ctx context.Context, stockClassID string) (result *model.StockClass, err error) {
	//nolint:errcheck
	d.run("GetStockClassByID", func() error {
		result, err = d.db.GetStockClassByID(ctx, stockClassID)
		return err
	})
	return
}

func (d *DbWithMetrics) GetStockPlanByID(ctx context.Context, stockPlanID string) (result *model.StockPlan, err error) {
	//nolint:errcheck
	d.run("GetStockPlanByID", func() error {
		result, err = d.db.GetStockPlanByID(ctx, stockPlanID)
		return err
	})
	return
}

func (d *DbWithMetrics) UpdateStockClassSharesAuthorized(ctx context.Context, stockClassID string, sharesAuthorized string) error {
	return d.run("UpdateStockClassSharesAuthorized", func() error {
		return d.db.UpdateStockClassSharesAuthorized(ctx, stockClassID, sharesAuthorized)
	})
}

func (d *DbWithMetrics) UpdateStockPlanSharesReserved(ctx context.Context, stockPlanID string, sharesReserved string) error {
	return d.run("UpdateStockPlanSharesReserved", func() error {
		return d.db.UpdateStockPlanSharesReserved(ctx, stockPlanID, sharesReserved)
	})
}

func (d *DbWithMetrics) MarkStakeholderSynced(ctx context.Context, stakeholderID string) error {
	return d.run("MarkStakeholderSynced", func() error {
		return d.db.MarkStakeholderSynced(ctx, stakeholderID)
	})
}

func (d *DbWithMetrics) MarkStockClassSynced(ctx context.Context, stockClassID string) error {
	return d.run("MarkStockClassSynced", func() error {
		return d.db.MarkStockClassSynced(ctx, stockClassID)
	})
}

func (d *DbWithMetrics) MarkStockPlanSynced(ctx context.Context, stockPlanID string) error {
	return d.run("MarkStockPlanSynced", func() error {
		return d.db.MarkStockPlanSynced(ctx, stockPlanID)
	})
}

func (d *DbWithMetrics) ConfirmStockIssuance(ctx context.Context, tx *model.StockIssuance) (result *model.StockIssuance, err error) {
	//nolint:errcheck
	d.run("ConfirmStockIssuance", func() error {
		result, err = d.db.ConfirmStockIssuance(ctx, tx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertStockTransfer(ctx context.Context, tx *model.StockTransfer) error {
	return d.run("UpsertStockTransfer", func() error {
		return d.db.UpsertStockTransfer(ctx, tx)
	})
}

func (d *DbWithMetrics) UpsertStockCancellation(ctx context.Context, tx *model.StockCancellation) error {
	return d.run("UpsertStockCancellation", func() error {
		return d.db.UpsertStockCancellation(ctx, tx)
	})
}

func (d *DbWithMetrics) UpsertStockRetraction(ctx context.Context, tx *model.StockRetraction) error {
	return d.run("UpsertStockRetraction", func() error {
		return d.db.UpsertStockRetraction(ctx, tx)
	})
}

func (d *DbWithMetrics) UpsertStockReissuance(ctx context.Context, tx *model.StockReissuance) error {
	return d.run("UpsertStockReissuance", func() error {
		return d.db.UpsertStockReissuance(ctx, tx)
	})
}

func (d *DbWithMetrics) UpsertStockRepurchase(ctx context.Context, tx *model.StockRepurchase) error {
	return d.run("UpsertStockRepurchase", func() error {
		return d.db.UpsertStockRepurchase(ctx, tx)
	})
}

func (d *DbWithMetrics) UpsertStockAcceptance(ctx context.Context, tx *model.StockAcceptance) error {
	return d.run("UpsertStockAcceptance", func() error {
		return d.db.UpsertStockAcceptance(ctx, tx)
	})
}

func (d *DbWithMetrics) UpsertIssuerAdjustment(ctx context.Context, tx *model.IssuerAuthorizedSharesAdjustment) error {
	return d.run("UpsertIssuerAdjustment", func() error {
		return d.db.UpsertIssuerAdjustment(ctx, tx)
	})
}

func (d *DbWithMetrics) UpsertStockClassAdjustment(ctx context.Context, tx *model.StockClassAuthorizedSharesAdjustment) error {
	return d.run("UpsertStockClassAdjustment", func() error {
		return d.db.UpsertStockClassAdjustment(ctx, tx)
	})
}

func (d *DbWithMetrics) InsertHistoricalTransaction(ctx context.Context, ht *model.HistoricalTransaction) error {
	return d.run("InsertHistoricalTransaction", func() error {
		return d.db.InsertHistoricalTransaction(ctx, ht)
	})
}

func (d *DbWithMetrics) GetCapTableObjects(ctx context.Context, issuerID string) (result *CapTableObjects, err error) {
	//nolint:errcheck
	d.run("GetCapTableObjects", func() error {
		result, err = d.db.GetCapTableObjects(ctx, issuerID)
		return err
	})
	return
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
