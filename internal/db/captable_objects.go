package db

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/captable-labs/captable-indexer/internal/db/model"
)

// CapTableObjects is the snapshot the projection engine folds over: the
// issuer, its reference entities, and the complete transaction history in
// global apply order.
type CapTableObjects struct {
	Issuer       *model.Issuer
	StockClasses []*model.StockClass
	StockPlans   []*model.StockPlan
	Stakeholders []*model.Stakeholder
	Transactions []model.Transaction
}

func findAll[T any](ctx context.Context, db *Database, collection string, issuerID string) ([]*T, error) {
	cursor, err := db.collection(collection).Find(ctx, bson.M{"issuer": issuerID})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []*T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", collection, err)
	}
	return docs, nil
}

func appendTxs[T model.Transaction](dst []model.Transaction, docs []T) []model.Transaction {
	for _, doc := range docs {
		dst = append(dst, doc)
	}
	return dst
}

// GetCapTableObjects reads everything the projection needs in one pass. The
// result reflects committed state only; the projection itself never touches
// the store.
func (db *Database) GetCapTableObjects(ctx context.Context, issuerID string) (*CapTableObjects, error) {
	issuer, err := db.GetIssuerByID(ctx, issuerID)
	if err != nil {
		return nil, err
	}

	objs := &CapTableObjects{Issuer: issuer}
	if objs.StockClasses, err = findAll[model.StockClass](ctx, db, model.StockClassCollection, issuerID); err != nil {
		return nil, err
	}
	if objs.StockPlans, err = findAll[model.StockPlan](ctx, db, model.StockPlanCollection, issuerID); err != nil {
		return nil, err
	}
	if objs.Stakeholders, err = findAll[model.Stakeholder](ctx, db, model.StakeholderCollection, issuerID); err != nil {
		return nil, err
	}

	var txs []model.Transaction
	issuances, err := findAll[model.StockIssuance](ctx, db, model.StockIssuanceCollection, issuerID)
	if err != nil {
		return nil, err
	}
	txs = appendTxs(txs, issuances)

	transfers, err := findAll[model.StockTransfer](ctx, db, model.StockTransferCollection, issuerID)
	if err != nil {
		return nil, err
	}
	txs = appendTxs(txs, transfers)

	cancellations, err := findAll[model.StockCancellation](ctx, db, model.StockCancellationCollection, issuerID)
	if err != nil {
		return nil, err
	}
	txs = appendTxs(txs, cancellations)

	retractions, err := findAll[model.StockRetraction](ctx, db, model.StockRetractionCollection, issuerID)
	if err != nil {
		return nil, err
	}
	txs = appendTxs(txs, retractions)

	reissuances, err := findAll[model.StockReissuance](ctx, db, model.StockReissuanceCollection, issuerID)
	if err != nil {
		return nil, err
	}
	txs = appendTxs(txs, reissuances)

	repurchases, err := findAll[model.StockRepurchase](ctx, db, model.StockRepurchaseCollection, issuerID)
	if err != nil {
		return nil, err
	}
	txs = appendTxs(txs, repurchases)

	acceptances, err := findAll[model.StockAcceptance](ctx, db, model.StockAcceptanceCollection, issuerID)
	if err != nil {
		return nil, err
	}
	txs = appendTxs(txs, acceptances)

	issuerAdjustments, err := findAll[model.IssuerAuthorizedSharesAdjustment](ctx, db, model.IssuerAdjustmentCollection, issuerID)
	if err != nil {
		return nil, err
	}
	txs = appendTxs(txs, issuerAdjustments)

	classAdjustments, err := findAll[model.StockClassAuthorizedSharesAdjustment](ctx, db, model.StockClassAdjustmentCollection, issuerID)
	if err != nil {
		return nil, err
	}
	txs = appendTxs(txs, classAdjustments)

	planAdjustments, err := findAll[model.StockPlanPoolAdjustment](ctx, db, model.StockPlanAdjustmentCollection, issuerID)
	if err != nil {
		return nil, err
	}
	txs = appendTxs(txs, planAdjustments)

	equityCompIssuances, err := findAll[model.EquityCompensationIssuance](ctx, db, model.EquityCompIssuanceCollection, issuerID)
	if err != nil {
		return nil, err
	}
	txs = appendTxs(txs, equityCompIssuances)

	equityCompExercises, err := findAll[model.EquityCompensationExercise](ctx, db, model.EquityCompExerciseCollection, issuerID)
	if err != nil {
		return nil, err
	}
	txs = appendTxs(txs, equityCompExercises)

	warrants, err := findAll[model.WarrantIssuance](ctx, db, model.WarrantIssuanceCollection, issuerID)
	if err != nil {
		return nil, err
	}
	txs = appendTxs(txs, warrants)

	convertibles, err := findAll[model.ConvertibleIssuance](ctx, db, model.ConvertibleIssuanceCollection, issuerID)
	if err != nil {
		return nil, err
	}
	txs = appendTxs(txs, convertibles)

	SortTransactions(txs)
	objs.Transactions = txs
	return objs, nil
}

// SortTransactions orders by provenance ascending. Off-ledger documents
// carry zero provenance and sort by their recorded date, ahead of on-chain
// history from later blocks.
func SortTransactions(txs []model.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i].Base(), txs[j].Base()
		if a.BlockNumber != b.BlockNumber {
			return a.BlockNumber < b.BlockNumber
		}
		if a.TxIndex != b.TxIndex {
			return a.TxIndex < b.TxIndex
		}
		if a.LogIndex != b.LogIndex {
			return a.LogIndex < b.LogIndex
		}
		return a.Date < b.Date
	})
}
