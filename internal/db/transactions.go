package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/captable-labs/captable-indexer/internal/db/model"
)

// upsertByID writes a transaction document keyed by its deterministic ledger
// id. Replaying the same event converges on the same single record, which is
// what makes at-least-once delivery safe.
func (db *Database) upsertByID(ctx context.Context, collection string, id string, doc any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s document: %w", collection, err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("failed to unmarshal %s document: %w", collection, err)
	}
	// _id is immutable; it is supplied through the filter instead.
	delete(fields, "_id")

	opts := options.Update().SetUpsert(true)
	_, err = db.collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts)
	return err
}

// ConfirmStockIssuance attaches on-chain confirmation to the issuance record
// for a security. Issuances are usually pre-seeded off-ledger under the same
// deterministic id; when no record exists yet the whole document is created.
func (db *Database) ConfirmStockIssuance(ctx context.Context, tx *model.StockIssuance) (*model.StockIssuance, error) {
	update := bson.M{
		"$set": bson.M{
			"object_type":       tx.ObjectType,
			"issuer":            tx.IssuerID,
			"date":              tx.Date,
			"stock_class_id":    tx.StockClassID,
			"stock_plan_id":     tx.StockPlanID,
			"quantity":          tx.Quantity,
			"share_price":       tx.SharePrice,
			"issuance_type":     tx.IssuanceType,
			"block_number":      tx.BlockNumber,
			"tx_index":          tx.TxIndex,
			"log_index":         tx.LogIndex,
			"is_onchain_synced": true,
		},
		"$setOnInsert": bson.M{"_id": tx.ID},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var confirmed model.StockIssuance
	err := db.collection(model.StockIssuanceCollection).
		FindOneAndUpdate(ctx, bson.M{"security_id": tx.SecurityID}, update, opts).
		Decode(&confirmed)
	if err != nil {
		return nil, err
	}
	return &confirmed, nil
}

func (db *Database) UpsertStockTransfer(ctx context.Context, tx *model.StockTransfer) error {
	return db.upsertByID(ctx, model.StockTransferCollection, tx.ID, tx)
}

func (db *Database) UpsertStockCancellation(ctx context.Context, tx *model.StockCancellation) error {
	return db.upsertByID(ctx, model.StockCancellationCollection, tx.ID, tx)
}

func (db *Database) UpsertStockRetraction(ctx context.Context, tx *model.StockRetraction) error {
	return db.upsertByID(ctx, model.StockRetractionCollection, tx.ID, tx)
}

func (db *Database) UpsertStockReissuance(ctx context.Context, tx *model.StockReissuance) error {
	return db.upsertByID(ctx, model.StockReissuanceCollection, tx.ID, tx)
}

func (db *Database) UpsertStockRepurchase(ctx context.Context, tx *model.StockRepurchase) error {
	return db.upsertByID(ctx, model.StockRepurchaseCollection, tx.ID, tx)
}

func (db *Database) UpsertStockAcceptance(ctx context.Context, tx *model.StockAcceptance) error {
	return db.upsertByID(ctx, model.StockAcceptanceCollection, tx.ID, tx)
}

func (db *Database) UpsertIssuerAdjustment(ctx context.Context, tx *model.IssuerAuthorizedSharesAdjustment) error {
	return db.upsertByID(ctx, model.IssuerAdjustmentCollection, tx.ID, tx)
}

func (db *Database) UpsertStockClassAdjustment(ctx context.Context, tx *model.StockClassAuthorizedSharesAdjustment) error {
	return db.upsertByID(ctx, model.StockClassAdjustmentCollection, tx.ID, tx)
}

func (db *Database) InsertHistoricalTransaction(ctx context.Context, ht *model.HistoricalTransaction) error {
	_, err := db.collection(model.HistoricalTransactionCollection).InsertOne(ctx, ht)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     ht.TransactionID,
						Message: "historical transaction already exists",
					}
				}
			}
		}
		return err
	}
	return nil
}
