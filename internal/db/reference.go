package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/captable-labs/captable-indexer/internal/db/model"
)

// Reference entities (stock classes, stock plans, stakeholders) are created
// off-ledger first; the chain later confirms them through lifecycle
// notifications, which flip is_onchain_synced here.

func (db *Database) GetStockClassByID(ctx context.Context, stockClassID string) (*model.StockClass, error) {
	var sc model.StockClass
	err := db.collection(model.StockClassCollection).
		FindOne(ctx, bson.M{"_id": stockClassID}).Decode(&sc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &NotFoundError{
			Key:     stockClassID,
			Message: "stock class not found",
		}
	}
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (db *Database) GetStockPlanByID(ctx context.Context, stockPlanID string) (*model.StockPlan, error) {
	var sp model.StockPlan
	err := db.collection(model.StockPlanCollection).
		FindOne(ctx, bson.M{"_id": stockPlanID}).Decode(&sp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &NotFoundError{
			Key:     stockPlanID,
			Message: "stock plan not found",
		}
	}
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (db *Database) UpdateStockClassSharesAuthorized(ctx context.Context, stockClassID string, sharesAuthorized string) error {
	res, err := db.collection(model.StockClassCollection).UpdateOne(
		ctx,
		bson.M{"_id": stockClassID},
		bson.M{"$set": bson.M{"shares_authorized": sharesAuthorized}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{Key: stockClassID, Message: "stock class not found"}
	}
	return nil
}

func (db *Database) UpdateStockPlanSharesReserved(ctx context.Context, stockPlanID string, sharesReserved string) error {
	res, err := db.collection(model.StockPlanCollection).UpdateOne(
		ctx,
		bson.M{"_id": stockPlanID},
		bson.M{"$set": bson.M{"shares_reserved": sharesReserved}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{Key: stockPlanID, Message: "stock plan not found"}
	}
	return nil
}

func (db *Database) markOnchainSynced(ctx context.Context, collection, id, kind string) error {
	res, err := db.collection(collection).UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_onchain_synced": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{Key: id, Message: kind + " not found"}
	}
	return nil
}

func (db *Database) MarkStakeholderSynced(ctx context.Context, stakeholderID string) error {
	return db.markOnchainSynced(ctx, model.StakeholderCollection, stakeholderID, "stakeholder")
}

func (db *Database) MarkStockClassSynced(ctx context.Context, stockClassID string) error {
	return db.markOnchainSynced(ctx, model.StockClassCollection, stockClassID, "stock class")
}

func (db *Database) MarkStockPlanSynced(ctx context.Context, stockPlanID string) error {
	return db.markOnchainSynced(ctx, model.StockPlanCollection, stockPlanID, "stock plan")
}
