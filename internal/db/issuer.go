package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/captable-labs/captable-indexer/internal/db/model"
)

func (db *Database) GetIssuers(ctx context.Context) ([]*model.Issuer, error) {
	cursor, err := db.collection(model.IssuerCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var issuers []*model.Issuer
	if err := cursor.All(ctx, &issuers); err != nil {
		return nil, err
	}
	return issuers, nil
}

func (db *Database) GetIssuerByID(ctx context.Context, issuerID string) (*model.Issuer, error) {
	var issuer model.Issuer
	err := db.collection(model.IssuerCollection).
		FindOne(ctx, bson.M{"_id": issuerID}).Decode(&issuer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &NotFoundError{
			Key:     issuerID,
			Message: "issuer not found",
		}
	}
	if err != nil {
		return nil, err
	}
	return &issuer, nil
}

// UpdateIssuerLastProcessedBlock advances the issuer's checkpoint. Callers
// invoke it inside the batch transaction so the checkpoint and the batch's
// documents commit together.
func (db *Database) UpdateIssuerLastProcessedBlock(ctx context.Context, issuerID string, block uint64) error {
	res, err := db.collection(model.IssuerCollection).UpdateOne(
		ctx,
		bson.M{"_id": issuerID},
		bson.M{"$set": bson.M{"last_processed_block": block}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{Key: issuerID, Message: "issuer not found"}
	}
	return nil
}

func (db *Database) UpdateIssuerSharesAuthorized(ctx context.Context, issuerID string, sharesAuthorized string) error {
	res, err := db.collection(model.IssuerCollection).UpdateOne(
		ctx,
		bson.M{"_id": issuerID},
		bson.M{"$set": bson.M{"shares_authorized": sharesAuthorized}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{Key: issuerID, Message: "issuer not found"}
	}
	return nil
}

func (db *Database) SetIssuerSyncPaused(ctx context.Context, issuerID string, paused bool) error {
	_, err := db.collection(model.IssuerCollection).UpdateOne(
		ctx,
		bson.M{"_id": issuerID},
		bson.M{"$set": bson.M{"sync_paused": paused}},
	)
	return err
}
