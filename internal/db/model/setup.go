package model

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/captable-labs/captable-indexer/internal/config"
)

// TxCollections lists every transaction collection in no particular order.
var TxCollections = []string{
	StockIssuanceCollection,
	StockTransferCollection,
	StockCancellationCollection,
	StockRetractionCollection,
	StockReissuanceCollection,
	StockRepurchaseCollection,
	StockAcceptanceCollection,
	IssuerAdjustmentCollection,
	StockClassAdjustmentCollection,
	StockPlanAdjustmentCollection,
	EquityCompIssuanceCollection,
	EquityCompExerciseCollection,
	WarrantIssuanceCollection,
	ConvertibleIssuanceCollection,
}

// Setup creates the collections and indexes the indexer relies on. Safe to
// run repeatedly.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	database := client.Database(cfg.DbName)

	collections := append([]string{
		IssuerCollection,
		StockClassCollection,
		StockPlanCollection,
		StakeholderCollection,
		HistoricalTransactionCollection,
	}, TxCollections...)
	for _, name := range collections {
		if err := createCollection(ctx, database, name); err != nil {
			return err
		}
	}

	// Reference entities are read per issuer; transactions additionally by
	// provenance order for the projection snapshot.
	for _, name := range []string{StockClassCollection, StockPlanCollection, StakeholderCollection} {
		if err := createIndex(ctx, database, name, bson.D{{Key: "issuer", Value: 1}}); err != nil {
			return err
		}
	}
	for _, name := range TxCollections {
		if err := createIndex(ctx, database, name, bson.D{
			{Key: "issuer", Value: 1},
			{Key: "block_number", Value: 1},
			{Key: "tx_index", Value: 1},
			{Key: "log_index", Value: 1},
		}); err != nil {
			return err
		}
	}
	if err := createIndex(ctx, database, StockIssuanceCollection, bson.D{{Key: "security_id", Value: 1}}); err != nil {
		return err
	}
	if err := createIndex(ctx, database, HistoricalTransactionCollection, bson.D{{Key: "issuer", Value: 1}}); err != nil {
		return err
	}
	// Replayed batches must not duplicate audit entries.
	_, err = database.Collection(HistoricalTransactionCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transaction", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create index on %s: %w", HistoricalTransactionCollection, err)
	}
	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, name string) error {
	if err := database.CreateCollection(ctx, name); err != nil {
		var cmdErr mongo.CommandError
		// NamespaceExists
		if errors.As(err, &cmdErr) && cmdErr.Code == 48 {
			return nil
		}
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collection string, keys bson.D) error {
	_, err := database.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys})
	if err != nil {
		return fmt.Errorf("failed to create index on %s: %w", collection, err)
	}
	return nil
}
