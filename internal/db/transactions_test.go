//go:build integration

package db_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/captable-labs/captable-indexer/internal/db"
	"github.com/captable-labs/captable-indexer/internal/db/model"
)

func transferDoc(issuerID string) *model.StockTransfer {
	return &model.StockTransfer{
		TxBase: model.TxBase{
			ID:              uuid.NewString(),
			ObjectType:      model.ObjectTypeStockTransfer,
			SecurityID:      uuid.NewString(),
			IssuerID:        issuerID,
			Date:            "2024-03-15",
			BlockNumber:     105,
			TxIndex:         1,
			LogIndex:        0,
			IsOnchainSynced: true,
		},
		Quantity:             "500",
		ResultingSecurityIDs: []string{uuid.NewString()},
	}
}

func TestUpsertIsIdempotent(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	doc := transferDoc(uuid.NewString())

	// Replaying the same event must converge on a single record.
	require.NoError(t, testDB.UpsertStockTransfer(ctx, doc))
	require.NoError(t, testDB.UpsertStockTransfer(ctx, doc))

	count, err := mongoDB.Collection(model.StockTransferCollection).
		CountDocuments(ctx, bson.M{"_id": doc.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// A replay carrying newer fields overwrites in place.
	doc.Quantity = "750"
	require.NoError(t, testDB.UpsertStockTransfer(ctx, doc))

	var found model.StockTransfer
	err = mongoDB.Collection(model.StockTransferCollection).
		FindOne(ctx, bson.M{"_id": doc.ID}).Decode(&found)
	require.NoError(t, err)
	assert.Equal(t, "750", found.Quantity)
}

func TestConfirmStockIssuance(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	issuerID := uuid.NewString()
	issuance := &model.StockIssuance{
		TxBase: model.TxBase{
			ID:          uuid.NewString(),
			ObjectType:  model.ObjectTypeStockIssuance,
			SecurityID:  uuid.NewString(),
			IssuerID:    issuerID,
			Date:        "2024-03-15",
			BlockNumber: 105,
		},
		StockClassID: uuid.NewString(),
		Quantity:     "1500",
		SharePrice:   "1.25",
	}

	t.Run("creates when no off-ledger record exists", func(t *testing.T) {
		confirmed, err := testDB.ConfirmStockIssuance(ctx, issuance)
		require.NoError(t, err)
		assert.Equal(t, issuance.ID, confirmed.ID)
		assert.True(t, confirmed.IsOnchainSynced)
	})
	t.Run("confirms the pre-seeded record by security id", func(t *testing.T) {
		seeded := &model.StockIssuance{
			TxBase: model.TxBase{
				ID:         uuid.NewString(),
				ObjectType: model.ObjectTypeStockIssuance,
				SecurityID: uuid.NewString(),
				IssuerID:   issuerID,
				Date:       "2024-03-01",
			},
			StockClassID:  uuid.NewString(),
			StakeholderID: uuid.NewString(),
			Quantity:      "100",
			SharePrice:    "1.00",
		}
		_, err := mongoDB.Collection(model.StockIssuanceCollection).InsertOne(ctx, seeded)
		require.NoError(t, err)

		onchain := &model.StockIssuance{
			TxBase: model.TxBase{
				ID:          uuid.NewString(),
				ObjectType:  model.ObjectTypeStockIssuance,
				SecurityID:  seeded.SecurityID,
				IssuerID:    issuerID,
				Date:        "2024-03-15",
				BlockNumber: 110,
			},
			StockClassID: seeded.StockClassID,
			Quantity:     "100",
			SharePrice:   "1.00",
		}
		confirmed, err := testDB.ConfirmStockIssuance(ctx, onchain)
		require.NoError(t, err)

		// The off-ledger id survives; only the confirmation fields move.
		assert.Equal(t, seeded.ID, confirmed.ID)
		assert.Equal(t, seeded.StakeholderID, confirmed.StakeholderID)
		assert.True(t, confirmed.IsOnchainSynced)
		assert.Equal(t, uint64(110), confirmed.BlockNumber)
	})
}

func TestInsertHistoricalTransaction(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	entry := &model.HistoricalTransaction{
		TransactionID:   uuid.NewString(),
		IssuerID:        uuid.NewString(),
		TransactionType: gofakeit.RandomString([]string{"StockIssuance", "StockTransfer"}),
	}
	require.NoError(t, testDB.InsertHistoricalTransaction(ctx, entry))

	// Replays of the same batch must not duplicate the audit trail.
	err := testDB.InsertHistoricalTransaction(ctx, entry)
	require.Error(t, err)
	assert.True(t, db.IsDuplicateKeyError(err))
}

func TestGetCapTableObjects(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	issuer := createIssuer(t)

	late := transferDoc(issuer.ID)
	late.BlockNumber = 200
	early := &model.StockIssuance{
		TxBase: model.TxBase{
			ID:          uuid.NewString(),
			ObjectType:  model.ObjectTypeStockIssuance,
			SecurityID:  uuid.NewString(),
			IssuerID:    issuer.ID,
			BlockNumber: 100,
		},
		StockClassID: uuid.NewString(),
		Quantity:     "10",
		SharePrice:   "1.00",
	}
	require.NoError(t, testDB.UpsertStockTransfer(ctx, late))
	_, err := testDB.ConfirmStockIssuance(ctx, early)
	require.NoError(t, err)

	// Another issuer's history must not leak into the snapshot.
	foreign := transferDoc(uuid.NewString())
	require.NoError(t, testDB.UpsertStockTransfer(ctx, foreign))

	objs, err := testDB.GetCapTableObjects(ctx, issuer.ID)
	require.NoError(t, err)
	assert.Equal(t, issuer, objs.Issuer)
	require.Len(t, objs.Transactions, 2)
	assert.Equal(t, early.ID, objs.Transactions[0].Base().ID)
	assert.Equal(t, late.ID, objs.Transactions[1].Base().ID)
}
