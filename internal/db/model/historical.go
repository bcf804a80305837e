package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const HistoricalTransactionCollection = "historical_transactions"

// HistoricalTransaction is an append-only audit entry linking a persisted
// transaction document to its kind, in arrival order.
type HistoricalTransaction struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	TransactionID   string             `bson:"transaction"`
	IssuerID        string             `bson:"issuer"`
	TransactionType string             `bson:"transaction_type"`
}
