package model

const StockClassCollection = "stockclasses"

// StockClass carries the class-wide economic terms the projection needs.
// Share and money figures are stored as decimal strings, never floats.
type StockClass struct {
	ID                            string `bson:"_id"`
	ObjectType                    string `bson:"object_type"`
	Name                          string `bson:"name"`
	ClassType                     string `bson:"class_type"`
	InitialSharesAuthorized       string `bson:"initial_shares_authorized"`
	SharesAuthorized              string `bson:"shares_authorized"`
	VotesPerShare                 string `bson:"votes_per_share"`
	PricePerShare                 string `bson:"price_per_share"`
	LiquidationPreferenceMultiple string `bson:"liquidation_preference_multiple"`
	IssuerID                      string `bson:"issuer"`
	IsOnchainSynced               bool   `bson:"is_onchain_synced"`
}
