package model

const IssuerCollection = "issuers"

// Issuer is one ledger-deployed cap table. LastProcessedBlock is the sync
// checkpoint; nil means the issuer has never been synced.
type Issuer struct {
	ID                      string  `bson:"_id"`
	ObjectType              string  `bson:"object_type"`
	LegalName               string  `bson:"legal_name"`
	InitialSharesAuthorized string  `bson:"initial_shares_authorized"`
	SharesAuthorized        string  `bson:"shares_authorized"`
	DeployedTo              string  `bson:"deployed_to"`
	TxHash                  string  `bson:"tx_hash"`
	LastProcessedBlock      *uint64 `bson:"last_processed_block"`
	// SyncPaused quarantines an issuer whose batch keeps failing so a bad
	// range cannot wedge the sweep forever.
	SyncPaused bool `bson:"sync_paused"`
}
