package model

const StakeholderCollection = "stakeholders"

type Stakeholder struct {
	ID              string `bson:"_id"`
	ObjectType      string `bson:"object_type"`
	Name            string `bson:"name"`
	IssuerID        string `bson:"issuer"`
	IsOnchainSynced bool   `bson:"is_onchain_synced"`
}
