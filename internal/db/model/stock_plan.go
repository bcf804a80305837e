package model

const StockPlanCollection = "stockplans"

type StockPlan struct {
	ID                    string   `bson:"_id"`
	ObjectType            string   `bson:"object_type"`
	PlanName              string   `bson:"plan_name"`
	InitialSharesReserved string   `bson:"initial_shares_reserved"`
	SharesReserved        string   `bson:"shares_reserved"`
	StockClassIDs         []string `bson:"stock_class_ids"`
	IssuerID              string   `bson:"issuer"`
	IsOnchainSynced       bool     `bson:"is_onchain_synced"`
}
