package model

// One collection per transaction kind, upserted by the deterministic id
// derived from the 16-byte ledger identifier. Quantities and prices are
// decimal strings.

const (
	StockIssuanceCollection        = "stock_issuances"
	StockTransferCollection        = "stock_transfers"
	StockCancellationCollection    = "stock_cancellations"
	StockRetractionCollection      = "stock_retractions"
	StockReissuanceCollection      = "stock_reissuances"
	StockRepurchaseCollection      = "stock_repurchases"
	StockAcceptanceCollection      = "stock_acceptances"
	IssuerAdjustmentCollection     = "issuer_authorized_shares_adjustments"
	StockClassAdjustmentCollection = "stock_class_authorized_shares_adjustments"
	StockPlanAdjustmentCollection  = "stock_plan_pool_adjustments"
	EquityCompIssuanceCollection   = "equity_compensation_issuances"
	EquityCompExerciseCollection   = "equity_compensation_exercises"
	WarrantIssuanceCollection      = "warrant_issuances"
	ConvertibleIssuanceCollection  = "convertible_issuances"
)

// OCF object_type discriminators.
const (
	ObjectTypeStockIssuance        = "TX_STOCK_ISSUANCE"
	ObjectTypeStockTransfer        = "TX_STOCK_TRANSFER"
	ObjectTypeStockCancellation    = "TX_STOCK_CANCELLATION"
	ObjectTypeStockRetraction      = "TX_STOCK_RETRACTION"
	ObjectTypeStockReissuance      = "TX_STOCK_REISSUANCE"
	ObjectTypeStockRepurchase      = "TX_STOCK_REPURCHASE"
	ObjectTypeStockAcceptance      = "TX_STOCK_ACCEPTANCE"
	ObjectTypeIssuerAdjustment     = "TX_ISSUER_AUTHORIZED_SHARES_ADJUSTMENT"
	ObjectTypeStockClassAdjustment = "TX_STOCK_CLASS_AUTHORIZED_SHARES_ADJUSTMENT"
	ObjectTypeStockPlanAdjustment  = "TX_STOCK_PLAN_POOL_ADJUSTMENT"
	ObjectTypeEquityCompIssuance   = "TX_EQUITY_COMPENSATION_ISSUANCE"
	ObjectTypeEquityCompExercise   = "TX_EQUITY_COMPENSATION_EXERCISE"
	ObjectTypeWarrantIssuance      = "TX_WARRANT_ISSUANCE"
	ObjectTypeConvertibleIssuance  = "TX_CONVERTIBLE_ISSUANCE"
)

// Transaction is implemented by every transaction document through its
// embedded TxBase.
type Transaction interface {
	Base() *TxBase
}

// TxBase holds the fields every transaction document shares. The provenance
// triple (block_number, tx_index, log_index) defines the global apply order.
type TxBase struct {
	ID              string `bson:"_id"`
	ObjectType      string `bson:"object_type"`
	SecurityID      string `bson:"security_id,omitempty"`
	IssuerID        string `bson:"issuer"`
	Date            string `bson:"date"`
	BlockNumber     uint64 `bson:"block_number"`
	TxIndex         uint   `bson:"tx_index"`
	LogIndex        uint   `bson:"log_index"`
	IsOnchainSynced bool   `bson:"is_onchain_synced"`
}

func (b *TxBase) Base() *TxBase { return b }

type StockIssuance struct {
	TxBase        `bson:",inline"`
	StockClassID  string `bson:"stock_class_id"`
	StockPlanID   string `bson:"stock_plan_id,omitempty"`
	StakeholderID string `bson:"stakeholder_id,omitempty"`
	Quantity      string `bson:"quantity"`
	SharePrice    string `bson:"share_price"`
	IssuanceType  string `bson:"issuance_type,omitempty"`
}

type StockTransfer struct {
	TxBase               `bson:",inline"`
	Quantity             string   `bson:"quantity"`
	BalanceSecurityID    string   `bson:"balance_security_id,omitempty"`
	ResultingSecurityIDs []string `bson:"resulting_security_ids"`
}

type StockCancellation struct {
	TxBase            `bson:",inline"`
	Quantity          string `bson:"quantity"`
	BalanceSecurityID string `bson:"balance_security_id,omitempty"`
}

type StockRetraction struct {
	TxBase `bson:",inline"`
}

type StockReissuance struct {
	TxBase               `bson:",inline"`
	ResultingSecurityIDs []string `bson:"resulting_security_ids"`
}

type StockRepurchase struct {
	TxBase            `bson:",inline"`
	Quantity          string `bson:"quantity"`
	Price             string `bson:"price"`
	BalanceSecurityID string `bson:"balance_security_id,omitempty"`
}

type StockAcceptance struct {
	TxBase `bson:",inline"`
}

type IssuerAuthorizedSharesAdjustment struct {
	TxBase              `bson:",inline"`
	NewSharesAuthorized string `bson:"new_shares_authorized"`
}

type StockClassAuthorizedSharesAdjustment struct {
	TxBase              `bson:",inline"`
	StockClassID        string `bson:"stock_class_id"`
	NewSharesAuthorized string `bson:"new_shares_authorized"`
}

type StockPlanPoolAdjustment struct {
	TxBase         `bson:",inline"`
	StockPlanID    string `bson:"stock_plan_id"`
	SharesReserved string `bson:"shares_reserved"`
}

type EquityCompensationIssuance struct {
	TxBase           `bson:",inline"`
	StockClassID     string `bson:"stock_class_id,omitempty"`
	StockPlanID      string `bson:"stock_plan_id,omitempty"`
	StakeholderID    string `bson:"stakeholder_id,omitempty"`
	Quantity         string `bson:"quantity"`
	CompensationType string `bson:"compensation_type"`
}

type EquityCompensationExercise struct {
	TxBase               `bson:",inline"`
	Quantity             string   `bson:"quantity"`
	ResultingSecurityIDs []string `bson:"resulting_security_ids"`
}

// ConversionTrigger is the flattened conversion right of a warrant: what
// class it converts into and for how many shares.
type ConversionTrigger struct {
	ConvertsToStockClassID string `bson:"converts_to_stock_class_id"`
	ConvertsToQuantity     string `bson:"converts_to_quantity"`
}

type WarrantIssuance struct {
	TxBase           `bson:",inline"`
	StakeholderID    string             `bson:"stakeholder_id,omitempty"`
	Quantity         string             `bson:"quantity,omitempty"`
	PurchasePrice    string             `bson:"purchase_price,omitempty"`
	ExerciseTriggers *ConversionTrigger `bson:"exercise_triggers,omitempty"`
}

type ConvertibleIssuance struct {
	TxBase           `bson:",inline"`
	StakeholderID    string `bson:"stakeholder_id,omitempty"`
	InvestmentAmount string `bson:"investment_amount"`
	ConvertibleType  string `bson:"convertible_type,omitempty"`
}
