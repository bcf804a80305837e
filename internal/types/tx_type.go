package types

import "fmt"

// TxType is the on-chain transaction type tag carried in the TxCreated
// envelope. The numeric values are part of the wire format and must not be
// reordered.
type TxType uint8

const (
	TxInvalid TxType = iota
	TxIssuerAuthorizedSharesAdjustment
	TxStockClassAuthorizedSharesAdjustment
	TxStockAcceptance
	TxStockCancellation
	TxStockIssuance
	TxStockReissuance
	TxStockRepurchase
	TxStockRetraction
	TxStockTransfer
	// numTxTypes marks the end of the on-chain enumeration.
	numTxTypes
)

var txTypeNames = map[TxType]string{
	TxIssuerAuthorizedSharesAdjustment:     "IssuerAuthorizedSharesAdjustment",
	TxStockClassAuthorizedSharesAdjustment: "StockClassAuthorizedSharesAdjustment",
	TxStockAcceptance:                      "StockAcceptance",
	TxStockCancellation:                    "StockCancellation",
	TxStockIssuance:                        "StockIssuance",
	TxStockReissuance:                      "StockReissuance",
	TxStockRepurchase:                      "StockRepurchase",
	TxStockRetraction:                      "StockRetraction",
	TxStockTransfer:                        "StockTransfer",
}

func (t TxType) String() string {
	if name, ok := txTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TxType(%d)", uint8(t))
}

// Valid reports whether t is a known on-chain transaction tag. Tag 0 is
// reserved and never valid.
func (t TxType) Valid() bool {
	return t > TxInvalid && t < numTxTypes
}

// AllTxTypes returns every valid on-chain tag in ascending wire order.
func AllTxTypes() []TxType {
	all := make([]TxType, 0, numTxTypes-1)
	for t := TxIssuerAuthorizedSharesAdjustment; t < numTxTypes; t++ {
		all = append(all, t)
	}
	return all
}

// LifecycleEvent is a bare entity-created notification emitted by the cap
// table contract alongside transaction envelopes. Its payload is the 16-byte
// id of the created reference entity.
type LifecycleEvent string

const (
	StakeholderCreated LifecycleEvent = "StakeholderCreated"
	StockClassCreated  LifecycleEvent = "StockClassCreated"
	StockPlanCreated   LifecycleEvent = "StockPlanCreated"
	IssuerCreated      LifecycleEvent = "IssuerCreated"
)

func (e LifecycleEvent) String() string {
	return string(e)
}
