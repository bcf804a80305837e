package types

// StockClassType distinguishes common from preferred equity. Values follow
// the OCF enumeration.
type StockClassType string

const (
	StockClassTypeCommon    StockClassType = "COMMON"
	StockClassTypePreferred StockClassType = "PREFERRED"
)

func (t StockClassType) String() string {
	return string(t)
}

// StockIssuanceType qualifies a stock issuance. Only FOUNDERS_STOCK changes
// cap table placement; preferred founders' stock is aggregated separately
// from the class's own row.
type StockIssuanceType string

const (
	IssuanceTypeFoundersStock StockIssuanceType = "FOUNDERS_STOCK"
)

// CompensationType is the kind of an equity compensation grant, used to
// label plan and non-plan award rows ("<name> Options", "<name> RSUs").
type CompensationType string

const (
	CompensationTypeOption CompensationType = "OPTION"
	CompensationTypeRSU    CompensationType = "RSU"
	CompensationTypeSAR    CompensationType = "SAR"
)

func (t CompensationType) String() string {
	return string(t)
}
