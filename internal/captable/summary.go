package captable

import "github.com/shopspring/decimal"

// Summary is the cap table projection served to the portal. Share counts and
// money amounts are exact decimals; percentages are fixed to two places at
// presentation time only.
type Summary struct {
	Common                   Section           `json:"common"`
	Preferred                Section           `json:"preferred"`
	FounderPreferred         *FounderPreferred `json:"founder_preferred,omitempty"`
	WarrantsAndNonPlanAwards Section           `json:"warrants_and_non_plan_awards"`
	StockPlans               Section           `json:"stock_plans"`
	Convertibles             Convertibles      `json:"convertibles"`
	Totals                   Totals            `json:"totals"`
	IsCapTableEmpty          bool              `json:"is_cap_table_empty"`
}

type Section struct {
	Rows []*Row `json:"rows"`
}

// Row is one summary line. Class rows carry the full set of figures; stock
// plan and warrant rows only use Name and FullyDilutedShares.
type Row struct {
	Name                   string          `json:"name"`
	SharesAuthorized       decimal.Decimal `json:"shares_authorized"`
	OutstandingShares      decimal.Decimal `json:"outstanding_shares"`
	FullyDilutedShares     decimal.Decimal `json:"fully_diluted_shares"`
	Liquidation            decimal.Decimal `json:"liquidation"`
	VotingPower            decimal.Decimal `json:"voting_power"`
	FullyDilutedPercentage string          `json:"fully_diluted_percentage,omitempty"`
	VotingPowerPercentage  string          `json:"voting_power_percentage,omitempty"`
}

// FounderPreferred aggregates preferred shares issued under a founders'
// stock designation. There is no authorized pool of its own; outstanding
// shares double as the authorized figure.
type FounderPreferred struct {
	SharesAuthorized       decimal.Decimal `json:"shares_authorized"`
	OutstandingShares      decimal.Decimal `json:"outstanding_shares"`
	FullyDilutedShares     decimal.Decimal `json:"fully_diluted_shares"`
	Liquidation            decimal.Decimal `json:"liquidation"`
	VotingPower            decimal.Decimal `json:"voting_power"`
	FullyDilutedPercentage string          `json:"fully_diluted_percentage,omitempty"`
	VotingPowerPercentage  string          `json:"voting_power_percentage,omitempty"`
}

type Convertibles struct {
	Count           int             `json:"count"`
	TotalInvestment decimal.Decimal `json:"total_investment"`
}

type Totals struct {
	TotalSharesAuthorized   decimal.Decimal `json:"total_shares_authorized"`
	TotalOutstandingShares  decimal.Decimal `json:"total_outstanding_shares"`
	TotalFullyDilutedShares decimal.Decimal `json:"total_fully_diluted_shares"`
	TotalVotingPower        decimal.Decimal `json:"total_voting_power"`
	TotalLiquidation        decimal.Decimal `json:"total_liquidation"`
}
