package captable

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/captable-labs/captable-indexer/internal/db"
	"github.com/captable-labs/captable-indexer/internal/db/model"
	"github.com/captable-labs/captable-indexer/internal/types"
)

func testIssuer() *model.Issuer {
	return &model.Issuer{
		ID:               uuid.NewString(),
		ObjectType:       "ISSUER",
		LegalName:        "Winston, Inc.",
		SharesAuthorized: "10000000",
	}
}

func commonClass(name string) *model.StockClass {
	return &model.StockClass{
		ID:               uuid.NewString(),
		Name:             name,
		ClassType:        string(types.StockClassTypeCommon),
		SharesAuthorized: "5000000",
		VotesPerShare:    "1",
		PricePerShare:    "1.00",
	}
}

func preferredClass(name string) *model.StockClass {
	return &model.StockClass{
		ID:                            uuid.NewString(),
		Name:                          name,
		ClassType:                     string(types.StockClassTypePreferred),
		SharesAuthorized:              "2000000",
		VotesPerShare:                 "10",
		PricePerShare:                 "4.00",
		LiquidationPreferenceMultiple: "1",
	}
}

func testPlan(name, reserved string) *model.StockPlan {
	return &model.StockPlan{
		ID:             uuid.NewString(),
		PlanName:       name,
		SharesReserved: reserved,
	}
}

func snapshot(issuer *model.Issuer, classes []*model.StockClass, plans []*model.StockPlan, txs ...model.Transaction) *db.CapTableObjects {
	db.SortTransactions(txs)
	return &db.CapTableObjects{
		Issuer:       issuer,
		StockClasses: classes,
		StockPlans:   plans,
		Transactions: txs,
	}
}

func issuance(classID, quantity, sharePrice string) *model.StockIssuance {
	return &model.StockIssuance{
		TxBase: model.TxBase{
			ID:         uuid.NewString(),
			ObjectType: model.ObjectTypeStockIssuance,
		},
		StockClassID: classID,
		Quantity:     quantity,
		SharePrice:   sharePrice,
	}
}

func TestProjectCommonIssuance(t *testing.T) {
	class := commonClass("Series A")
	objs := snapshot(testIssuer(), []*model.StockClass{class}, nil,
		issuance(class.ID, "100", "2.00"))

	summary, err := Project(objs)
	require.NoError(t, err)
	require.Len(t, summary.Common.Rows, 1)

	row := summary.Common.Rows[0]
	assert.Equal(t, "Series A", row.Name)
	assert.Equal(t, "100", row.OutstandingShares.String())
	assert.Equal(t, "100", row.FullyDilutedShares.String())
	assert.Equal(t, "200", row.Liquidation.String())
	assert.Equal(t, "100", row.VotingPower.String())
	assert.Equal(t, "5000000", row.SharesAuthorized.String())

	assert.Equal(t, "10000000", summary.Totals.TotalSharesAuthorized.String())
	assert.Equal(t, "100", summary.Totals.TotalOutstandingShares.String())
	assert.False(t, summary.IsCapTableEmpty)
}

func TestProjectFounderPreferredExclusivity(t *testing.T) {
	class := preferredClass("Seed Preferred")
	founders := issuance(class.ID, "50", "4.00")
	founders.IssuanceType = string(types.IssuanceTypeFoundersStock)

	objs := snapshot(testIssuer(), []*model.StockClass{class}, nil, founders)
	summary, err := Project(objs)
	require.NoError(t, err)

	// The founders' issuance must never surface as a generic preferred row.
	assert.Empty(t, summary.Preferred.Rows)
	require.NotNil(t, summary.FounderPreferred)
	fp := summary.FounderPreferred
	assert.Equal(t, "50", fp.OutstandingShares.String())
	assert.Equal(t, "50", fp.SharesAuthorized.String())
	assert.Equal(t, "200", fp.Liquidation.String())
	assert.Equal(t, "500", fp.VotingPower.String())
	assert.Equal(t, "1.00", fp.FullyDilutedPercentage)
}

func TestProjectFounderPreferredDoesNotHideOrdinaryRows(t *testing.T) {
	class := preferredClass("Seed Preferred")
	founders := issuance(class.ID, "50", "4.00")
	founders.IssuanceType = string(types.IssuanceTypeFoundersStock)
	ordinary := issuance(class.ID, "30", "4.00")

	objs := snapshot(testIssuer(), []*model.StockClass{class}, nil, founders, ordinary)
	summary, err := Project(objs)
	require.NoError(t, err)

	require.Len(t, summary.Preferred.Rows, 1)
	assert.Equal(t, "30", summary.Preferred.Rows[0].OutstandingShares.String())
	assert.Equal(t, "50", summary.FounderPreferred.OutstandingShares.String())
	assert.Equal(t, "80", summary.Totals.TotalOutstandingShares.String())
}

func TestProjectLiquidationUsesClassPriceFallback(t *testing.T) {
	class := preferredClass("Series B")
	class.LiquidationPreferenceMultiple = "2"

	objs := snapshot(testIssuer(), []*model.StockClass{class}, nil,
		issuance(class.ID, "10", ""))
	summary, err := Project(objs)
	require.NoError(t, err)

	// 10 shares at the class reference price 4.00 with a 2x multiple.
	require.Len(t, summary.Preferred.Rows, 1)
	assert.Equal(t, "80", summary.Preferred.Rows[0].Liquidation.String())
}

func TestProjectIssuerAdjustmentReplacesAuthorized(t *testing.T) {
	adjust := func(block uint64, newShares string) *model.IssuerAuthorizedSharesAdjustment {
		return &model.IssuerAuthorizedSharesAdjustment{
			TxBase: model.TxBase{
				ID:          uuid.NewString(),
				ObjectType:  model.ObjectTypeIssuerAdjustment,
				BlockNumber: block,
			},
			NewSharesAuthorized: newShares,
		}
	}

	objs := snapshot(testIssuer(), nil, nil,
		adjust(10, "20000000"), adjust(20, "15000000"))
	summary, err := Project(objs)
	require.NoError(t, err)

	// Latest adjustment wins even when it lowers the figure.
	assert.Equal(t, "15000000", summary.Totals.TotalSharesAuthorized.String())
}

func TestProjectStockClassAdjustmentUpdatesRow(t *testing.T) {
	class := commonClass("Common")

	objs := snapshot(testIssuer(), []*model.StockClass{class}, nil,
		issuance(class.ID, "100", "1.00"),
		&model.StockClassAuthorizedSharesAdjustment{
			TxBase: model.TxBase{
				ID:          uuid.NewString(),
				ObjectType:  model.ObjectTypeStockClassAdjustment,
				BlockNumber: 5,
			},
			StockClassID:        class.ID,
			NewSharesAuthorized: "7500000",
		})
	summary, err := Project(objs)
	require.NoError(t, err)

	require.Len(t, summary.Common.Rows, 1)
	assert.Equal(t, "7500000", summary.Common.Rows[0].SharesAuthorized.String())
}

func equityGrant(planID, classID, quantity, compType string) *model.EquityCompensationIssuance {
	return &model.EquityCompensationIssuance{
		TxBase: model.TxBase{
			ID:         uuid.NewString(),
			ObjectType: model.ObjectTypeEquityCompIssuance,
		},
		StockPlanID:      planID,
		StockClassID:     classID,
		Quantity:         quantity,
		CompensationType: compType,
	}
}

func TestProjectAvailableForGrants(t *testing.T) {
	plan := testPlan("2024 Equity Incentive Plan", "0")

	objs := snapshot(testIssuer(), nil, []*model.StockPlan{plan},
		equityGrant(plan.ID, "", "400", "OPTION"),
		&model.StockPlanPoolAdjustment{
			TxBase: model.TxBase{
				ID:          uuid.NewString(),
				ObjectType:  model.ObjectTypeStockPlanAdjustment,
				BlockNumber: 9,
			},
			StockPlanID:    plan.ID,
			SharesReserved: "1000",
		})
	summary, err := Project(objs)
	require.NoError(t, err)

	require.Len(t, summary.StockPlans.Rows, 2)
	assert.Equal(t, "2024 Equity Incentive Plan Options", summary.StockPlans.Rows[0].Name)
	assert.Equal(t, "400", summary.StockPlans.Rows[0].FullyDilutedShares.String())
	assert.Equal(t, "2024 Equity Incentive Plan Available for Grants", summary.StockPlans.Rows[1].Name)
	assert.Equal(t, "600", summary.StockPlans.Rows[1].FullyDilutedShares.String())

	assert.Equal(t, "1000", summary.Totals.TotalFullyDilutedShares.String())
}

func TestProjectExhaustedPoolOmitsAvailableRow(t *testing.T) {
	plan := testPlan("2024 Equity Incentive Plan", "1000")

	objs := snapshot(testIssuer(), nil, []*model.StockPlan{plan},
		equityGrant(plan.ID, "", "1000", "RSU"))
	summary, err := Project(objs)
	require.NoError(t, err)

	require.Len(t, summary.StockPlans.Rows, 1)
	assert.Equal(t, "2024 Equity Incentive Plan Rsus", summary.StockPlans.Rows[0].Name)
}

func TestProjectNonPlanAwardLandsWithWarrants(t *testing.T) {
	class := commonClass("Common")

	objs := snapshot(testIssuer(), []*model.StockClass{class}, nil,
		equityGrant("", class.ID, "250", "OPTION"))
	summary, err := Project(objs)
	require.NoError(t, err)

	assert.Empty(t, summary.StockPlans.Rows)
	require.Len(t, summary.WarrantsAndNonPlanAwards.Rows, 1)
	assert.Equal(t, "Common Options", summary.WarrantsAndNonPlanAwards.Rows[0].Name)
	assert.Equal(t, "250", summary.WarrantsAndNonPlanAwards.Rows[0].FullyDilutedShares.String())
}

func TestProjectWarrantIssuance(t *testing.T) {
	class := commonClass("Common")

	withTrigger := &model.WarrantIssuance{
		TxBase: model.TxBase{ID: uuid.NewString(), ObjectType: model.ObjectTypeWarrantIssuance},
		ExerciseTriggers: &model.ConversionTrigger{
			ConvertsToStockClassID: class.ID,
			ConvertsToQuantity:     "500",
		},
	}
	// No conversion trigger means no as-converted shares to report.
	withoutTrigger := &model.WarrantIssuance{
		TxBase: model.TxBase{ID: uuid.NewString(), ObjectType: model.ObjectTypeWarrantIssuance},
	}

	objs := snapshot(testIssuer(), []*model.StockClass{class}, nil, withTrigger, withoutTrigger)
	summary, err := Project(objs)
	require.NoError(t, err)

	require.Len(t, summary.WarrantsAndNonPlanAwards.Rows, 1)
	assert.Equal(t, "Common Warrants", summary.WarrantsAndNonPlanAwards.Rows[0].Name)
	assert.Equal(t, "500", summary.WarrantsAndNonPlanAwards.Rows[0].FullyDilutedShares.String())
}

func TestProjectConvertibles(t *testing.T) {
	convertible := func(amount string) *model.ConvertibleIssuance {
		return &model.ConvertibleIssuance{
			TxBase:           model.TxBase{ID: uuid.NewString(), ObjectType: model.ObjectTypeConvertibleIssuance},
			InvestmentAmount: amount,
		}
	}

	objs := snapshot(testIssuer(), nil, nil, convertible("250000"), convertible("100000.50"))
	summary, err := Project(objs)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Convertibles.Count)
	assert.Equal(t, "350000.5", summary.Convertibles.TotalInvestment.String())
}

func TestProjectEmptyHistory(t *testing.T) {
	objs := snapshot(testIssuer(), []*model.StockClass{commonClass("Common")}, nil)
	summary, err := Project(objs)
	require.NoError(t, err)

	assert.True(t, summary.IsCapTableEmpty)
	assert.Empty(t, summary.Common.Rows)
	assert.Equal(t, "10000000", summary.Totals.TotalSharesAuthorized.String())
	assert.True(t, summary.Totals.TotalOutstandingShares.IsZero())
}

func TestProjectUnknownStockClassAborts(t *testing.T) {
	objs := snapshot(testIssuer(), nil, nil, issuance(uuid.NewString(), "100", "1.00"))
	_, err := Project(objs)
	require.ErrorContains(t, err, "unknown stock class")
}

func TestProjectPercentagesOmittedOnZeroDenominator(t *testing.T) {
	class := commonClass("Common")
	class.VotesPerShare = "0"

	objs := snapshot(testIssuer(), []*model.StockClass{class}, nil,
		issuance(class.ID, "100", "1.00"))
	summary, err := Project(objs)
	require.NoError(t, err)

	row := summary.Common.Rows[0]
	assert.Equal(t, "1.00", row.FullyDilutedPercentage)
	assert.Empty(t, row.VotingPowerPercentage)
}
