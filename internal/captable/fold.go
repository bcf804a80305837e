package captable

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/captable-labs/captable-indexer/internal/db"
	"github.com/captable-labs/captable-indexer/internal/db/model"
	"github.com/captable-labs/captable-indexer/internal/types"
)

const availableForGrantsSuffix = " Available for Grants"

// classState is a stock class's reference terms parsed once up front.
// SharesAuthorized is mutable: class adjustments move it as they are folded.
type classState struct {
	name             string
	classType        string
	sharesAuthorized decimal.Decimal
	votesPerShare    decimal.Decimal
	pricePerShare    decimal.Decimal
	liqMultiple      decimal.Decimal
}

type planState struct {
	name           string
	sharesReserved decimal.Decimal
	// issued is the running sum of plan-backed grants, the subtrahend of
	// the Available-for-Grants figure.
	issued decimal.Decimal
}

// section keeps rows in first-touch order with O(1) lookup by name.
type section struct {
	rows  []*Row
	index map[string]*Row
}

func newSection() *section {
	return &section{index: make(map[string]*Row)}
}

func (s *section) row(name string) *Row {
	if r, ok := s.index[name]; ok {
		return r
	}
	r := &Row{Name: name}
	s.rows = append(s.rows, r)
	s.index[name] = r
	return r
}

func (s *section) remove(name string) {
	if _, ok := s.index[name]; !ok {
		return
	}
	delete(s.index, name)
	for i, r := range s.rows {
		if r.Name == name {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			break
		}
	}
}

func (s *section) out() Section {
	if s.rows == nil {
		return Section{Rows: []*Row{}}
	}
	return Section{Rows: s.rows}
}

// foldState is the accumulator of one projection run. It is built fresh per
// invocation and never outlives it.
type foldState struct {
	classes map[string]*classState
	plans   map[string]*planState

	issuerAuthorized decimal.Decimal

	common           *section
	preferred        *section
	warrants         *section
	stockPlans       *section
	founderPreferred *FounderPreferred
	convertibles     Convertibles

	touched bool
}

func parseDecimal(value, what string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal %q for %s: %w", value, what, err)
	}
	return d, nil
}

func newFoldState(objs *db.CapTableObjects) (*foldState, error) {
	state := &foldState{
		classes:    make(map[string]*classState, len(objs.StockClasses)),
		plans:      make(map[string]*planState, len(objs.StockPlans)),
		common:     newSection(),
		preferred:  newSection(),
		warrants:   newSection(),
		stockPlans: newSection(),
	}

	var err error
	if state.issuerAuthorized, err = parseDecimal(objs.Issuer.SharesAuthorized, "issuer shares_authorized"); err != nil {
		return nil, err
	}

	for _, sc := range objs.StockClasses {
		cs := &classState{name: sc.Name, classType: sc.ClassType}
		if cs.sharesAuthorized, err = parseDecimal(sc.SharesAuthorized, "stock class shares_authorized"); err != nil {
			return nil, err
		}
		if cs.votesPerShare, err = parseDecimal(sc.VotesPerShare, "stock class votes_per_share"); err != nil {
			return nil, err
		}
		if cs.pricePerShare, err = parseDecimal(sc.PricePerShare, "stock class price_per_share"); err != nil {
			return nil, err
		}
		if cs.liqMultiple, err = parseDecimal(sc.LiquidationPreferenceMultiple, "stock class liquidation_preference_multiple"); err != nil {
			return nil, err
		}
		if cs.liqMultiple.IsZero() {
			cs.liqMultiple = decimal.NewFromInt(1)
		}
		state.classes[sc.ID] = cs
	}

	for _, sp := range objs.StockPlans {
		ps := &planState{name: sp.PlanName}
		if ps.sharesReserved, err = parseDecimal(sp.SharesReserved, "stock plan shares_reserved"); err != nil {
			return nil, err
		}
		state.plans[sp.ID] = ps
	}
	return state, nil
}

// apply folds one transaction. Kinds outside the summary's scope fall
// through silently; a summary-relevant transaction referencing an unknown
// entity is a hard error, never a silently dropped effect.
func (st *foldState) apply(tx model.Transaction) error {
	switch t := tx.(type) {
	case *model.StockIssuance:
		return st.applyStockIssuance(t)
	case *model.IssuerAuthorizedSharesAdjustment:
		return st.applyIssuerAdjustment(t)
	case *model.StockClassAuthorizedSharesAdjustment:
		return st.applyStockClassAdjustment(t)
	case *model.StockPlanPoolAdjustment:
		return st.applyStockPlanAdjustment(t)
	case *model.EquityCompensationIssuance:
		return st.applyEquityCompIssuance(t)
	case *model.WarrantIssuance:
		return st.applyWarrantIssuance(t)
	case *model.ConvertibleIssuance:
		return st.applyConvertibleIssuance(t)
	default:
		return nil
	}
}

func (st *foldState) classFor(id, txID string) (*classState, error) {
	class, ok := st.classes[id]
	if !ok {
		return nil, fmt.Errorf("transaction %s references unknown stock class %s", txID, id)
	}
	return class, nil
}

func (st *foldState) applyStockIssuance(tx *model.StockIssuance) error {
	class, err := st.classFor(tx.StockClassID, tx.ID)
	if err != nil {
		return err
	}
	quantity, err := parseDecimal(tx.Quantity, "stock issuance quantity")
	if err != nil {
		return err
	}
	sharePrice, err := parseDecimal(tx.SharePrice, "stock issuance share_price")
	if err != nil {
		return err
	}
	// The transaction's recorded price wins; the class reference price is
	// the fallback for off-ledger records that never carried one.
	if sharePrice.IsZero() {
		sharePrice = class.pricePerShare
	}

	votingPower := class.votesPerShare.Mul(quantity)
	liquidation := quantity.Mul(sharePrice).Mul(class.liqMultiple)
	st.touched = true

	if class.classType == string(types.StockClassTypePreferred) &&
		tx.IssuanceType == string(types.IssuanceTypeFoundersStock) {
		if st.founderPreferred == nil {
			st.founderPreferred = &FounderPreferred{}
		}
		fp := st.founderPreferred
		fp.SharesAuthorized = fp.SharesAuthorized.Add(quantity)
		fp.OutstandingShares = fp.OutstandingShares.Add(quantity)
		fp.FullyDilutedShares = fp.FullyDilutedShares.Add(quantity)
		fp.Liquidation = fp.Liquidation.Add(liquidation)
		fp.VotingPower = fp.VotingPower.Add(votingPower)
		return nil
	}

	sec := st.preferred
	if class.classType == string(types.StockClassTypeCommon) {
		sec = st.common
	}
	row := sec.row(class.name)
	row.SharesAuthorized = class.sharesAuthorized
	row.OutstandingShares = row.OutstandingShares.Add(quantity)
	row.FullyDilutedShares = row.FullyDilutedShares.Add(quantity)
	row.Liquidation = row.Liquidation.Add(liquidation)
	row.VotingPower = row.VotingPower.Add(votingPower)
	return nil
}

func (st *foldState) applyIssuerAdjustment(tx *model.IssuerAuthorizedSharesAdjustment) error {
	newShares, err := parseDecimal(tx.NewSharesAuthorized, "issuer adjustment new_shares_authorized")
	if err != nil {
		return err
	}
	// Last write wins under arrival order.
	st.issuerAuthorized = newShares
	st.touched = true
	return nil
}

func (st *foldState) applyStockClassAdjustment(tx *model.StockClassAuthorizedSharesAdjustment) error {
	class, err := st.classFor(tx.StockClassID, tx.ID)
	if err != nil {
		return err
	}
	newShares, err := parseDecimal(tx.NewSharesAuthorized, "stock class adjustment new_shares_authorized")
	if err != nil {
		return err
	}
	class.sharesAuthorized = newShares
	st.touched = true

	sec := st.preferred
	if class.classType == string(types.StockClassTypeCommon) {
		sec = st.common
	}
	if row, ok := sec.index[class.name]; ok {
		row.SharesAuthorized = newShares
	}
	return nil
}

func (st *foldState) applyStockPlanAdjustment(tx *model.StockPlanPoolAdjustment) error {
	plan, ok := st.plans[tx.StockPlanID]
	if !ok {
		return fmt.Errorf("transaction %s references unknown stock plan %s", tx.ID, tx.StockPlanID)
	}
	reserved, err := parseDecimal(tx.SharesReserved, "stock plan adjustment shares_reserved")
	if err != nil {
		return err
	}
	plan.sharesReserved = reserved
	st.touched = true
	st.refreshAvailableForGrants(plan)
	return nil
}

func (st *foldState) applyEquityCompIssuance(tx *model.EquityCompensationIssuance) error {
	quantity, err := parseDecimal(tx.Quantity, "equity compensation quantity")
	if err != nil {
		return err
	}

	plan, hasPlan := st.plans[tx.StockPlanID]
	if tx.StockPlanID == "" || !hasPlan {
		// No plan pool behind it: it belongs with warrants and non-plan
		// awards, keyed by the underlying class.
		class, err := st.classFor(tx.StockClassID, tx.ID)
		if err != nil {
			return err
		}
		name := class.name + " " + formatCompensationType(tx.CompensationType)
		row := st.warrants.row(name)
		row.FullyDilutedShares = row.FullyDilutedShares.Add(quantity)
		st.touched = true
		return nil
	}

	name := plan.name + " " + formatCompensationType(tx.CompensationType)
	row := st.stockPlans.row(name)
	row.FullyDilutedShares = row.FullyDilutedShares.Add(quantity)
	plan.issued = plan.issued.Add(quantity)
	st.touched = true
	st.refreshAvailableForGrants(plan)
	return nil
}

func (st *foldState) applyWarrantIssuance(tx *model.WarrantIssuance) error {
	if tx.ExerciseTriggers == nil {
		// Without a conversion trigger there is no target class and zero
		// as-converted shares; nothing to show.
		return nil
	}
	class, err := st.classFor(tx.ExerciseTriggers.ConvertsToStockClassID, tx.ID)
	if err != nil {
		return err
	}
	quantity, err := parseDecimal(tx.ExerciseTriggers.ConvertsToQuantity, "warrant converts_to_quantity")
	if err != nil {
		return err
	}
	row := st.warrants.row(class.name + " Warrants")
	row.FullyDilutedShares = row.FullyDilutedShares.Add(quantity)
	st.touched = true
	return nil
}

func (st *foldState) applyConvertibleIssuance(tx *model.ConvertibleIssuance) error {
	amount, err := parseDecimal(tx.InvestmentAmount, "convertible investment_amount")
	if err != nil {
		return err
	}
	st.convertibles.Count++
	st.convertibles.TotalInvestment = st.convertibles.TotalInvestment.Add(amount)
	st.touched = true
	return nil
}

// refreshAvailableForGrants keeps the plan's availability row in step with
// its reserved pool. The row exists only while availability is strictly
// positive; an exhausted or overdrawn pool shows no row at all.
func (st *foldState) refreshAvailableForGrants(plan *planState) {
	name := plan.name + availableForGrantsSuffix
	available := plan.sharesReserved.Sub(plan.issued)
	if available.IsPositive() {
		row := st.stockPlans.row(name)
		row.FullyDilutedShares = available
		return
	}
	st.stockPlans.remove(name)
}

// formatCompensationType renders a grant kind as a row label suffix:
// OPTION becomes Options, RSU becomes Rsus.
func formatCompensationType(compensationType string) string {
	if compensationType == "" {
		return "Awards"
	}
	return strings.ToUpper(compensationType[:1]) + strings.ToLower(compensationType[1:]) + "s"
}

// finalize computes totals and presentation percentages. Class rows and the
// founder preferred bucket are the percentage carriers; plan and warrant
// rows only report fully diluted shares.
func (st *foldState) finalize() *Summary {
	totals := Totals{
		TotalSharesAuthorized:   st.issuerAuthorized,
		TotalOutstandingShares:  decimal.Zero,
		TotalFullyDilutedShares: decimal.Zero,
		TotalVotingPower:        decimal.Zero,
		TotalLiquidation:        decimal.Zero,
	}

	classRows := make([]*Row, 0, len(st.common.rows)+len(st.preferred.rows))
	classRows = append(classRows, st.common.rows...)
	classRows = append(classRows, st.preferred.rows...)
	for _, row := range classRows {
		totals.TotalOutstandingShares = totals.TotalOutstandingShares.Add(row.OutstandingShares)
		totals.TotalFullyDilutedShares = totals.TotalFullyDilutedShares.Add(row.FullyDilutedShares)
		totals.TotalVotingPower = totals.TotalVotingPower.Add(row.VotingPower)
		totals.TotalLiquidation = totals.TotalLiquidation.Add(row.Liquidation)
	}
	if fp := st.founderPreferred; fp != nil {
		totals.TotalOutstandingShares = totals.TotalOutstandingShares.Add(fp.OutstandingShares)
		totals.TotalFullyDilutedShares = totals.TotalFullyDilutedShares.Add(fp.FullyDilutedShares)
		totals.TotalVotingPower = totals.TotalVotingPower.Add(fp.VotingPower)
		totals.TotalLiquidation = totals.TotalLiquidation.Add(fp.Liquidation)
	}
	for _, row := range st.warrants.rows {
		totals.TotalFullyDilutedShares = totals.TotalFullyDilutedShares.Add(row.FullyDilutedShares)
	}
	for _, row := range st.stockPlans.rows {
		totals.TotalFullyDilutedShares = totals.TotalFullyDilutedShares.Add(row.FullyDilutedShares)
	}

	for _, row := range classRows {
		row.FullyDilutedPercentage = percentage(row.FullyDilutedShares, totals.TotalOutstandingShares)
		row.VotingPowerPercentage = percentage(row.VotingPower, totals.TotalVotingPower)
	}
	if fp := st.founderPreferred; fp != nil {
		fp.FullyDilutedPercentage = percentage(fp.FullyDilutedShares, totals.TotalOutstandingShares)
		fp.VotingPowerPercentage = percentage(fp.VotingPower, totals.TotalVotingPower)
	}

	return &Summary{
		Common:                   st.common.out(),
		Preferred:                st.preferred.out(),
		FounderPreferred:         st.founderPreferred,
		WarrantsAndNonPlanAwards: st.warrants.out(),
		StockPlans:               st.stockPlans.out(),
		Convertibles:             st.convertibles,
		Totals:                   totals,
		IsCapTableEmpty:          !st.touched,
	}
}

func percentage(part, whole decimal.Decimal) string {
	if whole.IsZero() {
		return ""
	}
	return part.Div(whole).StringFixed(2)
}
