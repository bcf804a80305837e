package captable

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/captable-labs/captable-indexer/internal/db"
)

// Compute projects an issuer's committed transaction history into a cap
// table summary. It is a pure read: the same snapshot always folds to the
// same summary, and nothing is written back.
func Compute(ctx context.Context, database db.DbInterface, issuerID string) (*Summary, error) {
	objs, err := database.GetCapTableObjects(ctx, issuerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cap table objects for issuer %s: %w", issuerID, err)
	}
	summary, err := Project(objs)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().
		Str("issuer_id", issuerID).
		Int("transactions", len(objs.Transactions)).
		Msg("Computed cap table summary")
	return summary, nil
}

// Project folds a snapshot into a summary. Transactions must already be in
// apply order; a summary-relevant transaction referencing an entity missing
// from the snapshot aborts the projection rather than producing partial
// figures.
func Project(objs *db.CapTableObjects) (*Summary, error) {
	state, err := newFoldState(objs)
	if err != nil {
		return nil, err
	}
	for _, tx := range objs.Transactions {
		if err := state.apply(tx); err != nil {
			return nil, err
		}
	}
	return state.finalize(), nil
}
