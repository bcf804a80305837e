package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/captable-labs/captable-indexer/internal/types"
)

// DecodedTx is the closed union of on-chain transaction payloads, one
// variant per wire tag. The interface is sealed so the dispatcher's switch
// stays total over the enumeration.
type DecodedTx interface {
	TxType() types.TxType
	// TxID is the 16-byte ledger identifier; it keys the upsert so replays
	// converge on one record.
	TxID() uuid.UUID
	sealedTx()
}

type IssuerAuthorizedSharesAdjustment struct {
	ID                  uuid.UUID
	IssuerID            uuid.UUID
	NewSharesAuthorized decimal.Decimal
}

type StockClassAuthorizedSharesAdjustment struct {
	ID                  uuid.UUID
	StockClassID        uuid.UUID
	NewSharesAuthorized decimal.Decimal
}

type StockAcceptance struct {
	ID         uuid.UUID
	SecurityID uuid.UUID
}

type StockCancellation struct {
	ID                uuid.UUID
	SecurityID        uuid.UUID
	Quantity          decimal.Decimal
	BalanceSecurityID uuid.UUID
}

type StockIssuance struct {
	ID           uuid.UUID
	SecurityID   uuid.UUID
	StockClassID uuid.UUID
	// StockPlanID is uuid.Nil for issuances outside any plan.
	StockPlanID  uuid.UUID
	Quantity     decimal.Decimal
	SharePrice   decimal.Decimal
	IssuanceType types.StockIssuanceType
}

type StockReissuance struct {
	ID                   uuid.UUID
	SecurityID           uuid.UUID
	ResultingSecurityIDs []uuid.UUID
}

type StockRepurchase struct {
	ID                uuid.UUID
	SecurityID        uuid.UUID
	Quantity          decimal.Decimal
	Price             decimal.Decimal
	BalanceSecurityID uuid.UUID
}

type StockRetraction struct {
	ID         uuid.UUID
	SecurityID uuid.UUID
}

type StockTransfer struct {
	ID                   uuid.UUID
	SecurityID           uuid.UUID
	Quantity             decimal.Decimal
	BalanceSecurityID    uuid.UUID
	ResultingSecurityIDs []uuid.UUID
}

func (t *IssuerAuthorizedSharesAdjustment) TxType() types.TxType {
	return types.TxIssuerAuthorizedSharesAdjustment
}
func (t *StockClassAuthorizedSharesAdjustment) TxType() types.TxType {
	return types.TxStockClassAuthorizedSharesAdjustment
}
func (t *StockAcceptance) TxType() types.TxType   { return types.TxStockAcceptance }
func (t *StockCancellation) TxType() types.TxType { return types.TxStockCancellation }
func (t *StockIssuance) TxType() types.TxType     { return types.TxStockIssuance }
func (t *StockReissuance) TxType() types.TxType   { return types.TxStockReissuance }
func (t *StockRepurchase) TxType() types.TxType   { return types.TxStockRepurchase }
func (t *StockRetraction) TxType() types.TxType   { return types.TxStockRetraction }
func (t *StockTransfer) TxType() types.TxType     { return types.TxStockTransfer }

func (t *IssuerAuthorizedSharesAdjustment) TxID() uuid.UUID     { return t.ID }
func (t *StockClassAuthorizedSharesAdjustment) TxID() uuid.UUID { return t.ID }
func (t *StockAcceptance) TxID() uuid.UUID                      { return t.ID }
func (t *StockCancellation) TxID() uuid.UUID                    { return t.ID }
func (t *StockIssuance) TxID() uuid.UUID                        { return t.ID }
func (t *StockReissuance) TxID() uuid.UUID                      { return t.ID }
func (t *StockRepurchase) TxID() uuid.UUID                      { return t.ID }
func (t *StockRetraction) TxID() uuid.UUID                      { return t.ID }
func (t *StockTransfer) TxID() uuid.UUID                        { return t.ID }

func (*IssuerAuthorizedSharesAdjustment) sealedTx()     {}
func (*StockClassAuthorizedSharesAdjustment) sealedTx() {}
func (*StockAcceptance) sealedTx()                      {}
func (*StockCancellation) sealedTx()                    {}
func (*StockIssuance) sealedTx()                        {}
func (*StockReissuance) sealedTx()                      {}
func (*StockRepurchase) sealedTx()                      {}
func (*StockRetraction) sealedTx()                      {}
func (*StockTransfer) sealedTx()                        {}

// DecodeTx decodes the envelope's payload according to the structure
// registered for its tag.
func DecodeTx(env *TxEnvelope) (DecodedTx, error) {
	r := newWordReader(env.Payload)

	var (
		tx  DecodedTx
		err error
	)
	switch env.Type {
	case types.TxIssuerAuthorizedSharesAdjustment:
		tx, err = decodeIssuerAdjustment(r)
	case types.TxStockClassAuthorizedSharesAdjustment:
		tx, err = decodeStockClassAdjustment(r)
	case types.TxStockAcceptance:
		tx, err = decodeStockAcceptance(r)
	case types.TxStockCancellation:
		tx, err = decodeStockCancellation(r)
	case types.TxStockIssuance:
		tx, err = decodeStockIssuance(r)
	case types.TxStockReissuance:
		tx, err = decodeStockReissuance(r)
	case types.TxStockRepurchase:
		tx, err = decodeStockRepurchase(r)
	case types.TxStockRetraction:
		tx, err = decodeStockRetraction(r)
	case types.TxStockTransfer:
		tx, err = decodeStockTransfer(r)
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownTxType, env.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", env.Type, err)
	}
	if !r.done() {
		return nil, fmt.Errorf("decoding %s: %w: %d trailing bytes", env.Type, ErrMalformedPayload, len(env.Payload)-r.off)
	}
	return tx, nil
}

func decodeIssuerAdjustment(r *wordReader) (*IssuerAuthorizedSharesAdjustment, error) {
	tx := &IssuerAuthorizedSharesAdjustment{}
	var err error
	if tx.ID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.IssuerID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.NewSharesAuthorized, err = r.readDecimal(); err != nil {
		return nil, err
	}
	return tx, nil
}

func decodeStockClassAdjustment(r *wordReader) (*StockClassAuthorizedSharesAdjustment, error) {
	tx := &StockClassAuthorizedSharesAdjustment{}
	var err error
	if tx.ID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.StockClassID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.NewSharesAuthorized, err = r.readDecimal(); err != nil {
		return nil, err
	}
	return tx, nil
}

func decodeStockAcceptance(r *wordReader) (*StockAcceptance, error) {
	tx := &StockAcceptance{}
	var err error
	if tx.ID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.SecurityID, err = r.readID(); err != nil {
		return nil, err
	}
	return tx, nil
}

func decodeStockCancellation(r *wordReader) (*StockCancellation, error) {
	tx := &StockCancellation{}
	var err error
	if tx.ID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.SecurityID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.Quantity, err = r.readDecimal(); err != nil {
		return nil, err
	}
	if tx.BalanceSecurityID, err = r.readID(); err != nil {
		return nil, err
	}
	return tx, nil
}

func decodeStockIssuance(r *wordReader) (*StockIssuance, error) {
	tx := &StockIssuance{}
	var err error
	if tx.ID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.SecurityID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.StockClassID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.StockPlanID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.Quantity, err = r.readDecimal(); err != nil {
		return nil, err
	}
	if tx.SharePrice, err = r.readDecimal(); err != nil {
		return nil, err
	}
	kind, err := r.readUint64()
	if err != nil {
		return nil, err
	}
	switch kind {
	case 0:
		tx.IssuanceType = ""
	case 1:
		tx.IssuanceType = types.IssuanceTypeFoundersStock
	default:
		return nil, fmt.Errorf("%w: issuance type %d", ErrMalformedPayload, kind)
	}
	return tx, nil
}

func decodeStockReissuance(r *wordReader) (*StockReissuance, error) {
	tx := &StockReissuance{}
	var err error
	if tx.ID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.SecurityID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.ResultingSecurityIDs, err = r.readIDArray(); err != nil {
		return nil, err
	}
	return tx, nil
}

func decodeStockRepurchase(r *wordReader) (*StockRepurchase, error) {
	tx := &StockRepurchase{}
	var err error
	if tx.ID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.SecurityID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.Quantity, err = r.readDecimal(); err != nil {
		return nil, err
	}
	if tx.Price, err = r.readDecimal(); err != nil {
		return nil, err
	}
	if tx.BalanceSecurityID, err = r.readID(); err != nil {
		return nil, err
	}
	return tx, nil
}

func decodeStockRetraction(r *wordReader) (*StockRetraction, error) {
	tx := &StockRetraction{}
	var err error
	if tx.ID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.SecurityID, err = r.readID(); err != nil {
		return nil, err
	}
	return tx, nil
}

func decodeStockTransfer(r *wordReader) (*StockTransfer, error) {
	tx := &StockTransfer{}
	var err error
	if tx.ID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.SecurityID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.Quantity, err = r.readDecimal(); err != nil {
		return nil, err
	}
	if tx.BalanceSecurityID, err = r.readID(); err != nil {
		return nil, err
	}
	if tx.ResultingSecurityIDs, err = r.readIDArray(); err != nil {
		return nil, err
	}
	return tx, nil
}
