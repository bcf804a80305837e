package ledger

import (
	"math/big"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Encoding mirrors the decoder word for word. Production code never encodes
// envelopes (the contract does), but tests need byte-exact fixtures.

type payloadBuilder struct {
	buf []byte
}

func (b *payloadBuilder) id(id uuid.UUID) *payloadBuilder {
	w := make([]byte, WordSize)
	copy(w, id[:])
	b.buf = append(b.buf, w...)
	return b
}

func (b *payloadBuilder) uint64(v uint64) *payloadBuilder {
	w := make([]byte, WordSize)
	new(big.Int).SetUint64(v).FillBytes(w)
	b.buf = append(b.buf, w...)
	return b
}

func (b *payloadBuilder) decimal(d decimal.Decimal) *payloadBuilder {
	w := make([]byte, WordSize)
	d.Shift(fixedPointDecimals).BigInt().FillBytes(w)
	b.buf = append(b.buf, w...)
	return b
}

func (b *payloadBuilder) idArray(ids []uuid.UUID) *payloadBuilder {
	b.uint64(uint64(len(ids)))
	for _, id := range ids {
		b.id(id)
	}
	return b
}

// EncodeEnvelope wraps an encoded payload in the TxCreated data layout.
func EncodeEnvelope(env *TxEnvelope) []byte {
	out := make([]byte, 0, 2*WordSize+len(env.Payload))
	lenWord := make([]byte, WordSize)
	new(big.Int).SetUint64(uint64(len(env.Payload))).FillBytes(lenWord)
	out = append(out, lenWord...)
	tagWord := make([]byte, WordSize)
	new(big.Int).SetUint64(uint64(env.Type)).FillBytes(tagWord)
	out = append(out, tagWord...)
	return append(out, env.Payload...)
}

// EncodeEntityID builds the data blob of a lifecycle notification.
func EncodeEntityID(id uuid.UUID) []byte {
	w := make([]byte, WordSize)
	copy(w, id[:])
	return w
}

// EncodeTx serializes a decoded transaction back to its TxCreated data blob.
func EncodeTx(tx DecodedTx) []byte {
	b := &payloadBuilder{}
	switch t := tx.(type) {
	case *IssuerAuthorizedSharesAdjustment:
		b.id(t.ID).id(t.IssuerID).decimal(t.NewSharesAuthorized)
	case *StockClassAuthorizedSharesAdjustment:
		b.id(t.ID).id(t.StockClassID).decimal(t.NewSharesAuthorized)
	case *StockAcceptance:
		b.id(t.ID).id(t.SecurityID)
	case *StockCancellation:
		b.id(t.ID).id(t.SecurityID).decimal(t.Quantity).id(t.BalanceSecurityID)
	case *StockIssuance:
		b.id(t.ID).id(t.SecurityID).id(t.StockClassID).id(t.StockPlanID).
			decimal(t.Quantity).decimal(t.SharePrice)
		if t.IssuanceType == "" {
			b.uint64(0)
		} else {
			b.uint64(1)
		}
	case *StockReissuance:
		b.id(t.ID).id(t.SecurityID).idArray(t.ResultingSecurityIDs)
	case *StockRepurchase:
		b.id(t.ID).id(t.SecurityID).decimal(t.Quantity).decimal(t.Price).id(t.BalanceSecurityID)
	case *StockRetraction:
		b.id(t.ID).id(t.SecurityID)
	case *StockTransfer:
		b.id(t.ID).id(t.SecurityID).decimal(t.Quantity).id(t.BalanceSecurityID).
			idArray(t.ResultingSecurityIDs)
	}
	return EncodeEnvelope(&TxEnvelope{Type: tx.TxType(), Payload: b.buf})
}
