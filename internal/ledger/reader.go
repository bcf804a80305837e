package ledger

import (
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fixedPointDecimals is the scale the contract uses for share quantities and
// monetary amounts: an on-chain uint of N represents N / 10^10.
const fixedPointDecimals = 10

// wordReader walks a payload word by word. Payloads are sequences of 32-byte
// cells: bytes16 ids left-aligned, unsigned integers big-endian
// right-aligned, and bytes16 arrays as a count word followed by one word per
// element.
type wordReader struct {
	buf []byte
	off int
}

func newWordReader(buf []byte) *wordReader {
	return &wordReader{buf: buf}
}

func (r *wordReader) next() ([]byte, error) {
	if r.off+WordSize > len(r.buf) {
		return nil, fmt.Errorf("%w: truncated at offset %d", ErrMalformedPayload, r.off)
	}
	w := r.buf[r.off : r.off+WordSize]
	r.off += WordSize
	return w, nil
}

// done reports whether the reader consumed the payload exactly.
func (r *wordReader) done() bool {
	return r.off == len(r.buf)
}

func (r *wordReader) readID() (uuid.UUID, error) {
	w, err := r.next()
	if err != nil {
		return uuid.Nil, err
	}
	for _, b := range w[16:] {
		if b != 0 {
			return uuid.Nil, fmt.Errorf("%w: bytes16 word has non-zero padding", ErrMalformedPayload)
		}
	}
	id, err := uuid.FromBytes(w[:16])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrMalformedPayload, err)
	}
	return id, nil
}

func (r *wordReader) readUint64() (uint64, error) {
	w, err := r.next()
	if err != nil {
		return 0, err
	}
	return wordToUint64(w)
}

// readDecimal reads a uint256 word and descales it by the contract's fixed
// point factor. Accumulation stays exact: the value is a decimal, never a
// float.
func (r *wordReader) readDecimal() (decimal.Decimal, error) {
	w, err := r.next()
	if err != nil {
		return decimal.Zero, err
	}
	v := new(big.Int).SetBytes(w)
	return decimal.NewFromBigInt(v, -fixedPointDecimals), nil
}

func (r *wordReader) readIDArray() ([]uuid.UUID, error) {
	count, err := r.readUint64()
	if err != nil {
		return nil, err
	}
	if count > uint64(len(r.buf)/WordSize) {
		return nil, fmt.Errorf("%w: array count %d exceeds payload", ErrMalformedPayload, count)
	}
	ids := make([]uuid.UUID, 0, count)
	for i := uint64(0); i < count; i++ {
		id, err := r.readID()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// wordToUint64 interprets a 32-byte big-endian word that must fit in 64 bits.
func wordToUint64(w []byte) (uint64, error) {
	for _, b := range w[:WordSize-8] {
		if b != 0 {
			return 0, fmt.Errorf("uint word overflows 64 bits")
		}
	}
	v := new(big.Int).SetBytes(w)
	return v.Uint64(), nil
}
