package ledger

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/captable-labs/captable-indexer/internal/types"
)

// WordSize is the fixed 32-byte cell of the ledger's log encoding.
const WordSize = 32

var (
	// ErrUnknownTxType signals a type tag outside the registered
	// enumeration. It means the decoder and the on-chain schema have
	// drifted apart, so the whole batch must be aborted rather than the
	// event skipped.
	ErrUnknownTxType = errors.New("unknown transaction type tag")

	// ErrMalformedPayload signals a payload that does not match the
	// structure registered for its tag.
	ErrMalformedPayload = errors.New("malformed transaction payload")
)

// TxEnvelope is the decoded form of a TxCreated log's data:
// a payload length word, a type tag word and the opaque payload bytes.
type TxEnvelope struct {
	Type    types.TxType
	Payload []byte
}

// ParseEnvelope splits a TxCreated data blob into its envelope fields.
// Layout: word 0 holds the payload byte length, word 1 the type tag, and the
// payload follows zero-padded to a word boundary.
func ParseEnvelope(data []byte) (*TxEnvelope, error) {
	if len(data) < 2*WordSize {
		return nil, fmt.Errorf("%w: envelope too short (%d bytes)", ErrMalformedPayload, len(data))
	}
	payloadLen, err := wordToUint64(data[:WordSize])
	if err != nil {
		return nil, fmt.Errorf("%w: payload length: %s", ErrMalformedPayload, err)
	}
	tag, err := wordToUint64(data[WordSize : 2*WordSize])
	if err != nil {
		return nil, fmt.Errorf("%w: type tag: %s", ErrMalformedPayload, err)
	}
	if tag > 0xff || !types.TxType(tag).Valid() {
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownTxType, tag)
	}
	body := data[2*WordSize:]
	if uint64(len(body)) < payloadLen {
		return nil, fmt.Errorf("%w: payload length %d exceeds data size %d", ErrMalformedPayload, payloadLen, len(body))
	}
	return &TxEnvelope{
		Type:    types.TxType(tag),
		Payload: body[:payloadLen],
	}, nil
}

// ParseEntityID extracts the fixed-width 16-byte identifier carried by a
// lifecycle notification (StakeholderCreated and friends). The id occupies
// the first 16 bytes of the data, left-aligned within a word.
func ParseEntityID(data []byte) (uuid.UUID, error) {
	if len(data) < 16 {
		return uuid.Nil, fmt.Errorf("%w: entity id too short (%d bytes)", ErrMalformedPayload, len(data))
	}
	id, err := uuid.FromBytes(data[:16])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrMalformedPayload, err)
	}
	return id, nil
}
