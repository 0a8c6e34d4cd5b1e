package core

// requests.go – tagged-variant request encoding, mirroring the source
// program's instruction framing: a 1-byte variant discriminant followed
// by the payload fields as little-endian u64s.
//
// Grounded on core/transactions.go's binary.LittleEndian buffer-building
// idiom and original_source/src/instruction.rs's four-variant framing.

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// RequestTag identifies which of the four operations a request encodes.
type RequestTag byte

const (
	TagProvideLiquidity  RequestTag = 0
	TagSwapTokens        RequestTag = 1
	TagWithdrawLiquidity RequestTag = 2
	TagWithdrawFee       RequestTag = 3
)

// Request is a decoded, tagged request. Only the fields relevant to Tag
// are populated; the rest are left at zero.
type Request struct {
	ID      uuid.UUID
	Tag     RequestTag
	XAmount uint64 // ProvideLiquidity
	YAmount uint64 // ProvideLiquidity
	Amount  uint64 // SwapTokens (destination units) or WithdrawLiquidity (LP units)
}

// Encode produces the stable binary framing for r: a 1-byte discriminant
// followed by its payload fields as little-endian u64s, in the field
// order named in the external-interfaces table.
func (r Request) Encode() []byte {
	switch r.Tag {
	case TagProvideLiquidity:
		buf := make([]byte, 1+16)
		buf[0] = byte(r.Tag)
		binary.LittleEndian.PutUint64(buf[1:9], r.XAmount)
		binary.LittleEndian.PutUint64(buf[9:17], r.YAmount)
		return buf
	case TagSwapTokens, TagWithdrawLiquidity:
		buf := make([]byte, 1+8)
		buf[0] = byte(r.Tag)
		binary.LittleEndian.PutUint64(buf[1:9], r.Amount)
		return buf
	case TagWithdrawFee:
		return []byte{byte(r.Tag)}
	default:
		return nil
	}
}

// DecodeRequest parses the framing produced by Request.Encode. The
// returned Request carries a freshly generated correlation id for
// logging/tracing purposes; it is not part of the wire format.
func DecodeRequest(payload []byte) (Request, error) {
	if len(payload) == 0 {
		return Request{}, fmt.Errorf("request: empty payload")
	}
	tag := RequestTag(payload[0])
	body := payload[1:]
	req := Request{ID: uuid.New(), Tag: tag}

	switch tag {
	case TagProvideLiquidity:
		if len(body) != 16 {
			return Request{}, fmt.Errorf("provide_liquidity: want 16 payload bytes, got %d", len(body))
		}
		req.XAmount = binary.LittleEndian.Uint64(body[0:8])
		req.YAmount = binary.LittleEndian.Uint64(body[8:16])
	case TagSwapTokens, TagWithdrawLiquidity:
		if len(body) != 8 {
			return Request{}, fmt.Errorf("tag %d: want 8 payload bytes, got %d", tag, len(body))
		}
		req.Amount = binary.LittleEndian.Uint64(body[0:8])
	case TagWithdrawFee:
		if len(body) != 0 {
			return Request{}, fmt.Errorf("withdraw_fee: want 0 payload bytes, got %d", len(body))
		}
	default:
		return Request{}, fmt.Errorf("unknown request tag %d", tag)
	}
	return req, nil
}

// DeriveSwapDirection recovers which vault pair a swap names as "from"
// and "to", matching the source's account-driven direction selection
// rather than trusting a client-supplied flag (see open question 4): the
// direction is whichever pairing of the pool's own vault addresses
// equals the request's named (from, to) accounts.
func DeriveSwapDirection(cfg PoolConfig, from, to Address) (SwapDirection, error) {
	switch {
	case from == cfg.VaultX && to == cfg.VaultY:
		return SwapXForY, nil
	case from == cfg.VaultY && to == cfg.VaultX:
		return SwapYForX, nil
	default:
		return 0, ErrWrongWithdraw
	}
}
