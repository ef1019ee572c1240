// Package packet implements the packet polymorphism model (spec §4.2–§4.7):
// a closed set of discriminated message variants, each with a stable
// network ID, a direction, and a matching decode/encode pair, plus the
// registry and handler dispatch contract every variant participates in.
package packet

import "bedrockwire/protocol"

// Direction constrains which peer is allowed to originate a packet.
type Direction int

const (
	DirectionClientBound Direction = iota
	DirectionServerBound
	DirectionBidirectional
)

// Packet is the contract every variant satisfies (spec §4.2). The packet
// framework consumes the outer Header before calling Decode — Decode and
// Encode only ever see/produce the payload bytes.
type Packet interface {
	// ID returns the variant's stable NETWORK_ID.
	ID() uint32
	// Direction reports which peer(s) may send this variant.
	Direction() Direction
	// Decode populates the packet's fields from io. It is the mirror image
	// of Encode: spec Invariant V7 requires both to agree on the byte
	// grammar.
	Decode(io *protocol.IO) error
	// Encode emits the bytes Decode would consume.
	Encode(io *protocol.IO) error
	// Handle dispatches to the one Handler method matching this packet's
	// type and reports whether the handler claimed it.
	Handle(h Handler) (bool, error)
}

// Header is the common framing consumed ahead of every packet's payload
// (spec §6.2): a varint-encoded network ID folding in the sender/receiver
// sub-IDs used by some protocol generations.
type Header struct {
	NetworkID     uint32
	SenderSubID   uint8
	ReceiverSubID uint8
}

const (
	headerIDMask       = 0x3ff
	senderSubIDShift   = 10
	receiverSubIDShift = 12
	subIDMask          = 0x3
)

// Decode reads a packed header value (networkId | senderSubId<<10 |
// receiverSubId<<12) from a single unsigned varint.
func (h *Header) Decode(io *protocol.IO) error {
	raw, err := io.GetUnsignedVarInt()
	if err != nil {
		return err
	}
	h.NetworkID = raw & headerIDMask
	h.SenderSubID = uint8((raw >> senderSubIDShift) & subIDMask)
	h.ReceiverSubID = uint8((raw >> receiverSubIDShift) & subIDMask)
	return nil
}

// Encode emits the same packed representation Decode consumes.
func (h *Header) Encode(io *protocol.IO) error {
	raw := h.NetworkID&headerIDMask |
		uint32(h.SenderSubID&subIDMask)<<senderSubIDShift |
		uint32(h.ReceiverSubID&subIDMask)<<receiverSubIDShift
	io.PutUnsignedVarInt(raw)
	return nil
}
