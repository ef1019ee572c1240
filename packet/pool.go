package packet

import (
	"strconv"

	"bedrockwire/protocol"
)

// Network IDs. Stable within a protocol version (spec §3.2); the set of
// variants below is closed (Invariant V4) — decoding an ID outside the
// pool is an error, never a silent drop.
const (
	IDSetSpawnPosition  uint32 = 43
	IDAvailableCommands uint32 = 76
	IDItemStackRequest  uint32 = 147
	IDPlayerList        uint32 = 63
	IDDisconnect        uint32 = 2
	IDText              uint32 = 9
	IDSetTitle          uint32 = 88
)

// Pool maps a network ID to a constructor for the zero-value packet of
// that variant. It is built once and, being immutable thereafter, safe for
// concurrent reads (spec §5) — the only writes are the one-time register
// calls during NewPool.
type Pool struct {
	byID map[uint32]func() Packet
}

func (p *Pool) register(id uint32, ctor func() Packet) {
	if p.byID == nil {
		p.byID = make(map[uint32]func() Packet)
	}
	p.byID[id] = ctor
}

// NewPool builds the registry of every variant this module implements.
func NewPool() *Pool {
	p := &Pool{}
	p.register(IDSetSpawnPosition, func() Packet { return &SetSpawnPositionPacket{} })
	p.register(IDAvailableCommands, func() Packet { return &AvailableCommandsPacket{} })
	p.register(IDItemStackRequest, func() Packet { return &ItemStackRequestPacket{} })
	p.register(IDPlayerList, func() Packet { return &PlayerListPacket{} })
	p.register(IDDisconnect, func() Packet { return &DisconnectPacket{} })
	p.register(IDText, func() Packet { return &TextPacket{} })
	p.register(IDSetTitle, func() Packet { return &SetTitlePacket{} })
	return p
}

// New returns a fresh, zero-value instance of the variant registered under
// id, or a *protocol.DecodeError if id is outside the closed set.
func (p *Pool) New(id uint32) (Packet, error) {
	ctor, ok := p.byID[id]
	if !ok {
		return nil, protocol.NewDecodeError("packet.Pool", unknownIDMessage(id))
	}
	return ctor(), nil
}

func unknownIDMessage(id uint32) string {
	return "unknown packet id " + strconv.Itoa(int(id))
}

// DecodePacket reads a Header, looks up the matching variant, and decodes
// its payload. It does not check for trailing bytes (Invariant P3) — callers
// check io.AtEnd() after DecodePacket returns when the input window is
// exactly one framed packet.
func (p *Pool) DecodePacket(io *protocol.IO) (Packet, error) {
	var h Header
	if err := h.Decode(io); err != nil {
		return nil, err
	}
	pkt, err := p.New(h.NetworkID)
	if err != nil {
		return nil, err
	}
	if err := pkt.Decode(io); err != nil {
		return nil, err
	}
	return pkt, nil
}

// EncodePacket writes the Header for pkt followed by its payload.
func EncodePacket(io *protocol.IO, pkt Packet) error {
	h := Header{NetworkID: pkt.ID()}
	if err := h.Encode(io); err != nil {
		return err
	}
	return pkt.Encode(io)
}
