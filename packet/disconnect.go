package packet

import "bedrockwire/protocol"

// DisconnectPacket demonstrates the "field present only if a prior field
// says so" shape: Message is only written/read when HideDisconnectScreen
// is false.
type DisconnectPacket struct {
	Reason               int32
	HideDisconnectScreen bool
	Message              string
}

func (p *DisconnectPacket) ID() uint32           { return IDDisconnect }
func (p *DisconnectPacket) Direction() Direction { return DirectionClientBound }

func (p *DisconnectPacket) Decode(io *protocol.IO) error {
	var err error
	if p.Reason, err = io.GetVarInt(); err != nil {
		return err
	}
	if p.HideDisconnectScreen, err = io.GetBool(); err != nil {
		return err
	}
	if !p.HideDisconnectScreen {
		if p.Message, err = io.GetString(); err != nil {
			return err
		}
	} else {
		p.Message = ""
	}
	return nil
}

func (p *DisconnectPacket) Encode(io *protocol.IO) error {
	io.PutVarInt(p.Reason)
	io.PutBool(p.HideDisconnectScreen)
	if !p.HideDisconnectScreen {
		io.PutString(p.Message)
	}
	return nil
}

func (p *DisconnectPacket) Handle(h Handler) (bool, error) {
	return h.HandleDisconnect(p)
}
