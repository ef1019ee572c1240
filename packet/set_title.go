package packet

import "bedrockwire/protocol"

// SetTitleAction selects which on-screen title element Text applies to.
type SetTitleAction int32

const (
	SetTitleClear SetTitleAction = iota
	SetTitleReset
	SetTitleSetTitle
	SetTitleSetSubtitle
	SetTitleSetActionBar
	SetTitleSetDurations
	SetTitleSetTitleJSON
	SetTitleSetSubtitleJSON
	SetTitleSetActionBarJSON
)

// SetTitlePacket mirrors §4.3's Additive version semantics on a simple
// packet: the timing fields, XUID and PlatformOnlineID are present on every
// protocol, and the trailing FontSize only from Proto1_19_50.
type SetTitlePacket struct {
	Action           SetTitleAction
	Text             string
	FadeInTime       int32
	StayTime         int32
	FadeOutTime      int32
	XUID             string
	PlatformOnlineID string
	FontSize         float32
}

func (p *SetTitlePacket) ID() uint32           { return IDSetTitle }
func (p *SetTitlePacket) Direction() Direction { return DirectionClientBound }

func (p *SetTitlePacket) Decode(io *protocol.IO) error {
	var err error
	a, err := io.GetVarInt()
	if err != nil {
		return err
	}
	p.Action = SetTitleAction(a)

	if p.Text, err = io.GetString(); err != nil {
		return err
	}
	if p.FadeInTime, err = io.GetVarInt(); err != nil {
		return err
	}
	if p.StayTime, err = io.GetVarInt(); err != nil {
		return err
	}
	if p.FadeOutTime, err = io.GetVarInt(); err != nil {
		return err
	}
	if p.XUID, err = io.GetString(); err != nil {
		return err
	}
	if p.PlatformOnlineID, err = io.GetString(); err != nil {
		return err
	}

	if io.ShieldID >= protocol.Proto1_19_50 {
		if p.FontSize, err = io.GetLFloat(); err != nil {
			return err
		}
	} else {
		p.FontSize = 0
	}
	return nil
}

func (p *SetTitlePacket) Encode(io *protocol.IO) error {
	io.PutVarInt(int32(p.Action))
	io.PutString(p.Text)
	io.PutVarInt(p.FadeInTime)
	io.PutVarInt(p.StayTime)
	io.PutVarInt(p.FadeOutTime)
	io.PutString(p.XUID)
	io.PutString(p.PlatformOnlineID)
	if io.ShieldID >= protocol.Proto1_19_50 {
		io.PutLFloat(p.FontSize)
	}
	return nil
}

func (p *SetTitlePacket) Handle(h Handler) (bool, error) {
	return h.HandleSetTitle(p)
}
