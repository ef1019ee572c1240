package packet

import "bedrockwire/protocol"

// TextType drives which optional fields TextPacket carries (spec §4.7
// ADDED: "byte-tag fans out optional field sets").
type TextType uint8

const (
	TextTypeRaw         TextType = 0
	TextTypeChat        TextType = 1
	TextTypeTranslation TextType = 2
	TextTypeSystem      TextType = 5
	TextTypeJSONWhisper TextType = 9
)

// TextPacket is a type-tagged POD packet: the chat, system and JSON-whisper
// shapes carry a SourceName before the Message, the translation shape
// carries Parameters after the Message, and every other type carries only
// the Message. Every type ends with XboxUserID and PlatformChatID.
type TextPacket struct {
	Type             TextType
	NeedsTranslation bool
	SourceName       string
	Message          string
	Parameters       []string
	XboxUserID       string
	PlatformChatID   string
}

func (p *TextPacket) ID() uint32           { return IDText }
func (p *TextPacket) Direction() Direction { return DirectionBidirectional }

func (p *TextPacket) Decode(io *protocol.IO) error {
	t, err := io.GetByte()
	if err != nil {
		return err
	}
	p.Type = TextType(t)

	if p.NeedsTranslation, err = io.GetBool(); err != nil {
		return err
	}

	switch p.Type {
	case TextTypeChat, TextTypeSystem:
		if p.SourceName, err = io.GetString(); err != nil {
			return err
		}
		if p.Message, err = io.GetString(); err != nil {
			return err
		}
	case TextTypeTranslation:
		if p.Message, err = io.GetString(); err != nil {
			return err
		}
		n, err := io.GetUnsignedVarInt()
		if err != nil {
			return err
		}
		p.Parameters = make([]string, n)
		for i := range p.Parameters {
			if p.Parameters[i], err = io.GetString(); err != nil {
				return err
			}
		}
	case TextTypeJSONWhisper:
		if p.SourceName, err = io.GetString(); err != nil {
			return err
		}
		if p.Message, err = io.GetString(); err != nil {
			return err
		}
	default:
		if p.Message, err = io.GetString(); err != nil {
			return err
		}
	}

	if p.XboxUserID, err = io.GetString(); err != nil {
		return err
	}
	if p.PlatformChatID, err = io.GetString(); err != nil {
		return err
	}
	return nil
}

func (p *TextPacket) Encode(io *protocol.IO) error {
	io.PutByte(byte(p.Type))
	io.PutBool(p.NeedsTranslation)

	switch p.Type {
	case TextTypeChat, TextTypeSystem:
		io.PutString(p.SourceName)
		io.PutString(p.Message)
	case TextTypeTranslation:
		io.PutString(p.Message)
		io.PutUnsignedVarInt(uint32(len(p.Parameters)))
		for _, param := range p.Parameters {
			io.PutString(param)
		}
	case TextTypeJSONWhisper:
		io.PutString(p.SourceName)
		io.PutString(p.Message)
	default:
		io.PutString(p.Message)
	}

	io.PutString(p.XboxUserID)
	io.PutString(p.PlatformChatID)
	return nil
}

func (p *TextPacket) Handle(h Handler) (bool, error) {
	return h.HandleText(p)
}
