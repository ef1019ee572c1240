package packet

// Handler provides one method per registered packet variant (spec §6.3).
// A method returns (false, nil) to signal "not consumed by this handler" —
// the caller may offer the packet to the next handler in a chain — and a
// non-nil error to signal a protocol violation. BaseHandler gives every
// method a (false, nil) default so implementations only override the
// variants they care about.
type Handler interface {
	HandleSetSpawnPosition(p *SetSpawnPositionPacket) (bool, error)
	HandleAvailableCommands(p *AvailableCommandsPacket) (bool, error)
	HandleItemStackRequest(p *ItemStackRequestPacket) (bool, error)
	HandlePlayerList(p *PlayerListPacket) (bool, error)
	HandleDisconnect(p *DisconnectPacket) (bool, error)
	HandleText(p *TextPacket) (bool, error)
	HandleSetTitle(p *SetTitlePacket) (bool, error)
}

// BaseHandler is embeddable by handler implementations that only need to
// override a handful of methods; every method reports "not consumed".
type BaseHandler struct{}

func (BaseHandler) HandleSetSpawnPosition(*SetSpawnPositionPacket) (bool, error) { return false, nil }
func (BaseHandler) HandleAvailableCommands(*AvailableCommandsPacket) (bool, error) {
	return false, nil
}
func (BaseHandler) HandleItemStackRequest(*ItemStackRequestPacket) (bool, error) { return false, nil }
func (BaseHandler) HandlePlayerList(*PlayerListPacket) (bool, error)             { return false, nil }
func (BaseHandler) HandleDisconnect(*DisconnectPacket) (bool, error)             { return false, nil }
func (BaseHandler) HandleText(*TextPacket) (bool, error)                         { return false, nil }
func (BaseHandler) HandleSetTitle(*SetTitlePacket) (bool, error)                 { return false, nil }
