package protocol

// StackRequestSlotInfo identifies one inventory slot a stack-request action
// operates on: which logical container, which slot index within it, and
// the network ID of the stack the client believes currently occupies it
// (used by the server to detect stale/conflicting requests).
type StackRequestSlotInfo struct {
	ContainerID    int8
	Slot           uint8
	StackNetworkID int32
}

func GetStackRequestSlotInfo(io *IO) (StackRequestSlotInfo, error) {
	var s StackRequestSlotInfo
	b, err := io.GetByte()
	if err != nil {
		return s, err
	}
	s.ContainerID = int8(b)
	if s.Slot, err = io.GetByte(); err != nil {
		return s, err
	}
	id, err := io.GetVarInt()
	if err != nil {
		return s, err
	}
	s.StackNetworkID = id
	return s, nil
}

func PutStackRequestSlotInfo(io *IO, s StackRequestSlotInfo) {
	io.PutByte(byte(s.ContainerID))
	io.PutByte(s.Slot)
	io.PutVarInt(s.StackNetworkID)
}
