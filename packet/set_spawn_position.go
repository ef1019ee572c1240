package packet

import "bedrockwire/protocol"

// SpawnType distinguishes a player-specific respawn point from the
// world's default spawn.
type SpawnType int32

const (
	SpawnTypePlayer SpawnType = 0
	SpawnTypeWorld  SpawnType = 1
)

// worldSpawnSentinel fills CausingBlockPosition for world-spawn packets,
// matching the original's INT32_MIN placeholder fields.
const worldSpawnSentinel = -2147483648

// SetSpawnPositionPacket is the representative "simple packet" exemplar
// (spec §4.7): a signed-varint spawn type, a block position, and either a
// version-gated dimension + causing block position or a legacy
// spawn-forced bool.
type SetSpawnPositionPacket struct {
	SpawnType            SpawnType
	SpawnPosition        protocol.BlockPosition
	Dimension            int32
	CausingBlockPosition protocol.BlockPosition
	SpawnForced          bool
}

// NewSetSpawnPositionPlayerSpawn builds a player-respawn packet with an
// explicit causing block (the block that triggered the respawn point,
// e.g. a bed or respawn anchor).
func NewSetSpawnPositionPlayerSpawn(spawn protocol.BlockPosition, dimension int32, causingBlock protocol.BlockPosition) *SetSpawnPositionPacket {
	return &SetSpawnPositionPacket{
		SpawnType:            SpawnTypePlayer,
		SpawnPosition:        spawn,
		Dimension:            dimension,
		CausingBlockPosition: causingBlock,
	}
}

// NewSetSpawnPositionWorldSpawn builds a world-spawn packet; its causing
// block position carries no real block and is filled with the INT32_MIN
// sentinel in all three coordinates, matching the original implementation.
func NewSetSpawnPositionWorldSpawn(spawn protocol.BlockPosition, dimension int32) *SetSpawnPositionPacket {
	sentinel := protocol.BlockPosition{X: worldSpawnSentinel, Y: worldSpawnSentinel, Z: worldSpawnSentinel}
	return &SetSpawnPositionPacket{
		SpawnType:            SpawnTypeWorld,
		SpawnPosition:        spawn,
		Dimension:            dimension,
		CausingBlockPosition: sentinel,
	}
}

func (p *SetSpawnPositionPacket) ID() uint32           { return IDSetSpawnPosition }
func (p *SetSpawnPositionPacket) Direction() Direction { return DirectionClientBound }

func (p *SetSpawnPositionPacket) Decode(io *protocol.IO) error {
	st, err := io.GetVarInt()
	if err != nil {
		return err
	}
	p.SpawnType = SpawnType(st)

	if p.SpawnPosition, err = io.GetBlockPosition(); err != nil {
		return err
	}

	if io.ShieldID >= protocol.Proto1_16_0 {
		if p.Dimension, err = io.GetVarInt(); err != nil {
			return err
		}
		if p.CausingBlockPosition, err = io.GetBlockPosition(); err != nil {
			return err
		}
	} else {
		// Per spec §9.6 Open Question 2: the original leaves these
		// indeterminate on older protocols. We zero them explicitly
		// instead of carrying garbage forward.
		p.Dimension = 0
		p.CausingBlockPosition = protocol.BlockPosition{}
		if p.SpawnForced, err = io.GetBool(); err != nil {
			return err
		}
	}
	return nil
}

func (p *SetSpawnPositionPacket) Encode(io *protocol.IO) error {
	io.PutVarInt(int32(p.SpawnType))
	io.PutBlockPosition(p.SpawnPosition)

	if io.ShieldID >= protocol.Proto1_16_0 {
		io.PutVarInt(p.Dimension)
		io.PutBlockPosition(p.CausingBlockPosition)
	} else {
		io.PutBool(p.SpawnForced)
	}
	return nil
}

func (p *SetSpawnPositionPacket) Handle(h Handler) (bool, error) {
	return h.HandleSetSpawnPosition(p)
}
