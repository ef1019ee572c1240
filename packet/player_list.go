package packet

import (
	uuid "github.com/satori/go.uuid"

	"bedrockwire/protocol"
)

// PlayerListActionType is the single type byte distinguishing an add batch
// from a remove batch (spec §4.6).
type PlayerListActionType uint8

const (
	PlayerListAdd    PlayerListActionType = 0
	PlayerListRemove PlayerListActionType = 1
)

// PlayerListEntry is one record in a PlayerListPacket. Fields beyond UUID
// are only meaningful when the owning packet's Action is PlayerListAdd.
type PlayerListEntry struct {
	UUID           uuid.UUID
	ActorUniqueID  int64
	Username       string
	XboxUserID     string
	PlatformChatID string
	BuildPlatform  int32
	Skin           protocol.SkinData
	IsTeacher      bool
	IsHost         bool

	// Verified reflects the trailing positional verified-flag band
	// (proto >= 1.14.60, Action == PlayerListAdd only); see spec §9.6.
	Verified bool
}

// PlayerListPacket implements spec §4.6's ADD/REMOVE codec, including the
// legacy skin reconstruction and the positional trailing verified-flag
// band.
type PlayerListPacket struct {
	Action  PlayerListActionType
	Entries []PlayerListEntry
}

// NewPlayerListAdd builds an ADD batch from fully-populated entries.
func NewPlayerListAdd(entries []PlayerListEntry) *PlayerListPacket {
	return &PlayerListPacket{Action: PlayerListAdd, Entries: entries}
}

// NewPlayerListRemove builds a REMOVE batch; only the UUID field of each
// entry is meaningful.
func NewPlayerListRemove(ids []uuid.UUID) *PlayerListPacket {
	entries := make([]PlayerListEntry, len(ids))
	for i, id := range ids {
		entries[i] = PlayerListEntry{UUID: id}
	}
	return &PlayerListPacket{Action: PlayerListRemove, Entries: entries}
}

func (p *PlayerListPacket) ID() uint32           { return IDPlayerList }
func (p *PlayerListPacket) Direction() Direction { return DirectionClientBound }

func (p *PlayerListPacket) Decode(io *protocol.IO) error {
	b, err := io.GetByte()
	if err != nil {
		return err
	}
	p.Action = PlayerListActionType(b)

	count, err := io.GetUnsignedVarInt()
	if err != nil {
		return err
	}
	p.Entries = make([]PlayerListEntry, count)

	for i := range p.Entries {
		e := &p.Entries[i]
		if e.UUID, err = io.GetUUID(); err != nil {
			return err
		}
		if p.Action == PlayerListRemove {
			continue
		}

		if e.ActorUniqueID, err = io.GetActorUniqueID(); err != nil {
			return err
		}
		if e.Username, err = io.GetString(); err != nil {
			return err
		}

		if io.ShieldID >= protocol.Proto1_13_0 {
			if e.XboxUserID, err = io.GetString(); err != nil {
				return err
			}
			if e.PlatformChatID, err = io.GetString(); err != nil {
				return err
			}
			if e.BuildPlatform, err = io.GetLInt(); err != nil {
				return err
			}
			if e.Skin, err = io.GetSkin(); err != nil {
				return err
			}
			if e.IsTeacher, err = io.GetBool(); err != nil {
				return err
			}
			if e.IsHost, err = io.GetBool(); err != nil {
				return err
			}
		} else {
			legacy, err := io.GetLegacySkin()
			if err != nil {
				return err
			}
			e.Skin = protocol.SkinFromLegacy(legacy)
			if e.XboxUserID, err = io.GetString(); err != nil {
				return err
			}
			if e.PlatformChatID, err = io.GetString(); err != nil {
				return err
			}
		}
	}

	// Trailing verified-flag band: positional, re-iterates the entries in
	// decode order (spec §9.6).
	if p.Action == PlayerListAdd && io.ShieldID >= protocol.Proto1_14_60 {
		for i := range p.Entries {
			if p.Entries[i].Verified, err = io.GetBool(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *PlayerListPacket) Encode(io *protocol.IO) error {
	io.PutByte(byte(p.Action))
	io.PutUnsignedVarInt(uint32(len(p.Entries)))

	for _, e := range p.Entries {
		io.PutUUID(e.UUID)
		if p.Action == PlayerListRemove {
			continue
		}

		io.PutActorUniqueID(e.ActorUniqueID)
		io.PutString(e.Username)

		if io.ShieldID >= protocol.Proto1_13_0 {
			io.PutString(e.XboxUserID)
			io.PutString(e.PlatformChatID)
			io.PutLInt(e.BuildPlatform)
			io.PutSkin(e.Skin)
			io.PutBool(e.IsTeacher)
			io.PutBool(e.IsHost)
		} else {
			io.PutLegacySkin(protocol.LegacySkin{
				SkinID:       e.Skin.SkinID,
				SkinPixels:   e.Skin.SkinImage.Data,
				CapePixels:   e.Skin.CapeImage.Data,
				GeometryName: e.Skin.SkinID,
				GeometryJSON: string(e.Skin.Geometry),
			})
			io.PutString(e.XboxUserID)
			io.PutString(e.PlatformChatID)
		}
	}

	if p.Action == PlayerListAdd && io.ShieldID >= protocol.Proto1_14_60 {
		for _, e := range p.Entries {
			io.PutBool(e.Verified)
		}
	}
	return nil
}

func (p *PlayerListPacket) Handle(h Handler) (bool, error) {
	return h.HandlePlayerList(p)
}
