package protocol

import (
	uuid "github.com/satori/go.uuid"
)

// BlockPosition is a voxel coordinate, always written as three signed
// varints on the wire regardless of protocol version.
type BlockPosition struct {
	X, Y, Z int32
}

func (io *IO) GetBlockPosition() (BlockPosition, error) {
	x, err := io.GetVarInt()
	if err != nil {
		return BlockPosition{}, err
	}
	y, err := io.GetVarInt()
	if err != nil {
		return BlockPosition{}, err
	}
	z, err := io.GetVarInt()
	if err != nil {
		return BlockPosition{}, err
	}
	return BlockPosition{X: x, Y: y, Z: z}, nil
}

func (io *IO) PutBlockPosition(p BlockPosition) {
	io.PutVarInt(p.X)
	io.PutVarInt(p.Y)
	io.PutVarInt(p.Z)
}

// ActorUniqueID identifies an in-world actor (player/entity); a signed
// varint on the wire.
func (io *IO) GetActorUniqueID() (int64, error) {
	return io.GetVarLong()
}

func (io *IO) PutActorUniqueID(id int64) {
	io.PutVarLong(id)
}

// GenericTypeNetworkID is the signed-varint request ID used by item stack
// requests and similar correlation fields.
func (io *IO) GetGenericTypeNetworkID() (int32, error) {
	return io.GetVarInt()
}

func (io *IO) PutGenericTypeNetworkID(id int32) {
	io.PutVarInt(id)
}

// UUID is two little-endian u64 halves, most-significant half first.
func (io *IO) GetUUID() (uuid.UUID, error) {
	var b [16]byte
	hi, err := io.GetLLong()
	if err != nil {
		return uuid.UUID{}, err
	}
	lo, err := io.GetLLong()
	if err != nil {
		return uuid.UUID{}, err
	}
	putUint64BE(b[0:8], uint64(hi))
	putUint64BE(b[8:16], uint64(lo))
	return uuid.FromBytes(b[:])
}

func (io *IO) PutUUID(id uuid.UUID) {
	b := id.Bytes()
	io.PutLLong(int64(getUint64BE(b[0:8])))
	io.PutLLong(int64(getUint64BE(b[8:16])))
}

func putUint64BE(dst []byte, v uint64) {
	for i := 0; i < 8; i++ {
		dst[7-i] = byte(v)
		v >>= 8
	}
}

func getUint64BE(src []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(src[i])
	}
	return v
}

// SkinImage is a width/height-tagged RGBA pixel blob.
type SkinImage struct {
	Width, Height uint32
	Data          []byte
}

// SkinData is the canonical in-memory skin representation every protocol
// generation's wire shape is reconstructed into. getSkin always returns a
// complete SkinData — callers never need a post-decode fixup step.
type SkinData struct {
	SkinID            string
	PlayFabID         string
	ResourcePatch     []byte
	SkinImage         SkinImage
	Animations        []SkinAnimation
	CapeImage         SkinImage
	Geometry          []byte
	AnimationData     []byte
	PremiumSkin       bool
	PersonaSkin       bool
	PersonaCapeOnSkin bool
	CapeID            string
	FullSkinID        string
	ArmSize           string
	SkinColor         string
	PersonaPieces     []PersonaPiece
	PieceTintColors   []PersonaPieceTintColor
}

type SkinAnimation struct {
	Image      SkinImage
	Type       int32
	FrameCount float32
	Expression int32
}

type PersonaPiece struct {
	PieceID   string
	PieceType string
	PackID    string
	Default   bool
	ProductID string
}

type PersonaPieceTintColor struct {
	PieceType string
	Colors    [4]string
}

func skinImageFromLegacy(pixels []byte) SkinImage {
	// Legacy skins only ever shipped a handful of fixed raw sizes; the
	// pixel count alone is enough to recover width/height.
	switch len(pixels) {
	case 64 * 32 * 4:
		return SkinImage{Width: 64, Height: 32, Data: pixels}
	case 64 * 64 * 4:
		return SkinImage{Width: 64, Height: 64, Data: pixels}
	case 128 * 128 * 4:
		return SkinImage{Width: 128, Height: 128, Data: pixels}
	default:
		return SkinImage{Width: 0, Height: 0, Data: pixels}
	}
}

func (io *IO) getSkinImage() (SkinImage, error) {
	width, err := io.GetUnsignedVarInt()
	if err != nil {
		return SkinImage{}, err
	}
	height, err := io.GetUnsignedVarInt()
	if err != nil {
		return SkinImage{}, err
	}
	data, err := io.GetByteSlice()
	if err != nil {
		return SkinImage{}, err
	}
	return SkinImage{Width: width, Height: height, Data: data}, nil
}

func (io *IO) putSkinImage(img SkinImage) {
	io.PutUnsignedVarInt(img.Width)
	io.PutUnsignedVarInt(img.Height)
	io.PutByteSlice(img.Data)
}

// GetSkin decodes the protocol-appropriate skin shape and always returns a
// fully reconstructed SkinData.
func (io *IO) GetSkin() (SkinData, error) {
	var skin SkinData
	var err error

	if skin.SkinID, err = io.GetString(); err != nil {
		return skin, err
	}
	if io.ShieldID >= Proto1_19_50 {
		if skin.PlayFabID, err = io.GetString(); err != nil {
			return skin, err
		}
	}
	if skin.ResourcePatch, err = io.GetByteSlice(); err != nil {
		return skin, err
	}
	if skin.SkinImage, err = io.getSkinImage(); err != nil {
		return skin, err
	}

	animCount, err := io.GetUnsignedVarInt()
	if err != nil {
		return skin, err
	}
	skin.Animations = make([]SkinAnimation, animCount)
	for i := range skin.Animations {
		if skin.Animations[i].Image, err = io.getSkinImage(); err != nil {
			return skin, err
		}
		if skin.Animations[i].Type, err = io.GetVarInt(); err != nil {
			return skin, err
		}
		if skin.Animations[i].FrameCount, err = io.GetLFloat(); err != nil {
			return skin, err
		}
		if skin.Animations[i].Expression, err = io.GetVarInt(); err != nil {
			return skin, err
		}
	}

	if skin.CapeImage, err = io.getSkinImage(); err != nil {
		return skin, err
	}
	if skin.Geometry, err = io.GetByteSlice(); err != nil {
		return skin, err
	}
	if skin.AnimationData, err = io.GetByteSlice(); err != nil {
		return skin, err
	}
	if skin.PremiumSkin, err = io.GetBool(); err != nil {
		return skin, err
	}
	if skin.PersonaSkin, err = io.GetBool(); err != nil {
		return skin, err
	}
	if skin.PersonaCapeOnSkin, err = io.GetBool(); err != nil {
		return skin, err
	}
	if skin.CapeID, err = io.GetString(); err != nil {
		return skin, err
	}
	if skin.FullSkinID, err = io.GetString(); err != nil {
		return skin, err
	}
	if skin.ArmSize, err = io.GetString(); err != nil {
		return skin, err
	}
	if skin.SkinColor, err = io.GetString(); err != nil {
		return skin, err
	}

	pieceCount, err := io.GetUnsignedVarInt()
	if err != nil {
		return skin, err
	}
	skin.PersonaPieces = make([]PersonaPiece, pieceCount)
	for i := range skin.PersonaPieces {
		p := &skin.PersonaPieces[i]
		if p.PieceID, err = io.GetString(); err != nil {
			return skin, err
		}
		if p.PieceType, err = io.GetString(); err != nil {
			return skin, err
		}
		if p.PackID, err = io.GetString(); err != nil {
			return skin, err
		}
		if p.Default, err = io.GetBool(); err != nil {
			return skin, err
		}
		if p.ProductID, err = io.GetString(); err != nil {
			return skin, err
		}
	}

	tintCount, err := io.GetUnsignedVarInt()
	if err != nil {
		return skin, err
	}
	skin.PieceTintColors = make([]PersonaPieceTintColor, tintCount)
	for i := range skin.PieceTintColors {
		t := &skin.PieceTintColors[i]
		if t.PieceType, err = io.GetString(); err != nil {
			return skin, err
		}
		for j := range t.Colors {
			if t.Colors[j], err = io.GetString(); err != nil {
				return skin, err
			}
		}
	}

	return skin, nil
}

// PutSkin emits the bytes GetSkin would consume at the same protocol
// version.
func (io *IO) PutSkin(skin SkinData) {
	io.PutString(skin.SkinID)
	if io.ShieldID >= Proto1_19_50 {
		io.PutString(skin.PlayFabID)
	}
	io.PutByteSlice(skin.ResourcePatch)
	io.putSkinImage(skin.SkinImage)

	io.PutUnsignedVarInt(uint32(len(skin.Animations)))
	for _, a := range skin.Animations {
		io.putSkinImage(a.Image)
		io.PutVarInt(a.Type)
		io.PutLFloat(a.FrameCount)
		io.PutVarInt(a.Expression)
	}

	io.putSkinImage(skin.CapeImage)
	io.PutByteSlice(skin.Geometry)
	io.PutByteSlice(skin.AnimationData)
	io.PutBool(skin.PremiumSkin)
	io.PutBool(skin.PersonaSkin)
	io.PutBool(skin.PersonaCapeOnSkin)
	io.PutString(skin.CapeID)
	io.PutString(skin.FullSkinID)
	io.PutString(skin.ArmSize)
	io.PutString(skin.SkinColor)

	io.PutUnsignedVarInt(uint32(len(skin.PersonaPieces)))
	for _, p := range skin.PersonaPieces {
		io.PutString(p.PieceID)
		io.PutString(p.PieceType)
		io.PutString(p.PackID)
		io.PutBool(p.Default)
		io.PutString(p.ProductID)
	}

	io.PutUnsignedVarInt(uint32(len(skin.PieceTintColors)))
	for _, t := range skin.PieceTintColors {
		io.PutString(t.PieceType)
		for _, c := range t.Colors {
			io.PutString(c)
		}
	}
}

// LegacySkin is the pre-1.13.0 wire shape: five raw strings instead of a
// structured SkinData.
type LegacySkin struct {
	SkinID       string
	SkinPixels   []byte
	CapePixels   []byte
	GeometryName string
	GeometryJSON string
}

// GetLegacySkin and PutLegacySkin expose the pre-1.13.0 skin shape
// directly for callers (e.g. the player-list codec) that need to
// reconstruct a SkinData themselves rather than through GetSkin/PutSkin.
func (io *IO) GetLegacySkin() (LegacySkin, error) {
	return io.getLegacySkin()
}

func (io *IO) PutLegacySkin(l LegacySkin) {
	io.putLegacySkin(l)
}

func (io *IO) getLegacySkin() (LegacySkin, error) {
	var l LegacySkin
	var err error
	if l.SkinID, err = io.GetString(); err != nil {
		return l, err
	}
	if l.SkinPixels, err = io.GetByteSlice(); err != nil {
		return l, err
	}
	if l.CapePixels, err = io.GetByteSlice(); err != nil {
		return l, err
	}
	if l.GeometryName, err = io.GetString(); err != nil {
		return l, err
	}
	if l.GeometryJSON, err = io.GetString(); err != nil {
		return l, err
	}
	return l, nil
}

func (io *IO) putLegacySkin(l LegacySkin) {
	io.PutString(l.SkinID)
	io.PutByteSlice(l.SkinPixels)
	io.PutByteSlice(l.CapePixels)
	io.PutString(l.GeometryName)
	io.PutString(l.GeometryJSON)
}

// SkinFromLegacy reconstructs a canonical SkinData from the pre-1.13.0
// wire fields, per spec §4.6: empty resource patch, pixel blobs promoted
// through SkinImage.fromLegacy.
func SkinFromLegacy(l LegacySkin) SkinData {
	return SkinData{
		SkinID:        l.SkinID,
		ResourcePatch: []byte{},
		SkinImage:     skinImageFromLegacy(l.SkinPixels),
		CapeImage:     skinImageFromLegacy(l.CapePixels),
		Geometry:      []byte(l.GeometryJSON),
		ArmSize:       "wide",
		SkinColor:     "",
	}
}
