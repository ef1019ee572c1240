// Package protocol implements the byte-level substrate shared by every
// Bedrock Edition packet codec: a bounds-checked cursor, the LEB128 varint
// and fixed-width primitive helpers, and the protocol-version-aware
// structured helpers (block position, UUID, skin, actor ID) that packet
// codecs in the sibling packet package build on.
package protocol

import (
	"encoding/binary"
	"math"
)

// IO is a single-use, single-direction byte cursor. A reading IO wraps a
// borrowed slice and never grows it; a writing IO owns a growable buffer.
// Both carry the protocol version (ShieldID) that every version-gated
// helper branches on. An IO is not safe for concurrent use — it is a
// unique resource for the lifetime of one packet encode or decode.
type IO struct {
	buf      []byte
	off      int
	writing  bool
	ShieldID int32
}

// NewReader wraps data for decoding against the given protocol version.
func NewReader(data []byte, shieldID int32) *IO {
	return &IO{buf: data, writing: false, ShieldID: shieldID}
}

// NewWriter creates an empty growable buffer for encoding against the
// given protocol version.
func NewWriter(shieldID int32) *IO {
	return &IO{buf: make([]byte, 0, 64), writing: true, ShieldID: shieldID}
}

// Bytes returns the accumulated output of a writing IO.
func (io *IO) Bytes() []byte { return io.buf }

// Offset returns the current read offset (or bytes written so far).
func (io *IO) Offset() int { return io.off }

// Remaining reports how many unread bytes are left in a reading IO.
func (io *IO) Remaining() int { return len(io.buf) - io.off }

// AtEnd reports whether a reading IO has consumed the entire window —
// callers use this to enforce Invariant P3 (no trailing bytes).
func (io *IO) AtEnd() bool { return io.off == len(io.buf) }

func (io *IO) need(op string, n int) error {
	if io.off+n > len(io.buf) {
		return newBoundsError(op, n, len(io.buf)-io.off, io.off)
	}
	return nil
}

func (io *IO) grow(n int) []byte {
	io.buf = append(io.buf, make([]byte, n)...)
	dst := io.buf[io.off : io.off+n]
	io.off += n
	return dst
}

// Byte / Bool

func (io *IO) GetByte() (byte, error) {
	if err := io.need("getByte", 1); err != nil {
		return 0, err
	}
	b := io.buf[io.off]
	io.off++
	return b, nil
}

func (io *IO) PutByte(b byte) {
	io.grow(1)[0] = b
}

func (io *IO) GetBool() (bool, error) {
	b, err := io.GetByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (io *IO) PutBool(v bool) {
	if v {
		io.PutByte(1)
	} else {
		io.PutByte(0)
	}
}

// Fixed-width little-endian integers

func (io *IO) GetLInt() (int32, error) {
	if err := io.need("getLInt", 4); err != nil {
		return 0, err
	}
	v := int32(binary.LittleEndian.Uint32(io.buf[io.off:]))
	io.off += 4
	return v, nil
}

func (io *IO) PutLInt(v int32) {
	binary.LittleEndian.PutUint32(io.grow(4), uint32(v))
}

// GetLInt4 / PutLInt4 are the unsigned counterpart of GetLInt/PutLInt, used
// by wire fields specified as a plain 32-bit little-endian word rather than
// a signed integer (e.g. the command-parameter type bitfield).
func (io *IO) GetLInt4() (uint32, error) {
	if err := io.need("getLInt4", 4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(io.buf[io.off:])
	io.off += 4
	return v, nil
}

func (io *IO) PutLInt4(v uint32) {
	binary.LittleEndian.PutUint32(io.grow(4), v)
}

func (io *IO) GetLShort() (uint16, error) {
	if err := io.need("getLShort", 2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(io.buf[io.off:])
	io.off += 2
	return v, nil
}

func (io *IO) PutLShort(v uint16) {
	binary.LittleEndian.PutUint16(io.grow(2), v)
}

func (io *IO) GetLFloat() (float32, error) {
	if err := io.need("getLFloat", 4); err != nil {
		return 0, err
	}
	v := math.Float32frombits(binary.LittleEndian.Uint32(io.buf[io.off:]))
	io.off += 4
	return v, nil
}

func (io *IO) PutLFloat(v float32) {
	binary.LittleEndian.PutUint32(io.grow(4), math.Float32bits(v))
}

func (io *IO) GetLLong() (int64, error) {
	if err := io.need("getLLong", 8); err != nil {
		return 0, err
	}
	v := int64(binary.LittleEndian.Uint64(io.buf[io.off:]))
	io.off += 8
	return v, nil
}

func (io *IO) PutLLong(v int64) {
	binary.LittleEndian.PutUint64(io.grow(8), uint64(v))
}

// Unsigned LEB128 varint, capped at 5 groups (u32 range).

const maxVarintGroups = 5

func (io *IO) GetUnsignedVarInt() (uint32, error) {
	var v uint32
	for i := 0; i < maxVarintGroups; i++ {
		b, err := io.GetByte()
		if err != nil {
			return 0, err
		}
		v |= uint32(b&0x7f) << (7 * uint(i))
		if b&0x80 == 0 {
			return v, nil
		}
	}
	return 0, newBoundsError("getUnsignedVarInt", maxVarintGroups, maxVarintGroups, io.off)
}

func (io *IO) PutUnsignedVarInt(v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			io.PutByte(b | 0x80)
		} else {
			io.PutByte(b)
			return
		}
	}
}

// Signed LEB128+zigzag varint.

func zigzagEncode32(n int32) uint32 {
	return uint32((n << 1) ^ (n >> 31))
}

func zigzagDecode32(n uint32) int32 {
	return int32(n>>1) ^ -int32(n&1)
}

func (io *IO) GetVarInt() (int32, error) {
	v, err := io.GetUnsignedVarInt()
	if err != nil {
		return 0, err
	}
	return zigzagDecode32(v), nil
}

func (io *IO) PutVarInt(v int32) {
	io.PutUnsignedVarInt(zigzagEncode32(v))
}

// 64-bit variants, used by actor unique IDs and other wide fields.

func (io *IO) GetUnsignedVarLong() (uint64, error) {
	var v uint64
	for i := 0; i < 10; i++ {
		b, err := io.GetByte()
		if err != nil {
			return 0, err
		}
		v |= uint64(b&0x7f) << (7 * uint(i))
		if b&0x80 == 0 {
			return v, nil
		}
	}
	return 0, newBoundsError("getUnsignedVarLong", 10, 10, io.off)
}

func (io *IO) PutUnsignedVarLong(v uint64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			io.PutByte(b | 0x80)
		} else {
			io.PutByte(b)
			return
		}
	}
}

func zigzagEncode64(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

func zigzagDecode64(n uint64) int64 {
	return int64(n>>1) ^ -int64(n&1)
}

func (io *IO) GetVarLong() (int64, error) {
	v, err := io.GetUnsignedVarLong()
	if err != nil {
		return 0, err
	}
	return zigzagDecode64(v), nil
}

func (io *IO) PutVarLong(v int64) {
	io.PutUnsignedVarLong(zigzagEncode64(v))
}

// Strings: unsigned varint length prefix, then raw UTF-8 bytes.

func (io *IO) GetString() (string, error) {
	n, err := io.GetUnsignedVarInt()
	if err != nil {
		return "", err
	}
	if err := io.need("getString", int(n)); err != nil {
		return "", err
	}
	s := string(io.buf[io.off : io.off+int(n)])
	io.off += int(n)
	return s, nil
}

func (io *IO) PutString(s string) {
	io.PutUnsignedVarInt(uint32(len(s)))
	copy(io.grow(len(s)), s)
}

// Raw byte slices with a varint length prefix (used by skins, filter
// blobs, and other opaque payloads).

func (io *IO) GetByteSlice() ([]byte, error) {
	n, err := io.GetUnsignedVarInt()
	if err != nil {
		return nil, err
	}
	if err := io.need("getByteSlice", int(n)); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, io.buf[io.off:io.off+int(n)])
	io.off += int(n)
	return out, nil
}

func (io *IO) PutByteSlice(b []byte) {
	io.PutUnsignedVarInt(uint32(len(b)))
	copy(io.grow(len(b)), b)
}
