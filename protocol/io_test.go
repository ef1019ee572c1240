package protocol

import (
	"bytes"
	"errors"
	"testing"

	uuid "github.com/satori/go.uuid"
)

func TestVarIntRoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 64, -64, 2147483647, -2147483648, 10, -20}
	w := NewWriter(CurrentProtocol)
	for _, v := range values {
		w.PutVarInt(v)
	}
	r := NewReader(w.Bytes(), CurrentProtocol)
	for _, want := range values {
		got, err := r.GetVarInt()
		if err != nil {
			t.Fatalf("GetVarInt: %v", err)
		}
		if got != want {
			t.Fatalf("got %d, want %d", got, want)
		}
	}
	if !r.AtEnd() {
		t.Fatalf("expected cursor at end, %d bytes remaining", r.Remaining())
	}
}

func TestScenarioS1SetSpawnPositionBytes(t *testing.T) {
	w := NewWriter(Proto1_16_0)
	w.PutVarInt(1)
	w.PutBlockPosition(BlockPosition{X: 10, Y: 64, Z: -20})
	w.PutVarInt(0)
	w.PutBlockPosition(BlockPosition{X: -2147483648, Y: -2147483648, Z: -2147483648})

	want := []byte{0x02, 0x14, 0x80, 0x01, 0x27, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0x0F, 0xFF, 0xFF, 0xFF, 0xFF, 0x0F, 0xFF, 0xFF, 0xFF, 0xFF, 0x0F}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("got % x, want % x", w.Bytes(), want)
	}
}

func TestUnsignedVarIntOverlong(t *testing.T) {
	// Five continuation bytes with no terminator: over-long encoding.
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x80}
	r := NewReader(data, CurrentProtocol)
	_, err := r.GetUnsignedVarInt()
	if err == nil {
		t.Fatal("expected bounds error for over-long varint")
	}
	var be *BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("expected *BoundsError, got %T", err)
	}
}

func TestStringPrefixSafety(t *testing.T) {
	w := NewWriter(CurrentProtocol)
	w.PutString("hello bedrock")
	full := w.Bytes()
	for n := 1; n < len(full); n++ {
		r := NewReader(full[:n], CurrentProtocol)
		_, err := r.GetString()
		// A short prefix must either fail with a bounds error or (for the
		// length-prefix byte itself) succeed only once enough data exists.
		if err != nil {
			var be *BoundsError
			if !errors.As(err, &be) {
				t.Fatalf("prefix len %d: expected bounds error, got %v", n, err)
			}
		} else {
			t.Fatalf("prefix len %d: decoded a string without enough data", n)
		}
	}
}

func TestUUIDRoundTrip(t *testing.T) {
	w := NewWriter(CurrentProtocol)
	var original [16]byte
	for i := range original {
		original[i] = byte(i * 17)
	}
	id, err := uuid.FromBytes(original[:])
	if err != nil {
		t.Fatalf("build uuid: %v", err)
	}
	w.PutUUID(id)
	r := NewReader(w.Bytes(), CurrentProtocol)
	got, err := r.GetUUID()
	if err != nil {
		t.Fatalf("GetUUID: %v", err)
	}
	if got != id {
		t.Fatalf("got %v, want %v", got, id)
	}
}
