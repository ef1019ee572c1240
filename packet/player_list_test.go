package packet

import (
	"bytes"
	"testing"

	uuid "github.com/satori/go.uuid"

	"bedrockwire/protocol"
)

func TestPlayerListRemoveMatchesScenarioS3(t *testing.T) {
	var raw [16]byte
	copy(raw[:], []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF})
	id, err := uuid.FromBytes(raw[:])
	if err != nil {
		t.Fatalf("build uuid: %v", err)
	}

	pkt := NewPlayerListRemove([]uuid.UUID{id})
	w := protocol.NewWriter(protocol.CurrentProtocol)
	if err := pkt.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// PutUUID writes each 8-byte half little-endian (spec §6.1), so the
	// wire bytes are each half of raw reversed, not raw's own byte order.
	var wireUUID [16]byte
	for i := 0; i < 8; i++ {
		wireUUID[i] = raw[7-i]
		wireUUID[8+i] = raw[15-i]
	}
	want := append([]byte{0x01, 0x01}, wireUUID[:]...)
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("got % x, want % x", w.Bytes(), want)
	}

	r := protocol.NewReader(w.Bytes(), protocol.CurrentProtocol)
	var got PlayerListPacket
	if err := got.Decode(r); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !r.AtEnd() {
		t.Fatalf("expected cursor at end, %d bytes remaining", r.Remaining())
	}
	if len(got.Entries) != 1 || got.Entries[0].UUID != id {
		t.Fatalf("uuid not recovered: %+v", got.Entries)
	}
}

func TestPlayerListAddVerifiedFlagsIndependentAndPositional(t *testing.T) {
	var aliceRaw, bobRaw [16]byte
	for i := range aliceRaw {
		aliceRaw[i] = byte(i)
		bobRaw[i] = byte(i + 1)
	}
	aliceID, err := uuid.FromBytes(aliceRaw[:])
	if err != nil {
		t.Fatalf("build uuid: %v", err)
	}
	bobID, err := uuid.FromBytes(bobRaw[:])
	if err != nil {
		t.Fatalf("build uuid: %v", err)
	}

	entries := []PlayerListEntry{
		{UUID: aliceID, Username: "alice", Skin: protocol.SkinData{ArmSize: "wide"}},
		{UUID: bobID, Username: "bob", Skin: protocol.SkinData{ArmSize: "wide"}},
	}
	pkt := NewPlayerListAdd(entries)

	w := protocol.NewWriter(protocol.Proto1_19_50)
	if err := pkt.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	raw := w.Bytes()

	// Flip only the final trailing byte (second entry's verified flag).
	mutated := append([]byte(nil), raw...)
	mutated[len(mutated)-1] ^= 0x01

	r := protocol.NewReader(mutated, protocol.Proto1_19_50)
	var got PlayerListPacket
	if err := got.Decode(r); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Entries[0].Verified == got.Entries[1].Verified {
		t.Fatalf("expected independent verified flags, got %+v", got.Entries)
	}
}
