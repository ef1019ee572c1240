package packet

import (
	"bytes"
	"testing"

	"bedrockwire/protocol"
)

func TestSetSpawnPositionWorldSpawnMatchesScenarioS1(t *testing.T) {
	pkt := NewSetSpawnPositionWorldSpawn(protocol.BlockPosition{X: 10, Y: 64, Z: -20}, 0)

	w := protocol.NewWriter(protocol.Proto1_16_0)
	if err := pkt.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := []byte{0x02, 0x14, 0x80, 0x01, 0x27, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0x0F, 0xFF, 0xFF, 0xFF, 0xFF, 0x0F, 0xFF, 0xFF, 0xFF, 0xFF, 0x0F}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("got % x, want % x", w.Bytes(), want)
	}

	r := protocol.NewReader(w.Bytes(), protocol.Proto1_16_0)
	var got SetSpawnPositionPacket
	if err := got.Decode(r); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.SpawnType != SpawnTypeWorld || got.SpawnPosition != pkt.SpawnPosition {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSetSpawnPositionLegacyProtocolUsesSpawnForcedBool(t *testing.T) {
	pkt := NewSetSpawnPositionPlayerSpawn(protocol.BlockPosition{X: 1, Y: 2, Z: 3}, 0, protocol.BlockPosition{})
	pkt.SpawnForced = true

	w := protocol.NewWriter(protocol.Proto1_14)
	if err := pkt.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	r := protocol.NewReader(w.Bytes(), protocol.Proto1_14)
	var got SetSpawnPositionPacket
	if err := got.Decode(r); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.SpawnForced {
		t.Fatalf("expected SpawnForced to survive round trip on legacy protocol")
	}
	if got.Dimension != 0 || got.CausingBlockPosition != (protocol.BlockPosition{}) {
		t.Fatalf("expected dimension/causing block zeroed on legacy protocol, got %+v", got)
	}
	if !r.AtEnd() {
		t.Fatalf("expected cursor at end, %d bytes remaining", r.Remaining())
	}
}
