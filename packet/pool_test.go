package packet

import (
	"errors"
	"testing"

	"bedrockwire/protocol"
)

func TestPoolRoundTripsEveryRegisteredVariant(t *testing.T) {
	pool := NewPool()
	pkts := []Packet{
		NewSetSpawnPositionWorldSpawn(protocol.BlockPosition{X: 1, Y: 2, Z: 3}, 0),
		&AvailableCommandsPacket{},
		&ItemStackRequestPacket{},
		NewPlayerListRemove(nil),
		&DisconnectPacket{HideDisconnectScreen: true},
		&TextPacket{Type: TextTypeSystem, SourceName: "s", Message: "m"},
		&SetTitlePacket{Action: SetTitleClear},
	}

	for _, pkt := range pkts {
		w := protocol.NewWriter(protocol.CurrentProtocol)
		if err := EncodePacket(w, pkt); err != nil {
			t.Fatalf("EncodePacket(%T): %v", pkt, err)
		}

		r := protocol.NewReader(w.Bytes(), protocol.CurrentProtocol)
		got, err := pool.DecodePacket(r)
		if err != nil {
			t.Fatalf("DecodePacket(%T): %v", pkt, err)
		}
		if got.ID() != pkt.ID() {
			t.Fatalf("ID mismatch: got %d, want %d", got.ID(), pkt.ID())
		}
		if !r.AtEnd() {
			t.Fatalf("%T: expected cursor at end, %d bytes remaining", pkt, r.Remaining())
		}
	}
}

func TestPoolRejectsUnknownID(t *testing.T) {
	pool := NewPool()
	_, err := pool.New(0xffff)
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
	var de *protocol.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *protocol.DecodeError, got %T", err)
	}
}
