package packet

import "testing"

import "bedrockwire/protocol"

func TestDisconnectMessageOmittedWhenScreenHidden(t *testing.T) {
	pkt := &DisconnectPacket{Reason: 3, HideDisconnectScreen: true}
	w := protocol.NewWriter(protocol.CurrentProtocol)
	if err := pkt.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	r := protocol.NewReader(w.Bytes(), protocol.CurrentProtocol)
	var got DisconnectPacket
	if err := got.Decode(r); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !r.AtEnd() {
		t.Fatalf("expected cursor at end, %d bytes remaining", r.Remaining())
	}
	if got.Message != "" || got.Reason != 3 || !got.HideDisconnectScreen {
		t.Fatalf("unexpected decode result: %+v", got)
	}
}

func TestDisconnectMessagePresentWhenScreenShown(t *testing.T) {
	pkt := &DisconnectPacket{Reason: 1, HideDisconnectScreen: false, Message: "kicked"}
	w := protocol.NewWriter(protocol.CurrentProtocol)
	if err := pkt.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	r := protocol.NewReader(w.Bytes(), protocol.CurrentProtocol)
	var got DisconnectPacket
	if err := got.Decode(r); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Message != "kicked" {
		t.Fatalf("message not recovered: %+v", got)
	}
}
