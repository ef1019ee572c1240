package packet

import (
	"testing"

	"bedrockwire/protocol"
)

func TestTextTranslationCarriesParameters(t *testing.T) {
	pkt := &TextPacket{
		Type:       TextTypeTranslation,
		Message:    "%multiplayer.joined",
		Parameters: []string{"Alice"},
	}
	w := protocol.NewWriter(protocol.CurrentProtocol)
	if err := pkt.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	r := protocol.NewReader(w.Bytes(), protocol.CurrentProtocol)
	var got TextPacket
	if err := got.Decode(r); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !r.AtEnd() {
		t.Fatalf("expected cursor at end, %d bytes remaining", r.Remaining())
	}
	if len(got.Parameters) != 1 || got.Parameters[0] != "Alice" || got.SourceName != "" {
		t.Fatalf("unexpected decode result: %+v", got)
	}
}

func TestTextChatCarriesSourceName(t *testing.T) {
	pkt := &TextPacket{Type: TextTypeChat, SourceName: "Alice", Message: "hi"}
	w := protocol.NewWriter(protocol.CurrentProtocol)
	if err := pkt.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	r := protocol.NewReader(w.Bytes(), protocol.CurrentProtocol)
	var got TextPacket
	if err := got.Decode(r); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.SourceName != "Alice" || got.Message != "hi" || len(got.Parameters) != 0 {
		t.Fatalf("unexpected decode result: %+v", got)
	}
}
