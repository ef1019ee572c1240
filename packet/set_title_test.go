package packet

import (
	"testing"

	"bedrockwire/protocol"
)

func TestSetTitleFontSizeOnlyOnNewProtocol(t *testing.T) {
	pkt := &SetTitlePacket{Action: SetTitleSetTitle, Text: "Welcome", FontSize: 1.5}

	w := protocol.NewWriter(protocol.Proto1_19_50)
	if err := pkt.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	r := protocol.NewReader(w.Bytes(), protocol.Proto1_19_50)
	var got SetTitlePacket
	if err := got.Decode(r); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !r.AtEnd() {
		t.Fatalf("expected cursor at end, %d bytes remaining", r.Remaining())
	}
	if got.FontSize != 1.5 {
		t.Fatalf("expected font size to survive round trip, got %v", got.FontSize)
	}

	w2 := protocol.NewWriter(protocol.Proto1_18_10)
	if err := pkt.Encode(w2); err != nil {
		t.Fatalf("Encode (old proto): %v", err)
	}
	r2 := protocol.NewReader(w2.Bytes(), protocol.Proto1_18_10)
	var got2 SetTitlePacket
	if err := got2.Decode(r2); err != nil {
		t.Fatalf("Decode (old proto): %v", err)
	}
	if !r2.AtEnd() {
		t.Fatalf("old protocol: expected cursor at end, %d bytes remaining", r2.Remaining())
	}
	if got2.FontSize != 0 {
		t.Fatalf("expected font size zeroed on old protocol, got %v", got2.FontSize)
	}
}
