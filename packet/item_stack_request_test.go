package packet

import (
	"testing"

	"bedrockwire/protocol"
)

func TestLabTableCombineRenumbersToPlaceIntoBundleTagOnOldProtocol(t *testing.T) {
	const oldProto = 445 // 1.17.0, < Proto1_18_10

	w := protocol.NewWriter(oldProto)
	pkt := &ItemStackRequestPacket{
		RequestID: 1,
		Actions:   []StackRequestAction{{Type: ActionLabTableCombine}},
	}
	if err := pkt.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// RequestID (zigzag 1 = 0x02), action count (1), then the wire tag byte.
	raw := w.Bytes()
	wireTag := raw[2]
	if wireTag != byte(ActionPlaceIntoBundle) {
		t.Fatalf("wire tag = %d, want %d (ActionPlaceIntoBundle)", wireTag, ActionPlaceIntoBundle)
	}

	r := protocol.NewReader(raw, oldProto)
	var got ItemStackRequestPacket
	if err := got.Decode(r); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Actions) != 1 || got.Actions[0].Type != ActionLabTableCombine {
		t.Fatalf("round trip did not recover ActionLabTableCombine: %+v", got.Actions)
	}
}

func TestPlaceIntoBundleRejectedOnOldProtocol(t *testing.T) {
	const oldProto = 445
	w := protocol.NewWriter(oldProto)
	pkt := &ItemStackRequestPacket{Actions: []StackRequestAction{{Type: ActionPlaceIntoBundle}}}
	if err := pkt.Encode(w); err == nil {
		t.Fatal("expected encode error for ActionPlaceIntoBundle below protocol 1.18.10")
	}
}

func TestItemStackRequestTakeRoundTrip(t *testing.T) {
	w := protocol.NewWriter(protocol.CurrentProtocol)
	pkt := &ItemStackRequestPacket{
		RequestID: 42,
		Actions: []StackRequestAction{
			{
				Type:        ActionTake,
				Count:       3,
				Source:      protocol.StackRequestSlotInfo{ContainerID: 1, Slot: 2, StackNetworkID: 7},
				Destination: protocol.StackRequestSlotInfo{ContainerID: 1, Slot: 5, StackNetworkID: 0},
			},
		},
		FilterStrings:     []string{"hello"},
		FilterStringCause: 9,
	}
	if err := pkt.Encode(w); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	r := protocol.NewReader(w.Bytes(), protocol.CurrentProtocol)
	var got ItemStackRequestPacket
	if err := got.Decode(r); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !r.AtEnd() {
		t.Fatalf("expected cursor at end, %d bytes remaining", r.Remaining())
	}
	if got.RequestID != pkt.RequestID || len(got.Actions) != 1 || got.Actions[0] != pkt.Actions[0] {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.FilterStrings) != 1 || got.FilterStrings[0] != "hello" || got.FilterStringCause != 9 {
		t.Fatalf("filter fields mismatch: %+v", got)
	}
}
