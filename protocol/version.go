package protocol

// Protocol version numbers gate every "Additive", "Reshaping", and "ID
// remapping" branch in the codec (see spec §4.3). Each constant names the
// game release that first carries the behavior change; comparisons are
// always `io.ShieldID >= protocol.ProtoX`.
const (
	Proto1_13_0   int32 = 361
	Proto1_14     int32 = 389
	Proto1_14_60  int32 = 422
	Proto1_16_0   int32 = 428
	Proto1_16_200 int32 = 440
	Proto1_17_10  int32 = 448
	Proto1_18_10  int32 = 475
	Proto1_19_50  int32 = 554

	// CurrentProtocol is the newest protocol version this codec knows
	// about; canonical basic-type and action-tag numbering match it.
	CurrentProtocol = Proto1_19_50
)
