package packet

import (
	"fmt"

	"bedrockwire/protocol"
)

// StackRequestActionType enumerates the closed union of item-stack-request
// actions (spec §4.5.3) using the canonical numbering, which matches
// protocol >= 1.18.10. Older protocols renumber through wireActionTag.
type StackRequestActionType uint8

const (
	ActionTake StackRequestActionType = iota
	ActionPlace
	ActionSwap
	ActionDrop
	ActionDestroy
	ActionCraftingConsumeInput
	ActionCraftingMarkSecondaryResult
	ActionPlaceIntoBundle
	ActionTakeFromBundle
	ActionLabTableCombine
	ActionBeaconPayment
	ActionMineBlock
	ActionCraftRecipe
	ActionCraftRecipeAuto
	ActionCreativeCreate
	ActionCraftRecipeOptional
	ActionGrindstone
	ActionLoom
	ActionDeprecatedCraftingNonImplemented
	ActionDeprecatedCraftingResultsAndReagents
)

// actionPlaceIntoBundle and actionLabTableCombine mark the boundaries of the
// range that has no wire representation on protocols < 1.18.10 (spec §4.5.2).
const (
	actionPlaceIntoBundle = ActionPlaceIntoBundle
	actionLabTableCombine = ActionLabTableCombine
	oldProtocolTagDelta   = int(actionLabTableCombine) - int(actionPlaceIntoBundle)
)

// wireActionTag maps a canonical action tag to the tag actually present on
// the wire for the given protocol. Canonical tags in
// [ActionPlaceIntoBundle, ActionLabTableCombine) have no wire representation
// below 1.18.10 and cannot be encoded there.
func wireActionTag(canonical StackRequestActionType, shieldID int32) (StackRequestActionType, error) {
	if shieldID >= protocol.Proto1_18_10 {
		return canonical, nil
	}
	if canonical >= actionPlaceIntoBundle && canonical < actionLabTableCombine {
		return 0, protocol.NewEncodeError("wireActionTag", fmt.Errorf("action %d has no wire representation below protocol 1.18.10", canonical))
	}
	if canonical >= actionLabTableCombine {
		return canonical - StackRequestActionType(oldProtocolTagDelta), nil
	}
	return canonical, nil
}

// wireToCanonicalTag is the decode-side inverse of wireActionTag.
func wireToCanonicalTag(wire StackRequestActionType, shieldID int32) StackRequestActionType {
	if shieldID >= protocol.Proto1_18_10 {
		return wire
	}
	if wire >= actionPlaceIntoBundle {
		return wire + StackRequestActionType(oldProtocolTagDelta)
	}
	return wire
}

// StackRequestAction is one entry in an ItemStackRequestPacket's action
// list. Only the fields relevant to Type are meaningful; this mirrors the
// source's one-class-per-action hierarchy collapsed into a single struct
// per spec §9.1's tagged-variant guidance, specialized here for the
// codec's actual wire shape rather than a full interface per variant since
// most actions share the same slot-transfer shape.
type StackRequestAction struct {
	Type StackRequestActionType

	// Take, Place, Swap: count + source/destination slots.
	Count       uint8
	Source      protocol.StackRequestSlotInfo
	Destination protocol.StackRequestSlotInfo

	// Drop: count + source slot + randomly-placed flag.
	Randomly bool

	// Destroy, MineBlock, CraftingConsumeInput: count + slot.
	// (reuses Count/Source)

	// CraftRecipe, CraftRecipeAuto, Grindstone, Loom: recipe network ID +
	// times crafted. CraftRecipeOptional: recipe network ID + filter string
	// index. CraftingMarkSecondaryResult: no payload.
	RecipeNetworkID   int32
	TimesCrafted      uint8
	FilterStringIndex int32

	// PlaceIntoBundle, TakeFromBundle: source/destination + count.
	// (reuses Source/Destination/Count)

	// LabTableCombine: no payload.

	// BeaconPayment: primary + secondary effect IDs.
	PrimaryEffect   int32
	SecondaryEffect int32

	// CreativeCreate: creative item network ID.
	CreativeItemNetworkID int32
}

func readSlotTransfer(io *protocol.IO, a *StackRequestAction) error {
	c, err := io.GetByte()
	if err != nil {
		return err
	}
	a.Count = c
	if a.Source, err = protocol.GetStackRequestSlotInfo(io); err != nil {
		return err
	}
	if a.Destination, err = protocol.GetStackRequestSlotInfo(io); err != nil {
		return err
	}
	return nil
}

func writeSlotTransfer(io *protocol.IO, a StackRequestAction) {
	io.PutByte(a.Count)
	protocol.PutStackRequestSlotInfo(io, a.Source)
	protocol.PutStackRequestSlotInfo(io, a.Destination)
}

func readCountedSlot(io *protocol.IO, a *StackRequestAction) error {
	c, err := io.GetByte()
	if err != nil {
		return err
	}
	a.Count = c
	src, err := protocol.GetStackRequestSlotInfo(io)
	if err != nil {
		return err
	}
	a.Source = src
	return nil
}

func writeCountedSlot(io *protocol.IO, a StackRequestAction) {
	io.PutByte(a.Count)
	protocol.PutStackRequestSlotInfo(io, a.Source)
}

func (a *StackRequestAction) decodePayload(io *protocol.IO) error {
	var err error
	switch a.Type {
	case ActionTake, ActionPlace, ActionSwap, ActionPlaceIntoBundle, ActionTakeFromBundle:
		return readSlotTransfer(io, a)
	case ActionDrop:
		if err = readCountedSlot(io, a); err != nil {
			return err
		}
		a.Randomly, err = io.GetBool()
		return err
	case ActionDestroy, ActionMineBlock:
		return readCountedSlot(io, a)
	case ActionCraftingConsumeInput:
		return readCountedSlot(io, a)
	case ActionCraftingMarkSecondaryResult:
		return nil
	case ActionLabTableCombine:
		return nil
	case ActionBeaconPayment:
		if a.PrimaryEffect, err = io.GetVarInt(); err != nil {
			return err
		}
		a.SecondaryEffect, err = io.GetVarInt()
		return err
	case ActionCraftRecipe:
		if a.RecipeNetworkID, err = io.GetVarInt(); err != nil {
			return err
		}
		a.TimesCrafted, err = io.GetByte()
		return err
	case ActionCraftRecipeAuto:
		if a.RecipeNetworkID, err = io.GetVarInt(); err != nil {
			return err
		}
		a.TimesCrafted, err = io.GetByte()
		return err
	case ActionCreativeCreate:
		a.CreativeItemNetworkID, err = io.GetVarInt()
		return err
	case ActionCraftRecipeOptional:
		if a.RecipeNetworkID, err = io.GetVarInt(); err != nil {
			return err
		}
		a.FilterStringIndex, err = io.GetVarInt()
		return err
	case ActionGrindstone, ActionLoom:
		if a.RecipeNetworkID, err = io.GetVarInt(); err != nil {
			return err
		}
		a.TimesCrafted, err = io.GetByte()
		return err
	case ActionDeprecatedCraftingNonImplemented, ActionDeprecatedCraftingResultsAndReagents:
		return nil
	default:
		return protocol.NewDecodeError("StackRequestAction", "unknown action tag")
	}
}

func (a StackRequestAction) encodePayload(io *protocol.IO) {
	switch a.Type {
	case ActionTake, ActionPlace, ActionSwap, ActionPlaceIntoBundle, ActionTakeFromBundle:
		writeSlotTransfer(io, a)
	case ActionDrop:
		writeCountedSlot(io, a)
		io.PutBool(a.Randomly)
	case ActionDestroy, ActionMineBlock, ActionCraftingConsumeInput:
		writeCountedSlot(io, a)
	case ActionCraftingMarkSecondaryResult, ActionLabTableCombine:
	case ActionBeaconPayment:
		io.PutVarInt(a.PrimaryEffect)
		io.PutVarInt(a.SecondaryEffect)
	case ActionCraftRecipe, ActionCraftRecipeAuto, ActionGrindstone, ActionLoom:
		io.PutVarInt(a.RecipeNetworkID)
		io.PutByte(a.TimesCrafted)
	case ActionCreativeCreate:
		io.PutVarInt(a.CreativeItemNetworkID)
	case ActionCraftRecipeOptional:
		io.PutVarInt(a.RecipeNetworkID)
		io.PutVarInt(a.FilterStringIndex)
	case ActionDeprecatedCraftingNonImplemented, ActionDeprecatedCraftingResultsAndReagents:
	}
}

// ItemStackRequestPacket is the discriminated-union action batch described
// in spec §4.5.
type ItemStackRequestPacket struct {
	RequestID         int32
	Actions           []StackRequestAction
	FilterStrings     []string
	FilterStringCause int32
}

func (p *ItemStackRequestPacket) ID() uint32           { return IDItemStackRequest }
func (p *ItemStackRequestPacket) Direction() Direction { return DirectionServerBound }

func (p *ItemStackRequestPacket) Decode(io *protocol.IO) error {
	var err error
	if p.RequestID, err = io.GetVarInt(); err != nil {
		return err
	}

	count, err := io.GetUnsignedVarInt()
	if err != nil {
		return err
	}
	p.Actions = make([]StackRequestAction, 0, count)
	for i := uint32(0); i < count; i++ {
		tagByte, err := io.GetByte()
		if err != nil {
			return err
		}
		wireTag := StackRequestActionType(tagByte)
		a := StackRequestAction{Type: wireToCanonicalTag(wireTag, io.ShieldID)}
		if err := a.decodePayload(io); err != nil {
			return err
		}
		p.Actions = append(p.Actions, a)
	}

	if io.ShieldID >= protocol.Proto1_16_200 {
		fcount, err := io.GetUnsignedVarInt()
		if err != nil {
			return err
		}
		p.FilterStrings = make([]string, 0, fcount)
		for i := uint32(0); i < fcount; i++ {
			s, err := io.GetString()
			if err != nil {
				return err
			}
			p.FilterStrings = append(p.FilterStrings, s)
		}
	}

	if io.ShieldID >= protocol.Proto1_19_50 {
		if p.FilterStringCause, err = io.GetLInt(); err != nil {
			return err
		}
	} else {
		p.FilterStringCause = 0
	}
	return nil
}

func (p *ItemStackRequestPacket) Encode(io *protocol.IO) error {
	io.PutVarInt(p.RequestID)
	io.PutUnsignedVarInt(uint32(len(p.Actions)))
	for _, a := range p.Actions {
		wireTag, err := wireActionTag(a.Type, io.ShieldID)
		if err != nil {
			return err
		}
		io.PutByte(byte(wireTag))
		a.encodePayload(io)
	}

	if io.ShieldID >= protocol.Proto1_16_200 {
		io.PutUnsignedVarInt(uint32(len(p.FilterStrings)))
		for _, s := range p.FilterStrings {
			io.PutString(s)
		}
	}

	if io.ShieldID >= protocol.Proto1_19_50 {
		io.PutLInt(p.FilterStringCause)
	}
	return nil
}

func (p *ItemStackRequestPacket) Handle(h Handler) (bool, error) {
	return h.HandleItemStackRequest(p)
}
