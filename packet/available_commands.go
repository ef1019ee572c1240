package packet

import (
	"bedrockwire/protocol"
)

// Basic command-argument type codes, in their canonical (newest-generation)
// numbering (spec §4.4.3). Values not listed in basicTypeRemap fall through
// to the same code on every protocol.
const (
	ArgTypeInt              uint8 = 1
	ArgTypeFloat            uint8 = 3
	ArgTypeValue            uint8 = 4
	ArgTypeWildcardInt      uint8 = 5
	ArgTypeOperator         uint8 = 6
	ArgTypeCompareOperator  uint8 = 7
	ArgTypeTarget           uint8 = 8
	ArgTypeWildcardTarget   uint8 = 10
	ArgTypeFilepath         uint8 = 17
	ArgTypeFullIntegerRange uint8 = 23
	ArgTypeEquipmentSlot    uint8 = 38
	ArgTypeString           uint8 = 39
	ArgTypeIntPosition      uint8 = 47
	ArgTypePosition         uint8 = 51
	ArgTypeMessage          uint8 = 53
	ArgTypeRawtext          uint8 = 56
	ArgTypeJSON             uint8 = 62
	ArgTypeBlockStates      uint8 = 71
	ArgTypeCommand          uint8 = 74
)

// basicTypeRemap translates a canonical basic type code to its on-wire code
// for protocols below the listed threshold (spec §4.4.3). Encoding for a
// protocol at or above CurrentProtocol uses the canonical code unchanged.
type typeRemapEntry struct {
	below  int32
	onWire uint8
}

var basicTypeRemap = map[uint8][]typeRemapEntry{
	ArgTypeInt:              {{protocol.Proto1_19_50, 1}},
	ArgTypeFloat:            {{protocol.Proto1_19_50, 3}},
	ArgTypeValue:            {{protocol.Proto1_19_50, 4}},
	ArgTypeWildcardInt:      {{protocol.Proto1_19_50, 5}},
	ArgTypeOperator:         {{protocol.Proto1_19_50, 6}},
	ArgTypeCompareOperator:  {{protocol.Proto1_19_50, 7}},
	ArgTypeTarget:           {{protocol.Proto1_19_50, 8}},
	ArgTypeWildcardTarget:   {{protocol.Proto1_19_50, 10}},
	ArgTypeFilepath:         {{protocol.Proto1_19_50, 17}},
	ArgTypeFullIntegerRange: {{protocol.Proto1_19_50, 23}},
	ArgTypeEquipmentSlot:    {{protocol.Proto1_19_50, 38}},
	ArgTypeString:           {{protocol.Proto1_19_50, 39}},
	ArgTypeIntPosition:      {{protocol.Proto1_19_50, 47}},
	ArgTypePosition:         {{protocol.Proto1_19_50, 51}},
	ArgTypeMessage:          {{protocol.Proto1_19_50, 53}},
	ArgTypeRawtext:          {{protocol.Proto1_19_50, 56}},
	ArgTypeJSON:             {{protocol.Proto1_19_50, 62}},
	ArgTypeBlockStates:      {{protocol.Proto1_19_50, 71}},
	ArgTypeCommand:          {{protocol.Proto1_19_50, 74}},
}

// wireBasicType applies the version-keyed translation of a canonical basic
// type code on encode only; decode treats the wire code as opaque.
func wireBasicType(canonical uint8, shieldID int32) uint8 {
	entries, ok := basicTypeRemap[canonical]
	if !ok {
		return canonical
	}
	for _, e := range entries {
		if shieldID < e.below {
			return e.onWire
		}
	}
	return canonical
}

// Parameter type bitfield flags (spec §4.4.2).
const (
	paramFlagValid   uint32 = 0x00100000
	paramFlagEnum    uint32 = 0x00200000
	paramFlagPostfix uint32 = 0x01000000
	paramIndexMask   uint32 = 0xffff
)

// hardcodedEnumNames is the fixed allow-list of enum names the server
// populates at runtime (spec §4.4.6); CommandName is the only one in
// common use.
var hardcodedEnumNames = map[string]bool{
	"CommandName": true,
}

// CommandEnum is an interned enum: a name plus an ordered list of distinct
// string values.
type CommandEnum struct {
	Name   string
	Values []string
}

// CommandParameter is a tagged union over {basic type, enum ref, postfix
// ref} per spec §9.2, collapsed to one struct with a discriminant so the
// wire bitfield can be derived mechanically at encode time.
type CommandParameter struct {
	Name     string
	Optional bool
	Flags    uint8

	IsEnum    bool
	IsPostfix bool
	BasicType uint8
	EnumRef   *CommandEnum
	Postfix   string
}

type CommandOverload struct {
	Parameters []CommandParameter
}

type CommandData struct {
	Name        string
	Description string
	Flags       uint16
	Permission  uint8
	Aliases     *CommandEnum
	Overloads   []CommandOverload
}

type CommandEnumConstraint struct {
	Enum               *CommandEnum
	AffectedValueIndex uint32
	ConstraintIDs      []uint8
}

// AvailableCommandsPacket is the command catalog codec (spec §4.4): four
// interned pools (enum values, postfixes, enums, commands) plus soft enums
// and, from 1.13.0, enum constraints.
type AvailableCommandsPacket struct {
	Commands       []CommandData
	SoftEnums      []CommandEnum
	Constraints    []CommandEnumConstraint
	HardcodedEnums []*CommandEnum
}

func (p *AvailableCommandsPacket) ID() uint32           { return IDAvailableCommands }
func (p *AvailableCommandsPacket) Direction() Direction { return DirectionClientBound }

// enumValueIndexWidth returns the byte width used for enum value indices
// given the final value-pool size (spec §4.4.1): both encode and decode
// must derive width from the same final count, never the running count.
func enumValueIndexWidth(poolSize int) int {
	switch {
	case poolSize < 256:
		return 1
	case poolSize < 65536:
		return 2
	default:
		return 4
	}
}

func getEnumValueIndex(io *protocol.IO, width int) (uint32, error) {
	switch width {
	case 1:
		b, err := io.GetByte()
		return uint32(b), err
	case 2:
		s, err := io.GetLShort()
		return uint32(s), err
	default:
		return io.GetLInt4()
	}
}

func putEnumValueIndex(io *protocol.IO, width int, idx uint32) {
	switch width {
	case 1:
		io.PutByte(byte(idx))
	case 2:
		io.PutLShort(uint16(idx))
	default:
		io.PutLInt4(idx)
	}
}

// intern table builder: insertion-ordered, deduplicating (spec §9.3, §3.3
// Invariant V6).
type stringPool struct {
	values []string
	index  map[string]int
}

func newStringPool() *stringPool {
	return &stringPool{index: make(map[string]int)}
}

func (s *stringPool) intern(v string) int {
	if i, ok := s.index[v]; ok {
		return i
	}
	i := len(s.values)
	s.values = append(s.values, v)
	s.index[v] = i
	return i
}

// catalogBuilder walks a catalog in the fixed order Invariant V6 requires:
// hardcoded enums, then command-alias enums, then parameter enums, each in
// command/overload/parameter order, interning enum values into a shared
// pool and enums themselves into a second pool.
type catalogBuilder struct {
	valuePool   *stringPool
	postfixPool *stringPool
	enumPool    []*CommandEnum
	enumIndex   map[*CommandEnum]int
	errs        protocol.EncodeErrors
}

func newCatalogBuilder() *catalogBuilder {
	return &catalogBuilder{
		valuePool:   newStringPool(),
		postfixPool: newStringPool(),
		enumIndex:   make(map[*CommandEnum]int),
	}
}

func (b *catalogBuilder) internEnum(e *CommandEnum) int {
	if e == nil {
		b.errs.Add("available_commands: nil enum reference")
		return 0
	}
	if i, ok := b.enumIndex[e]; ok {
		return i
	}
	i := len(b.enumPool)
	b.enumPool = append(b.enumPool, e)
	b.enumIndex[e] = i
	for _, v := range e.Values {
		b.valuePool.intern(v)
	}
	return i
}

func (b *catalogBuilder) build(p *AvailableCommandsPacket) {
	for _, e := range p.HardcodedEnums {
		b.internEnum(e)
	}
	for _, c := range p.Commands {
		if c.Aliases != nil {
			b.internEnum(c.Aliases)
		}
	}
	for _, c := range p.Commands {
		for _, ov := range c.Overloads {
			for _, param := range ov.Parameters {
				if param.IsEnum {
					if param.EnumRef == nil {
						b.errs.Add("available_commands: parameter %q flagged ENUM with nil EnumRef", param.Name)
						continue
					}
					b.internEnum(param.EnumRef)
				}
				if param.IsPostfix {
					b.postfixPool.intern(param.Postfix)
				}
			}
		}
	}
}

func (p *AvailableCommandsPacket) Encode(io *protocol.IO) error {
	b := newCatalogBuilder()
	b.build(p)
	if err := b.errs.ErrOrNil(); err != nil {
		return protocol.NewEncodeError("AvailableCommandsPacket.Encode", err)
	}

	width := enumValueIndexWidth(len(b.valuePool.values))

	io.PutUnsignedVarInt(uint32(len(b.valuePool.values)))
	for _, v := range b.valuePool.values {
		io.PutString(v)
	}

	io.PutUnsignedVarInt(uint32(len(b.postfixPool.values)))
	for _, v := range b.postfixPool.values {
		io.PutString(v)
	}

	io.PutUnsignedVarInt(uint32(len(b.enumPool)))
	for _, e := range b.enumPool {
		io.PutString(e.Name)
		io.PutUnsignedVarInt(uint32(len(e.Values)))
		for _, v := range e.Values {
			putEnumValueIndex(io, width, uint32(b.valuePool.index[v]))
		}
	}

	io.PutUnsignedVarInt(uint32(len(p.Commands)))
	for _, c := range p.Commands {
		io.PutString(c.Name)
		io.PutString(c.Description)
		if io.ShieldID >= protocol.Proto1_17_10 {
			io.PutLShort(c.Flags)
		} else {
			io.PutByte(byte(c.Flags))
		}
		io.PutByte(c.Permission)

		if c.Aliases != nil {
			io.PutVarInt(int32(b.enumIndex[c.Aliases]))
		} else {
			io.PutVarInt(-1)
		}

		io.PutUnsignedVarInt(uint32(len(c.Overloads)))
		for _, ov := range c.Overloads {
			io.PutUnsignedVarInt(uint32(len(ov.Parameters)))
			for _, param := range ov.Parameters {
				io.PutString(param.Name)

				var paramType uint32
				switch {
				case param.IsEnum:
					paramType = paramFlagEnum | uint32(b.enumIndex[param.EnumRef])&paramIndexMask
				case param.IsPostfix:
					paramType = paramFlagPostfix | uint32(b.postfixPool.index[param.Postfix])&paramIndexMask
				default:
					paramType = paramFlagValid | uint32(wireBasicType(param.BasicType, io.ShieldID))
				}
				io.PutLInt4(paramType)
				io.PutBool(param.Optional)
				io.PutByte(param.Flags)
			}
		}
	}

	io.PutUnsignedVarInt(uint32(len(p.SoftEnums)))
	for _, e := range p.SoftEnums {
		io.PutString(e.Name)
		io.PutUnsignedVarInt(uint32(len(e.Values)))
		for _, v := range e.Values {
			io.PutString(v)
		}
	}

	if io.ShieldID >= protocol.Proto1_13_0 {
		io.PutUnsignedVarInt(uint32(len(p.Constraints)))
		for _, c := range p.Constraints {
			// Wire order is (value-pool-index, enum-pool-index, ...) per
			// spec §4.4 item 6, not the enum-first order §3.3 implies.
			io.PutLInt4(c.AffectedValueIndex)
			io.PutLInt4(uint32(b.enumIndex[c.Enum]))
			io.PutUnsignedVarInt(uint32(len(c.ConstraintIDs)))
			for _, id := range c.ConstraintIDs {
				io.PutByte(id)
			}
		}
	}
	return nil
}

func (p *AvailableCommandsPacket) Decode(io *protocol.IO) error {
	valueCount, err := io.GetUnsignedVarInt()
	if err != nil {
		return err
	}
	values := make([]string, valueCount)
	for i := range values {
		if values[i], err = io.GetString(); err != nil {
			return err
		}
	}
	width := enumValueIndexWidth(len(values))

	postfixCount, err := io.GetUnsignedVarInt()
	if err != nil {
		return err
	}
	postfixes := make([]string, postfixCount)
	for i := range postfixes {
		if postfixes[i], err = io.GetString(); err != nil {
			return err
		}
	}

	enumCount, err := io.GetUnsignedVarInt()
	if err != nil {
		return err
	}
	enums := make([]*CommandEnum, enumCount)
	for i := range enums {
		e := &CommandEnum{}
		if e.Name, err = io.GetString(); err != nil {
			return err
		}
		n, err := io.GetUnsignedVarInt()
		if err != nil {
			return err
		}
		e.Values = make([]string, n)
		for j := range e.Values {
			idx, err := getEnumValueIndex(io, width)
			if err != nil {
				return err
			}
			if int(idx) >= len(values) {
				return protocol.NewDecodeError("AvailableCommandsPacket", "Invalid enum value index")
			}
			e.Values[j] = values[idx]
		}
		enums[i] = e
	}

	var hardcoded []*CommandEnum
	for _, e := range enums {
		if hardcodedEnumNames[e.Name] {
			hardcoded = append(hardcoded, e)
		}
	}

	cmdCount, err := io.GetUnsignedVarInt()
	if err != nil {
		return err
	}
	commands := make([]CommandData, cmdCount)
	for i := range commands {
		c := &commands[i]
		if c.Name, err = io.GetString(); err != nil {
			return err
		}
		if c.Description, err = io.GetString(); err != nil {
			return err
		}
		if io.ShieldID >= protocol.Proto1_17_10 {
			f, err := io.GetLShort()
			if err != nil {
				return err
			}
			c.Flags = f
		} else {
			f, err := io.GetByte()
			if err != nil {
				return err
			}
			c.Flags = uint16(f)
		}
		if c.Permission, err = io.GetByte(); err != nil {
			return err
		}

		aliasIdx, err := io.GetVarInt()
		if err != nil {
			return err
		}
		if aliasIdx >= 0 {
			if int(aliasIdx) >= len(enums) {
				return protocol.NewDecodeError("AvailableCommandsPacket", "Invalid enum value index")
			}
			c.Aliases = enums[aliasIdx]
		}

		ovCount, err := io.GetUnsignedVarInt()
		if err != nil {
			return err
		}
		c.Overloads = make([]CommandOverload, ovCount)
		for j := range c.Overloads {
			paramCount, err := io.GetUnsignedVarInt()
			if err != nil {
				return err
			}
			params := make([]CommandParameter, paramCount)
			for k := range params {
				param := &params[k]
				if param.Name, err = io.GetString(); err != nil {
					return err
				}
				paramType, err := io.GetLInt4()
				if err != nil {
					return err
				}

				switch {
				case paramType&paramFlagEnum != 0:
					idx := paramType & paramIndexMask
					if int(idx) >= len(enums) {
						return protocol.NewDecodeError("AvailableCommandsPacket", "Invalid enum value index")
					}
					param.IsEnum = true
					param.EnumRef = enums[idx]
				case paramType&paramFlagPostfix != 0:
					idx := paramType & paramIndexMask
					if int(idx) >= len(postfixes) {
						return protocol.NewDecodeError("AvailableCommandsPacket", "Invalid postfix index")
					}
					param.IsPostfix = true
					param.Postfix = postfixes[idx]
				case paramType&paramFlagValid != 0:
					param.BasicType = uint8(paramType & 0xff)
				default:
					return protocol.NewDecodeError("AvailableCommandsPacket", "paramType bitfield lacks ENUM/POSTFIX/VALID")
				}

				if param.Optional, err = io.GetBool(); err != nil {
					return err
				}
				if param.Flags, err = io.GetByte(); err != nil {
					return err
				}
			}
			c.Overloads[j].Parameters = params
		}
	}

	softCount, err := io.GetUnsignedVarInt()
	if err != nil {
		return err
	}
	soft := make([]CommandEnum, softCount)
	for i := range soft {
		if soft[i].Name, err = io.GetString(); err != nil {
			return err
		}
		n, err := io.GetUnsignedVarInt()
		if err != nil {
			return err
		}
		soft[i].Values = make([]string, n)
		for j := range soft[i].Values {
			if soft[i].Values[j], err = io.GetString(); err != nil {
				return err
			}
		}
	}

	var constraints []CommandEnumConstraint
	if io.ShieldID >= protocol.Proto1_13_0 {
		cCount, err := io.GetUnsignedVarInt()
		if err != nil {
			return err
		}
		constraints = make([]CommandEnumConstraint, cCount)
		for i := range constraints {
			// Wire order is (value-pool-index, enum-pool-index, ...) per
			// spec §4.4 item 6, not the enum-first order §3.3 implies.
			affectedIdx, err := io.GetLInt4()
			if err != nil {
				return err
			}
			enumIdx, err := io.GetLInt4()
			if err != nil {
				return err
			}
			if int(enumIdx) >= len(enums) {
				return protocol.NewDecodeError("AvailableCommandsPacket", "Invalid enum value index")
			}
			constraints[i].Enum = enums[enumIdx]
			if int(affectedIdx) >= len(constraints[i].Enum.Values) {
				return protocol.NewDecodeError("AvailableCommandsPacket", "Enum constraint references a value not in the referenced enum")
			}
			constraints[i].AffectedValueIndex = affectedIdx
			idCount, err := io.GetUnsignedVarInt()
			if err != nil {
				return err
			}
			constraints[i].ConstraintIDs = make([]uint8, idCount)
			for j := range constraints[i].ConstraintIDs {
				b, err := io.GetByte()
				if err != nil {
					return err
				}
				constraints[i].ConstraintIDs[j] = b
			}
		}
	}

	p.Commands = commands
	p.SoftEnums = soft
	p.Constraints = constraints
	p.HardcodedEnums = hardcoded
	return nil
}

func (p *AvailableCommandsPacket) Handle(h Handler) (bool, error) {
	return h.HandleAvailableCommands(p)
}
