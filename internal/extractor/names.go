package extractor

import "strconv"

// Table indexes as used by the 8086tiny instruction decoder.
const (
	RMBase = iota
	RMIndex
	RMDisplacementScale
	RMDefaultSegment
	RMBaseMod0
	RMIndexMod0
	RMDisplacementScaleMod0
	RMDefaultSegmentMod0
	XlatOpcode
	XlatSubfunction
	StdFlags
	ParityFlag
	BaseInstSize
	IWSize
	IModSize
	CondJumpDecodeA
	CondJumpDecodeB
	CondJumpDecodeC
	CondJumpDecodeD
	FlagsBitfields
)

var tableNames = [TableCount]string{
	RMBase:                  "rm_base",
	RMIndex:                 "rm_index",
	RMDisplacementScale:     "rm_displacement_scale",
	RMDefaultSegment:        "rm_default_segment",
	RMBaseMod0:              "rm_base_mod0",
	RMIndexMod0:             "rm_index_mod0",
	RMDisplacementScaleMod0: "rm_displacement_scale_mod0",
	RMDefaultSegmentMod0:    "rm_default_segment_mod0",
	XlatOpcode:              "xlat_opcode",
	XlatSubfunction:         "xlat_subfunction",
	StdFlags:                "std_flags",
	ParityFlag:              "parity_flag",
	BaseInstSize:            "base_inst_size",
	IWSize:                  "i_w_size",
	IModSize:                "i_mod_size",
	CondJumpDecodeA:         "cond_jump_decode_a",
	CondJumpDecodeB:         "cond_jump_decode_b",
	CondJumpDecodeC:         "cond_jump_decode_c",
	CondJumpDecodeD:         "cond_jump_decode_d",
	FlagsBitfields:          "flags_bitfields",
}

// TableName returns the decoder name of the table at index i.
func TableName(i int) string {
	if i < 0 || i >= TableCount {
		return "table_" + strconv.Itoa(i)
	}
	return tableNames[i]
}
