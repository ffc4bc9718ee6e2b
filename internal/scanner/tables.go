package scanner

// Lane and block widths for the range kernels
const (
	laneSize = 16 // one 128-bit vector

	Block16Size = laneSize     // single lane per block
	Block32Size = 2 * laneSize // two lanes per block

	maxBlockSize = Block32Size
)

// Range table indices for the four lead bytes whose second byte is narrowed.
// The correction is added on top of the generic continuation index.
//
//	lead  second byte  index
//	E0    A0..BF       2+2
//	ED    80..9F       2+3
//	F0    90..BF       3+3
//	F4    80..8F       3+4
const (
	fixE0 = 2
	fixED = 3
	fixF0 = 3
	fixF4 = 4
)

// Lookup tables indexed by the high nibble of an input byte
var (
	// followTable gives the number of continuation bytes a lead byte needs.
	followTable = [16]byte{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 00 ~ BF
		1, 1, // C0 ~ DF
		2, // E0 ~ EF
		3, // F0 ~ FF
	}

	// rangeBaseTable is 8 for any lead byte. Overlapping carries push the
	// index to 9, 10 or 11 which are sentinels.
	rangeBaseTable = [16]byte{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 00 ~ BF
		8, 8, // C0 ~ DF
		8, // E0 ~ EF
		8, // F0 ~ FF
	}
)

// Lookup tables indexed by the computed range index. Bounds are compared as
// signed bytes; 0x7F..0x80 is the empty range 127..-128.
var (
	rangeMinTable = [16]byte{
		// 0,  1,    2,    3,    4,    5,    6,    7,    8
		0x00, 0x80, 0x80, 0x80, 0xA0, 0x80, 0x90, 0x80, 0xC2,
		// must be invalid
		0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F, 0x7F,
	}

	rangeMaxTable = [16]byte{
		// 0,  1,    2,    3,    4,    5,    6,    7,    8
		0x7F, 0xBF, 0xBF, 0xBF, 0xBF, 0x9F, 0xBF, 0x8F, 0xF4,
		// must be invalid
		0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80,
	}
)

// sentinelIndex is the first range index that can never be satisfied.
const sentinelIndex = 9
