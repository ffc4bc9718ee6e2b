package scanner

import "encoding/binary"

// lane is a portable stand-in for a 128-bit vector register. The helpers
// below mirror the handful of byte-wise vector instructions the range
// algorithm needs, so the kernel reads the same on every architecture.
type lane [laneSize]byte

func loadLane(p []byte) (v lane) {
	copy(v[:], p[:laneSize])
	return v
}

// highNibbles returns input >> 4 per byte.
func highNibbles(in *lane) (v lane) {
	for i, b := range in {
		v[i] = b >> 4
	}
	return v
}

// lookup is a 16-entry table shuffle. Indices are masked to 4 bits so any
// computed value stays inside the table.
func lookup(table *[16]byte, idx *lane) (v lane) {
	for i, x := range idx {
		v[i] = table[x&0x0F]
	}
	return v
}

// alignr shifts the concatenation (prev:cur) right by n bytes and returns
// the low lane: the first n bytes come from the tail of prev.
func alignr(cur, prev *lane, n int) (v lane) {
	copy(v[:n], prev[laneSize-n:])
	copy(v[n:], cur[:laneSize-n])
	return v
}

// subs is a per-byte saturating subtract.
func subs(in *lane, n byte) (v lane) {
	for i, b := range in {
		if b > n {
			v[i] = b - n
		}
	}
	return v
}

func or(dst, src *lane) {
	for i := range dst {
		dst[i] |= src[i]
	}
}

// addEq adds n to dst wherever shifted equals b.
func addEq(dst, shifted *lane, b, n byte) {
	for i, x := range shifted {
		if x == b {
			dst[i] += n
		}
	}
}

// outOfRange sets errs to 0xFF wherever in is outside [lo, hi], compared as
// signed bytes.
func outOfRange(errs, in, lo, hi *lane) {
	for i, b := range in {
		s := int8(b)
		if s < int8(lo[i]) || s > int8(hi[i]) {
			errs[i] = 0xFF
		}
	}
}

func (v *lane) isZero() bool {
	return binary.LittleEndian.Uint64(v[:8])|binary.LittleEndian.Uint64(v[8:]) == 0
}

// isASCII reports whether every byte of p has the high bit clear, eight
// bytes at a time.
func isASCII(p []byte) bool {
	const hi8 = uint64(0x8080808080808080)

	var acc uint64
	i := 0
	for ; i+8 <= len(p); i += 8 {
		acc |= binary.LittleEndian.Uint64(p[i:])
	}
	for ; i < len(p); i++ {
		acc |= uint64(p[i])
	}
	return acc&hi8 == 0
}
