package scanner

// ValidateNaive checks p one byte at a time against the well-formed byte
// sequences of the Unicode Standard (Table 3-7). It is the tail validator of
// the range kernels and the reference they are tested against.
func ValidateNaive(p []byte) bool {
	for i := 0; i < len(p); {
		c := p[i]
		if c < 0x80 {
			i++
			continue
		}

		var n int
		lo, hi := byte(0x80), byte(0xBF)
		switch {
		case c >= 0xC2 && c <= 0xDF:
			n = 2
		case c == 0xE0:
			n, lo = 3, 0xA0
		case c == 0xED:
			n, hi = 3, 0x9F
		case c >= 0xE1 && c <= 0xEF:
			n = 3
		case c == 0xF0:
			n, lo = 4, 0x90
		case c == 0xF4:
			n, hi = 4, 0x8F
		case c >= 0xF1 && c <= 0xF3:
			n = 4
		default:
			// continuation byte, C0, C1 or F5..FF
			return false
		}

		if len(p)-i < n {
			return false
		}
		if b := p[i+1]; b < lo || b > hi {
			return false
		}
		for j := i + 2; j < i+n; j++ {
			if p[j]&0xC0 != 0x80 {
				return false
			}
		}
		i += n
	}
	return true
}
