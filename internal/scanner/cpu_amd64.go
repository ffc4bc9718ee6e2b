//go:build amd64

package scanner

import (
	"golang.org/x/sys/cpu"
)

// hasSIMD reports a byte shuffle (PSHUFB, PALIGNR) wide enough for the
// two-lane kernel.
func hasSIMD() bool {
	return cpu.X86.HasSSSE3 && cpu.X86.HasSSE41
}

func cpuName() string {
	if cpu.X86.HasAVX2 {
		return "amd64/avx2"
	}
	if hasSIMD() {
		return "amd64/sse4.1"
	}
	return "amd64"
}
