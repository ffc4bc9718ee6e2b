//go:build arm64

package scanner

import (
	"golang.org/x/sys/cpu"
)

// hasSIMD returns true if ARM64 Advanced SIMD (NEON) is available
func hasSIMD() bool {
	return cpu.ARM64.HasASIMD
}

func cpuName() string {
	if hasSIMD() {
		return "arm64/neon"
	}
	return "arm64"
}
