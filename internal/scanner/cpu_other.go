//go:build !amd64 && !arm64

package scanner

import "runtime"

// hasSIMD returns false for unsupported architectures
func hasSIMD() bool {
	return false
}

func cpuName() string {
	return runtime.GOARCH
}
