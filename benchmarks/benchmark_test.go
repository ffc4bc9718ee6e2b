package benchmarks

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/biggeezerdevelopment/utf8range"
	"github.com/biggeezerdevelopment/utf8range/internal/scanner"
)

var (
	// Test data for validation benchmarks
	asciiData = []byte(strings.Repeat("The quick brown fox jumps over the lazy dog. ", 1500))
	mixedData = []byte(strings.Repeat("Καλημέρα κόσμε, コンニチハ, Grüße 🙂 ", 1000))
	cjkData   = []byte(strings.Repeat("田中さんにあげて下さい。", 2000))
	emojiData = []byte(strings.Repeat("🙂🌍🚀", 5000))
)

var inputs = []struct {
	name string
	data []byte
}{
	{"ascii", asciiData},
	{"mixed", mixedData},
	{"cjk", cjkData},
	{"emoji", emojiData},
}

func BenchmarkValid_StdLib(b *testing.B) {
	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(in.data)))
			for i := 0; i < b.N; i++ {
				_ = utf8.Valid(in.data)
			}
		})
	}
}

func BenchmarkValid_Range(b *testing.B) {
	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(in.data)))
			for i := 0; i < b.N; i++ {
				_ = utf8range.Valid(in.data)
			}
		})
	}
}

// Benchmark each kernel and the naive tail validator on its own
func BenchmarkKernels(b *testing.B) {
	for _, in := range inputs {
		for _, k := range scanner.Kernels() {
			b.Run(fmt.Sprintf("%s/%s", k.Name(), in.name), func(b *testing.B) {
				b.SetBytes(int64(len(in.data)))
				for i := 0; i < b.N; i++ {
					_ = k.Validate(in.data)
				}
			})
		}
		b.Run("naive/"+in.name, func(b *testing.B) {
			b.SetBytes(int64(len(in.data)))
			for i := 0; i < b.N; i++ {
				_ = scanner.ValidateNaive(in.data)
			}
		})
	}
}

// Benchmark small inputs where the block path barely engages
func BenchmarkValid_Small(b *testing.B) {
	for _, size := range []int{8, 31, 32, 33, 100} {
		data := mixedData[:size]
		for !utf8.Valid(data) {
			data = data[:len(data)-1]
		}
		b.Run(fmt.Sprintf("size_%d", len(data)), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				_ = utf8range.Valid(data)
			}
		})
	}
}

func BenchmarkStream(b *testing.B) {
	for _, chunk := range []int{7, 64, 4096} {
		b.Run(fmt.Sprintf("chunk_%d", chunk), func(b *testing.B) {
			s := utf8range.NewStream()
			b.SetBytes(int64(len(mixedData)))
			for i := 0; i < b.N; i++ {
				s.Reset()
				for rest := mixedData; len(rest) > 0; {
					n := min(chunk, len(rest))
					s.Write(rest[:n])
					rest = rest[n:]
				}
				_ = s.Valid()
			}
		})
	}
}

func BenchmarkValidReader(b *testing.B) {
	b.SetBytes(int64(len(mixedData)))
	for i := 0; i < b.N; i++ {
		_, _ = utf8range.ValidReader(bytes.NewReader(mixedData))
	}
}
