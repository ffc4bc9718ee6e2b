package utf8range

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// TestMemorySafety tests memory safety of the block validator
func TestMemorySafety(t *testing.T) {
	t.Run("UnalignedMemory", testUnalignedMemorySafety)
	t.Run("BoundaryAccess", testBoundaryAccess)
	t.Run("ZeroLengthInput", testZeroLengthInput)
	t.Run("LargeInput", testLargeInputSafety)
	t.Run("ConcurrentAccess", testConcurrentMemoryAccess)
}

func testUnalignedMemorySafety(t *testing.T) {
	baseData := []byte(strings.Repeat("unaligned 世界 🙂 ", 8))

	// Create unaligned versions by offsetting
	for offset := 1; offset < 8; offset++ {
		t.Run(fmt.Sprintf("offset_%d", offset), func(t *testing.T) {
			buf := make([]byte, len(baseData)+offset)
			copy(buf[offset:], baseData)

			assert.True(t, Valid(buf[offset:]))
		})
	}
}

func testBoundaryAccess(t *testing.T) {
	sizes := []int{1, 2, 3, 4, 15, 16, 17, 31, 32, 33, 47, 48, 63, 64, 65}

	for _, fill := range []byte{0x00, 0x7F, 0x80, 0xBF, 0xC2, 0xE0, 0xF4, 0xFF} {
		for _, size := range sizes {
			t.Run(fmt.Sprintf("fill_%02x_size_%d", fill, size), func(t *testing.T) {
				buf := bytes.Repeat([]byte{fill}, size)

				// These operations should not crash regardless of input size
				assert.Equal(t, utf8.Valid(buf), Valid(buf))
			})
		}
	}
}

func testZeroLengthInput(t *testing.T) {
	assert.True(t, Valid(nil))
	assert.True(t, Valid([]byte{}))
	assert.True(t, ValidString(""))
	assert.NoError(t, Check(nil))

	s := NewStream()
	assert.True(t, s.Valid())
}

func testLargeInputSafety(t *testing.T) {
	sizes := []int{1024, 10240, 102400, 1 << 20}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			pattern := "Καλημέρα κόσμε, コンニチハ 🙂 "
			data := []byte(strings.Repeat(pattern, size/len(pattern)+1))

			assert.True(t, Valid(data))

			data[len(data)/2] = 0xFF
			assert.False(t, Valid(data))
		})
	}
}

func testConcurrentMemoryAccess(t *testing.T) {
	good := []byte(strings.Repeat("concurrent 世界 ", 50))
	bad := append(bytes.Clone(good), 0xE2, 0x82)

	const numGoroutines = 10
	const numIterations = 100

	var wg sync.WaitGroup
	errs := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				if !Valid(good) || Valid(bad) {
					errs <- fmt.Errorf("goroutine %d: wrong result at iteration %d", id, j)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

// TestNoAllocations checks the hot path stays on the stack
func TestNoAllocations(t *testing.T) {
	if runtime.GOARCH == "wasm" {
		t.Skip("escape analysis differs")
	}
	data := []byte(strings.Repeat("no allocations 🙂 ", 20))

	allocs := testing.AllocsPerRun(100, func() {
		Valid(data)
	})
	assert.Zero(t, allocs)
}

// TestBufferOverflow tests that the tail of a buffer is never read past
func TestBufferOverflow(t *testing.T) {
	for size := 1; size <= 70; size++ {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			// an open lead byte at the very end, continuation bytes right behind it
			backing := append(bytes.Repeat([]byte{'a'}, size-1), 0xE2, 0x82, 0xAC)
			buf := backing[:size:size]

			assert.False(t, Valid(buf))
			assert.True(t, Valid(backing))
		})
	}
}
