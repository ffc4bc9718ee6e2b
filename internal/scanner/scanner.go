package scanner

import (
	"os"
)

// KernelEnv forces a kernel by block size ("16" or "32") when set at start-up.
const KernelEnv = "UTF8RANGE_KERNEL"

// Kernel is a range validator with a fixed block size. Every kernel accepts
// exactly the same inputs; they differ only in how many lanes are classified
// per block.
type Kernel struct {
	name string
	size int
}

var (
	Kernel16 = &Kernel{name: "range16", size: Block16Size}
	Kernel32 = &Kernel{name: "range", size: Block32Size}
)

var selected = selectKernel(os.Getenv(KernelEnv))

func selectKernel(force string) *Kernel {
	switch force {
	case "16":
		return Kernel16
	case "32":
		return Kernel32
	}
	if hasSIMD() {
		return Kernel32
	}
	return Kernel16
}

// Selected returns the kernel used by Validate.
func Selected() *Kernel {
	return selected
}

// Kernels returns all kernels, widest first.
func Kernels() []*Kernel {
	return []*Kernel{Kernel32, Kernel16}
}

// KernelByName looks a kernel up by its Name.
func KernelByName(name string) (*Kernel, bool) {
	for _, k := range Kernels() {
		if k.name == name {
			return k, true
		}
	}
	return nil, false
}

// HasSIMD reports whether the CPU has the byte shuffle the two-lane kernel
// is modelled on. It selects a block size only; the kernels are portable Go.
func HasSIMD() bool {
	return hasSIMD()
}

// CPU describes the detected instruction set, for reporting.
func CPU() string {
	return cpuName()
}

func (k *Kernel) Name() string { return k.name }

// Size is the block size in bytes.
func (k *Kernel) Size() int { return k.size }

// Validate reports whether p is well-formed UTF-8 using the selected kernel.
func Validate(p []byte) bool {
	return selected.Validate(p)
}

// Validate reports whether p is well-formed UTF-8.
func (k *Kernel) Validate(p []byte) bool {
	if len(p) < k.size {
		return ValidateNaive(p)
	}

	var (
		st   state
		errs lane
		off  int
	)
	for ; len(p)-off >= k.size; off += k.size {
		validateBlock(p[off:off+k.size], &errs, &st)
	}

	// Delay error check till loop ends
	if !errs.isZero() {
		return false
	}

	// Re-check the unfinished sequence at the end of the last block together
	// with the remainder.
	off -= lookahead(&st.input)
	return ValidateNaive(p[off:])
}

// Validator validates a byte stream fed in arbitrary chunks. Whole blocks
// are classified as they arrive and a partial block is held back, so the
// result is identical to Kernel.Validate over the concatenated input.
//
// A Validator is not safe for concurrent use.
type Validator struct {
	k       *Kernel
	st      state
	errs    lane
	blocks  int
	pending [maxBlockSize]byte
	n       int
}

// NewValidator returns a Validator using k, or the selected kernel if k is
// nil.
func NewValidator(k *Kernel) *Validator {
	if k == nil {
		k = selected
	}
	return &Validator{k: k}
}

// Write feeds p to the validator. It never returns an error.
func (v *Validator) Write(p []byte) (int, error) {
	total := len(p)
	if v.failed() {
		return total, nil
	}

	size := v.k.size
	if v.n > 0 {
		c := copy(v.pending[v.n:size], p)
		v.n += c
		p = p[c:]
		if v.n < size {
			return total, nil
		}
		validateBlock(v.pending[:size], &v.errs, &v.st)
		v.blocks++
		v.n = 0
	}

	for len(p) >= size {
		validateBlock(p[:size], &v.errs, &v.st)
		v.blocks++
		p = p[size:]
	}
	v.n = copy(v.pending[:], p)
	return total, nil
}

// Valid reports whether everything written so far is well-formed UTF-8.
// It does not consume the stream; more data may be written afterwards.
func (v *Validator) Valid() bool {
	if v.failed() {
		return false
	}
	if v.blocks == 0 {
		return ValidateNaive(v.pending[:v.n])
	}

	var tail [3 + maxBlockSize]byte
	k := lookahead(&v.st.input)
	m := copy(tail[:], v.st.input[laneSize-k:])
	m += copy(tail[m:], v.pending[:v.n])
	return ValidateNaive(tail[:m])
}

// Reset clears all carried state so the Validator can be reused.
func (v *Validator) Reset() {
	k := v.k
	*v = Validator{k: k}
}

// Kernel returns the kernel the validator runs.
func (v *Validator) Kernel() *Kernel {
	return v.k
}

func (v *Validator) failed() bool {
	return !v.errs.isZero()
}
