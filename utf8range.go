// Package utf8range validates UTF-8 with the range algorithm: bytes are
// classified in fixed-size blocks through small nibble-indexed tables, with
// the few bytes of state a multi-byte sequence needs carried from one block
// to the next.
//
// The result is the same as unicode/utf8.Valid: overlong encodings,
// surrogate halves, code points above U+10FFFF and truncated sequences are
// all rejected.
package utf8range

import (
	"errors"
	"fmt"
	"io"
	"unsafe"

	"github.com/biggeezerdevelopment/utf8range/internal/scanner"
)

var (
	// ErrInvalidUTF8 is returned for any malformed input.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// Valid reports whether p is entirely well-formed UTF-8.
func Valid(p []byte) bool {
	return scanner.Validate(p)
}

// ValidString reports whether s is entirely well-formed UTF-8.
func ValidString(s string) bool {
	return scanner.Validate(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Check returns ErrInvalidUTF8 if p is not well-formed UTF-8.
func Check(p []byte) error {
	if !Valid(p) {
		return ErrInvalidUTF8
	}
	return nil
}

// ValidReader reads r to EOF and reports whether everything read is
// well-formed UTF-8. A read error is returned as is, wrapped.
func ValidReader(r io.Reader) (bool, error) {
	s := NewStream()

	buf := scanner.GetReadBuffer()
	defer scanner.PutReadBuffer(buf)

	if _, err := io.CopyBuffer(s, onlyReader{r}, *buf); err != nil {
		return false, fmt.Errorf("utf8range: read: %w", err)
	}
	return s.Valid(), nil
}

// onlyReader hides WriterTo so io.CopyBuffer uses the pooled buffer.
type onlyReader struct {
	io.Reader
}

// HasSIMD reports whether the CPU has the byte shuffle the 32-byte kernel is
// modelled on. Both kernels are portable Go and never run vector
// instructions; this only decides which block size Valid uses.
func HasSIMD() bool {
	return scanner.HasSIMD()
}

// BlockSize returns the number of bytes classified per block by Valid: 32
// when HasSIMD is true, 16 otherwise, unless forced via UTF8RANGE_KERNEL.
func BlockSize() int {
	return scanner.Selected().Size()
}

// Stream is an io.Writer that validates everything written to it. Data may
// arrive in chunks of any size, including sequences split across writes.
type Stream struct {
	v *scanner.Validator
}

// NewStream returns an empty Stream using the same kernel as Valid.
func NewStream() *Stream {
	return &Stream{v: scanner.NewValidator(nil)}
}

// Write never fails; malformed input is reported by Valid.
func (s *Stream) Write(p []byte) (int, error) {
	return s.v.Write(p)
}

// WriteString is Write without copying s.
func (s *Stream) WriteString(str string) (int, error) {
	return s.v.Write(unsafe.Slice(unsafe.StringData(str), len(str)))
}

// Valid reports whether everything written so far is well-formed UTF-8,
// treating the end of the data written so far as the end of input.
func (s *Stream) Valid() bool {
	return s.v.Valid()
}

// Check is Valid as an error.
func (s *Stream) Check() error {
	if !s.Valid() {
		return ErrInvalidUTF8
	}
	return nil
}

// Reset discards all state so the Stream can validate new input.
func (s *Stream) Reset() {
	s.v.Reset()
}
