package quizdown

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if src is not valid UTF-8 or appears to
// be binary. Errors name the byte offset of the first offending byte.
func ValidateInput(src []byte) error {
	var total, control int
	for off := 0; off < len(src); {
		r, size := utf8.DecodeRune(src[off:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("%w at byte %d", ErrInvalidUTF8, off)
		}
		if r == 0 {
			return fmt.Errorf("%w: NUL at byte %d", ErrBinaryInput, off)
		}
		total += size
		if isControlRune(r) {
			control++
		}
		off += size
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return fmt.Errorf("%w: %d control characters in %d bytes", ErrBinaryInput, control, total)
	}
	return nil
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' || r == '\f' || r == '\v' {
		return false
	}
	return r < 0x20 || r == 0x7F
}
