package hopfield

import (
	"fmt"
	"strings"
)

// Pattern is a bipolar vector: every entry is -1 or +1.
// The same type carries recall states; Energy accepts arbitrary real vectors.
type Pattern []float64

// Bipolar unit values.
const (
	Up   = 1.0
	Down = -1.0
)

// NewPattern returns a validated copy of values.
func NewPattern(values ...float64) (Pattern, error) {
	p := Pattern(values).Clone()
	if err := validatePattern(p, len(p)); err != nil {
		return nil, err
	}

	return p, nil
}

// PatternFromBits parses '+' or '1' as +1 and '-' or '0' as -1.
// Whitespace is ignored, so multi-line glyphs can be written literally.
func PatternFromBits(bits string) (Pattern, error) {
	p := make(Pattern, 0, len(bits))
	for i, r := range bits {
		switch r {
		case '+', '1':
			p = append(p, Up)
		case '-', '0':
			p = append(p, Down)
		case ' ', '\t', '\n', '\r':
		default:
			return nil, fmt.Errorf("%w: rune %q at offset %d", ErrInvalidPattern, r, i)
		}
	}
	if len(p) == 0 {
		return nil, ErrInvalidDimension
	}

	return p, nil
}

// Clone returns an independent copy of p.
func (p Pattern) Clone() Pattern {
	if p == nil {
		return nil
	}
	out := make(Pattern, len(p))
	copy(out, p)

	return out
}

// String renders +1 as '+', -1 as '-' and anything else as '?'.
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, v := range p {
		switch v {
		case Up:
			b.WriteByte('+')
		case Down:
			b.WriteByte('-')
		default:
			b.WriteByte('?')
		}
	}

	return b.String()
}

// Equal reports whether p and q hold the same values.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Overlap returns (1/N)·Σ a[i]·b[i]: 1 for identical bipolar patterns,
// -1 for complementary ones.
func Overlap(a, b Pattern) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, networkErrorf(opOverlap, ErrInvalidDimension)
	}
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s / float64(len(a)), nil
}

// Hamming counts positions where a and b differ.
func Hamming(a, b Pattern) (int, error) {
	if len(a) != len(b) {
		return 0, networkErrorf(opHamming, ErrInvalidDimension)
	}
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}

	return d, nil
}

// validatePattern checks len(p) == n (n > 0) and every value in {-1,+1}.
func validatePattern(p Pattern, n int) error {
	if n <= 0 || len(p) != n {
		return fmt.Errorf("%w: pattern length %d, want %d", ErrInvalidDimension, len(p), n)
	}
	for i, v := range p {
		if v != Up && v != Down {
			return fmt.Errorf("%w: value %v at index %d", ErrInvalidPattern, v, i)
		}
	}

	return nil
}
