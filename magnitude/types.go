// SPDX-License-Identifier: MIT

package magnitude

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvunits/ratio"
)

// Number is the set of representation types a Magnitude can be evaluated into.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Atom is a named irrational constant. Two atoms are the same factor iff their
// IDs are equal; Value is only used for floating-point evaluation.
type Atom struct {
	ID    string
	Value float64
}

// Pi is the atom for π.
var Pi = Atom{ID: "pi", Value: math.Pi}

// Term is a prime raised to a non-zero rational exponent.
type Term struct {
	Prime uint64
	Exp   ratio.Ratio
}

// IrrationalTerm is an atom raised to a non-zero rational exponent.
type IrrationalTerm struct {
	Atom Atom
	Exp  ratio.Ratio
}

// Magnitude is an exact positive scale factor. The zero value is One.
//
// Invariants:
//   - terms are sorted by strictly ascending Prime, every Prime is prime;
//   - irrationals are sorted by strictly ascending Atom.ID;
//   - no exponent is zero.
type Magnitude struct {
	terms       []Term
	irrationals []IrrationalTerm
}

// One is the identity magnitude.
var One = Magnitude{}

// unexported causes attached under ErrDefinition.
var (
	errZeroValue     = errors.New("zero is not a scale factor")
	errNegative      = errors.New("scale factors must be positive")
	errInexactRoot   = errors.New("root is not exactly representable")
	errBadRootIndex  = errors.New("root index must be positive")
	errBadAtom       = errors.New("atom needs a non-empty ID and a finite positive value")
	errAtomConflict  = errors.New("atom ID bound to two different values")
	errValueOverflow = errors.New("value does not fit the target type")
)

// Terms returns a copy of the prime-power factors in ascending prime order.
func (m Magnitude) Terms() []Term {
	if len(m.terms) == 0 {
		return nil
	}
	out := make([]Term, len(m.terms))
	copy(out, m.terms)

	return out
}

// Irrationals returns a copy of the irrational factors ordered by atom ID.
func (m Magnitude) Irrationals() []IrrationalTerm {
	if len(m.irrationals) == 0 {
		return nil
	}
	out := make([]IrrationalTerm, len(m.irrationals))
	copy(out, m.irrationals)

	return out
}

// IsOne reports whether m is the identity.
func (m Magnitude) IsOne() bool {
	return len(m.terms) == 0 && len(m.irrationals) == 0
}

// Equal reports whether m and o are the same magnitude. Because the
// representation is canonical this is a structural comparison.
func (m Magnitude) Equal(o Magnitude) bool {
	if len(m.terms) != len(o.terms) || len(m.irrationals) != len(o.irrationals) {
		return false
	}
	for i := range m.terms {
		if m.terms[i].Prime != o.terms[i].Prime || !m.terms[i].Exp.Equal(o.terms[i].Exp) {
			return false
		}
	}

	return sameIrrationals(m.irrationals, o.irrationals)
}

func sameIrrationals(a, b []IrrationalTerm) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Atom.ID != b[i].Atom.ID || !a[i].Exp.Equal(b[i].Exp) {
			return false
		}
	}

	return true
}

// String renders m as a product of powers, e.g. "2^3·5^3", "2^-1·pi" or "1".
// Rational values with integer exponents render as "n" or "n/d" when they fit
// into int64.
func (m Magnitude) String() string {
	if m.IsOne() {
		return "1"
	}
	var parts []string
	if IsRational(m) {
		if num, den, err := Ratio(m); err == nil {
			if den == 1 {
				return strconv.FormatInt(num, 10)
			}
			return strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
		}
	}
	for _, t := range m.terms {
		parts = append(parts, powerString(strconv.FormatUint(t.Prime, 10), t.Exp))
	}
	for _, it := range m.irrationals {
		parts = append(parts, powerString(it.Atom.ID, it.Exp))
	}

	return strings.Join(parts, "·")
}

func powerString(base string, exp ratio.Ratio) string {
	switch {
	case exp.Equal(ratio.One):
		return base
	case exp.IsInt():
		return base + "^" + exp.String()
	default:
		return base + "^(" + exp.String() + ")"
	}
}
