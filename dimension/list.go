// SPDX-License-Identifier: MIT

package dimension

import (
	"sort"
	"strings"

	"github.com/katalvlaran/lvunits/ratio"
)

// Base identifies a base quantity, e.g. "L" for length. Bases are ordered
// lexically by their identifier.
type Base string

// Entry is one base quantity raised to a rational exponent.
type Entry struct {
	Base Base
	Exp  ratio.Ratio
}

// List is a canonical product of Entries. The zero value is dimensionless.
type List struct {
	entries []Entry
}

// Dimensionless is the empty list.
var Dimensionless = List{}

// New normalizes entries into a canonical List: entries are sorted by Base,
// exponents of repeated bases are summed, and zero exponents are dropped.
// New applied to the entries of a canonical List returns an equal List.
//
// Errors: ErrDefinition on an empty Base or exponent overflow.
func New(entries ...Entry) (List, error) {
	if len(entries) == 0 {
		return List{}, nil
	}
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	for _, e := range sorted {
		if e.Base == "" {
			return List{}, definitionErrorf(opNew, errEmptyBase)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Base < sorted[j].Base })

	out := make([]Entry, 0, len(sorted))
	for _, e := range sorted {
		if n := len(out); n > 0 && out[n-1].Base == e.Base {
			sum, err := out[n-1].Exp.Add(e.Exp)
			if err != nil {
				return List{}, definitionErrorf(opNew, err)
			}
			out[n-1].Exp = sum
			continue
		}
		out = append(out, e)
	}

	return List{entries: dropZeros(out)}, nil
}

// MustNew is like New but panics on error.
func MustNew(entries ...Entry) List {
	l, err := New(entries...)
	if err != nil {
		panic(err)
	}

	return l
}

// Of returns the list holding b with exponent 1. It panics on an empty Base.
func Of(b Base) List {
	if b == "" {
		panic(definitionErrorf(opNew, errEmptyBase))
	}

	return List{entries: []Entry{{Base: b, Exp: ratio.One}}}
}

// Multiply returns the canonical concatenation of a and b.
//
// Complexity: O(len(a) + len(b)), both inputs are already sorted.
func Multiply(a, b List) (List, error) {
	if len(a.entries) == 0 {
		return b, nil
	}
	if len(b.entries) == 0 {
		return a, nil
	}

	out := make([]Entry, 0, len(a.entries)+len(b.entries))
	i, j := 0, 0
	for i < len(a.entries) && j < len(b.entries) {
		x, y := a.entries[i], b.entries[j]
		switch {
		case x.Base < y.Base:
			out = append(out, x)
			i++
		case y.Base < x.Base:
			out = append(out, y)
			j++
		default:
			sum, err := x.Exp.Add(y.Exp)
			if err != nil {
				return List{}, definitionErrorf(opMultiply, err)
			}
			if !sum.IsZero() {
				out = append(out, Entry{Base: x.Base, Exp: sum})
			}
			i++
			j++
		}
	}
	out = append(out, a.entries[i:]...)
	out = append(out, b.entries[j:]...)

	return List{entries: dropZeros(out)}, nil
}

// Invert negates every exponent; the order is unchanged.
func Invert(a List) List {
	if len(a.entries) == 0 {
		return List{}
	}
	out := make([]Entry, len(a.entries))
	for i, e := range a.entries {
		out[i] = Entry{Base: e.Base, Exp: e.Exp.Neg()}
	}

	return List{entries: out}
}

// Divide returns Multiply(a, Invert(b)).
func Divide(a, b List) (List, error) {
	l, err := Multiply(a, Invert(b))
	if err != nil {
		return List{}, dimensionErrorf(opDivide, err)
	}

	return l, nil
}

// Pow multiplies every exponent by num/den. Pow(l, 0, 1) is dimensionless.
//
// Errors: ErrDefinition when den == 0 or an exponent product overflows.
func Pow(l List, num, den int64) (List, error) {
	k, err := ratio.New(num, den)
	if err != nil {
		return List{}, definitionErrorf(opPow, err)
	}
	if k.IsZero() || len(l.entries) == 0 {
		return List{}, nil
	}

	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		p, err := e.Exp.Mul(k)
		if err != nil {
			return List{}, definitionErrorf(opPow, err)
		}
		out[i] = Entry{Base: e.Base, Exp: p}
	}

	return List{entries: out}, nil
}

// Sqrt is Pow(l, 1, 2).
func Sqrt(l List) (List, error) { return Pow(l, 1, 2) }

// Equivalent reports whether a and b hold the same bases in the same order
// with the same exponents.
func Equivalent(a, b List) bool {
	if len(a.entries) != len(b.entries) {
		return false
	}
	for i := range a.entries {
		if a.entries[i].Base != b.entries[i].Base || !a.entries[i].Exp.Equal(b.entries[i].Exp) {
			return false
		}
	}

	return true
}

// Equal is Equivalent(l, o).
func (l List) Equal(o List) bool { return Equivalent(l, o) }

// Entries returns a copy of the canonical entries.
func (l List) Entries() []Entry {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)

	return out
}

// Len returns the number of entries.
func (l List) Len() int { return len(l.entries) }

// IsDimensionless reports whether l is empty.
func (l List) IsDimensionless() bool { return len(l.entries) == 0 }

// Single returns the sole base of l when l is exactly one base with
// exponent 1.
func (l List) Single() (Base, bool) {
	if len(l.entries) != 1 || !l.entries[0].Exp.Equal(ratio.One) {
		return "", false
	}

	return l.entries[0].Base, true
}

// Key returns a canonical string usable as a map key, e.g. "L:1,T:-2".
// The dimensionless list has the empty key.
func (l List) Key() string {
	var sb strings.Builder
	for i, e := range l.entries {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(string(e.Base))
		sb.WriteByte(':')
		sb.WriteString(e.Exp.String())
	}

	return sb.String()
}

// String renders l with superscript exponents, e.g. "L·T⁻²" or "L^(1/2)".
// The dimensionless list renders as "1".
func (l List) String() string {
	if len(l.entries) == 0 {
		return "1"
	}
	parts := make([]string, len(l.entries))
	for i, e := range l.entries {
		switch {
		case e.Exp.Equal(ratio.One):
			parts[i] = string(e.Base)
		case e.Exp.IsInt():
			parts[i] = string(e.Base) + superscript(e.Exp.String())
		default:
			parts[i] = string(e.Base) + "^(" + e.Exp.String() + ")"
		}
	}

	return strings.Join(parts, "·")
}

var superscripts = strings.NewReplacer(
	"-", "⁻",
	"0", "⁰", "1", "¹", "2", "²", "3", "³", "4", "⁴",
	"5", "⁵", "6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹",
)

func superscript(s string) string { return superscripts.Replace(s) }

// dropZeros removes zero exponents in place and returns nil for an empty result.
func dropZeros(es []Entry) []Entry {
	out := es[:0]
	for _, e := range es {
		if !e.Exp.IsZero() {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}
