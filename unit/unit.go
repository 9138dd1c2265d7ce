// SPDX-License-Identifier: MIT

package unit

import (
	"strings"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/magnitude"
	"github.com/katalvlaran/lvunits/ratio"
)

// Unit is a unit of measurement. The zero value is the anonymous
// dimensionless unit "1".
type Unit struct {
	name   string
	symbol string
	kind   string
	mag    magnitude.Magnitude
	dim    dimension.List
}

// Prefix is a named scale such as kilo (10³) or kibi (2¹⁰).
type Prefix struct {
	Name      string
	Symbol    string
	Magnitude magnitude.Magnitude
}

// NewBase returns a coherent unit (magnitude one) of dimension dim.
func NewBase(name, symbol, kind string, dim dimension.List) Unit {
	return Unit{name: name, symbol: symbol, kind: kind, dim: dim}
}

// Scaled returns the unit mag·of. It keeps the kind of of.
//
// Errors: ErrDefinition when the magnitude product overflows.
func Scaled(name, symbol string, mag magnitude.Magnitude, of Unit) (Unit, error) {
	m, err := magnitude.Multiply(mag, of.mag)
	if err != nil {
		return Unit{}, definitionErrorf(opScaled, err)
	}

	return Unit{name: name, symbol: symbol, kind: of.kind, mag: m, dim: of.dim}, nil
}

// Prefixed applies p to of, e.g. kilo + metre = kilometre (km).
func Prefixed(p Prefix, of Unit) (Unit, error) {
	return Scaled(p.Name+of.name, p.Symbol+of.symbol, p.Magnitude, of)
}

// Named returns of under a new name, symbol and kind, e.g. kg·m·s⁻² as the
// newton of kind "force".
func Named(name, symbol, kind string, of Unit) Unit {
	return Unit{name: name, symbol: symbol, kind: kind, mag: of.mag, dim: of.dim}
}

// Multiply returns the anonymous product a·b.
func Multiply(a, b Unit) (Unit, error) {
	m, err := magnitude.Multiply(a.mag, b.mag)
	if err != nil {
		return Unit{}, definitionErrorf(opMultiply, err)
	}
	d, err := dimension.Multiply(a.dim, b.dim)
	if err != nil {
		return Unit{}, definitionErrorf(opMultiply, err)
	}

	return Unit{symbol: joinSymbols(a.Symbol(), "·", b.Symbol()), mag: m, dim: d}, nil
}

// Divide returns the anonymous quotient a/b.
func Divide(a, b Unit) (Unit, error) {
	m, err := magnitude.Divide(a.mag, b.mag)
	if err != nil {
		return Unit{}, definitionErrorf(opDivide, err)
	}
	d, err := dimension.Divide(a.dim, b.dim)
	if err != nil {
		return Unit{}, definitionErrorf(opDivide, err)
	}

	return Unit{symbol: joinSymbols(a.Symbol(), "/", b.Symbol()), mag: m, dim: d}, nil
}

// Invert returns the anonymous unit 1/u. It never fails.
func Invert(u Unit) Unit {
	return Unit{
		symbol: "1/" + group(u.Symbol()),
		mag:    magnitude.Invert(u.mag),
		dim:    dimension.Invert(u.dim),
	}
}

// Pow returns the anonymous unit u^(num/den).
//
// Errors: ErrDefinition when den == 0, on overflow, or when the magnitude
// root would not be exact (see magnitude.Pow).
func Pow(u Unit, num, den int64) (Unit, error) {
	m, err := magnitude.Pow(u.mag, num, den)
	if err != nil {
		return Unit{}, definitionErrorf(opPow, err)
	}
	d, err := dimension.Pow(u.dim, num, den)
	if err != nil {
		return Unit{}, definitionErrorf(opPow, err)
	}

	return Unit{symbol: powSymbol(u.Symbol(), num, den), mag: m, dim: d}, nil
}

// Name returns the long name, e.g. "kilometre". Anonymous units have none.
func (u Unit) Name() string { return u.name }

// Symbol returns the display symbol, e.g. "km" or "m/s".
func (u Unit) Symbol() string { return u.symbol }

// Kind returns the quantity kind, empty for anonymous units.
func (u Unit) Kind() string { return u.kind }

// Magnitude returns the scale relative to the coherent unit of Dimension.
func (u Unit) Magnitude() magnitude.Magnitude { return u.mag }

// Dimension returns the canonical dimension.
func (u Unit) Dimension() dimension.List { return u.dim }

// String returns the symbol, or "[mag] dim" when there is none.
func (u Unit) String() string {
	if u.symbol != "" {
		return u.symbol
	}
	if u.mag.IsOne() {
		return u.dim.String()
	}

	return "[" + u.mag.String() + "] " + u.dim.String()
}

// joinSymbols builds a compound symbol, or "" when either side has none.
func joinSymbols(a, op, b string) string {
	if a == "" || b == "" {
		return ""
	}
	if op == "/" {
		return a + op + group(b)
	}

	return a + op + b
}

// group parenthesizes compound symbols.
func group(s string) string {
	if strings.ContainsAny(s, "·/") {
		return "(" + s + ")"
	}

	return s
}

var superscripts = strings.NewReplacer(
	"-", "⁻",
	"0", "⁰", "1", "¹", "2", "²", "3", "³", "4", "⁴",
	"5", "⁵", "6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹",
)

// powSymbol renders s raised to num/den; den is known to be valid.
func powSymbol(s string, num, den int64) string {
	if s == "" {
		return ""
	}
	exp := ratio.MustNew(num, den)
	if exp.IsInt() {
		return group(s) + superscripts.Replace(exp.String())
	}

	return group(s) + "^(" + exp.String() + ")"
}
