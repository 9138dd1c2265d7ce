// SPDX-License-Identifier: MIT

package catalog

import (
	"github.com/katalvlaran/lvunits/magnitude"
	"github.com/katalvlaran/lvunits/unit"
)

func decimal(name, symbol string, exp int64) unit.Prefix {
	return unit.Prefix{Name: name, Symbol: symbol, Magnitude: magnitude.MustPowerOf(10, exp)}
}

func binary(name, symbol string, exp int64) unit.Prefix {
	return unit.Prefix{Name: name, Symbol: symbol, Magnitude: magnitude.MustPowerOf(2, exp)}
}

// SIPrefixes are the 24 SI prefixes from quecto (10⁻³⁰) to quetta (10³⁰).
var SIPrefixes = []unit.Prefix{
	decimal("quecto", "q", -30),
	decimal("ronto", "r", -27),
	decimal("yocto", "y", -24),
	decimal("zepto", "z", -21),
	decimal("atto", "a", -18),
	decimal("femto", "f", -15),
	decimal("pico", "p", -12),
	decimal("nano", "n", -9),
	decimal("micro", "µ", -6),
	decimal("milli", "m", -3),
	decimal("centi", "c", -2),
	decimal("deci", "d", -1),
	decimal("deca", "da", 1),
	decimal("hecto", "h", 2),
	decimal("kilo", "k", 3),
	decimal("mega", "M", 6),
	decimal("giga", "G", 9),
	decimal("tera", "T", 12),
	decimal("peta", "P", 15),
	decimal("exa", "E", 18),
	decimal("zetta", "Z", 21),
	decimal("yotta", "Y", 24),
	decimal("ronna", "R", 27),
	decimal("quetta", "Q", 30),
}

// BinaryPrefixes are the IEC 80000-13 prefixes kibi (2¹⁰) to yobi (2⁸⁰).
var BinaryPrefixes = []unit.Prefix{
	binary("kibi", "Ki", 10),
	binary("mebi", "Mi", 20),
	binary("gibi", "Gi", 30),
	binary("tebi", "Ti", 40),
	binary("pebi", "Pi", 50),
	binary("exbi", "Ei", 60),
	binary("zebi", "Zi", 70),
	binary("yobi", "Yi", 80),
}

// largeSIPrefixes is kilo and above.
func largeSIPrefixes() []unit.Prefix {
	for i, p := range SIPrefixes {
		if p.Symbol == "k" {
			return SIPrefixes[i:]
		}
	}

	return nil
}
