// SPDX-License-Identifier: MIT

package catalog

import (
	"github.com/katalvlaran/lvunits/magnitude"
	"github.com/katalvlaran/lvunits/unit"
)

// standardGravity is gₙ = 9.80665 m/s², exact by definition.
var standardGravity = magnitude.MustRational(980665, 100000)

// defineInternational registers the international yard and pound family.
func defineInternational(b *builder, si siUnits) {
	yard := b.add(International, b.must(unit.Scaled("yard", "yd", magnitude.MustRational(9144, 10000), si.metre)))
	foot := b.add(International, b.must(unit.Scaled("foot", "ft", magnitude.MustRational(1, 3), yard)))
	inch := b.add(International, b.must(unit.Scaled("inch", "in", magnitude.MustRational(1, 12), foot)))
	mile := b.add(International, b.must(unit.Scaled("mile", "mi", magnitude.MustInt(1760), yard)))
	nmi := b.add(International, b.must(unit.Scaled("nautical mile", "nmi", magnitude.MustInt(1852), si.metre)))

	pound := b.add(International, b.must(unit.Scaled("pound", "lb", magnitude.MustRational(45359237, 100000000), si.kilogram)))
	b.add(International, b.must(unit.Scaled("ounce", "oz", magnitude.MustRational(1, 16), pound)))

	gn := b.must(unit.Scaled("", "", standardGravity,
		b.must(unit.Divide(si.metre, b.must(unit.Pow(si.second, 2, 1))))))
	lbf := b.add(International, unit.Named("pound-force", "lbf", "force", b.must(unit.Multiply(pound, gn))))
	b.add(International, unit.Named("pound per square inch", "psi", "pressure",
		b.must(unit.Divide(lbf, b.must(unit.Pow(inch, 2, 1))))))

	b.add(International, unit.Named("knot", "kn", "velocity", b.must(unit.Divide(nmi, si.hour))))
	b.add(International, unit.Named("mile per hour", "mph", "velocity", b.must(unit.Divide(mile, si.hour))))
}
