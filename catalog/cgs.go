// SPDX-License-Identifier: MIT

package catalog

import "github.com/katalvlaran/lvunits/unit"

// defineCGS registers the centimetre–gram–second mechanical units. cm and g
// coincide with the SI prefixed units and are registered once.
func defineCGS(b *builder, si siUnits) {
	cm := b.add(CGS, b.must(unit.Prefixed(decimal("centi", "c", -2), si.metre)))
	g := b.add(CGS, si.gram)
	s2 := b.must(unit.Pow(si.second, 2, 1))

	accel := b.must(unit.Divide(cm, s2))
	b.add(CGS, unit.Named("gal", "Gal", "acceleration", accel))
	dyne := b.add(CGS, unit.Named("dyne", "dyn", "force", b.must(unit.Multiply(g, accel))))
	b.add(CGS, unit.Named("erg", "erg", "energy", b.must(unit.Multiply(dyne, cm))))
	b.add(CGS, unit.Named("barye", "Ba", "pressure", b.must(unit.Divide(dyne, b.must(unit.Pow(cm, 2, 1))))))
}
